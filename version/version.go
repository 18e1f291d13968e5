package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Product is the name reported by the CLI and the HTTP facade.
const Product = "codeninjas"

// ClientVersion is the product version in every outbound User-Agent.
const ClientVersion = "1.0.0"

// Set at build time using -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	GitBranch = ""
	BuildTime = ""
	GoVersion = ""
)

// Info is the build information served by /version and the version command.
type Info struct {
	Product       string    `json:"product"`
	Version       string    `json:"version"`
	ClientVersion string    `json:"client_version"`
	GitCommit     string    `json:"git_commit,omitempty"`
	GitBranch     string    `json:"git_branch,omitempty"`
	BuildTime     string    `json:"build_time,omitempty"`
	GoVersion     string    `json:"go_version"`
	BuildDate     time.Time `json:"build_date,omitzero"`
	IsRelease     bool      `json:"is_release"`
	IsDirty       bool      `json:"is_dirty"`
}

// GetVersionInfo merges the injected variables with the VCS stamp of the
// running binary. Injected values win.
func GetVersionInfo() *Info {
	info := &Info{
		Product:       Product,
		Version:       Version,
		ClientVersion: ClientVersion,
		GitCommit:     GitCommit,
		GitBranch:     GitBranch,
		BuildTime:     BuildTime,
		GoVersion:     GoVersion,
		IsRelease:     Version != "dev" && !strings.Contains(Version, "dirty"),
	}
	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.BuildDate = t
		}
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.GoVersion == "" {
		info.GoVersion = buildInfo.GoVersion
	}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = shortCommit(setting.Value)
			}
		case "vcs.modified":
			info.IsDirty = setting.Value == "true"
		case "vcs.time":
			if info.BuildTime == "" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					info.BuildDate = t
					info.BuildTime = setting.Value
				}
			}
		}
	}
	return info
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// GetShortVersion returns "version-commit", with "-dirty" for modified trees.
func GetShortVersion() string {
	info := GetVersionInfo()
	if info.GitCommit == "" {
		return info.Version
	}
	if info.IsDirty {
		return fmt.Sprintf("%s-%s-dirty", info.Version, info.GitCommit)
	}
	return fmt.Sprintf("%s-%s", info.Version, info.GitCommit)
}

// GetFullVersion returns the one-line banner printed by the version command.
func GetFullVersion() string {
	info := GetVersionInfo()
	parts := []string{info.Product, info.Version}
	if info.GitCommit != "" {
		parts = append(parts, info.GitCommit)
	}
	if info.GitBranch != "" && info.GitBranch != "main" && info.GitBranch != "master" {
		parts = append(parts, info.GitBranch)
	}
	if info.IsDirty {
		parts = append(parts, "dirty")
	}
	banner := strings.Join(parts, " ")
	if !info.BuildDate.IsZero() {
		banner += fmt.Sprintf(" (built %s)", info.BuildDate.UTC().Format(time.RFC3339))
	}
	return banner + fmt.Sprintf(", client %s, %s", info.ClientVersion, info.GoVersion)
}
