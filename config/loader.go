package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/felsokning/codeninjas/logger"
	"github.com/felsokning/codeninjas/util"
)

// EnvPrefix marks environment variables that override configuration keys.
const EnvPrefix = "CODENINJAS_"

// FileSystem is the part of the file system the loader touches.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

type osFileSystem struct{}

func (osFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadEnv never overrides variables that are already set.
func (osFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds the file system and optional explicit paths.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
}

// LoaderOption configures LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem replaces the OS file system, mostly for tests.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile pins the YAML file instead of searching for one.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile pins the .env file instead of searching for one.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// resolve returns the explicit paths, falling back to the first existing
// candidate for each. Either result may be empty.
func (lc LoaderConfig) resolve(serviceName string) (configFile, envFile string) {
	configFile, envFile = lc.ConfigFile, lc.EnvFile
	if configFile == "" {
		configFile = lc.firstExisting(
			"./cmd/"+serviceName+"/config.yml",
			"../cmd/"+serviceName+"/config.yml",
			"../../cmd/"+serviceName+"/config.yml",
			"./config/config.yml",
			"./config.yml",
		)
	}
	if envFile == "" {
		var candidates []string
		for _, name := range []string{".env." + serviceName, ".env"} {
			candidates = append(candidates,
				"./cmd/"+serviceName+"/"+name,
				"../cmd/"+serviceName+"/"+name,
				"./config/"+name,
				"./"+name,
			)
		}
		envFile = lc.firstExisting(candidates...)
	}
	return configFile, envFile
}

func (lc LoaderConfig) firstExisting(paths ...string) string {
	for _, p := range paths {
		if lc.FileSystem.Exists(p) {
			return p
		}
	}
	return ""
}

// LoadConfig reads the service's YAML file and .env file, applies
// CODENINJAS_ overrides and decodes the result into cfg. Missing files are
// not an error; defaults are the caller's job.
func LoadConfig(serviceName string, cfg any, opts ...LoaderOption) error {
	lc := LoaderConfig{FileSystem: osFileSystem{}}
	for _, opt := range opts {
		opt(&lc)
	}
	configFile, envFile := lc.resolve(serviceName)

	v := viper.New()
	if configFile != "" && lc.FileSystem.Exists(configFile) {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: reading %s: %w", configFile, err)
		}
	}
	if envFile != "" && lc.FileSystem.Exists(envFile) {
		if err := lc.FileSystem.LoadEnv(envFile); err != nil {
			logger.Warn("Ignoring unreadable env file", logger.Fields("path", envFile, logger.FieldError, err.Error()))
		}
	}

	bindPrefixedEnv(v, os.Environ())

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: decoding %s settings: %w", serviceName, err)
	}
	return nil
}

// bindPrefixedEnv sets every CODENINJAS_ variable under each key spelling
// it could stand for, since underscores may separate levels or words.
func bindPrefixedEnv(v *viper.Viper, environ []string) {
	for _, env := range environ {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		name, ok := strings.CutPrefix(key, EnvPrefix)
		if !ok || name == "" {
			continue
		}
		for _, variant := range envKeyVariants(name) {
			v.Set(variant, value)
		}
	}
}

// envKeyVariants lists the dotted keys an env name may address:
//
//	HTTP_TLS_SKIP_VERIFY -> http_tls_skip_verify, http.tls.skip.verify,
//	                        http.tls_skip_verify, http.tls.skip_verify
func envKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")
	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{
		lowerKey,
		strings.ReplaceAll(lowerKey, "_", "."),
	}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	for i := 1; i < len(parts)-1; i++ {
		variants = append(variants, strings.Join(parts[:i], "_")+"."+strings.Join(parts[i:], "_"))
	}
	return util.Unique(variants)
}
