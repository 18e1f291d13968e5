package httpclient

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"slices"
)

var tlsVersions = map[string]uint16{
	"1.2": tls.VersionTLS12,
	"1.3": tls.VersionTLS13,
}

// TLSConfig adjusts certificate checks for outbound connections, mostly for
// corporate proxies that re-sign traffic.
type TLSConfig struct {
	// SkipVerify disables server certificate verification. Local testing only.
	SkipVerify bool `yaml:"skip_verify" mapstructure:"skip_verify"`
	// CAFile is a PEM bundle trusted in place of the system roots.
	CAFile string `yaml:"ca_file" mapstructure:"ca_file"`
	// MinVersion is "1.2" (default) or "1.3".
	MinVersion string `yaml:"min_version" mapstructure:"min_version"`
}

// Build returns nil when the system defaults apply.
func (c *TLSConfig) Build() (*tls.Config, error) {
	if c == nil || (!c.SkipVerify && c.CAFile == "" && c.MinVersion == "") {
		return nil, nil
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cfg := &tls.Config{
		InsecureSkipVerify: c.SkipVerify, //nolint:gosec // opt-in for local testing
		MinVersion:         tls.VersionTLS12,
	}
	if v, ok := tlsVersions[c.MinVersion]; ok {
		cfg.MinVersion = v
	}

	if c.CAFile != "" {
		pem, err := os.ReadFile(c.CAFile)
		if err != nil {
			return nil, fmt.Errorf("httpclient: read CA file: %w", err)
		}
		cfg.RootCAs = x509.NewCertPool()
		if !cfg.RootCAs.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("httpclient: no certificates found in %s", c.CAFile)
		}
	}
	return cfg, nil
}

// Validate rejects unknown TLS versions.
func (c *TLSConfig) Validate() error {
	if c == nil || c.MinVersion == "" {
		return nil
	}
	if _, ok := tlsVersions[c.MinVersion]; !ok {
		known := make([]string, 0, len(tlsVersions))
		for v := range tlsVersions {
			known = append(known, v)
		}
		slices.Sort(known)
		return fmt.Errorf("httpclient: tls.min_version must be one of %v (got: %s)", known, c.MinVersion)
	}
	return nil
}
