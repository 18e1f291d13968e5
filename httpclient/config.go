package httpclient

import (
	"fmt"
	"time"

	"github.com/felsokning/codeninjas/version"
)

const (
	// ProductVersion is the version token sent in the User-Agent header.
	ProductVersion = version.ClientVersion
	// DefaultContact is the contact token sent in the User-Agent header.
	DefaultContact = "nuget@felsokning.se"
	// DefaultWebsite is the website token sent in the User-Agent header.
	DefaultWebsite = "https://www.nuget.org/profiles/felsokning"

	defaultTimeout = 100 * time.Second
)

// Config configures a Client.
type Config struct {
	// Timeout bounds a single request including reading the body. Defaults to 100s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Contact is the value of the Contact product token in the User-Agent.
	Contact string `yaml:"contact" mapstructure:"contact"`

	// Website is the value of the Website product token in the User-Agent.
	Website string `yaml:"website" mapstructure:"website"`

	// TLS configures the transport's TLS settings. Nil uses system defaults.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Contact == "" {
		c.Contact = DefaultContact
	}
	if c.Website == "" {
		c.Website = DefaultWebsite
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}
