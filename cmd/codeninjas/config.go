package main

import (
	"fmt"

	"github.com/felsokning/codeninjas/config"
	"github.com/felsokning/codeninjas/httpclient"
	"github.com/felsokning/codeninjas/observability"
	"github.com/felsokning/codeninjas/server"
	"github.com/felsokning/codeninjas/validation"
	"github.com/felsokning/codeninjas/version"
)

// AppConfig is the configuration of the codeninjas binary.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	HTTP    httpclient.Config         `yaml:"http" mapstructure:"http"`
	Server  server.Config             `yaml:"server" mapstructure:"server"`
	Tracing observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics observability.MeterConfig  `yaml:"metrics" mapstructure:"metrics"`
}

// ApplyDefaults fills every section.
func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = version.Product
	}
	if c.Version == "" {
		c.Version = version.Version
	}
	c.ServiceConfig.ApplyDefaults()
	c.HTTP.ApplyDefaults()
	c.Server.ApplyDefaults()

	c.Tracing.ApplyDefaults(c.Name, c.Version, c.Environment)
	c.Metrics.ApplyDefaults(c.Name, c.Version, c.Environment)
}

// Validate checks every section, then the struct tags.
func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.HTTP.Validate(); err != nil {
		return fmt.Errorf("config.http: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	return validation.Validate(c)
}

// loadAppConfig reads the config file and environment into a validated AppConfig.
func loadAppConfig(configPath, envPath string) (*AppConfig, error) {
	var opts []config.LoaderOption
	if configPath != "" {
		opts = append(opts, config.WithConfigFile(configPath))
	}
	if envPath != "" {
		opts = append(opts, config.WithEnvFile(envPath))
	}

	cfg := &AppConfig{}
	if err := config.LoadConfig(version.Product, cfg, opts...); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
