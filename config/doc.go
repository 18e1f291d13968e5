// Package config loads application configuration from a YAML file, a .env
// file and CODENINJAS_ prefixed environment variables, in that order of
// precedence from lowest to highest.
//
//	var cfg AppConfig
//	if err := config.LoadConfig("codeninjas", &cfg); err != nil {
//		return err
//	}
//
// CODENINJAS_HTTP_TIMEOUT=30s overrides http.timeout, and
// CODENINJAS_LOGGING_LEVEL=debug overrides logging.level.
package config
