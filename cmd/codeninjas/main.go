// Package main provides the codeninjas CLI.
//
// Usage:
//
//	codeninjas [command] [flags]
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felsokning/codeninjas/httpclient"
	"github.com/felsokning/codeninjas/logger"
	"github.com/felsokning/codeninjas/observability"
)

var (
	configFile string
	envFile    string

	appConfig *AppConfig
	log       = logger.Nop()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "codeninjas",
	Short: "Typed clients for Deutsche Welle, SMHI and Hacker News",
	Long: `codeninjas fetches data from third-party JSON APIs through typed clients.

Every command prints JSON on stdout. Logs go to stderr.

The serve command exposes the same calls as a read-only HTTP facade.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// setup loads configuration and builds the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig(configFile, envFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	var w io.Writer = cmd.ErrOrStderr()
	if strings.EqualFold(cfg.Logging.Output, "stdout") {
		w = cmd.OutOrStdout()
	}
	log = logger.NewWithWriter(&cfg.Logging, cfg.Name, w)
	logger.SetGlobalLogger(log)
	return nil
}

// clientOptions are shared by every API client a command creates.
func clientOptions(metrics *observability.Metrics) []httpclient.Option {
	opts := []httpclient.Option{
		httpclient.WithConfig(appConfig.HTTP),
		httpclient.WithLogger(log),
	}
	if metrics != nil {
		opts = append(opts, httpclient.WithMetrics(metrics))
	}
	return opts
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to a config file (default: ./config.yml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to a .env file (default: ./.env)")
}

func main() {
	Execute()
}
