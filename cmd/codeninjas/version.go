package main

import (
	"github.com/spf13/cobra"

	"github.com/felsokning/codeninjas/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd.OutOrStdout(), version.GetVersionInfo())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = version.GetFullVersion()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}
