package main

import (
	"fmt"

	"github.com/reglet-dev/linkpage/internal/version"
	"github.com/spf13/cobra"
)

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of linkpage",
	Run: func(cmd *cobra.Command, _ []string) {
		info := version.Get()
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "linkpage version %s\n", info.Full())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
