package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"esfmt/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [flags] [dir]",
	Short: "Print the effective formatting options as TOML",
	Long: `Config merges the defaults, the nearest ` + config.FileName + ` and the
command-line overrides, and prints the result. The output is itself a valid
configuration file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	addOptionFlags(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	src, err := resolveOptions(cmd, args)
	if err != nil {
		return err
	}
	warnUnknownNodes(cmd, src)

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	if !quiet {
		origin := "defaults"
		if src.File != nil {
			origin = src.File.Path
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# effective options (%s)\n", origin)
	}
	return config.Encode(cmd.OutOrStdout(), src.Options)
}
