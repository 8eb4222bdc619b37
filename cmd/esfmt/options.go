package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"esfmt/internal/config"
	"esfmt/internal/format"
)

// addOptionFlags registers the flags that shape format.Options.
func addOptionFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to "+config.FileName+" (default: search upwards from the first path)")
	cmd.Flags().Int("indent", 0, "indent with N spaces (overrides the config file)")
	cmd.Flags().Bool("tabs", false, "indent with tabs (overrides the config file and --indent)")
}

// optionSource reports where the effective options came from.
type optionSource struct {
	Options format.Options
	File    *config.File // nil when no config file applies
}

// resolveOptions merges defaults, the config file and command-line overrides.
// Config discovery starts from the directory of the first path.
func resolveOptions(cmd *cobra.Command, paths []string) (optionSource, error) {
	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		return optionSource{}, err
	}
	file, err := config.Resolve(startDir(paths), explicit)
	if err != nil {
		return optionSource{}, err
	}

	var ov *format.Overrides
	if file != nil {
		ov = file.Overrides
	}
	opts := format.DefaultOptions().Merge(ov)

	spaces, err := cmd.Flags().GetInt("indent")
	if err != nil {
		return optionSource{}, err
	}
	tabs, err := cmd.Flags().GetBool("tabs")
	if err != nil {
		return optionSource{}, err
	}
	switch {
	case tabs:
		opts.Indent.Value = "\t"
	case spaces < 0:
		return optionSource{}, fmt.Errorf("--indent must not be negative, got %d", spaces)
	case spaces > 0:
		opts.Indent.Value = strings.Repeat(" ", spaces)
	}

	if err := opts.Validate(); err != nil {
		return optionSource{}, err
	}
	return optionSource{Options: opts, File: file}, nil
}

func startDir(paths []string) string {
	for _, p := range paths {
		if p == "-" {
			continue
		}
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return filepath.Dir(p)
		}
		return p
	}
	return "."
}

// warnUnknownNodes prints indent.nodes keys that match no syntax node.
func warnUnknownNodes(cmd *cobra.Command, src optionSource) {
	if src.File == nil || len(src.File.UnknownNodes) == 0 {
		return
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "esfmt: %s: unknown node types in indent.nodes: %s\n",
		src.File.Path, strings.Join(src.File.UnknownNodes, ", "))
}
