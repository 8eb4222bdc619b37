package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"esfmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "esfmt",
	Short: "Non-destructive JavaScript formatter",
	Long: `esfmt reformats ECMAScript sources by editing the token stream in place:
only whitespace, line breaks and indentation change, comments and code stay.`,
	PersistentPreRunE:  startRun,
	PersistentPostRunE: stopRun,
}

// main registers subcommands and persistent flags and runs the root command.
// Any returned error exits with status 1.
func main() {
	rootCmd.Version = version.Plain()

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("trace", "", "write trace events to FILE (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().Bool("timings", false, "print phase timings to stderr")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to FILE")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to FILE on exit")

	if err := rootCmd.Execute(); err != nil {
		// PostRun не вызывается при ошибке: трейс всё равно нужно сбросить
		_ = stopRun(rootCmd, nil)
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, "esfmt:", msg)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves --color against the terminal state of f.
func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch value {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}
