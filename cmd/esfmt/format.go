package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"esfmt/internal/diagfmt"
	"esfmt/internal/driver"
	"esfmt/internal/observ"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path|-> [path...]",
	Short: "Format JavaScript source files",
	Long: `Format rewrites .js files in place. Directories are walked recursively,
skipping node_modules and dot directories. A single "-" reads stdin and
writes the result to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

// errSilent сигнализирует main, что сообщение уже выведено.
var errSilent = errors.New("")

func init() {
	fmtCmd.Flags().Bool("check", false, "list files whose formatting differs and exit 1, without writing")
	fmtCmd.Flags().String("format", "text", "output format of the report (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Bool("verify", false, "fail files whose output is not stable under a second run")
	fmtCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	fmtCmd.Flags().Bool("cache", false, "skip files recorded as already formatted with the same options")
	fmtCmd.Flags().String("cache-dir", "", "cache directory (default: $XDG_CACHE_HOME/esfmt)")
	fmtCmd.Flags().String("ui", "auto", "progress UI mode (auto|on|off)")
	addOptionFlags(fmtCmd)
}

type fmtFlags struct {
	check        bool
	stdout       bool
	verify       bool
	outputFormat string
	jobs         int
	cache        bool
	cacheDir     string
	ui           progressMode
	quiet        bool
	timings      bool
	maxDiag      int
}

func readFmtFlags(cmd *cobra.Command) (fmtFlags, error) {
	var f fmtFlags
	var err error
	if f.check, err = cmd.Flags().GetBool("check"); err != nil {
		return f, err
	}
	if f.stdout, err = cmd.Flags().GetBool("stdout"); err != nil {
		return f, err
	}
	if f.verify, err = cmd.Flags().GetBool("verify"); err != nil {
		return f, err
	}
	if f.outputFormat, err = cmd.Flags().GetString("format"); err != nil {
		return f, err
	}
	if f.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return f, err
	}
	if f.cache, err = cmd.Flags().GetBool("cache"); err != nil {
		return f, err
	}
	if f.cacheDir, err = cmd.Flags().GetString("cache-dir"); err != nil {
		return f, err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return f, err
	}
	if f.ui, err = parseProgressMode(uiValue); err != nil {
		return f, err
	}
	if f.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return f, err
	}
	if f.maxDiag, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics"); err != nil {
		return f, err
	}
	if f.timings, err = cmd.Root().PersistentFlags().GetBool("timings"); err != nil {
		return f, err
	}

	if f.stdout && f.check {
		return f, fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if f.stdout && f.outputFormat != "text" {
		return f, fmt.Errorf("fmt: --stdout is only supported with text output")
	}
	switch f.outputFormat {
	case "text", "json":
	default:
		return f, fmt.Errorf("fmt: unsupported output format %q", f.outputFormat)
	}
	return f, nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	flags, err := readFmtFlags(cmd)
	if err != nil {
		return err
	}
	timer := observ.NewTimer()
	if flags.timings {
		defer func() { fmt.Fprint(cmd.ErrOrStderr(), timer.Summary()) }()
	}

	phase := timer.Begin("config")
	src, err := resolveOptions(cmd, args)
	if err != nil {
		return err
	}
	warnUnknownNodes(cmd, src)
	timer.End(phase, "")

	opts := driver.FormatOptions{
		Options:        src.Options,
		Check:          flags.check,
		Stdout:         flags.stdout,
		Verify:         flags.verify,
		Jobs:           flags.jobs,
		MaxDiagnostics: flags.maxDiag,
	}

	if len(args) == 1 && args[0] == "-" {
		return runFmtStdin(cmd, opts, flags)
	}

	if flags.cache {
		cache, err := openCache(flags.cacheDir, opts)
		if err != nil {
			return err
		}
		opts.Cache = cache
		defer func() {
			phase := timer.Begin("cache")
			if err := cache.Save(); err != nil && !flags.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "esfmt: cache: %v\n", err)
			}
			timer.End(phase, fmt.Sprintf("%d entries", cache.Len()))
		}()
	}

	phase = timer.Begin("collect")
	files, err := driver.CollectSourceFiles(cmd.Context(), args)
	if err != nil {
		return err
	}
	timer.End(phase, fmt.Sprintf("%d files", len(files)))

	phase = timer.Begin("format")
	var results []driver.FormatResult
	if !flags.stdout && !flags.quiet && flags.ui.enabled(len(files), os.Stdout) {
		results, err = runFormatWithUI(cmd.Context(), "esfmt", files, opts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}
	timer.End(phase, "")
	defer timer.End(timer.Begin("report"), "")

	colored, err := useColor(cmd, os.Stderr)
	if err != nil {
		return err
	}
	var hasErrors, hasChanges bool
	switch flags.outputFormat {
	case "text":
		if flags.stdout {
			hasErrors = renderFmtStdout(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, colored)
			break
		}
		hasErrors, hasChanges = renderFmtText(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, flags, colored)
	case "json":
		if err := renderFmtJSON(cmd.OutOrStdout(), results, flags.check); err != nil {
			return err
		}
		for _, res := range results {
			hasErrors = hasErrors || res.Err != nil
			hasChanges = hasChanges || res.Changed
		}
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if flags.check && hasChanges {
		return errSilent
	}
	return nil
}

func openCache(dir string, opts driver.FormatOptions) (*driver.Cache, error) {
	if dir == "" {
		var err error
		if dir, err = driver.DefaultCacheDir("esfmt"); err != nil {
			return nil, fmt.Errorf("cache: %w", err)
		}
	}
	return driver.OpenCache(dir, opts.Options)
}

func runFmtStdin(cmd *cobra.Command, opts driver.FormatOptions, flags fmtFlags) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	res := driver.FormatSource(cmd.Context(), "<stdin>", data, opts)
	colored, err := useColor(cmd, os.Stderr)
	if err != nil {
		return err
	}
	if res.Err != nil {
		reportFailure(cmd.ErrOrStderr(), res, colored)
		return errSilent
	}
	if flags.check {
		if res.Changed {
			return errSilent
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write(res.Formatted)
	return err
}

// reportFailure prints the diagnostics of a failed file, or the bare error
// when the failure produced none (I/O errors).
func reportFailure(w io.Writer, res driver.FormatResult, colored bool) {
	if res.Bag != nil && res.Bag.Len() > 0 {
		res.Bag.Sort()
		diagfmt.Pretty(w, res.Bag, res.FileSet, diagfmt.PrettyOpts{Color: colored, Context: 1})
		return
	}
	fmt.Fprintf(w, "fmt: %s: %v\n", res.Path, res.Err)
}

func renderFmtStdout(out, errw io.Writer, results []driver.FormatResult, colored bool) bool {
	hasErrors := false
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			reportFailure(errw, res, colored)
			continue
		}
		_, _ = out.Write(res.Formatted)
	}
	return hasErrors
}

func renderFmtText(out, errw io.Writer, results []driver.FormatResult, flags fmtFlags, colored bool) (hasErrors, hasChanges bool) {
	changed := color.New(color.FgYellow)
	if colored {
		changed.EnableColor()
	} else {
		changed.DisableColor()
	}
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			reportFailure(errw, res, colored)
			continue
		}
		if !res.Changed {
			continue
		}
		hasChanges = true
		if flags.quiet {
			continue
		}
		if flags.check {
			fmt.Fprintln(out, changed.Sprint(res.Path))
			continue
		}
		fmt.Fprintf(out, "reformatted %s\n", changed.Sprint(res.Path))
	}
	return hasErrors, hasChanges
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Cached   bool   `json:"cached,omitempty"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
