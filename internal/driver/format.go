package driver

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"esfmt/internal/diag"
	"esfmt/internal/format"
	"esfmt/internal/source"
	"esfmt/internal/trace"
)

// FormatOptions configures code formatting.
type FormatOptions struct {
	Options        format.Options
	Check          bool
	Stdout         bool
	Verify         bool
	Jobs           int
	MaxDiagnostics int
	Cache          *Cache
	Sink           ProgressSink
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Formatted []byte
	// File and Bag are set when the file was read; Bag holds lexer and
	// parser diagnostics.
	FileSet *source.FileSet
	File    *source.File
	Bag     *diag.Bag
}

// FormatPaths formats provided files or directories (recursively collecting .js files).
// When opts.Check is true, files are not modified; Changed indicates whether formatting
// would update the file contents. When opts.Stdout is true, formatted content is returned
// in the results without touching files on disk.
//
// Per-file failures are reported in the results; the returned error is for
// problems with the batch itself (bad paths, cancellation).
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.Options.Validate(); err != nil {
		return nil, err
	}

	files, err := CollectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	tracer := trace.FromContext(ctx)
	batch := trace.Begin(tracer, trace.ScopeDriver, "format", trace.CurrentSpan(ctx))
	defer batch.End("")
	ctx = trace.WithSpan(ctx, batch)

	for _, path := range files {
		emit(opts.Sink, Event{File: path, Stage: StageRead, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// один Formatter на всю пачку: Format не меняет его состояние
	f := format.New(opts.Options)

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatSingleFile(gctx, f, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatSingleFile(ctx context.Context, f *format.Formatter, path string, opts FormatOptions) FormatResult {
	began := time.Now()
	result := FormatResult{Path: path}
	sp := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, path, trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, sp)

	fail := func(stage Stage, err error) FormatResult {
		result.Err = err
		sp.End(err.Error())
		emit(opts.Sink, Event{File: path, Stage: stage, Status: StatusError, Err: err, Elapsed: time.Since(began)})
		return result
	}

	emit(opts.Sink, Event{File: path, Stage: StageRead, Status: StatusWorking})
	// #nosec G304 -- path comes from the command line or a directory walk
	data, err := os.ReadFile(path)
	if err != nil {
		return fail(StageRead, fmt.Errorf("read %s: %w", path, err))
	}

	sum := Digest(sha256.Sum256(data))
	if opts.Cache.Known(sum) {
		result.Cached = true
		if opts.Stdout {
			result.Formatted = data
		}
		sp.WithExtra("cached", "true").End("")
		emit(opts.Sink, Event{File: path, Stage: StageFormat, Status: StatusDone, Elapsed: time.Since(began)})
		return result
	}

	emit(opts.Sink, Event{File: path, Stage: StageFormat, Status: StatusWorking})
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}
	bag := diag.NewBag(maxDiag)
	fs := source.NewFileSet()
	content, flags := source.Normalize(data)
	file := fs.Get(fs.Add(path, content, flags))
	result.FileSet, result.File, result.Bag = fs, file, bag

	formatted, err := formatFile(ctx, f, file, bag, opts.Verify)
	if err != nil {
		return fail(StageFormat, err)
	}
	result.Changed = !bytes.Equal(data, formatted)
	result.Formatted = formatted

	switch {
	case opts.Check:
		result.Formatted = nil
	case opts.Stdout:
	case result.Changed:
		emit(opts.Sink, Event{File: path, Stage: StageWrite, Status: StatusWorking})
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
			result.Changed = false
			return fail(StageWrite, fmt.Errorf("write %s: %w", path, err))
		}
		result.Formatted = nil
	default:
		result.Formatted = nil
	}

	switch {
	case !result.Changed:
		opts.Cache.Mark(sum)
	case !opts.Check && opts.Cache != nil && fixedPoint(ctx, f, formatted):
		opts.Cache.Mark(sha256.Sum256(formatted))
	}

	sp.WithExtra("changed", fmt.Sprint(result.Changed)).End("")
	emit(opts.Sink, Event{File: path, Stage: StageFormat, Status: StatusDone, Changed: result.Changed, Elapsed: time.Since(began)})
	return result
}

// fixedPoint reports whether formatting out again leaves it unchanged. Only
// such output may be remembered as already formatted.
func fixedPoint(ctx context.Context, f *format.Formatter, out []byte) bool {
	again, err := f.Format(ctx, out)
	return err == nil && bytes.Equal(again, out)
}

func formatFile(ctx context.Context, f *format.Formatter, file *source.File, bag *diag.Bag, verify bool) ([]byte, error) {
	out, err := f.FormatFile(ctx, file, diag.BagReporter{Bag: bag})
	if err != nil || !verify {
		return out, err
	}
	if _, err := f.CheckStable(ctx, file.Path, file.Content); err != nil {
		diag.ReportError(diag.BagReporter{Bag: bag}, diag.FmtUnstable, source.Span{File: file.ID}, err.Error())
		return nil, err
	}
	return out, nil
}

// FormatSource formats an in-memory buffer (stdin). name is used in diagnostics.
func FormatSource(ctx context.Context, name string, data []byte, opts FormatOptions) FormatResult {
	result := FormatResult{Path: name}
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}
	bag := diag.NewBag(maxDiag)
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, data))
	result.FileSet, result.File, result.Bag = fs, file, bag

	formatted, err := formatFile(ctx, format.New(opts.Options), file, bag, opts.Verify)
	if err != nil {
		result.Err = err
		return result
	}
	result.Formatted = formatted
	result.Changed = !bytes.Equal(data, formatted)
	return result
}
