package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"esfmt/internal/diag"
	"esfmt/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строки контекста и подчёркивание ^~~~ по Span.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, p)
	}
}

type palette struct {
	sev      map[diag.Severity]*color.Color
	location *color.Color
	code     *color.Color
	gutter   *color.Color
	marker   *color.Color
}

func newPalette(enabled bool) *palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return &palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   mk(color.FgRed, color.Bold),
			diag.SevWarning: mk(color.FgYellow, color.Bold),
			diag.SevInfo:    mk(color.FgCyan, color.Bold),
		},
		location: mk(color.Bold),
		code:     mk(color.FgMagenta),
		gutter:   mk(color.FgBlue),
		marker:   mk(color.FgRed, color.Bold),
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p *palette) {
	sev := p.sev[d.Severity]
	if sev == nil {
		sev = p.sev[diag.SevInfo]
	}
	header := fmt.Sprintf("%s %s: %s",
		sev.Sprint(strings.ToUpper(d.Severity.String())),
		p.code.Sprint(d.Code.ID()),
		d.Message)

	if fs == nil || int(d.Primary.File) >= fs.Len() {
		fmt.Fprintln(w, header)
		return
	}
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	loc := fmt.Sprintf("%s:%d:%d", formatPath(f.Path, opts.PathMode), start.Line, start.Col)
	fmt.Fprintf(w, "%s: %s\n", p.location.Sprint(loc), header)

	ctx := uint32(max(opts.Context, 0))
	first := start.Line - min(ctx, start.Line-1)
	last := start.Line + ctx
	width := len(fmt.Sprint(last))
	lines := uint32(len(f.LineIdx)) + 1
	for line := first; line <= min(last, lines); line++ {
		text := f.GetLine(line)
		gutter := p.gutter.Sprintf("%*d |", width, line)
		fmt.Fprintf(w, " %s %s\n", gutter, expandTabs(text))
		if line != start.Line {
			continue
		}
		pad, mark := underline(text, start, end)
		fmt.Fprintf(w, " %s %s%s\n",
			p.gutter.Sprint(strings.Repeat(" ", width)+" |"),
			strings.Repeat(" ", pad),
			p.marker.Sprint(mark))
	}
}

// underline returns the display offset of the span start in text and the
// marker string. The width is measured in terminal cells, so wide runes stay aligned.
func underline(text string, start, end source.LineCol) (int, string) {
	col := int(start.Col) - 1
	col = min(max(col, 0), len(text))
	pad := runewidth.StringWidth(expandTabs(text[:col]))

	n := 1
	if end.Line == start.Line && end.Col > start.Col {
		stop := min(int(end.Col)-1, len(text))
		n = max(runewidth.StringWidth(text[col:stop]), 1)
	} else if end.Line > start.Line {
		n = max(runewidth.StringWidth(text[col:]), 1)
	}
	return pad, "^" + strings.Repeat("~", n-1)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
