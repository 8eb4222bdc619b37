package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"esfmt/internal/diag"
	"esfmt/internal/source"
)

func singleDiag(t *testing.T, path, content string, start, end uint32) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, []byte(content))
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "Unexpected token",
		Primary:  source.Span{File: id, Start: start, End: end},
	})
	return bag, fs
}

func TestPrettyUnderline(t *testing.T) {
	bag, fs := singleDiag(t, "test.js", "var a = foo;\n", 8, 11)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})

	want := "test.js:1:9: ERROR SYN2001: Unexpected token\n" +
		" 1 | var a = foo;\n" +
		"   |         ^~~\n"
	if got := buf.String(); got != want {
		t.Fatalf("want\n%s\ngot\n%s", want, got)
	}
}

func TestPrettyContextLines(t *testing.T) {
	src := "a;\nb;\nc(;\nd;\ne;\n"
	bag, fs := singleDiag(t, "ctx.js", src, 8, 9)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})
	out := buf.String()

	for _, line := range []string{"ctx.js:3:3:", " 2 | b;", " 3 | c(;", " 4 | d;"} {
		if !strings.Contains(out, line) {
			t.Fatalf("want %q in output:\n%s", line, out)
		}
	}
	if strings.Contains(out, " 1 | a;") || strings.Contains(out, " 5 | e;") {
		t.Fatalf("context leaked beyond one line:\n%s", out)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	// "漢" занимает две колонки терминала и три байта
	src := "s = '漢' x;\n"
	off := uint32(strings.Index(src, "x"))
	bag, fs := singleDiag(t, "wide.js", src, off, off+1)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected output %q", buf.String())
	}
	// "s = '漢' ": 9 колонок
	want := "   | " + strings.Repeat(" ", 9) + "^"
	if lines[2] != want {
		t.Fatalf("want %q got %q", want, lines[2])
	}
}

func TestPrettyNoColorWhenDisabled(t *testing.T) {
	bag, fs := singleDiag(t, "test.js", "x(;\n", 2, 3)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: false})
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("escape sequences in colorless output: %q", buf.String())
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{Color: true})
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("no escape sequences in colored output: %q", buf.String())
	}
}

func TestPathModes(t *testing.T) {
	long := "/home/user/projects/some-long-project-name/src/lib/test.js"
	tests := []struct {
		name string
		path string
		mode PathMode
		want string
	}{
		{"auto keeps short", "src/test.js", PathModeAuto, "src/test.js"},
		{"auto shortens long absolute", long, PathModeAuto, "test.js"},
		{"basename", "src/lib/test.js", PathModeBasename, "test.js"},
		{"absolute", long, PathModeAbsolute, long},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPath(tt.path, tt.mode); got != tt.want {
				t.Fatalf("want %q got %q", tt.want, got)
			}
		})
	}
}

func TestPrettyWithoutFileSet(t *testing.T) {
	bag, _ := singleDiag(t, "test.js", "x\n", 0, 1)
	var buf bytes.Buffer
	Pretty(&buf, bag, nil, PrettyOpts{})
	if got, want := buf.String(), "ERROR SYN2001: Unexpected token\n"; got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}
