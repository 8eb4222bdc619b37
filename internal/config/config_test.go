package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"esfmt/internal/format"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	cfg := filepath.Join(root, FileName)
	writeFile(t, cfg, "")
	deep := filepath.Join(root, "a", "b")
	writeFile(t, filepath.Join(deep, "x.js"), "x;")

	for _, start := range []string{deep, filepath.Join(deep, "x.js"), root} {
		got, ok, err := Find(start)
		if err != nil || !ok {
			t.Fatalf("Find(%s): ok=%v err=%v", start, ok, err)
		}
		if got != cfg {
			t.Fatalf("Find(%s): want %s got %s", start, cfg, got)
		}
	}
}

func TestResolveWithoutFile(t *testing.T) {
	dir := t.TempDir()
	f, err := Resolve(dir, filepath.Join(dir, "missing.toml"))
	if err == nil || f != nil {
		t.Fatalf("missing explicit file must fail, got %+v", f)
	}
}

func TestDecodeDistinguishesAbsentFromFalse(t *testing.T) {
	src := `
[indent]
value = "\t"
[indent.nodes]
ArrayExpression = true
Bogus = true

[line_break]
keep_empty_lines = false
[line_break.before]
IfStatement = false

[unknown]
key = 1
`
	f, err := Decode("inline", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	ov := f.Overrides
	if ov.Indent == nil || ov.Indent.Value == nil || *ov.Indent.Value != "\t" {
		t.Fatalf("indent.value not decoded: %+v", ov.Indent)
	}
	if ov.LineBreak == nil || ov.LineBreak.KeepEmptyLines == nil || *ov.LineBreak.KeepEmptyLines {
		t.Fatal("keep_empty_lines=false must be an explicit override")
	}
	if ov.LineBreak.Value != nil {
		t.Fatal("absent line_break.value must stay nil")
	}
	if ov.WhiteSpace != nil {
		t.Fatal("absent [white_space] must stay nil")
	}
	if len(f.UnknownNodes) != 1 || f.UnknownNodes[0] != "Bogus" {
		t.Fatalf("unknown nodes: %v", f.UnknownNodes)
	}

	opts := format.DefaultOptions().Merge(ov)
	if opts.Indent.Value != "\t" || !opts.Indent.Nodes["ArrayExpression"] || !opts.Indent.Nodes["IfStatement"] {
		t.Fatalf("merged indent: %+v", opts.Indent)
	}
	if opts.LineBreak.KeepEmptyLines || opts.LineBreak.Before["IfStatement"] || !opts.LineBreak.Before["CallExpression"] {
		t.Fatal("merged line_break wrong")
	}
	if !opts.WhiteSpace.RemoveTrailing {
		t.Fatal("remove_trailing must keep its default")
	}
}

func TestLoadReportsSyntaxErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "[indent\nvalue = 1")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("want error mentioning %s, got %v", path, err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	opts := format.DefaultOptions()
	opts.Indent.Value = "\t"
	var buf bytes.Buffer
	if err := Encode(&buf, opts); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	f, err := Decode("encoded", &buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := format.DefaultOptions().Merge(f.Overrides)
	if got.Indent.Value != "\t" {
		t.Fatalf("indent: want tab got %q", got.Indent.Value)
	}
	if got.LineBreak.After["Property"] != opts.LineBreak.After["Property"] ||
		got.WhiteSpace.Before["IfTest"] != opts.WhiteSpace.Before["IfTest"] {
		t.Fatal("policy tables changed after round trip")
	}
}
