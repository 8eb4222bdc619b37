package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"esfmt/internal/driver"
)

func optionCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addOptionFlags(cmd)
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestResolveOptionsFromFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "src")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := "[indent]\nvalue = \"  \"\n[line_break]\nkeep_empty_lines = false\n"
	if err := os.WriteFile(filepath.Join(dir, ".esfmt.toml"), []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(sub, "a.js")
	if err := os.WriteFile(file, []byte("a;\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	src, err := resolveOptions(optionCmd(t), []string{file})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if src.File == nil {
		t.Fatalf("config file not found")
	}
	if got := src.Options.Indent.Value; got != "  " {
		t.Fatalf("want %q got %q", "  ", got)
	}
	if src.Options.LineBreak.KeepEmptyLines {
		t.Fatalf("keep_empty_lines from file was ignored")
	}
	if !src.Options.WhiteSpace.RemoveTrailing {
		t.Fatalf("unset keys must keep defaults")
	}
}

func TestResolveOptionsFlagsWin(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		args []string
		want string
	}{
		{nil, "    "},
		{[]string{"--indent", "2"}, "  "},
		{[]string{"--tabs"}, "\t"},
		{[]string{"--indent", "2", "--tabs"}, "\t"},
	}
	for _, tt := range tests {
		src, err := resolveOptions(optionCmd(t, tt.args...), []string{dir})
		if err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if got := src.Options.Indent.Value; got != tt.want {
			t.Fatalf("%v: want %q got %q", tt.args, tt.want, got)
		}
	}

	if _, err := resolveOptions(optionCmd(t, "--indent", "-1"), []string{dir}); err == nil {
		t.Fatalf("want error for negative indent")
	}
}

func TestResolveOptionsMissingExplicitConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	if _, err := resolveOptions(optionCmd(t, "--config", missing), nil); err == nil {
		t.Fatalf("want error for missing --config file")
	}
}

func TestParseProgressMode(t *testing.T) {
	tests := []struct {
		in   string
		want progressMode
	}{
		{"", progressAuto},
		{"AUTO", progressAuto},
		{"on", progressAlways},
		{" off ", progressNever},
	}
	for _, tt := range tests {
		got, err := parseProgressMode(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("parseProgressMode(%q): want %v got %v (%v)", tt.in, tt.want, got, err)
		}
	}
	if _, err := parseProgressMode("sometimes"); err == nil {
		t.Fatalf("want error for invalid mode")
	}
	if !progressAlways.enabled(1, os.Stdout) || progressNever.enabled(10, os.Stdout) {
		t.Fatalf("explicit modes must win")
	}
}

func TestRenderFmtText(t *testing.T) {
	results := []driver.FormatResult{
		{Path: "a.js", Changed: true},
		{Path: "b.js"},
		{Path: "c.js", Err: errors.New("read c.js: denied")},
	}
	var out, errw bytes.Buffer
	hasErrors, hasChanges := renderFmtText(&out, &errw, results, fmtFlags{check: true}, false)
	if !hasErrors || !hasChanges {
		t.Fatalf("want errors and changes, got %v %v", hasErrors, hasChanges)
	}
	if got := out.String(); got != "a.js\n" {
		t.Fatalf("want %q got %q", "a.js\n", got)
	}
	if !strings.Contains(errw.String(), "c.js: read c.js: denied") {
		t.Fatalf("unexpected stderr %q", errw.String())
	}

	out.Reset()
	renderFmtText(&out, &errw, results[:2], fmtFlags{}, false)
	if got := out.String(); got != "reformatted a.js\n" {
		t.Fatalf("want %q got %q", "reformatted a.js\n", got)
	}
}

func TestRenderFmtJSON(t *testing.T) {
	var out bytes.Buffer
	results := []driver.FormatResult{{Path: "a.js", Changed: true, Cached: false}}
	if err := renderFmtJSON(&out, results, true); err != nil {
		t.Fatal(err)
	}
	var payload []map[string]any
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(payload) != 1 || payload[0]["path"] != "a.js" || payload[0]["changed"] != true || payload[0]["check"] != true {
		t.Fatalf("unexpected payload %v", payload)
	}
	if _, ok := payload[0]["cached"]; ok {
		t.Fatalf("cached=false must be omitted")
	}
}
