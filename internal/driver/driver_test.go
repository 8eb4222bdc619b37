package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"esfmt/internal/format"
	"esfmt/internal/parser"
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

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

type recordSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func TestCollectSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.js"), "a;")
	writeFile(t, filepath.Join(dir, "sub", "b.js"), "b;")
	writeFile(t, filepath.Join(dir, "sub", "c.txt"), "c")
	writeFile(t, filepath.Join(dir, "node_modules", "d.js"), "d;")
	writeFile(t, filepath.Join(dir, ".git", "e.js"), "e;")
	explicit := filepath.Join(dir, "sub", "c.txt")

	files, err := CollectSourceFiles(context.Background(), []string{dir, explicit, filepath.Join(dir, "a.js")})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.js"),
		filepath.Join(dir, "sub", "b.js"),
		filepath.Join(dir, "sub", "c.txt"),
	}
	if len(files) != len(want) {
		t.Fatalf("want %v got %v", want, files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("file %d: want %s got %s", i, want[i], files[i])
		}
	}
}

func TestFormatPathsWrite(t *testing.T) {
	dir := t.TempDir()
	ugly := filepath.Join(dir, "ugly.js")
	clean := filepath.Join(dir, "clean.js")
	writeFile(t, ugly, "foo();bar();")
	writeFile(t, clean, "foo();\n")

	sink := &recordSink{}
	res, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{Options: format.DefaultOptions(), Jobs: 2, Sink: sink})
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 {
		t.Fatalf("want 2 results, got %d", len(res))
	}
	byPath := map[string]FormatResult{}
	for _, r := range res {
		if r.Err != nil {
			t.Fatalf("%s: %v", r.Path, r.Err)
		}
		byPath[r.Path] = r
	}
	if !byPath[ugly].Changed || byPath[clean].Changed {
		t.Fatalf("changed flags wrong: %+v", byPath)
	}
	if got, want := readFile(t, ugly), "foo();\nbar();\n"; got != want {
		t.Fatalf("want %q got %q", want, got)
	}

	done := 0
	for _, ev := range sink.events {
		if ev.Status == StatusDone {
			done++
		}
	}
	if done != 2 {
		t.Fatalf("want 2 done events, got %d", done)
	}
}

func TestFormatPathsCheckDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	writeFile(t, path, "a=1;")

	res, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Options: format.DefaultOptions(), Check: true})
	if err != nil {
		t.Fatal(err)
	}
	if !res[0].Changed || res[0].Formatted != nil {
		t.Fatalf("check result: %+v", res[0])
	}
	if got := readFile(t, path); got != "a=1;" {
		t.Fatalf("check mode wrote the file: %q", got)
	}
}

func TestFormatPathsStdout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	writeFile(t, path, "a=1;")

	res, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Options: format.DefaultOptions(), Stdout: true})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(res[0].Formatted), "a = 1;\n"; got != want {
		t.Fatalf("want %q got %q", want, got)
	}
	if got := readFile(t, path); got != "a=1;" {
		t.Fatalf("stdout mode wrote the file: %q", got)
	}
}

func TestFormatPathsSyntaxError(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.js")
	writeFile(t, bad, "var = 1;")
	writeFile(t, filepath.Join(dir, "good.js"), "a=1;")

	res, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{Options: format.DefaultOptions()})
	if err != nil {
		t.Fatal(err)
	}
	var badRes FormatResult
	for _, r := range res {
		if r.Path == bad {
			badRes = r
		} else if r.Err != nil {
			t.Fatalf("good file failed: %v", r.Err)
		}
	}
	var se *parser.SyntaxError
	if !errors.As(badRes.Err, &se) {
		t.Fatalf("want SyntaxError, got %v", badRes.Err)
	}
	if badRes.Bag == nil || !badRes.Bag.HasErrors() {
		t.Fatal("syntax error not reported to the bag")
	}
	if got := readFile(t, bad); got != "var = 1;" {
		t.Fatalf("broken file was rewritten: %q", got)
	}
}

func TestFormatPathsVerify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	writeFile(t, path, "if(a){b()}else{c()}")
	res, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Options: format.DefaultOptions(), Verify: true, Stdout: true})
	if err != nil {
		t.Fatal(err)
	}
	if res[0].Err != nil {
		t.Fatalf("verify failed: %v", res[0].Err)
	}
}

func TestFormatPathsNoFiles(t *testing.T) {
	if _, err := FormatPaths(context.Background(), []string{t.TempDir()}, FormatOptions{Options: format.DefaultOptions()}); err == nil {
		t.Fatal("want error for empty directory")
	}
}

func TestFormatSource(t *testing.T) {
	res := FormatSource(context.Background(), "<stdin>", []byte("foo();bar();"), FormatOptions{Options: format.DefaultOptions()})
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if got, want := string(res.Formatted), "foo();\nbar();\n"; got != want || !res.Changed {
		t.Fatalf("want %q got %q (changed=%v)", want, got, res.Changed)
	}
}
