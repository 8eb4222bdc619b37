package driver

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"esfmt/internal/ast"
	"esfmt/internal/format"
)

func TestOptionsDigestStable(t *testing.T) {
	a, err := OptionsDigest(format.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	for range 5 {
		b, err := OptionsDigest(format.DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Fatal("digest depends on map iteration order")
		}
	}
	opts := format.DefaultOptions()
	opts.LineBreak.Before["IfStatement"] = false
	c, err := OptionsDigest(opts)
	if err != nil {
		t.Fatal(err)
	}
	if a == c {
		t.Fatal("different options produced the same digest")
	}
}

func TestCacheSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	opts := format.DefaultOptions()
	c, err := OpenCache(dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	sum := Digest(sha256.Sum256([]byte("a;")))
	if c.Known(sum) {
		t.Fatal("empty cache knows a hash")
	}
	c.Mark(sum)
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}

	again, err := OpenCache(dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !again.Known(sum) || again.Len() != 1 {
		t.Fatal("hash lost after reload")
	}

	other := format.DefaultOptions()
	other.Indent.Value = "\t"
	fresh, err := OpenCache(dir, other)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Known(sum) {
		t.Fatal("cache leaked across option sets")
	}

	if err := again.Drop(); err != nil {
		t.Fatal(err)
	}
	if again.Known(sum) {
		t.Fatal("Drop kept entries")
	}
}

func TestCorruptCacheIsIgnored(t *testing.T) {
	dir := t.TempDir()
	opts := format.DefaultOptions()
	c, err := OpenCache(dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c.path(), []byte("not msgpack at all"), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err = OpenCache(dir, opts)
	if err != nil || c.Len() != 0 {
		t.Fatalf("corrupt cache: len=%d err=%v", c.Len(), err)
	}
}

func TestFormatPathsUsesCache(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	path := filepath.Join(src, "a.js")
	writeFile(t, path, "a=1;")

	cache, err := OpenCache(filepath.Join(dir, "cache"), format.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	opts := FormatOptions{Options: format.DefaultOptions(), Cache: cache}

	res, err := FormatPaths(context.Background(), []string{src}, opts)
	if err != nil || res[0].Err != nil || !res[0].Changed {
		t.Fatalf("first run: %+v %v", res, err)
	}
	res, err = FormatPaths(context.Background(), []string{src}, opts)
	if err != nil || !res[0].Cached || res[0].Changed {
		t.Fatalf("second run must hit the cache: %+v %v", res, err)
	}
}

func TestCacheKeepsOnlyFixedPoints(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	writeFile(t, path, "a;")

	cache, err := OpenCache(filepath.Join(dir, "cache"), format.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	opts := FormatOptions{Options: format.DefaultOptions(), Cache: cache}

	// каждый прогон дописывает к имени ещё один символ
	drifting := format.New(format.DefaultOptions())
	drifting.Register(ast.Identifier, func(c *format.Context, id ast.NodeID) {
		c.Node(id).Start.Value += "x"
	})
	res := formatSingleFile(context.Background(), drifting, path, opts)
	if res.Err != nil || !res.Changed {
		t.Fatalf("first run: %+v", res)
	}
	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cache.Known(Digest(sha256.Sum256(out))) {
		t.Fatalf("output %q is not a fixed point but was cached", out)
	}
	res = formatSingleFile(context.Background(), drifting, path, opts)
	if res.Cached || !res.Changed {
		t.Fatalf("second run must format again: %+v", res)
	}

	writeFile(t, path, "a=1;")
	res = formatSingleFile(context.Background(), format.New(format.DefaultOptions()), path, opts)
	if res.Err != nil || !res.Changed {
		t.Fatalf("stable run: %+v", res)
	}
	out, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cache.Known(Digest(sha256.Sum256(out))) {
		t.Fatalf("fixed point %q was not cached", out)
	}
}
