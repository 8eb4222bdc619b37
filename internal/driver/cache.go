package driver

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"esfmt/internal/format"
)

// Current schema version - increment when cachePayload format changes
const cacheSchemaVersion uint16 = 1

// Digest is a sha256 sum.
type Digest [32]byte

// Cache remembers content hashes that are already formatted under one set
// of options, so unchanged files can be skipped. Thread-safe.
type Cache struct {
	mu      sync.RWMutex
	dir     string
	options Digest
	clean   map[Digest]struct{}
	dirty   bool
}

type cachePayload struct {
	Schema  uint16
	Options Digest
	Clean   []Digest
}

// DefaultCacheDir returns $XDG_CACHE_HOME/app or ~/.cache/app.
func DefaultCacheDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// OptionsDigest hashes the msgpack encoding of opts with sorted map keys, so
// equal configurations always produce the same digest.
func OptionsDigest(opts format.Options) (Digest, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.EncodeUint16(cacheSchemaVersion); err != nil {
		return Digest{}, err
	}
	if err := enc.Encode(opts); err != nil {
		return Digest{}, err
	}
	return sha256.Sum256(buf.Bytes()), nil
}

// OpenCache loads (or starts) the cache for opts under dir. A cache written by
// another schema or for other options is ignored.
func OpenCache(dir string, opts format.Options) (*Cache, error) {
	digest, err := OptionsDigest(opts)
	if err != nil {
		return nil, fmt.Errorf("cache: options digest: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	c := &Cache{dir: dir, options: digest, clean: make(map[Digest]struct{})}

	f, err := os.Open(c.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		// битый кэш просто начинаем заново
		return c, nil
	}
	if payload.Schema != cacheSchemaVersion || payload.Options != digest {
		return c, nil
	}
	for _, d := range payload.Clean {
		c.clean[d] = struct{}{}
	}
	return c, nil
}

func (c *Cache) path() string {
	return filepath.Join(c.dir, "fmt-"+hex.EncodeToString(c.options[:8])+".mp")
}

// Known reports whether content with this hash is already formatted.
func (c *Cache) Known(sum Digest) bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.clean[sum]
	return ok
}

// Mark records a formatted content hash.
func (c *Cache) Mark(sum Digest) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.clean[sum]; !ok {
		c.clean[sum] = struct{}{}
		c.dirty = true
	}
}

// Len returns the number of remembered hashes.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.clean)
}

// Save writes the cache atomically when it changed since it was opened.
func (c *Cache) Save() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return nil
	}

	payload := cachePayload{Schema: cacheSchemaVersion, Options: c.options, Clean: make([]Digest, 0, len(c.clean))}
	for d := range c.clean {
		payload.Clean = append(payload.Clean, d)
	}

	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, c.path()); err != nil {
		return err
	}
	c.dirty = false
	return nil
}

// Drop removes the cache file.
func (c *Cache) Drop() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clean = make(map[Digest]struct{})
	c.dirty = false
	if err := os.Remove(c.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
