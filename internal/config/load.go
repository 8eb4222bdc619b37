package config

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"esfmt/internal/ast"
	"esfmt/internal/format"
)

// fileConfig mirrors the file layout. Scalars are plain values here;
// MetaData.IsDefined decides whether they become overrides.
type fileConfig struct {
	Indent struct {
		Value string          `toml:"value"`
		Nodes map[string]bool `toml:"nodes"`
	} `toml:"indent"`
	LineBreak struct {
		Value          string          `toml:"value"`
		KeepEmptyLines bool            `toml:"keep_empty_lines"`
		Before         map[string]bool `toml:"before"`
		After          map[string]bool `toml:"after"`
	} `toml:"line_break"`
	WhiteSpace struct {
		Value          string          `toml:"value"`
		RemoveTrailing bool            `toml:"remove_trailing"`
		Before         map[string]bool `toml:"before"`
		After          map[string]bool `toml:"after"`
	} `toml:"white_space"`
}

// File is a decoded configuration file.
type File struct {
	Path      string
	Overrides *format.Overrides
	// UnknownNodes lists indent.nodes keys that name no syntax node.
	UnknownNodes []string
}

// Load decodes the file at path.
func Load(path string) (*File, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return build(path, &raw, meta), nil
}

// Decode reads a configuration from r; name is used in messages only.
func Decode(name string, r io.Reader) (*File, error) {
	var raw fileConfig
	meta, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
	}
	return build(name, &raw, meta), nil
}

func build(path string, raw *fileConfig, meta toml.MetaData) *File {
	ov := &format.Overrides{}
	if meta.IsDefined("indent") {
		ov.Indent = &format.IndentOverrides{Nodes: raw.Indent.Nodes}
		if meta.IsDefined("indent", "value") {
			ov.Indent.Value = &raw.Indent.Value
		}
	}
	if meta.IsDefined("line_break") {
		ov.LineBreak = &format.LineBreakOverrides{Before: raw.LineBreak.Before, After: raw.LineBreak.After}
		if meta.IsDefined("line_break", "value") {
			ov.LineBreak.Value = &raw.LineBreak.Value
		}
		if meta.IsDefined("line_break", "keep_empty_lines") {
			ov.LineBreak.KeepEmptyLines = &raw.LineBreak.KeepEmptyLines
		}
	}
	if meta.IsDefined("white_space") {
		ov.WhiteSpace = &format.WhiteSpaceOverrides{Before: raw.WhiteSpace.Before, After: raw.WhiteSpace.After}
		if meta.IsDefined("white_space", "value") {
			ov.WhiteSpace.Value = &raw.WhiteSpace.Value
		}
		if meta.IsDefined("white_space", "remove_trailing") {
			ov.WhiteSpace.RemoveTrailing = &raw.WhiteSpace.RemoveTrailing
		}
	}

	f := &File{Path: path, Overrides: ov}
	for name := range raw.Indent.Nodes {
		if _, ok := ast.KindByName(name); !ok {
			f.UnknownNodes = append(f.UnknownNodes, name)
		}
	}
	sort.Strings(f.UnknownNodes)
	return f
}

// Resolve returns the overrides for files under startDir. An explicit path
// wins over discovery; with neither, the result is nil overrides and an
// empty path.
func Resolve(startDir, explicit string) (*File, error) {
	path := strings.TrimSpace(explicit)
	if path == "" {
		found, ok, err := Find(startDir)
		if err != nil || !ok {
			return nil, err
		}
		path = found
	}
	return Load(path)
}

// Encode writes opts as a complete configuration file.
func Encode(w io.Writer, opts format.Options) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	return enc.Encode(opts)
}
