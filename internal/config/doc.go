// Package config finds and reads `.esfmt.toml` files and turns them into
// format.Overrides. Absent keys keep the defaults; keys the formatter does not
// know are ignored.
package config
