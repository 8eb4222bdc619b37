// Package diag defines the diagnostic model shared by the lexer, the parser and
// the driver.
//
// Producers emit through the Reporter interface; BagReporter collects into a
// Bag which the CLI sorts and renders with internal/diagfmt. Package diag does
// no formatting and no IO.
//
// Codes are grouped by range: 1000 lexer, 2000 parser, 4000 IO, 5000 formatter.
package diag
