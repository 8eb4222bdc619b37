package format

import (
	"fmt"
	"maps"
	"strings"
)

// Options is the complete configuration of one formatting run. Tables map a
// position label (an ESTree type name such as "IfStatement" or a role such as
// "ParameterComma") to whether a space or line break is required there.
type Options struct {
	Indent     IndentOptions     `toml:"indent"`
	LineBreak  LineBreakOptions  `toml:"line_break"`
	WhiteSpace WhiteSpaceOptions `toml:"white_space"`
}

// IndentOptions: Value is one indentation unit, Nodes lists the node types
// whose direct children gain one level.
type IndentOptions struct {
	Value string          `toml:"value"`
	Nodes map[string]bool `toml:"nodes"`
}

type LineBreakOptions struct {
	Value          string          `toml:"value"`
	KeepEmptyLines bool            `toml:"keep_empty_lines"`
	Before         map[string]bool `toml:"before"`
	After          map[string]bool `toml:"after"`
}

type WhiteSpaceOptions struct {
	Value          string          `toml:"value"`
	RemoveTrailing bool            `toml:"remove_trailing"`
	Before         map[string]bool `toml:"before"`
	After          map[string]bool `toml:"after"`
}

// DefaultOptions returns the documented defaults. Every call builds fresh maps.
func DefaultOptions() Options {
	return Options{
		Indent: IndentOptions{
			Value: "    ",
			Nodes: map[string]bool{
				"FunctionDeclaration": true,
				"FunctionExpression":  true,
				"ObjectExpression":    true,
				"IfStatement":         true,
				"VariableDeclarator":  false,
			},
		},
		LineBreak: LineBreakOptions{
			Value:          "\n",
			KeepEmptyLines: true,
			Before: map[string]bool{
				"AssignmentExpression":            true,
				"BlockStatement":                  false,
				"BlockStatementClosingBrace":      false,
				"CallExpression":                  true,
				"FunctionDeclaration":             true,
				"FunctionDeclarationClosingBrace": true,
				"FunctionDeclarationOpeningBrace": false,
				"FunctionExpressionClosingBrace":  true,
				"FunctionExpressionOpeningBrace":  false,
				"IfOpeningBrace":                  false,
				"IfClosingBrace":                  true,
				"ElseOpeningBrace":                false,
				"ElseClosingBrace":                true,
				"ElseIfOpeningBrace":              false,
				"ElseIfClosingBrace":              true,
				"IfStatement":                     true,
				"ObjectExpressionClosingBrace":    true,
				"Property":                        true,
				"ReturnStatement":                 true,
				"VariableName":                    true,
				"VariableValue":                   false,
				"VariableDeclaration":             true,
			},
			After: map[string]bool{
				"AssignmentExpression":            true,
				"BlockStatement":                  false,
				"BlockStatementClosingBrace":      false,
				"CallExpression":                  true,
				"FunctionDeclaration":             false,
				"FunctionDeclarationClosingBrace": true,
				"FunctionDeclarationOpeningBrace": true,
				"FunctionExpressionClosingBrace":  false,
				"FunctionExpressionOpeningBrace":  true,
				"IfOpeningBrace":                  true,
				"IfClosingBrace":                  true,
				"ElseOpeningBrace":                true,
				"ElseClosingBrace":                true,
				"ElseIfOpeningBrace":              true,
				"ElseIfClosingBrace":              true,
				"IfStatement":                     true,
				"ObjectExpressionOpeningBrace":    true,
				"Property":                        false,
				"ReturnStatement":                 true,
			},
		},
		WhiteSpace: WhiteSpaceOptions{
			Value:          " ",
			RemoveTrailing: true,
			Before: map[string]bool{
				"ArgumentComma":                   false,
				"ArgumentList":                    false,
				"AssignmentOperator":              true,
				"BinaryExpressionOperator":        true,
				"FunctionDeclarationClosingBrace": true,
				"FunctionDeclarationOpeningBrace": true,
				"FunctionExpressionClosingBrace":  true,
				"FunctionExpressionOpeningBrace":  true,
				"IfOpeningBrace":                  true,
				"IfClosingBrace":                  false,
				"ElseOpeningBrace":                true,
				"ElseClosingBrace":                false,
				"ElseIfOpeningBrace":              true,
				"ElseIfClosingBrace":              false,
				"IfTest":                          true,
				"LineComment":                     true,
				"PropertyValue":                   true,
				"ParameterComma":                  false,
				"ParameterList":                   false,
				"VariableValue":                   true,
			},
			After: map[string]bool{
				"ArgumentComma":            true,
				"ArgumentList":             false,
				"AssignmentOperator":       true,
				"BinaryExpressionOperator": true,
				"FunctionName":             false,
				"IfOpeningBrace":           false,
				"IfClosingBrace":           true,
				"ElseOpeningBrace":         false,
				"ElseClosingBrace":         false,
				"ElseIfOpeningBrace":       false,
				"ElseIfClosingBrace":       false,
				"IfTest":                   true,
				"PropertyName":             true,
				"ParameterComma":           true,
				"ParameterList":            false,
				"VariableName":             true,
				"VarToken":                 true,
			},
		},
	}
}

// Overrides is a partial configuration as read from a config file or built by
// a caller. Nil pointers and absent map keys keep the base value.
type Overrides struct {
	Indent     *IndentOverrides     `toml:"indent"`
	LineBreak  *LineBreakOverrides  `toml:"line_break"`
	WhiteSpace *WhiteSpaceOverrides `toml:"white_space"`
}

type IndentOverrides struct {
	Value *string         `toml:"value"`
	Nodes map[string]bool `toml:"nodes"`
}

type LineBreakOverrides struct {
	Value          *string         `toml:"value"`
	KeepEmptyLines *bool           `toml:"keep_empty_lines"`
	Before         map[string]bool `toml:"before"`
	After          map[string]bool `toml:"after"`
}

type WhiteSpaceOverrides struct {
	Value          *string         `toml:"value"`
	RemoveTrailing *bool           `toml:"remove_trailing"`
	Before         map[string]bool `toml:"before"`
	After          map[string]bool `toml:"after"`
}

// Clone returns a deep copy; the copy shares no maps with o.
func (o Options) Clone() Options {
	c := o
	c.Indent.Nodes = maps.Clone(o.Indent.Nodes)
	c.LineBreak.Before = maps.Clone(o.LineBreak.Before)
	c.LineBreak.After = maps.Clone(o.LineBreak.After)
	c.WhiteSpace.Before = maps.Clone(o.WhiteSpace.Before)
	c.WhiteSpace.After = maps.Clone(o.WhiteSpace.After)
	return c
}

// Merge overlays ov on a copy of o. o itself is never modified.
func (o Options) Merge(ov *Overrides) Options {
	out := o.Clone()
	if ov == nil {
		return out
	}
	if in := ov.Indent; in != nil {
		if in.Value != nil {
			out.Indent.Value = *in.Value
		}
		out.Indent.Nodes = overlay(out.Indent.Nodes, in.Nodes)
	}
	if lb := ov.LineBreak; lb != nil {
		if lb.Value != nil {
			out.LineBreak.Value = *lb.Value
		}
		if lb.KeepEmptyLines != nil {
			out.LineBreak.KeepEmptyLines = *lb.KeepEmptyLines
		}
		out.LineBreak.Before = overlay(out.LineBreak.Before, lb.Before)
		out.LineBreak.After = overlay(out.LineBreak.After, lb.After)
	}
	if ws := ov.WhiteSpace; ws != nil {
		if ws.Value != nil {
			out.WhiteSpace.Value = *ws.Value
		}
		if ws.RemoveTrailing != nil {
			out.WhiteSpace.RemoveTrailing = *ws.RemoveTrailing
		}
		out.WhiteSpace.Before = overlay(out.WhiteSpace.Before, ws.Before)
		out.WhiteSpace.After = overlay(out.WhiteSpace.After, ws.After)
	}
	return out
}

func overlay(dst, src map[string]bool) map[string]bool {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]bool, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// Validate rejects units that would change program text.
func (o Options) Validate() error {
	if strings.Trim(o.Indent.Value, " \t") != "" {
		return &OptionError{Key: "indent.value", Value: o.Indent.Value, Reason: "only spaces and tabs are allowed"}
	}
	if strings.Trim(o.WhiteSpace.Value, " \t") != "" {
		return &OptionError{Key: "white_space.value", Value: o.WhiteSpace.Value, Reason: "only spaces and tabs are allowed"}
	}
	switch o.LineBreak.Value {
	case "\n", "\r\n", "\r":
	default:
		return &OptionError{Key: "line_break.value", Value: o.LineBreak.Value, Reason: `expected "\n", "\r\n" or "\r"`}
	}
	return nil
}

// OptionError describes an unusable configuration value.
type OptionError struct {
	Key    string
	Value  string
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("format: invalid %s %q: %s", e.Key, e.Value, e.Reason)
}
