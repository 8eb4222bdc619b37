package format

import (
	"bytes"
	"context"
	"strconv"

	"esfmt/internal/ast"
	"esfmt/internal/diag"
	"esfmt/internal/lexer"
	"esfmt/internal/parser"
	"esfmt/internal/source"
	"esfmt/internal/token"
	"esfmt/internal/trace"
)

// Hook formats one construct. It is called after the children of id were
// formatted and after the node got its indent annotation.
type Hook func(c *Context, id ast.NodeID)

// Formatter holds the options and the hook table. Register hooks before the
// Formatter is shared; Format itself does not mutate the Formatter.
type Formatter struct {
	opts  Options
	hooks map[ast.Kind]Hook
}

// New returns a Formatter with the built-in hooks registered.
func New(opts Options) *Formatter {
	f := &Formatter{opts: opts.Clone(), hooks: make(map[ast.Kind]Hook)}
	f.Register(ast.FunctionDeclaration, formatFunction)
	f.Register(ast.FunctionExpression, formatFunction)
	f.Register(ast.BinaryExpression, formatBinary)
	f.Register(ast.LogicalExpression, formatBinary)
	f.Register(ast.CallExpression, formatCall)
	f.Register(ast.NewExpression, formatNew)
	f.Register(ast.ObjectExpression, formatObject)
	f.Register(ast.VariableDeclaration, formatVariableDeclaration)
	f.Register(ast.AssignmentExpression, formatAssignment)
	f.Register(ast.IfStatement, formatIf)
	return f
}

// Register installs h for kind, replacing the previous hook. A nil h removes it.
func (f *Formatter) Register(kind ast.Kind, h Hook) {
	if h == nil {
		delete(f.hooks, kind)
		return
	}
	f.hooks[kind] = h
}

// Options returns a copy of the formatter configuration.
func (f *Formatter) Options() Options {
	return f.opts.Clone()
}

// Format reformats src. A parse failure is returned as *parser.SyntaxError and
// no output is produced.
func (f *Formatter) Format(ctx context.Context, src []byte) ([]byte, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<input>", src))
	return f.FormatFile(ctx, file, nil)
}

// FormatFile reformats an already loaded file; diagnostics go to rep (may be nil).
func (f *Formatter) FormatFile(ctx context.Context, file *source.File, rep diag.Reporter) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.opts.Validate(); err != nil {
		return nil, err
	}

	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)
	pass := func(name string) *trace.Span {
		return trace.Begin(tracer, trace.ScopePass, name, parent)
	}

	sp := pass("lex")
	toks := lexer.Tokenize(file, lexer.Options{Reporter: rep})
	sp.WithExtra("tokens", strconv.Itoa(toks.Len())).End("")

	c := newContext(&f.opts, file, toks, f.hooks)
	c.tracer = tracer
	c.span = parent

	sp = pass("strip")
	sp.WithExtra("removed", strconv.Itoa(c.strip())).End("")

	sp = pass("parse")
	tree, err := parser.Parse(file, toks, parser.Options{Reporter: rep})
	if err != nil {
		sp.End(err.Error())
		return nil, err
	}
	sp.WithExtra("nodes", strconv.Itoa(tree.Len())).End("")
	c.attach(tree)

	sp = pass("sanitize")
	sp.WithExtra("removed", strconv.Itoa(c.sanitize())).End("")

	sp = pass("walk")
	c.walk()
	sp.End("")

	sp = pass("indent")
	sp.WithExtra("lines", strconv.Itoa(c.materialise())).End("")

	sp = pass("serialise")
	out := serialise(toks, f.opts.LineBreak.Value)
	sp.WithExtra("bytes", strconv.Itoa(len(out))).End("")
	return out, nil
}

// serialise concatenates token values; line breaks are written with br.
func serialise(l *token.List, br string) []byte {
	var buf bytes.Buffer
	for tok := l.First; tok != nil; tok = tok.Next {
		if tok.Kind == token.LineBreak {
			buf.WriteString(br)
			continue
		}
		buf.WriteString(tok.Value)
	}
	return buf.Bytes()
}

// Source formats src with the defaults overlaid by ov.
func Source(src []byte, ov *Overrides) ([]byte, error) {
	return New(DefaultOptions().Merge(ov)).Format(context.Background(), src)
}
