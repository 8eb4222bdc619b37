package parser_test

import (
	"errors"
	"strings"
	"testing"

	"esfmt/internal/ast"
	"esfmt/internal/diag"
	"esfmt/internal/lexer"
	"esfmt/internal/parser"
	"esfmt/internal/source"
)

func parse(t *testing.T, src string) (*ast.Tree, error) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.Add("test.js", []byte(src), source.FileVirtual))
	toks := lexer.Tokenize(f, lexer.Options{})
	return parser.Parse(f, toks, parser.Options{})
}

func mustParse(t *testing.T, src string) *ast.Tree {
	t.Helper()
	tr, err := parse(t, src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return tr
}

// outline печатает виды узлов в пост-порядке.
func outline(tr *ast.Tree) string {
	var kinds []string
	tr.PostOrder(tr.Root, func(id ast.NodeID) {
		kinds = append(kinds, tr.Kind(id).String())
	})
	return strings.Join(kinds, " ")
}

func find(tr *ast.Tree, k ast.Kind) *ast.Node {
	var out *ast.Node
	tr.PostOrder(tr.Root, func(id ast.NodeID) {
		if out == nil && tr.Kind(id) == k {
			out = tr.Get(id)
		}
	})
	return out
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a = b;", "Identifier Identifier AssignmentExpression ExpressionStatement Program"},
		{"foo(1, x)", "Identifier Literal Identifier CallExpression ExpressionStatement Program"},
		{"var a = 1, b;", "Identifier Literal VariableDeclarator Identifier VariableDeclarator VariableDeclaration Program"},
		{"if (a) b(); else c();", "Identifier Identifier CallExpression ExpressionStatement Identifier CallExpression ExpressionStatement IfStatement Program"},
		{"x = {a: 1}", "Identifier Identifier Literal Property ObjectExpression AssignmentExpression ExpressionStatement Program"},
		{"function f(a){ return a }", "Identifier Identifier Identifier ReturnStatement BlockStatement FunctionDeclaration Program"},
		{"for (var k in o) {}", "Identifier VariableDeclarator VariableDeclaration Identifier BlockStatement ForInStatement Program"},
		{"for (;;) break;", "BreakStatement ForStatement Program"},
		{"do x++; while (x < 3)", "Identifier UpdateExpression ExpressionStatement Identifier Literal BinaryExpression DoWhileStatement Program"},
		{"try { a } catch (e) {} finally {}", "Identifier ExpressionStatement BlockStatement Identifier BlockStatement CatchClause BlockStatement TryStatement Program"},
		{"switch (x) { case 1: break; default: }", "Identifier Literal BreakStatement SwitchCase SwitchCase SwitchStatement Program"},
		{"a && b || c", "Identifier Identifier LogicalExpression Identifier LogicalExpression ExpressionStatement Program"},
		{"new A(1).b[c]", "Identifier Literal NewExpression Identifier MemberExpression Identifier MemberExpression ExpressionStatement Program"},
		{"lbl: while (1) continue lbl;", "Identifier Literal Identifier ContinueStatement WhileStatement LabeledStatement Program"},
		{"[1,,2]", "Literal Literal ArrayExpression ExpressionStatement Program"},
		{"o = {get x() { return 1 }}", "Identifier Identifier Literal ReturnStatement BlockStatement FunctionExpression Property ObjectExpression AssignmentExpression ExpressionStatement Program"},
	}
	for _, tt := range tests {
		tr := mustParse(t, tt.src)
		if got := outline(tr); got != tt.want {
			t.Fatalf("%q: want %q got %q", tt.src, tt.want, got)
		}
	}
}

func TestPrecedence(t *testing.T) {
	tr := mustParse(t, "a + b * c - d")
	root := tr.Get(tr.Get(tr.Get(tr.Root).Statements[0]).Expression)
	if root.Operator != "-" {
		t.Fatalf("top operator: want %q got %q", "-", root.Operator)
	}
	left := tr.Get(root.Left)
	if left.Operator != "+" || tr.Get(left.Right).Operator != "*" {
		t.Fatalf("unexpected shape:\n%s", dump(t, tr))
	}
}

func TestParenthesisedStart(t *testing.T) {
	tr := mustParse(t, "(a + b) * c")
	n := tr.Get(tr.Get(tr.Get(tr.Root).Statements[0]).Expression)
	if n.Start.Value != "(" || n.End.Value != "c" {
		t.Fatalf("want span (..c got %s..%s", n.Start.Value, n.End.Value)
	}
}

func TestASI(t *testing.T) {
	tr := mustParse(t, "a\nb\nreturnValue()")
	if got := len(tr.Get(tr.Root).Statements); got != 3 {
		t.Fatalf("want 3 statements got %d", got)
	}
	tr = mustParse(t, "function f() { return\n1 }")
	ret := find(tr, ast.ReturnStatement)
	if ret == nil || ret.Argument.IsValid() {
		t.Fatalf("return followed by newline must have no argument")
	}
	tr = mustParse(t, "a\n++b")
	if got := len(tr.Get(tr.Root).Statements); got != 2 {
		t.Fatalf("postfix across newline: want 2 statements got %d", got)
	}
}

func TestDelimiterTokens(t *testing.T) {
	tr := mustParse(t, "if (x) { f(a, b) } else {}")
	ifs := find(tr, ast.IfStatement)
	if ifs.Open.Value != "(" || ifs.Close.Value != ")" || ifs.Op.Value != "else" {
		t.Fatalf("if delimiters not recorded: %+v", ifs)
	}
	call := find(tr, ast.CallExpression)
	if len(call.Commas) != 1 || call.Open.Value != "(" || call.Close.Value != ")" {
		t.Fatalf("call delimiters not recorded")
	}
	blk := tr.Get(ifs.Consequent)
	if blk.Open.Value != "{" || blk.Close.Value != "}" {
		t.Fatalf("block braces not recorded")
	}

	tr = mustParse(t, "var a = 1, b = 2")
	decl := find(tr, ast.VariableDeclaration)
	if decl.Op.Value != "var" || decl.DeclKind != "var" || len(decl.Commas) != 1 {
		t.Fatalf("declaration tokens not recorded")
	}
	if d := find(tr, ast.VariableDeclarator); d.Op == nil || d.Op.Value != "=" {
		t.Fatalf("declarator '=' not recorded")
	}
}

func TestParentLinks(t *testing.T) {
	tr := mustParse(t, "function f(){ if (a) { b = c } }")
	tr.PostOrder(tr.Root, func(id ast.NodeID) {
		for _, c := range tr.Children(id) {
			if tr.Parent(c) != id {
				t.Fatalf("child %s of %s has wrong parent", tr.Kind(c), tr.Kind(id))
			}
		}
	})
	if tr.Parent(tr.Root).IsValid() {
		t.Fatalf("root must have no parent")
	}
}

func TestLetDeclaration(t *testing.T) {
	tr := mustParse(t, "let x = 1; let = 2")
	if d := find(tr, ast.VariableDeclaration); d == nil || d.DeclKind != "let" {
		t.Fatalf("let declaration not recognised")
	}
	if find(tr, ast.AssignmentExpression) == nil {
		t.Fatalf("`let = 2` must stay an assignment")
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
		msg  string
	}{
		{"var = 1", diag.SynUnexpectedToken, "Line 1: Unexpected token ="},
		{"foo(", diag.SynUnexpectedEOF, "Line 1: Unexpected end of input"},
		{"a b", diag.SynUnexpectedToken, "Line 1: Unexpected identifier"},
		{"1 = 2", diag.SynInvalidAssignTarget, "Line 1: Invalid left-hand side in assignment"},
		{"return 1", diag.SynIllegalReturn, "Line 1: Illegal return statement"},
		{"\nbreak;", diag.SynIllegalBreak, "Line 2: Illegal break statement"},
		{"x = 'a' 'b'", diag.SynUnexpectedToken, "Line 1: Unexpected string"},
		{"try {}", diag.SynUnexpectedEOF, "Line 1: Unexpected end of input"},
		{"a = #", diag.SynUnexpectedToken, "Line 1: Unexpected token ILLEGAL"},
	}
	for _, tt := range tests {
		_, err := parse(t, tt.src)
		if err == nil {
			t.Fatalf("%q: expected error", tt.src)
		}
		var se *parser.SyntaxError
		if !errors.As(err, &se) {
			t.Fatalf("%q: want *SyntaxError got %T", tt.src, err)
		}
		if se.Code != tt.code || se.Error() != tt.msg {
			t.Fatalf("%q: want %v %q got %v %q", tt.src, tt.code, tt.msg, se.Code, se.Error())
		}
		if !parser.IsSyntaxError(err) {
			t.Fatalf("IsSyntaxError must hold for %q", tt.src)
		}
	}
}

func TestReporterReceivesError(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.Add("bad.js", []byte("if ("), source.FileVirtual))
	bag := diag.NewBag(10)
	_, err := parser.Parse(f, lexer.Tokenize(f, lexer.Options{}), parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if err == nil || !bag.HasErrors() {
		t.Fatalf("error must be reported to the bag")
	}
}

func TestEmptyProgram(t *testing.T) {
	for _, src := range []string{"", "  \n// only comment\n"} {
		tr := mustParse(t, src)
		if got := outline(tr); got != "Program" {
			t.Fatalf("%q: want Program got %q", src, got)
		}
	}
}

func dump(t *testing.T, tr *ast.Tree) string {
	t.Helper()
	var sb strings.Builder
	if err := tr.Dump(&sb); err != nil {
		t.Fatal(err)
	}
	return sb.String()
}
