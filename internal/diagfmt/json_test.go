package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"esfmt/internal/ast"
	"esfmt/internal/diag"
	"esfmt/internal/lexer"
	"esfmt/internal/parser"
	"esfmt/internal/source"
	"esfmt/internal/token"
)

func TestJSONDiagnostics(t *testing.T) {
	bag, fs := singleDiag(t, "test.js", "var a = foo;\n", 8, 11)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("want 1 diagnostic got %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Severity != "error" || d.Code != "SYN2001" || d.Message != "Unexpected token" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	loc := d.Location
	if loc.File != "test.js" || loc.StartByte != 8 || loc.EndByte != 11 {
		t.Fatalf("unexpected location %+v", loc)
	}
	if loc.StartLine != 1 || loc.StartCol != 9 || loc.EndCol != 12 {
		t.Fatalf("unexpected positions %+v", loc)
	}
}

func TestJSONWithoutPositions(t *testing.T) {
	bag, fs := singleDiag(t, "test.js", "x(;\n", 2, 3)
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if strings.Contains(buf.String(), "start_line") {
		t.Fatalf("positions present without IncludePositions:\n%s", buf.String())
	}
}

func TestJSONMax(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.js", []byte("a b c d\n"))
	bag := diag.NewBag(10)
	for i := range uint32(4) {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.SynUnexpectedToken,
			Message:  "Unexpected token",
			Primary:  source.Span{File: id, Start: i * 2, End: i*2 + 1},
		})
	}
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Fatalf("want 2 got %d", out.Count)
	}
}

func TestJSONNilBag(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, nil, nil, JSONOpts{}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"diagnostics": []`) {
		t.Fatalf("want empty array got %s", buf.String())
	}
}

func lexed(t *testing.T, src string) (*source.File, *token.List) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("t.js", []byte(src)))
	return f, lexer.Tokenize(f, lexer.Options{})
}

func TestFormatTokens(t *testing.T) {
	_, tokens := lexed(t, "a = 1;")

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != tokens.Len() {
		t.Fatalf("want %d lines got %d:\n%s", tokens.Len(), len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "Identifier") || !strings.Contains(lines[0], `"a" at 1:1-1:2`) {
		t.Fatalf("unexpected first line %q", lines[0])
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatalf("json: %v", err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != tokens.Len() {
		t.Fatalf("want %d tokens got %d", tokens.Len(), len(out))
	}
	if last := out[len(out)-1]; last.Kind != "Punctuator" || last.Value != ";" || last.Range != [2]uint32{5, 6} {
		t.Fatalf("unexpected last token %+v", last)
	}
}

func parsed(t *testing.T, src string) *ast.Tree {
	t.Helper()
	f, tokens := lexed(t, src)
	tree, err := parser.Parse(f, tokens, parser.Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return tree
}

func TestFormatASTPretty(t *testing.T) {
	tree := parsed(t, "var a = 1, b;")

	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, tree); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Program",
		"└─ VariableDeclaration var",
		"   ├─ VariableDeclarator",
		"   │  ├─ Identifier a",
		"   │  └─ Literal 1",
		"   └─ VariableDeclarator",
		"      └─ Identifier b",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("want %q in:\n%s", want, out)
		}
	}
}

func TestFormatASTJSON(t *testing.T) {
	tree := parsed(t, "f(x);")

	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, tree); err != nil {
		t.Fatalf("json: %v", err)
	}
	var root ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if root.Type != "Program" || len(root.Children) != 1 {
		t.Fatalf("unexpected root %+v", root)
	}
	stmt := root.Children[0]
	if stmt.Type != "ExpressionStatement" || stmt.Children[0].Type != "CallExpression" {
		t.Fatalf("unexpected statement %+v", stmt)
	}
	call := stmt.Children[0]
	if len(call.Children) != 2 || call.Children[0].Text != "f" || call.Children[1].Text != "x" {
		t.Fatalf("unexpected call %+v", call)
	}
	if root.Start != [2]uint32{1, 1} || root.End != [2]uint32{1, 6} {
		t.Fatalf("unexpected program extent %v..%v", root.Start, root.End)
	}
}

func TestFormatASTEmptyTree(t *testing.T) {
	if err := FormatASTPretty(&bytes.Buffer{}, nil); err == nil {
		t.Fatalf("want error for nil tree")
	}
}
