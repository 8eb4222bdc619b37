package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"esfmt/internal/ast"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Start    [2]uint32       `json:"start"` // line, col
	End      [2]uint32       `json:"end"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTPretty печатает дерево с ├─/└─ отступами.
func FormatASTPretty(w io.Writer, tree *ast.Tree) error {
	if tree == nil || !tree.Root.IsValid() {
		return fmt.Errorf("empty tree")
	}
	var sb strings.Builder
	sb.WriteString(nodeLabel(tree, tree.Root))
	sb.WriteByte('\n')
	writeChildren(&sb, tree, tree.Root, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeChildren(sb *strings.Builder, tree *ast.Tree, id ast.NodeID, prefix string) {
	children := tree.Children(id)
	for i, child := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(nodeLabel(tree, child))
		sb.WriteByte('\n')
		writeChildren(sb, tree, child, prefix+next)
	}
}

func nodeLabel(tree *ast.Tree, id ast.NodeID) string {
	n := tree.Get(id)
	label := n.Kind.String()
	if text := nodeText(n); text != "" {
		label += " " + text
	}
	if n.Start != nil && n.End != nil {
		label += fmt.Sprintf(" (%d:%d-%d:%d)", n.Start.Loc.Start.Line, n.Start.Loc.Start.Col, n.End.Loc.End.Line, n.End.Loc.End.Col)
	}
	return label
}

func nodeText(n *ast.Node) string {
	switch {
	case n.Name != "":
		return n.Name
	case n.Raw != "":
		return n.Raw
	case n.Operator != "":
		return fmt.Sprintf("%q", n.Operator)
	case n.DeclKind != "" && n.Kind == ast.VariableDeclaration:
		return n.DeclKind
	}
	return ""
}

// FormatASTJSON выводит дерево вложенными объектами.
func FormatASTJSON(w io.Writer, tree *ast.Tree) error {
	if tree == nil || !tree.Root.IsValid() {
		return fmt.Errorf("empty tree")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildNodeJSON(tree, tree.Root))
}

func buildNodeJSON(tree *ast.Tree, id ast.NodeID) ASTNodeOutput {
	n := tree.Get(id)
	out := ASTNodeOutput{Type: n.Kind.String(), Text: nodeText(n)}
	if n.Start != nil {
		out.Start = [2]uint32{n.Start.Loc.Start.Line, n.Start.Loc.Start.Col}
	}
	if n.End != nil {
		out.End = [2]uint32{n.End.Loc.End.Line, n.End.Loc.End.Col}
	}
	for _, child := range tree.Children(id) {
		out.Children = append(out.Children, buildNodeJSON(tree, child))
	}
	return out
}
