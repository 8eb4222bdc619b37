package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented outline of the tree: kind, extra detail and the
// text of the first and last token of every node.
func (t *Tree) Dump(w io.Writer) error {
	return t.dump(w, t.Root, 0)
}

func (t *Tree) dump(w io.Writer, id NodeID, depth int) error {
	n := t.Get(id)
	if n == nil {
		return nil
	}
	var detail string
	switch n.Kind {
	case Identifier:
		detail = " " + n.Name
	case Literal:
		detail = " " + n.Raw
	case BinaryExpression, LogicalExpression, AssignmentExpression, UnaryExpression, UpdateExpression:
		detail = " " + n.Operator
	case VariableDeclaration:
		detail = " " + n.DeclKind
	}
	var first, last string
	if n.Start != nil {
		first = n.Start.Value
	}
	if n.End != nil {
		last = n.End.Value
	}
	if _, err := fmt.Fprintf(w, "%s%s%s [%q..%q]\n", strings.Repeat("  ", depth), n.Kind, detail, first, last); err != nil {
		return err
	}
	for _, c := range t.Children(id) {
		if err := t.dump(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
