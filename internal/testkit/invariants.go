package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"esfmt/internal/ast"
	"esfmt/internal/source"
)

// CheckTreeInvariants runs the structural invariants the formatter relies on
// over a parsed file:
// 1) every child reachable from Root points back to its parent
// 2) a node's first token does not come after its last token
// 3) a child's token range lies inside its parent's range
// 4) no token range extends past the end of the file content
func CheckTreeInvariants(tree *ast.Tree, sf *source.File) error {
	if tree == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	if !tree.Root.IsValid() {
		return fmt.Errorf("tree has no root")
	}
	if p := tree.Parent(tree.Root); p.IsValid() {
		return fmt.Errorf("root has parent %d", p)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	seen := 0
	stack := []ast.NodeID{tree.Root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		seen++
		n := tree.Get(id)
		if n == nil {
			return fmt.Errorf("dangling node id=%d", id)
		}
		if err := checkRange(id, n, lenContent); err != nil {
			return err
		}
		for _, c := range tree.Children(id) {
			child := tree.Get(c)
			if child == nil {
				return fmt.Errorf("%s id=%d: dangling child %d", n.Kind, id, c)
			}
			if child.Parent != id {
				return fmt.Errorf("%s id=%d: parent link is %d, want %d", child.Kind, c, child.Parent, id)
			}
			if !covers(n, child) {
				return fmt.Errorf("%s id=%d %s lies outside parent %s id=%d %s",
					child.Kind, c, rangeOf(child), n.Kind, id, rangeOf(n))
			}
			stack = append(stack, c)
		}
		// каждый узел встречается один раз: дерево, а не граф
		if seen > tree.Len() {
			return fmt.Errorf("cycle: visited %d nodes, arena holds %d", seen, tree.Len())
		}
	}
	return nil
}

func checkRange(id ast.NodeID, n *ast.Node, lenContent uint32) error {
	if n.Start == nil || n.End == nil {
		// пустой Program не имеет токенов
		if n.Kind == ast.Program && n.Start == nil && n.End == nil {
			return nil
		}
		return fmt.Errorf("%s id=%d: missing start or end token", n.Kind, id)
	}
	if n.Start.Range.Start > n.End.Range.End {
		return fmt.Errorf("%s id=%d: inverted range %s", n.Kind, id, rangeOf(n))
	}
	if n.End.Range.End > lenContent {
		return fmt.Errorf("%s id=%d: range %s beyond content (%d bytes)", n.Kind, id, rangeOf(n), lenContent)
	}
	return nil
}

func covers(parent, child *ast.Node) bool {
	if parent.Start == nil || child.Start == nil {
		return true
	}
	return child.Start.Range.Start >= parent.Start.Range.Start && child.End.Range.End <= parent.End.Range.End
}

func rangeOf(n *ast.Node) string {
	if n.Start == nil || n.End == nil {
		return "[?]"
	}
	return fmt.Sprintf("[%d,%d)", n.Start.Range.Start, n.End.Range.End)
}
