package ast

// PostOrder calls visit for every node under root, children before their parent.
// Siblings are visited in source order. The traversal is iterative, so deeply
// nested input does not grow the goroutine stack.
func (t *Tree) PostOrder(root NodeID, visit func(NodeID)) {
	if !root.IsValid() {
		return
	}
	type frame struct {
		id       NodeID
		children []NodeID
		next     int
	}
	stack := []frame{{id: root, children: t.Children(root)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.children) {
			c := top.children[top.next]
			top.next++
			stack = append(stack, frame{id: c, children: t.Children(c)})
			continue
		}
		id := top.id
		stack = stack[:len(stack)-1]
		visit(id)
	}
}

// Ancestors returns the parent chain of id, nearest first.
func (t *Tree) Ancestors(id NodeID) []NodeID {
	var out []NodeID
	for p := t.Parent(id); p.IsValid(); p = t.Parent(p) {
		out = append(out, p)
	}
	return out
}
