package ast

import (
	"esfmt/internal/token"
)

// Tree owns the nodes of one file together with the token stream they point into.
type Tree struct {
	nodes  *Arena[Node]
	Root   NodeID
	Tokens *token.List
}

// NewTree creates an empty tree over tokens; capHint sizes the node arena.
func NewTree(tokens *token.List, capHint uint) *Tree {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Tree{nodes: NewArena[Node](capHint), Tokens: tokens}
}

// New allocates a node of kind k starting at start.
func (t *Tree) New(k Kind, start *token.Token) NodeID {
	return NodeID(t.nodes.Allocate(Node{Kind: k, Start: start, End: start}))
}

// Get returns the node for id or nil for NoNodeID.
func (t *Tree) Get(id NodeID) *Node {
	return t.nodes.Get(uint32(id))
}

// Kind returns the kind of id, Invalid for NoNodeID.
func (t *Tree) Kind(id NodeID) Kind {
	if n := t.Get(id); n != nil {
		return n.Kind
	}
	return Invalid
}

// Parent returns the parent of id, NoNodeID for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.Get(id); n != nil {
		return n.Parent
	}
	return NoNodeID
}

// Len returns the number of allocated nodes.
func (t *Tree) Len() int {
	return int(t.nodes.Len())
}

// LinkParents sets Parent on every node reachable from Root.
func (t *Tree) LinkParents() {
	if !t.Root.IsValid() {
		return
	}
	stack := []NodeID{t.Root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range t.Children(id) {
			t.Get(c).Parent = id
			stack = append(stack, c)
		}
	}
}
