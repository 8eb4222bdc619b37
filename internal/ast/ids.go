package ast

// NodeID addresses a node in Tree; NoNodeID marks an absent child or the
// parent of the root.
type NodeID uint32

const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }
