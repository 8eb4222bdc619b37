package ast

import "esfmt/internal/token"

// Node is one syntactic construct. Only the fields meaningful for Kind are set;
// the field names follow ESTree.
type Node struct {
	Kind   Kind
	Parent NodeID // не владеет: дерево принадлежит родителю сверху вниз
	Start  *token.Token
	End    *token.Token

	// Tokens of the construct that are not nodes themselves.
	//   Op     operator of unary/update/binary/logical/assignment, `else` of an if,
	//          `:` of a property, `=` of a declarator, keyword of a declaration
	//   Open   `(` of a test/parameter/argument list, `{` or `[` of a literal
	//   Close  the matching closer
	//   Commas separators of parameters, arguments, elements, properties, declarators
	Op     *token.Token
	Open   *token.Token
	Close  *token.Token
	Commas []*token.Token

	Name     string // Identifier
	Raw      string // Literal, как в исходнике
	Operator string
	Prefix   bool
	Computed bool
	DeclKind string // "var"/"const"/"let" для деклараций, "init"/"get"/"set" для Property

	ID           NodeID
	Init         NodeID
	Test         NodeID
	Update       NodeID
	Consequent   NodeID
	Alternate    NodeID
	Left         NodeID
	Right        NodeID
	Argument     NodeID
	Callee       NodeID
	Object       NodeID
	Property     NodeID
	Key          NodeID
	Value        NodeID
	Body         NodeID
	Label        NodeID
	Discriminant NodeID
	Block        NodeID
	Handler      NodeID
	Finalizer    NodeID
	Param        NodeID
	Expression   NodeID

	Statements   []NodeID // Program, BlockStatement, SwitchCase consequent
	Params       []NodeID
	Arguments    []NodeID
	Elements     []NodeID // NoNodeID marks an array hole
	Properties   []NodeID
	Declarations []NodeID
	Expressions  []NodeID
	Cases        []NodeID
}
