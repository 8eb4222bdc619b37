package ast

// Kind is the syntactic category of a node. String() yields the ESTree type
// name, which is also the label used by formatter configuration.
type Kind uint8

const (
	Invalid Kind = iota

	Program

	// statements
	EmptyStatement
	BlockStatement
	ExpressionStatement
	IfStatement
	LabeledStatement
	BreakStatement
	ContinueStatement
	WithStatement
	SwitchStatement
	SwitchCase
	ReturnStatement
	ThrowStatement
	TryStatement
	CatchClause
	WhileStatement
	DoWhileStatement
	ForStatement
	ForInStatement
	DebuggerStatement

	// declarations
	FunctionDeclaration
	VariableDeclaration
	VariableDeclarator

	// expressions
	ThisExpression
	ArrayExpression
	ObjectExpression
	Property
	FunctionExpression
	SequenceExpression
	UnaryExpression
	BinaryExpression
	AssignmentExpression
	UpdateExpression
	LogicalExpression
	ConditionalExpression
	NewExpression
	CallExpression
	MemberExpression
	Identifier
	Literal

	kindCount
)

var kindNames = [...]string{
	Invalid:               "Invalid",
	Program:               "Program",
	EmptyStatement:        "EmptyStatement",
	BlockStatement:        "BlockStatement",
	ExpressionStatement:   "ExpressionStatement",
	IfStatement:           "IfStatement",
	LabeledStatement:      "LabeledStatement",
	BreakStatement:        "BreakStatement",
	ContinueStatement:     "ContinueStatement",
	WithStatement:         "WithStatement",
	SwitchStatement:       "SwitchStatement",
	SwitchCase:            "SwitchCase",
	ReturnStatement:       "ReturnStatement",
	ThrowStatement:        "ThrowStatement",
	TryStatement:          "TryStatement",
	CatchClause:           "CatchClause",
	WhileStatement:        "WhileStatement",
	DoWhileStatement:      "DoWhileStatement",
	ForStatement:          "ForStatement",
	ForInStatement:        "ForInStatement",
	DebuggerStatement:     "DebuggerStatement",
	FunctionDeclaration:   "FunctionDeclaration",
	VariableDeclaration:   "VariableDeclaration",
	VariableDeclarator:    "VariableDeclarator",
	ThisExpression:        "ThisExpression",
	ArrayExpression:       "ArrayExpression",
	ObjectExpression:      "ObjectExpression",
	Property:              "Property",
	FunctionExpression:    "FunctionExpression",
	SequenceExpression:    "SequenceExpression",
	UnaryExpression:       "UnaryExpression",
	BinaryExpression:      "BinaryExpression",
	AssignmentExpression:  "AssignmentExpression",
	UpdateExpression:      "UpdateExpression",
	LogicalExpression:     "LogicalExpression",
	ConditionalExpression: "ConditionalExpression",
	NewExpression:         "NewExpression",
	CallExpression:        "CallExpression",
	MemberExpression:      "MemberExpression",
	Identifier:            "Identifier",
	Literal:               "Literal",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// KindByName resolves an ESTree type name; used to validate configuration keys.
func KindByName(name string) (Kind, bool) {
	for k := Kind(1); k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return Invalid, false
}
