package format

import (
	"esfmt/internal/ast"
	"esfmt/internal/token"
)

// bypassIndent: узлы, чьё положение задаёт родитель или собственные дети.
func bypassIndent(k ast.Kind) bool {
	switch k {
	case ast.BlockStatement, ast.Identifier, ast.Literal, ast.LogicalExpression:
		return true
	}
	return false
}

// bypassChildIndent: родитель сам расставляет своих прямых детей.
func bypassChildIndent(k ast.Kind) bool {
	switch k {
	case ast.IfStatement, ast.CallExpression, ast.ExpressionStatement,
		ast.Property, ast.ReturnStatement, ast.VariableDeclarator:
		return true
	}
	return false
}

// bypassAutomaticLineBreak: these kinds break lines only from their hooks.
func bypassAutomaticLineBreak(k ast.Kind) bool {
	return k == ast.CallExpression || k == ast.AssignmentExpression
}

// unnecessaryWhiteSpace: a WhiteSpace token next to one of these kinds is dropped by sanitize.
func unnecessaryWhiteSpace(k token.Kind) bool {
	switch k {
	case token.WhiteSpace, token.LineBreak, token.LineComment, token.BlockComment, token.Punctuator:
		return true
	}
	return false
}

// statementList reports whether k holds a list of statements directly.
func statementList(k ast.Kind) bool {
	return k == ast.Program || k == ast.BlockStatement
}
