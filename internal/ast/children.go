package ast

// Children returns the direct children of id in source order.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.Get(id)
	if n == nil {
		return nil
	}
	var out []NodeID
	add := func(ids ...NodeID) {
		for _, c := range ids {
			if c.IsValid() {
				out = append(out, c)
			}
		}
	}

	switch n.Kind {
	case Program, BlockStatement:
		add(n.Statements...)
	case ExpressionStatement:
		add(n.Expression)
	case IfStatement, ConditionalExpression:
		add(n.Test, n.Consequent, n.Alternate)
	case LabeledStatement:
		add(n.Label, n.Body)
	case BreakStatement, ContinueStatement:
		add(n.Label)
	case WithStatement:
		add(n.Object, n.Body)
	case SwitchStatement:
		add(n.Discriminant)
		add(n.Cases...)
	case SwitchCase:
		add(n.Test)
		add(n.Statements...)
	case ReturnStatement, ThrowStatement, UnaryExpression, UpdateExpression:
		add(n.Argument)
	case TryStatement:
		add(n.Block, n.Handler, n.Finalizer)
	case CatchClause:
		add(n.Param, n.Body)
	case WhileStatement:
		add(n.Test, n.Body)
	case DoWhileStatement:
		add(n.Body, n.Test)
	case ForStatement:
		add(n.Init, n.Test, n.Update, n.Body)
	case ForInStatement:
		add(n.Left, n.Right, n.Body)
	case FunctionDeclaration, FunctionExpression:
		add(n.ID)
		add(n.Params...)
		add(n.Body)
	case VariableDeclaration:
		add(n.Declarations...)
	case VariableDeclarator:
		add(n.ID, n.Init)
	case ArrayExpression:
		add(n.Elements...)
	case ObjectExpression:
		add(n.Properties...)
	case Property:
		add(n.Key, n.Value)
	case SequenceExpression:
		add(n.Expressions...)
	case BinaryExpression, LogicalExpression, AssignmentExpression:
		add(n.Left, n.Right)
	case NewExpression, CallExpression:
		add(n.Callee)
		add(n.Arguments...)
	case MemberExpression:
		add(n.Object, n.Property)
	}
	return out
}
