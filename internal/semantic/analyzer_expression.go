package semantic

import (
	"petit/internal/ast"
	"petit/internal/errors"
	"petit/internal/types"
)

// checkExpr synthesizes the type of an expression bottom-up. Each operator
// node counts once toward the OP metric regardless of how many operands it
// folds together; a node carrying no operator is transparent and counts
// nothing.
func (a *Analyzer) checkExpr(expr ast.Expr) (types.Type, error) {
	switch node := expr.(type) {
	case *ast.CompExpr:
		return a.checkCompExpr(node)
	case *ast.AddExpr:
		return a.checkChainExpr(node.Operands, len(node.Ops) > 0, types.Number, node.NodePos())
	case *ast.MulExpr:
		return a.checkChainExpr(node.Operands, len(node.Ops) > 0, types.Number, node.NodePos())
	case *ast.BoolExpr:
		return a.checkChainExpr(node.Operands, len(node.Ops) > 0, types.Bool, node.NodePos())
	case *ast.NotExpr:
		return a.checkPrefixExpr(node.Value, node.Ops, types.Bool, node.NodePos())
	case *ast.UnaExpr:
		return a.checkPrefixExpr(node.Value, node.Ops, types.Number, node.NodePos())
	case *ast.GenValue:
		return a.checkGenValue(node)
	case *ast.BoolValue:
		return types.Bool, nil
	case *ast.IntValue:
		return types.Number, nil
	case *ast.Identifier:
		return a.checkIdentifier(node)
	default:
		return types.Number, errors.InvalidExpressionType(expr.NodePos())
	}
}

// checkCompExpr handles a comparison. Equality accepts any pair of matching
// types; ordering is defined on numbers only.
func (a *Analyzer) checkCompExpr(expr *ast.CompExpr) (types.Type, error) {
	if expr.Op == "" {
		return a.checkExpr(expr.Operands[0])
	}

	left, err := a.checkExpr(expr.Operands[0])
	if err != nil {
		return left, err
	}
	right, err := a.checkExpr(expr.Operands[1])
	if err != nil {
		return right, err
	}

	switch expr.Op {
	case "==", "!=":
		if left != right {
			return types.Bool, errors.InvalidExpressionType(expr.Pos)
		}
	default: // < > <= >=
		if left != types.Number || right != types.Number {
			return types.Bool, errors.InvalidExpressionType(expr.Pos)
		}
	}

	a.metrics.Op++
	return types.Bool, nil
}

// checkChainExpr handles the homogeneous chain operators: arithmetic chains
// demand numbers, logical chains demand bools, and the chain yields that same
// type.
func (a *Analyzer) checkChainExpr(operands []ast.Expr, hasOp bool, want types.Type, pos ast.Position) (types.Type, error) {
	if !hasOp {
		return a.checkExpr(operands[0])
	}

	for _, operand := range operands {
		operandType, err := a.checkExpr(operand)
		if err != nil {
			return operandType, err
		}
		if operandType != want {
			return want, errors.InvalidExpressionType(pos)
		}
	}

	a.metrics.Op++
	return want, nil
}

// checkPrefixExpr handles the unary operators. Stacked prefixes on one node
// still count as a single operator use.
func (a *Analyzer) checkPrefixExpr(value ast.Expr, ops []string, want types.Type, pos ast.Position) (types.Type, error) {
	valueType, err := a.checkExpr(value)
	if err != nil {
		return valueType, err
	}

	if len(ops) == 0 {
		return valueType, nil
	}

	if valueType != want {
		return want, errors.InvalidExpressionType(pos)
	}

	a.metrics.Op++
	return want, nil
}

func (a *Analyzer) checkGenValue(value *ast.GenValue) (types.Type, error) {
	return a.checkExpr(value.Value)
}

// checkIdentifier resolves a variable read against the symbol table. Reading
// a name before declaring it is an error even when the surrounding
// expression would otherwise type-check.
func (a *Analyzer) checkIdentifier(ident *ast.Identifier) (types.Type, error) {
	declared, ok := a.symbols.Lookup(ident.Value)
	if !ok {
		return types.Number, errors.UndefinedIdentifier(ident.Value, ident.Pos)
	}
	return declared, nil
}
