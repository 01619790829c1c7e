package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ident(name string) *Identifier {
	return &Identifier{Value: name}
}

func leaf(value Expr) *GenValue {
	return &GenValue{Value: value}
}

func TestPrintDeclaration(t *testing.T) {
	decl := &Declaration{Keyword: "num", Name: ident("count")}

	assert.Equal(t, "num count;", decl.String())
}

func TestPrintAssignment(t *testing.T) {
	assign := &AssignStmt{Target: ident("x"), Value: leaf(&IntValue{Value: 42})}

	assert.Equal(t, "x = 42;", assign.String())
}

func TestPrintOperatorChain(t *testing.T) {
	chain := &AddExpr{
		Ops:      []string{"+", "-"},
		Operands: []Expr{leaf(ident("a")), leaf(ident("b")), leaf(ident("c"))},
	}

	assert.Equal(t, "a + b - c", chain.String())
}

func TestPrintComparison(t *testing.T) {
	comp := &CompExpr{
		Op:       "<=",
		Operands: []Expr{leaf(ident("a")), leaf(&IntValue{Value: 10})},
	}

	assert.Equal(t, "a <= 10", comp.String())
}

func TestPrintPrefixOperators(t *testing.T) {
	not := &NotExpr{Ops: []string{"!", "!"}, Value: leaf(&BoolValue{Value: true})}
	assert.Equal(t, "!!true", not.String())

	una := &UnaExpr{Ops: []string{"-"}, Value: leaf(&IntValue{Value: 7})}
	assert.Equal(t, "-7", una.String())
}

func TestPrintGroupedExpression(t *testing.T) {
	inner := &AddExpr{
		Ops:      []string{"+"},
		Operands: []Expr{leaf(&IntValue{Value: 1}), leaf(&IntValue{Value: 2})},
	}
	mul := &MulExpr{
		Ops:      []string{"*"},
		Operands: []Expr{leaf(inner), leaf(&IntValue{Value: 3})},
	}

	assert.Equal(t, "(1 + 2) * 3", mul.String())
}

func TestPrintIfElse(t *testing.T) {
	stmt := &IfStmt{
		Cond: leaf(ident("b")),
		Then: &Block{Stmts: []Stmt{
			&AssignStmt{Target: ident("x"), Value: leaf(&IntValue{Value: 1})},
		}},
		Else: &Block{},
	}

	assert.Equal(t, "if (b) {\n  x = 1;\n} else {}", stmt.String())
}

func TestPrintWhile(t *testing.T) {
	stmt := &WhileStmt{
		Cond: leaf(ident("b")),
		Body: &Block{Stmts: []Stmt{
			&AssignStmt{Target: ident("x"), Value: leaf(ident("y"))},
		}},
	}

	assert.Equal(t, "while (b) {\n  x = y;\n}", stmt.String())
}

func TestPrintFunction(t *testing.T) {
	fn := &FunctionStmt{
		Keyword: "num",
		Name:    ident("answer"),
		Body: &FunctionBlock{Stmts: []Stmt{
			&ReturnStmt{Value: leaf(&IntValue{Value: 42})},
		}},
	}

	assert.Equal(t, "func num answer() {\n  return 42;\n}", fn.String())
}

func TestPrintProgram(t *testing.T) {
	program := &Program{Stmts: []Stmt{
		&Declaration{Keyword: "num", Name: ident("a")},
		&AssignStmt{Target: ident("a"), Value: leaf(&IntValue{Value: 1})},
	}}

	assert.Equal(t, "num a;\na = 1;", program.String())
}
