package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder

	for i, stmt := range p.Stmts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(stmt.String())
	}

	return b.String()
}

func (d *Declaration) String() string {
	return fmt.Sprintf("%s %s;", d.Keyword, d.Name.Value)
}

func (b *Block) String() string {
	return printBlock(b.Stmts)
}

func (i *IfStmt) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("if (%s) %s", i.Cond.String(), i.Then.String()))
	if i.Else != nil {
		b.WriteString(fmt.Sprintf(" else %s", i.Else.String()))
	}

	return b.String()
}

func (w *WhileStmt) String() string {
	return fmt.Sprintf("while (%s) %s", w.Cond.String(), w.Body.String())
}

func (f *FunctionStmt) String() string {
	return fmt.Sprintf("func %s %s() %s", f.Keyword, f.Name.Value, f.Body.String())
}

func (fb *FunctionBlock) String() string {
	return printBlock(fb.Stmts)
}

func (r *ReturnStmt) String() string {
	return fmt.Sprintf("return %s;", r.Value.String())
}

func (a *AssignStmt) String() string {
	return fmt.Sprintf("%s = %s;", a.Target.Value, a.Value.String())
}

func (c *CompExpr) String() string {
	if len(c.Operands) == 1 {
		return c.Operands[0].String()
	}
	return fmt.Sprintf("%s %s %s", c.Operands[0].String(), c.Op, c.Operands[1].String())
}

func (a *AddExpr) String() string {
	return printChain(a.Operands, a.Ops)
}

func (m *MulExpr) String() string {
	return printChain(m.Operands, m.Ops)
}

func (b *BoolExpr) String() string {
	return printChain(b.Operands, b.Ops)
}

func (n *NotExpr) String() string {
	return strings.Join(n.Ops, "") + n.Value.String()
}

func (u *UnaExpr) String() string {
	return strings.Join(u.Ops, "") + u.Value.String()
}

func (g *GenValue) String() string {
	switch g.Value.(type) {
	case *Identifier, *BoolValue, *IntValue:
		return g.Value.String()
	default:
		// Anything non-leaf was parenthesized in the source
		return "(" + g.Value.String() + ")"
	}
}

func (b *BoolValue) String() string {
	return strconv.FormatBool(b.Value)
}

func (i *IntValue) String() string {
	return strconv.FormatInt(i.Value, 10)
}

func (i *Identifier) String() string {
	return i.Value
}

func printBlock(stmts []Stmt) string {
	if len(stmts) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for _, stmt := range stmts {
		b.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func printChain(operands []Expr, ops []string) string {
	var b strings.Builder

	for i, operand := range operands {
		if i > 0 && i-1 < len(ops) {
			b.WriteString(" " + ops[i-1] + " ")
		}
		b.WriteString(operand.String())
	}

	return b.String()
}
