package ast

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Program is the root of a petit source file: an ordered mix of variable
// declarations and statements.
// Example: "num a; a = 1; if (a == 1) { bool b; }"
type Program struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// Identifier represents a name occurrence, either as a value read or as a
// declaration/assignment target.
// Example: "a", "counter", "is_done"
type Identifier struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Declaration introduces a variable with its type keyword.
// The language separates declaration from assignment, so no initializer
// expression is attached.
// Example: "num a;", "bool flag;"
type Declaration struct {
	Pos     Position
	EndPos  Position
	Keyword string // declared type keyword: "num" or "bool"
	Name    *Identifier
}

// Block is a braced statement sequence used as an if/while body.
// Example: "{ num x; x = 1 + 2; }"
type Block struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// IfStmt holds a condition and a then branch, with an optional else branch.
// Example: "if (b) { x = 1; } else { x = 2; }"
type IfStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Stmt
	Else   Stmt // nil when absent
}

// WhileStmt holds a condition and a loop body.
// Example: "while (running) { i = i + 1; }"
type WhileStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   Stmt
}

// FunctionStmt declares a function with its return type keyword and body.
// petit functions take no parameters.
// Example: "func num answer() { return 42; }"
type FunctionStmt struct {
	Pos     Position
	EndPos  Position
	Keyword string // declared return type keyword: "num" or "bool"
	Name    *Identifier
	Body    *FunctionBlock
}

// FunctionBlock is the braced body of a function declaration.
type FunctionBlock struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// ReturnStmt returns a single expression from the enclosing function.
// Example: "return a + 1;"
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// AssignStmt assigns the value expression to the target identifier.
// The target is a write, not a value read.
// Example: "x = 1 + 2;"
type AssignStmt struct {
	Pos    Position
	EndPos Position
	Target *Identifier
	Value  Expr
}

// CompExpr is the comparison precedence level. With a single operand it is a
// transparent pass-through; with two operands it applies Op.
// Example: "a == b", "x < 10"
type CompExpr struct {
	Pos      Position
	EndPos   Position
	Op       string // "==", "!=", "<", ">", "<=", ">=" (empty for pass-through)
	Operands []Expr
}

// AddExpr is the additive precedence level. Chained same-level operators are
// grouped under one node, so Operands can hold more than two entries.
// Example: "a + b - c" has three operands and ops ["+", "-"]
type AddExpr struct {
	Pos      Position
	EndPos   Position
	Ops      []string // "+" or "-", one fewer than Operands
	Operands []Expr
}

// MulExpr is the multiplicative precedence level, grouped like AddExpr.
// Example: "a * b / c"
type MulExpr struct {
	Pos      Position
	EndPos   Position
	Ops      []string // "*" or "/"
	Operands []Expr
}

// BoolExpr is the logical precedence level, grouped like AddExpr.
// Example: "a && b || c"
type BoolExpr struct {
	Pos      Position
	EndPos   Position
	Ops      []string // "&&" or "||"
	Operands []Expr
}

// NotExpr wraps a single operand with zero or more "!" prefix tokens.
// With an empty Ops list it is a transparent pass-through.
// Example: "!done", "!!done"
type NotExpr struct {
	Pos    Position
	EndPos Position
	Ops    []string // repeated "!"
	Value  Expr
}

// UnaExpr wraps a single operand with zero or more "-" prefix tokens.
// Example: "-x", "--x"
type UnaExpr struct {
	Pos    Position
	EndPos Position
	Ops    []string // repeated "-"
	Value  Expr
}

// GenValue wraps a leaf value or a parenthesized expression. Identifiers in
// value-reading position always appear as the child of a GenValue.
// Example: "a", "42", "true", "(a + 1)"
type GenValue struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// BoolValue is a boolean literal.
type BoolValue struct {
	Pos    Position
	EndPos Position
	Value  bool
}

// IntValue is an integer literal.
type IntValue struct {
	Pos    Position
	EndPos Position
	Value  int64
}
