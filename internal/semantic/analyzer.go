package semantic

import (
	"fmt"
	"io"

	"petit/internal/ast"
	"petit/internal/errors"
	"petit/internal/types"
)

// Analyzer walks a parsed program once, depth-first, validating type
// correctness against the flat symbol table and counting constructs. The
// first violation aborts the walk; there is no error accumulation and no
// partial metrics output.
type Analyzer struct {
	out     io.Writer
	symbols *SymbolTable
	metrics Metrics
}

// functionContext carries the declared return type of the function whose body
// is currently being checked. It is threaded down through the recursive
// calls; a nil context means the walk is outside any function body.
type functionContext struct {
	name       string
	returnType types.Type
}

// NewAnalyzer creates an analyzer writing its metrics summary to out on
// success. A nil out discards the summary.
func NewAnalyzer(out io.Writer) *Analyzer {
	if out == nil {
		out = io.Discard
	}
	return &Analyzer{out: out}
}

// Analyze checks the whole program. On success it returns the collected
// metrics and writes one summary line to the configured sink. On the first
// semantic violation it returns that violation and emits nothing.
func (a *Analyzer) Analyze(program *ast.Program) (Metrics, error) {
	a.symbols = NewSymbolTable() // fresh table for each run
	a.metrics = Metrics{}

	for _, stmt := range program.Stmts {
		if err := a.checkStmt(stmt, nil); err != nil {
			return Metrics{}, err
		}
	}

	fmt.Fprintln(a.out, a.metrics.String())
	return a.metrics, nil
}

func (a *Analyzer) checkStmt(stmt ast.Stmt, fn *functionContext) error {
	switch node := stmt.(type) {
	case *ast.Declaration:
		return a.checkDeclaration(node)
	case *ast.Block:
		return a.checkStmts(node.Stmts, fn)
	case *ast.IfStmt:
		return a.checkIfStatement(node, fn)
	case *ast.WhileStmt:
		return a.checkWhileStatement(node, fn)
	case *ast.FunctionStmt:
		return a.checkFunction(node)
	case *ast.ReturnStmt:
		return a.checkReturn(node, fn)
	case *ast.AssignStmt:
		return a.checkAssign(node)
	default:
		return nil
	}
}

func (a *Analyzer) checkStmts(stmts []ast.Stmt, fn *functionContext) error {
	for _, stmt := range stmts {
		if err := a.checkStmt(stmt, fn); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) checkDeclaration(decl *ast.Declaration) error {
	declared, ok := types.FromKeyword(decl.Keyword)
	if !ok {
		return nil // not a type keyword, nothing to record
	}

	name := decl.Name.Value
	if !a.symbols.Declare(name, declared) {
		return errors.MultipleDeclaration(name, decl.Name.Pos)
	}

	a.metrics.Var++
	return nil
}

func (a *Analyzer) checkIfStatement(stmt *ast.IfStmt, fn *functionContext) error {
	if err := a.checkCondition(stmt.Cond); err != nil {
		return err
	}

	if err := a.checkStmt(stmt.Then, fn); err != nil {
		return err
	}
	if stmt.Else != nil {
		if err := a.checkStmt(stmt.Else, fn); err != nil {
			return err
		}
	}

	// One conditional, however many statements the branches hold
	a.metrics.If++
	return nil
}

func (a *Analyzer) checkWhileStatement(stmt *ast.WhileStmt, fn *functionContext) error {
	if err := a.checkCondition(stmt.Cond); err != nil {
		return err
	}

	if err := a.checkStmt(stmt.Body, fn); err != nil {
		return err
	}

	a.metrics.While++
	return nil
}

func (a *Analyzer) checkCondition(cond ast.Expr) error {
	condType, err := a.checkExpr(cond)
	if err != nil {
		return err
	}

	if condType != types.Bool {
		return errors.InvalidConditionType(cond.NodePos())
	}
	return nil
}

func (a *Analyzer) checkFunction(fn *ast.FunctionStmt) error {
	returnType, ok := types.FromKeyword(fn.Keyword)
	if !ok {
		return nil
	}

	ctx := &functionContext{name: fn.Name.Value, returnType: returnType}
	if err := a.checkStmts(fn.Body.Stmts, ctx); err != nil {
		return err
	}

	a.metrics.Func++
	return nil
}

func (a *Analyzer) checkReturn(stmt *ast.ReturnStmt, fn *functionContext) error {
	valueType, err := a.checkExpr(stmt.Value)
	if err != nil {
		return err
	}

	// A return with no enclosing function has no type to match
	if fn == nil || valueType != fn.returnType {
		return errors.ReturnTypeMismatch(stmt.Pos)
	}
	return nil
}

func (a *Analyzer) checkAssign(stmt *ast.AssignStmt) error {
	name := stmt.Target.Value

	valueType, err := a.checkExpr(stmt.Value)
	if err != nil {
		return err
	}

	declared, ok := a.symbols.Lookup(name)
	if !ok {
		return errors.UndefinedIdentifier(name, stmt.Target.Pos)
	}
	if declared != valueType {
		return errors.InvalidAssignmentType(name, stmt.Target.Pos)
	}
	return nil
}
