package semantic

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"petit/internal/ast"
	"petit/internal/errors"
	"petit/internal/parser"
)

func analyzeSource(t *testing.T, source string) (Metrics, error) {
	t.Helper()

	program, parseErrors, scanErrors := parser.ParseSource("test.pt", source)
	assert.Empty(t, scanErrors, "Should have no scan errors")
	assert.Empty(t, parseErrors, "Should have no parse errors")
	assert.NotNil(t, program, "Program should be parsed")

	analyzer := NewAnalyzer(nil)
	return analyzer.Analyze(program)
}

func TestDeclarationAndAssignment(t *testing.T) {
	metrics, err := analyzeSource(t, `num a; a = 1;`)

	assert.NoError(t, err)
	assert.Equal(t, "{VAR:1, WHILE:0, IF:0, FUNC:0, OP:0}", metrics.String())
}

func TestDuplicateDeclaration(t *testing.T) {
	_, err := analyzeSource(t, `num a; bool a;`)

	assert.Error(t, err)
	assert.Equal(t, "Identifier a has multiple declarations", err.Error())
}

func TestDuplicateDeclarationSameType(t *testing.T) {
	_, err := analyzeSource(t, `bool flag; bool flag;`)

	assert.Error(t, err)
	assert.Equal(t, "Identifier flag has multiple declarations", err.Error())
}

func TestIfBodyWithArithmetic(t *testing.T) {
	metrics, err := analyzeSource(t, `bool b; if (b) { num x; x = 1 + 2; }`)

	assert.NoError(t, err)
	assert.Equal(t, "{VAR:2, WHILE:0, IF:1, FUNC:0, OP:1}", metrics.String())
}

func TestWhileWithNumberCondition(t *testing.T) {
	_, err := analyzeSource(t, `num n; while (n) {}`)

	assert.Error(t, err)
	assert.Equal(t, "Invalid type in condition", err.Error())
}

func TestIfWithNumberCondition(t *testing.T) {
	_, err := analyzeSource(t, `num n; if (n) {}`)

	assert.Error(t, err)
	assert.Equal(t, "Invalid type in condition", err.Error())
}

func TestEqualityOnMixedTypes(t *testing.T) {
	_, err := analyzeSource(t, `bool t; num r; r = t == 1;`)

	assert.Error(t, err)
	assert.Equal(t, "Invalid type in expression", err.Error())
}

func TestEqualityOnMatchingTypes(t *testing.T) {
	metrics, err := analyzeSource(t, `bool t; bool u; bool r; r = t == u;`)

	assert.NoError(t, err)
	assert.Equal(t, 1, metrics.Op)
}

func TestInequalityOnNumbers(t *testing.T) {
	metrics, err := analyzeSource(t, `num a; bool r; r = a != 3;`)

	assert.NoError(t, err)
	assert.Equal(t, 1, metrics.Op)
}

func TestOrderingOnBoolOperand(t *testing.T) {
	_, err := analyzeSource(t, `bool t; bool r; r = t < 1;`)

	assert.Error(t, err)
	assert.Equal(t, "Invalid type in expression", err.Error())
}

func TestOrderingOnNumbers(t *testing.T) {
	metrics, err := analyzeSource(t, `num a; bool r; r = a <= 10;`)

	assert.NoError(t, err)
	assert.Equal(t, 1, metrics.Op)
}

func TestAssignmentTypeMismatch(t *testing.T) {
	_, err := analyzeSource(t, `num a; a = true;`)

	assert.Error(t, err)
	assert.Equal(t, "Invalid type in assignation of Identifier a", err.Error())
}

func TestAssignmentToUndeclared(t *testing.T) {
	_, err := analyzeSource(t, `a = 1;`)

	assert.Error(t, err)
	assert.Equal(t, "Invalid use of undefined Identifier a", err.Error())
}

func TestReadOfUndeclared(t *testing.T) {
	_, err := analyzeSource(t, `num a; a = b + 1;`)

	assert.Error(t, err)
	assert.Equal(t, "Invalid use of undefined Identifier b", err.Error())
}

func TestReturnTypeMismatch(t *testing.T) {
	_, err := analyzeSource(t, `func num f() { return true; }`)

	assert.Error(t, err)
	assert.Equal(t, "Return type does not match function type", err.Error())
}

func TestReturnMatchingType(t *testing.T) {
	metrics, err := analyzeSource(t, `func num f() { return 1 + 2; }`)

	assert.NoError(t, err)
	assert.Equal(t, 1, metrics.Func)
	assert.Equal(t, 1, metrics.Op)
}

func TestReturnOutsideFunction(t *testing.T) {
	_, err := analyzeSource(t, `return 1;`)

	assert.Error(t, err)
	assert.Equal(t, "Return type does not match function type", err.Error())
}

func TestBoolFunctionReturn(t *testing.T) {
	metrics, err := analyzeSource(t, `bool g; func bool f() { return g && true; }`)

	assert.NoError(t, err)
	assert.Equal(t, 1, metrics.Func)
	assert.Equal(t, 1, metrics.Var)
}

func TestLogicalOnNumberOperand(t *testing.T) {
	_, err := analyzeSource(t, `bool b; b = b && 1;`)

	assert.Error(t, err)
	assert.Equal(t, "Invalid type in expression", err.Error())
}

func TestArithmeticOnBoolOperand(t *testing.T) {
	_, err := analyzeSource(t, `num a; a = 1 + true;`)

	assert.Error(t, err)
	assert.Equal(t, "Invalid type in expression", err.Error())
}

func TestNotOnNumber(t *testing.T) {
	_, err := analyzeSource(t, `bool b; b = !1;`)

	assert.Error(t, err)
	assert.Equal(t, "Invalid type in expression", err.Error())
}

func TestNegateOnBool(t *testing.T) {
	_, err := analyzeSource(t, `num a; a = -true;`)

	assert.Error(t, err)
	assert.Equal(t, "Invalid type in expression", err.Error())
}

func TestStackedPrefixesCountOnce(t *testing.T) {
	metrics, err := analyzeSource(t, `bool b; b = !!true;`)

	assert.NoError(t, err)
	assert.Equal(t, 1, metrics.Op)
}

func TestOperatorChainCountsOnce(t *testing.T) {
	// a + b - c folds into one node, so OP grows by one
	metrics, err := analyzeSource(t, `num a; num b; num c; num r; r = a + b - c;`)

	assert.NoError(t, err)
	assert.Equal(t, 1, metrics.Op)
}

func TestMixedPrecedenceCountsPerLevel(t *testing.T) {
	// one additive node plus one multiplicative node
	metrics, err := analyzeSource(t, `num r; r = 1 + 2 * 3;`)

	assert.NoError(t, err)
	assert.Equal(t, 2, metrics.Op)
}

func TestFailureStopsAtFirstError(t *testing.T) {
	_, err := analyzeSource(t, `num a; num a; b = true;`)

	assert.Error(t, err)
	assert.Equal(t, "Identifier a has multiple declarations", err.Error())
}

func TestNoMetricsEmittedOnFailure(t *testing.T) {
	program, parseErrors, _ := parser.ParseSource("test.pt", `num a; num a;`)
	assert.Empty(t, parseErrors)

	var out bytes.Buffer
	analyzer := NewAnalyzer(&out)
	_, err := analyzer.Analyze(program)

	assert.Error(t, err)
	assert.Empty(t, out.String(), "Failure should not write a summary")
}

func TestMetricsEmittedToSink(t *testing.T) {
	program, parseErrors, _ := parser.ParseSource("test.pt", `num a; a = 1;`)
	assert.Empty(t, parseErrors)

	var out bytes.Buffer
	analyzer := NewAnalyzer(&out)
	_, err := analyzer.Analyze(program)

	assert.NoError(t, err)
	assert.Equal(t, "{VAR:1, WHILE:0, IF:0, FUNC:0, OP:0}\n", out.String())
}

func TestErrorCarriesCodeAndPosition(t *testing.T) {
	_, err := analyzeSource(t, `num a;
bool a;`)

	assert.Error(t, err)
	compilerErr, ok := err.(*errors.CompilerError)
	assert.True(t, ok, "Analyzer errors should be CompilerError values")
	assert.Equal(t, errors.ErrorMultipleDeclaration, compilerErr.Code)
	assert.Equal(t, 2, compilerErr.Position.Line)
}

func TestSingleOperandNodesPassThrough(t *testing.T) {
	// A chain node built with one operand and no operator is transparent.
	leaf := &ast.GenValue{Value: &ast.IntValue{Value: 7}}
	wrapped := &ast.AddExpr{Operands: []ast.Expr{leaf}}
	program := &ast.Program{Stmts: []ast.Stmt{
		&ast.Declaration{Keyword: "num", Name: &ast.Identifier{Value: "x"}},
		&ast.AssignStmt{Target: &ast.Identifier{Value: "x"}, Value: wrapped},
	}}

	analyzer := NewAnalyzer(nil)
	metrics, err := analyzer.Analyze(program)

	assert.NoError(t, err)
	assert.Equal(t, 0, metrics.Op)
}
