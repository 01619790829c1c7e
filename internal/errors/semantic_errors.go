package errors

import (
	"fmt"

	"petit/internal/ast"
)

// SemanticErrorBuilder provides a fluent interface for creating semantic
// errors with suggestions
type SemanticErrorBuilder struct {
	err CompilerError
}

// NewSemanticError creates a new semantic error builder
func NewSemanticError(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *SemanticErrorBuilder) WithLength(length int) *SemanticErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithNote adds a note to the error
func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *SemanticErrorBuilder) WithHelp(help string) *SemanticErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *SemanticErrorBuilder) Build() *CompilerError {
	return &b.err
}

// One constructor per semantic error kind. Analysis stops at the first of
// these, so each carries enough context to stand alone.

// MultipleDeclaration reports a second declaration of an already declared name
func MultipleDeclaration(name string, pos ast.Position) *CompilerError {
	return NewSemanticError(ErrorMultipleDeclaration,
		fmt.Sprintf("Identifier %s has multiple declarations", name), pos).
		WithLength(len(name)).
		WithSuggestion(fmt.Sprintf("remove the second declaration of '%s' or rename it", name)).
		WithNote("petit has a single flat scope; a name can be declared only once").
		Build()
}

// UndefinedIdentifier reports a read of, or an assignment to, an undeclared name
func UndefinedIdentifier(name string, pos ast.Position) *CompilerError {
	return NewSemanticError(ErrorUndefinedIdentifier,
		fmt.Sprintf("Invalid use of undefined Identifier %s", name), pos).
		WithLength(len(name)).
		WithSuggestion(fmt.Sprintf("declare the variable first: 'num %s;' or 'bool %s;'", name, name)).
		Build()
}

// InvalidConditionType reports an if/while condition that is not bool
func InvalidConditionType(pos ast.Position) *CompilerError {
	return NewSemanticError(ErrorInvalidConditionType,
		"Invalid type in condition", pos).
		WithSuggestion("use a comparison or a bool variable in the condition").
		WithNote("if and while conditions must be of type bool").
		Build()
}

// InvalidExpressionType reports an operator applied to incompatible operands
func InvalidExpressionType(pos ast.Position) *CompilerError {
	return NewSemanticError(ErrorInvalidExpressionType,
		"Invalid type in expression", pos).
		WithHelp("arithmetic needs num operands, logic needs bool operands, and both sides of == or != must have the same type").
		Build()
}

// InvalidAssignmentType reports a value type that does not match the target's
// declared type
func InvalidAssignmentType(name string, pos ast.Position) *CompilerError {
	return NewSemanticError(ErrorInvalidAssignmentType,
		fmt.Sprintf("Invalid type in assignation of Identifier %s", name), pos).
		WithLength(len(name)).
		WithSuggestion(fmt.Sprintf("assign a value of the type '%s' was declared with", name)).
		Build()
}

// ReturnTypeMismatch reports a return expression that does not match the
// enclosing function's declared type
func ReturnTypeMismatch(pos ast.Position) *CompilerError {
	return NewSemanticError(ErrorReturnTypeMismatch,
		"Return type does not match function type", pos).
		WithSuggestion("return a value of the function's declared type").
		WithNote("return statements are only valid inside a function body").
		Build()
}
