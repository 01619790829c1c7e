package errors

// Error codes for the petit front-end. The codes are stable identifiers used
// in rendered diagnostics and documentation.
//
// Error code ranges:
// E0001-E0099: Semantic analysis errors
// E0100-E0199: Parser errors
// E0200-E0299: Scanner errors

const (
	// E0001: identifier declared more than once
	ErrorMultipleDeclaration = "E0001"

	// E0002: identifier read or assigned without a prior declaration
	ErrorUndefinedIdentifier = "E0002"

	// E0003: if/while condition is not bool
	ErrorInvalidConditionType = "E0003"

	// E0004: operator applied to incompatible operand type(s)
	ErrorInvalidExpressionType = "E0004"

	// E0005: assignment value type does not match the declared variable type
	ErrorInvalidAssignmentType = "E0005"

	// E0006: return expression type does not match the enclosing function type
	ErrorReturnTypeMismatch = "E0006"

	// E0100: generic parse error
	ErrorParse = "E0100"

	// E0200: generic scan error
	ErrorScan = "E0200"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorMultipleDeclaration:
		return "an identifier may only be declared once in the program"
	case ErrorUndefinedIdentifier:
		return "identifiers must be declared before they are read or assigned"
	case ErrorInvalidConditionType:
		return "if and while conditions must be of type bool"
	case ErrorInvalidExpressionType:
		return "operators require operands of the matching primitive type"
	case ErrorInvalidAssignmentType:
		return "an assigned value must match the declared type of the variable"
	case ErrorReturnTypeMismatch:
		return "a return expression must match the declared function type"
	case ErrorParse:
		return "the source text does not conform to the petit grammar"
	case ErrorScan:
		return "the source text contains characters petit cannot tokenize"
	default:
		return "unknown error code"
	}
}
