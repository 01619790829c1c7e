package types

// Type is the value domain of the petit language. There are exactly two
// primitive types and no coercion between them.
type Type int

const (
	Number Type = iota
	Bool
)

func (t Type) String() string {
	switch t {
	case Number:
		return "num"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// FromKeyword maps a declared type keyword to its Type.
// The second result is false for anything that is not a type keyword.
func FromKeyword(keyword string) (Type, bool) {
	switch keyword {
	case "num":
		return Number, true
	case "bool":
		return Bool, true
	default:
		return Number, false
	}
}
