package semantic

import (
	"petit/internal/types"
)

// SymbolTable is the single flat scope of a petit program: one mapping from
// identifier name to declared type, with no nesting. It lives for exactly one
// analysis run.
type SymbolTable struct {
	symbols map[string]types.Type
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]types.Type),
	}
}

// Declare inserts a name with its declared type. It returns false without
// modifying the table when the name is already present, regardless of type.
func (st *SymbolTable) Declare(name string, declared types.Type) bool {
	if _, exists := st.symbols[name]; exists {
		return false
	}
	st.symbols[name] = declared
	return true
}

// Lookup returns the declared type of a name, if it was declared.
func (st *SymbolTable) Lookup(name string) (types.Type, bool) {
	declared, exists := st.symbols[name]
	return declared, exists
}
