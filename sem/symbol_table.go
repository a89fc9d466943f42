package sem

import (
	"sort"

	"mommy/report"
)

// reservedNames are C keywords and control words that cannot be used as
// variable names since they would produce invalid C.
var reservedNames = map[string]struct{}{
	"int":      {},
	"float":    {},
	"double":   {},
	"char":     {},
	"void":     {},
	"return":   {},
	"if":       {},
	"else":     {},
	"while":    {},
	"for":      {},
	"break":    {},
	"continue": {},
	"do":       {},
	"switch":   {},
	"case":     {},
	"default":  {},
	"sizeof":   {},
	"struct":   {},
	"NULL":     {},
	"main":     {},
}

// SymbolTable maps every declared identifier to its type descriptor.  Entries
// are never removed or retyped for the lifetime of the table.
type SymbolTable struct {
	symbols map[string]DataType
}

// NewSymbolTable creates a new, empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]DataType)}
}

// Declare adds a new symbol to the table.
func (st *SymbolTable) Declare(name string, dt DataType) error {
	if !IsValidName(name) {
		return report.InvalidVariableName
	}

	if _, ok := st.symbols[name]; ok {
		return report.VariableAlreadyExists
	}

	st.symbols[name] = dt
	return nil
}

// Lookup returns the type of a declared symbol.
func (st *SymbolTable) Lookup(name string) (DataType, error) {
	if dt, ok := st.symbols[name]; ok {
		return dt, nil
	}

	return nil, report.UndeclaredVariable
}

// Has returns whether a symbol is declared.
func (st *SymbolTable) Has(name string) bool {
	_, ok := st.symbols[name]
	return ok
}

// Len returns the number of declared symbols.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// Names returns all declared names in sorted order.
func (st *SymbolTable) Names() []string {
	names := make([]string, 0, len(st.symbols))
	for name := range st.symbols {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BoundsCheck statically checks an index token against the type being indexed.
// Only integer literals are checked and only against a known length;
// identifiers are deferred to run time.
func BoundsCheck(dt DataType, index string) error {
	n, ok := ParseIndexLiteral(index)
	if !ok {
		return nil
	}

	if n < 0 {
		return report.IndexOutOfBounds
	}

	if length, ok := KnownLen(dt); ok && n >= length {
		return report.AccessViolation
	}

	return nil
}

// -----------------------------------------------------------------------------

// IsValidName returns whether a string can be used as a variable name: it must
// be a C identifier and not reserved.
func IsValidName(name string) bool {
	if _, ok := reservedNames[name]; ok {
		return false
	}

	if len(name) == 0 {
		return false
	}

	if name[0] == '_' || ('a' <= name[0] && name[0] <= 'z') || ('A' <= name[0] && name[0] <= 'Z') {
		for _, c := range name[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
