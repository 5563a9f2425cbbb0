package semantic

import (
	"github.com/kolkov/iotac/internal/token"
)

// SymbolKind defines the category of a symbol.
type SymbolKind int

const (
	SymbolVar      SymbolKind = iota // let or mut binding
	SymbolImport                     // Import alias
	SymbolStruct                     // Struct type
	SymbolEnum                       // Enum type
	SymbolError                      // Error set
	SymbolFunction                   // Function
	SymbolField                      // Struct field
	SymbolVariant                    // Enum or error set variant
	SymbolParam                      // Function parameter
)

// String returns a human-readable name for the symbol kind.
func (k SymbolKind) String() string {
	switch k {
	case SymbolVar:
		return "variable"
	case SymbolImport:
		return "import"
	case SymbolStruct:
		return "struct"
	case SymbolEnum:
		return "enum"
	case SymbolError:
		return "error set"
	case SymbolFunction:
		return "function"
	case SymbolField:
		return "field"
	case SymbolVariant:
		return "variant"
	case SymbolParam:
		return "parameter"
	default:
		return "unknown"
	}
}

// Symbol holds information about a declared name.
type Symbol struct {
	Name string         // Symbol name
	Kind SymbolKind     // Category
	Pos  token.Position // Declaration position
}

// SymbolTable holds the names declared in one scope: the file, a struct
// body, an enum or error set, or a parameter list.
type SymbolTable struct {
	symbols map[string]*Symbol
	order   []*Symbol
	name    string // Scope name used in messages, e.g. "file" or "struct"
}

// NewSymbolTable creates an empty symbol table for the named scope.
func NewSymbolTable(name string) *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
		name:    name,
	}
}

// Name returns the scope name.
func (st *SymbolTable) Name() string {
	return st.name
}

// Define adds a new symbol to the scope. If the name is already declared
// it returns the earlier symbol and false; the table is left unchanged.
// The blank name _ is never recorded.
func (st *SymbolTable) Define(name string, kind SymbolKind, pos token.Position) (*Symbol, bool) {
	if name == "_" {
		return nil, true
	}
	if prev, exists := st.symbols[name]; exists {
		return prev, false
	}
	sym := &Symbol{Name: name, Kind: kind, Pos: pos}
	st.symbols[name] = sym
	st.order = append(st.order, sym)
	return sym, true
}

// Lookup searches for a symbol in this scope.
// Returns the symbol and true if found, nil and false otherwise.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, ok := st.symbols[name]
	return sym, ok
}

// Symbols returns the symbols in declaration order.
func (st *SymbolTable) Symbols() []*Symbol {
	return st.order
}

// Count returns the number of symbols in the scope.
func (st *SymbolTable) Count() int {
	return len(st.order)
}
