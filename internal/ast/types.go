package ast

import (
	"strings"

	"github.com/kolkov/iotac/internal/token"
)

// Ident is a single identifier.
type Ident struct {
	BaseNode
	Name string
}

// ScopedIdent is a path of identifiers: Foo, Foo::Bar, ::Foo, Foo.Bar.
// Global is set when the path starts with ::.
type ScopedIdent struct {
	BaseNode
	Global   bool
	Segments []*Ident // at least one
}

// String joins the segments with ::.
func (s *ScopedIdent) String() string {
	var sb strings.Builder
	if s.Global {
		sb.WriteString("::")
	}
	for i, seg := range s.Segments {
		if i > 0 {
			sb.WriteString("::")
		}
		sb.WriteString(seg.Name)
	}
	return sb.String()
}

// -----------------------------------------------------------------------------
// Types
// -----------------------------------------------------------------------------

// BuiltinType is one of the builtin type keywords (u32, bool, string, ...).
type BuiltinType struct {
	BaseType
	Kind token.Token
}

// PointerType represents *T, or *ro T for a read-only pointee.
type PointerType struct {
	BaseType
	Mutable bool
	Elem    Type
}

// CollectionType represents []T, or [N]T with a length expression.
type CollectionType struct {
	BaseType
	Len  Expr // nil for []T
	Elem Type
}

// NamedType is a user-defined type referenced by path.
type NamedType struct {
	BaseType
	Name *ScopedIdent
}

// -----------------------------------------------------------------------------
// Bindings
// -----------------------------------------------------------------------------

// SimpleBinding binds one name, optionally by pointer: x or *x.
type SimpleBinding struct {
	BaseBinding
	Pointer bool
	Name    *Ident
}

// AliasedBinding is an element of a struct destructure: *px = x.
type AliasedBinding struct {
	BaseNode
	Binding *SimpleBinding
	Alias   *Ident // nil when not aliased
}

// DestructureStruct represents { a, *b = c, ... }.
type DestructureStruct struct {
	BaseBinding
	Elems []*AliasedBinding
}

// DestructureTuple represents ( a, *b, ... ).
type DestructureTuple struct {
	BaseBinding
	Elems []Binding
}

// DestructureUnion represents tag(binding).
type DestructureUnion struct {
	BaseBinding
	Tag   *Ident
	Inner Binding
}

// -----------------------------------------------------------------------------
// Case patterns
// -----------------------------------------------------------------------------

// UnionPattern matches a union tag and binds its payload: ok(v).
type UnionPattern struct {
	BasePattern
	Tag   *Ident
	Inner Binding
}

// ScopedPattern matches a named constant: ::north, Direction::north.
type ScopedPattern struct {
	BasePattern
	Name *ScopedIdent
}

// LiteralPattern matches a number, string or char literal.
type LiteralPattern struct {
	BasePattern
	Lit *BasicLit
}

// ElsePattern is the catch-all branch.
type ElsePattern struct {
	BasePattern
}

var (
	_ Type = (*BuiltinType)(nil)
	_ Type = (*PointerType)(nil)
	_ Type = (*CollectionType)(nil)
	_ Type = (*NamedType)(nil)

	_ Binding = (*SimpleBinding)(nil)
	_ Binding = (*DestructureStruct)(nil)
	_ Binding = (*DestructureTuple)(nil)
	_ Binding = (*DestructureUnion)(nil)

	_ CasePattern = (*UnionPattern)(nil)
	_ CasePattern = (*ScopedPattern)(nil)
	_ CasePattern = (*LiteralPattern)(nil)
	_ CasePattern = (*ElsePattern)(nil)
)
