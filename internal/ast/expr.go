package ast

import "github.com/kolkov/iotac/internal/token"

// -----------------------------------------------------------------------------
// Atoms
// -----------------------------------------------------------------------------

// NameExpr is a (possibly scoped) identifier used as a value.
// Examples: x, Foo::Bar::baz, ::global
type NameExpr struct {
	BaseExpr
	Name *ScopedIdent
}

// BasicLit represents a number, string or char literal.
// Value is the literal exactly as written, quotes included.
type BasicLit struct {
	BaseExpr
	Kind  token.Token // NUMBER, FLOAT, STRING or CHAR
	Value string
}

// BracedLit represents a braced literal such as Foo{1, y = 2}, []u32{x, y}
// or the untyped `{x = 10}. Field initializers are BinaryExprs with op ASSIGN.
type BracedLit struct {
	BaseExpr
	Type  Type   // nil for the untyped form
	Elems []Expr // may be empty
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// BinaryExpr represents a binary operation, including assignment.
// Examples: a + b, x * y, x = 10
type BinaryExpr struct {
	BaseExpr
	Left  Expr
	Op    token.Token
	Right Expr
}

// UnaryExpr represents a prefix operation: &x, *p, !ok, -n.
type UnaryExpr struct {
	BaseExpr
	Op token.Token // AMP, MUL, NOT or SUB
	X  Expr
}

// PostfixExpr represents x++ or x--.
type PostfixExpr struct {
	BaseExpr
	Op token.Token // INCR or DECR
	X  Expr
}

// -----------------------------------------------------------------------------
// Postfix accessors
// -----------------------------------------------------------------------------

// FieldExpr represents a field access: p.x.
type FieldExpr struct {
	BaseExpr
	X     Expr
	Field *Ident
}

// IndexExpr represents a single-element access: a[i].
type IndexExpr struct {
	BaseExpr
	X     Expr
	Index Expr
}

// SliceExpr represents a range access: a[lo:hi], a[lo:], a[:hi], a[:].
// Low and High are nil when the bound is omitted.
type SliceExpr struct {
	BaseExpr
	X    Expr
	Low  Expr
	High Expr
}

// CallExpr represents a call: f(a, b).
type CallExpr struct {
	BaseExpr
	Fun  Expr
	Args []Expr // may be empty
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Expr = (*NameExpr)(nil)
	_ Expr = (*BasicLit)(nil)
	_ Expr = (*BracedLit)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*PostfixExpr)(nil)
	_ Expr = (*FieldExpr)(nil)
	_ Expr = (*IndexExpr)(nil)
	_ Expr = (*SliceExpr)(nil)
	_ Expr = (*CallExpr)(nil)
)
