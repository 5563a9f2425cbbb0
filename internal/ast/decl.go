package ast

// File is the root of a parsed source file.
type File struct {
	BaseNode
	Filename string
	Imports  []*Import
	Decls    []Decl
}

// Import represents import [alias] "path";
type Import struct {
	BaseNode
	Alias *Ident // nil when no alias is given
	Path  string // string literal as written
}

// VarDecl represents let or mut declarations.
// Examples:
//   - let x u32 = 10;
//   - mut { *px = x, meta } = point;
//   - let ok(v);
type VarDecl struct {
	BaseDecl
	Mutable bool
	Binding Binding
	Type    Type // nil when omitted
	Value   Expr // nil when omitted
}

// StructDecl represents struct Name { field Type, ... }.
type StructDecl struct {
	BaseDecl
	Name   *Ident
	Fields []*Field
}

// Field is a named struct member.
type Field struct {
	BaseNode
	Name *Ident
	Type Type
}

// EnumDecl represents enum Name { a, b, ... }.
type EnumDecl struct {
	BaseDecl
	Name     *Ident
	Variants []*Ident
}

// ErrorDecl represents error Name { A, !Other, ... }.
//
// A plain variant names a member while an embedded one names another
// error set, so A and !A may appear in the same declaration.
type ErrorDecl struct {
	BaseDecl
	Name     *Ident
	Variants []*ErrorVariant
}

// ErrorVariant is a member of an error set. Embedded variants (written
// with a leading !) pull in every member of another error set.
type ErrorVariant struct {
	BaseNode
	Embedded bool
	Name     *ScopedIdent
}

// FuncDecl represents fun name(params) [Result] { body }.
type FuncDecl struct {
	BaseDecl
	Name   *Ident
	Params []*Param
	Result Type // nil when omitted
	Body   *BlockStmt
}

// Param is a function parameter: name Type, or name.. Type when variadic.
type Param struct {
	BaseNode
	Binding  *SimpleBinding
	Variadic bool
	Type     Type
}

var (
	_ Decl = (*VarDecl)(nil)
	_ Decl = (*StructDecl)(nil)
	_ Decl = (*EnumDecl)(nil)
	_ Decl = (*ErrorDecl)(nil)
	_ Decl = (*FuncDecl)(nil)
)
