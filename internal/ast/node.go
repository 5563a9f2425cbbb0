// Package ast defines the abstract syntax tree for Iota source files.
//
// Every syntactic category is a closed sum type: an interface with an
// unexported marker method that only the node types of this package
// implement. Type switches over a category are therefore exhaustive.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Expr - NameExpr, BasicLit, BracedLit, BinaryExpr, UnaryExpr,
//	│          PostfixExpr, FieldExpr, IndexExpr, SliceExpr, CallExpr
//	├── Stmt - BlockStmt, IfStmt, WhileStmt, CaseStmt, ReturnStmt,
//	│          ExprStmt, DeclStmt, DeferStmt
//	├── Decl - VarDecl, StructDecl, EnumDecl, ErrorDecl, FuncDecl
//	├── Type - BuiltinType, PointerType, CollectionType, NamedType
//	├── Binding - SimpleBinding, DestructureStruct, DestructureTuple,
//	│             DestructureUnion
//	├── CasePattern - UnionPattern, ScopedPattern, LiteralPattern, ElsePattern
//	└── File, Import, Ident, ScopedIdent, Field, Param, ErrorVariant,
//	    AliasedBinding, CaseBranch - structural nodes
//
// Parenthesized expressions have no node of their own: (a) and a produce
// identical trees.
package ast

import "github.com/kolkov/iotac/internal/token"

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Pos returns the position of the first character belonging to this node.
	Pos() token.Position

	// End returns the position of the first character immediately after this node.
	End() token.Position
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is the interface for top-level declarations.
type Decl interface {
	Node
	declNode()
}

// Type is the interface for type expressions.
type Type interface {
	Node
	typeNode()
}

// Binding is the interface for the left-hand side of variable
// declarations: plain names and destructuring patterns.
type Binding interface {
	Node
	bindingNode()
}

// CasePattern is the interface for patterns of case branches.
type CasePattern interface {
	Node
	patternNode()
}

// BaseNode records the source range of a node.
type BaseNode struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position after last token
}

func (b *BaseNode) Pos() token.Position { return b.StartPos }
func (b *BaseNode) End() token.Position { return b.EndPos }

// Span returns the source range of the node.
func (b *BaseNode) Span() token.Span { return token.SpanOf(b.StartPos, b.EndPos) }

// BaseExpr provides common fields for all expression nodes.
type BaseExpr struct{ BaseNode }

func (*BaseExpr) exprNode() {}

// BaseStmt provides common fields for all statement nodes.
type BaseStmt struct{ BaseNode }

func (*BaseStmt) stmtNode() {}

// BaseDecl provides common fields for declaration nodes.
type BaseDecl struct{ BaseNode }

func (*BaseDecl) declNode() {}

// BaseType provides common fields for type nodes.
type BaseType struct{ BaseNode }

func (*BaseType) typeNode() {}

// BaseBinding provides common fields for binding nodes.
type BaseBinding struct{ BaseNode }

func (*BaseBinding) bindingNode() {}

// BasePattern provides common fields for case pattern nodes.
type BasePattern struct{ BaseNode }

func (*BasePattern) patternNode() {}

// -----------------------------------------------------------------------------
// Constructor helpers
// -----------------------------------------------------------------------------

// MakeBase creates a BaseNode with the given positions.
func MakeBase(start, end token.Position) BaseNode {
	return BaseNode{StartPos: start, EndPos: end}
}

// MakeBaseExpr creates a BaseExpr with the given positions.
func MakeBaseExpr(start, end token.Position) BaseExpr {
	return BaseExpr{MakeBase(start, end)}
}

// MakeBaseStmt creates a BaseStmt with the given positions.
func MakeBaseStmt(start, end token.Position) BaseStmt {
	return BaseStmt{MakeBase(start, end)}
}

// MakeBaseDecl creates a BaseDecl with the given positions.
func MakeBaseDecl(start, end token.Position) BaseDecl {
	return BaseDecl{MakeBase(start, end)}
}

// MakeBaseType creates a BaseType with the given positions.
func MakeBaseType(start, end token.Position) BaseType {
	return BaseType{MakeBase(start, end)}
}

// MakeBaseBinding creates a BaseBinding with the given positions.
func MakeBaseBinding(start, end token.Position) BaseBinding {
	return BaseBinding{MakeBase(start, end)}
}

// MakeBasePattern creates a BasePattern with the given positions.
func MakeBasePattern(start, end token.Position) BasePattern {
	return BasePattern{MakeBase(start, end)}
}
