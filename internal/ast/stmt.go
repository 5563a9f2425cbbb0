package ast

// BlockStmt represents a braced statement list.
type BlockStmt struct {
	BaseStmt
	Stmts []Stmt // may be empty
}

// IfStmt represents an if statement with an optional else branch.
// Examples:
//   - if x {}
//   - if foo; { ... } else if bar { ... } else { ... }
//   - if let ok(v) = lookup(k) { ... }
type IfStmt struct {
	BaseStmt
	Guard Binding // nil unless the condition is introduced by let
	Cond  Expr
	Then  *BlockStmt
	Else  Stmt // nil, *IfStmt or *BlockStmt
}

// WhileStmt represents a while loop.
type WhileStmt struct {
	BaseStmt
	Guard Binding // nil unless the condition is introduced by let
	Cond  Expr
	Body  *BlockStmt
}

// CaseStmt represents a case statement.
// Example: case dir { ::north -> go(0); ok(v) -> use(v); else -> {} }
type CaseStmt struct {
	BaseStmt
	Subject  Expr
	Branches []*CaseBranch
}

// CaseBranch is one pattern -> statement arm of a case statement.
type CaseBranch struct {
	BaseNode
	Pattern CasePattern
	Body    Stmt
}

// ReturnStmt represents return with an optional value.
type ReturnStmt struct {
	BaseStmt
	Value Expr // nil for a bare return
}

// ExprStmt represents an expression used as a statement.
// Examples: x = 10;  foo++;  call(a);
type ExprStmt struct {
	BaseStmt
	X Expr
}

// DeclStmt represents a local let or mut declaration.
type DeclStmt struct {
	BaseStmt
	Decl *VarDecl
}

// DeferStmt represents defer followed by a statement.
type DeferStmt struct {
	BaseStmt
	Stmt Stmt
}

var (
	_ Stmt = (*BlockStmt)(nil)
	_ Stmt = (*IfStmt)(nil)
	_ Stmt = (*WhileStmt)(nil)
	_ Stmt = (*CaseStmt)(nil)
	_ Stmt = (*ReturnStmt)(nil)
	_ Stmt = (*ExprStmt)(nil)
	_ Stmt = (*DeclStmt)(nil)
	_ Stmt = (*DeferStmt)(nil)
)
