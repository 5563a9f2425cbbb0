package ast

// Walk traverses an AST in depth-first, source order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: Count all identifiers
//
//	count := 0
//	ast.Walk(file, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.Ident); ok {
//	        count++
//	    }
//	    return true
//	})
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Walk(child, fn)
	}
}

// Inspect traverses an AST with parent tracking.
// For each node, it calls fn(node, parent). The parent is nil for the root node.
// If fn returns false, the children of that node are not visited.
func Inspect(node Node, fn func(node, parent Node) bool) {
	inspect(node, nil, fn)
}

func inspect(node, parent Node, fn func(node, parent Node) bool) {
	if node == nil || !fn(node, parent) {
		return
	}
	for _, child := range Children(node) {
		inspect(child, node, fn)
	}
}

// Children returns the direct children of node in source order.
// Absent optional children are skipped.
func Children(node Node) []Node {
	var c children
	switch n := node.(type) {
	case *File:
		for _, imp := range n.Imports {
			c.add(imp)
		}
		for _, d := range n.Decls {
			c.add(d)
		}
	case *Import:
		c.ident(n.Alias)

	// Declarations
	case *VarDecl:
		c.add(n.Binding)
		c.add(n.Type)
		c.add(n.Value)
	case *StructDecl:
		c.ident(n.Name)
		for _, f := range n.Fields {
			c.add(f)
		}
	case *Field:
		c.ident(n.Name)
		c.add(n.Type)
	case *EnumDecl:
		c.ident(n.Name)
		for _, v := range n.Variants {
			c.ident(v)
		}
	case *ErrorDecl:
		c.ident(n.Name)
		for _, v := range n.Variants {
			c.add(v)
		}
	case *ErrorVariant:
		c.scoped(n.Name)
	case *FuncDecl:
		c.ident(n.Name)
		for _, p := range n.Params {
			c.add(p)
		}
		c.add(n.Result)
		if n.Body != nil {
			c.add(n.Body)
		}
	case *Param:
		if n.Binding != nil {
			c.add(n.Binding)
		}
		c.add(n.Type)

	// Names
	case *Ident:
		// no children
	case *ScopedIdent:
		for _, seg := range n.Segments {
			c.ident(seg)
		}

	// Types
	case *BuiltinType:
		// no children
	case *PointerType:
		c.add(n.Elem)
	case *CollectionType:
		c.add(n.Len)
		c.add(n.Elem)
	case *NamedType:
		c.scoped(n.Name)

	// Bindings
	case *SimpleBinding:
		c.ident(n.Name)
	case *AliasedBinding:
		if n.Binding != nil {
			c.add(n.Binding)
		}
		c.ident(n.Alias)
	case *DestructureStruct:
		for _, e := range n.Elems {
			c.add(e)
		}
	case *DestructureTuple:
		for _, e := range n.Elems {
			c.add(e)
		}
	case *DestructureUnion:
		c.ident(n.Tag)
		c.add(n.Inner)

	// Patterns
	case *UnionPattern:
		c.ident(n.Tag)
		c.add(n.Inner)
	case *ScopedPattern:
		c.scoped(n.Name)
	case *LiteralPattern:
		if n.Lit != nil {
			c.add(n.Lit)
		}
	case *ElsePattern:
		// no children

	// Statements
	case *BlockStmt:
		for _, s := range n.Stmts {
			c.add(s)
		}
	case *IfStmt:
		c.add(n.Guard)
		c.add(n.Cond)
		if n.Then != nil {
			c.add(n.Then)
		}
		c.add(n.Else)
	case *WhileStmt:
		c.add(n.Guard)
		c.add(n.Cond)
		if n.Body != nil {
			c.add(n.Body)
		}
	case *CaseStmt:
		c.add(n.Subject)
		for _, b := range n.Branches {
			c.add(b)
		}
	case *CaseBranch:
		c.add(n.Pattern)
		c.add(n.Body)
	case *ReturnStmt:
		c.add(n.Value)
	case *ExprStmt:
		c.add(n.X)
	case *DeclStmt:
		if n.Decl != nil {
			c.add(n.Decl)
		}
	case *DeferStmt:
		c.add(n.Stmt)

	// Expressions
	case *NameExpr:
		c.scoped(n.Name)
	case *BasicLit:
		// no children
	case *BracedLit:
		c.add(n.Type)
		for _, e := range n.Elems {
			c.add(e)
		}
	case *BinaryExpr:
		c.add(n.Left)
		c.add(n.Right)
	case *UnaryExpr:
		c.add(n.X)
	case *PostfixExpr:
		c.add(n.X)
	case *FieldExpr:
		c.add(n.X)
		c.ident(n.Field)
	case *IndexExpr:
		c.add(n.X)
		c.add(n.Index)
	case *SliceExpr:
		c.add(n.X)
		c.add(n.Low)
		c.add(n.High)
	case *CallExpr:
		c.add(n.Fun)
		for _, a := range n.Args {
			c.add(a)
		}
	}
	return c
}

type children []Node

// add appends n unless it is a nil interface value. Typed nil pointers
// must be filtered by the caller.
func (c *children) add(n Node) {
	if n != nil {
		*c = append(*c, n)
	}
}

func (c *children) ident(id *Ident) {
	if id != nil {
		*c = append(*c, id)
	}
}

func (c *children) scoped(s *ScopedIdent) {
	if s != nil {
		*c = append(*c, s)
	}
}
