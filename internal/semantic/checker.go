package semantic

import (
	"cmp"
	"slices"

	"github.com/kolkov/iotac/internal/ast"
)

// Checker performs declaration checks on a parsed file.
type Checker struct {
	globals *SymbolTable
	errors  ErrorList
}

func newChecker() *Checker {
	return &Checker{globals: NewSymbolTable("file")}
}

// Check reports every name declared twice in the same scope of file.
// Each duplicate is reported once, at its second occurrence. The result
// is sorted by source position and is empty for a clean file.
func Check(file *ast.File) ErrorList {
	c := newChecker()
	c.checkFile(file)
	slices.SortStableFunc(c.errors, func(a, b *Error) int {
		return cmp.Compare(a.Pos.Offset, b.Pos.Offset)
	})
	return c.errors
}

// Globals returns the top-level names of file in declaration order.
// Later duplicates are dropped.
func Globals(file *ast.File) *SymbolTable {
	c := newChecker()
	c.declareGlobals(file)
	return c.globals
}

func (c *Checker) checkFile(file *ast.File) {
	c.declareGlobals(file)

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.StructDecl:
			st := NewSymbolTable("struct")
			for _, f := range d.Fields {
				c.declare(st, f.Name, SymbolField)
			}

		case *ast.EnumDecl:
			st := NewSymbolTable("enum")
			for _, v := range d.Variants {
				c.declare(st, v, SymbolVariant)
			}

		case *ast.ErrorDecl:
			st := NewSymbolTable("error set")
			for _, v := range d.Variants {
				// Embedded sets and plain members are separate namespaces.
				name := v.Name.String()
				if v.Embedded {
					name = "!" + name
				}
				if prev, ok := st.Define(name, SymbolVariant, v.Pos()); !ok {
					c.errors.Add(v.Pos(), errRedeclared, SymbolVariant, name, st.Name(), prev.Pos)
				}
			}

		case *ast.FuncDecl:
			st := NewSymbolTable("parameter list")
			for _, p := range d.Params {
				c.declare(st, p.Binding.Name, SymbolParam)
			}
		}
	}

	ast.Walk(file, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.VarDecl:
			c.checkBinding(n.Binding)
		case *ast.IfStmt:
			c.checkBinding(n.Guard)
		case *ast.WhileStmt:
			c.checkBinding(n.Guard)
		case *ast.UnionPattern:
			c.checkBinding(n.Inner)
		case *ast.CaseStmt:
			c.checkBranches(n)
		}
		return true
	})
}

// declareGlobals enters import aliases and top-level declarations into
// the file scope.
func (c *Checker) declareGlobals(file *ast.File) {
	for _, imp := range file.Imports {
		if imp.Alias != nil {
			c.declare(c.globals, imp.Alias, SymbolImport)
		}
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.VarDecl:
			for _, id := range BindingNames(d.Binding) {
				prev, ok := c.globals.Define(id.Name, SymbolVar, id.Pos())
				// A repeat inside the same binding is reported by checkBinding.
				if !ok && !d.Span().Contains(prev.Pos) {
					c.redeclared(c.globals, id, SymbolVar, prev)
				}
			}
		case *ast.StructDecl:
			c.declare(c.globals, d.Name, SymbolStruct)
		case *ast.EnumDecl:
			c.declare(c.globals, d.Name, SymbolEnum)
		case *ast.ErrorDecl:
			c.declare(c.globals, d.Name, SymbolError)
		case *ast.FuncDecl:
			c.declare(c.globals, d.Name, SymbolFunction)
		}
	}
}

func (c *Checker) declare(st *SymbolTable, id *ast.Ident, kind SymbolKind) {
	if prev, ok := st.Define(id.Name, kind, id.Pos()); !ok {
		c.redeclared(st, id, kind, prev)
	}
}

func (c *Checker) redeclared(st *SymbolTable, id *ast.Ident, kind SymbolKind, prev *Symbol) {
	c.errors.Add(id.Pos(), errRedeclared, kind, id.Name, st.Name(), prev.Pos)
}

// checkBinding reports names bound more than once by b.
func (c *Checker) checkBinding(b ast.Binding) {
	if b == nil {
		return
	}
	seen := make(map[string]bool)
	for _, id := range BindingNames(b) {
		if id.Name == "_" {
			continue
		}
		if seen[id.Name] {
			c.errors.Add(id.Pos(), errDuplicateBind, id.Name)
		}
		seen[id.Name] = true
	}
}

// checkBranches reports case branches whose pattern repeats an earlier
// branch of the same case.
func (c *Checker) checkBranches(s *ast.CaseStmt) {
	seen := make(map[string]*ast.CaseBranch)
	for _, br := range s.Branches {
		key := patternKey(br.Pattern)
		if key == "" {
			continue
		}
		if prev, ok := seen[key]; ok {
			c.errors.Add(br.Pos(), errDuplicateBranch, key, prev.Pos())
			continue
		}
		seen[key] = br
	}
}

// patternKey returns the text two equal patterns share, or "" for else.
func patternKey(p ast.CasePattern) string {
	switch p := p.(type) {
	case *ast.LiteralPattern:
		return p.Lit.Value
	case *ast.ScopedPattern:
		return p.Name.String()
	case *ast.UnionPattern:
		return p.Tag.Name + "(..)"
	}
	return ""
}

// BindingNames returns the identifiers a binding introduces, in source
// order. An aliased field introduces its alias.
func BindingNames(b ast.Binding) []*ast.Ident {
	var names []*ast.Ident
	var collect func(ast.Binding)
	collect = func(b ast.Binding) {
		switch b := b.(type) {
		case *ast.SimpleBinding:
			names = append(names, b.Name)
		case *ast.DestructureStruct:
			for _, e := range b.Elems {
				if e.Alias != nil {
					names = append(names, e.Alias)
				} else {
					names = append(names, e.Binding.Name)
				}
			}
		case *ast.DestructureTuple:
			for _, e := range b.Elems {
				collect(e)
			}
		case *ast.DestructureUnion:
			collect(b.Inner)
		}
	}
	collect(b)
	return names
}
