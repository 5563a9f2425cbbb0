package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/kolkov/iotac/internal/token"
)

// DefaultIndent is the indent width used by String.
const DefaultIndent = 2

// Printer writes the canonical tree serialization of AST nodes:
//
//	kind {              node with children
//	  name='text'       named leaf token
//	  'text'            positional leaf token
//	  flag=true         boolean attribute
//	  name:             named child node, one level deeper
//	    kind {...}
//	}
//	kind {}             node without children
//
// Absent optional children are omitted. The output depends only on the
// tree, so equal trees print byte-identically.
type Printer struct {
	w      io.Writer
	unit   string
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w, indenting each level
// by width spaces. A width below 1 selects DefaultIndent.
func NewPrinter(w io.Writer, width int) *Printer {
	if width < 1 {
		width = DefaultIndent
	}
	return &Printer{w: w, unit: strings.Repeat(" ", width)}
}

// Print writes the serialization of node followed by a newline.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

// String returns the serialization of node with the default indent.
func String(node Node) string {
	var sb strings.Builder
	_ = NewPrinter(&sb, DefaultIndent).Print(node)
	return sb.String()
}

type fieldKind uint8

const (
	fieldToken fieldKind = iota
	fieldFlag
	fieldChild
	fieldList
)

// field is one line item inside a printed node.
type field struct {
	kind  fieldKind
	name  string
	text  string
	node  Node
	items []field
}

func tok(name, text string) field { return field{kind: fieldToken, name: name, text: text} }

func flag(name string) field { return field{kind: fieldFlag, name: name, text: "true"} }

func boolean(name string, v bool) field {
	return field{kind: fieldFlag, name: name, text: fmt.Sprint(v)}
}

func child(name string, n Node) field { return field{kind: fieldChild, name: name, node: n} }

func list(name string, items []field) field {
	return field{kind: fieldList, name: name, items: items}
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) writeIndent() {
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, p.unit)
	}
}

// block prints a node of the given kind holding fields. Child fields with
// a nil node are dropped.
func (p *Printer) block(kind string, fields ...field) {
	kept := fields[:0:0]
	for _, f := range fields {
		if f.kind == fieldChild && f.node == nil {
			continue
		}
		kept = append(kept, f)
	}

	p.writeIndent()
	if len(kept) == 0 {
		p.printf("%s {}\n", kind)
		return
	}
	p.printf("%s {\n", kind)
	p.indent++
	for _, f := range kept {
		p.printField(f)
	}
	p.indent--
	p.writeIndent()
	p.printf("}\n")
}

func (p *Printer) printField(f field) {
	switch f.kind {
	case fieldToken:
		p.writeIndent()
		if f.name != "" {
			p.printf("%s='%s'\n", f.name, f.text)
		} else {
			p.printf("'%s'\n", f.text)
		}
	case fieldFlag:
		p.writeIndent()
		p.printf("%s=%s\n", f.name, f.text)
	case fieldChild:
		if f.name == "" {
			p.printNode(f.node)
			return
		}
		p.writeIndent()
		p.printf("%s:\n", f.name)
		p.indent++
		p.printNode(f.node)
		p.indent--
	case fieldList:
		p.block(f.name, f.items...)
	}
}

func (p *Printer) printNode(node Node) {
	switch n := node.(type) {
	case nil:
		p.block("nil")

	case *File:
		p.block("source_file",
			list("imports", nodes(n.Imports)),
			list("decls", nodes(n.Decls)))
	case *Import:
		p.block("import",
			identTok("alias", n.Alias),
			tok("path", n.Path))

	// Declarations
	case *VarDecl:
		p.block("var_decl",
			boolean("mutable", n.Mutable),
			child("binding", n.Binding),
			child("type", n.Type),
			child("value", n.Value))
	case *StructDecl:
		p.block("struct_decl",
			identTok("name", n.Name),
			list("fields", nodes(n.Fields)))
	case *Field:
		p.block("field",
			identTok("name", n.Name),
			child("type", n.Type))
	case *EnumDecl:
		variants := make([]field, 0, len(n.Variants))
		for _, v := range n.Variants {
			variants = append(variants, identTok("", v))
		}
		p.block("enum_decl",
			identTok("name", n.Name),
			list("variants", variants))
	case *ErrorDecl:
		p.block("error_decl",
			identTok("name", n.Name),
			list("variants", nodes(n.Variants)))
	case *ErrorVariant:
		fields := []field{}
		if n.Embedded {
			fields = append(fields, flag("embedded"))
		}
		p.block("error_variant", append(fields, pathFields(n.Name)...)...)
	case *FuncDecl:
		var body Node
		if n.Body != nil {
			body = n.Body
		}
		p.block("fun_decl",
			identTok("name", n.Name),
			list("params", nodes(n.Params)),
			child("result", n.Result),
			child("body", body))
	case *Param:
		var binding Node
		if n.Binding != nil {
			binding = n.Binding
		}
		fields := []field{}
		if n.Variadic {
			fields = append(fields, flag("variadic"))
		}
		p.block("param", append(fields,
			child("binding", binding),
			child("type", n.Type))...)

	// Names
	case *Ident:
		p.block("ident", tok("", n.Name))
	case *ScopedIdent:
		p.block("scoped_ident", pathFields(n)...)

	// Types
	case *BuiltinType:
		p.block("builtin_type", tok("", n.Kind.String()))
	case *PointerType:
		p.block("pointer_type",
			boolean("mutable", n.Mutable),
			child("elem", n.Elem))
	case *CollectionType:
		p.block("collection_type",
			child("len", n.Len),
			child("elem", n.Elem))
	case *NamedType:
		p.block("named_type", pathFields(n.Name)...)

	// Bindings
	case *SimpleBinding:
		fields := []field{}
		if n.Pointer {
			fields = append(fields, flag("pointer"))
		}
		p.block("simple_binding", append(fields, identTok("", n.Name))...)
	case *AliasedBinding:
		var binding Node
		if n.Binding != nil {
			binding = n.Binding
		}
		p.block("aliased_binding",
			child("binding", binding),
			identTok("alias", n.Alias))
	case *DestructureStruct:
		p.block("destructure_struct", nodes(n.Elems)...)
	case *DestructureTuple:
		p.block("destructure_tuple", nodes(n.Elems)...)
	case *DestructureUnion:
		p.block("destructure_union",
			identTok("tag", n.Tag),
			child("inner", n.Inner))

	// Patterns
	case *UnionPattern:
		p.block("union_pattern",
			identTok("tag", n.Tag),
			child("inner", n.Inner))
	case *ScopedPattern:
		p.block("scoped_pattern", pathFields(n.Name)...)
	case *LiteralPattern:
		var lit Node
		if n.Lit != nil {
			lit = n.Lit
		}
		p.block("literal_pattern", child("", lit))
	case *ElsePattern:
		p.block("else_pattern")

	// Statements
	case *BlockStmt:
		p.block("block_stmt", nodes(n.Stmts)...)
	case *IfStmt:
		var then Node
		if n.Then != nil {
			then = n.Then
		}
		p.block("if_stmt",
			child("guard", n.Guard),
			child("cond", n.Cond),
			child("then", then),
			child("else", n.Else))
	case *WhileStmt:
		var body Node
		if n.Body != nil {
			body = n.Body
		}
		p.block("while_stmt",
			child("guard", n.Guard),
			child("cond", n.Cond),
			child("body", body))
	case *CaseStmt:
		p.block("case_stmt",
			child("subject", n.Subject),
			list("branches", nodes(n.Branches)))
	case *CaseBranch:
		p.block("case_branch",
			child("pattern", n.Pattern),
			child("body", n.Body))
	case *ReturnStmt:
		p.block("return_stmt", child("value", n.Value))
	case *ExprStmt:
		p.block("expr_stmt", child("", n.X))
	case *DeclStmt:
		var decl Node
		if n.Decl != nil {
			decl = n.Decl
		}
		p.block("decl_stmt", child("", decl))
	case *DeferStmt:
		p.block("defer_stmt", child("", n.Stmt))

	// Expressions
	case *NameExpr:
		p.block("name_expr", pathFields(n.Name)...)
	case *BasicLit:
		p.block(litKind(n.Kind), tok("", n.Value))
	case *BracedLit:
		p.block("braced_lit",
			child("type", n.Type),
			list("elems", nodes(n.Elems)))
	case *BinaryExpr:
		p.block("binary_expr",
			tok("op", n.Op.String()),
			child("left", n.Left),
			child("right", n.Right))
	case *UnaryExpr:
		p.block("unary_expr",
			tok("op", n.Op.String()),
			child("operand", n.X))
	case *PostfixExpr:
		p.block("postfix_expr",
			tok("op", n.Op.String()),
			child("operand", n.X))
	case *FieldExpr:
		p.block("field_expr",
			child("operand", n.X),
			identTok("field", n.Field))
	case *IndexExpr:
		p.block("index_expr",
			child("operand", n.X),
			child("index", n.Index))
	case *SliceExpr:
		p.block("slice_expr",
			child("operand", n.X),
			child("low", n.Low),
			child("high", n.High))
	case *CallExpr:
		p.block("call_expr",
			child("fun", n.Fun),
			list("args", nodes(n.Args)))

	default:
		p.block(fmt.Sprintf("<%T>", node))
	}
}

// nodes converts a slice of nodes into positional child fields.
func nodes[N Node](ns []N) []field {
	fields := make([]field, 0, len(ns))
	for _, n := range ns {
		fields = append(fields, child("", n))
	}
	return fields
}

// identTok returns a token field for id, or a field that block drops when
// id is nil.
func identTok(name string, id *Ident) field {
	if id == nil {
		return field{kind: fieldChild}
	}
	return tok(name, id.Name)
}

func pathFields(s *ScopedIdent) []field {
	if s == nil {
		return nil
	}
	fields := make([]field, 0, len(s.Segments)+1)
	if s.Global {
		fields = append(fields, flag("global"))
	}
	for _, seg := range s.Segments {
		fields = append(fields, tok("", seg.Name))
	}
	return fields
}

func litKind(kind token.Token) string {
	switch kind {
	case token.NUMBER:
		return "int_lit"
	case token.FLOAT:
		return "float_lit"
	case token.STRING:
		return "string_lit"
	case token.CHAR:
		return "char_lit"
	}
	return "basic_lit"
}
