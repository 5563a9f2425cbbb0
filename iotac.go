package iotac

import (
	"fmt"
	"strings"

	"github.com/kolkov/iotac/internal/ast"
	"github.com/kolkov/iotac/internal/parser"
	"github.com/kolkov/iotac/internal/semantic"
)

// Version is the iotac version string.
const Version = "0.1.0"

// Root selects the grammar rule the whole input must match.
type Root int

const (
	RootFile Root = iota // imports and declarations
	RootStmt             // exactly one statement
	RootExpr             // exactly one expression
)

func (r Root) String() string {
	switch r {
	case RootFile:
		return "file"
	case RootStmt:
		return "stmt"
	case RootExpr:
		return "expr"
	}
	return fmt.Sprintf("Root(%d)", int(r))
}

// Tree is a successfully parsed source file.
// It is immutable and safe for concurrent use.
type Tree struct {
	file   *ast.File
	source string
	indent int
}

// Parse parses a complete Iota source file.
// If config is nil, default configuration is used.
//
// Example:
//
//	tree, err := iotac.Parse(`fun main() { return; }`, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(tree.Dump())
func Parse(source string, config *Config) (*Tree, error) {
	c, pc, err := resolve(config)
	if err != nil {
		return nil, err
	}
	return parseTree(source, c, pc)
}

func parseTree(source string, c Config, pc parser.Config) (*Tree, error) {
	file, err := parser.ParseFile([]byte(source), pc)
	if err != nil {
		return nil, convertParseError(err)
	}
	return &Tree{file: file, source: source, indent: c.IndentWidth}, nil
}

// MustParse is like Parse but panics if the source cannot be parsed.
func MustParse(source string) *Tree {
	tree, err := Parse(source, nil)
	if err != nil {
		panic(err)
	}
	return tree
}

// Dump parses source as the given root and returns its tree in the
// indented text format. On failure it returns "" and a *ParseError.
//
// Example:
//
//	out, err := iotac.Dump("10 + 11*12", iotac.RootExpr, nil)
func Dump(source string, root Root, config *Config) (string, error) {
	c, pc, err := resolve(config)
	if err != nil {
		return "", err
	}

	var node ast.Node
	switch root {
	case RootFile:
		node, err = parser.ParseFile([]byte(source), pc)
	case RootStmt:
		node, err = parser.ParseStmtBytes([]byte(source), pc)
	case RootExpr:
		node, err = parser.ParseExprBytes([]byte(source), pc)
	default:
		return "", fmt.Errorf("iotac: unknown root %v", root)
	}
	if err != nil {
		return "", convertParseError(err)
	}
	return dumpNode(node, c.IndentWidth), nil
}

func dumpNode(node ast.Node, indent int) string {
	var sb strings.Builder
	// Writes to a strings.Builder never fail.
	_ = ast.NewPrinter(&sb, indent).Print(node)
	return sb.String()
}

// File returns the syntax tree. Callers must not modify it.
func (t *Tree) File() *ast.File {
	return t.file
}

// Source returns the original source text.
func (t *Tree) Source() string {
	return t.source
}

// Dump returns the tree in the indented text format.
func (t *Tree) Dump() string {
	return dumpNode(t.file, t.indent)
}

// Check runs the declaration checks on the tree and returns a
// *CheckError listing every duplicate, or nil.
func (t *Tree) Check() error {
	return convertCheckErrors(semantic.Check(t.file))
}

// Names returns the names declared at the top level of the file, in
// declaration order.
func (t *Tree) Names() []string {
	syms := semantic.Globals(t.file).Symbols()
	names := make([]string, len(syms))
	for i, sym := range syms {
		names[i] = sym.Name
	}
	return names
}

// DumpDecls returns the trees of the top-level declarations for which
// match reports true on one of the declared names. Imports are skipped.
func (t *Tree) DumpDecls(match func(name string) bool) string {
	var sb strings.Builder
	for _, decl := range t.file.Decls {
		for _, name := range declNames(decl) {
			if match(name) {
				sb.WriteString(dumpNode(decl, t.indent))
				break
			}
		}
	}
	return sb.String()
}

// declNames returns the names a top-level declaration introduces.
func declNames(decl ast.Decl) []string {
	switch d := decl.(type) {
	case *ast.VarDecl:
		var names []string
		for _, id := range semantic.BindingNames(d.Binding) {
			names = append(names, id.Name)
		}
		return names
	case *ast.StructDecl:
		return []string{d.Name.Name}
	case *ast.EnumDecl:
		return []string{d.Name.Name}
	case *ast.ErrorDecl:
		return []string{d.Name.Name}
	case *ast.FuncDecl:
		return []string{d.Name.Name}
	}
	return nil
}
