// Package iotac provides a parser for the Iota systems language.
//
// iotac turns Iota source text into a syntax tree and prints that tree in
// a stable indented text format, featuring:
//   - Pratt expression parsing with the prefix/infix '*' ambiguity resolved by position
//   - Destructuring bindings, case patterns and braced literals
//   - Two surface dialects (v1 and v2)
//   - Parallel parsing of independent files
//
// # Quick Start
//
// Print the tree of an expression:
//
//	out, err := iotac.Dump("10 + 11*12 + 10", iotac.RootExpr, nil)
//
// Parse a file and work with the tree:
//
//	tree, err := iotac.Parse(src, &iotac.Config{Filename: "main.io"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(tree.Dump())
//
// # Many Files
//
// Sources are independent, so they can be parsed in parallel:
//
//	trees, err := iotac.ParseAll(ctx, []iotac.Source{
//	    {Name: "a.io", Text: a},
//	    {Name: "b.io", Text: b},
//	}, &iotac.Config{Workers: 4})
//
// # Configuration
//
// The [Config] type selects:
//   - The dialect ("v1" or "v2")
//   - The indent width of printed trees
//   - The worker count for [ParseAll] and [ParseEach]
//
// # Error Handling
//
// The first error stops a parse; no partial tree is returned. Errors are
// returned as specific types for detailed handling:
//   - [ParseError]: lexical or syntax errors, matched with errors.Is against
//     [ErrLex], [ErrSyntax] or [ErrEndOfInput]
//   - [CheckError]: duplicate declarations found by [Tree.Check]
//
// # Thread Safety
//
// Every parse owns its lexer and tree. A [Tree] is immutable and safe for
// concurrent use.
package iotac
