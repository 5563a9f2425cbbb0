package parser_test

import (
	"errors"
	"testing"

	"github.com/kolkov/iotac/internal/ast"
	"github.com/kolkov/iotac/internal/parser"
)

// checkResult verifies the all-or-nothing contract of a parse: either a
// tree and no error, or a *ParseError and no tree.
func checkResult(t *testing.T, src string, node ast.Node, isNil bool, err error) {
	t.Helper()
	if err != nil {
		if !isNil {
			t.Fatalf("%q: failed parse returned a tree", src)
		}
		var pe *parser.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%q: error %T is not a *ParseError", src, err)
		}
		if pe.Kind == 0 || pe.Unwrap() == nil {
			t.Fatalf("%q: error without kind: %v", src, err)
		}
		return
	}
	if isNil {
		t.Fatalf("%q: successful parse returned no tree", src)
	}
	if node.End().Offset > len(src) || node.Pos().Offset > node.End().Offset {
		t.Fatalf("%q: bad root span %v..%v", src, node.Pos(), node.End())
	}
	if a, b := ast.String(node), ast.String(node); a != b {
		t.Fatalf("%q: printing is not deterministic", src)
	}
}

// FuzzParser tests the file parser with random inputs to find crashes.
func FuzzParser(f *testing.F) {
	seeds := []string{
		// Empty and minimal
		"",
		"let x;",
		"let x = 1;",

		// Imports
		`import "std/io";`,
		`import io "std/io"; let x = io::read();`,

		// Declarations
		"struct Point { x f32, y f32 }",
		"struct Empty {}",
		"enum Direction { north, east, south, west, }",
		"error Parse_Error { A, B, !IO_Error }",
		"fun main() {}",
		"fun f(a u32, b.. string) *ro u8 { return &b[0]; }",
		"mut buf [16]u8 = `[16]u8{};",
		"let { *px = x, py } = p;",
		"let ( a, (b, c) ) = t;",
		"let ok(v) = r;",

		// Statements
		"fun f() { if x { a(); } else if y { b(); } else { c(); } }",
		"fun f() { while let some(n) = next(it) { n++; } }",
		"fun f() { case d { ::north -> a; Dir::south -> b; else -> c; } }",
		"fun f() { case r { ok(v) -> use(v), err(*e) -> {} } }",
		"fun f() { defer close(f); return; }",

		// Ambiguities
		"let _ = x *Foo;",
		"let y = *p * *q;",
		"let z = `*u32{10};",
		"let w = `{ x = 10 };",
		"let v = Foo::Bar::baz{10};",
		"fun f() { if Foo {} }",

		// Invalid
		"let",
		"let x = ;",
		"fun f( {",
		"struct S { x }",
		`let s = "unterminated`,
		"let c = '';",
		"let n = 007;",
		"fun f() { case x { else -> a; 1 -> b; } }",
		"let x = a = b = c;",
		"@",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		// Limit input size to prevent timeouts
		const maxLen = 10000
		if len(src) > maxLen {
			return
		}

		file, err := parser.Parse(src)
		checkResult(t, src, file, file == nil, err)

		again, err2 := parser.Parse(src)
		if (err == nil) != (err2 == nil) {
			t.Fatalf("%q: parse is not deterministic", src)
		}
		if err == nil && ast.String(file) != ast.String(again) {
			t.Fatalf("%q: trees differ between runs", src)
		}
	})
}

// FuzzParseExpr specifically tests expression parsing.
func FuzzParseExpr(f *testing.F) {
	exprs := []string{
		"42",
		"3.14",
		`"hello"`,
		"'c'",
		"x",
		"::x",
		"a::b::c",
		"a + b",
		"a - b * c",
		"a / b % c",
		"a == b",
		"a != b",
		"a = b + 1",
		"-a",
		"!a",
		"&a",
		"*a",
		"a++",
		"a--",
		"f(a, b,)",
		"a[i]",
		"a[1:2]",
		"a[:]",
		"a.b.c",
		"(a + b) * c",
		"x *Foo",
		"`*u32{10}",
		"`[]u32{x, y, z}",
		"u32{1}",
		"Point{ x = 1, y = 2 }",
		"a b",
		"(",
		"a[",
	}

	for _, expr := range exprs {
		f.Add(expr)
	}

	f.Fuzz(func(t *testing.T, src string) {
		const maxLen = 1000
		if len(src) > maxLen {
			return
		}
		expr, err := parser.ParseExpr(src)
		checkResult(t, src, expr, expr == nil, err)
	})
}

// FuzzParseStmt tests statement parsing.
func FuzzParseStmt(f *testing.F) {
	stmts := []string{
		"x;",
		"{}",
		"return;",
		"return a * b;",
		"defer f();",
		"let x = 1;",
		"if a; { b; }",
		"if let ok(v) = r { v; } else { 0; }",
		"while i { i--; }",
		"case x { 1 -> a; 'c' -> b, \"s\" -> c; else -> d; }",
		"case x { a -> if y {} else -> z; }",
		"if",
		"case x { else -> a; b -> c; }",
	}

	for _, stmt := range stmts {
		f.Add(stmt)
	}

	f.Fuzz(func(t *testing.T, src string) {
		const maxLen = 1000
		if len(src) > maxLen {
			return
		}
		stmt, err := parser.ParseStmt(src)
		checkResult(t, src, stmt, stmt == nil, err)
	})
}
