package iotac_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/coregx/coregex"

	"github.com/kolkov/iotac"
)

func TestDump(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		root    iotac.Root
		config  *iotac.Config
		want    string
		wantErr bool
	}{
		{
			name:   "expression",
			source: "-x",
			root:   iotac.RootExpr,
			want:   "unary_expr {\n  op='-'\n  operand:\n    name_expr {\n      'x'\n    }\n}\n",
		},
		{
			name:   "statement",
			source: "return;",
			root:   iotac.RootStmt,
			want:   "return_stmt {}\n",
		},
		{
			name:   "empty file",
			source: "",
			root:   iotac.RootFile,
			want:   "source_file {\n  imports {}\n  decls {}\n}\n",
		},
		{
			name:   "indent width",
			source: "-x",
			root:   iotac.RootExpr,
			config: &iotac.Config{IndentWidth: 4},
			want:   "unary_expr {\n    op='-'\n    operand:\n        name_expr {\n            'x'\n        }\n}\n",
		},
		{
			name:    "expression root rejects statements",
			source:  "x;",
			root:    iotac.RootExpr,
			wantErr: true,
		},
		{
			name:    "v1 rejects bare literal",
			source:  "Foo{1}",
			root:    iotac.RootExpr,
			config:  &iotac.Config{Dialect: "v1"},
			wantErr: true,
		},
		{
			name:    "unknown dialect",
			source:  "x",
			root:    iotac.RootExpr,
			config:  &iotac.Config{Dialect: "v7"},
			wantErr: true,
		},
		{
			name:    "unknown root",
			source:  "x",
			root:    iotac.Root(9),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := iotac.Dump(tt.source, tt.root, tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Dump() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if got != "" {
					t.Errorf("Dump() returned output on error: %q", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Dump() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	source := "struct P { x u8 }\nfun main() { let p = P{ x = 1 }; }"
	tree, err := iotac.Parse(source, nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tree.Source() != source {
		t.Errorf("Source() = %q", tree.Source())
	}
	if n := len(tree.File().Decls); n != 2 {
		t.Errorf("got %d decls, want 2", n)
	}
	if !strings.HasPrefix(tree.Dump(), "source_file {\n") {
		t.Errorf("Dump() = %q", tree.Dump())
	}
	if err := tree.Check(); err != nil {
		t.Errorf("Check() = %v", err)
	}
}

func TestParseError(t *testing.T) {
	_, err := iotac.Parse("let x = ;", &iotac.Config{Filename: "a.io"})
	if err == nil {
		t.Fatal("expected error for invalid source")
	}

	var pe *iotac.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Kind != iotac.SyntaxError || pe.Line != 1 || pe.Column != 9 || pe.Filename != "a.io" {
		t.Errorf("ParseError = %+v", pe)
	}
	if pe.EndLine != 1 || pe.EndColumn != 10 {
		t.Errorf("error ends at %d:%d, want 1:10", pe.EndLine, pe.EndColumn)
	}
	if !errors.Is(err, iotac.ErrSyntax) {
		t.Error("errors.Is(err, ErrSyntax) = false")
	}
	if got, want := err.Error(), "a.io: parse error at 1:9: expected expression, found ';'"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		source string
		want   error
	}{
		{`let s = "abc`, iotac.ErrLex},
		{"let x = ;", iotac.ErrSyntax},
		{"fun f() {", iotac.ErrEndOfInput},
	}
	for _, tt := range tests {
		if _, err := iotac.Parse(tt.source, nil); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.source, err, tt.want)
		}
	}
}

func TestParseErrorSpan(t *testing.T) {
	tests := []struct {
		source string
		span   string
	}{
		{"let x = ;", "1:9-1:10"},
		{"fun f() {\n  let s = \"abc;\n}", "2:11-2:16"},
		{"let x = 012345;", "1:9-1:15"},
		{"fun f() {", "1:10-1:10"},
	}
	for _, tt := range tests {
		_, err := iotac.Parse(tt.source, nil)
		var pe *iotac.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("Parse(%q) error = %v, want *ParseError", tt.source, err)
		}
		got := fmt.Sprintf("%d:%d-%d:%d", pe.Line, pe.Column, pe.EndLine, pe.EndColumn)
		if got != tt.span {
			t.Errorf("Parse(%q) error span = %s, want %s", tt.source, got, tt.span)
		}
	}
}

func TestCheck(t *testing.T) {
	tree := iotac.MustParse("enum E { a, b, a }\nfun f() {}\nfun f() {}")
	err := tree.Check()
	var ce *iotac.CheckError
	if !errors.As(err, &ce) {
		t.Fatalf("Check() = %v, want *CheckError", err)
	}
	if len(ce.Errors) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(ce.Errors), ce.Errors)
	}
	if !strings.HasPrefix(ce.Errors[0], "1:16:") || !strings.HasPrefix(ce.Errors[1], "3:5:") {
		t.Errorf("errors = %v", ce.Errors)
	}
}

func TestMustParse(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse() should panic on invalid source")
		}
	}()

	_ = iotac.MustParse("fun f() {") // Missing closing brace
}

func TestNames(t *testing.T) {
	tree := iotac.MustParse(`import io "std/io"; let (a, b) = t; struct S {} fun main() {}`)
	got := strings.Join(tree.Names(), " ")
	if want := "io a b S main"; got != want {
		t.Errorf("Names() = %q, want %q", got, want)
	}
}

func TestDumpDecls(t *testing.T) {
	tree := iotac.MustParse("fun test_add() {}\nfun helper() {}\nlet (x, test_y) = t;")
	re, err := coregex.Compile("^test_")
	if err != nil {
		t.Fatal(err)
	}
	got := tree.DumpDecls(re.MatchString)
	if strings.Count(got, "fun_decl {") != 1 || strings.Count(got, "var_decl {") != 1 {
		t.Errorf("DumpDecls() = %s", got)
	}
	if strings.Contains(got, "'helper'") {
		t.Error("DumpDecls() included an unmatched declaration")
	}
}

func TestParseAll(t *testing.T) {
	var sources []iotac.Source
	for i := 0; i < 20; i++ {
		sources = append(sources, iotac.Source{
			Name: fmt.Sprintf("f%d.io", i),
			Text: fmt.Sprintf("let v%d = %d * x;", i, i),
		})
	}

	trees, err := iotac.ParseAll(context.Background(), sources, &iotac.Config{Workers: 3})
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if len(trees) != len(sources) {
		t.Fatalf("got %d trees, want %d", len(trees), len(sources))
	}
	for i, tree := range trees {
		seq, err := iotac.Parse(sources[i].Text, nil)
		if err != nil {
			t.Fatal(err)
		}
		if tree.Dump() != seq.Dump() {
			t.Errorf("tree %d differs from sequential parse", i)
		}
	}
}

func TestParseAllError(t *testing.T) {
	sources := []iotac.Source{
		{Name: "ok.io", Text: "let a = 1;"},
		{Name: "bad.io", Text: "let b = ;"},
	}
	trees, err := iotac.ParseAll(context.Background(), sources, nil)
	if trees != nil {
		t.Error("ParseAll() returned trees on failure")
	}
	var pe *iotac.ParseError
	if !errors.As(err, &pe) || pe.Filename != "bad.io" {
		t.Errorf("ParseAll() error = %v", err)
	}
}

func TestParseAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := iotac.ParseAll(ctx, []iotac.Source{{Name: "a.io", Text: "let a = 1;"}}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ParseAll() error = %v, want context.Canceled", err)
	}
}

func TestParseEach(t *testing.T) {
	sources := []iotac.Source{
		{Name: "a.io", Text: "let a = 1;"},
		{Name: "b.io", Text: "let b = ;"},
		{Name: "c.io", Text: "let c = 3;"},
	}
	results, err := iotac.ParseEach(context.Background(), sources, &iotac.Config{Workers: 2})
	if err != nil {
		t.Fatalf("ParseEach() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, r := range results {
		if r.Name != sources[i].Name {
			t.Errorf("result %d name = %q", i, r.Name)
		}
		if failed := r.Err != nil; failed != (i == 1) {
			t.Errorf("result %d: err = %v", i, r.Err)
		}
		if (r.Tree == nil) != (r.Err != nil) {
			t.Errorf("result %d: tree and error both set or both nil", i)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	source := strings.Repeat("fun f(a u32, b u32) u32 { if a == b { return a * b + 1; } return `Pair{a, b}.x; }\n", 50)
	b.SetBytes(int64(len(source)))
	for i := 0; i < b.N; i++ {
		_, _ = iotac.Parse(source, nil)
	}
}

func BenchmarkDumpExpr(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = iotac.Dump("x + 10[*30:] = 12 + 15*3", iotac.RootExpr, nil)
	}
}

// Example functions for documentation
func ExampleDump() {
	out, _ := iotac.Dump("*p", iotac.RootExpr, nil)
	fmt.Print(out)
	// Output:
	// unary_expr {
	//   op='*'
	//   operand:
	//     name_expr {
	//       'p'
	//     }
	// }
}

func ExampleTree_Check() {
	tree := iotac.MustParse("struct S { x u8, x u8 }")
	fmt.Println(tree.Check())
	// Output: check error: 1:18: field "x" redeclared in this struct (previous declaration at 1:12)
}
