package lexer

import (
	"errors"
	"testing"

	"github.com/kolkov/iotac/internal/token"
)

func scanAll(src string) []Token {
	l := NewFromString(src)
	var toks []Token
	for {
		tok := l.Scan()
		toks = append(toks, tok)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			return toks
		}
	}
}

func TestScanOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Token
	}{
		{"+", []token.Token{token.ADD, token.EOF}},
		{"-", []token.Token{token.SUB, token.EOF}},
		{"*", []token.Token{token.MUL, token.EOF}},
		{"/", []token.Token{token.DIV, token.EOF}},
		{"%", []token.Token{token.MOD, token.EOF}},
		{"&", []token.Token{token.AMP, token.EOF}},
		{"|", []token.Token{token.PIPE, token.EOF}},
		{"!", []token.Token{token.NOT, token.EOF}},
		{"++", []token.Token{token.INCR, token.EOF}},
		{"--", []token.Token{token.DECR, token.EOF}},
		{"->", []token.Token{token.ARROW, token.EOF}},
		{"`", []token.Token{token.BACKTICK, token.EOF}},
		{"=", []token.Token{token.ASSIGN, token.EOF}},
		{"==", []token.Token{token.EQUALS, token.EOF}},
		{"!=", []token.Token{token.NOT_EQUALS, token.EOF}},
		{"( ) { } [ ]", []token.Token{token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.LBRACKET, token.RBRACKET, token.EOF}},
		{", ; : :: . ..", []token.Token{token.COMMA, token.SEMICOLON, token.COLON, token.SCOPE, token.DOT, token.DOTDOT, token.EOF}},
		{"+++", []token.Token{token.INCR, token.ADD, token.EOF}},
		{"-->", []token.Token{token.DECR, token.ILLEGAL}},
		{":::", []token.Token{token.SCOPE, token.COLON, token.EOF}},
		{"x..", []token.Token{token.IDENT, token.DOTDOT, token.EOF}},
		{"a->b", []token.Token{token.IDENT, token.ARROW, token.IDENT, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := scanAll(tt.input)
			if len(toks) != len(tt.expected) {
				t.Fatalf("got %d tokens, want %d: %v", len(toks), len(tt.expected), toks)
			}
			for i, exp := range tt.expected {
				if toks[i].Type != exp {
					t.Errorf("token[%d]: expected %v, got %v", i, exp, toks[i].Type)
				}
			}
		})
	}
}

func TestScanKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Token
	}{
		{"import", token.IMPORT},
		{"let", token.LET},
		{"mut", token.MUT},
		{"fun", token.FUN},
		{"struct", token.STRUCT},
		{"enum", token.ENUM},
		{"error", token.ERROR},
		{"if", token.IF},
		{"else", token.ELSE},
		{"while", token.WHILE},
		{"case", token.CASE},
		{"return", token.RETURN},
		{"defer", token.DEFER},
		{"ro", token.RO},
		{"u32", token.U32},
		{"s8", token.S8},
		{"f64", token.F64},
		{"string", token.STR},
		{"any", token.ANY},
		{"lets", token.IDENT},
		{"u128", token.IDENT},
		{"_", token.IDENT},
		{"Parse_Error", token.IDENT},
		{"größe", token.IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewFromString(tt.input).Scan()
			if tok.Type != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, tok.Type)
			}
			if tok.Value != tt.input {
				t.Errorf("expected value %q, got %q", tt.input, tok.Value)
			}
		})
	}
}

func TestScanLiterals(t *testing.T) {
	tests := []struct {
		input string
		typ   token.Token
	}{
		{"0", token.NUMBER},
		{"10", token.NUMBER},
		{"1234567890", token.NUMBER},
		{"3.14", token.FLOAT},
		{"0.5", token.FLOAT},
		{`"this is a string"`, token.STRING},
		{`""`, token.STRING},
		{`"esc \" \\ \n"`, token.STRING},
		{`'x'`, token.CHAR},
		{`'\n'`, token.CHAR},
		{`'\''`, token.CHAR},
		{`'ü'`, token.CHAR},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := scanAll(tt.input)
			if toks[0].Type != tt.typ {
				t.Fatalf("expected %v, got %v (%q)", tt.typ, toks[0].Type, toks[0].Value)
			}
			if toks[0].Value != tt.input {
				t.Errorf("expected value %q, got %q", tt.input, toks[0].Value)
			}
			if toks[1].Type != token.EOF {
				t.Errorf("expected EOF after literal, got %v", toks[1].Type)
			}
		})
	}
}

func TestScanNumberFollowedByDot(t *testing.T) {
	// A dot not followed by a digit is not part of the number.
	toks := scanAll("10.x 1..2")
	want := []token.Token{token.NUMBER, token.DOT, token.IDENT, token.NUMBER, token.DOTDOT, token.NUMBER, token.EOF}
	for i, typ := range want {
		if toks[i].Type != typ {
			t.Errorf("token[%d]: expected %v, got %v", i, typ, toks[i].Type)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{`"unterminated`, "unterminated string literal"},
		{"\"line\nbreak\"", "unterminated string literal"},
		{`'ab'`, "char literal must hold exactly one character"},
		{`''`, "empty char literal"},
		{`'a`, "unterminated char literal"},
		{`"\q"`, `unknown escape sequence '\q'`},
		{"012", "number 012 has a leading zero"},
		{"00", "number 00 has a leading zero"},
		{"12ab", "malformed number 12ab"},
		{"#", `illegal character '#'`},
		{"$", `illegal character '$'`},
		{"\xff", "invalid UTF-8 encoding"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := scanAll(tt.input)
			last := toks[len(toks)-1]
			if last.Type != token.ILLEGAL {
				t.Fatalf("expected ILLEGAL, got %v", last.Type)
			}
			if last.Value != tt.msg {
				t.Errorf("expected message %q, got %q", tt.msg, last.Value)
			}
		})
	}
}

func TestScanComments(t *testing.T) {
	src := "// leading\nlet x = 1; // trailing\n// only comment"
	toks := scanAll(src)
	want := []token.Token{token.LET, token.IDENT, token.ASSIGN, token.NUMBER, token.SEMICOLON, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, typ := range want {
		if toks[i].Type != typ {
			t.Errorf("token[%d]: expected %v, got %v", i, typ, toks[i].Type)
		}
	}
}

func TestPositions(t *testing.T) {
	toks := scanAll("let x\n  = 'c';")
	tests := []struct {
		line, col, offset int
		endCol            int
	}{
		{1, 1, 0, 4},  // let
		{1, 5, 4, 6},  // x
		{2, 3, 8, 4},  // =
		{2, 5, 10, 8}, // 'c'
		{2, 8, 13, 9}, // ;
		{2, 9, 14, 9}, // EOF
	}
	for i, tt := range tests {
		tok := toks[i]
		if tok.Pos.Line != tt.line || tok.Pos.Column != tt.col || tok.Pos.Offset != tt.offset {
			t.Errorf("token[%d] %v: expected %d:%d@%d, got %d:%d@%d", i, tok.Type,
				tt.line, tt.col, tt.offset, tok.Pos.Line, tok.Pos.Column, tok.Pos.Offset)
		}
		if tok.End.Column != tt.endCol {
			t.Errorf("token[%d] %v: expected end column %d, got %d", i, tok.Type, tt.endCol, tok.End.Column)
		}
	}
}

func TestFilenameInPositions(t *testing.T) {
	tok := NewFile("main.io", []byte("x")).Scan()
	if got := tok.Pos.String(); got != "main.io:1:1" {
		t.Errorf("expected main.io:1:1, got %s", got)
	}
}

func TestScanAfterEOF(t *testing.T) {
	l := NewFromString("x")
	l.Scan()
	for i := 0; i < 3; i++ {
		if tok := l.Scan(); tok.Type != token.EOF {
			t.Fatalf("scan %d after end: expected EOF, got %v", i, tok.Type)
		}
	}
}

func TestTokenize(t *testing.T) {
	src := []byte("foo(x, 10)")
	var first []token.Token
	for tok, err := range Tokenize(src) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first = append(first, tok.Type)
	}
	want := []token.Token{token.IDENT, token.LPAREN, token.IDENT, token.COMMA, token.NUMBER, token.RPAREN, token.EOF}
	if len(first) != len(want) {
		t.Fatalf("got %v, want %v", first, want)
	}
	for i := range want {
		if first[i] != want[i] {
			t.Errorf("token[%d]: expected %v, got %v", i, want[i], first[i])
		}
	}

	// The sequence restarts from the beginning on every range.
	n := 0
	for range Tokenize(src) {
		n++
	}
	if n != len(want) {
		t.Errorf("second pass yielded %d tokens, want %d", n, len(want))
	}
}

func TestTokenizeError(t *testing.T) {
	var got error
	count := 0
	for _, err := range Tokenize([]byte(`x "open`)) {
		count++
		if err != nil {
			got = err
		}
	}
	var lexErr *Error
	if !errors.As(got, &lexErr) {
		t.Fatalf("expected *Error, got %v", got)
	}
	if lexErr.Msg != "unterminated string literal" {
		t.Errorf("unexpected message %q", lexErr.Msg)
	}
	if lexErr.Span.Start.Column != 3 {
		t.Errorf("expected error at column 3, got %d", lexErr.Span.Start.Column)
	}
	if count != 2 {
		t.Errorf("expected 2 items (ident, error), got %d", count)
	}
}

func TestTokenizeEarlyBreak(t *testing.T) {
	for tok := range Tokenize([]byte("a b c")) {
		if tok.Type != token.IDENT {
			t.Fatalf("expected identifier, got %v", tok.Type)
		}
		break
	}
}
