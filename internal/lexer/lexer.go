// Package lexer provides Iota source code tokenization.
package lexer

import (
	"fmt"
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/kolkov/iotac/internal/token"
)

const eof = -1

// Lexer tokenizes Iota source code.
type Lexer struct {
	src      []byte         // Source code
	ch       rune           // Current character (eof at end of input)
	width    int            // Byte width of ch
	rdOffset int            // Offset of the byte after ch
	pos      token.Position // Position of ch
}

// New creates a new Lexer for the given source code.
func New(src []byte) *Lexer {
	return NewFile("", src)
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string) *Lexer {
	return New([]byte(src))
}

// NewFile creates a Lexer whose positions carry filename.
func NewFile(filename string, src []byte) *Lexer {
	l := &Lexer{
		src: src,
		pos: token.Position{Filename: filename, Line: 1, Column: 1},
	}
	l.next()
	return l
}

// Token represents a scanned token with its span and source text.
// For ILLEGAL tokens Value holds the error message instead.
type Token struct {
	Type  token.Token
	Pos   token.Position // First byte of the token
	End   token.Position // Byte after the token
	Value string
}

// Span returns the source range covered by the token.
func (t Token) Span() token.Span {
	return token.SpanOf(t.Pos, t.End)
}

// Error is a lexical error reported by Tokenize.
type Error struct {
	Span token.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Span.Start, e.Msg)
}

// Tokenize returns the token sequence of src, ending with EOF. The sequence
// stops after the first lexical error, which is yielded with a zero Token.
// Each iteration scans src from the beginning.
func Tokenize(src []byte) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		l := New(src)
		for {
			tok := l.Scan()
			if tok.Type == token.ILLEGAL {
				yield(Token{}, &Error{Span: tok.Span(), Msg: tok.Value})
				return
			}
			if !yield(tok, nil) || tok.Type == token.EOF {
				return
			}
		}
	}
}

// Scan scans and returns the next token. At end of input it keeps
// returning EOF.
func (l *Lexer) Scan() Token {
	l.skipWhitespace()

	pos := l.pos
	switch ch := l.ch; {
	case ch == eof:
		return Token{Type: token.EOF, Pos: pos, End: pos}
	case isDigit(ch):
		return l.scanNumber(pos)
	case isIdentStart(ch):
		return l.scanIdent(pos)
	case ch == '"':
		return l.scanString(pos)
	case ch == '\'':
		return l.scanChar(pos)
	}

	ch := l.ch
	l.next()
	tok := token.ILLEGAL
	switch ch {
	case '+':
		tok = l.pick('+', token.INCR, token.ADD)
	case '-':
		switch l.ch {
		case '-':
			l.next()
			tok = token.DECR
		case '>':
			l.next()
			tok = token.ARROW
		default:
			tok = token.SUB
		}
	case '*':
		tok = token.MUL
	case '/':
		tok = token.DIV
	case '%':
		tok = token.MOD
	case '&':
		tok = token.AMP
	case '|':
		tok = token.PIPE
	case '!':
		tok = l.pick('=', token.NOT_EQUALS, token.NOT)
	case '=':
		tok = l.pick('=', token.EQUALS, token.ASSIGN)
	case ':':
		tok = l.pick(':', token.SCOPE, token.COLON)
	case '.':
		tok = l.pick('.', token.DOTDOT, token.DOT)
	case '`':
		tok = token.BACKTICK
	case '(':
		tok = token.LPAREN
	case ')':
		tok = token.RPAREN
	case '{':
		tok = token.LBRACE
	case '}':
		tok = token.RBRACE
	case '[':
		tok = token.LBRACKET
	case ']':
		tok = token.RBRACKET
	case ',':
		tok = token.COMMA
	case ';':
		tok = token.SEMICOLON
	}

	if tok == token.ILLEGAL {
		return l.illegal(pos, illegalCharMessage(ch))
	}
	return Token{Type: tok, Pos: pos, End: l.pos, Value: l.text(pos)}
}

// pick consumes the current character when it equals ch and returns
// match, otherwise it returns other.
func (l *Lexer) pick(ch rune, match, other token.Token) token.Token {
	if l.ch == ch {
		l.next()
		return match
	}
	return other
}

func (l *Lexer) scanIdent(pos token.Position) Token {
	for isIdentContinue(l.ch) {
		l.next()
	}
	name := l.text(pos)
	return Token{Type: token.LookupIdent(name), Pos: pos, End: l.pos, Value: name}
}

func (l *Lexer) scanString(pos token.Position) Token {
	l.next() // opening quote
	for l.ch != '"' {
		switch l.ch {
		case eof, '\n':
			return l.illegal(pos, "unterminated string literal")
		case '\\':
			if msg := l.scanEscape('"'); msg != "" {
				return l.illegal(pos, msg)
			}
		default:
			l.next()
		}
	}
	l.next() // closing quote
	return Token{Type: token.STRING, Pos: pos, End: l.pos, Value: l.text(pos)}
}

// scanChar scans a character literal holding exactly one character.
func (l *Lexer) scanChar(pos token.Position) Token {
	l.next() // opening quote
	switch l.ch {
	case eof, '\n':
		return l.illegal(pos, "unterminated char literal")
	case '\'':
		l.next()
		return l.illegal(pos, "empty char literal")
	case '\\':
		if msg := l.scanEscape('\''); msg != "" {
			return l.illegal(pos, msg)
		}
	default:
		l.next()
	}
	if l.ch != '\'' {
		for l.ch != '\'' && l.ch != '\n' && l.ch != eof {
			l.next()
		}
		if l.ch == '\'' {
			l.next()
			return l.illegal(pos, "char literal must hold exactly one character")
		}
		return l.illegal(pos, "unterminated char literal")
	}
	l.next() // closing quote
	return Token{Type: token.CHAR, Pos: pos, End: l.pos, Value: l.text(pos)}
}

// scanEscape consumes a backslash escape and returns an error message for
// an invalid one.
func (l *Lexer) scanEscape(quote rune) string {
	l.next() // backslash
	switch l.ch {
	case 'n', 't', 'r', '0', '\\', '\'', '"':
		l.next()
		return ""
	case eof, '\n':
		return "unterminated escape sequence"
	}
	ch := l.ch
	l.next()
	if ch == quote {
		return ""
	}
	return fmt.Sprintf("unknown escape sequence '\\%c'", ch)
}

func (l *Lexer) scanNumber(pos token.Position) Token {
	typ := token.NUMBER
	for isDigit(l.ch) {
		l.next()
	}
	if l.ch == '.' && isDigit(rune(l.peek())) {
		typ = token.FLOAT
		l.next()
		for isDigit(l.ch) {
			l.next()
		}
	}
	for isIdentContinue(l.ch) {
		l.next()
	}
	text := l.text(pos)
	if msg := checkNumber(text); msg != "" {
		return l.illegal(pos, msg)
	}
	return Token{Type: typ, Pos: pos, End: l.pos, Value: text}
}

func (l *Lexer) skipWhitespace() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.next()
		case l.ch == '/' && l.peek() == '/':
			for l.ch != '\n' && l.ch != eof {
				l.next()
			}
		default:
			return
		}
	}
}

// illegal returns an ILLEGAL token spanning from pos to the current
// character with msg as its value.
func (l *Lexer) illegal(pos token.Position, msg string) Token {
	return Token{Type: token.ILLEGAL, Pos: pos, End: l.pos, Value: msg}
}

// text returns the source text between pos and the current character.
func (l *Lexer) text(pos token.Position) string {
	return string(l.src[pos.Offset:l.pos.Offset])
}

// peek returns the byte after the current character without consuming it.
func (l *Lexer) peek() byte {
	if l.rdOffset < len(l.src) {
		return l.src[l.rdOffset]
	}
	return 0
}

func (l *Lexer) next() {
	if l.ch == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column += l.width
	}
	l.pos.Offset = l.rdOffset

	if l.rdOffset >= len(l.src) {
		l.ch = eof
		l.width = 0
		return
	}

	r, w := rune(l.src[l.rdOffset]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(l.src[l.rdOffset:])
	}
	l.rdOffset += w
	l.ch = r
	l.width = w
}

func illegalCharMessage(ch rune) string {
	if ch == utf8.RuneError {
		return "invalid UTF-8 encoding"
	}
	return fmt.Sprintf("illegal character %q", ch)
}

// Helper functions

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
		(ch >= utf8.RuneSelf && ch != utf8.RuneError && unicode.IsLetter(ch))
}

func isIdentContinue(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch) ||
		(ch >= utf8.RuneSelf && unicode.IsDigit(ch))
}
