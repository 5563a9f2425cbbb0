package parser

import (
	"fmt"

	"github.com/kolkov/iotac/internal/ast"
	"github.com/kolkov/iotac/internal/lexer"
	"github.com/kolkov/iotac/internal/token"
)

// maxDepth bounds grammar recursion so that hostile input fails with a
// SyntaxError instead of exhausting the stack.
const maxDepth = 1000

// Config controls a single parse.
type Config struct {
	Filename string  // recorded in positions
	Dialect  Dialect // zero value selects DefaultDialect
}

// Parser is a recursive descent parser for Iota source files.
// A Parser stops at the first error; it is not reusable.
type Parser struct {
	lexer   *lexer.Lexer // Lexer instance
	tok     lexer.Token  // Current token
	prevTok lexer.Token  // Previous token (for end positions)
	ahead   *lexer.Token // Buffered lookahead from peek
	dialect Dialect
	start   token.Position // Start of input

	// exprLev is negative while parsing an if, while or case header.
	// Named braced literals are only recognized when it is >= 0.
	exprLev int
	depth   int
	err     *ParseError
}

// bailout unwinds the parser after the first error.
type bailout struct{}

func newParser(src []byte, cfg Config) *Parser {
	d := cfg.Dialect
	if d.Name == "" {
		d = DefaultDialect
	}
	p := &Parser{
		lexer:   lexer.NewFile(cfg.Filename, src),
		dialect: d,
		start:   token.Position{Filename: cfg.Filename, Line: 1, Column: 1},
	}
	return p
}

// Parse parses an Iota source file with the default configuration.
func Parse(src string) (*ast.File, error) {
	return ParseFile([]byte(src), Config{})
}

// ParseExpr parses a single expression (useful for testing).
func ParseExpr(src string) (ast.Expr, error) {
	return ParseExprBytes([]byte(src), Config{})
}

// ParseStmt parses a single statement.
func ParseStmt(src string) (ast.Stmt, error) {
	return ParseStmtBytes([]byte(src), Config{})
}

// ParseFile parses a complete source file. On failure it returns a nil
// file and a *ParseError.
func ParseFile(src []byte, cfg Config) (*ast.File, error) {
	return run(src, cfg, (*Parser).parseFile)
}

// ParseExprBytes parses src as exactly one expression.
func ParseExprBytes(src []byte, cfg Config) (ast.Expr, error) {
	return run(src, cfg, (*Parser).parseExpr)
}

// ParseStmtBytes parses src as exactly one statement.
func ParseStmtBytes(src []byte, cfg Config) (ast.Stmt, error) {
	return run(src, cfg, (*Parser).parseStmt)
}

// run applies parse to src and requires the whole input to be consumed.
func run[T any](src []byte, cfg Config, parse func(*Parser) T) (result T, err error) {
	p := newParser(src, cfg)
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			var zero T
			result, err = zero, p.err
		}
	}()
	p.next() // Initialize first token
	result = parse(p)
	p.expect(token.EOF)
	return result, nil
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// next advances to the next token. A lexical error aborts the parse as
// soon as the offending token becomes current.
func (p *Parser) next() {
	p.prevTok = p.tok
	if p.ahead != nil {
		p.tok = *p.ahead
		p.ahead = nil
	} else {
		p.tok = p.lexer.Scan()
	}
	if p.tok.Type == token.ILLEGAL {
		p.fail(lexError(p.tok.Span(), p.tok.Value))
	}
}

// peek returns the token after the current one without consuming it.
func (p *Parser) peek() token.Token {
	if p.ahead == nil {
		t := p.lexer.Scan()
		p.ahead = &t
	}
	return p.ahead.Type
}

// expect checks that the current token is tok, advances, and returns the
// consumed token. Otherwise the parse fails.
func (p *Parser) expect(tok token.Token) lexer.Token {
	if p.tok.Type != tok {
		p.errorExpected(tokenName(tok))
	}
	t := p.tok
	if tok != token.EOF {
		p.next()
	}
	return t
}

// got reports whether the current token is tok and consumes it if so.
func (p *Parser) got(tok token.Token) bool {
	if p.tok.Type == tok {
		p.next()
		return true
	}
	return false
}

// match returns true if current token matches any of the given types.
func (p *Parser) match(types ...token.Token) bool {
	for _, t := range types {
		if p.tok.Type == t {
			return true
		}
	}
	return false
}

// prevEnd returns the end of the last consumed token.
func (p *Parser) prevEnd() token.Position {
	return p.prevTok.End
}

// parseIdent expects an identifier and returns it as a node.
func (p *Parser) parseIdent() *ast.Ident {
	t := p.expect(token.IDENT)
	return &ast.Ident{BaseNode: ast.MakeBase(t.Pos, t.End), Name: t.Value}
}

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

// fail records err and unwinds to the entry point.
func (p *Parser) fail(err *ParseError) {
	p.err = err
	panic(bailout{})
}

// errorExpected fails with "expected want, found <current token>".
func (p *Parser) errorExpected(want string) {
	p.fail(expectedError(p.tok.Span(), want, p.tokenDesc(), p.tok.Type == token.EOF))
}

// errorf fails with a SyntaxError at the current token.
func (p *Parser) errorf(format string, args ...any) {
	p.fail(errorf(p.tok.Span(), format, args...))
}

// enter guards recursion depth; every call must be paired with leave.
func (p *Parser) enter() {
	p.depth++
	if p.depth > maxDepth {
		p.errorf("nesting exceeds %d levels", maxDepth)
	}
}

func (p *Parser) leave() {
	p.depth--
}

// tokenDesc returns a description of the current token for error messages.
func (p *Parser) tokenDesc() string {
	switch t := p.tok; t.Type {
	case token.EOF:
		return "end of input"
	case token.IDENT:
		return fmt.Sprintf("identifier %s", t.Value)
	case token.NUMBER, token.FLOAT, token.STRING, token.CHAR:
		return t.Value
	default:
		return tokenName(t.Type)
	}
}

// tokenName returns a human-readable name for a token type.
func tokenName(t token.Token) string {
	switch t {
	case token.EOF:
		return "end of input"
	case token.IDENT:
		return "identifier"
	case token.NUMBER:
		return "number"
	case token.FLOAT:
		return "float"
	case token.STRING:
		return "string literal"
	case token.CHAR:
		return "char literal"
	}
	switch {
	case t.IsKeyword():
		return "keyword '" + t.String() + "'"
	case t.IsOperator():
		return "'" + t.String() + "'"
	}
	return "type " + t.String()
}
