package parser

import (
	"github.com/kolkov/iotac/internal/ast"
	"github.com/kolkov/iotac/internal/token"
)

// Binding powers, lowest to highest. Unary and postfix operators bind
// tighter than every binary operator.
const (
	precNone = iota
	precAssign
	precCompare
	precAdd
	precMul
)

// binaryPrec returns the binding power of t as an infix operator, or
// precNone if t is not one.
func binaryPrec(t token.Token) int {
	switch t {
	case token.ASSIGN:
		return precAssign
	case token.EQUALS, token.NOT_EQUALS:
		return precCompare
	case token.ADD, token.SUB:
		return precAdd
	case token.MUL, token.DIV, token.MOD:
		return precMul
	}
	return precNone
}

// parseExpr parses an expression including at most one top-level
// assignment. The assignment's right side is parsed above assignment
// precedence, so a = b = c stops before the second =.
func (p *Parser) parseExpr() ast.Expr {
	p.enter()
	defer p.leave()

	start := p.tok.Pos
	left := p.parseBinary(precCompare)
	if p.tok.Type != token.ASSIGN {
		return left
	}
	p.next()
	right := p.parseBinary(precCompare)
	return p.makeBinary(start, left, token.ASSIGN, right)
}

// parseBinary parses a chain of left-associative binary operators whose
// binding power is at least minPrec.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	start := p.tok.Pos
	left := p.parseUnary()
	for {
		op := p.tok.Type
		prec := binaryPrec(op)
		if prec < minPrec || prec == precNone {
			return left
		}
		p.next()
		right := p.parseBinary(prec + 1)
		left = p.makeBinary(start, left, op, right)
	}
}

// makeBinary builds a binary node spanning from start to the last
// consumed token, which covers any parentheses around the operands.
func (p *Parser) makeBinary(start token.Position, left ast.Expr, op token.Token, right ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{
		BaseExpr: ast.MakeBaseExpr(start, p.prevEnd()),
		Left:     left,
		Op:       op,
		Right:    right,
	}
}

// parseUnary parses prefix operators. A '*' reaching this point has no
// left operand, so it is a dereference; after an operand the binary loop
// consumes it as multiplication instead.
func (p *Parser) parseUnary() ast.Expr {
	switch p.tok.Type {
	case token.AMP, token.MUL, token.NOT, token.SUB:
		p.enter()
		defer p.leave()

		start, op := p.tok.Pos, p.tok.Type
		p.next()
		x := p.parseUnary()
		return &ast.UnaryExpr{
			BaseExpr: ast.MakeBaseExpr(start, p.prevEnd()),
			Op:       op,
			X:        x,
		}
	}
	start := p.tok.Pos
	return p.parsePostfix(start, p.parseOperand())
}

// parsePostfix applies ++, --, calls, indexing and field access to the
// operand x that begins at start.
func (p *Parser) parsePostfix(start token.Position, x ast.Expr) ast.Expr {
	for {
		switch p.tok.Type {
		case token.INCR, token.DECR:
			x = &ast.PostfixExpr{
				BaseExpr: ast.MakeBaseExpr(start, p.tok.End),
				Op:       p.tok.Type,
				X:        x,
			}
			p.next()

		case token.LPAREN:
			p.next()
			p.exprLev++
			args := p.parseExprList(token.RPAREN)
			p.exprLev--
			end := p.expect(token.RPAREN).End
			x = &ast.CallExpr{BaseExpr: ast.MakeBaseExpr(start, end), Fun: x, Args: args}

		case token.LBRACKET:
			x = p.parseIndex(start, x)

		case token.DOT:
			p.next()
			field := p.parseIdent()
			x = &ast.FieldExpr{BaseExpr: ast.MakeBaseExpr(start, field.End()), X: x, Field: field}

		default:
			return x
		}
	}
}

// parseIndex parses x[i], x[lo:hi], x[lo:], x[:hi] and x[:].
func (p *Parser) parseIndex(start token.Position, x ast.Expr) ast.Expr {
	p.next() // [
	p.exprLev++
	defer func() { p.exprLev-- }()

	var low ast.Expr
	if p.tok.Type != token.COLON {
		low = p.parseExpr()
	}
	if !p.got(token.COLON) {
		end := p.expect(token.RBRACKET).End
		return &ast.IndexExpr{BaseExpr: ast.MakeBaseExpr(start, end), X: x, Index: low}
	}

	var high ast.Expr
	if p.tok.Type != token.RBRACKET {
		high = p.parseExpr()
	}
	end := p.expect(token.RBRACKET).End
	return &ast.SliceExpr{BaseExpr: ast.MakeBaseExpr(start, end), X: x, Low: low, High: high}
}

// parseExprList parses comma separated expressions up to, but not
// including, the close token. A trailing comma is allowed.
func (p *Parser) parseExprList(close token.Token) []ast.Expr {
	var list []ast.Expr
	for p.tok.Type != close && p.tok.Type != token.EOF {
		list = append(list, p.parseExpr())
		if !p.got(token.COMMA) {
			break
		}
	}
	return list
}

// parseOperand parses an atom: a name, a literal, a parenthesized
// expression or a braced literal.
func (p *Parser) parseOperand() ast.Expr {
	start := p.tok.Pos
	switch t := p.tok; {
	case t.Type == token.IDENT || t.Type == token.SCOPE:
		name := p.parseScopedIdent(false)
		if p.tok.Type == token.LBRACE && p.dialect.BareBracedLiterals && p.exprLev >= 0 {
			typ := &ast.NamedType{BaseType: ast.MakeBaseType(start, name.End()), Name: name}
			return p.parseBracedBody(start, typ)
		}
		return &ast.NameExpr{BaseExpr: ast.MakeBaseExpr(start, name.End()), Name: name}

	case t.Type.IsLiteral():
		p.next()
		return &ast.BasicLit{BaseExpr: ast.MakeBaseExpr(t.Pos, t.End), Kind: t.Type, Value: t.Value}

	case t.Type == token.LPAREN:
		p.next()
		p.exprLev++
		x := p.parseExpr()
		p.exprLev--
		p.expect(token.RPAREN)
		return x

	case t.Type == token.BACKTICK:
		p.next()
		var typ ast.Type
		if p.tok.Type != token.LBRACE {
			typ = p.parseType()
		}
		return p.parseBracedBody(start, typ)

	case p.dialect.BareBracedLiterals && (t.Type == token.LBRACKET || t.Type.IsBuiltinType()):
		typ := p.parseType()
		return p.parseBracedBody(start, typ)
	}

	p.errorExpected("expression")
	return nil
}

// parseBracedBody parses "{" [expr {"," expr} [","]] "}" for a braced
// literal starting at start.
func (p *Parser) parseBracedBody(start token.Position, typ ast.Type) *ast.BracedLit {
	p.expect(token.LBRACE)
	p.exprLev++
	elems := p.parseExprList(token.RBRACE)
	p.exprLev--
	end := p.expect(token.RBRACE).End
	return &ast.BracedLit{BaseExpr: ast.MakeBaseExpr(start, end), Type: typ, Elems: elems}
}
