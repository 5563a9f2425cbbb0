package parser

import (
	"github.com/kolkov/iotac/internal/ast"
	"github.com/kolkov/iotac/internal/token"
)

// -----------------------------------------------------------------------------
// Types
// -----------------------------------------------------------------------------

// startsType reports whether the current token can begin a type.
func (p *Parser) startsType() bool {
	return p.match(token.MUL, token.LBRACKET, token.IDENT, token.SCOPE) || p.tok.Type.IsBuiltinType()
}

// parseType parses:
//
//	type = "*" ["ro"] type | "[" [expr] "]" type | builtin | scoped_ident
func (p *Parser) parseType() ast.Type {
	p.enter()
	defer p.leave()

	start := p.tok.Pos
	switch {
	case p.tok.Type == token.MUL:
		p.next()
		mutable := !p.got(token.RO)
		elem := p.parseType()
		return &ast.PointerType{
			BaseType: ast.MakeBaseType(start, elem.End()),
			Mutable:  mutable,
			Elem:     elem,
		}

	case p.tok.Type == token.LBRACKET:
		p.next()
		var n ast.Expr
		if p.tok.Type != token.RBRACKET {
			p.exprLev++
			n = p.parseExpr()
			p.exprLev--
		}
		p.expect(token.RBRACKET)
		elem := p.parseType()
		return &ast.CollectionType{
			BaseType: ast.MakeBaseType(start, elem.End()),
			Len:      n,
			Elem:     elem,
		}

	case p.tok.Type == token.IDENT || p.tok.Type == token.SCOPE:
		name := p.parseScopedIdent(true)
		return &ast.NamedType{BaseType: ast.MakeBaseType(start, name.End()), Name: name}

	case p.tok.Type.IsBuiltinType():
		t := p.tok
		p.next()
		return &ast.BuiltinType{BaseType: ast.MakeBaseType(t.Pos, t.End), Kind: t.Type}
	}

	p.errorExpected("type")
	return nil
}

// parseScopedIdent parses ["::"] IDENT { "::" IDENT }. When allowDot is
// set, "." also separates segments, as in type and pattern paths.
func (p *Parser) parseScopedIdent(allowDot bool) *ast.ScopedIdent {
	start := p.tok.Pos
	global := p.got(token.SCOPE)
	return p.scopedRest(start, global, p.parseIdent(), allowDot)
}

// scopedRest continues a scoped identifier whose first segment has been
// parsed.
func (p *Parser) scopedRest(start token.Position, global bool, first *ast.Ident, allowDot bool) *ast.ScopedIdent {
	segs := []*ast.Ident{first}
	for p.tok.Type == token.SCOPE || (allowDot && p.tok.Type == token.DOT) {
		p.next()
		segs = append(segs, p.parseIdent())
	}
	return &ast.ScopedIdent{
		BaseNode: ast.MakeBase(start, p.prevEnd()),
		Global:   global,
		Segments: segs,
	}
}

// -----------------------------------------------------------------------------
// Bindings
// -----------------------------------------------------------------------------

// parseBinding parses:
//
//	binding = "*" IDENT | IDENT ["(" binding ")"]
//	        | "{" aliased { "," aliased } [","] "}"
//	        | "(" binding { "," binding } [","] ")"
func (p *Parser) parseBinding() ast.Binding {
	p.enter()
	defer p.leave()

	start := p.tok.Pos
	switch p.tok.Type {
	case token.MUL:
		return p.parseSimpleBinding()

	case token.IDENT:
		id := p.parseIdent()
		if !p.got(token.LPAREN) {
			return &ast.SimpleBinding{BaseBinding: ast.MakeBaseBinding(start, id.End()), Name: id}
		}
		inner := p.parseBinding()
		end := p.expect(token.RPAREN).End
		return &ast.DestructureUnion{
			BaseBinding: ast.MakeBaseBinding(start, end),
			Tag:         id,
			Inner:       inner,
		}

	case token.LBRACE:
		p.next()
		var elems []*ast.AliasedBinding
		for {
			elems = append(elems, p.parseAliasedBinding())
			if !p.got(token.COMMA) || p.tok.Type == token.RBRACE {
				break
			}
		}
		end := p.expect(token.RBRACE).End
		return &ast.DestructureStruct{BaseBinding: ast.MakeBaseBinding(start, end), Elems: elems}

	case token.LPAREN:
		p.next()
		var elems []ast.Binding
		for {
			elems = append(elems, p.parseBinding())
			if !p.got(token.COMMA) || p.tok.Type == token.RPAREN {
				break
			}
		}
		end := p.expect(token.RPAREN).End
		return &ast.DestructureTuple{BaseBinding: ast.MakeBaseBinding(start, end), Elems: elems}
	}

	p.errorExpected("binding")
	return nil
}

// parseSimpleBinding parses ["*"] IDENT.
func (p *Parser) parseSimpleBinding() *ast.SimpleBinding {
	start := p.tok.Pos
	pointer := p.got(token.MUL)
	id := p.parseIdent()
	return &ast.SimpleBinding{
		BaseBinding: ast.MakeBaseBinding(start, id.End()),
		Pointer:     pointer,
		Name:        id,
	}
}

// parseAliasedBinding parses ["*"] IDENT ["=" IDENT].
func (p *Parser) parseAliasedBinding() *ast.AliasedBinding {
	b := p.parseSimpleBinding()
	ab := &ast.AliasedBinding{BaseNode: ast.MakeBase(b.Pos(), b.End()), Binding: b}
	if p.got(token.ASSIGN) {
		ab.Alias = p.parseIdent()
		ab.EndPos = ab.Alias.End()
	}
	return ab
}
