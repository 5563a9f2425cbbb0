package parser

import (
	"github.com/kolkov/iotac/internal/ast"
	"github.com/kolkov/iotac/internal/token"
)

// parseFile parses { import } { decl } up to end of input.
func (p *Parser) parseFile() *ast.File {
	file := &ast.File{Filename: p.start.Filename}
	for p.tok.Type == token.IMPORT {
		file.Imports = append(file.Imports, p.parseImport())
	}
	for p.tok.Type != token.EOF {
		file.Decls = append(file.Decls, p.parseDecl())
	}
	file.BaseNode = ast.MakeBase(p.start, p.tok.End)
	return file
}

// parseImport parses "import" [IDENT] STRING ";".
func (p *Parser) parseImport() *ast.Import {
	start := p.expect(token.IMPORT).Pos
	imp := &ast.Import{}
	if p.tok.Type == token.IDENT {
		imp.Alias = p.parseIdent()
	}
	imp.Path = p.expect(token.STRING).Value
	imp.BaseNode = ast.MakeBase(start, p.expect(token.SEMICOLON).End)
	return imp
}

// parseDecl parses a top-level declaration.
func (p *Parser) parseDecl() ast.Decl {
	switch p.tok.Type {
	case token.LET, token.MUT:
		return p.parseVarDecl()
	case token.STRUCT:
		return p.parseStructDecl()
	case token.ENUM:
		return p.parseEnumDecl()
	case token.ERROR:
		return p.parseErrorDecl()
	case token.FUN:
		return p.parseFuncDecl()
	case token.IMPORT:
		p.errorf("imports must precede declarations")
	}
	p.errorExpected("declaration")
	return nil
}

// parseVarDecl parses ("let" | "mut") binding [type] ["=" expr] ";".
func (p *Parser) parseVarDecl() *ast.VarDecl {
	start := p.tok.Pos
	d := &ast.VarDecl{Mutable: p.tok.Type == token.MUT}
	p.next()
	d.Binding = p.parseBinding()

	if !p.match(token.ASSIGN, token.SEMICOLON) {
		if !p.startsType() {
			p.errorExpected("type, '=' or ';'")
		}
		d.Type = p.parseType()
	}
	if p.got(token.ASSIGN) {
		d.Value = p.parseExpr()
	}
	d.BaseDecl = ast.MakeBaseDecl(start, p.expect(token.SEMICOLON).End)
	return d
}

// parseStructDecl parses "struct" IDENT "{" [field {"," field} [","]] "}".
func (p *Parser) parseStructDecl() *ast.StructDecl {
	start := p.expect(token.STRUCT).Pos
	d := &ast.StructDecl{Name: p.parseIdent()}
	p.expect(token.LBRACE)
	for p.tok.Type != token.RBRACE {
		name := p.parseIdent()
		typ := p.parseType()
		d.Fields = append(d.Fields, &ast.Field{
			BaseNode: ast.MakeBase(name.Pos(), typ.End()),
			Name:     name,
			Type:     typ,
		})
		if !p.got(token.COMMA) {
			break
		}
	}
	d.BaseDecl = ast.MakeBaseDecl(start, p.expect(token.RBRACE).End)
	return d
}

// parseEnumDecl parses "enum" IDENT "{" [IDENT {"," IDENT} [","]] "}".
func (p *Parser) parseEnumDecl() *ast.EnumDecl {
	start := p.expect(token.ENUM).Pos
	d := &ast.EnumDecl{Name: p.parseIdent()}
	p.expect(token.LBRACE)
	for p.tok.Type != token.RBRACE {
		d.Variants = append(d.Variants, p.parseIdent())
		if !p.got(token.COMMA) {
			break
		}
	}
	d.BaseDecl = ast.MakeBaseDecl(start, p.expect(token.RBRACE).End)
	return d
}

// parseErrorDecl parses "error" IDENT "{" [variant {"," variant} [","]] "}"
// where variant = ["!"] scoped_ident.
func (p *Parser) parseErrorDecl() *ast.ErrorDecl {
	start := p.expect(token.ERROR).Pos
	d := &ast.ErrorDecl{Name: p.parseIdent()}
	p.expect(token.LBRACE)
	for p.tok.Type != token.RBRACE {
		vstart := p.tok.Pos
		embedded := p.got(token.NOT)
		name := p.parseScopedIdent(true)
		d.Variants = append(d.Variants, &ast.ErrorVariant{
			BaseNode: ast.MakeBase(vstart, name.End()),
			Embedded: embedded,
			Name:     name,
		})
		if !p.got(token.COMMA) {
			break
		}
	}
	d.BaseDecl = ast.MakeBaseDecl(start, p.expect(token.RBRACE).End)
	return d
}

// parseFuncDecl parses "fun" IDENT "(" [param {"," param} [","]] ")" [type] block.
func (p *Parser) parseFuncDecl() *ast.FuncDecl {
	start := p.expect(token.FUN).Pos
	d := &ast.FuncDecl{Name: p.parseIdent()}
	p.expect(token.LPAREN)
	for p.tok.Type != token.RPAREN {
		d.Params = append(d.Params, p.parseParam())
		if !p.got(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	if p.tok.Type != token.LBRACE {
		d.Result = p.parseType()
	}
	d.Body = p.parseBlock()
	d.BaseDecl = ast.MakeBaseDecl(start, d.Body.End())
	return d
}

// parseParam parses ["*"] IDENT [".."] type.
func (p *Parser) parseParam() *ast.Param {
	b := p.parseSimpleBinding()
	variadic := p.got(token.DOTDOT)
	typ := p.parseType()
	return &ast.Param{
		BaseNode: ast.MakeBase(b.Pos(), typ.End()),
		Binding:  b,
		Variadic: variadic,
		Type:     typ,
	}
}
