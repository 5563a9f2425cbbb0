package parser

import (
	"github.com/kolkov/iotac/internal/ast"
	"github.com/kolkov/iotac/internal/token"
)

// parseBlock parses "{" { stmt } "}".
func (p *Parser) parseBlock() *ast.BlockStmt {
	start := p.expect(token.LBRACE).Pos
	var stmts []ast.Stmt
	for p.tok.Type != token.RBRACE && p.tok.Type != token.EOF {
		stmts = append(stmts, p.parseStmt())
	}
	end := p.expect(token.RBRACE).End
	return &ast.BlockStmt{BaseStmt: ast.MakeBaseStmt(start, end), Stmts: stmts}
}

// parseStmt parses a single statement.
func (p *Parser) parseStmt() ast.Stmt {
	p.enter()
	defer p.leave()

	start := p.tok.Pos
	switch p.tok.Type {
	case token.LBRACE:
		return p.parseBlock()

	case token.IF:
		return p.parseIfStmt()

	case token.WHILE:
		p.next()
		guard, cond := p.parseCond()
		body := p.parseBlock()
		return &ast.WhileStmt{
			BaseStmt: ast.MakeBaseStmt(start, body.End()),
			Guard:    guard,
			Cond:     cond,
			Body:     body,
		}

	case token.CASE:
		return p.parseCaseStmt()

	case token.RETURN:
		p.next()
		var value ast.Expr
		if p.tok.Type != token.SEMICOLON {
			value = p.parseExpr()
		}
		end := p.expect(token.SEMICOLON).End
		return &ast.ReturnStmt{BaseStmt: ast.MakeBaseStmt(start, end), Value: value}

	case token.DEFER:
		p.next()
		s := p.parseStmt()
		return &ast.DeferStmt{BaseStmt: ast.MakeBaseStmt(start, s.End()), Stmt: s}

	case token.LET, token.MUT:
		d := p.parseVarDecl()
		return &ast.DeclStmt{BaseStmt: ast.MakeBaseStmt(start, d.End()), Decl: d}
	}

	x := p.parseExpr()
	end := p.expect(token.SEMICOLON).End
	return &ast.ExprStmt{BaseStmt: ast.MakeBaseStmt(start, end), X: x}
}

// parseIfStmt parses "if" cond [";"] block ["else" (if | block)].
func (p *Parser) parseIfStmt() *ast.IfStmt {
	start := p.expect(token.IF).Pos
	guard, cond := p.parseCond()
	then := p.parseBlock()
	s := &ast.IfStmt{
		BaseStmt: ast.MakeBaseStmt(start, then.End()),
		Guard:    guard,
		Cond:     cond,
		Then:     then,
	}

	// Inside a case, "else ->" starts the catch-all branch.
	if p.tok.Type != token.ELSE || p.peek() == token.ARROW {
		return s
	}
	p.next()
	if p.tok.Type == token.IF {
		s.Else = p.parseIfStmt()
	} else {
		s.Else = p.parseBlock()
	}
	s.EndPos = s.Else.End()
	return s
}

// parseCond parses the header of an if or while statement:
//
//	cond = ["let" binding "="] expr [";"]
//
// The let form marks a pattern-introducing guard; the expression after it
// parses exactly like an unmarked condition.
func (p *Parser) parseCond() (ast.Binding, ast.Expr) {
	var guard ast.Binding
	if p.got(token.LET) {
		guard = p.parseBinding()
		p.expect(token.ASSIGN)
	}
	cond := p.parseHeaderExpr()
	p.got(token.SEMICOLON)
	return guard, cond
}

// parseHeaderExpr parses an expression in a control clause header, where
// a '{' after a name opens the body rather than a braced literal.
func (p *Parser) parseHeaderExpr() ast.Expr {
	old := p.exprLev
	p.exprLev = -1
	x := p.parseExpr()
	p.exprLev = old
	return x
}

// parseCaseStmt parses "case" expr [";"] "{" { branch [","] } "}".
// An else branch must be the last one.
func (p *Parser) parseCaseStmt() *ast.CaseStmt {
	start := p.expect(token.CASE).Pos
	subject := p.parseHeaderExpr()
	p.got(token.SEMICOLON)
	p.expect(token.LBRACE)

	var branches []*ast.CaseBranch
	var elseBranch *ast.CaseBranch
	for p.tok.Type != token.RBRACE && p.tok.Type != token.EOF {
		if elseBranch != nil {
			p.errorf("else branch at %s must be the last branch of a case", elseBranch.Pos())
		}
		br := p.parseCaseBranch()
		if _, ok := br.Pattern.(*ast.ElsePattern); ok {
			elseBranch = br
		}
		branches = append(branches, br)
		p.got(token.COMMA)
	}
	end := p.expect(token.RBRACE).End
	return &ast.CaseStmt{
		BaseStmt: ast.MakeBaseStmt(start, end),
		Subject:  subject,
		Branches: branches,
	}
}

// parseCaseBranch parses pattern "->" stmt.
func (p *Parser) parseCaseBranch() *ast.CaseBranch {
	pat := p.parseCasePattern()
	p.expect(token.ARROW)
	body := p.parseStmt()
	return &ast.CaseBranch{
		BaseNode: ast.MakeBase(pat.Pos(), body.End()),
		Pattern:  pat,
		Body:     body,
	}
}

// parseCasePattern parses:
//
//	pattern = IDENT "(" binding ")"
//	        | ["::"] IDENT { ("::" | ".") IDENT }
//	        | NUMBER | FLOAT | STRING | CHAR
//	        | "else"
func (p *Parser) parseCasePattern() ast.CasePattern {
	start := p.tok.Pos
	switch t := p.tok; {
	case t.Type == token.ELSE:
		p.next()
		return &ast.ElsePattern{BasePattern: ast.MakeBasePattern(t.Pos, t.End)}

	case t.Type.IsLiteral() && t.Type != token.IDENT:
		p.next()
		lit := &ast.BasicLit{BaseExpr: ast.MakeBaseExpr(t.Pos, t.End), Kind: t.Type, Value: t.Value}
		return &ast.LiteralPattern{BasePattern: ast.MakeBasePattern(t.Pos, t.End), Lit: lit}

	case t.Type == token.SCOPE:
		name := p.parseScopedIdent(true)
		return &ast.ScopedPattern{BasePattern: ast.MakeBasePattern(start, name.End()), Name: name}

	case t.Type == token.IDENT:
		id := p.parseIdent()
		switch p.tok.Type {
		case token.LPAREN:
			p.next()
			inner := p.parseBinding()
			end := p.expect(token.RPAREN).End
			return &ast.UnionPattern{
				BasePattern: ast.MakeBasePattern(start, end),
				Tag:         id,
				Inner:       inner,
			}
		case token.SCOPE, token.DOT:
			// qualified path
		default:
			if !p.dialect.BareCasePatterns {
				p.errorExpected("'(' or '::' after case pattern " + id.Name)
			}
		}
		name := p.scopedRest(start, false, id, true)
		return &ast.ScopedPattern{BasePattern: ast.MakeBasePattern(start, name.End()), Name: name}
	}

	p.errorExpected("case pattern")
	return nil
}
