package parser

import (
	"github.com/kotlinize/kotlinize/internal/ast"
	"github.com/kotlinize/kotlinize/internal/lexer"
	"github.com/kotlinize/kotlinize/internal/token"
)

// parseStmt parses a statement or declaration.
func (p *Parser) parseStmt() ast.Stmt {
	if p.isDeclStart() {
		return p.parseDecl()
	}

	start := p.pos()
	switch p.tok().Type {
	case token.IDENT:
		if p.lookahead(1).Type == token.COLON && isLabelable(p.lookahead(2).Type) {
			label := p.next().Value
			p.next()
			s := p.parseStmt()
			return &ast.LabeledStmt{BaseStmt: ast.MakeBaseStmt(start, p.end()), Label: label, Stmt: s}
		}
	case token.IF:
		return p.parseIf()
	case token.GUARD:
		return p.parseGuard()
	case token.WHILE:
		return p.parseWhile()
	case token.REPEAT:
		return p.parseRepeat()
	case token.FOR:
		return p.parseForIn()
	case token.SWITCH:
		return p.parseSwitch()
	case token.DO:
		return p.parseDo()
	case token.DEFER:
		p.next()
		body := p.parseBlock()
		return &ast.DeferStmt{BaseStmt: ast.MakeBaseStmt(start, p.end()), Body: body}
	case token.THROW:
		p.next()
		x := p.parseExpr()
		return &ast.ThrowStmt{BaseStmt: ast.MakeBaseStmt(start, p.end()), X: x}
	case token.RETURN:
		p.next()
		s := &ast.ReturnStmt{}
		if !p.atLineEnd() {
			s.X = p.parseExpr()
		}
		s.BaseStmt = ast.MakeBaseStmt(start, p.end())
		return s
	case token.BREAK, token.CONTINUE:
		s := &ast.BranchStmt{Tok: p.next().Type}
		if p.at(token.IDENT) && !p.tok().NewlineBefore {
			s.Label = p.next().Value
		}
		s.BaseStmt = ast.MakeBaseStmt(start, p.end())
		return s
	case token.FALLTHROUGH:
		p.next()
		return &ast.BranchStmt{BaseStmt: ast.MakeBaseStmt(start, p.end()), Tok: token.FALLTHROUGH}
	}

	x := p.parseExpr()
	return &ast.ExprStmt{BaseStmt: ast.MakeBaseStmt(start, p.end()), X: x}
}

// isLabelable reports whether a statement starting with t may carry a label.
func isLabelable(t token.Token) bool {
	switch t {
	case token.FOR, token.WHILE, token.REPEAT, token.IF, token.SWITCH, token.DO:
		return true
	}
	return false
}

// withoutTrailing runs f with trailing closures disabled, as in the head
// of an if or while, where "{" opens the body.
func (p *Parser) withoutTrailing(f func()) {
	saved := p.noTrailing
	p.noTrailing = true
	f()
	p.noTrailing = saved
}

// parseConditions parses a comma-separated condition list.
func (p *Parser) parseConditions() []ast.Condition {
	var conds []ast.Condition
	p.withoutTrailing(func() {
		for {
			conds = append(conds, p.parseCondition())
			if !p.accept(token.COMMA) {
				break
			}
		}
	})
	return conds
}

func (p *Parser) parseCondition() ast.Condition {
	t := p.tok()
	switch {
	case t.Type == token.LET || t.Type == token.VAR:
		kind := ast.CondLet
		if t.Type == token.VAR {
			kind = ast.CondVar
		}
		p.next()
		// Shorthand: if let x { ... } binds x to itself.
		if id := p.tok(); id.Type == token.IDENT {
			switch p.lookahead(1).Type {
			case token.COMMA, token.LBRACE, token.ELSE:
				p.next()
				x := &ast.Ident{BaseExpr: ast.MakeBaseExpr(id.Pos, p.end()), Name: id.Value}
				return ast.Condition{Kind: kind, Pattern: id.Value, X: x}
			}
		}
		pattern := p.parsePatternUntil(token.ASSIGN)
		p.expect(token.ASSIGN)
		return ast.Condition{Kind: kind, Pattern: pattern, X: p.parseExpr()}

	case t.Type == token.CASE:
		p.next()
		pattern := p.parsePatternUntil(token.ASSIGN)
		p.expect(token.ASSIGN)
		return ast.Condition{Kind: ast.CondCase, Pattern: pattern, X: p.parseExpr()}

	case t.Type == token.POUND && (t.Value == "#available" || t.Value == "#unavailable"):
		return ast.Condition{Kind: ast.CondAvailability, X: p.parseDirective()}
	}
	return ast.Condition{Kind: ast.CondExpr, X: p.parseExpr()}
}

func (p *Parser) parseIf() *ast.IfStmt {
	start := p.pos()
	p.expect(token.IF)
	s := &ast.IfStmt{Conds: p.parseConditions()}
	s.Body = p.parseBlock()
	if p.accept(token.ELSE) {
		if p.at(token.IF) {
			s.ElseIf = p.parseIf()
		} else {
			s.Else = p.parseBlock()
		}
	}
	s.BaseStmt = ast.MakeBaseStmt(start, p.end())
	return s
}

func (p *Parser) parseGuard() ast.Stmt {
	start := p.pos()
	p.expect(token.GUARD)
	conds := p.parseConditions()
	p.expect(token.ELSE)
	body := p.parseBlock()
	return &ast.GuardStmt{BaseStmt: ast.MakeBaseStmt(start, p.end()), Conds: conds, Body: body}
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.pos()
	p.expect(token.WHILE)
	conds := p.parseConditions()
	body := p.parseBlock()
	return &ast.WhileStmt{BaseStmt: ast.MakeBaseStmt(start, p.end()), Conds: conds, Body: body}
}

func (p *Parser) parseRepeat() ast.Stmt {
	start := p.pos()
	p.expect(token.REPEAT)
	body := p.parseBlock()
	p.expect(token.WHILE)
	var cond ast.Expr
	p.withoutTrailing(func() { cond = p.parseExpr() })
	return &ast.RepeatStmt{BaseStmt: ast.MakeBaseStmt(start, p.end()), Body: body, Cond: cond}
}

func (p *Parser) parseForIn() ast.Stmt {
	start := p.pos()
	p.expect(token.FOR)
	s := &ast.ForInStmt{Case: p.accept(token.CASE)}
	s.Pattern = p.parsePatternUntil(token.IN)
	p.expect(token.IN)
	p.withoutTrailing(func() {
		s.X = p.parseExpr()
		if p.accept(token.WHERE) {
			s.Where = p.parseExpr()
		}
	})
	s.Body = p.parseBlock()
	s.BaseStmt = ast.MakeBaseStmt(start, p.end())
	return s
}

func (p *Parser) parseSwitch() ast.Stmt {
	start := p.pos()
	p.expect(token.SWITCH)
	s := &ast.SwitchStmt{}
	p.withoutTrailing(func() { s.X = p.parseExpr() })
	p.expect(token.LBRACE)
	for {
		p.skipSemicolons()
		if p.at(token.RBRACE) {
			break
		}
		s.Cases = append(s.Cases, p.parseCaseClause())
	}
	p.expect(token.RBRACE)
	s.BaseStmt = ast.MakeBaseStmt(start, p.end())
	return s
}

// atCaseLabel reports whether the current token starts a case label.
func (p *Parser) atCaseLabel() bool {
	switch p.tok().Type {
	case token.CASE, token.DEFAULT, token.AT:
		return true
	}
	return false
}

func (p *Parser) parseCaseClause() *ast.CaseClause {
	start := p.pos()
	c := &ast.CaseClause{}
	p.parseAttributes() // @unknown default

	if p.accept(token.DEFAULT) {
		c.Default = true
	} else {
		p.expect(token.CASE)
		for {
			item := ast.CaseItem{Pattern: p.parsePatternUntil(token.COLON, token.COMMA, token.WHERE)}
			if p.accept(token.WHERE) {
				p.withoutTrailing(func() { item.Where = p.parseExpr() })
			}
			c.Items = append(c.Items, item)
			if !p.accept(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.COLON)

	c.Body = p.parseStmtList(func() bool { return p.at(token.RBRACE) || p.atCaseLabel() })
	c.BaseNode = ast.MakeBaseNode(start, p.end())
	return c
}

func (p *Parser) parseDo() ast.Stmt {
	start := p.pos()
	p.expect(token.DO)
	s := &ast.DoStmt{Body: p.parseBlock()}
	for p.at(token.CATCH) {
		s.Catches = append(s.Catches, p.parseCatch())
	}
	s.BaseStmt = ast.MakeBaseStmt(start, p.end())
	return s
}

func (p *Parser) parseCatch() *ast.CatchClause {
	start := p.pos()
	p.expect(token.CATCH)
	c := &ast.CatchClause{}
	if !p.at(token.WHERE) && !p.at(token.LBRACE) {
		c.Pattern = p.parsePatternUntil(token.WHERE, token.LBRACE)
	}
	if p.accept(token.WHERE) {
		p.withoutTrailing(func() { c.Where = p.parseExpr() })
	}
	c.Body = p.parseBlock()
	c.BaseNode = ast.MakeBaseNode(start, p.end())
	return c
}

// isStop returns a skipBalanced predicate matching any of the given types.
func isStop(types ...token.Token) func(lexer.Token) bool {
	return func(t lexer.Token) bool {
		for _, typ := range types {
			if t.Type == typ {
				return true
			}
		}
		return false
	}
}
