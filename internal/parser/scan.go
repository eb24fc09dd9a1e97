package parser

import (
	"strings"

	"github.com/kotlinize/kotlinize/internal/lexer"
	"github.com/kotlinize/kotlinize/internal/token"
)

// Types, patterns, attributes and generic clauses are not modelled as
// nodes: the renderer copies their source text. The functions below
// consume them and return that text.

// isOpenAngle reports whether t opens a generic argument or parameter list.
func isOpenAngle(t lexer.Token) bool {
	return t.Type == token.OPERATOR && t.Value == "<"
}

// closeAngles returns the number of '>' characters a token closing a
// generic list carries: ">" is 1, ">>" is 2, ">?" is 1. It returns 0 if t
// cannot close a generic list.
func closeAngles(t lexer.Token) int {
	if t.Type != token.OPERATOR || !strings.HasPrefix(t.Value, ">") {
		return 0
	}
	n := 0
	for n < len(t.Value) && t.Value[n] == '>' {
		n++
	}
	if strings.Trim(t.Value[n:], "?!") != "" {
		return 0
	}
	return n
}

// parseType consumes a type and returns its source text.
func (p *Parser) parseType() string {
	start := p.ix
	p.skipType()
	return p.textFrom(start)
}

func (p *Parser) skipType() {
	for {
		switch {
		case p.at(token.AT):
			p.skipAttribute()
			continue
		case p.at(token.INOUT):
			p.next()
			continue
		case p.tok().Type == token.IDENT && isTypeSpecifier(p.tok().Value) && startsType(p.peek(1)):
			p.next()
			continue
		}
		break
	}

	p.skipTypePrimary()
	for {
		t := p.tok()
		switch {
		case p.pendingClose > 0:
			return
		case (t.Type == token.QUESTION || t.Type == token.BANG) && !t.SpaceBefore:
			p.next()
		case t.Type == token.DOT && !t.NewlineBefore && p.peek(1).Type == token.IDENT:
			p.next()
			p.next()
			if isOpenAngle(p.tok()) && !p.tok().SpaceBefore {
				p.skipGenericArgs()
			}
		case t.Type == token.OPERATOR && t.Value == "..." && !t.SpaceBefore:
			p.next()
		case t.Type == token.OPERATOR && t.Value == "&":
			p.next()
			p.skipTypePrimary()
		case t.Type == token.IDENT && t.Value == "async" && !t.NewlineBefore && isEffectOrArrow(p.peek(1)):
			p.next()
		case (t.Type == token.THROWS || t.Type == token.RETHROWS) && p.peek(1).Type == token.ARROW:
			p.next()
		case t.Type == token.ARROW:
			p.next()
			p.skipType()
			return
		default:
			return
		}
	}
}

func isTypeSpecifier(name string) bool {
	switch name {
	case "some", "any", "borrowing", "consuming", "__owned", "__shared":
		return true
	}
	return false
}

func startsType(t lexer.Token) bool {
	switch t.Type {
	case token.IDENT, token.SELFTYPE, token.LPAREN, token.LBRACKET, token.AT:
		return !t.NewlineBefore
	}
	return false
}

func isEffectOrArrow(t lexer.Token) bool {
	return t.Type == token.ARROW || t.Type == token.THROWS || t.Type == token.RETHROWS
}

func (p *Parser) skipTypePrimary() {
	switch p.tok().Type {
	case token.IDENT, token.SELFTYPE:
		p.next()
		if isOpenAngle(p.tok()) && !p.tok().SpaceBefore {
			p.skipGenericArgs()
		}
	case token.LBRACKET:
		p.next()
		p.skipType()
		if p.accept(token.COLON) {
			p.skipType()
		}
		p.expect(token.RBRACKET)
	case token.LPAREN:
		p.next()
		for !p.at(token.RPAREN) {
			p.skipTupleTypeLabels()
			p.skipType()
			if !p.accept(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
	default:
		p.errorExpected("type")
	}
}

// skipTupleTypeLabels consumes "label:" or "_ name:" before a tuple or
// function-type element.
func (p *Parser) skipTupleTypeLabels() {
	isLabel := func(t lexer.Token) bool {
		return t.Type == token.IDENT || t.Type == token.WILDCARD || t.Type.IsKeyword()
	}
	switch {
	case isLabel(p.tok()) && p.peek(1).Type == token.COLON:
		p.next()
		p.next()
	case isLabel(p.tok()) && isLabel(p.peek(1)) && p.peek(2).Type == token.COLON:
		p.next()
		p.next()
		p.next()
	}
}

// skipGenericArgs consumes a generic argument list: <Int, [String]>.
func (p *Parser) skipGenericArgs() {
	if !isOpenAngle(p.tok()) {
		p.errorExpected("'<'")
	}
	p.next()
	for {
		p.skipType()
		if p.pendingClose > 0 || !p.accept(token.COMMA) {
			break
		}
	}
	p.closeAngle()
}

// closeAngle consumes the '>' ending a generic list. A ">>" token closes
// two lists; the second is recorded in pendingClose.
func (p *Parser) closeAngle() {
	if p.pendingClose > 0 {
		p.pendingClose--
		return
	}
	n := closeAngles(p.tok())
	if n == 0 {
		p.errorExpected("'>'")
	}
	p.next()
	p.pendingClose = n - 1
}

// parseGenericParams parses an optional generic parameter clause and
// returns its text: <T, U: Equatable>.
func (p *Parser) parseGenericParams() string {
	if !isOpenAngle(p.tok()) {
		return ""
	}
	start := p.ix
	p.next()
	for {
		p.expectIdent()
		if p.accept(token.COLON) {
			p.skipType()
		}
		if p.pendingClose > 0 || !p.accept(token.COMMA) {
			break
		}
	}
	p.closeAngle()
	return p.textFrom(start)
}

// parseInheritance parses an optional ": A, B" clause and returns it
// normalized to ": A, B".
func (p *Parser) parseInheritance() string {
	if !p.accept(token.COLON) {
		return ""
	}
	var types []string
	for {
		if p.at(token.CLASS) {
			types = append(types, p.next().Value)
		} else {
			types = append(types, p.parseType())
		}
		if !p.accept(token.COMMA) {
			break
		}
	}
	return ": " + strings.Join(types, ", ")
}

// parseWhereClause parses an optional generic where clause and returns
// its text.
func (p *Parser) parseWhereClause() string {
	if !p.at(token.WHERE) {
		return ""
	}
	start := p.ix
	p.next()
	for {
		p.skipType()
		switch {
		case p.accept(token.COLON):
			p.skipType()
		case p.atOp("=="):
			p.next()
			p.skipType()
		default:
			p.errorExpected("':' or '==' in where clause")
		}
		if !p.accept(token.COMMA) {
			break
		}
	}
	return p.textFrom(start)
}

// parseAttributes parses a possibly empty attribute list.
func (p *Parser) parseAttributes() []string {
	var attrs []string
	for p.at(token.AT) {
		start := p.ix
		p.skipAttribute()
		attrs = append(attrs, p.textFrom(start))
	}
	return attrs
}

// skipAttribute consumes one attribute: @name or @name(args).
func (p *Parser) skipAttribute() {
	p.expect(token.AT)
	if p.tok().SpaceBefore {
		p.errorExpected("attribute name")
	}
	p.expectIdent()
	if p.at(token.LPAREN) && !p.tok().SpaceBefore {
		p.skipGroup()
	}
}

// skipGroup consumes a bracketed group, from its opening token through the
// matching closing token.
func (p *Parser) skipGroup() {
	var closer token.Token
	switch p.tok().Type {
	case token.LPAREN:
		closer = token.RPAREN
	case token.LBRACKET:
		closer = token.RBRACKET
	case token.LBRACE:
		closer = token.RBRACE
	default:
		p.errorExpected("'(', '[' or '{'")
	}
	p.next()
	p.skipBalanced(func(lexer.Token) bool { return false })
	p.expect(closer)
}

// skipBalanced consumes tokens up to, but not including, the first token
// at nesting depth zero for which stop reports true, or the first
// unmatched closing bracket.
func (p *Parser) skipBalanced(stop func(lexer.Token) bool) {
	depth, angles := 0, 0
	for {
		t := p.tok()
		if t.Type == token.EOF {
			p.errorf("unexpected end of file")
		}
		if depth == 0 && angles == 0 && stop(t) {
			return
		}
		switch t.Type {
		case token.LPAREN, token.LBRACKET, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACKET, token.RBRACE:
			if depth == 0 {
				return
			}
			depth--
		case token.OPERATOR:
			if isOpenAngle(t) && !t.SpaceBefore && p.ix > 0 && p.toks[p.ix-1].Type == token.IDENT {
				angles++
			} else if n := closeAngles(t); n > 0 && angles > 0 {
				angles = max(angles-n, 0)
			}
		}
		p.next()
	}
}

// parsePatternUntil consumes a pattern ending before one of the stop
// tokens and returns its text.
func (p *Parser) parsePatternUntil(stops ...token.Token) string {
	start := p.ix
	p.skipBalanced(isStop(stops...))
	if p.ix == start {
		p.errorExpected("pattern")
	}
	return p.textFrom(start)
}

// parseBindingPattern parses the pattern of a let/var binding, with an
// optional type annotation. It returns the whole text, the bound name
// when the pattern is a single identifier, and the annotation as ": T".
func (p *Parser) parseBindingPattern() (text, name, typ string) {
	start := p.ix
	switch p.tok().Type {
	case token.IDENT, token.WILDCARD:
		name = p.next().Value
	case token.LPAREN:
		p.skipGroup()
	default:
		p.errorExpected("pattern")
	}
	if p.accept(token.COLON) {
		typ = ": " + p.parseType()
	}
	return p.textFrom(start), name, typ
}

// parseParams parses a parenthesized parameter list and returns the text
// of each parameter.
func (p *Parser) parseParams() []string {
	p.expect(token.LPAREN)
	saved := p.noTrailing
	p.noTrailing = false
	defer func() { p.noTrailing = saved }()

	params := []string{}
	for !p.at(token.RPAREN) {
		start := p.ix
		p.skipBalanced(func(t lexer.Token) bool { return t.Type == token.COMMA })
		if p.ix == start {
			p.errorExpected("parameter")
		}
		params = append(params, p.textFrom(start))
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return params
}
