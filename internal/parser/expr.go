package parser

import (
	"strings"

	"github.com/kotlinize/kotlinize/internal/ast"
	"github.com/kotlinize/kotlinize/internal/lexer"
	"github.com/kotlinize/kotlinize/internal/token"
)

// Precedence levels of the standard operator groups, lowest first.
// Operators the table does not know bind at precDefault.
type precedence int

const (
	precLowest precedence = iota
	precAssignment
	precTernary
	precDefault
	precDisjunction
	precConjunction
	precComparison
	precNilCoalescing
	precCasting
	precRange
	precAddition
	precMultiplication
	precShift
)

var operatorPrec = map[string]precedence{
	"||": precDisjunction,
	"&&": precConjunction,

	"==": precComparison, "!=": precComparison, "===": precComparison, "!==": precComparison,
	"<": precComparison, "<=": precComparison, ">": precComparison, ">=": precComparison,
	"~=": precComparison,

	"??": precNilCoalescing,

	"...": precRange, "..<": precRange,

	"+": precAddition, "-": precAddition, "&+": precAddition, "&-": precAddition,
	"|": precAddition, "^": precAddition,

	"*": precMultiplication, "/": precMultiplication, "%": precMultiplication,
	"&*": precMultiplication, "&": precMultiplication,

	"<<": precShift, ">>": precShift, "&<<": precShift, "&>>": precShift,
}

// binaryPrec returns the precedence and associativity of an infix operator.
func binaryPrec(op string) (prec precedence, rightAssoc bool) {
	if p, ok := operatorPrec[op]; ok {
		return p, p == precNilCoalescing
	}
	if op == "=" || strings.HasSuffix(op, "=") {
		return precAssignment, true
	}
	return precDefault, false
}

// parseExpr parses an expression, including assignments.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinary(precAssignment)
}

// parseBinary parses a sequence of binary operators by precedence
// climbing. Only operators binding at least as tightly as min are consumed.
func (p *Parser) parseBinary(min precedence) ast.Expr {
	start := p.pos()
	x := p.parsePrefix()

	for {
		t := p.tok()
		switch {
		case t.Type == token.IS || t.Type == token.AS:
			if precCasting < min {
				return x
			}
			x = p.parseCast(start, x)

		case t.Type == token.QUESTION && t.SpaceBefore:
			if precTernary < min {
				return x
			}
			p.next()
			then := p.parseBinary(precTernary)
			p.expect(token.COLON)
			els := p.parseBinary(precTernary)
			x = &ast.TernaryExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), Cond: x, Then: then, Else: els}

		case (t.Type == token.OPERATOR || t.Type == token.ASSIGN) && p.isBinaryOp():
			prec, right := binaryPrec(t.Value)
			if prec < min {
				return x
			}
			p.next()
			next := prec + 1
			if right {
				next = prec
			}
			y := p.parseBinary(next)
			if t.Type == token.ASSIGN {
				x = &ast.AssignExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), Left: x, Right: y}
			} else {
				x = &ast.BinaryExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), Left: x, Op: t.Value, Right: y}
			}

		default:
			return x
		}
	}
}

// isBinaryOp reports whether the current operator token is used infix.
// Swift decides by whitespace: an infix operator has whitespace on both
// sides or on neither.
func (p *Parser) isBinaryOp() bool {
	t, after := p.tok(), p.lookahead(1)
	if t.NewlineBefore && !after.SpaceBefore {
		return false
	}
	return t.SpaceBefore == after.SpaceBefore
}

func (p *Parser) parseCast(start token.Position, x ast.Expr) ast.Expr {
	kind := ast.CastCheck
	if p.next().Type == token.AS {
		kind = ast.CastPlain
		t := p.tok()
		switch {
		case t.Type == token.QUESTION && !t.SpaceBefore:
			kind = ast.CastConditional
			p.next()
		case t.Type == token.BANG && !t.SpaceBefore:
			kind = ast.CastForced
			p.next()
		}
	}
	typ := p.parseType()
	return &ast.CastExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), X: x, Kind: kind, Type: typ}
}

// parsePrefix parses a prefix operator application, a try expression or a
// postfix expression.
func (p *Parser) parsePrefix() ast.Expr {
	start := p.pos()
	t := p.tok()
	switch {
	case t.Type == token.TRY:
		p.next()
		kind := ast.TryPlain
		if q := p.tok(); !q.SpaceBefore {
			switch q.Type {
			case token.QUESTION:
				kind = ast.TryOptional
				p.next()
			case token.BANG:
				kind = ast.TryForced
				p.next()
			}
		}
		x := p.parseBinary(precTernary)
		return &ast.TryExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), Kind: kind, X: x}

	case (t.Type == token.OPERATOR || t.Type == token.BANG) && !p.lookahead(1).SpaceBefore:
		p.next()
		x := p.parsePrefix()
		return &ast.PrefixExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), Op: t.Value, X: x}
	}
	return p.parsePostfix(start, p.parsePrimary())
}

// isCloser reports whether t ends the construct around an expression.
func isCloser(t lexer.Token) bool {
	switch t.Type {
	case token.RPAREN, token.RBRACKET, token.RBRACE, token.COMMA,
		token.SEMICOLON, token.COLON, token.EOF:
		return true
	}
	return false
}

func (p *Parser) parsePostfix(start token.Position, x ast.Expr) ast.Expr {
	for {
		t := p.tok()
		switch {
		case t.Type == token.DOT:
			x = p.parseMember(start, x)

		case t.Type == token.LPAREN && !t.NewlineBefore:
			args := p.parseArgs(token.LPAREN, token.RPAREN)
			x = &ast.CallExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), Fun: x, Args: args, HasParen: true}

		case t.Type == token.LBRACKET && !t.NewlineBefore:
			args := p.parseArgs(token.LBRACKET, token.RBRACKET)
			x = &ast.SubscriptExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), X: x, Args: args}

		case t.Type == token.QUESTION && !t.SpaceBefore:
			p.next()
			x = &ast.OptionalChainExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), X: x}

		case t.Type == token.BANG && !t.SpaceBefore:
			p.next()
			x = &ast.ForcedValueExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), X: x}

		case t.Type == token.OPERATOR && !t.SpaceBefore && (p.lookahead(1).SpaceBefore || isCloser(p.lookahead(1))):
			p.next()
			x = &ast.PostfixExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), X: x, Op: t.Value}

		case t.Type == token.LBRACE && p.trailingClosureAllowed(x):
			closure := p.parseClosure()
			if call, ok := x.(*ast.CallExpr); ok && call.Trailing == nil {
				call.Trailing = closure
				call.EndPos = p.end()
			} else {
				x = &ast.CallExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), Fun: x, Trailing: closure}
			}

		default:
			return x
		}
	}
}

// trailingClosureAllowed reports whether a "{" at the current token
// attaches to x as a trailing closure.
func (p *Parser) trailingClosureAllowed(x ast.Expr) bool {
	if p.noTrailing || p.tok().NewlineBefore || p.isObserverBlock() {
		return false
	}
	switch x := x.(type) {
	case *ast.Ident, *ast.MemberExpr, *ast.ImplicitMemberExpr, *ast.OptionalChainExpr:
		return true
	case *ast.CallExpr:
		return x.Trailing == nil
	case *ast.SelfExpr:
		return x.Kind == ast.SelfMember
	case *ast.SuperExpr:
		return x.Kind == ast.SelfMember
	}
	return false
}

// memberName returns the spelling of t if it can name a member. Swift
// allows most keywords after a dot.
func memberName(t lexer.Token) (string, bool) {
	if t.Type == token.IDENT || t.Type.IsKeyword() {
		return t.Value, true
	}
	return "", false
}

func (p *Parser) parseMember(start token.Position, x ast.Expr) ast.Expr {
	p.expect(token.DOT)
	t := p.tok()
	switch t.Type {
	case token.INT:
		p.next()
		return &ast.MemberExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), X: x, Kind: ast.MemberTuple, Name: t.Value}
	case token.INIT:
		p.next()
		names, n := p.argNamesAhead()
		p.skip(n)
		return &ast.InitializerExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), X: x, ArgNames: names}
	case token.SELF:
		p.next()
		return &ast.PostfixSelfExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), X: x}
	}

	name, ok := memberName(t)
	if !ok {
		p.errorExpected("member name")
	}
	p.next()
	m := &ast.MemberExpr{X: x, Kind: ast.MemberNamed, Name: name}
	if generics := p.tryGenericArgs(); generics != "" {
		m.Kind, m.Generics = ast.MemberGeneric, generics
	} else if names, n := p.argNamesAhead(); n > 0 {
		p.skip(n)
		m.Kind, m.ArgNames = ast.MemberArgument, names
	}
	m.BaseExpr = ast.MakeBaseExpr(start, p.end())
	return m
}

func (p *Parser) skip(n int) {
	for range n {
		p.next()
	}
}

// argNamesAhead recognises an argument-label list such as (a:b:) at the
// current token. It returns the labels and the number of tokens the list
// spans, or 0 if there is none.
func (p *Parser) argNamesAhead() ([]string, int) {
	if t := p.tok(); t.Type != token.LPAREN || t.SpaceBefore {
		return nil, 0
	}
	var names []string
	for i := 1; ; i += 2 {
		t := p.lookahead(i)
		if t.Type == token.RPAREN {
			if len(names) == 0 {
				return nil, 0
			}
			return names, i + 1
		}
		name, ok := memberName(t)
		if !ok || p.lookahead(i+1).Type != token.COLON {
			return nil, 0
		}
		names = append(names, name)
	}
}

// tryGenericArgs speculatively parses a generic argument list after a
// name. The list is accepted only if the token after it could not
// continue a comparison: f<Int>(x) is generic, a < b is not.
func (p *Parser) tryGenericArgs() string {
	if t := p.tok(); !isOpenAngle(t) || t.SpaceBefore {
		return ""
	}
	start := p.ix
	ok := p.speculate(func() {
		p.skipGenericArgs()
		if p.pendingClose > 0 || !genericFollower(p.tok()) {
			p.errorf("not a generic argument list")
		}
	})
	if !ok {
		return ""
	}
	return p.textFrom(start)
}

func genericFollower(t lexer.Token) bool {
	if t.NewlineBefore {
		return true
	}
	switch t.Type {
	case token.LPAREN, token.DOT, token.RPAREN, token.COMMA, token.RBRACKET,
		token.RBRACE, token.COLON, token.SEMICOLON, token.EOF:
		return true
	case token.QUESTION, token.BANG:
		return !t.SpaceBefore
	}
	return false
}

// parseArgs parses a call or subscript argument list between open and
// close.
func (p *Parser) parseArgs(open, close token.Token) []*ast.Arg {
	p.expect(open)
	saved := p.noTrailing
	p.noTrailing = false
	defer func() { p.noTrailing = saved }()

	args := []*ast.Arg{}
	for !p.at(close) {
		args = append(args, p.parseArg(close))
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(close)
	return args
}

func (p *Parser) parseArg(close token.Token) *ast.Arg {
	arg := &ast.Arg{}
	if name, ok := memberName(p.tok()); ok && p.lookahead(1).Type == token.COLON {
		arg.Label = name
		p.skip(2)
	}
	t, after := p.tok(), p.lookahead(1)
	if (t.Type == token.OPERATOR || t.Type == token.BANG) && (after.Type == token.COMMA || after.Type == close) {
		arg.Op = p.next().Value
		return arg
	}
	arg.X = p.parseExpr()
	return arg
}

// -----------------------------------------------------------------------------
// Primary expressions
// -----------------------------------------------------------------------------

func (p *Parser) parsePrimary() ast.Expr {
	start := p.pos()
	t := p.tok()

	switch t.Type {
	case token.IDENT:
		p.next()
		generics := p.tryGenericArgs()
		return &ast.Ident{BaseExpr: ast.MakeBaseExpr(start, p.end()), Name: t.Value, Generics: generics}

	case token.SELFTYPE:
		p.next()
		return &ast.Ident{BaseExpr: ast.MakeBaseExpr(start, p.end()), Name: t.Value}

	case token.INT, token.FLOAT, token.STRING, token.TRUE, token.FALSE, token.NIL:
		p.next()
		return &ast.BasicLit{BaseExpr: ast.MakeBaseExpr(start, p.end()), Kind: t.Type, Value: t.Value}

	case token.LBRACKET:
		return p.parseCollection()

	case token.LPAREN:
		return p.parseTuple()

	case token.LBRACE:
		return p.parseClosure()

	case token.DOT:
		p.next()
		name, ok := memberName(p.tok())
		if !ok || p.tok().SpaceBefore {
			p.errorExpected("member name")
		}
		p.next()
		return &ast.ImplicitMemberExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), Name: name}

	case token.SELF, token.SUPER:
		return p.parseSelf()

	case token.WILDCARD:
		p.next()
		return &ast.WildcardExpr{BaseExpr: ast.MakeBaseExpr(start, p.end())}

	case token.POUND:
		return p.parseDirective()

	case token.BACKSLASH:
		return p.parseKeyPath()
	}

	p.errorExpected("expression")
	return nil
}

func (p *Parser) parseCollection() ast.Expr {
	start := p.pos()
	p.expect(token.LBRACKET)
	saved := p.noTrailing
	p.noTrailing = false
	defer func() { p.noTrailing = saved }()

	if p.at(token.COLON) && p.lookahead(1).Type == token.RBRACKET {
		p.skip(2)
		return &ast.DictLit{BaseExpr: ast.MakeBaseExpr(start, p.end())}
	}
	if p.accept(token.RBRACKET) {
		return &ast.ArrayLit{BaseExpr: ast.MakeBaseExpr(start, p.end())}
	}

	first := p.parseExpr()
	if p.accept(token.COLON) {
		entries := []ast.DictEntry{{Key: first, Value: p.parseExpr()}}
		for p.accept(token.COMMA) && !p.at(token.RBRACKET) {
			key := p.parseExpr()
			p.expect(token.COLON)
			entries = append(entries, ast.DictEntry{Key: key, Value: p.parseExpr()})
		}
		p.expect(token.RBRACKET)
		return &ast.DictLit{BaseExpr: ast.MakeBaseExpr(start, p.end()), Entries: entries}
	}

	elems := []ast.Expr{first}
	for p.accept(token.COMMA) && !p.at(token.RBRACKET) {
		elems = append(elems, p.parseExpr())
	}
	p.expect(token.RBRACKET)
	return &ast.ArrayLit{BaseExpr: ast.MakeBaseExpr(start, p.end()), Elems: elems}
}

// parseTuple parses (), (x) or a tuple with optionally labeled elements.
func (p *Parser) parseTuple() ast.Expr {
	start := p.pos()
	p.expect(token.LPAREN)
	saved := p.noTrailing
	p.noTrailing = false
	defer func() { p.noTrailing = saved }()

	var elems []ast.TupleElem
	for !p.at(token.RPAREN) {
		var elem ast.TupleElem
		if name, ok := memberName(p.tok()); ok && p.lookahead(1).Type == token.COLON {
			elem.Label = name
			p.skip(2)
		}
		elem.X = p.parseExpr()
		elems = append(elems, elem)
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)

	if len(elems) == 1 && elems[0].Label == "" {
		return &ast.ParenExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), X: elems[0].X}
	}
	return &ast.TupleExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), Elems: elems}
}

// parseClosure parses a closure literal. The signature, if any, is
// recognised by scanning ahead for "in".
func (p *Parser) parseClosure() *ast.ClosureExpr {
	start := p.pos()
	p.expect(token.LBRACE)
	saved := p.noTrailing
	p.noTrailing = false
	defer func() { p.noTrailing = saved }()

	c := &ast.ClosureExpr{}
	if n := p.closureSignatureEnd(); n > 0 {
		from := p.ix
		p.skip(n)
		c.Signature = p.textRange(from, p.ix)
		p.expect(token.IN)
	}
	c.Stmts = p.parseStmtList(func() bool { return p.at(token.RBRACE) })
	p.expect(token.RBRACE)
	c.BaseExpr = ast.MakeBaseExpr(start, p.end())
	return c
}

// closureSignatureEnd returns the number of tokens before the "in" that
// ends a closure signature, or 0 if the closure has no signature.
func (p *Parser) closureSignatureEnd() int {
	depth := 0
	for i := 0; ; i++ {
		t := p.lookahead(i)
		switch t.Type {
		case token.IN:
			if depth == 0 {
				return i
			}
		case token.LPAREN, token.LBRACKET:
			depth++
		case token.RPAREN, token.RBRACKET:
			if depth == 0 {
				return 0
			}
			depth--
		case token.IDENT, token.WILDCARD, token.COMMA, token.COLON, token.ARROW,
			token.THROWS, token.RETHROWS, token.QUESTION, token.BANG, token.DOT,
			token.AT, token.INOUT, token.SELF, token.SELFTYPE, token.ASSIGN:
		case token.OPERATOR:
			switch t.Value {
			case "<", ">", ">>", "&", "...":
			default:
				return 0
			}
		default:
			return 0
		}
	}
}

func (p *Parser) parseSelf() ast.Expr {
	start := p.pos()
	kw := p.next()
	kind, name := ast.SelfPlain, ""
	var args []*ast.Arg

	switch t := p.tok(); {
	case t.Type == token.DOT && p.lookahead(1).Type == token.INIT:
		p.skip(2)
		kind = ast.SelfInitializer
	case t.Type == token.DOT:
		p.next()
		n, ok := memberName(p.tok())
		if !ok {
			p.errorExpected("member name")
		}
		p.next()
		kind, name = ast.SelfMember, n
	case t.Type == token.LBRACKET && !t.NewlineBefore:
		kind, args = ast.SelfSubscript, p.parseArgs(token.LBRACKET, token.RBRACKET)
	case kw.Type == token.SUPER:
		p.errorExpected("'.' or '[' after 'super'")
	}

	base := ast.MakeBaseExpr(start, p.end())
	if kw.Type == token.SUPER {
		return &ast.SuperExpr{BaseExpr: base, Kind: kind, Name: name, Args: args}
	}
	return &ast.SelfExpr{BaseExpr: base, Kind: kind, Name: name, Args: args}
}

// parseDirective parses #keyPath, #selector and other #-literals.
func (p *Parser) parseDirective() ast.Expr {
	start := p.pos()
	startIx := p.ix
	t := p.next()

	switch t.Value {
	case "#keyPath":
		p.expect(token.LPAREN)
		x := p.parseExpr()
		p.expect(token.RPAREN)
		return &ast.KeyPathExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), X: x}

	case "#selector":
		p.expect(token.LPAREN)
		kind := ast.SelectorMethod
		if p.lookahead(1).Type == token.COLON {
			switch {
			case p.atIdent("getter"):
				kind = ast.SelectorGetter
				p.skip(2)
			case p.atIdent("setter"):
				kind = ast.SelectorSetter
				p.skip(2)
			}
		}
		x := p.parseExpr()
		p.expect(token.RPAREN)
		return &ast.SelectorExpr{BaseExpr: ast.MakeBaseExpr(start, p.end()), Kind: kind, X: x}
	}

	if p.at(token.LPAREN) && !p.tok().SpaceBefore {
		p.skipGroup()
	}
	return &ast.MagicLit{BaseExpr: ast.MakeBaseExpr(start, p.end()), Name: p.textFrom(startIx)}
}

// parseKeyPath parses a key-path literal such as \Person.name or \.count.
// The path runs as long as its tokens are not separated by whitespace.
func (p *Parser) parseKeyPath() ast.Expr {
	start := p.pos()
	p.expect(token.BACKSLASH)
	from := p.ix
	for {
		t := p.tok()
		if t.SpaceBefore {
			break
		}
		switch t.Type {
		case token.IDENT, token.SELFTYPE, token.SELF, token.DOT, token.INT,
			token.QUESTION, token.BANG:
			p.next()
			continue
		case token.LBRACKET:
			p.skipGroup()
			continue
		case token.OPERATOR:
			if isOpenAngle(t) {
				p.skipGenericArgs()
				continue
			}
		}
		break
	}
	if p.ix == from {
		p.errorExpected("key path")
	}
	return &ast.KeyPathLit{BaseExpr: ast.MakeBaseExpr(start, p.end()), Path: p.textFrom(from)}
}
