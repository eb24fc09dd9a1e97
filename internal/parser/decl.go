package parser

import (
	"github.com/kotlinize/kotlinize/internal/ast"
	"github.com/kotlinize/kotlinize/internal/lexer"
	"github.com/kotlinize/kotlinize/internal/token"
)

// isDeclKeyword reports whether t introduces a declaration.
func isDeclKeyword(t token.Token) bool {
	switch t {
	case token.IMPORT, token.CLASS, token.STRUCT, token.ENUM, token.PROTOCOL,
		token.EXTENSION, token.FUNC, token.INIT, token.DEINIT, token.LET, token.VAR,
		token.SUBSCRIPT, token.TYPEALIAS, token.ASSOCIATEDTYPE, token.PRECEDENCEGROUP,
		token.OPERATORKW:
		return true
	}
	return false
}

// isDeclStart reports whether a declaration starts at the current token.
// Modifiers are contextual keywords, so a run of them only counts when a
// declaration keyword follows.
func (p *Parser) isDeclStart() bool {
	if p.at(token.AT) {
		return true
	}
	for i := 0; ; i++ {
		t := p.lookahead(i)
		switch {
		case isDeclKeyword(t.Type):
			return true
		case t.Type == token.CASE:
			return i > 0
		case t.Type == token.IDENT && token.IsModifier(t.Value):
			// private(set), unowned(unsafe)
			if p.lookahead(i+1).Type == token.LPAREN && isModifierArg(p.lookahead(i+2).Value) &&
				p.lookahead(i+3).Type == token.RPAREN {
				i += 3
			}
		default:
			return false
		}
	}
}

func isModifierArg(name string) bool {
	switch name {
	case "set", "safe", "unsafe":
		return true
	}
	return false
}

// parseDecl parses a declaration with its attributes and modifiers.
func (p *Parser) parseDecl() ast.Decl {
	b := ast.BaseDecl{StartPos: p.pos()}
	b.Attributes = p.parseAttributes()
	b.Modifiers = p.parseModifiers()

	switch p.tok().Type {
	case token.IMPORT:
		return p.parseImport(b)
	case token.CLASS:
		p.next()
		d := &ast.ClassDecl{TypeHeader: p.parseTypeHeader()}
		d.Members = p.parseMembers()
		d.BaseDecl, d.EndPos = b, p.end()
		return d
	case token.STRUCT:
		p.next()
		d := &ast.StructDecl{TypeHeader: p.parseTypeHeader()}
		d.Members = p.parseMembers()
		d.BaseDecl, d.EndPos = b, p.end()
		return d
	case token.ENUM:
		p.next()
		d := &ast.EnumDecl{TypeHeader: p.parseTypeHeader()}
		d.Members = p.parseMembers()
		d.BaseDecl, d.EndPos = b, p.end()
		return d
	case token.PROTOCOL:
		return p.parseProtocol(b)
	case token.EXTENSION:
		return p.parseExtension(b)
	case token.FUNC:
		return p.parseFunc(b)
	case token.INIT:
		return p.parseInit(b)
	case token.DEINIT:
		p.next()
		d := &ast.DeinitDecl{Body: p.parseBlock()}
		d.BaseDecl, d.EndPos = b, p.end()
		return d
	case token.LET:
		p.next()
		d := &ast.LetDecl{Inits: p.parsePatternInits()}
		d.BaseDecl, d.EndPos = b, p.end()
		return d
	case token.VAR:
		return p.parseVar(b)
	case token.SUBSCRIPT:
		return p.parseSubscript(b)
	case token.TYPEALIAS:
		return p.parseTypealias(b)
	case token.ASSOCIATEDTYPE:
		return p.parseAssociatedType(b)
	case token.PRECEDENCEGROUP:
		return p.parsePrecedenceGroup(b)
	case token.OPERATORKW:
		return p.parseOperator(b)
	case token.CASE:
		return p.parseEnumCase(b)
	}
	p.errorExpected("declaration")
	return nil
}

// parseModifiers parses a possibly empty modifier list. "class" is a
// modifier when another declaration keyword follows it.
func (p *Parser) parseModifiers() []string {
	var mods []string
	for {
		t := p.tok()
		switch {
		case t.Type == token.IDENT && token.IsModifier(t.Value):
			start := p.ix
			p.next()
			if p.at(token.LPAREN) && !p.tok().SpaceBefore {
				p.skipGroup()
			}
			mods = append(mods, p.textFrom(start))
		case t.Type == token.CLASS && isClassModifierFollower(p.lookahead(1)):
			mods = append(mods, p.next().Value)
		default:
			return mods
		}
	}
}

func isClassModifierFollower(t lexer.Token) bool {
	switch t.Type {
	case token.FUNC, token.VAR, token.LET, token.SUBSCRIPT, token.TYPEALIAS:
		return true
	case token.IDENT:
		return token.IsModifier(t.Value)
	}
	return false
}

func (p *Parser) parseTypeHeader() ast.TypeHeader {
	var h ast.TypeHeader
	h.Name = p.expectIdent()
	h.Generics = p.parseGenericParams()
	h.Inherits = p.parseInheritance()
	h.Where = p.parseWhereClause()
	return h
}

// parseMembers parses the brace-delimited member list of a type,
// protocol or extension.
func (p *Parser) parseMembers() []ast.Decl {
	p.expect(token.LBRACE)
	saved := p.noTrailing
	p.noTrailing = false
	defer func() { p.noTrailing = saved }()

	var members []ast.Decl
	for {
		p.skipSemicolons()
		if p.at(token.RBRACE) {
			break
		}
		if !p.isDeclStart() && !p.at(token.CASE) {
			p.errorExpected("declaration")
		}
		members = append(members, p.parseDecl())
		p.endStmt()
	}
	p.expect(token.RBRACE)
	return members
}

func (p *Parser) parseProtocol(b ast.BaseDecl) ast.Decl {
	p.expect(token.PROTOCOL)
	d := &ast.ProtocolDecl{Name: p.expectIdent()}
	d.Inherits = p.parseInheritance()
	p.parseWhereClause()
	d.Members = p.parseMembers()
	d.BaseDecl, d.EndPos = b, p.end()
	return d
}

func (p *Parser) parseExtension(b ast.BaseDecl) ast.Decl {
	p.expect(token.EXTENSION)
	d := &ast.ExtensionDecl{Type: p.parseType()}
	d.Inherits = p.parseInheritance()
	d.Where = p.parseWhereClause()
	d.Members = p.parseMembers()
	d.BaseDecl, d.EndPos = b, p.end()
	return d
}

// -----------------------------------------------------------------------------
// Functions
// -----------------------------------------------------------------------------

func (p *Parser) parseFunc(b ast.BaseDecl) ast.Decl {
	p.expect(token.FUNC)
	d := &ast.FuncDecl{}
	switch t := p.tok(); t.Type {
	case token.IDENT:
		d.Name = p.next().Value
		d.Generics = p.parseGenericParams()
	case token.OPERATOR, token.BANG, token.QUESTION:
		d.Name = p.next().Value
	default:
		p.errorExpected("function name")
	}
	d.Params = p.parseParams()
	d.Throws = p.parseEffects()
	if p.accept(token.ARROW) {
		d.Result = &ast.Result{Attributes: p.parseAttributes(), Type: p.parseType()}
	}
	d.Where = p.parseWhereClause()
	if p.at(token.LBRACE) {
		d.Body = p.parseBlock()
	}
	d.BaseDecl, d.EndPos = b, p.end()
	return d
}

// parseEffects parses "async", "throws" and "rethrows" after a parameter
// list and returns the throwing keyword, if any.
func (p *Parser) parseEffects() string {
	if p.atIdent("async") {
		p.next()
	}
	if p.at(token.THROWS) || p.at(token.RETHROWS) {
		return p.next().Value
	}
	return ""
}

func (p *Parser) parseInit(b ast.BaseDecl) ast.Decl {
	p.expect(token.INIT)
	d := &ast.InitDecl{}
	if t := p.tok(); (t.Type == token.QUESTION || t.Type == token.BANG) && !t.SpaceBefore {
		d.Kind = p.next().Value
	}
	d.Generics = p.parseGenericParams()
	d.Params = p.parseParams()
	d.Throws = p.parseEffects()
	d.Where = p.parseWhereClause()
	if p.at(token.LBRACE) {
		d.Body = p.parseBlock()
	}
	d.BaseDecl, d.EndPos = b, p.end()
	return d
}

// -----------------------------------------------------------------------------
// Properties and subscripts
// -----------------------------------------------------------------------------

// parsePatternInits parses a binding list: a = 1, b: Int.
func (p *Parser) parsePatternInits() []ast.PatternInit {
	var inits []ast.PatternInit
	for {
		pattern, _, _ := p.parseBindingPattern()
		inits = append(inits, p.parseInitializer(pattern))
		if !p.accept(token.COMMA) {
			return inits
		}
	}
}

func (p *Parser) parseInitializer(pattern string) ast.PatternInit {
	pi := ast.PatternInit{Pattern: pattern}
	if p.accept(token.ASSIGN) {
		pi.Init = p.parseExpr()
	}
	return pi
}

func (p *Parser) parseVar(b ast.BaseDecl) ast.Decl {
	p.expect(token.VAR)
	d := &ast.VarDecl{}
	pattern, name, typ := p.parseBindingPattern()

	switch {
	case p.at(token.LBRACE) && name != "":
		d.Name, d.Type = name, typ
		switch p.accessorBlockKind() {
		case blockGetterSetter:
			d.Kind, d.Accessors = ast.VarGetterSetter, p.parseGetterSetter()
		case blockKeywords:
			d.Kind, d.Keywords = ast.VarKeywords, p.parseKeywordBlock()
		case blockObservers:
			d.Kind, d.Observers = ast.VarObservers, p.parseObserverBlock()
		default:
			d.Kind, d.Block = ast.VarCodeBlock, p.parseBlock()
		}

	default:
		first := p.parseInitializer(pattern)
		if name != "" && p.isObserverBlock() {
			d.Kind, d.Name, d.Type, d.Init = ast.VarObservers, name, typ, first.Init
			d.Observers = p.parseObserverBlock()
			break
		}
		d.Kind, d.Inits = ast.VarInitializers, []ast.PatternInit{first}
		if p.accept(token.COMMA) {
			d.Inits = append(d.Inits, p.parsePatternInits()...)
		}
	}
	d.BaseDecl, d.EndPos = b, p.end()
	return d
}

// accessorBlock classifies the "{ ... }" following a property or
// subscript head.
type accessorBlock int

const (
	blockCode accessorBlock = iota
	blockGetterSetter
	blockKeywords
	blockObservers
)

// accessorBlockKind classifies the block starting at the current "{" by
// looking at its first clause.
func (p *Parser) accessorBlockKind() accessorBlock {
	if !p.at(token.LBRACE) {
		return blockCode
	}
	i := 1
	// Skip attributes and a mutation modifier.
	for p.lookahead(i).Type == token.AT {
		i += 2
		if p.lookahead(i).Type == token.LPAREN {
			for depth := 0; ; i++ {
				t := p.lookahead(i).Type
				if t == token.LPAREN {
					depth++
				} else if t == token.RPAREN {
					if depth--; depth == 0 {
						i++
						break
					}
				} else if t == token.EOF {
					return blockCode
				}
			}
		}
	}
	if t := p.lookahead(i); t.Type == token.IDENT && (t.Value == "mutating" || t.Value == "nonmutating") {
		i++
	}

	t, after := p.lookahead(i), p.lookahead(i+1)
	if t.Type != token.IDENT {
		return blockCode
	}
	switch t.Value {
	case "willSet", "didSet":
		if after.Type == token.LBRACE || after.Type == token.LPAREN {
			return blockObservers
		}
	case "get", "set":
		switch {
		case after.Type == token.LBRACE:
			return blockGetterSetter
		case after.Type == token.LPAREN && t.Value == "set":
			return blockGetterSetter
		case after.Type == token.RBRACE, after.Type == token.AT,
			after.Type == token.IDENT && isAccessorKeyword(after.Value):
			return blockKeywords
		}
	}
	return blockCode
}

func isAccessorKeyword(name string) bool {
	switch name {
	case "get", "set", "mutating", "nonmutating":
		return true
	}
	return false
}

// isObserverBlock reports whether the current token opens a willSet/didSet
// block rather than a trailing closure.
func (p *Parser) isObserverBlock() bool {
	return p.accessorBlockKind() == blockObservers
}

// parseAccessor parses one get, set, willSet or didSet clause and returns
// its keyword.
func (p *Parser) parseAccessor() (string, *ast.AccessorClause) {
	start := p.pos()
	c := &ast.AccessorClause{Attributes: p.parseAttributes()}
	if p.atIdent("mutating") || p.atIdent("nonmutating") {
		c.Mutation = p.next().Value
	}
	if !p.at(token.IDENT) {
		p.errorExpected("accessor")
	}
	kw := p.tok().Value
	switch kw {
	case "get", "set", "willSet", "didSet":
	default:
		p.errorExpected("'get', 'set', 'willSet' or 'didSet'")
	}
	p.next()
	if p.at(token.LPAREN) {
		p.next()
		c.Name = p.expectIdent()
		p.expect(token.RPAREN)
	}
	c.Body = p.parseBlock()
	c.BaseNode = ast.MakeBaseNode(start, p.end())
	return kw, c
}

func (p *Parser) parseGetterSetter() *ast.GetterSetterBlock {
	start := p.pos()
	p.expect(token.LBRACE)
	gs := &ast.GetterSetterBlock{}
	for !p.at(token.RBRACE) {
		kw, c := p.parseAccessor()
		switch {
		case kw == "get" && gs.Getter == nil:
			gs.Getter = c
		case kw == "set" && gs.Setter == nil:
			gs.Setter = c
		default:
			p.error(errorf(c.Pos(), "unexpected %s clause", kw))
		}
	}
	p.expect(token.RBRACE)
	if gs.Getter == nil {
		p.error(errorf(start, "computed property must have a getter"))
	}
	return gs
}

func (p *Parser) parseKeywordBlock() *ast.KeywordBlock {
	p.expect(token.LBRACE)
	kb := &ast.KeywordBlock{}
	for !p.at(token.RBRACE) {
		start := p.ix
		p.parseAttributes()
		if p.atIdent("mutating") || p.atIdent("nonmutating") {
			p.next()
		}
		switch {
		case p.atIdent("get") && kb.Getter == "":
			p.next()
			kb.Getter = p.textFrom(start)
		case p.atIdent("set") && kb.Setter == "":
			p.next()
			kb.Setter = p.textFrom(start)
		default:
			p.errorExpected("'get' or 'set'")
		}
	}
	p.expect(token.RBRACE)
	return kb
}

func (p *Parser) parseObserverBlock() *ast.ObserverBlock {
	p.expect(token.LBRACE)
	ob := &ast.ObserverBlock{}
	for !p.at(token.RBRACE) {
		kw, c := p.parseAccessor()
		switch {
		case kw == "willSet" && ob.WillSet == nil:
			ob.WillSet = c
		case kw == "didSet" && ob.DidSet == nil:
			ob.DidSet = c
		default:
			p.error(errorf(c.Pos(), "unexpected %s clause", kw))
		}
	}
	p.expect(token.RBRACE)
	return ob
}

func (p *Parser) parseSubscript(b ast.BaseDecl) ast.Decl {
	p.expect(token.SUBSCRIPT)
	d := &ast.SubscriptDecl{}
	d.Generics = p.parseGenericParams()
	d.Params = p.parseParams()
	p.expect(token.ARROW)
	d.Result = ast.Result{Attributes: p.parseAttributes(), Type: p.parseType()}
	d.Where = p.parseWhereClause()

	switch p.accessorBlockKind() {
	case blockGetterSetter:
		d.Accessors = p.parseGetterSetter()
	case blockKeywords:
		d.Keywords = p.parseKeywordBlock()
	case blockObservers:
		p.errorf("subscripts cannot have observers")
	default:
		d.Block = p.parseBlock()
	}
	d.BaseDecl, d.EndPos = b, p.end()
	return d
}

// -----------------------------------------------------------------------------
// Other declarations
// -----------------------------------------------------------------------------

func (p *Parser) parseImport(b ast.BaseDecl) ast.Decl {
	p.expect(token.IMPORT)
	// import struct Module.Type
	switch p.tok().Type {
	case token.CLASS, token.STRUCT, token.ENUM, token.PROTOCOL, token.FUNC,
		token.VAR, token.LET, token.TYPEALIAS:
		p.next()
	}
	start := p.ix
	p.expectIdent()
	for p.at(token.DOT) {
		p.next()
		if t := p.tok(); t.Type == token.IDENT || t.Type == token.OPERATOR {
			p.next()
		} else {
			p.errorExpected("identifier")
		}
	}
	d := &ast.ImportDecl{Path: p.textFrom(start)}
	d.BaseDecl, d.EndPos = b, p.end()
	return d
}

func (p *Parser) parseTypealias(b ast.BaseDecl) ast.Decl {
	p.expect(token.TYPEALIAS)
	start := p.ix
	p.expectIdent()
	p.parseGenericParams()
	d := &ast.TypealiasDecl{Name: p.textFrom(start)}
	p.expect(token.ASSIGN)
	d.Type = p.parseType()
	d.BaseDecl, d.EndPos = b, p.end()
	return d
}

func (p *Parser) parseAssociatedType(b ast.BaseDecl) ast.Decl {
	p.expect(token.ASSOCIATEDTYPE)
	d := &ast.AssociatedTypeDecl{Name: p.expectIdent()}
	p.parseInheritance()
	if p.accept(token.ASSIGN) {
		p.parseType()
	}
	p.parseWhereClause()
	d.BaseDecl, d.EndPos = b, p.end()
	return d
}

func (p *Parser) parseOperator(b ast.BaseDecl) ast.Decl {
	p.expect(token.OPERATORKW)
	d := &ast.OperatorDecl{}
	for _, m := range b.Modifiers {
		switch m {
		case "prefix", "infix", "postfix":
			d.Fixity = m
		}
	}
	switch p.tok().Type {
	case token.OPERATOR, token.BANG, token.QUESTION, token.ASSIGN:
		d.Name = p.next().Value
	default:
		p.errorExpected("operator")
	}
	if p.accept(token.COLON) {
		p.expectIdent()
	}
	d.BaseDecl, d.EndPos = b, p.end()
	return d
}

// parsePrecedenceGroup parses a precedence group. Each attribute occupies
// one line and is kept as text.
func (p *Parser) parsePrecedenceGroup(b ast.BaseDecl) ast.Decl {
	p.expect(token.PRECEDENCEGROUP)
	d := &ast.PrecedenceGroupDecl{Name: p.expectIdent()}
	p.expect(token.LBRACE)
	for !p.at(token.RBRACE) {
		start := p.ix
		p.expectIdent()
		p.expect(token.COLON)
		for !p.atLineEnd() {
			p.next()
		}
		d.Entries = append(d.Entries, p.textFrom(start))
		p.skipSemicolons()
	}
	p.expect(token.RBRACE)
	d.BaseDecl, d.EndPos = b, p.end()
	return d
}

// parseEnumCase parses "case a, b(Int), c = 1". Each element is kept as
// text and ends at a comma or the end of the line.
func (p *Parser) parseEnumCase(b ast.BaseDecl) ast.Decl {
	p.expect(token.CASE)
	d := &ast.EnumCaseDecl{}
	for {
		start := p.ix
		p.skipBalanced(func(t lexer.Token) bool {
			return t.Type == token.COMMA || t.Type == token.SEMICOLON || (t.NewlineBefore && p.ix > start)
		})
		if p.ix == start {
			p.errorExpected("enum case")
		}
		d.Cases = append(d.Cases, p.textFrom(start))
		if !p.accept(token.COMMA) {
			break
		}
	}
	d.BaseDecl, d.EndPos = b, p.end()
	return d
}
