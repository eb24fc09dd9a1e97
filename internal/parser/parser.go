package parser

import (
	"strings"

	"modernc.org/mathutil"

	"github.com/kotlinize/kotlinize/internal/ast"
	"github.com/kotlinize/kotlinize/internal/lexer"
	"github.com/kotlinize/kotlinize/internal/token"
)

// Parser holds the parser state for one source unit. The whole unit is
// tokenized up front so that ambiguous constructs (closure signatures,
// generic argument lists) can be resolved by looking ahead or backtracking.
type Parser struct {
	file   *ast.File
	toks   []lexer.Token // Token stream, always terminated by EOF
	ix     int           // Index of the current token
	maxIx  int           // Furthest token index examined
	errors ErrorList     // Accumulated errors

	// Parsing state
	noTrailing   bool // trailing closures are not allowed (if/while/... heads)
	pendingClose int  // '>' characters of a ">>" token not yet matched
}

// bailout is panicked to unwind the parser after the first error.
type bailout struct{}

// Parse parses a Swift source unit.
func Parse(filename string, src []byte) (*ast.File, error) {
	p := newParser(filename, src)
	f, err := p.run(p.parseFile)
	if err != nil {
		return nil, err
	}
	return f.(*ast.File), nil
}

// ParseExpr parses a single expression (useful for testing).
func ParseExpr(src string) (ast.Expr, error) {
	p := newParser("", []byte(src))
	x, err := p.run(func() ast.Node {
		x := p.parseExpr()
		if !p.at(token.EOF) {
			p.errorf("unexpected %s after expression", p.tokenDesc())
		}
		return x
	})
	if err != nil {
		return nil, err
	}
	return x.(ast.Expr), nil
}

func newParser(filename string, src []byte) *Parser {
	toks, lines := lexer.Tokenize(filename, src)
	return &Parser{
		file: &ast.File{Name: filename, Src: src, Lines: lines},
		toks: toks,
	}
}

// run invokes parse, converting a bailout into the accumulated error list.
func (p *Parser) run(parse func() ast.Node) (n ast.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			n, err = nil, p.errors.Err()
		}
	}()

	for _, t := range p.toks {
		if t.Type == token.ILLEGAL {
			e := errorf(t.Pos, "%s", t.Value)
			e.Incomplete = t.End == len(p.file.Src) && strings.HasPrefix(t.Value, "unterminated")
			p.error(e)
		}
	}
	return parse(), p.errors.Err()
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// tok returns the current token.
func (p *Parser) tok() lexer.Token {
	return p.toks[p.ix]
}

// peek returns the token n positions ahead of the current one.
func (p *Parser) peek(n int) lexer.Token {
	i := p.ix + n
	if i >= len(p.toks) {
		i = len(p.toks) - 1
	}
	p.maxIx = mathutil.Max(p.maxIx, i)
	return p.toks[i]
}

// lookahead is like peek but does not count as examining the token. It is
// used by the disambiguating scans, which may run far ahead of the parse.
func (p *Parser) lookahead(n int) lexer.Token {
	i := p.ix + n
	if i >= len(p.toks) {
		i = len(p.toks) - 1
	}
	return p.toks[i]
}

// next advances to the next token and returns the one just consumed.
func (p *Parser) next() lexer.Token {
	t := p.toks[p.ix]
	if p.ix < len(p.toks)-1 {
		p.ix++
		p.maxIx = mathutil.Max(p.maxIx, p.ix)
	}
	return t
}

// at reports whether the current token is of type t.
func (p *Parser) at(t token.Token) bool {
	return p.toks[p.ix].Type == t
}

// atIdent reports whether the current token is the contextual keyword name.
func (p *Parser) atIdent(name string) bool {
	t := p.toks[p.ix]
	return t.Type == token.IDENT && t.Value == name
}

// atOp reports whether the current token is the operator op.
func (p *Parser) atOp(op string) bool {
	t := p.toks[p.ix]
	return t.Type == token.OPERATOR && t.Value == op
}

// accept consumes the current token if it is of type t.
func (p *Parser) accept(t token.Token) bool {
	if p.at(t) {
		p.next()
		return true
	}
	return false
}

// expect checks that the current token is t and consumes it.
// If not, it reports an error.
func (p *Parser) expect(t token.Token) lexer.Token {
	if !p.at(t) {
		p.error(expectedError(p.tok().Pos, tokenName(t), p.tokenDesc()))
	}
	return p.next()
}

// expectIdent expects an identifier and returns its spelling.
func (p *Parser) expectIdent() string {
	return p.expect(token.IDENT).Value
}

// tokenDesc returns a description of the current token for error messages.
func (p *Parser) tokenDesc() string {
	t := p.tok()
	switch t.Type {
	case token.IDENT, token.INT, token.FLOAT, token.OPERATOR:
		return t.Value
	case token.STRING:
		return "string literal"
	case token.ILLEGAL:
		return t.Value
	case token.EOF:
		return "end of file"
	}
	return tokenName(t.Type)
}

func tokenName(t token.Token) string {
	if t == token.EOF {
		return "end of file"
	}
	return t.String()
}

// pos returns the position of the current token.
func (p *Parser) pos() token.Position {
	return p.tok().Pos
}

// end returns the position just after the last consumed token.
func (p *Parser) end() token.Position {
	if p.ix == 0 {
		return p.toks[0].Pos
	}
	return p.file.Lines.Position(p.toks[p.ix-1].End)
}

// textFrom returns the source text of the tokens from index start up to
// the current token.
func (p *Parser) textFrom(start int) string {
	if p.ix <= start {
		return ""
	}
	return string(p.file.Src[p.toks[start].Pos.Offset:p.toks[p.ix-1].End])
}

// textRange returns the source text of tokens [from, to).
func (p *Parser) textRange(from, to int) string {
	if to <= from {
		return ""
	}
	return string(p.file.Src[p.toks[from].Pos.Offset:p.toks[to-1].End])
}

// error records a parse error and abandons the parse.
func (p *Parser) error(err *ParseError) {
	if p.at(token.EOF) || p.maxIx >= len(p.toks)-1 {
		err.Incomplete = true
	}
	p.errors = append(p.errors, err)
	panic(bailout{})
}

// errorf records a formatted parse error at current position.
func (p *Parser) errorf(format string, args ...any) {
	p.error(errorf(p.pos(), format, args...))
}

// errorExpected reports that want was expected at the current token.
func (p *Parser) errorExpected(want string) {
	p.error(expectedError(p.pos(), want, p.tokenDesc()))
}

// speculate runs f and reports whether it parsed without error. On failure
// the parser is rewound to where it was before f ran.
func (p *Parser) speculate(f func()) (ok bool) {
	ix, nerr, pending, maxIx := p.ix, len(p.errors), p.pendingClose, p.maxIx
	defer func() {
		if r := recover(); r != nil {
			if _, isBailout := r.(bailout); !isBailout {
				panic(r)
			}
			p.ix, p.errors, p.pendingClose, p.maxIx = ix, p.errors[:nerr], pending, maxIx
			ok = false
		}
	}()
	f()
	return true
}

// -----------------------------------------------------------------------------
// Statement separation
// -----------------------------------------------------------------------------

// skipSemicolons skips empty statements.
func (p *Parser) skipSemicolons() {
	for p.at(token.SEMICOLON) {
		p.next()
	}
}

// endStmt checks that the statement just parsed is properly terminated.
func (p *Parser) endStmt() {
	t := p.tok()
	switch {
	case t.Type == token.SEMICOLON:
		p.next()
	case t.Type == token.RBRACE, t.Type == token.EOF, t.NewlineBefore:
	default:
		p.errorf("consecutive statements on a line must be separated by ';'")
	}
}

// atLineEnd reports whether the current token starts a new line or closes
// the enclosing construct.
func (p *Parser) atLineEnd() bool {
	t := p.tok()
	switch t.Type {
	case token.EOF, token.SEMICOLON, token.RBRACE:
		return true
	}
	return t.NewlineBefore
}

// -----------------------------------------------------------------------------
// Source unit
// -----------------------------------------------------------------------------

func (p *Parser) parseFile() ast.Node {
	f := p.file
	f.StartPos = p.pos()
	f.Stmts = p.parseStmtList(func() bool { return false })
	f.EndPos = p.file.Lines.Position(len(p.file.Src))
	return f
}

// parseStmtList parses statements until EOF or until stop reports true.
func (p *Parser) parseStmtList(stop func() bool) []ast.Stmt {
	var list []ast.Stmt
	for {
		p.skipSemicolons()
		if p.at(token.EOF) || stop() {
			return list
		}
		list = append(list, p.parseStmt())
		p.endStmt()
	}
}

// parseBlock parses a brace-delimited statement list.
func (p *Parser) parseBlock() *ast.Block {
	start := p.pos()
	p.expect(token.LBRACE)

	saved := p.noTrailing
	p.noTrailing = false
	stmts := p.parseStmtList(func() bool { return p.at(token.RBRACE) })
	p.noTrailing = saved

	p.expect(token.RBRACE)
	return &ast.Block{BaseNode: ast.MakeBaseNode(start, p.end()), Stmts: stmts}
}
