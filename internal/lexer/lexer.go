// Package lexer provides Swift source tokenization.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/kotlinize/kotlinize/internal/token"
)

// Lexer tokenizes Swift source code.
type Lexer struct {
	src   []byte       // Source code
	off   int          // Current byte offset
	lines *token.Lines // Line table, filled as newlines are consumed

	hadSpace   bool        // Whitespace before the token being scanned
	hadNewline bool        // Newline before the token being scanned
	lastTok    token.Token // Previous token type
}

// New creates a new Lexer for the given source code.
func New(filename string, src []byte) *Lexer {
	return &Lexer{
		src:   src,
		lines: token.NewLines(filename, len(src)),
	}
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string) *Lexer {
	return New("", []byte(src))
}

// Token represents a scanned token with its position and spelling.
type Token struct {
	Type  token.Token
	Pos   token.Position
	End   int    // Byte offset just past the token
	Value string // Source spelling; message for ILLEGAL tokens

	SpaceBefore   bool // Whitespace (or comment) precedes the token
	NewlineBefore bool // A line break precedes the token
}

// Lines returns the line table built so far.
func (l *Lexer) Lines() *token.Lines {
	return l.lines
}

// Tokenize scans the whole source and returns every token, EOF included.
func Tokenize(filename string, src []byte) ([]Token, *token.Lines) {
	l := New(filename, src)
	var toks []Token
	for {
		tok := l.Scan()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks, l.lines
		}
	}
}

// Scan scans and returns the next token.
func (l *Lexer) Scan() Token {
	l.skipWhitespace()
	start := l.off
	tok := l.scan()
	tok.Pos = l.lines.Position(start)
	tok.End = l.off
	tok.SpaceBefore = l.hadSpace || start == 0
	tok.NewlineBefore = l.hadNewline || start == 0
	l.lastTok = tok.Type
	return tok
}

func (l *Lexer) scan() Token {
	if l.off >= len(l.src) {
		return Token{Type: token.EOF}
	}
	start := l.off
	ch := l.src[l.off]

	switch ch {
	case '(':
		l.off++
		return Token{Type: token.LPAREN, Value: "("}
	case ')':
		l.off++
		return Token{Type: token.RPAREN, Value: ")"}
	case '{':
		l.off++
		return Token{Type: token.LBRACE, Value: "{"}
	case '}':
		l.off++
		return Token{Type: token.RBRACE, Value: "}"}
	case '[':
		l.off++
		return Token{Type: token.LBRACKET, Value: "["}
	case ']':
		l.off++
		return Token{Type: token.RBRACKET, Value: "]"}
	case ',':
		l.off++
		return Token{Type: token.COMMA, Value: ","}
	case ';':
		l.off++
		return Token{Type: token.SEMICOLON, Value: ";"}
	case ':':
		l.off++
		return Token{Type: token.COLON, Value: ":"}
	case '@':
		l.off++
		return Token{Type: token.AT, Value: "@"}
	case '\\':
		l.off++
		return Token{Type: token.BACKSLASH, Value: "\\"}
	case '#':
		l.off++
		if l.off < len(l.src) && isIdentStart(l.peekRune()) {
			l.scanIdentRunes()
			return Token{Type: token.POUND, Value: string(l.src[start:l.off])}
		}
		return Token{Type: token.ILLEGAL, Value: "unexpected '#'"}
	case '`':
		return l.scanBackquoted()
	case '"':
		return l.scanString()
	case '.':
		if l.at(1) != '.' {
			l.off++
			return Token{Type: token.DOT, Value: "."}
		}
		// Dot operators (..., ..<) may contain further dots.
		for l.off < len(l.src) && (l.src[l.off] == '.' || isOperatorChar(l.src[l.off])) {
			l.off++
		}
		return Token{Type: token.OPERATOR, Value: string(l.src[start:l.off])}
	}

	if isDigit(ch) {
		return l.scanNumber()
	}
	if ch == '$' || isIdentStart(l.peekRune()) {
		_, size := utf8.DecodeRune(l.src[l.off:])
		l.off += size
		l.scanIdentRunes()
		name := string(l.src[start:l.off])
		if ch == '$' {
			return Token{Type: token.IDENT, Value: name}
		}
		return Token{Type: token.LookupIdent(name), Value: name}
	}
	if isOperatorChar(ch) {
		return l.scanOperator()
	}

	_, size := utf8.DecodeRune(l.src[l.off:])
	l.off += size
	return Token{Type: token.ILLEGAL, Value: "unexpected character " + string(l.src[start:l.off])}
}

func (l *Lexer) scanOperator() Token {
	start := l.off
	for l.off < len(l.src) && isOperatorChar(l.src[l.off]) {
		// "?" directly after an operand is optional chaining or an
		// optional type suffix, never the start of a longer operator.
		if l.off > start && l.src[start] == '?' && !l.hadSpace && l.endsOperand() {
			break
		}
		l.off++
	}
	value := string(l.src[start:l.off])
	switch value {
	case "=":
		return Token{Type: token.ASSIGN, Value: value}
	case "->":
		return Token{Type: token.ARROW, Value: value}
	case "?":
		return Token{Type: token.QUESTION, Value: value}
	case "!":
		return Token{Type: token.BANG, Value: value}
	}
	return Token{Type: token.OPERATOR, Value: value}
}

// endsOperand reports whether the previous token can end an expression,
// which makes a following "?" or "!" a postfix operator.
func (l *Lexer) endsOperand() bool {
	switch l.lastTok {
	case token.IDENT, token.INT, token.FLOAT, token.STRING,
		token.RPAREN, token.RBRACKET, token.RBRACE,
		token.SELF, token.SELFTYPE, token.SUPER, token.INIT,
		token.TRUE, token.FALSE, token.NIL, token.QUESTION, token.BANG,
		token.AS, token.TRY:
		return true
	}
	return false
}

func (l *Lexer) scanBackquoted() Token {
	start := l.off
	l.off++ // opening `
	for l.off < len(l.src) && l.src[l.off] != '`' && l.src[l.off] != '\n' {
		l.off++
	}
	if l.off >= len(l.src) || l.src[l.off] != '`' {
		return Token{Type: token.ILLEGAL, Value: "unterminated backquoted identifier"}
	}
	l.off++
	return Token{Type: token.IDENT, Value: string(l.src[start:l.off])}
}

// scanString scans a string literal. The token keeps its full source
// spelling, quotes and escapes included.
func (l *Lexer) scanString() Token {
	start := l.off
	if l.at(1) == '"' && l.at(2) == '"' {
		l.off += 3
		if !l.skipStringBody(true) {
			return Token{Type: token.ILLEGAL, Value: "unterminated multi-line string"}
		}
		return Token{Type: token.STRING, Value: string(l.src[start:l.off])}
	}
	l.off++
	if !l.skipStringBody(false) {
		return Token{Type: token.ILLEGAL, Value: "unterminated string"}
	}
	return Token{Type: token.STRING, Value: string(l.src[start:l.off])}
}

// skipStringBody advances past the closing quote(s). It returns false if the
// literal is unterminated.
func (l *Lexer) skipStringBody(multiline bool) bool {
	for l.off < len(l.src) {
		ch := l.src[l.off]
		switch {
		case ch == '\\':
			l.off++
			if l.off < len(l.src) && l.src[l.off] == '(' {
				l.off++
				if !l.skipInterpolation() {
					return false
				}
				continue
			}
			if l.off < len(l.src) {
				l.newline(l.src[l.off])
				l.off++
			}
		case ch == '"':
			if !multiline {
				l.off++
				return true
			}
			if l.at(1) == '"' && l.at(2) == '"' {
				l.off += 3
				return true
			}
			l.off++
		case ch == '\n':
			if !multiline {
				return false
			}
			l.newline(ch)
			l.off++
		default:
			l.off++
		}
	}
	return false
}

// skipInterpolation skips a \( ... ) segment, including nested parentheses
// and nested string literals.
func (l *Lexer) skipInterpolation() bool {
	depth := 1
	for l.off < len(l.src) {
		ch := l.src[l.off]
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				l.off++
				return true
			}
		case '"':
			l.off++
			if !l.skipStringBody(false) {
				return false
			}
			continue
		case '\n':
			l.newline(ch)
		}
		l.off++
	}
	return false
}

func (l *Lexer) scanNumber() Token {
	start := l.off
	if l.src[l.off] == '0' && (l.at(1) == 'x' || l.at(1) == 'o' || l.at(1) == 'b') {
		base := l.at(1)
		l.off += 2
		for l.off < len(l.src) && (isHexDigit(l.src[l.off]) || l.src[l.off] == '_') {
			l.off++
		}
		isFloat := false
		if base == 'x' {
			if l.at(0) == '.' && isHexDigit(l.at(1)) && l.lastTok != token.DOT {
				isFloat = true
				l.off++
				for l.off < len(l.src) && (isHexDigit(l.src[l.off]) || l.src[l.off] == '_') {
					l.off++
				}
			}
			if l.at(0) == 'p' || l.at(0) == 'P' {
				isFloat = true
				l.scanExponent()
			}
		}
		if isFloat {
			return Token{Type: token.FLOAT, Value: string(l.src[start:l.off])}
		}
		return Token{Type: token.INT, Value: string(l.src[start:l.off])}
	}

	for l.off < len(l.src) && (isDigit(l.src[l.off]) || l.src[l.off] == '_') {
		l.off++
	}
	isFloat := false
	// A tuple index such as t.0.1 never has a fraction.
	if l.at(0) == '.' && isDigit(l.at(1)) && l.lastTok != token.DOT {
		isFloat = true
		l.off++
		for l.off < len(l.src) && (isDigit(l.src[l.off]) || l.src[l.off] == '_') {
			l.off++
		}
	}
	if (l.at(0) == 'e' || l.at(0) == 'E') && l.hasValidExponent() {
		isFloat = true
		l.scanExponent()
	}
	if isFloat {
		return Token{Type: token.FLOAT, Value: string(l.src[start:l.off])}
	}
	return Token{Type: token.INT, Value: string(l.src[start:l.off])}
}

func (l *Lexer) scanExponent() {
	l.off++ // e, E, p or P
	if l.at(0) == '+' || l.at(0) == '-' {
		l.off++
	}
	for l.off < len(l.src) && isDigit(l.src[l.off]) {
		l.off++
	}
}

// hasValidExponent checks if the current e/E is followed by a valid exponent.
func (l *Lexer) hasValidExponent() bool {
	ch := l.at(1)
	if isDigit(ch) {
		return true
	}
	return (ch == '+' || ch == '-') && isDigit(l.at(2))
}

func (l *Lexer) scanIdentRunes() {
	for l.off < len(l.src) && isIdentContinue(l.peekRune()) {
		_, size := utf8.DecodeRune(l.src[l.off:])
		l.off += size
	}
}

func (l *Lexer) skipWhitespace() {
	l.hadSpace = false
	l.hadNewline = false
	for l.off < len(l.src) {
		ch := l.src[l.off]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\f' || ch == '\v':
			l.off++
		case ch == '\n':
			l.newline(ch)
			l.hadNewline = true
			l.off++
		case ch == '/' && l.at(1) == '/':
			for l.off < len(l.src) && l.src[l.off] != '\n' {
				l.off++
			}
		case ch == '/' && l.at(1) == '*':
			l.skipBlockComment()
		default:
			return
		}
		l.hadSpace = true
	}
}

// skipBlockComment skips a /* */ comment; Swift block comments nest.
func (l *Lexer) skipBlockComment() {
	depth := 0
	for l.off < len(l.src) {
		switch {
		case l.src[l.off] == '/' && l.at(1) == '*':
			depth++
			l.off += 2
		case l.src[l.off] == '*' && l.at(1) == '/':
			depth--
			l.off += 2
			if depth == 0 {
				return
			}
		default:
			if l.src[l.off] == '\n' {
				l.newline('\n')
				l.hadNewline = true
			}
			l.off++
		}
	}
}

// newline records a line start if ch, found at the current offset, is '\n'.
func (l *Lexer) newline(ch byte) {
	if ch == '\n' {
		l.lines.AddLine(l.off + 1)
	}
}

// at returns the byte n positions ahead, or 0 past the end.
func (l *Lexer) at(n int) byte {
	if l.off+n < len(l.src) {
		return l.src[l.off+n]
	}
	return 0
}

func (l *Lexer) peekRune() rune {
	if l.off >= len(l.src) {
		return 0
	}
	if l.src[l.off] < utf8.RuneSelf {
		return rune(l.src[l.off])
	}
	r, _ := utf8.DecodeRune(l.src[l.off:])
	return r
}

// Helper functions

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentStart(r rune) bool {
	if r < utf8.RuneSelf {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
	}
	return unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentStart(r) || isDigit(byte(r))
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func isOperatorChar(ch byte) bool {
	switch ch {
	case '/', '=', '-', '+', '!', '*', '%', '<', '>', '&', '|', '^', '~', '?':
		return true
	}
	return false
}
