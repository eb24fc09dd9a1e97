// Package token defines lexical tokens for the Swift subset accepted by the parser.
package token

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota // <illegal>
	EOF                  // EOF

	// Literals and names
	literalStart
	IDENT  // identifier
	INT    // integer literal
	FLOAT  // float literal
	STRING // string literal
	literalEnd

	// Punctuation. Operators are a single OPERATOR kind carrying their
	// spelling, because Swift lets programs declare new ones.
	punctStart
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :
	DOT       // .
	AT        // @
	POUND     // #directive
	ARROW     // ->
	ASSIGN    // =
	QUESTION  // ? (postfix or ternary)
	BANG      // ! (postfix)
	OPERATOR  // operator
	BACKSLASH // \
	punctEnd

	// Keywords
	keywordStart
	AS              // as
	ASSOCIATEDTYPE  // associatedtype
	BREAK           // break
	CASE            // case
	CATCH           // catch
	CLASS           // class
	CONTINUE        // continue
	DEFAULT         // default
	DEFER           // defer
	DEINIT          // deinit
	DO              // do
	ELSE            // else
	ENUM            // enum
	EXTENSION       // extension
	FALLTHROUGH     // fallthrough
	FALSE           // false
	FOR             // for
	FUNC            // func
	GUARD           // guard
	IF              // if
	IMPORT          // import
	IN              // in
	INIT            // init
	INOUT           // inout
	IS              // is
	LET             // let
	NIL             // nil
	OPERATORKW      // operator
	PRECEDENCEGROUP // precedencegroup
	PROTOCOL        // protocol
	REPEAT          // repeat
	RETHROWS        // rethrows
	RETURN          // return
	SELF            // self
	SELFTYPE        // Self
	STRUCT          // struct
	SUBSCRIPT       // subscript
	SUPER           // super
	SWITCH          // switch
	THROW           // throw
	THROWS          // throws
	TRUE            // true
	TRY             // try
	TYPEALIAS       // typealias
	VAR             // var
	WHERE           // where
	WHILE           // while
	WILDCARD        // _
	keywordEnd
)

var names = [...]string{
	ILLEGAL: "<illegal>",
	EOF:     "EOF",
	IDENT:   "identifier",
	INT:     "integer literal",
	FLOAT:   "float literal",
	STRING:  "string literal",

	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LBRACKET:  "[",
	RBRACKET:  "]",
	COMMA:     ",",
	SEMICOLON: ";",
	COLON:     ":",
	DOT:       ".",
	AT:        "@",
	POUND:     "#directive",
	ARROW:     "->",
	ASSIGN:    "=",
	QUESTION:  "?",
	BANG:      "!",
	OPERATOR:  "operator",
	BACKSLASH: "\\",
}

// String returns the token's spelling or a short description of its kind.
func (t Token) String() string {
	if t.IsKeyword() {
		for name, kw := range keywords {
			if kw == t {
				return name
			}
		}
	}
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "<unknown>"
}

// IsLiteral returns true if the token is a name or literal.
func (t Token) IsLiteral() bool {
	return t > literalStart && t < literalEnd
}

// IsPunct returns true if the token is punctuation or an operator.
func (t Token) IsPunct() bool {
	return t > punctStart && t < punctEnd
}

// IsKeyword returns true if the token is a reserved keyword.
func (t Token) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// keywords maps reserved words to their token types. Contextual keywords
// (get, set, final, mutating, ...) stay identifiers and are recognised by
// the parser where they are meaningful.
var keywords = map[string]Token{
	"as":              AS,
	"associatedtype":  ASSOCIATEDTYPE,
	"break":           BREAK,
	"case":            CASE,
	"catch":           CATCH,
	"class":           CLASS,
	"continue":        CONTINUE,
	"default":         DEFAULT,
	"defer":           DEFER,
	"deinit":          DEINIT,
	"do":              DO,
	"else":            ELSE,
	"enum":            ENUM,
	"extension":       EXTENSION,
	"fallthrough":     FALLTHROUGH,
	"false":           FALSE,
	"for":             FOR,
	"func":            FUNC,
	"guard":           GUARD,
	"if":              IF,
	"import":          IMPORT,
	"in":              IN,
	"init":            INIT,
	"inout":           INOUT,
	"is":              IS,
	"let":             LET,
	"nil":             NIL,
	"operator":        OPERATORKW,
	"precedencegroup": PRECEDENCEGROUP,
	"protocol":        PROTOCOL,
	"repeat":          REPEAT,
	"rethrows":        RETHROWS,
	"return":          RETURN,
	"self":            SELF,
	"Self":            SELFTYPE,
	"struct":          STRUCT,
	"subscript":       SUBSCRIPT,
	"super":           SUPER,
	"switch":          SWITCH,
	"throw":           THROW,
	"throws":          THROWS,
	"true":            TRUE,
	"try":             TRY,
	"typealias":       TYPEALIAS,
	"var":             VAR,
	"where":           WHERE,
	"while":           WHILE,
	"_":               WILDCARD,
}

// LookupIdent returns the token type for a given identifier.
// Returns a keyword token if found, otherwise IDENT.
func LookupIdent(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// LookupKeyword returns the token type for a keyword, or ILLEGAL if not found.
func LookupKeyword(name string) Token {
	if tok, ok := keywords[name]; ok {
		return tok
	}
	return ILLEGAL
}

// modifiers are the contextual declaration modifiers accepted before a
// declaration keyword.
var modifiers = map[string]bool{
	"public":      true,
	"private":     true,
	"fileprivate": true,
	"internal":    true,
	"open":        true,
	"final":       true,
	"static":      true,
	"class":       true,
	"override":    true,
	"mutating":    true,
	"nonmutating": true,
	"lazy":        true,
	"weak":        true,
	"unowned":     true,
	"optional":    true,
	"required":    true,
	"convenience": true,
	"dynamic":     true,
	"indirect":    true,
	"prefix":      true,
	"postfix":     true,
	"infix":       true,
}

// IsModifier reports whether name is a declaration modifier.
func IsModifier(name string) bool {
	return modifiers[name]
}

// IsAccessLevel reports whether name is an access-level modifier.
func IsAccessLevel(name string) bool {
	switch name {
	case "public", "private", "fileprivate", "internal", "open":
		return true
	}
	return false
}
