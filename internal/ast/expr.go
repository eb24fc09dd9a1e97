package ast

import "github.com/kotlinize/kotlinize/internal/token"

// -----------------------------------------------------------------------------
// Names and literals
// -----------------------------------------------------------------------------

// Ident is an identifier reference, optionally generic-qualified: Array<Int>.
type Ident struct {
	BaseExpr
	Name     string
	Generics string // "<Int>" or ""
}

// BasicLit is a scalar literal: integer, float, string, true, false or nil.
type BasicLit struct {
	BaseExpr
	Kind  token.Token // INT, FLOAT, STRING, TRUE, FALSE, NIL
	Value string      // Source spelling
}

// ArrayLit is an ordered-collection literal: [1, 2, 3].
type ArrayLit struct {
	BaseExpr
	Elems []Expr
}

// DictEntry is one key-value pair of a DictLit.
type DictEntry struct {
	Key   Expr
	Value Expr
}

// DictLit is a key-value collection literal: [k: v] or [:].
type DictLit struct {
	BaseExpr
	Entries []DictEntry
}

// MagicLit is a compiler directive literal such as #file, #line or
// #available(iOS 10, *).
type MagicLit struct {
	BaseExpr
	Name string // "#file"
}

// -----------------------------------------------------------------------------
// Operators
// -----------------------------------------------------------------------------

// AssignExpr is a plain assignment: a = b.
type AssignExpr struct {
	BaseExpr
	Left  Expr
	Right Expr
}

// BinaryExpr is an infix operator application. The operator is kept as
// spelled: Swift programs may declare their own.
type BinaryExpr struct {
	BaseExpr
	Left  Expr
	Op    string
	Right Expr
}

// PrefixExpr is a prefix operator application: -x, !flag, &inout.
type PrefixExpr struct {
	BaseExpr
	Op string
	X  Expr
}

// PostfixExpr is a postfix operator application: x...
type PostfixExpr struct {
	BaseExpr
	X  Expr
	Op string
}

// TernaryExpr is the conditional operator: cond ? then : else.
type TernaryExpr struct {
	BaseExpr
	Cond Expr
	Then Expr
	Else Expr
}

// CastKind distinguishes the type-casting operators.
type CastKind uint8

const (
	CastCheck       CastKind = iota // is
	CastPlain                       // as
	CastConditional                 // as?
	CastForced                      // as!
)

// String returns the operator spelling.
func (k CastKind) String() string {
	switch k {
	case CastCheck:
		return "is"
	case CastConditional:
		return "as?"
	case CastForced:
		return "as!"
	}
	return "as"
}

// CastExpr is a type check or cast: x is T, x as? T.
type CastExpr struct {
	BaseExpr
	X    Expr
	Kind CastKind
	Type string
}

// TryKind distinguishes try, try! and try?.
type TryKind uint8

const (
	TryPlain    TryKind = iota // try
	TryForced                  // try!
	TryOptional                // try?
)

// String returns the keyword spelling.
func (k TryKind) String() string {
	switch k {
	case TryForced:
		return "try!"
	case TryOptional:
		return "try?"
	}
	return "try"
}

// TryExpr is an error-propagating expression.
type TryExpr struct {
	BaseExpr
	Kind TryKind
	X    Expr
}

// ForcedValueExpr is a forced unwrap: x!.
type ForcedValueExpr struct {
	BaseExpr
	X Expr
}

// OptionalChainExpr is the optional-chaining postfix: x? in x?.y.
type OptionalChainExpr struct {
	BaseExpr
	X Expr
}

// -----------------------------------------------------------------------------
// Calls and closures
// -----------------------------------------------------------------------------

// Arg is one argument of a call or subscript. Exactly one of X and Op is set:
// Op holds an operator passed as a function value, as in sorted(by: <).
type Arg struct {
	Label string // "" for positional arguments
	X     Expr
	Op    string
}

// CallExpr is a function call. Args is nil when the call consists of a
// trailing closure only: f { ... }.
type CallExpr struct {
	BaseExpr
	Fun      Expr
	Args     []*Arg
	HasParen bool         // An argument clause, possibly empty, is present
	Trailing *ClosureExpr // nil if none
}

// ClosureExpr is a closure literal. Signature holds the source text of
// everything between "{" and "in" (captures, parameters, result), or ""
// when the closure has none.
type ClosureExpr struct {
	BaseExpr
	Signature string
	Stmts     []Stmt
}

// SubscriptExpr is a subscript access: x[i, j].
type SubscriptExpr struct {
	BaseExpr
	X    Expr
	Args []*Arg
}

// -----------------------------------------------------------------------------
// Member access
// -----------------------------------------------------------------------------

// MemberKind distinguishes the forms of an explicit member expression.
type MemberKind uint8

const (
	MemberNamed    MemberKind = iota // x.name
	MemberTuple                      // x.0
	MemberGeneric                    // x.name<T>
	MemberArgument                   // x.name(a:b:)
)

// MemberExpr is an explicit member access.
type MemberExpr struct {
	BaseExpr
	X        Expr
	Kind     MemberKind
	Name     string   // Member name, or the tuple index for MemberTuple
	Generics string   // "<T>" for MemberGeneric
	ArgNames []string // Argument labels for MemberArgument
}

// ImplicitMemberExpr is a member of a contextual type: .red.
type ImplicitMemberExpr struct {
	BaseExpr
	Name string
}

// PostfixSelfExpr is a metatype reference: Int.self.
type PostfixSelfExpr struct {
	BaseExpr
	X Expr
}

// InitializerExpr is an initializer reference: Foo.init or Foo.init(a:b:).
type InitializerExpr struct {
	BaseExpr
	X        Expr
	ArgNames []string
}

// -----------------------------------------------------------------------------
// Grouping
// -----------------------------------------------------------------------------

// ParenExpr is a parenthesized expression: (x).
type ParenExpr struct {
	BaseExpr
	X Expr
}

// TupleElem is one element of a TupleExpr.
type TupleElem struct {
	Label string
	X     Expr
}

// TupleExpr is a tuple: (), (a, b) or (x: 1, y: 2).
type TupleExpr struct {
	BaseExpr
	Elems []TupleElem
}

// WildcardExpr is the discard expression: _ = f().
type WildcardExpr struct {
	BaseExpr
}

// -----------------------------------------------------------------------------
// Special references
// -----------------------------------------------------------------------------

// SelfKind distinguishes the forms of self and super expressions.
type SelfKind uint8

const (
	SelfPlain       SelfKind = iota // self
	SelfMember                      // self.name
	SelfSubscript                   // self[i]
	SelfInitializer                 // self.init
)

// SelfExpr is a self expression.
type SelfExpr struct {
	BaseExpr
	Kind SelfKind
	Name string // Member name for SelfMember
	Args []*Arg // Subscript arguments for SelfSubscript
}

// SuperExpr is a superclass expression; Kind is never SelfPlain.
type SuperExpr struct {
	BaseExpr
	Kind SelfKind
	Name string
	Args []*Arg
}

// KeyPathExpr is a #keyPath(x) literal.
type KeyPathExpr struct {
	BaseExpr
	X Expr
}

// KeyPathLit is a key-path expression: \Type.path or \.path.
type KeyPathLit struct {
	BaseExpr
	Path string
}

// SelectorKind distinguishes #selector forms.
type SelectorKind uint8

const (
	SelectorMethod SelectorKind = iota // #selector(x)
	SelectorGetter                     // #selector(getter: x)
	SelectorSetter                     // #selector(setter: x)
)

// SelectorExpr is a #selector literal.
type SelectorExpr struct {
	BaseExpr
	Kind SelectorKind
	X    Expr
}
