package ast

// -----------------------------------------------------------------------------
// Type declarations
// -----------------------------------------------------------------------------

// TypeHeader holds the clauses shared by nominal type declarations. Each
// clause is source text, "" when absent.
type TypeHeader struct {
	Name     string
	Generics string // "<T: Equatable>"
	Inherits string // ": Base, Proto"
	Where    string // "where T: Hashable"
}

// ClassDecl is a class declaration.
type ClassDecl struct {
	BaseDecl
	TypeHeader
	Members []Decl
}

// StructDecl is a struct declaration.
type StructDecl struct {
	BaseDecl
	TypeHeader
	Members []Decl
}

// EnumDecl is an enum declaration.
type EnumDecl struct {
	BaseDecl
	TypeHeader
	Members []Decl
}

// ProtocolDecl is a protocol declaration. Protocol members have no bodies:
// properties and subscripts carry a KeywordBlock, functions and
// initializers a nil Body.
type ProtocolDecl struct {
	BaseDecl
	Name     string
	Inherits string
	Members  []Decl
}

// ExtensionDecl is an extension of an existing type.
type ExtensionDecl struct {
	BaseDecl
	Type     string // Extended type as written
	Inherits string
	Where    string
	Members  []Decl
}

// -----------------------------------------------------------------------------
// Functions
// -----------------------------------------------------------------------------

// Result is a function or subscript result type.
type Result struct {
	Attributes []string
	Type       string
}

// FuncDecl is a function declaration. Name may be an operator.
type FuncDecl struct {
	BaseDecl
	Name     string
	Generics string
	Params   []string // Each parameter's source text
	Throws   string   // "throws", "rethrows" or ""
	Result   *Result  // nil if absent
	Where    string
	Body     *Block // nil for protocol requirements
}

// InitDecl is an initializer declaration.
type InitDecl struct {
	BaseDecl
	Kind     string // "", "?" or "!"
	Generics string
	Params   []string
	Throws   string
	Where    string
	Body     *Block // nil for protocol requirements
}

// DeinitDecl is a deinitializer declaration.
type DeinitDecl struct {
	BaseDecl
	Body *Block
}

// -----------------------------------------------------------------------------
// Properties
// -----------------------------------------------------------------------------

// PatternInit is one "pattern [= expr]" element of a binding list.
type PatternInit struct {
	Pattern string // Pattern text including any type annotation: "x: Int"
	Init    Expr   // nil if absent
}

// LetDecl is a constant declaration: let a = 1, b = 2.
type LetDecl struct {
	BaseDecl
	Inits []PatternInit
}

// AccessorClause is a get, set, willSet or didSet clause with a body.
type AccessorClause struct {
	BaseNode
	Attributes []string
	Mutation   string // "mutating", "nonmutating" or ""
	Name       string // Bound parameter name: set(newValue); "" if absent
	Body       *Block
}

// GetterSetterBlock is a computed-property accessor block with an
// explicit getter and optional setter.
type GetterSetterBlock struct {
	Getter *AccessorClause
	Setter *AccessorClause // nil if absent
}

// KeywordBlock is a requirement block: { get set }. Clauses are source
// text such as "get" or "mutating set".
type KeywordBlock struct {
	Getter string
	Setter string // "" if absent
}

// ObserverBlock is a property observer block; either clause may be absent.
type ObserverBlock struct {
	WillSet *AccessorClause
	DidSet  *AccessorClause
}

// VarKind distinguishes the bodies of a variable declaration.
type VarKind uint8

const (
	VarInitializers VarKind = iota // var a = 1, b: Int
	VarCodeBlock                   // var a: Int { return 1 }
	VarGetterSetter                // var a: Int { get { ... } set { ... } }
	VarKeywords                    // var a: Int { get set }
	VarObservers                   // var a: Int = 0 { willSet { ... } didSet { ... } }
)

// VarDecl is a variable declaration. Inits is used by VarInitializers;
// the other kinds bind a single Name with an optional Type annotation
// (": Int") and one of Block, Accessors, Keywords or Observers.
type VarDecl struct {
	BaseDecl
	Kind  VarKind
	Inits []PatternInit

	Name      string
	Type      string
	Init      Expr // VarObservers only; nil if absent
	Block     *Block
	Accessors *GetterSetterBlock
	Keywords  *KeywordBlock
	Observers *ObserverBlock
}

// SubscriptDecl is a subscript declaration. Exactly one of Block,
// Accessors and Keywords is set.
type SubscriptDecl struct {
	BaseDecl
	Generics  string
	Params    []string
	Result    Result
	Where     string
	Block     *Block
	Accessors *GetterSetterBlock
	Keywords  *KeywordBlock
}

// -----------------------------------------------------------------------------
// Other declarations
// -----------------------------------------------------------------------------

// PrecedenceGroupDecl is a precedence group declaration. Attributes holds
// one source line per attribute: "higherThan: AdditionPrecedence".
type PrecedenceGroupDecl struct {
	BaseDecl
	Name    string
	Entries []string
}

// ImportDecl is an import declaration.
type ImportDecl struct {
	BaseDecl
	Path string
}

// TypealiasDecl is a type alias declaration.
type TypealiasDecl struct {
	BaseDecl
	Name string
	Type string
}

// EnumCaseDecl is an enum case declaration: case a, b(Int), c = 3.
type EnumCaseDecl struct {
	BaseDecl
	Cases []string
}

// AssociatedTypeDecl is an associated type requirement of a protocol.
type AssociatedTypeDecl struct {
	BaseDecl
	Name string
}

// OperatorDecl is an operator declaration: infix operator <>: Precedence.
type OperatorDecl struct {
	BaseDecl
	Fixity string
	Name   string
}
