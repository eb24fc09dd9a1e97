package ast

import "github.com/kotlinize/kotlinize/internal/token"

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	BaseStmt
	X Expr
}

// CondKind distinguishes the members of a condition list.
type CondKind uint8

const (
	CondExpr         CondKind = iota // boolean expression
	CondCase                         // case pattern = expr
	CondLet                          // let pattern = expr
	CondVar                          // var pattern = expr
	CondAvailability                 // #available(...)
)

// Condition is one element of an if/guard/while condition list.
type Condition struct {
	Kind    CondKind
	Pattern string // Source text of the pattern for CondCase/CondLet/CondVar
	X       Expr   // Condition or initializer expression
}

// IfStmt is an if statement. At most one of Else and ElseIf is set.
type IfStmt struct {
	BaseStmt
	Conds  []Condition
	Body   *Block
	Else   *Block
	ElseIf *IfStmt
}

// GuardStmt is a guard statement: guard conds else { ... }.
type GuardStmt struct {
	BaseStmt
	Conds []Condition
	Body  *Block
}

// WhileStmt is a while loop.
type WhileStmt struct {
	BaseStmt
	Conds []Condition
	Body  *Block
}

// RepeatStmt is a repeat-while loop.
type RepeatStmt struct {
	BaseStmt
	Body *Block
	Cond Expr
}

// ForInStmt is a for-in loop: for [case] pattern in x [where cond] { ... }.
type ForInStmt struct {
	BaseStmt
	Case    bool
	Pattern string
	X       Expr
	Where   Expr // nil if absent
	Body    *Block
}

// CaseItem is one pattern of a switch case label.
type CaseItem struct {
	Pattern string
	Where   Expr // nil if absent
}

// CaseClause is a case or default section of a switch statement.
type CaseClause struct {
	BaseNode
	Default bool
	Items   []CaseItem // empty for default
	Body    []Stmt
}

// SwitchStmt is a switch statement.
type SwitchStmt struct {
	BaseStmt
	X     Expr
	Cases []*CaseClause
}

// CatchClause is one catch clause of a do statement.
type CatchClause struct {
	BaseNode
	Pattern string // "" if absent
	Where   Expr   // nil if absent
	Body    *Block
}

// DoStmt is a do statement with its catch clauses.
type DoStmt struct {
	BaseStmt
	Body    *Block
	Catches []*CatchClause
}

// DeferStmt is a defer statement.
type DeferStmt struct {
	BaseStmt
	Body *Block
}

// ThrowStmt is a throw statement.
type ThrowStmt struct {
	BaseStmt
	X Expr
}

// ReturnStmt is a return statement; X is nil for a bare return.
type ReturnStmt struct {
	BaseStmt
	X Expr
}

// LabeledStmt is a labeled loop, if, switch or do statement.
type LabeledStmt struct {
	BaseStmt
	Label string
	Stmt  Stmt
}

// BranchStmt is break, continue or fallthrough.
type BranchStmt struct {
	BaseStmt
	Tok   token.Token // BREAK, CONTINUE or FALLTHROUGH
	Label string      // "" if absent
}
