// Package ast defines the syntax tree for the Swift subset understood by
// the parser.
//
// The tree is a closed set of node kinds:
//
//	Node (interface)
//	├── Expr (interface) - value-producing constructs
//	│   ├── Ident, BasicLit, ArrayLit, DictLit, MagicLit - names and literals
//	│   ├── AssignExpr, BinaryExpr, PrefixExpr, PostfixExpr, TernaryExpr - operators
//	│   ├── CallExpr, ClosureExpr, SubscriptExpr - calls
//	│   ├── MemberExpr, ImplicitMemberExpr, PostfixSelfExpr, InitializerExpr - member access
//	│   ├── CastExpr, TryExpr, ForcedValueExpr, OptionalChainExpr - casts and optionals
//	│   ├── ParenExpr, TupleExpr, WildcardExpr - grouping
//	│   └── SelfExpr, SuperExpr, KeyPathExpr, KeyPathLit, SelectorExpr - special
//	├── Stmt (interface) - block-level constructs
//	│   ├── ExprStmt, IfStmt, GuardStmt, WhileStmt, RepeatStmt, ForInStmt
//	│   ├── SwitchStmt, DoStmt, DeferStmt, ThrowStmt, ReturnStmt, LabeledStmt
//	│   └── BranchStmt (break, continue, fallthrough)
//	└── Decl (interface, also a Stmt) - declarations
//	    ├── ClassDecl, StructDecl, EnumDecl, ProtocolDecl, ExtensionDecl
//	    ├── FuncDecl, InitDecl, DeinitDecl, SubscriptDecl
//	    ├── LetDecl, VarDecl, PrecedenceGroupDecl
//	    └── ImportDecl, TypealiasDecl, EnumCaseDecl, AssociatedTypeDecl, OperatorDecl
//
// Types, patterns, generic clauses, parameter lists and closure signatures
// are kept as their source text: the renderer copies them unchanged.
package ast

import "github.com/kotlinize/kotlinize/internal/token"

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Pos returns the position of the first character belonging to this node.
	Pos() token.Position

	// End returns the position of the first character immediately after this node.
	End() token.Position
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// Decl is the interface for declarations. Declarations may appear
// wherever a statement may, so every Decl is also a Stmt.
type Decl interface {
	Stmt
	declNode() // marker method to prevent external implementations
}

// BaseNode provides positions for nodes that are neither expressions nor
// statements (blocks, clauses).
type BaseNode struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position after last token
}

func (b *BaseNode) Pos() token.Position { return b.StartPos }
func (b *BaseNode) End() token.Position { return b.EndPos }

// BaseExpr provides common fields for all expression nodes.
type BaseExpr struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position after last token
}

func (b *BaseExpr) Pos() token.Position { return b.StartPos }
func (b *BaseExpr) End() token.Position { return b.EndPos }
func (b *BaseExpr) exprNode()           {}

// BaseStmt provides common fields for all statement nodes.
type BaseStmt struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position after last token
}

func (b *BaseStmt) Pos() token.Position { return b.StartPos }
func (b *BaseStmt) End() token.Position { return b.EndPos }
func (b *BaseStmt) stmtNode()           {}

// BaseDecl provides common fields for declaration nodes.
type BaseDecl struct {
	StartPos token.Position
	EndPos   token.Position

	Attributes []string // "@objc", "@available(iOS 10, *)", in source order
	Modifiers  []string // access level, final, static, ... in source order
}

func (b *BaseDecl) Pos() token.Position { return b.StartPos }
func (b *BaseDecl) End() token.Position { return b.EndPos }
func (b *BaseDecl) stmtNode()           {}
func (b *BaseDecl) declNode()           {}

// HasModifier reports whether the declaration carries the named modifier.
func (b *BaseDecl) HasModifier(name string) bool {
	for _, m := range b.Modifiers {
		if m == name {
			return true
		}
	}
	return false
}

// AccessLevel returns the declaration's access-level modifier, or "".
func (b *BaseDecl) AccessLevel() string {
	for _, m := range b.Modifiers {
		if token.IsAccessLevel(m) {
			return m
		}
	}
	return ""
}

// Block is a brace-delimited, possibly empty statement list.
type Block struct {
	BaseNode
	Stmts []Stmt
}

// File is a parsed source unit: the top-level statement list plus the
// source it was parsed from.
type File struct {
	BaseNode
	Name  string
	Src   []byte
	Lines *token.Lines
	Stmts []Stmt
}

// Text returns the source text covered by n. Nodes without a valid
// extent yield "".
func (f *File) Text(n Node) string {
	if n == nil {
		return ""
	}
	start, end := n.Pos().Offset, n.End().Offset
	if !n.Pos().IsValid() || start < 0 || end > len(f.Src) || start > end {
		return ""
	}
	return string(f.Src[start:end])
}

// -----------------------------------------------------------------------------
// Constructor helpers
// -----------------------------------------------------------------------------

// MakeBaseNode creates a BaseNode with the given positions.
func MakeBaseNode(start, end token.Position) BaseNode {
	return BaseNode{StartPos: start, EndPos: end}
}

// MakeBaseExpr creates a BaseExpr with the given positions.
func MakeBaseExpr(start, end token.Position) BaseExpr {
	return BaseExpr{StartPos: start, EndPos: end}
}

// MakeBaseStmt creates a BaseStmt with the given positions.
func MakeBaseStmt(start, end token.Position) BaseStmt {
	return BaseStmt{StartPos: start, EndPos: end}
}
