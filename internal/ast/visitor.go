package ast

// Walk traverses an AST in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: Count all forced unwraps
//
//	count := 0
//	ast.Walk(file, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.ForcedValueExpr); ok {
//	        count++
//	    }
//	    return true // continue traversal
//	})
func Walk(node Node, fn WalkFunc) {
	if isNil(node) || !fn(node) {
		return
	}
	eachChild(node, func(child Node) {
		Walk(child, fn)
	})
}

// Inspect traverses an AST with parent tracking.
// For each node, it calls fn(node, parent). The parent is nil for the root node.
// If fn returns false, the children of that node are not visited.
func Inspect(node Node, fn InspectFunc) {
	inspect(node, nil, fn)
}

func inspect(node, parent Node, fn InspectFunc) {
	if isNil(node) || !fn(node, parent) {
		return
	}
	eachChild(node, func(child Node) {
		inspect(child, node, fn)
	})
}

// WalkFunc is called by Walk for each node; returning false prunes the
// node's children.
type WalkFunc func(Node) bool

// InspectFunc is called by Inspect with each node and its parent.
type InspectFunc func(node, parent Node) bool

// isNil reports whether n is nil or a typed nil pointer, which optional
// fields such as IfStmt.Else produce when stored in a Node.
func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Block:
		return n == nil
	case *IfStmt:
		return n == nil
	case *ClosureExpr:
		return n == nil
	case *AccessorClause:
		return n == nil
	case *CaseClause:
		return n == nil
	case *CatchClause:
		return n == nil
	}
	return false
}

// eachChild calls visit for every direct child of node, in source order.
func eachChild(node Node, visit func(Node)) {
	exprs := func(list []Expr) {
		for _, x := range list {
			visit(x)
		}
	}
	stmts := func(list []Stmt) {
		for _, s := range list {
			visit(s)
		}
	}
	decls := func(list []Decl) {
		for _, d := range list {
			visit(d)
		}
	}
	args := func(list []*Arg) {
		for _, a := range list {
			if a.X != nil {
				visit(a.X)
			}
		}
	}
	conds := func(list []Condition) {
		for _, c := range list {
			if c.X != nil {
				visit(c.X)
			}
		}
	}
	optional := func(x Expr) {
		if x != nil {
			visit(x)
		}
	}
	getterSetter := func(b *GetterSetterBlock) {
		if b != nil {
			visit(b.Getter)
			visit(b.Setter)
		}
	}

	switch n := node.(type) {
	case *File:
		stmts(n.Stmts)
	case *Block:
		stmts(n.Stmts)

	// Expressions
	case *Ident, *BasicLit, *MagicLit, *ImplicitMemberExpr, *WildcardExpr, *KeyPathLit:
		// no children
	case *ArrayLit:
		exprs(n.Elems)
	case *DictLit:
		for _, e := range n.Entries {
			visit(e.Key)
			visit(e.Value)
		}
	case *AssignExpr:
		visit(n.Left)
		visit(n.Right)
	case *BinaryExpr:
		visit(n.Left)
		visit(n.Right)
	case *PrefixExpr:
		visit(n.X)
	case *PostfixExpr:
		visit(n.X)
	case *TernaryExpr:
		visit(n.Cond)
		visit(n.Then)
		visit(n.Else)
	case *CastExpr:
		visit(n.X)
	case *TryExpr:
		visit(n.X)
	case *ForcedValueExpr:
		visit(n.X)
	case *OptionalChainExpr:
		visit(n.X)
	case *CallExpr:
		visit(n.Fun)
		args(n.Args)
		visit(n.Trailing)
	case *ClosureExpr:
		stmts(n.Stmts)
	case *SubscriptExpr:
		visit(n.X)
		args(n.Args)
	case *MemberExpr:
		visit(n.X)
	case *PostfixSelfExpr:
		visit(n.X)
	case *InitializerExpr:
		visit(n.X)
	case *ParenExpr:
		visit(n.X)
	case *TupleExpr:
		for _, e := range n.Elems {
			visit(e.X)
		}
	case *SelfExpr:
		args(n.Args)
	case *SuperExpr:
		args(n.Args)
	case *KeyPathExpr:
		visit(n.X)
	case *SelectorExpr:
		visit(n.X)

	// Statements
	case *ExprStmt:
		visit(n.X)
	case *IfStmt:
		conds(n.Conds)
		visit(n.Body)
		visit(n.Else)
		visit(n.ElseIf)
	case *GuardStmt:
		conds(n.Conds)
		visit(n.Body)
	case *WhileStmt:
		conds(n.Conds)
		visit(n.Body)
	case *RepeatStmt:
		visit(n.Body)
		visit(n.Cond)
	case *ForInStmt:
		visit(n.X)
		optional(n.Where)
		visit(n.Body)
	case *SwitchStmt:
		visit(n.X)
		for _, c := range n.Cases {
			visit(c)
		}
	case *CaseClause:
		for _, item := range n.Items {
			optional(item.Where)
		}
		stmts(n.Body)
	case *DoStmt:
		visit(n.Body)
		for _, c := range n.Catches {
			visit(c)
		}
	case *CatchClause:
		optional(n.Where)
		visit(n.Body)
	case *DeferStmt:
		visit(n.Body)
	case *ThrowStmt:
		visit(n.X)
	case *ReturnStmt:
		optional(n.X)
	case *LabeledStmt:
		visit(n.Stmt)
	case *BranchStmt:
		// no children

	// Declarations
	case *ClassDecl:
		decls(n.Members)
	case *StructDecl:
		decls(n.Members)
	case *EnumDecl:
		decls(n.Members)
	case *ProtocolDecl:
		decls(n.Members)
	case *ExtensionDecl:
		decls(n.Members)
	case *FuncDecl:
		visit(n.Body)
	case *InitDecl:
		visit(n.Body)
	case *DeinitDecl:
		visit(n.Body)
	case *LetDecl:
		for _, in := range n.Inits {
			optional(in.Init)
		}
	case *VarDecl:
		for _, in := range n.Inits {
			optional(in.Init)
		}
		optional(n.Init)
		visit(n.Block)
		getterSetter(n.Accessors)
		if n.Observers != nil {
			visit(n.Observers.WillSet)
			visit(n.Observers.DidSet)
		}
	case *AccessorClause:
		visit(n.Body)
	case *SubscriptDecl:
		visit(n.Block)
		getterSetter(n.Accessors)
	case *PrecedenceGroupDecl, *ImportDecl, *TypealiasDecl, *EnumCaseDecl,
		*AssociatedTypeDecl, *OperatorDecl:
		// no children
	}
}
