package kotlin

import (
	"strings"

	"github.com/kotlinize/kotlinize/internal/ast"
)

// Expr renders an expression.
func (r *Renderer) Expr(x ast.Expr) string {
	switch x := x.(type) {
	case nil:
		return ""

	case *ast.Ident:
		return x.Name + x.Generics
	case *ast.BasicLit:
		return x.Value
	case *ast.MagicLit:
		return x.Name
	case *ast.ArrayLit:
		return "listOf(" + r.exprList(x.Elems) + ")"
	case *ast.DictLit:
		return r.dict(x)

	case *ast.AssignExpr:
		return r.Expr(x.Left) + " = " + r.Expr(x.Right)
	case *ast.BinaryExpr:
		return r.Expr(x.Left) + " " + x.Op + " " + r.Expr(x.Right)
	case *ast.PrefixExpr:
		return x.Op + r.Expr(x.X)
	case *ast.PostfixExpr:
		return r.Expr(x.X) + x.Op
	case *ast.TernaryExpr:
		if r.opts.Rewrite {
			return "if (" + r.Expr(x.Cond) + ") " + r.Expr(x.Then) + " else " + r.Expr(x.Else)
		}
		return r.Expr(x.Cond) + " ? " + r.Expr(x.Then) + " : " + r.Expr(x.Else)

	case *ast.CastExpr:
		kind := x.Kind
		if r.opts.Rewrite && kind == ast.CastForced {
			kind = ast.CastPlain
		}
		return r.Expr(x.X) + " " + kind.String() + " " + x.Type
	case *ast.TryExpr:
		return r.try(x)
	case *ast.ForcedValueExpr:
		if r.opts.Rewrite {
			return r.Expr(x.X) + "!!"
		}
		return r.Expr(x.X) + "!"
	case *ast.OptionalChainExpr:
		return r.Expr(x.X) + "?"

	case *ast.CallExpr:
		return r.call(x)
	case *ast.ClosureExpr:
		return r.closure(x)
	case *ast.SubscriptExpr:
		return r.Expr(x.X) + "[" + r.args(x.Args) + "]"

	case *ast.MemberExpr:
		return r.member(x)
	case *ast.ImplicitMemberExpr:
		return "." + x.Name
	case *ast.PostfixSelfExpr:
		return r.Expr(x.X) + ".self"
	case *ast.InitializerExpr:
		return r.Expr(x.X) + ".init" + argNames(x.ArgNames)

	case *ast.ParenExpr:
		return "(" + r.Expr(x.X) + ")"
	case *ast.TupleExpr:
		elems := make([]string, len(x.Elems))
		for i, e := range x.Elems {
			elems[i] = r.Expr(e.X)
			if e.Label != "" {
				elems[i] = e.Label + ": " + elems[i]
			}
		}
		return "(" + strings.Join(elems, ", ") + ")"
	case *ast.WildcardExpr:
		return "_"

	case *ast.SelfExpr:
		if x.Kind == ast.SelfSubscript {
			return "this[" + r.args(x.Args) + "]"
		}
	case *ast.SuperExpr:
		if x.Kind == ast.SelfSubscript {
			return "super[" + r.args(x.Args) + "]"
		}
	case *ast.KeyPathExpr:
		return "#keyPath(" + r.Expr(x.X) + ")"
	case *ast.SelectorExpr:
		switch x.Kind {
		case ast.SelectorGetter:
			return "#selector(getter: " + r.Expr(x.X) + ")"
		case ast.SelectorSetter:
			return "#selector(setter: " + r.Expr(x.X) + ")"
		}
		return "#selector(" + r.Expr(x.X) + ")"
	}
	return r.text(x)
}

func (r *Renderer) exprList(list []ast.Expr) string {
	parts := make([]string, len(list))
	for i, x := range list {
		parts[i] = r.Expr(x)
	}
	return strings.Join(parts, ", ")
}

func (r *Renderer) dict(x *ast.DictLit) string {
	if len(x.Entries) == 0 {
		return "mapOf()"
	}
	entries := make([]string, len(x.Entries))
	for i, e := range x.Entries {
		if r.opts.Dictionaries == DictionaryBracketed {
			entries[i] = r.Expr(e.Key) + ": " + r.Expr(e.Value)
		} else {
			entries[i] = r.Expr(e.Key) + " to " + r.Expr(e.Value)
		}
	}
	if r.opts.Dictionaries == DictionaryBracketed {
		return "[" + strings.Join(entries, ", ") + "]"
	}
	return "mapOf(" + strings.Join(entries, ", ") + ")"
}

func (r *Renderer) try(x *ast.TryExpr) string {
	if !r.opts.Rewrite {
		return x.Kind.String() + " " + r.Expr(x.X)
	}
	if x.Kind == ast.TryOptional {
		return "runCatching { " + r.Expr(x.X) + " }.getOrNull()"
	}
	return r.Expr(x.X)
}

func (r *Renderer) call(x *ast.CallExpr) string {
	var sb strings.Builder
	sb.WriteString(r.Expr(x.Fun))
	if x.HasParen {
		sb.WriteString("(" + r.args(x.Args) + ")")
	}
	if x.Trailing != nil {
		sb.WriteString(" " + r.closure(x.Trailing))
	}
	return sb.String()
}

// args renders call or subscript arguments. Labels become Kotlin named
// arguments; an operator passed as a value keeps its Swift spelling.
func (r *Renderer) args(list []*ast.Arg) string {
	parts := make([]string, len(list))
	for i, a := range list {
		switch {
		case a.X == nil && a.Label != "":
			parts[i] = a.Label + ": " + a.Op
		case a.X == nil:
			parts[i] = a.Op
		case a.Label != "":
			parts[i] = a.Label + " = " + r.Expr(a.X)
		default:
			parts[i] = r.Expr(a.X)
		}
	}
	return strings.Join(parts, ", ")
}

// closure renders a closure literal. A lone statement without a signature
// stays on one line; anything else becomes an indented block.
func (r *Renderer) closure(x *ast.ClosureExpr) string {
	sig := ""
	if x.Signature != "" {
		sig = " " + x.Signature + " ->"
	}
	switch {
	case len(x.Stmts) == 0 && sig == "":
		return "{}"
	case len(x.Stmts) == 0:
		return "{" + sig + " }"
	case len(x.Stmts) == 1 && sig == "":
		return "{ " + r.Stmt(x.Stmts[0]) + " }"
	}
	return "{" + sig + "\n" + Indent(r.stmts(x.Stmts)) + "\n}"
}

func (r *Renderer) member(x *ast.MemberExpr) string {
	base := r.Expr(x.X) + "." + x.Name
	switch x.Kind {
	case ast.MemberGeneric:
		return base + x.Generics
	case ast.MemberArgument:
		return base + argNames(x.ArgNames)
	}
	return base
}

// argNames renders a compound-name label list: (a:b:), or "" when empty.
func argNames(names []string) string {
	if len(names) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for _, n := range names {
		sb.WriteString(n + ":")
	}
	sb.WriteByte(')')
	return sb.String()
}
