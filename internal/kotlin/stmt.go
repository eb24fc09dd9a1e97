package kotlin

import (
	"strings"

	"github.com/kotlinize/kotlinize/internal/ast"
)

// Stmt renders a statement or declaration.
func (r *Renderer) Stmt(s ast.Stmt) string {
	switch s := s.(type) {
	case ast.Decl:
		return r.Decl(s)

	case *ast.ExprStmt:
		return r.Expr(s.X)

	case *ast.IfStmt:
		return r.ifStmt(s)
	case *ast.GuardStmt:
		return "guard " + r.conds(s.Conds) + " else " + r.block(s.Body)
	case *ast.WhileStmt:
		return "while (" + r.conds(s.Conds) + ") " + r.block(s.Body)
	case *ast.RepeatStmt:
		return "repeat " + r.block(s.Body) + " while " + r.Expr(s.Cond)
	case *ast.ForInStmt:
		return r.forIn(s)
	case *ast.SwitchStmt:
		return r.switchStmt(s)

	case *ast.DoStmt:
		parts := []string{"do " + r.block(s.Body)}
		for _, c := range s.Catches {
			parts = append(parts, r.catch(c))
		}
		return strings.Join(parts, " ")
	case *ast.DeferStmt:
		return "defer " + r.block(s.Body)
	case *ast.ThrowStmt:
		return "throw " + r.Expr(s.X)
	case *ast.ReturnStmt:
		if s.X == nil {
			return "return"
		}
		return "return " + r.Expr(s.X)
	case *ast.LabeledStmt:
		return s.Label + " = " + r.Stmt(s.Stmt)
	}
	return r.text(s)
}

// conds renders a condition list. Optional bindings become val or var
// declarations; availability checks are copied.
func (r *Renderer) conds(list []ast.Condition) string {
	parts := make([]string, len(list))
	for i, c := range list {
		switch c.Kind {
		case ast.CondCase:
			parts[i] = "case " + c.Pattern + " = " + r.Expr(c.X)
		case ast.CondLet:
			parts[i] = "val " + c.Pattern + " = " + r.Expr(c.X)
		case ast.CondVar:
			parts[i] = "var " + c.Pattern + " = " + r.Expr(c.X)
		default:
			parts[i] = r.Expr(c.X)
		}
	}
	return strings.Join(parts, ", ")
}

func (r *Renderer) ifStmt(s *ast.IfStmt) string {
	out := "if (" + r.conds(s.Conds) + ") " + r.block(s.Body)
	switch {
	case s.ElseIf != nil:
		out += " else " + r.ifStmt(s.ElseIf)
	case s.Else != nil:
		out += " else " + r.block(s.Else)
	}
	return out
}

func (r *Renderer) forIn(s *ast.ForInStmt) string {
	var sb strings.Builder
	sb.WriteString("for")
	if s.Case {
		sb.WriteString(" case")
	}
	sb.WriteString(" " + s.Pattern + " in " + r.Expr(s.X) + " ")
	if s.Where != nil {
		sb.WriteString("where " + r.Expr(s.Where) + " ")
	}
	sb.WriteString(r.block(s.Body))
	return sb.String()
}

func (r *Renderer) switchStmt(s *ast.SwitchStmt) string {
	if len(s.Cases) == 0 {
		return "switch " + r.Expr(s.X) + " {}"
	}
	cases := make([]string, len(s.Cases))
	for i, c := range s.Cases {
		cases[i] = r.caseClause(c)
	}
	return "switch " + r.Expr(s.X) + " {\n" + strings.Join(cases, "\n") + "\n}"
}

// caseClause renders a case label and its indented body. A case without
// statements is the label alone.
func (r *Renderer) caseClause(c *ast.CaseClause) string {
	label := "default:"
	if !c.Default {
		items := make([]string, len(c.Items))
		for i, item := range c.Items {
			items[i] = item.Pattern
			if item.Where != nil {
				items[i] += " where " + r.Expr(item.Where)
			}
		}
		label = "case " + strings.Join(items, ", ") + ":"
	}
	if len(c.Body) == 0 {
		return label
	}
	return label + "\n" + Indent(r.stmts(c.Body))
}

func (r *Renderer) catch(c *ast.CatchClause) string {
	var sb strings.Builder
	sb.WriteString("catch")
	if c.Pattern != "" {
		sb.WriteString(" " + c.Pattern)
	}
	if c.Where != nil {
		sb.WriteString(" where " + r.Expr(c.Where))
	}
	sb.WriteString(" " + r.block(c.Body))
	return sb.String()
}
