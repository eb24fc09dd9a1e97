package kotlin

import (
	"strings"

	"github.com/kotlinize/kotlinize/internal/ast"
)

// Decl renders a declaration. Classes and functions start with a newline,
// which leaves a blank line before them in a member or statement list.
func (r *Renderer) Decl(d ast.Decl) string {
	switch d := d.(type) {
	case *ast.ClassDecl:
		head := prefix(d.Attributes) + access(&d.BaseDecl)
		if d.HasModifier("final") {
			head += "final "
		}
		return "\n" + head + "class " + r.typeHeader(d.TypeHeader) + r.members(d.Members)
	case *ast.StructDecl:
		head := prefix(d.Attributes) + access(&d.BaseDecl)
		return head + "data class " + r.typeHeader(d.TypeHeader) + r.members(d.Members)
	case *ast.EnumDecl:
		head := prefix(d.Attributes) + access(&d.BaseDecl)
		if d.HasModifier("indirect") {
			head += "indirect "
		}
		return head + "enum " + r.typeHeader(d.TypeHeader) + r.members(d.Members)
	case *ast.ProtocolDecl:
		head := prefix(d.Attributes) + access(&d.BaseDecl)
		return head + "interface " + d.Name + d.Inherits + r.protocolMembers(d.Members)
	case *ast.ExtensionDecl:
		return r.extension(d)

	case *ast.FuncDecl:
		return "\n" + r.funcDecl(d, "")
	case *ast.InitDecl:
		return r.initDecl(d)
	case *ast.DeinitDecl:
		return prefix(d.Attributes) + "deinit " + r.block(d.Body)
	case *ast.SubscriptDecl:
		return r.subscript(d)

	case *ast.LetDecl:
		return prefix(d.Attributes) + prefix(d.Modifiers) + "val " + r.patternInits(d.Inits)
	case *ast.VarDecl:
		return prefix(d.Attributes) + prefix(d.Modifiers) + "var " + r.varBody(d)

	case *ast.PrecedenceGroupDecl:
		if len(d.Entries) == 0 {
			return "precedencegroup " + d.Name + " {}"
		}
		return "precedencegroup " + d.Name + " {\n" + Indent(strings.Join(d.Entries, "\n")) + "\n}"
	}
	return r.text(d)
}

// access renders the access-level modifier of d with a trailing space.
func access(d *ast.BaseDecl) string {
	if a := d.AccessLevel(); a != "" {
		return a + " "
	}
	return ""
}

func (r *Renderer) typeHeader(h ast.TypeHeader) string {
	s := h.Name + h.Generics + h.Inherits
	if h.Where != "" {
		s += " " + h.Where
	}
	return s
}

// members renders a type body: " {}" when empty, otherwise one member per
// line, indented.
func (r *Renderer) members(list []ast.Decl) string {
	if len(list) == 0 {
		return " {}"
	}
	parts := make([]string, len(list))
	for i, m := range list {
		parts[i] = r.Decl(m)
	}
	return " {\n" + Indent(strings.Join(parts, "\n")) + "\n}"
}

// protocolMembers renders protocol requirements. Property and subscript
// requirements get Kotlin-style accessor blocks; the rest is copied.
func (r *Renderer) protocolMembers(list []ast.Decl) string {
	if len(list) == 0 {
		return " {}"
	}
	parts := make([]string, len(list))
	for i, m := range list {
		switch m := m.(type) {
		case *ast.VarDecl, *ast.SubscriptDecl:
			parts[i] = r.Decl(m)
		default:
			parts[i] = r.text(m)
		}
	}
	return " {\n" + Indent(strings.Join(parts, "\n")) + "\n}"
}

// extension lowers an extension to top-level extension functions on the
// extended type. Members other than functions have no such form and are
// dropped; an extension without functions renders as "".
func (r *Renderer) extension(d *ast.ExtensionDecl) string {
	head := prefix(d.Attributes) + access(&d.BaseDecl)
	var funcs []string
	for _, m := range d.Members {
		if fn, ok := m.(*ast.FuncDecl); ok {
			funcs = append(funcs, head+r.funcDecl(fn, d.Type))
		}
	}
	return strings.Join(funcs, "\n")
}

// funcDecl renders a function without its leading newline. A non-empty
// receiver qualifies the name: fun Int.twice().
func (r *Renderer) funcDecl(d *ast.FuncDecl, receiver string) string {
	var sb strings.Builder
	sb.WriteString(prefix(d.Attributes) + prefix(d.Modifiers) + "fun ")
	if receiver != "" {
		sb.WriteString(receiver + ".")
	}
	sb.WriteString(d.Name + d.Generics + params(d.Params))
	if d.Result != nil {
		sb.WriteString(": " + prefix(d.Result.Attributes) + d.Result.Type)
	}
	if d.Where != "" {
		sb.WriteString(" " + d.Where)
	}
	if d.Body != nil {
		sb.WriteString(" " + r.block(d.Body))
	}
	return sb.String()
}

func (r *Renderer) initDecl(d *ast.InitDecl) string {
	var sb strings.Builder
	sb.WriteString(prefix(d.Attributes) + prefix(d.Modifiers) + "init" + d.Kind + d.Generics + params(d.Params))
	if d.Throws != "" {
		sb.WriteString(" " + d.Throws)
	}
	if d.Where != "" {
		sb.WriteString(" " + d.Where)
	}
	if d.Body != nil {
		sb.WriteString(" " + r.block(d.Body))
	}
	return sb.String()
}

func (r *Renderer) subscript(d *ast.SubscriptDecl) string {
	var sb strings.Builder
	sb.WriteString(prefix(d.Attributes) + prefix(d.Modifiers) + "subscript" + d.Generics + params(d.Params))
	sb.WriteString(" -> " + prefix(d.Result.Attributes) + d.Result.Type)
	if d.Where != "" {
		sb.WriteString(" " + d.Where)
	}
	switch {
	case d.Accessors != nil:
		sb.WriteString(" " + r.getterSetter(d.Accessors))
	case d.Keywords != nil:
		sb.WriteString(" " + keywordBlock(d.Keywords))
	default:
		sb.WriteString(" " + r.block(d.Block))
	}
	return sb.String()
}

func params(list []string) string {
	return "(" + strings.Join(list, ", ") + ")"
}

func (r *Renderer) patternInits(list []ast.PatternInit) string {
	parts := make([]string, len(list))
	for i, in := range list {
		parts[i] = in.Pattern
		if in.Init != nil {
			parts[i] += " = " + r.Expr(in.Init)
		}
	}
	return strings.Join(parts, ", ")
}

// varBody renders what follows "var": a binding list or a single name
// with its accessor block.
func (r *Renderer) varBody(d *ast.VarDecl) string {
	head := d.Name + d.Type
	switch d.Kind {
	case ast.VarCodeBlock:
		return head + " " + r.block(d.Block)
	case ast.VarGetterSetter:
		return head + " " + r.getterSetter(d.Accessors)
	case ast.VarKeywords:
		return head + " " + keywordBlock(d.Keywords)
	case ast.VarObservers:
		if d.Init != nil {
			head += " = " + r.Expr(d.Init)
		}
		return head + " " + r.observers(d.Observers)
	}
	return r.patternInits(d.Inits)
}

func (r *Renderer) getterSetter(b *ast.GetterSetterBlock) string {
	body := r.accessor("get", b.Getter)
	if b.Setter != nil {
		body += "\n" + r.accessor("set", b.Setter)
	}
	return "{\n" + Indent(body) + "\n}"
}

// accessor renders one get, set, willSet or didSet clause.
func (r *Renderer) accessor(kw string, c *ast.AccessorClause) string {
	s := prefix(c.Attributes)
	if c.Mutation != "" {
		s += c.Mutation + " "
	}
	s += kw
	if c.Name != "" {
		s += "(" + c.Name + ")"
	}
	return s + " " + r.block(c.Body)
}

func keywordBlock(b *ast.KeywordBlock) string {
	body := Indent(b.Getter)
	if b.Setter != "" {
		body += "\n" + Indent(b.Setter)
	}
	return "{\n" + body + "\n}"
}

func (r *Renderer) observers(b *ast.ObserverBlock) string {
	if b.WillSet == nil && b.DidSet == nil {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{")
	if b.WillSet != nil {
		sb.WriteString("\n" + Indent(r.accessor("willSet", b.WillSet)))
	}
	if b.DidSet != nil {
		sb.WriteString("\n" + Indent(r.accessor("didSet", b.DidSet)))
	}
	sb.WriteString("\n}")
	return sb.String()
}
