package semantic

import (
	"fmt"
	"strings"

	"github.com/kotlinize/kotlinize/internal/ast"
	"github.com/kotlinize/kotlinize/internal/token"
)

// Result holds the findings of Check. Nested postfix forms share a start
// position and are listed outermost first.
type Result struct {
	Errors   ErrorList   // Unsupported constructs
	Warnings WarningList // Lossy lowerings
}

// Checker walks a unit and records its findings.
type Checker struct {
	file     *ast.File
	errors   ErrorList
	warnings WarningList
}

// Check reports the unsupported constructs and lossy lowerings in file.
func Check(file *ast.File) *Result {
	c := &Checker{file: file}
	ast.Walk(file, c.visit)
	return &Result{Errors: c.errors, Warnings: c.warnings}
}

// Rewritable reports whether the rewrite policy replaces c with a Kotlin
// idiom instead of copying it through.
func Rewritable(c Construct) bool {
	switch c {
	case ForcedUnwrap, Try, ForcedTry, OptionalTry, ForcedCast:
		return true
	}
	return false
}

func (c *Checker) visit(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.ForcedValueExpr:
		c.errors.Add(n.Pos(), ForcedUnwrap, errForcedUnwrap, c.snippet(n))

	case *ast.OptionalChainExpr:
		c.errors.Add(n.Pos(), OptionalChain, errOptionalChain, c.snippet(n))

	case *ast.TryExpr:
		kind := Try
		switch n.Kind {
		case ast.TryForced:
			kind = ForcedTry
		case ast.TryOptional:
			kind = OptionalTry
		}
		c.errors.Add(n.Pos(), kind, errTry, kind)

	case *ast.CastExpr:
		if n.Kind == ast.CastForced {
			c.errors.Add(n.Pos(), ForcedCast, errForcedCast, c.snippet(n))
		}

	case *ast.KeyPathExpr:
		c.errors.Add(n.Pos(), KeyPath, errKeyPath, c.snippet(n))

	case *ast.KeyPathLit:
		c.errors.Add(n.Pos(), KeyPath, errKeyPath, c.snippet(n))

	case *ast.SelectorExpr:
		c.errors.Add(n.Pos(), Selector, errSelector, c.snippet(n))

	case *ast.BranchStmt:
		if n.Tok == token.FALLTHROUGH {
			c.warnings.Add(n.Pos(), warnFallthrough)
		}

	case *ast.ExtensionDecl:
		if n.Inherits != "" {
			c.warnings.Add(n.Pos(), warnDroppedMember, n.Type, "conformance to "+strings.TrimPrefix(n.Inherits, ": "))
		}
		if n.Where != "" {
			c.warnings.Add(n.Pos(), warnDroppedMember, n.Type, n.Where)
		}
		// Only function members are rendered, so only they are checked.
		for _, m := range n.Members {
			if _, ok := m.(*ast.FuncDecl); ok {
				ast.Walk(m, c.visit)
			} else {
				c.warnings.Add(m.Pos(), warnDroppedMember, n.Type, describe(m))
			}
		}
		return false
	}
	return true
}

// snippet returns the quoted source text of n, cut at the first line
// break and shortened to a readable length.
func (c *Checker) snippet(n ast.Node) string {
	const maxLen = 40
	s := c.file.Text(n)
	cut := false
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s, cut = s[:i], true
	}
	if len(s) > maxLen {
		s, cut = s[:maxLen], true
	}
	if cut {
		s += "..."
	}
	return fmt.Sprintf("%q", s)
}

// describe names a declaration for diagnostics.
func describe(d ast.Decl) string {
	switch d := d.(type) {
	case *ast.VarDecl:
		if d.Kind == ast.VarInitializers {
			return "property " + patterns(d.Inits)
		}
		return "property " + d.Name
	case *ast.LetDecl:
		return "constant " + patterns(d.Inits)
	case *ast.InitDecl:
		return "initializer"
	case *ast.DeinitDecl:
		return "deinitializer"
	case *ast.SubscriptDecl:
		return "subscript"
	case *ast.ClassDecl:
		return "nested type " + d.Name
	case *ast.StructDecl:
		return "nested type " + d.Name
	case *ast.EnumDecl:
		return "nested type " + d.Name
	case *ast.TypealiasDecl:
		return "typealias " + d.Name
	case *ast.EnumCaseDecl:
		return "enum case " + strings.Join(d.Cases, ", ")
	}
	return "declaration"
}

func patterns(inits []ast.PatternInit) string {
	names := make([]string, len(inits))
	for i, in := range inits {
		name, _, _ := strings.Cut(in.Pattern, ":")
		names[i] = strings.TrimSpace(name)
	}
	return strings.Join(names, ", ")
}
