// Package kotlin renders a parsed Swift unit as Kotlin source text.
//
// Rendering is a recursive walk over the syntax tree. Declarations,
// statements and expressions each have one method that dispatches on the
// node kind; nested blocks are rendered first and then shifted one level
// with Indent, so depth is never tracked explicitly.
//
// The mapping is syntactic. Constructs without a Kotlin counterpart, such
// as forced unwraps or #selector literals, are copied through unless
// Options.Rewrite asks for the closest Kotlin idiom. Node kinds without a
// rule of their own are emitted as their original source text.
package kotlin

import (
	"strings"

	"github.com/kotlinize/kotlinize/internal/ast"
)

// DictionaryStyle selects how non-empty dictionary literals render.
type DictionaryStyle uint8

const (
	// DictionaryMapOf renders mapOf(k to v); the empty literal is mapOf().
	DictionaryMapOf DictionaryStyle = iota
	// DictionaryBracketed renders [k: v]; the empty literal is still mapOf().
	DictionaryBracketed
)

// Options control rendering choices.
type Options struct {
	// Rewrite replaces forced unwraps, forced casts, try forms and the
	// ternary operator with Kotlin idioms instead of copying them.
	Rewrite bool

	// Dictionaries selects the key-value literal form.
	Dictionaries DictionaryStyle
}

// Renderer renders the nodes of one parsed unit. It holds no state
// besides its inputs and may be used from several goroutines.
type Renderer struct {
	file *ast.File
	opts Options
}

// New returns a Renderer for nodes of file. The file supplies the source
// text of nodes copied through verbatim.
func New(file *ast.File, opts Options) *Renderer {
	return &Renderer{file: file, opts: opts}
}

// Render renders a whole unit: its top-level statements joined by
// newlines, followed by a final newline.
func Render(file *ast.File, opts Options) string {
	return New(file, opts).File()
}

// File renders the unit the Renderer was created for.
func (r *Renderer) File() string {
	return r.stmts(r.file.Stmts) + "\n"
}

// text returns the source text of n, the fallback for nodes that have no
// Kotlin form of their own.
func (r *Renderer) text(n ast.Node) string {
	return r.file.Text(n)
}

// stmts renders a statement list one statement per line.
func (r *Renderer) stmts(list []ast.Stmt) string {
	parts := make([]string, len(list))
	for i, s := range list {
		parts[i] = r.Stmt(s)
	}
	return strings.Join(parts, "\n")
}

// block renders a brace-delimited body; an empty body is "{}".
func (r *Renderer) block(b *ast.Block) string {
	if b == nil || len(b.Stmts) == 0 {
		return "{}"
	}
	return "{\n" + Indent(r.stmts(b.Stmts)) + "\n}"
}

// prefix renders a space-joined word list followed by one space, or ""
// for an empty list.
func prefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return strings.Join(words, " ") + " "
}
