package kotlinize

import (
	"fmt"

	"github.com/kotlinize/kotlinize/internal/ast"
	"github.com/kotlinize/kotlinize/internal/kotlin"
	"github.com/kotlinize/kotlinize/internal/rewrite"
	"github.com/kotlinize/kotlinize/internal/semantic"
)

// Unit represents a parsed Swift source file ready for rendering.
// It is safe for concurrent use; the syntax tree is never modified.
type Unit struct {
	file     *ast.File
	filename string
}

// Kotlin renders the unit with the given configuration.
// If config is nil, default configuration is used.
// Warnings are written to config.Stderr.
func (u *Unit) Kotlin(config *Config) (string, error) {
	cfg := config.resolve()
	rules, err := cfg.validate()
	if err != nil {
		return "", err
	}
	return u.translate(&cfg, rules)
}

// translate checks the unit against cfg.Unsupported, renders it and
// applies the rewrites.
func (u *Unit) translate(cfg *Config, rules rewrite.Set) (string, error) {
	res := semantic.Check(u.file)

	switch cfg.Unsupported {
	case Strict:
		if len(res.Errors) > 0 {
			return "", newUnsupportedError(u.filename, res.Errors)
		}
	case Rewrite:
		for _, e := range res.Errors {
			if !semantic.Rewritable(e.Construct) {
				warn(cfg, &semantic.Warning{Pos: e.Pos, Message: e.Message})
			}
		}
	default:
		for _, w := range res.Errors.Warnings() {
			warn(cfg, w)
		}
	}
	for _, w := range res.Warnings {
		warn(cfg, w)
	}

	out := kotlin.Render(u.file, cfg.renderOptions())
	return rules.Apply(out), nil
}

func warn(cfg *Config, w *semantic.Warning) {
	fmt.Fprintln(cfg.Stderr, w.String())
}

// Dump returns an indented dump of the syntax tree.
// Useful for debugging how a construct was parsed.
func (u *Unit) Dump() string {
	return ast.Dump(u.file)
}

// Source returns the original Swift source code.
func (u *Unit) Source() string {
	return string(u.file.Src)
}

// Filename returns the name the unit was parsed under.
func (u *Unit) Filename() string {
	return u.filename
}
