package kotlinize

import (
	"fmt"
	"io"

	"github.com/kotlinize/kotlinize/internal/kotlin"
	"github.com/kotlinize/kotlinize/internal/rewrite"
)

// Policy selects how constructs without a Kotlin spelling are handled.
type Policy uint8

const (
	// PassThrough emits unsupported constructs as source text and writes
	// a warning for each one to Config.Stderr.
	PassThrough Policy = iota

	// Strict rejects a unit containing any unsupported construct with an
	// *UnsupportedError.
	Strict

	// Rewrite replaces unsupported constructs with the nearest Kotlin idiom:
	// x! becomes x!!, as! becomes as, try and try! are dropped, try? x
	// becomes runCatching { x }.getOrNull() and c ? a : b becomes
	// if (c) a else b. Constructs with no idiom are passed through with
	// a warning.
	Rewrite
)

func (p Policy) String() string {
	switch p {
	case PassThrough:
		return "pass-through"
	case Strict:
		return "strict"
	case Rewrite:
		return "rewrite"
	}
	return "unknown"
}

// DictionaryStyle selects how non-empty dictionary literals are written.
// Empty dictionaries always render as mapOf().
type DictionaryStyle uint8

const (
	// DictionaryMapOf renders [k: v] as mapOf(k to v).
	DictionaryMapOf DictionaryStyle = iota

	// DictionaryBracketed keeps the bracketed [k: v] form.
	DictionaryBracketed
)

// Substitution is a regular expression replacement applied to the
// rendered Kotlin text. Patterns are matched in multi-line mode, so ^ and $
// anchor at line boundaries. The replacement may refer to submatches
// as $1 or ${name}.
type Substitution struct {
	Pattern     string
	Replacement string
}

// DefaultCacheSize is the number of translations a Translator keeps
// when Config.CacheSize is zero.
const DefaultCacheSize = 256

// Config holds configuration options for translation.
type Config struct {
	// Filename is used in positions of errors and warnings.
	// TranslateFile defaults it to the file path, everything else to "<input>".
	Filename string

	// Unsupported selects the policy for constructs without a Kotlin
	// spelling (default: PassThrough).
	Unsupported Policy

	// Dictionaries selects the dictionary literal form (default: DictionaryMapOf).
	Dictionaries DictionaryStyle

	// Rewrites are applied in order to the rendered output.
	// Example: []Substitution{{Pattern: `^import (\w+)$`, Replacement: "import $1.*"}}
	Rewrites []Substitution

	// CacheSize bounds the result cache of a Translator (default: DefaultCacheSize).
	// A negative value disables caching.
	CacheSize int

	// Stderr is the writer for warnings.
	// If nil, warnings are discarded.
	Stderr io.Writer
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Filename == "" {
		c.Filename = "<input>"
	}
	if c.CacheSize == 0 {
		c.CacheSize = DefaultCacheSize
	}
	if c.Stderr == nil {
		c.Stderr = io.Discard
	}
}

// resolve returns a copy of c with defaults applied. A nil config
// resolves to the defaults.
func (c *Config) resolve() Config {
	var cfg Config
	if c != nil {
		cfg = *c
	}
	cfg.applyDefaults()
	return cfg
}

// validate checks the enumerated fields and compiles the rewrites.
func (c *Config) validate() (rewrite.Set, error) {
	if c.Unsupported > Rewrite {
		return nil, &ConfigError{Field: "Unsupported", Message: fmt.Sprintf("unknown policy %d", c.Unsupported)}
	}
	if c.Dictionaries > DictionaryBracketed {
		return nil, &ConfigError{Field: "Dictionaries", Message: fmt.Sprintf("unknown dictionary style %d", c.Dictionaries)}
	}
	var rules rewrite.Set
	for i, s := range c.Rewrites {
		r, err := rewrite.Compile(s.Pattern, s.Replacement)
		if err != nil {
			return nil, &ConfigError{Field: fmt.Sprintf("Rewrites[%d]", i), Message: err.Error()}
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// renderOptions maps c onto the renderer options.
func (c *Config) renderOptions() kotlin.Options {
	opts := kotlin.Options{Rewrite: c.Unsupported == Rewrite}
	if c.Dictionaries == DictionaryBracketed {
		opts.Dictionaries = kotlin.DictionaryBracketed
	}
	return opts
}
