// Package rewrite applies user-supplied regular-expression substitutions
// to rendered Kotlin text.
//
// Patterns use RE2 syntax and are compiled with coregex in multi-line
// mode, so ^ and $ anchor at line boundaries of the rendered output.
// Replacements may refer to submatches as $1 or ${name}.
package rewrite

import (
	"sync"

	"github.com/coregx/coregex"
)

// multilinePrefix makes ^ and $ match at every line of the output.
const multilinePrefix = "(?m)"

// Rule is one compiled substitution.
type Rule struct {
	pattern     string
	replacement string
	re          *coregex.Regexp
}

// Compile compiles pattern into a Rule that replaces every match with
// replacement. Compiled patterns are shared through a process-wide cache.
func Compile(pattern, replacement string) (*Rule, error) {
	re, err := shared.Get(pattern)
	if err != nil {
		return nil, err
	}
	return &Rule{pattern: pattern, replacement: replacement, re: re}, nil
}

// MustCompile is like Compile but panics on an invalid pattern.
func MustCompile(pattern, replacement string) *Rule {
	r, err := Compile(pattern, replacement)
	if err != nil {
		panic(err)
	}
	return r
}

// Pattern returns the pattern as given to Compile.
func (r *Rule) Pattern() string {
	return r.pattern
}

// Apply returns s with every match of the rule replaced.
func (r *Rule) Apply(s string) string {
	return r.re.ReplaceAllString(s, r.replacement)
}

// Matches reports whether s contains a match.
func (r *Rule) Matches(s string) bool {
	return r.re.MatchString(s)
}

// Set is an ordered list of rules; each rule sees the output of the
// previous one.
type Set []*Rule

// Apply runs every rule over s in order.
func (rs Set) Apply(s string) string {
	for _, r := range rs {
		s = r.Apply(s)
	}
	return s
}

// shared backs Compile.
var shared = NewCache(128)

// Cache provides thread-safe compiled pattern caching with FIFO eviction.
// Reads are lock-free via sync.Map.
type Cache struct {
	cache   sync.Map   // map[string]*coregex.Regexp
	orderMu sync.Mutex // Protects order and size
	order   []string   // FIFO order for eviction
	size    int
	maxSize int
}

// NewCache creates a cache holding at most maxSize patterns.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 128
	}
	return &Cache{
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

// Get returns the compiled form of pattern, compiling and caching it if
// needed.
func (c *Cache) Get(pattern string) (*coregex.Regexp, error) {
	if re, ok := c.cache.Load(pattern); ok {
		return re.(*coregex.Regexp), nil
	}

	re, err := coregex.Compile(multilinePrefix + pattern)
	if err != nil {
		return nil, err
	}

	// Another goroutine may have stored it meanwhile.
	if existing, loaded := c.cache.LoadOrStore(pattern, re); loaded {
		return existing.(*coregex.Regexp), nil
	}

	c.orderMu.Lock()
	c.order = append(c.order, pattern)
	c.size++
	for c.size > c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		c.cache.Delete(oldest)
		c.size--
	}
	c.orderMu.Unlock()

	return re, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	c.orderMu.Lock()
	defer c.orderMu.Unlock()
	return c.size
}
