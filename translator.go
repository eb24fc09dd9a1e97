package kotlinize

import (
	"context"
	"crypto/sha256"
	"io"
	"os"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kotlinize/kotlinize/internal/rewrite"
)

// Translator translates many units with one configuration.
// Successful translations are cached by file name and content, so
// translating an unchanged file again costs a hash lookup. Warnings are
// written only when a unit is first translated.
//
// A Translator is safe for concurrent use.
type Translator struct {
	config Config
	rules  rewrite.Set
	cache  *lru.Cache[[sha256.Size]byte, string] // nil when caching is disabled
}

// NewTranslator creates a Translator. If config is nil, default
// configuration is used. Invalid configuration is reported as *ConfigError.
func NewTranslator(config *Config) (*Translator, error) {
	cfg := config.resolve()
	rules, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	cfg.Stderr = &syncWriter{w: cfg.Stderr}

	t := &Translator{config: cfg, rules: rules}
	if cfg.CacheSize > 0 {
		t.cache, err = lru.New[[sha256.Size]byte, string](cfg.CacheSize)
		if err != nil {
			return nil, &ConfigError{Field: "CacheSize", Message: err.Error()}
		}
	}
	return t, nil
}

// Translate translates src, reporting positions against filename.
func (t *Translator) Translate(filename, src string) (string, error) {
	key := cacheKey(filename, src)
	if t.cache != nil {
		if out, ok := t.cache.Get(key); ok {
			return out, nil
		}
	}

	cfg := t.config
	if filename != "" {
		cfg.Filename = filename
	}
	u, err := Parse(cfg.Filename, src)
	if err != nil {
		return "", err
	}
	out, err := u.translate(&cfg, t.rules)
	if err != nil {
		return "", err
	}
	if t.cache != nil {
		t.cache.Add(key, out)
	}
	return out, nil
}

// TranslateFile reads and translates the Swift file at path.
func (t *Translator) TranslateFile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	return t.Translate(path, string(src))
}

// Result is the outcome of translating one file in a batch.
type Result struct {
	Path   string
	Kotlin string
	Err    error
}

// TranslateFiles translates paths using up to workers goroutines and
// returns one Result per path, in the order of paths. Once ctx is done,
// files not yet started fail with ctx.Err().
func (t *Translator) TranslateFiles(ctx context.Context, paths []string, workers int) []Result {
	results := make([]Result, len(paths))
	workers = max(1, min(workers, len(paths)))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for i := range jobs {
				results[i] = t.translateJob(ctx, paths[i])
			}
		})
	}

feed:
	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(paths); j++ {
				results[j] = Result{Path: paths[j], Err: ctx.Err()}
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	return results
}

func (t *Translator) translateJob(ctx context.Context, path string) Result {
	if err := ctx.Err(); err != nil {
		return Result{Path: path, Err: err}
	}
	out, err := t.TranslateFile(path)
	return Result{Path: path, Kotlin: out, Err: err}
}

// CacheLen returns the number of cached translations.
func (t *Translator) CacheLen() int {
	if t.cache == nil {
		return 0
	}
	return t.cache.Len()
}

func cacheKey(filename, src string) [sha256.Size]byte {
	h := sha256.New()
	io.WriteString(h, filename)
	h.Write([]byte{0})
	io.WriteString(h, src)
	var key [sha256.Size]byte
	h.Sum(key[:0])
	return key
}

// syncWriter serializes warnings from concurrent translations.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
