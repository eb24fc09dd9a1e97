package kotlinize

import (
	"os"

	"github.com/kotlinize/kotlinize/internal/parser"
)

// Version is the kotlinize version string.
const Version = "0.1.0"

// TranslateText translates Swift source held in memory.
// This is a convenience function for one-off translation.
// For repeated translation, use a Translator.
//
// Parameters:
//   - content: Swift source code
//   - config: translation configuration (can be nil for defaults)
//
// Returns the Kotlin source, always terminated by a newline, or an error
// if the configuration is invalid, parsing fails, or the Strict policy
// rejects a construct.
//
// Example:
//
//	kt, err := kotlinize.TranslateText("let m: [String: Int] = [:]", nil)
//	// kt: "val m: [String: Int] = mapOf()\n"
func TranslateText(content string, config *Config) (string, error) {
	cfg := config.resolve()
	rules, err := cfg.validate()
	if err != nil {
		return "", err
	}
	u, err := Parse(cfg.Filename, content)
	if err != nil {
		return "", err
	}
	return u.translate(&cfg, rules)
}

// TranslateFile reads and translates the Swift file at path.
// Unless config sets a Filename, the path is used in error positions.
// A read failure is returned as an *IOError.
//
// Example:
//
//	kt, err := kotlinize.TranslateFile("Shapes.swift", &kotlinize.Config{
//	    Unsupported: kotlinize.Rewrite,
//	    Stderr:      os.Stderr,
//	})
func TranslateFile(path string, config *Config) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	cfg := Config{Filename: path}
	if config != nil {
		cfg = *config
		if cfg.Filename == "" {
			cfg.Filename = path
		}
	}
	return TranslateText(string(src), &cfg)
}

// Parse parses Swift source into a Unit without rendering it.
// Syntax errors are returned as *ParseError.
//
// Example:
//
//	u, err := kotlinize.Parse("main.swift", src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(u.Dump())
func Parse(filename, src string) (*Unit, error) {
	file, err := parser.Parse(filename, []byte(src))
	if err != nil {
		return nil, newParseError(filename, err)
	}
	return &Unit{file: file, filename: filename}, nil
}

// MustParse is like Parse but panics if the source cannot be parsed.
// It simplifies initialization of fixtures and global units.
//
// Example:
//
//	var sample = kotlinize.MustParse("sample.swift", `struct P { let x: Int }`)
func MustParse(filename, src string) *Unit {
	u, err := Parse(filename, src)
	if err != nil {
		panic(err)
	}
	return u
}
