// Package kotlinize translates Swift source code into Kotlin source code.
//
// kotlinize parses a Swift subset into a syntax tree and renders each
// declaration, statement and expression with its closest Kotlin form.
// Constructs with no Kotlin rendering rule are passed through as their
// original source text, so the output is best-effort and meant to be
// reviewed before it is compiled.
//
// # Quick Start
//
// For a single buffer:
//
//	kt, err := kotlinize.TranslateText(`let xs = [1, 2, 3]`, nil)
//	// kt: "val xs = listOf(1, 2, 3)\n"
//
// For a file on disk:
//
//	kt, err := kotlinize.TranslateFile("Shapes.swift", nil)
//
// # Parsed Units
//
// [Parse] returns a [Unit] that can be rendered several times with
// different configurations, or dumped for debugging:
//
//	u, err := kotlinize.Parse("Shapes.swift", src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	strict, err := u.Kotlin(&kotlinize.Config{Unsupported: kotlinize.Strict})
//
// # Batches
//
// A [Translator] caches results by source content and translates many
// files concurrently:
//
//	tr, err := kotlinize.NewTranslator(nil)
//	for _, res := range tr.TranslateFiles(ctx, paths, 4) {
//	    // res.Path, res.Kotlin, res.Err
//	}
//
// # Unsupported Constructs
//
// Forced unwraps, optional chaining, try forms, forced casts, key-path
// and selector literals have no direct Kotlin spelling. [Config.Unsupported]
// selects what happens to them:
//   - [PassThrough]: emit them unchanged and report warnings
//   - [Strict]: fail with an [UnsupportedError]
//   - [Rewrite]: substitute the nearest Kotlin idiom where one exists
//
// # Error Handling
//
// Errors are returned as specific types:
//   - [ParseError]: syntax errors in the Swift source
//   - [UnsupportedError]: constructs rejected under [Strict]
//   - [IOError]: failures reading input files
//   - [ConfigError]: invalid configuration
//
// # Thread Safety
//
// A [Unit] and a [Translator] are safe for concurrent use.
package kotlinize
