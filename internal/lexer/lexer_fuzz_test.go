package lexer

import (
	"testing"

	"github.com/kotlinize/kotlinize/internal/token"
)

// FuzzLexer tests that the lexer handles arbitrary input without panicking
// and produces tokens whose offsets stay inside the source.
func FuzzLexer(f *testing.F) {
	seeds := []string{
		// Declarations
		`class A: B, C { var x: Int = 0 }`,
		`struct P { let x, y: Double }`,
		`enum E { case a, b(Int) }`,
		`extension String { func f() -> Int { return 1 } }`,
		`protocol P { var x: Int { get set } }`,

		// Expressions
		`a?.b!.c ?? d`,
		`x as? [String: Int]`,
		`{ (a: Int) -> Int in a * 2 }`,
		`t.0.1`,
		`#selector(getter: A.b)`,
		`\Foo.bar`,

		// Literals
		`123 4.5 1e10 0xFF 0x1p3 1_000`,
		`"interp \(a + "b\(c)")"`,
		"\"\"\"\nmulti\n\"\"\"",

		// Edge cases
		``,
		`// comment only`,
		`/* nested /* comment */`,
		`"unterminated`,
		"`unterminated",
		`#`,
		`...<`,

		// Unicode
		`let größe = "héllo"`,
		`let π = 3.14`,
		"\xff\xfe",
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		l := New("fuzz.swift", data)

		tokenCount := 0
		const maxTokens = 10000 // Prevent infinite loops

		prevEnd := 0
		for tokenCount < maxTokens {
			tok := l.Scan()

			if tok.Pos.Line < 1 || tok.Pos.Column < 1 || tok.Pos.Offset < 0 {
				t.Errorf("invalid position: %v", tok.Pos)
			}
			if tok.Pos.Offset < prevEnd || tok.End < tok.Pos.Offset || tok.End > len(data) {
				t.Fatalf("token %v %q has bad extent [%d,%d) after %d", tok.Type, tok.Value, tok.Pos.Offset, tok.End, prevEnd)
			}
			prevEnd = tok.End

			if tok.Type == token.EOF {
				break
			}
			if tok.End == tok.Pos.Offset {
				t.Fatalf("token %v at %d consumed no input", tok.Type, tok.End)
			}

			tokenCount++
		}

		if tokenCount >= maxTokens {
			t.Skip("too many tokens, possibly malformed input")
		}
	})
}
