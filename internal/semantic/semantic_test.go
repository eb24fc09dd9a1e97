package semantic_test

import (
	"strings"
	"testing"

	"github.com/kotlinize/kotlinize/internal/parser"
	"github.com/kotlinize/kotlinize/internal/semantic"
)

// check parses code and runs the checker on it.
func check(t *testing.T, code string) *semantic.Result {
	t.Helper()
	file, err := parser.Parse("test.swift", []byte(code))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return semantic.Check(file)
}

func constructs(el semantic.ErrorList) []semantic.Construct {
	var cs []semantic.Construct
	for _, e := range el {
		cs = append(cs, e.Construct)
	}
	return cs
}

func TestCheckUnsupported(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []semantic.Construct
	}{
		{"clean", "let x = a + b\nfunc f() -> Int { return 1 }", nil},
		{"forced unwrap", "let y = x!", []semantic.Construct{semantic.ForcedUnwrap}},
		{"optional chain", "a?.b()", []semantic.Construct{semantic.OptionalChain}},
		{"chain then unwrap", "a!.b?.c", []semantic.Construct{semantic.OptionalChain, semantic.ForcedUnwrap}},
		{"try", "let v = try f()", []semantic.Construct{semantic.Try}},
		{"try forced", "let v = try! f()", []semantic.Construct{semantic.ForcedTry}},
		{"try optional", "let v = try? f()", []semantic.Construct{semantic.OptionalTry}},
		{"forced cast", "let s = x as! String", []semantic.Construct{semantic.ForcedCast}},
		{"conditional cast", "let s = x as? String", nil},
		{"plain cast and check", "let b = x is Int\nlet c = x as Any", nil},
		{"keypath directive", "let k = #keyPath(Person.name)", []semantic.Construct{semantic.KeyPath}},
		{"keypath literal", `let k = \Person.name`, []semantic.Construct{semantic.KeyPath}},
		{"selector", "let s = #selector(getter: A.b)", []semantic.Construct{semantic.Selector}},
		{"nested in closure", "xs.map { $0! }", []semantic.Construct{semantic.ForcedUnwrap}},
		{"nested in method", "class A { func f() { g()! } }", []semantic.Construct{semantic.ForcedUnwrap}},
		{"in condition", "if let v = try? f() { }", []semantic.Construct{semantic.OptionalTry}},
		{"in accessor", "var x: Int { get { y! } set { } }", []semantic.Construct{semantic.ForcedUnwrap}},
		{"not equal is not unwrap", "let b = a != c", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := check(t, tt.code)
			got := constructs(res.Errors)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("finding %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCheckMessages(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"let y = x!", `test.swift:1:9: forced unwrap "x!" is not valid Kotlin`},
		{"\nf(try? g())", `test.swift:2:3: try? expression has no Kotlin equivalent`},
		{"let s = x as! T", `test.swift:1:9: forced cast "x as! T" is not valid Kotlin`},
		{"let s = #selector(f)", `test.swift:1:9: selector literal "#selector(f)" is not valid Kotlin`},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			res := check(t, tt.code)
			if len(res.Errors) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(res.Errors), res.Errors)
			}
			if got := res.Errors[0].Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSnippetShortened(t *testing.T) {
	code := "let y = veryLongFunctionName(argumentNumberOne, argumentNumberTwo)!"
	res := check(t, code)
	if len(res.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(res.Errors))
	}
	msg := res.Errors[0].Message
	if !strings.Contains(msg, `..."`) {
		t.Errorf("message not shortened: %s", msg)
	}
}

func TestCheckWarnings(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []string
	}{
		{
			name: "extension members",
			code: "extension Foo {\n  var x: Int { 1 }\n  func f() {}\n  init(a: Int) {}\n}",
			want: []string{
				"test.swift:2:3: warning: extension of Foo drops property x",
				"test.swift:4:3: warning: extension of Foo drops initializer",
			},
		},
		{
			name: "extension of functions only",
			code: "extension Foo { func f() {} }",
		},
		{
			name: "stored constants",
			code: "extension Foo { static let a = 1, b: Int = 2 }",
			want: []string{"test.swift:1:17: warning: extension of Foo drops constant a, b"},
		},
		{
			name: "where clause and conformance",
			code: "public extension Array: P where Element: Equatable {\n  func rm() {}\n}",
			want: []string{
				"test.swift:1:1: warning: extension of Array drops conformance to P",
				"test.swift:1:1: warning: extension of Array drops where Element: Equatable",
			},
		},
		{
			name: "findings inside dropped members",
			code: "extension A {\n  var y: Int { return x! }\n  func f() {}\n}",
			want: []string{"test.swift:2:3: warning: extension of A drops property y"},
		},
		{
			name: "fallthrough",
			code: "switch x {\ncase 1:\n  fallthrough\ndefault:\n  break\n}",
			want: []string{"test.swift:3:3: warning: fallthrough has no Kotlin equivalent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := check(t, tt.code)
			if len(res.Errors) != 0 {
				t.Errorf("unexpected errors: %v", res.Errors)
			}
			if len(res.Warnings) != len(tt.want) {
				t.Fatalf("got %d warnings, want %d: %v", len(res.Warnings), len(tt.want), res.Warnings)
			}
			for i, w := range res.Warnings {
				if got := w.String(); got != tt.want[i] {
					t.Errorf("warning %d = %q, want %q", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestCheckExtensionFunctions(t *testing.T) {
	res := check(t, "extension A {\n  var y: Int { return x! }\n  func f() -> Int { return z! }\n}")
	if len(res.Errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(res.Errors), res.Errors)
	}
	if got := res.Errors[0].Error(); got != `test.swift:3:28: forced unwrap "z!" is not valid Kotlin` {
		t.Errorf("error = %q", got)
	}
}

func TestRewritable(t *testing.T) {
	tests := []struct {
		c    semantic.Construct
		want bool
	}{
		{semantic.ForcedUnwrap, true},
		{semantic.Try, true},
		{semantic.ForcedTry, true},
		{semantic.OptionalTry, true},
		{semantic.ForcedCast, true},
		{semantic.OptionalChain, false},
		{semantic.KeyPath, false},
		{semantic.Selector, false},
	}
	for _, tt := range tests {
		if got := semantic.Rewritable(tt.c); got != tt.want {
			t.Errorf("Rewritable(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestErrorList(t *testing.T) {
	var el semantic.ErrorList
	if el.Err() != nil {
		t.Error("empty list should have nil Err")
	}
	res := check(t, "let a = x!\nlet b = y!")
	el = res.Errors
	if el.Err() == nil {
		t.Fatal("expected error")
	}
	lines := strings.Split(el.Error(), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), el.Error())
	}
	ws := el.Warnings()
	if len(ws) != 2 || !strings.Contains(ws[1].String(), "2:9: warning: forced unwrap") {
		t.Errorf("Warnings() = %v", ws)
	}
}
