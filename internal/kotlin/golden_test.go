package kotlin_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kotlinize/kotlinize/internal/kotlin"
	"github.com/kotlinize/kotlinize/internal/parser"
)

const sampleSwift = `import Foundation

protocol Shape {
    var area: Double { get }
    func describe() -> String
}

struct Circle: Shape {
    let radius: Double
    var area: Double {
        return 3.14 * radius * radius
    }

    func describe() -> String {
        return "circle \(radius)"
    }
}

final class Registry<T> {
    private var items: [String: T] = [:]
    var count = 0 {
        didSet {
            print(count)
        }
    }

    func register(_ item: T, named name: String) {
        items[name] = item
        count += 1
    }

    func find(_ name: String) -> T? {
        guard let item = items[name] else {
            return nil
        }
        return item
    }
}

enum Level: Int {
    case low = 1, high
}

extension Circle {
    var diameter: Double { radius * 2 }
    func scaled(by factor: Double) -> Circle {
        return Circle(radius: radius * factor)
    }
}

let shapes = [Circle(radius: 1), Circle(radius: 2)]
for shape in shapes where shape.radius > 1 {
    switch shape.radius {
    case 2:
        print("two")
    default:
        break
    }
}
let total = shapes.map { $0.area }.reduce(0, +)
`

// Lines are listed one per element so that the indented blank lines the
// renderer leaves before methods stay visible.
var sampleKotlin = strings.Join([]string{
	`import Foundation`,
	`interface Shape {`,
	`  var area: Double {`,
	`    get`,
	`  }`,
	`  func describe() -> String`,
	`}`,
	`data class Circle: Shape {`,
	`  val radius: Double`,
	`  var area: Double {`,
	`    return 3.14 * radius * radius`,
	`  }`,
	`  `,
	`  fun describe(): String {`,
	`    return "circle \(radius)"`,
	`  }`,
	`}`,
	``,
	`final class Registry<T> {`,
	`  private var items: [String: T] = mapOf()`,
	`  var count = 0 {`,
	`    didSet {`,
	`      print(count)`,
	`    }`,
	`  }`,
	`  `,
	`  fun register(_ item: T, named name: String) {`,
	`    items[name] = item`,
	`    count += 1`,
	`  }`,
	`  `,
	`  fun find(_ name: String): T? {`,
	`    guard val item = items[name] else {`,
	`      return nil`,
	`    }`,
	`    return item`,
	`  }`,
	`}`,
	`enum Level: Int {`,
	`  case low = 1, high`,
	`}`,
	`fun Circle.scaled(by factor: Double): Circle {`,
	`  return Circle(radius = radius * factor)`,
	`}`,
	`val shapes = listOf(Circle(radius = 1), Circle(radius = 2))`,
	`for shape in shapes where shape.radius > 1 {`,
	`  switch shape.radius {`,
	`  case 2:`,
	`    print("two")`,
	`  default:`,
	`    break`,
	`  }`,
	`}`,
	`val total = shapes.map { $0.area }.reduce(0, +)`,
	``,
}, "\n")

func TestRenderGolden(t *testing.T) {
	file, err := parser.Parse("sample.swift", []byte(sampleSwift))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := kotlin.Render(file, kotlin.Options{}); got != sampleKotlin {
		t.Errorf("output mismatch:\n%s", diff(sampleKotlin, got))
	}
}

func TestRenderScenarios(t *testing.T) {
	runRenderTests(t, []renderTest{
		{"empty type bodies", "class Foo {}\nstruct Foo {}", "\nclass Foo {}\ndata class Foo {}"},
		{"else follows the block", "if a {1} else {2}", "if (a) {\n  1\n} else {\n  2\n}"},
		{"collection constructors", "let a = [1, 2, 3]\nlet b = [:]", "val a = listOf(1, 2, 3)\nval b = mapOf()"},
		{"inline closure", "f { g() }", "f { g() }"},
		{
			"extension drops properties",
			"extension Foo {\n  func f() {}\n  var p: Int { 1 }\n}",
			"fun Foo.f() {}",
		},
	}, kotlin.Options{})
}

func TestEmptyBlocksStayClosed(t *testing.T) {
	srcs := []string{
		"class A {}",
		"struct A {}",
		"enum A {}",
		"protocol A {}",
		"func f() {}",
		"init() {}",
		"deinit {}",
		"if a {}",
		"if a {} else {}",
		"guard a else {}",
		"while a {}",
		"repeat {} while a",
		"for x in xs {}",
		"switch x {}",
		"do {} catch {}",
		"defer {}",
		"f {}",
		"var x: Int {}",
		"precedencegroup P {}",
	}
	for _, src := range srcs {
		got := render(t, src, kotlin.Options{})
		if !strings.Contains(got, "{}") {
			t.Errorf("render(%q) = %q, want an empty {} block", src, got)
		}
		if strings.Contains(got, "{\n}") {
			t.Errorf("render(%q) = %q, has an open empty block", src, got)
		}
	}
}

func TestStatementOrderPreserved(t *testing.T) {
	var src strings.Builder
	const n = 50
	for i := 0; i < n; i++ {
		fmt.Fprintf(&src, "call%d()\n", i)
	}
	got := render(t, "func f() {\n"+src.String()+"}", kotlin.Options{})
	lines := strings.Split(got, "\n")
	// "", "fun f() {", n calls, "}"
	if len(lines) != n+3 {
		t.Fatalf("got %d lines, want %d", len(lines), n+3)
	}
	for i := 0; i < n; i++ {
		if want := fmt.Sprintf("  call%d()", i); lines[i+2] != want {
			t.Errorf("line %d = %q, want %q", i+2, lines[i+2], want)
		}
	}
}

func TestNestedIndentation(t *testing.T) {
	src := `class A {
  func f() {
    do {
      if a {
        xs.forEach { x in
          g(x)
        }
      }
    } catch {
      h()
    }
  }
}`
	got := render(t, src, kotlin.Options{})
	depth := 0
	for i, line := range strings.Split(got, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" {
			continue
		}
		d := depth
		if strings.HasPrefix(trimmed, "}") {
			d--
		}
		if indent := len(line) - len(trimmed); indent != d*len(kotlin.Unit) {
			t.Errorf("line %d %q: indent %d, want %d", i, line, indent, d*len(kotlin.Unit))
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
	}
	if depth != 0 {
		t.Errorf("unbalanced braces in:\n%s", got)
	}
}

func TestRendererParts(t *testing.T) {
	file, err := parser.Parse("test.swift", []byte("let a = [1: 2]\nif x { y() }"))
	if err != nil {
		t.Fatal(err)
	}
	r := kotlin.New(file, kotlin.Options{})
	decl := file.Stmts[0]
	if got, want := r.Stmt(decl), "val a = mapOf(1 to 2)"; got != want {
		t.Errorf("Stmt = %q, want %q", got, want)
	}
	if got, want := r.Stmt(file.Stmts[1]), "if (x) {\n  y()\n}"; got != want {
		t.Errorf("Stmt = %q, want %q", got, want)
	}
	if got, want := r.File(), "val a = mapOf(1 to 2)\nif (x) {\n  y()\n}\n"; got != want {
		t.Errorf("File = %q, want %q", got, want)
	}
}
