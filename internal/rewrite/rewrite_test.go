package rewrite

import (
	"sync"
	"testing"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr bool
	}{
		{"println", false},
		{`^import (\w+)$`, false},
		{`\bval\b`, false},
		{"(foo|bar)", false},
		{"[invalid", true},
		{"(unclosed", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			r, err := Compile(tt.pattern, "")
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for pattern %q", tt.pattern)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Pattern() != tt.pattern {
				t.Errorf("Pattern() = %q, want %q", r.Pattern(), tt.pattern)
			}
		})
	}
}

func TestMustCompile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for invalid pattern")
		}
	}()
	MustCompile("[invalid", "")
}

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		replacement string
		input       string
		want        string
	}{
		{"literal", "NSLog", "println", "NSLog(x)\nNSLog(y)", "println(x)\nprintln(y)"},
		{"submatch", `^import (\w+)$`, "import $1.*", "import Foundation\nval a = 1", "import Foundation.*\nval a = 1"},
		{"line anchors", `^  $`, "", "class A {\n  \n  fun f() {}\n}", "class A {\n\n  fun f() {}\n}"},
		{"no match", "xyz", "abc", "val a = 1", "val a = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := MustCompile(tt.pattern, tt.replacement)
			if got := r.Apply(tt.input); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if got := r.Matches(tt.input); got != (tt.input != tt.want) {
				t.Errorf("Matches(%q) = %v", tt.input, got)
			}
		})
	}
}

func TestSetOrder(t *testing.T) {
	set := Set{MustCompile("a", "b"), MustCompile("b", "c")}
	if got := set.Apply("a b"); got != "c c" {
		t.Errorf("Apply = %q, want %q", got, "c c")
	}
	var empty Set
	if got := empty.Apply("a"); got != "a" {
		t.Errorf("empty Apply = %q, want %q", got, "a")
	}
}

func TestCache(t *testing.T) {
	cache := NewCache(3)
	if cache.Len() != 0 {
		t.Errorf("new cache Len() = %d, want 0", cache.Len())
	}

	re1, err := cache.Get("hello")
	if err != nil {
		t.Fatalf("Get(hello): %v", err)
	}
	re2, err := cache.Get("hello")
	if err != nil {
		t.Fatalf("Get(hello) again: %v", err)
	}
	if re1 != re2 {
		t.Error("expected same instance from cache")
	}

	cache.Get("world")
	cache.Get("foo")
	if cache.Len() != 3 {
		t.Errorf("after 3 patterns, Len() = %d, want 3", cache.Len())
	}

	// A fourth pattern evicts the oldest.
	cache.Get("bar")
	if cache.Len() != 3 {
		t.Errorf("after eviction, Len() = %d, want 3", cache.Len())
	}
	re3, _ := cache.Get("hello")
	if re3 == re1 {
		t.Error("expected hello to have been evicted and recompiled")
	}

	if _, err := cache.Get("[bad"); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestCacheConcurrent(t *testing.T) {
	cache := NewCache(8)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, p := range []string{"a+", "b+", "c+"} {
				if _, err := cache.Get(p); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()
	if cache.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cache.Len())
	}
}
