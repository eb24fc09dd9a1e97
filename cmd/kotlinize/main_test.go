package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/kotlinize/kotlinize"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *options
		wantErr string
	}{
		{
			name: "no args",
			args: nil,
			want: &options{workers: 1},
		},
		{
			name: "files",
			args: []string{"a.swift", "b.swift"},
			want: &options{workers: 1, files: []string{"a.swift", "b.swift"}},
		},
		{
			name: "attached values",
			args: []string{"-j4", "-oout.kt", "in.swift"},
			want: &options{workers: 4, output: "out.kt", files: []string{"in.swift"}},
		},
		{
			name: "separate values",
			args: []string{"-j", "2", "-o", "out.kt", "-v", "in.swift"},
			want: &options{workers: 2, output: "out.kt", verbose: true, files: []string{"in.swift"}},
		},
		{
			name: "policies and styles",
			args: []string{"-rewrite", "-brackets", "-d", "--", "-odd.swift"},
			want: &options{workers: 1, policy: kotlinize.Rewrite, brackets: true, dump: true, files: []string{"-odd.swift"}},
		},
		{
			name: "strict",
			args: []string{"-strict"},
			want: &options{workers: 1, policy: kotlinize.Strict, files: []string{}},
		},
		{
			name: "substitutions",
			args: []string{"-s", `^import (\w+)$=>import $1.*`, "-sfoo=>bar"},
			want: &options{workers: 1, files: []string{}, rewrites: []kotlinize.Substitution{
				{Pattern: `^import (\w+)$`, Replacement: "import $1.*"},
				{Pattern: "foo", Replacement: "bar"},
			}},
		},
		{
			name: "stdin marker",
			args: []string{"-i", "-"},
			want: &options{workers: 1, interactive: true, files: []string{"-"}},
		},
		{name: "conflicting policies", args: []string{"-strict", "-rewrite"}, wantErr: "mutually exclusive"},
		{name: "missing value", args: []string{"-o"}, wantErr: "flag needs an argument: -o"},
		{name: "bad workers", args: []string{"-j0"}, wantErr: "invalid number of workers: 0"},
		{name: "bad substitution", args: []string{"-s", "foo"}, wantErr: "invalid substitution"},
		{name: "unknown flag", args: []string{"-x"}, wantErr: "flag provided but not defined: -x"},
		{name: "output with several files", args: []string{"-o", "x.kt", "a.swift", "b.swift"}, wantErr: "single input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRunStdin(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		stdin      string
		wantOut    string
		wantStderr string
		wantErr    bool
	}{
		{
			name:    "translate",
			stdin:   "let xs = [1, 2]\n",
			wantOut: "val xs = listOf(1, 2)\n",
		},
		{
			name:    "brackets",
			args:    []string{"-brackets"},
			stdin:   `let m = ["a": 1]`,
			wantOut: "val m = [\"a\": 1]\n",
		},
		{
			name:       "warnings name stdin",
			stdin:      "let y = x!",
			wantOut:    "val y = x!\n",
			wantStderr: "<stdin>:1:9: warning: ",
		},
		{
			name:    "rewrite",
			args:    []string{"-rewrite"},
			stdin:   "let y = x!",
			wantOut: "val y = x!!\n",
		},
		{
			name:    "strict",
			args:    []string{"-strict"},
			stdin:   "let y = x!",
			wantErr: true,
		},
		{
			name:    "substitution",
			args:    []string{"-s", "listOf=>arrayOf"},
			stdin:   "let xs = [1]",
			wantOut: "val xs = arrayOf(1)\n",
		},
		{
			name:       "verbose",
			args:       []string{"-v"},
			stdin:      "let x = 1",
			wantOut:    "val x = 1\n",
			wantStderr: "kotlinize: <stdin>: 9 B of Swift, 1 lines (10 B) of Kotlin",
		},
		{
			name:       "dump",
			args:       []string{"-d"},
			stdin:      "let y = x!",
			wantStderr: "ast.ForcedValueExpr",
		},
		{
			name:    "syntax error",
			stdin:   "let x = )",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseArgs(tt.args)
			if err != nil {
				t.Fatal(err)
			}
			var stdout, stderr bytes.Buffer
			err = run(opts, strings.NewReader(tt.stdin), &stdout, &stderr)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got output %q", stdout.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := stdout.String(); got != tt.wantOut {
				t.Errorf("stdout = %q, want %q", got, tt.wantOut)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestRunOutputFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{"in.swift": "let x = [1]\n"})
	out := filepath.Join(dir, "out.kt")
	opts, err := parseArgs([]string{"-o", out, filepath.Join(dir, "in.swift")})
	if err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if err := run(opts, nil, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing", stdout.String())
	}
	if got := readFile(t, out); got != "val x = listOf(1)\n" {
		t.Errorf("output file = %q", got)
	}
}

func TestRunBatch(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.swift": "let a = [1]\n",
		"b.swift": "struct B {}\n",
		"c.swift": "let c = )\n",
	})
	paths := []string{
		filepath.Join(dir, "a.swift"),
		filepath.Join(dir, "b.swift"),
		filepath.Join(dir, "c.swift"),
	}
	opts, err := parseArgs(append([]string{"-j2", "-v"}, paths...))
	if err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	err = run(opts, nil, &stdout, &stderr)
	if err == nil || err.Error() != "1 of 3 files failed" {
		t.Errorf("run error = %v, want 1 of 3 files failed", err)
	}
	if got := readFile(t, filepath.Join(dir, "a.kt")); got != "val a = listOf(1)\n" {
		t.Errorf("a.kt = %q", got)
	}
	if got := readFile(t, filepath.Join(dir, "b.kt")); got != "data class B {}\n" {
		t.Errorf("b.kt = %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "c.kt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("c.kt was written for a file that failed to parse")
	}
	for _, want := range []string{"parse error at " + paths[2], "translated 2 of 3 files, 2 lines"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr = %q, want it to contain %q", stderr.String(), want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a.swift", "a.kt"},
		{"dir/b.swift", "dir/b.kt"},
		{"noext", "noext.kt"},
		{"x.y.swift", "x.y.kt"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.in); got != tt.want {
			t.Errorf("outputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// scripted replays lines as if typed at the prompt.
type scripted struct {
	lines   []string
	prompts []string
}

func (s *scripted) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func TestReadUnit(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		want        string
		wantOK      bool
		wantPrompts []string
	}{
		{
			name:        "single line",
			lines:       []string{"let x = 1"},
			want:        "let x = 1",
			wantOK:      true,
			wantPrompts: []string{promptMain},
		},
		{
			name:        "continued until closed",
			lines:       []string{"class A {", "  var x = 1", "}", "ignored"},
			want:        "class A {\n  var x = 1\n}",
			wantOK:      true,
			wantPrompts: []string{promptMain, promptCont, promptCont},
		},
		{
			name:        "syntax error ends the unit",
			lines:       []string{"let x = )", "ignored"},
			want:        "let x = )",
			wantOK:      true,
			wantPrompts: []string{promptMain},
		},
		{
			name:        "end of input",
			lines:       nil,
			wantOK:      false,
			wantPrompts: []string{promptMain},
		},
		{
			name:        "end of input mid unit",
			lines:       []string{"func f() {"},
			wantOK:      false,
			wantPrompts: []string{promptMain, promptCont},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scripted{lines: tt.lines}
			got, ok := readUnit(p, promptMain, promptCont)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("readUnit = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
			if !reflect.DeepEqual(p.prompts, tt.wantPrompts) {
				t.Errorf("prompts = %q, want %q", p.prompts, tt.wantPrompts)
			}
		})
	}
}

type abortOnce struct{ done bool }

func (a *abortOnce) Prompt(string) (string, error) {
	if !a.done {
		a.done = true
		return "", errors.New("prompt aborted")
	}
	return "", io.EOF
}

func TestReadUnitAborted(t *testing.T) {
	got, ok := readUnit(&abortOnce{}, promptMain, promptCont)
	if !ok || got != "" {
		t.Errorf("readUnit = %q, %v, want empty unit", got, ok)
	}
}
