// kotlinize - Swift to Kotlin source translator
//
// Translates Swift source files, or standard input, into Kotlin source.
// Uses manual argument parsing so flags may carry their value without a
// space (-j4, -oOut.kt), like the other tools of this family.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/peterh/liner"

	"github.com/kotlinize/kotlinize"
)

// version is set by GoReleaser at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	shortUsage = "usage: kotlinize [-o out] [-j N] [-strict|-rewrite] [-brackets] [-s pat=>repl] [-d] [-v] [-i] [file ...]"
	longUsage  = `Translation:
  -o file           write the Kotlin output to file (single input only)
  -j N              translate up to N files concurrently (default 1)
  -strict           fail on constructs with no Kotlin spelling
  -rewrite          rewrite such constructs to the nearest Kotlin idiom
  -brackets         keep non-empty dictionary literals as [k: v]
  -s pat=>repl      regular expression substitution on the output
                    (multiple allowed, applied in order)

With several files, each one is written next to its source with a .kt
extension. With none, standard input is translated to standard output.

Debugging arguments:
  -d                print the parsed syntax tree to stderr and exit
  -v                print a summary of the translation to stderr

Other:
  -i                interactive mode
  -h, --help        show this help message
  -version          show kotlinize version and exit
`
)

const (
	promptMain = "swift> "
	promptCont = "  ...> "
	stdinName  = "<stdin>"
)

// options holds the parsed command line.
type options struct {
	output      string
	workers     int
	policy      kotlinize.Policy
	brackets    bool
	rewrites    []kotlinize.Substitution
	dump        bool
	verbose     bool
	interactive bool
	help        bool
	version     bool
	files       []string
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		errorExit(err)
	}
	switch {
	case opts.help:
		fmt.Printf("kotlinize %s - Swift to Kotlin translator\n\n%s\n\n%s", version, shortUsage, longUsage)
		return
	case opts.version:
		fmt.Printf("kotlinize version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		return
	case opts.interactive:
		if err := interactive(opts); err != nil {
			errorExit(err)
		}
		return
	}

	stdout := bufio.NewWriter(os.Stdout)
	err = run(opts, os.Stdin, stdout, os.Stderr)
	if ferr := stdout.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		errorExit(err)
	}
}

// parseArgs parses the arguments following the program name.
//
//nolint:gocyclo // CLI argument parsing is inherently branchy
func parseArgs(args []string) (*options, error) {
	opts := &options{workers: 1}
	var strict, rewrite bool

	var i int
	for i = 0; i < len(args); i++ {
		// Stop on explicit end of args or first arg not prefixed with "-"
		arg := args[i]
		if arg == "--" {
			i++
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}

		// Flags taking a value accept it attached (-j4) or as the next arg.
		value := func(name string) (string, error) {
			if len(arg) > len(name) {
				return arg[len(name):], nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("flag needs an argument: %s", name)
			}
			i++
			return args[i], nil
		}

		switch arg {
		case "-strict":
			strict = true
		case "-rewrite":
			rewrite = true
		case "-brackets":
			opts.brackets = true
		case "-d":
			opts.dump = true
		case "-v":
			opts.verbose = true
		case "-i":
			opts.interactive = true
		case "-h", "--help":
			opts.help = true
		case "-version", "--version":
			opts.version = true
		default:
			switch {
			case strings.HasPrefix(arg, "-o"):
				v, err := value("-o")
				if err != nil {
					return nil, err
				}
				opts.output = v
			case strings.HasPrefix(arg, "-j"):
				v, err := value("-j")
				if err != nil {
					return nil, err
				}
				n, err := strconv.Atoi(v)
				if err != nil || n < 1 {
					return nil, fmt.Errorf("invalid number of workers: %s", v)
				}
				opts.workers = n
			case strings.HasPrefix(arg, "-s"):
				v, err := value("-s")
				if err != nil {
					return nil, err
				}
				pattern, replacement, ok := strings.Cut(v, "=>")
				if !ok {
					return nil, fmt.Errorf("invalid substitution: %s (expected pattern=>replacement)", v)
				}
				opts.rewrites = append(opts.rewrites, kotlinize.Substitution{Pattern: pattern, Replacement: replacement})
			default:
				return nil, fmt.Errorf("flag provided but not defined: %s", arg)
			}
		}
	}
	opts.files = args[i:]

	switch {
	case strict && rewrite:
		return nil, errors.New("-strict and -rewrite are mutually exclusive")
	case strict:
		opts.policy = kotlinize.Strict
	case rewrite:
		opts.policy = kotlinize.Rewrite
	}
	if opts.output != "" && len(opts.files) > 1 {
		return nil, errors.New("-o needs a single input file")
	}
	return opts, nil
}

// config builds the translation configuration for opts.
func (o *options) config(stderr io.Writer) *kotlinize.Config {
	cfg := &kotlinize.Config{
		Unsupported: o.policy,
		Rewrites:    o.rewrites,
		Stderr:      stderr,
	}
	if o.brackets {
		cfg.Dictionaries = kotlinize.DictionaryBracketed
	}
	return cfg
}

// run executes a non-interactive invocation.
func run(opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	if opts.dump {
		return dump(opts, stdin, stderr)
	}
	if len(opts.files) > 1 {
		return batch(opts, stderr)
	}

	name, src, err := readInput(opts.files, stdin)
	if err != nil {
		return err
	}
	cfg := opts.config(stderr)
	cfg.Filename = name
	out, err := kotlinize.TranslateText(src, cfg)
	if err != nil {
		return err
	}

	if opts.output != "" {
		err = writeFile(opts.output, out)
	} else {
		_, err = io.WriteString(stdout, out)
	}
	if err != nil {
		return err
	}
	if opts.verbose {
		fmt.Fprintf(stderr, "kotlinize: %s: %s of Swift, %s lines (%s) of Kotlin\n",
			name, humanize.Bytes(uint64(len(src))), humanize.Comma(int64(strings.Count(out, "\n"))),
			humanize.Bytes(uint64(len(out))))
	}
	return nil
}

// batch translates several files, writing each next to its source.
func batch(opts *options, stderr io.Writer) error {
	tr, err := kotlinize.NewTranslator(opts.config(stderr))
	if err != nil {
		return err
	}

	var failed, lines, size int
	for _, res := range tr.TranslateFiles(context.Background(), opts.files, opts.workers) {
		err := res.Err
		if err == nil {
			err = writeFile(outputPath(res.Path), res.Kotlin)
		}
		if err != nil {
			fmt.Fprintf(stderr, "kotlinize: %v\n", err)
			failed++
			continue
		}
		lines += strings.Count(res.Kotlin, "\n")
		size += len(res.Kotlin)
	}

	if opts.verbose {
		fmt.Fprintf(stderr, "kotlinize: translated %s of %s files, %s lines (%s) of Kotlin\n",
			humanize.Comma(int64(len(opts.files)-failed)), humanize.Comma(int64(len(opts.files))),
			humanize.Comma(int64(lines)), humanize.Bytes(uint64(size)))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(opts.files))
	}
	return nil
}

// dump prints the syntax tree of the input to stderr.
func dump(opts *options, stdin io.Reader, stderr io.Writer) error {
	if len(opts.files) > 1 {
		return errors.New("-d needs a single input")
	}
	name, src, err := readInput(opts.files, stdin)
	if err != nil {
		return err
	}
	u, err := kotlinize.Parse(name, src)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stderr, u.Dump())
	return err
}

// readInput reads the single named file, or stdin when there is none
// or it is "-".
func readInput(files []string, stdin io.Reader) (name, src string, err error) {
	if len(files) == 0 || files[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", &kotlinize.IOError{Op: "read", Path: stdinName, Err: err}
		}
		return stdinName, string(b), nil
	}
	b, err := os.ReadFile(files[0])
	if err != nil {
		return "", "", &kotlinize.IOError{Op: "read", Path: files[0], Err: err}
	}
	return files[0], string(b), nil
}

// outputPath returns the .kt path written for a batch input.
func outputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".kt"
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &kotlinize.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// interactive reads Swift units from the terminal and prints each
// translation. A unit ends at the first line where the accumulated input
// parses, or fails to parse for a reason other than running out of input.
func interactive(opts *options) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	cfg := opts.config(os.Stderr)
	cfg.Filename = stdinName
	fmt.Printf("kotlinize %s interactive mode; Ctrl-D exits\n", version)
	for {
		src, ok := readUnit(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		out, err := kotlinize.TranslateText(src, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "kotlinize: %v\n", err)
			continue
		}
		fmt.Print(out)
	}
}

// prompter is the part of *liner.State used by readUnit.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// readUnit gathers lines until they form a complete unit. It reports
// false at end of input. An aborted prompt discards the pending lines.
func readUnit(p prompter, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		pr := prompt
		if b.Len() > 0 {
			pr = cont
		}
		line, err := p.Prompt(pr)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := kotlinize.Parse(stdinName, src); err != nil && kotlinize.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

// errorExit prints error and exits with code 1
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "kotlinize: %v\n", err)
	os.Exit(1)
}
