package kotlinize

import (
	"errors"
	"fmt"

	"github.com/kotlinize/kotlinize/internal/parser"
	"github.com/kotlinize/kotlinize/internal/semantic"
)

// ParseError represents a syntax error in Swift source code.
type ParseError struct {
	Filename string // Name given to Parse or TranslateFile
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Message  string // Error description

	// Incomplete reports that the source ended early, so that more input
	// could make it parse (an unclosed brace or string, for example).
	Incomplete bool
}

func (e *ParseError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("parse error at %s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// newParseError converts a parser error to the public type.
func newParseError(filename string, err error) *ParseError {
	var pe *parser.ParseError
	if el, ok := err.(parser.ErrorList); ok && len(el) > 0 {
		pe = el[0]
	} else if !errors.As(err, &pe) {
		return &ParseError{Filename: filename, Message: err.Error()}
	}
	return &ParseError{
		Filename:   filename,
		Line:       pe.Pos.Line,
		Column:     pe.Pos.Column,
		Message:    pe.Message,
		Incomplete: pe.Incomplete,
	}
}

// IOError represents a failure to read or write a file.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Construct is one occurrence of a construct without a Kotlin spelling.
type Construct struct {
	Line    int
	Column  int
	Kind    string // e.g. "forced unwrap", "try? expression"
	Message string
}

// UnsupportedError is returned under the Strict policy when a unit
// contains constructs without a Kotlin spelling.
type UnsupportedError struct {
	Filename   string
	Constructs []Construct // In the order they were found
}

func (e *UnsupportedError) Error() string {
	if len(e.Constructs) == 0 {
		return "unsupported constructs"
	}
	c := e.Constructs[0]
	msg := fmt.Sprintf("unsupported construct at %s:%d:%d: %s", e.Filename, c.Line, c.Column, c.Message)
	if n := len(e.Constructs) - 1; n > 0 {
		msg += fmt.Sprintf(" (and %d more)", n)
	}
	return msg
}

func newUnsupportedError(filename string, list semantic.ErrorList) *UnsupportedError {
	e := &UnsupportedError{Filename: filename}
	for _, se := range list {
		e.Constructs = append(e.Constructs, Construct{
			Line:    se.Pos.Line,
			Column:  se.Pos.Column,
			Kind:    se.Construct.String(),
			Message: se.Message,
		})
	}
	return e
}

// ConfigError represents an invalid Config field.
type ConfigError struct {
	Field   string // e.g. "Unsupported", "Rewrites[2]"
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Field, e.Message)
}

// IsIncomplete reports whether err is a ParseError caused by source that
// ended early. Interactive callers use it to keep reading lines.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Incomplete
}
