// Package parser provides a recursive descent parser for the Swift subset
// described by package ast.
package parser

import (
	"fmt"

	"github.com/kotlinize/kotlinize/internal/token"
)

// ParseError is a syntax error at a source position.
type ParseError struct {
	Pos     token.Position
	Message string
	Got     string // Offending token, for "expected" errors
	Want    string // What the grammar allowed there

	// Incomplete is set when the error was caused by running out of input,
	// so that appending more source could make the unit parse.
	Incomplete bool
}

func (e *ParseError) Error() string {
	if !e.Pos.IsValid() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// ErrorList collects the errors of one parse. The parser stops at the
// first error, so in practice the list holds a single entry; speculative
// parses truncate it back when they rewind.
type ErrorList []*ParseError

func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
}

// Err returns el as an error, or nil if it is empty.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

func errorf(pos token.Position, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// expectedError reports that want was expected where got was found.
func expectedError(pos token.Position, want, got string) *ParseError {
	return &ParseError{
		Pos:     pos,
		Message: "expected " + want + ", got " + got,
		Want:    want,
		Got:     got,
	}
}
