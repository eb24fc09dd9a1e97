// Package semantic finds the constructs of a parsed unit that the Kotlin
// renderer can only copy through.
//
// The checker reports two classes of findings:
//   - Unsupported constructs: forced unwraps, optional chains, try forms,
//     forced casts, #keyPath, #selector and key-path literals. They are
//     emitted verbatim and do not compile as Kotlin.
//   - Lossy lowerings: extension members that are discarded and
//     fallthrough, which Kotlin's when has no counterpart for.
//
// Unsupported constructs are errors under the strict policy and warnings
// otherwise. Lossy lowerings are always warnings.
package semantic

import (
	"fmt"
	"strings"

	"github.com/kotlinize/kotlinize/internal/token"
)

// Construct classifies an unsupported construct.
type Construct uint8

const (
	ForcedUnwrap Construct = iota
	OptionalChain
	Try
	ForcedTry
	OptionalTry
	ForcedCast
	KeyPath
	Selector
)

var constructNames = [...]string{
	ForcedUnwrap:  "forced unwrap",
	OptionalChain: "optional chaining",
	Try:           "try expression",
	ForcedTry:     "try! expression",
	OptionalTry:   "try? expression",
	ForcedCast:    "forced cast",
	KeyPath:       "key-path literal",
	Selector:      "selector literal",
}

func (c Construct) String() string {
	if int(c) < len(constructNames) {
		return constructNames[c]
	}
	return fmt.Sprintf("Construct(%d)", c)
}

// Error represents an unsupported construct with source location.
type Error struct {
	Pos       token.Position
	Construct Construct
	Message   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Warning represents a non-fatal finding.
type Warning struct {
	Pos     token.Position
	Message string
}

// String returns the warning as a formatted string.
func (w *Warning) String() string {
	return fmt.Sprintf("%s: warning: %s", w.Pos, w.Message)
}

// ErrorList is a collection of unsupported-construct errors.
type ErrorList []*Error

// Add appends an error to the list.
func (el *ErrorList) Add(pos token.Position, c Construct, format string, args ...any) {
	*el = append(*el, &Error{
		Pos:       pos,
		Construct: c,
		Message:   fmt.Sprintf(format, args...),
	})
}

// Err returns an error if the list is non-empty, nil otherwise.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

// Error implements the error interface for ErrorList.
func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		var sb strings.Builder
		sb.WriteString(el[0].Error())
		for _, e := range el[1:] {
			sb.WriteByte('\n')
			sb.WriteString(e.Error())
		}
		return sb.String()
	}
}

// Warnings converts every error to a warning with the same position and
// message, for policies that emit unsupported constructs anyway.
func (el ErrorList) Warnings() WarningList {
	wl := make(WarningList, len(el))
	for i, e := range el {
		wl[i] = &Warning{Pos: e.Pos, Message: e.Message}
	}
	return wl
}

// WarningList is a collection of warnings.
type WarningList []*Warning

// Add appends a warning to the list.
func (wl *WarningList) Add(pos token.Position, format string, args ...any) {
	*wl = append(*wl, &Warning{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	})
}

// Messages for unsupported constructs; %s is the construct's source text.
const (
	errForcedUnwrap  = "forced unwrap %s is not valid Kotlin"
	errOptionalChain = "optional chaining %s is not valid Kotlin"
	errTry           = "%s has no Kotlin equivalent"
	errForcedCast    = "forced cast %s is not valid Kotlin"
	errKeyPath       = "key-path literal %s is not valid Kotlin"
	errSelector      = "selector literal %s is not valid Kotlin"
)

// Warning messages.
const (
	warnDroppedMember = "extension of %s drops %s"
	warnFallthrough   = "fallthrough has no Kotlin equivalent"
)
