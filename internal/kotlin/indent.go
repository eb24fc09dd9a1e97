package kotlin

import "strings"

// Unit is one level of indentation.
const Unit = "  "

// Indent prefixes every line of s, including empty ones, with one Unit.
// Indent("") is Unit.
func Indent(s string) string {
	return Unit + strings.ReplaceAll(s, "\n", "\n"+Unit)
}
