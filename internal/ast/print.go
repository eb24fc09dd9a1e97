package ast

import (
	"reflect"
	"strings"

	"modernc.org/strutil"

	"github.com/kotlinize/kotlinize/internal/token"
)

// dumpHooks keep dumps readable: positions print as line:col and the raw
// source and line table of a File are omitted.
var dumpHooks = strutil.PrettyPrintHooks{
	reflect.TypeOf(token.Position{}): func(f strutil.Formatter, v interface{}, prefix, suffix string) {
		p := v.(token.Position)
		if !p.IsValid() {
			return
		}
		f.Format("%s%d:%d"+escapePercent(suffix), prefix, p.Line, p.Column)
	},
	reflect.TypeOf([]byte(nil)): func(f strutil.Formatter, v interface{}, prefix, suffix string) {
		f.Format("%s<%d bytes>"+escapePercent(suffix), prefix, len(v.([]byte)))
	},
	reflect.TypeOf((*token.Lines)(nil)): func(strutil.Formatter, interface{}, string, string) {},
	reflect.TypeOf(token.ILLEGAL): func(f strutil.Formatter, v interface{}, prefix, suffix string) {
		f.Format("%s%s"+escapePercent(suffix), prefix, v.(token.Token).String())
	},
}

// Dump returns a pretty-printed representation of the node and its
// children, suitable for debugging. Zero-valued fields are omitted.
func Dump(node Node) string {
	if isNil(node) {
		return "<nil>\n"
	}
	return strutil.PrettyString(node, "", "\n", dumpHooks)
}

func escapePercent(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}
