// Package codegen renders recorded screen definitions as Python
// functions targeting the uiautomator2 client library. Output is
// deterministic: the same definitions always produce identical text.
package codegen

import (
	"fmt"
	"strings"

	"github.com/devicelab-dev/uiscribe/pkg/script"
)

// PyRepr renders s as a Python string literal the way repr() does:
// single-quoted unless the string contains a single quote and no
// double quote, with backslash escapes for the quote character,
// backslashes, and control characters.
func PyRepr(s string) string {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case rune(quote):
			b.WriteByte('\\')
			b.WriteByte(quote)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(fmt.Sprintf(`\x%02x`, r))
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte(quote)
	return b.String()
}

// selectorArgs renders a selector as uiautomator2 keyword arguments,
// e.g. resourceId='com.app:id/next', text='Next'. Empty selectors
// render as an empty argument list.
func selectorArgs(sel script.Selector) string {
	criteria := sel.Criteria()
	parts := make([]string, 0, len(criteria))
	for _, c := range criteria {
		parts = append(parts, fmt.Sprintf("%s=%s", c.Key, PyRepr(c.Value)))
	}
	return strings.Join(parts, ", ")
}
