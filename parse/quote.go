package parse

import (
	"fmt"
	"strings"
)

var escapes = map[rune]rune{
	'\\': '\\',
	'\'': '\'',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\b': 'b',
	'\f': 'f',
}

// QuoteString quotes the given string as a single-quoted JavaScript string
// literal.
func QuoteString(s string) string {
	var q = make([]rune, 1, len(s)+10)
	q[0] = '\''
	for _, ch := range s {
		if seq, ok := escapes[ch]; ok {
			q = append(q, '\\', seq)
			continue
		}
		if ch == '\u2028' || ch == '\u2029' {
			q = append(q, []rune(fmt.Sprintf(`\u%04x`, ch))...)
			continue
		}
		q = append(q, ch)
	}
	return string(append(q, '\''))
}

var doubleQuoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// EscapeDoubleQuoted escapes s for use inside a double-quoted JavaScript
// string literal, including the line terminators a literal cannot span.
func EscapeDoubleQuoted(s string) string {
	return doubleQuoteEscaper.Replace(s)
}
