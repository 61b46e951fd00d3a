package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize trims the token text in place and returns the tokens that are
// left non-empty, in their original order.
//
//   - in code tokens, whitespace runs that contain a newline are removed and
//     all other whitespace runs become a single space.
//   - in every token, leading and trailing newlines are trimmed.
//
// Normalizing already normalized tokens changes nothing.
func Normalize(tokens []*Token) []*Token {
	var result = tokens[:0:0]
	for _, tok := range tokens {
		if tok.Kind == KindCode {
			tok.Text = collapseSpace(tok.Text)
		}
		tok.Text = strings.Trim(tok.Text, "\n")
		if tok.Text != "" {
			result = append(result, tok)
		}
	}
	return result
}

// collapseSpace removes formatting whitespace (any run including a line
// break) and collapses intra-line spacing to one space.
func collapseSpace(s string) string {
	var (
		result      = make([]byte, 0, len(s))
		inSpace     = false
		seenNewline = false
	)
	for pos := 0; pos < len(s); {
		var r, width = utf8.DecodeRuneInString(s[pos:])
		if unicode.IsSpace(r) {
			inSpace = true
			seenNewline = seenNewline || r == '\n'
			pos += width
			continue
		}
		if inSpace && !seenNewline {
			result = append(result, ' ')
		}
		inSpace, seenNewline = false, false
		result = append(result, s[pos:pos+width]...)
		pos += width
	}
	if inSpace && !seenNewline {
		result = append(result, ' ')
	}
	return string(result)
}
