package parse

import "strings"

// Attributes scans the key="value" pairs of a command, e.g.
//
//	{msg meaning="verb" desc='Label of the "archive" button.'}
//
// Values may be quoted with single or double quotes; a quote preceded by a
// backslash does not end the value and is unescaped. Text that does not
// form a complete pair is ignored.
func Attributes(command string) map[string]string {
	var (
		attrs   = make(map[string]string)
		inKey   = false
		inValue = false
		quote   byte
		key     string
		start   int // start of the pending key or value
		value   strings.Builder
	)
	for pos := 0; pos < len(command); pos++ {
		var ch = command[pos]
		switch {
		case inValue && quote != 0:
			switch {
			case ch == '\\' && pos+1 < len(command) && command[pos+1] == quote:
				value.WriteByte(quote)
				pos++
			case ch == quote:
				attrs[key] = value.String()
				inValue, quote, key = false, 0, ""
			default:
				value.WriteByte(ch)
			}
		case inValue:
			if ch == '"' || ch == '\'' {
				quote = ch
				value.Reset()
			}
		case ch == ' ' || ch == '\t' || ch == '\n':
			inKey = true
			start = pos + 1
		case ch == '=' && inKey:
			key = strings.TrimSpace(command[start:pos])
			inKey, inValue = false, true
		}
	}
	return attrs
}
