package parse

import "strings"

// Command is the parsed form of a command token.
type Command struct {
	Closing bool   // true for {/name}
	Name    string // the command name; empty for an implicit print, e.g. {$x}
	Expr    string // the argument of an opening command, e.g. "$x in $list"

	// Trailing is whatever a closing command carries between its name and
	// the final "}". It is empty for well-formed closing commands.
	Trailing string
}

// Command parses the token's text as a command. The result is computed once
// and cached on the token. It returns nil for tokens that are not commands.
func (t *Token) Command() *Command {
	if t.Kind != KindCommand {
		return nil
	}
	if t.cmd == nil {
		t.cmd = parseCommand(t.Text)
	}
	return t.cmd
}

// parseCommand splits "{name expr}" or "{/name}" into its parts.
func parseCommand(text string) *Command {
	var cmd = &Command{}
	var pos = 1
	if len(text) > 1 && text[1] == '/' {
		cmd.Closing = true
		pos = 2
	}
	cmd.Name = scanIdent(text, pos)
	pos += len(cmd.Name)

	var rest = ""
	if pos < len(text) {
		rest = text[pos:]
	}
	rest = strings.TrimSuffix(rest, "}")
	if cmd.Closing {
		cmd.Trailing = rest
		return cmd
	}
	// The character after the name separates it from the expression.
	if cmd.Name != "" && rest != "" {
		rest = rest[1:]
	}
	cmd.Expr = strings.TrimLeft(rest, " \t\r\n")
	return cmd
}

// scanIdent returns the identifier ([a-zA-Z][a-zA-Z0-9_]*) starting at pos,
// or the empty string if there is none.
func scanIdent(s string, pos int) string {
	if pos >= len(s) || !isLetter(s[pos]) {
		return ""
	}
	var end = pos + 1
	for end < len(s) && isWordChar(s[end]) {
		end++
	}
	return s[pos:end]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isWordChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}
