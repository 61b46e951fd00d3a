package soymsg

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/robfig/soyc/errortypes"
	"github.com/robfig/soyc/parse"
)

// Extract builds the message for a {msg ...}...{/msg} token run, both
// commands included. id is the message's sequence number and resolve
// compiles a template expression to JavaScript.
//
// Only literal text and print commands may appear inside a message.
func Extract(id int, run []*parse.Token, resolve func(expr string) string) (*Message, error) {
	if len(run) < 2 {
		return nil, errortypes.New(errortypes.UnterminatedBlock, "", 0, "message has no closing {/msg}")
	}
	var open = run[0]
	var attrs = parse.Attributes(open.Text)
	var msg = &Message{
		ID:      id,
		Meaning: attrs["meaning"],
		Desc:    attrs["desc"],
		File:    open.File,
		Line:    open.Line,
	}

	var text strings.Builder
	var synthesized = 0
	for _, tok := range run[1 : len(run)-1] {
		switch tok.Kind {
		case parse.KindCode:
			text.WriteString(tok.Text)
		case parse.KindCommand:
			var cmd = tok.Command()
			if cmd.Closing || (cmd.Name != "" && cmd.Name != "print") {
				return nil, errortypes.New(errortypes.Syntax, tok.File, tok.Line,
					"command %s not supported in msg", tok.Text)
			}
			if cmd.Expr == "" {
				return nil, errortypes.New(errortypes.Syntax, tok.File, tok.Line,
					"%s requires an expression", tok.Text)
			}
			var name = VarName(cmd.Expr)
			if name == "" {
				synthesized++
				name = "var_" + strconv.Itoa(synthesized)
			}
			msg.Params.Set(name, resolve(cmd.Expr))
			text.WriteString("{$" + name + "}")
		default:
			return nil, errortypes.New(errortypes.Syntax, tok.File, tok.Line,
				"unexpected %v in msg", tok.Kind)
		}
	}

	msg.Text = text.String()
	msg.replaceBreaks()
	msg.replaceLinks()
	return msg, nil
}

var bareVariable = regexp.MustCompile(`^\$[a-zA-Z0-9_]+$`)

// VarName returns the placeholder name for a printed expression: the
// lowerCamelCase form of a bare variable ($first_name → firstName), or the
// empty string for anything else.
func VarName(expr string) string {
	if !bareVariable.MatchString(expr) {
		return ""
	}
	var name = expr[1:]
	var result = make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		if i > 0 && name[i] == '_' && i+1 < len(name) {
			result = append(result, toUpper(name[i+1]))
			i++
			continue
		}
		result = append(result, name[i])
	}
	return string(result)
}

func toUpper(ch byte) byte {
	if 'a' <= ch && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}

const (
	lineBreak = "<br>"
	endAnchor = "</a>"
)

// replaceBreaks replaces every <br> with the {$break} placeholder.
func (m *Message) replaceBreaks() {
	if !strings.Contains(m.Text, lineBreak) {
		return
	}
	m.Text = strings.ReplaceAll(m.Text, lineBreak, "{$break}")
	m.Params.Set("break", parse.QuoteString(lineBreak))
}

var anchorRegex = regexp.MustCompile(`<a(?:\s[^>]*)?>`)

// replaceLinks replaces each opening anchor tag with {$startLink} (or
// {$startLink_N} when there are several) and the first </a> after it with
// {$endLink}.
func (m *Message) replaceLinks() {
	var count = len(anchorRegex.FindAllStringIndex(m.Text, -1))
	for i := 1; ; i++ {
		var loc = anchorRegex.FindStringIndex(m.Text)
		if loc == nil {
			return
		}
		var tag = m.Text[loc[0]:loc[1]]
		var key = "startLink"
		if count > 1 {
			key += "_" + strconv.Itoa(i)
		}
		var ph = "{$" + key + "}"
		m.Text = m.Text[:loc[0]] + ph + m.Text[loc[1]:]

		var rest = loc[0] + len(ph)
		if end := strings.Index(m.Text[rest:], endAnchor); end != -1 {
			end += rest
			m.Text = m.Text[:end] + "{$endLink}" + m.Text[end+len(endAnchor):]
		}

		m.Params.Set(key, m.linkValue(tag))
		m.Params.Set("endLink", parse.QuoteString(endAnchor))
	}
}

// linkValue returns a JavaScript expression evaluating to the anchor tag.
// Placeholders inside the tag are spliced in as their values, and dropped
// from the message if the text no longer refers to them.
func (m *Message) linkValue(tag string) string {
	var (
		parts   []string
		spliced []string
		pos     = 0
	)
	for _, loc := range phRegex.FindAllStringSubmatchIndex(tag, -1) {
		var name = tag[loc[2]:loc[3]]
		var value, ok = m.Params.Get(name)
		if !ok {
			continue
		}
		parts = append(parts, parse.QuoteString(tag[pos:loc[0]]), value)
		spliced = append(spliced, name)
		pos = loc[1]
	}
	parts = append(parts, parse.QuoteString(tag[pos:]))

	for _, name := range spliced {
		if !strings.Contains(m.Text, "{$"+name+"}") {
			m.Params.Delete(name)
		}
	}
	return strings.Join(parts, " + ")
}
