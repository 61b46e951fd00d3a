// Package soydoc parses template doc comments.
//
// A doc comment precedes a template declaration and documents its data:
//
//	/**
//	 * Greets the user.
//	 * @param {string} name The user's name.
//	 * @param {Array.<my.ns.Item>} items
//	 */
//
// The compiler only depends on the Parser interface, so any parser returning
// a Doc may be substituted.
package soydoc

import (
	"fmt"
	"strings"
)

// Doc is the structured content of a doc comment.
type Doc struct {
	Description string  // free text before the first annotation
	Params      []Param // @param annotations, in order
}

// Param is a single @param annotation.
type Param struct {
	Name     string
	Type     string // type expression without braces; empty if not given
	Optional bool   // declared with @param?
	Desc     string
}

// Parser interprets the body of a doc comment.
type Parser interface {
	Parse(body string) (*Doc, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(body string) (*Doc, error)

func (f ParserFunc) Parse(body string) (*Doc, error) {
	return f(body)
}

// Default is the parser used when none is configured.
var Default Parser = ParserFunc(Parse)

// Parse parses a doc comment body, i.e. the text between "/**" and "*/".
// Leading whitespace and asterisks are ignored on every line. Annotations
// other than @param are skipped.
func Parse(body string) (*Doc, error) {
	var (
		doc         = &Doc{}
		description []string
		seenAnnot   = false
	)
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "*"))
		switch {
		case strings.HasPrefix(line, "@param"):
			seenAnnot = true
			param, ok, err := parseParam(line)
			if err != nil {
				return nil, err
			}
			if ok {
				doc.Params = append(doc.Params, param)
			}
		case strings.HasPrefix(line, "@"):
			seenAnnot = true
		case !seenAnnot:
			description = append(description, line)
		}
	}
	doc.Description = strings.TrimSpace(strings.Join(description, "\n"))
	return doc, nil
}

// parseParam parses "@param[?] [{Type}] name [description]".
// It returns false if the line only starts with "@param", e.g. "@parameter".
func parseParam(line string) (Param, bool, error) {
	var param Param
	var rest = line[len("@param"):]
	if strings.HasPrefix(rest, "?") {
		param.Optional = true
		rest = rest[1:]
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return param, false, nil
	}
	rest = strings.TrimSpace(rest)

	if strings.HasPrefix(rest, "{") {
		var end = closingBrace(rest)
		if end == -1 {
			return param, false, fmt.Errorf("unterminated type in %q", line)
		}
		param.Type = strings.TrimSpace(rest[1:end])
		rest = strings.TrimSpace(rest[end+1:])
	}

	var fields = strings.SplitN(rest, " ", 2)
	param.Name = fields[0]
	if param.Name == "" {
		return param, false, fmt.Errorf("missing parameter name in %q", line)
	}
	if len(fields) == 2 {
		param.Desc = strings.TrimSpace(fields[1])
	}
	return param, true, nil
}

// closingBrace returns the index of the brace closing the one at s[0],
// allowing nested record types such as {{a: string}}.
func closingBrace(s string) int {
	var depth = 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
