package soyjs

import (
	"errors"
	"strings"

	"github.com/robfig/soyc/errortypes"
	"github.com/robfig/soyc/parse"
	"github.com/robfig/soyc/soydoc"
)

// compileDoc rewrites a template's doc comment into JSDoc for the generated
// function, requiring the documented parameter types.
func (c *Compiler) compileDoc(tok *parse.Token) {
	if len(c.open) > 0 {
		c.errorf(errortypes.Syntax, "unexpected doc comment inside {%s}", c.open[len(c.open)-1].name)
	}
	if len(tok.Text) < len("/***/") || !strings.HasPrefix(tok.Text, "/**") || !strings.HasSuffix(tok.Text, "*/") {
		c.errorf(errortypes.Syntax, "malformed doc comment %v", tok)
	}
	var doc, err = c.docParser.Parse(tok.Text[2 : len(tok.Text)-2])
	if err != nil {
		c.errorf(errortypes.Syntax, "doc comment: %v", err)
	}

	c.jsln("/**")
	if doc.Description != "" {
		for _, line := range strings.Split(doc.Description, "\n") {
			if line == "" {
				c.jsln(" *")
				continue
			}
			c.jsln(" * ", line)
		}
	}
	var dataType = "!Object"
	if len(doc.Params) > 0 {
		var fields = make([]string, len(doc.Params))
		for i, param := range doc.Params {
			fields[i] = param.Name + ": " + c.paramType(param)
		}
		dataType = "{ " + strings.Join(fields, ", ") + " }"
	}
	c.jsln(" * @param {", dataType, "} data Data to map to template variables.")
	c.jsln(" * @param {!Object.<string, function(string): string>} _helpers Helper functions.")
	c.jsln(" * @return {string} Template rendering.")
	c.jsln(" */")
}

// paramType returns the record field type of a documented parameter and
// requires the types it refers to.
func (c *Compiler) paramType(param soydoc.Param) string {
	if param.Type == "" {
		return "*"
	}
	var types, err = parseCompositeType(param.Type, c.known)
	if err != nil {
		var e *errortypes.Error
		if errors.As(err, &e) {
			c.errorf(e.Kind, "@param %s: %s", param.Name, e.Msg)
		}
		panic(err)
	}
	for _, name := range types {
		c.require(name)
	}
	if param.Optional {
		return "(" + param.Type + "|undefined)"
	}
	return param.Type
}
