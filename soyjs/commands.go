package soyjs

import (
	"regexp"
	"strings"

	"github.com/robfig/soyc/errortypes"
	"github.com/robfig/soyc/parse"
)

// printFilter strips every HTML tag from the printed value except a, b and
// strong.
const printFilter = `.replace(/<\/?([^>\s\/]*)[^>]*>/g, function (tag, name) { ` +
	`return /^(a|b|strong)$/i.test(name) ? tag : ""; })`

var (
	templateName = regexp.MustCompile(`^[a-zA-Z_$][\w$]*(\.[a-zA-Z_$][\w$]*)*$`)
	loopVar      = regexp.MustCompile(`^\$[a-zA-Z]\w*$`)
	variable     = regexp.MustCompile(`\$([a-zA-Z]\w*)`)
)

func (c *Compiler) compileCommandStart(cmd *parse.Command) {
	var name = cmd.Name
	if name == "" {
		name = "print"
	}
	switch name {
	case "template":
		c.visitTemplate(cmd.Expr)
	case "if":
		c.jsln("if (", c.resolve(c.expr(cmd)), ") {")
		c.push("if")
	case "elseif":
		c.continueIf(cmd)
		c.jsln("} else if (", c.resolve(c.expr(cmd)), ") {")
	case "else":
		c.continueIf(cmd)
		if cmd.Expr != "" {
			c.errorf(errortypes.Syntax, "{else} does not accept expressions")
		}
		c.jsln("} else {")
	case "foreach":
		c.visitForeach(cmd.Expr)
	case "print":
		c.jsln("rendering += String(", c.resolve(c.expr(cmd)), ")", printFilter, ";")
	case "printWithBlessFromDevil", "dangerousPrint":
		c.jsln("rendering += ", c.resolve(c.expr(cmd)), ";")
	case "dump":
		var expr = c.expr(cmd)
		c.jsln("console.debug(", parse.QuoteString(`"`+expr+`"  =>`), ", ", c.resolve(expr), ");")
	case "debugger":
		c.jsln("debugger;")
	default:
		c.errorf(errortypes.Syntax, "unknown command %s", c.tok.Text)
	}
}

// expr returns the command's expression, which must be present.
func (c *Compiler) expr(cmd *parse.Command) string {
	if cmd.Expr == "" {
		c.errorf(errortypes.Syntax, "%s requires an expression", c.tok.Text)
	}
	return cmd.Expr
}

// continueIf checks that an {elseif} or {else} continues an open {if}.
func (c *Compiler) continueIf(cmd *parse.Command) {
	if len(c.open) == 0 || c.open[len(c.open)-1].name != "if" {
		c.errorf(errortypes.Syntax, "{%s} outside of {if}", cmd.Name)
	}
}

func (c *Compiler) visitTemplate(name string) {
	if len(c.open) > 0 {
		c.errorf(errortypes.Syntax, "{template} inside {%s}", c.open[len(c.open)-1].name)
	}
	if !templateName.MatchString(name) {
		c.errorf(errortypes.Syntax, "invalid template name %q", name)
	}
	if ns := namespace(name); ns != "" {
		c.provide(ns)
	}
	c.jsln(name, ` = function (data, _helpers) { var rendering = "";`)
	c.push("template")
}

// visitForeach compiles "{foreach $item in $list}".
func (c *Compiler) visitForeach(expr string) {
	var parts = strings.Fields(expr)
	switch {
	case len(parts) == 0:
		c.errorf(errortypes.Syntax, "{foreach} requires an expression")
	case !loopVar.MatchString(parts[0]):
		c.errorf(errortypes.Syntax, "{foreach} expecting a variable name but got %q", parts[0])
	case len(parts) < 2 || parts[1] != "in":
		c.errorf(errortypes.Syntax, "{foreach} expecting \"in\" after %s", parts[0])
	case len(parts) != 3 || !strings.HasPrefix(parts[2], "$"):
		c.errorf(errortypes.Syntax, "{foreach} expecting a list variable in %q", expr)
	}

	var list = c.resolve(parts[2])
	var item = c.scope.pushForEach(parts[0][1:])
	c.jsln("if (", list, ") { ", c.forEach, "(", list, ", function (", item, ", index) {")
	c.push("foreach")
}

func (c *Compiler) compileCommandEnd(cmd *parse.Command) {
	if cmd.Trailing != "" {
		c.errorf(errortypes.Syntax, "closing commands do not accept expressions: %s", c.tok.Text)
	}
	if len(c.open) == 0 {
		c.errorf(errortypes.Syntax, "unexpected closing command {/%s}", cmd.Name)
	}
	var top = c.open[len(c.open)-1].name
	if cmd.Name != top {
		c.errorf(errortypes.Syntax, "unexpected closing command {/%s}, {%s} has not been closed", cmd.Name, top)
	}

	c.open = c.open[:len(c.open)-1]
	switch top {
	case "foreach":
		c.scope.pop()
		c.jsln("}); }")
	case "if":
		c.jsln("}")
	case "template":
		c.jsln("return rendering; };")
	}
}

func (c *Compiler) push(name string) {
	c.open = append(c.open, block{name, c.tok})
}

// resolve rewrites every $name in the expression to the loop variable of
// that name, if one is in scope, or to data.name.
func (c *Compiler) resolve(expr string) string {
	return variable.ReplaceAllStringFunc(expr, func(match string) string {
		var name = match[1:]
		if local := c.scope.lookup(name); local != "" {
			return local
		}
		return "data." + name
	})
}
