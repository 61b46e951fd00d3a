package soyjs

import (
	"strconv"
	"strings"

	"github.com/robfig/soyc/errortypes"
	"github.com/robfig/soyc/parse"
	"github.com/robfig/soyc/soymsg"
)

// compileMsg collects the tokens up to the closing {/msg}, extracts the
// message and declares it with goog.getMsg.
func (c *Compiler) compileMsg(open *parse.Token) {
	var run = []*parse.Token{open}
	for {
		if c.pos >= len(c.tokens) {
			c.tok = open
			c.errorf(errortypes.UnterminatedBlock, "{msg} is never closed")
		}
		var tok = c.nextToken()
		run = append(run, tok)
		if cmd := tok.Command(); cmd != nil && cmd.Name == "msg" {
			if !cmd.Closing {
				c.errorf(errortypes.Syntax, "{msg} inside {msg}")
			}
			if cmd.Trailing != "" {
				c.errorf(errortypes.Syntax, "closing commands do not accept expressions: %s", tok.Text)
			}
			break
		}
	}

	var msg, err = soymsg.Extract(c.msgs, run, c.resolve)
	if err != nil {
		panic(err)
	}
	c.msgs++
	if c.onMessage != nil {
		c.onMessage(msg)
	}
	c.writeMsg(msg)
}

var commentEscaper = strings.NewReplacer("*/", `*\/`, "\n", " ")

// writeMsg writes the message declaration followed by the statement that
// renders it.
func (c *Compiler) writeMsg(msg *soymsg.Message) {
	var name = "MSG_UNNAMED_" + strconv.Itoa(msg.ID)
	c.js("\n")
	c.jsln("/**")
	if msg.Meaning != "" {
		c.jsln(" * @meaning ", commentEscaper.Replace(msg.Meaning))
	}
	if msg.Desc != "" {
		c.jsln(" * @desc ", commentEscaper.Replace(msg.Desc))
	} else {
		c.jsln(" * @desc")
	}
	c.jsln(" */")
	c.jsln("var ", name, " = goog.getMsg(")
	c.jsln("  ", parse.QuoteString(c.msgText(msg)), ",")
	c.indent()
	c.js("  {")
	for i, param := range msg.Params {
		if i > 0 {
			c.js(",\n")
			c.indent()
			c.js("   ")
		}
		c.js(parse.QuoteString(param.Name), ": ", param.Value)
	}
	c.js("});\n")
	c.js("\n")
	c.jsln("rendering += ", name, ";")
}

// msgText returns the translation of the message, if the bundle has one
// using only the message's placeholders, or else its source text.
func (c *Compiler) msgText(msg *soymsg.Message) string {
	if c.messages == nil {
		return msg.Text
	}
	var text, ok = c.messages.Translation(msg.Fingerprint())
	if !ok {
		return msg.Text
	}
	for _, name := range soymsg.Placeholders(text) {
		if _, ok := msg.Params.Get(name); !ok {
			return msg.Text
		}
	}
	return text
}
