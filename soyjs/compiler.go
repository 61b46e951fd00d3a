package soyjs

import (
	"bytes"
	"runtime"
	"strings"

	"github.com/robfig/soyc/errortypes"
	"github.com/robfig/soyc/parse"
	"github.com/robfig/soyc/soydoc"
	"github.com/robfig/soyc/soymsg"
)

// DefaultForEach is the array iteration helper called by {foreach}.
const DefaultForEach = "goog.array.forEach"

// Options for js source generation.
type Options struct {
	// DocParser interprets doc comments. soydoc.Default is used if nil.
	DocParser soydoc.Parser

	// KnownTypes lists the types that are available without a goog.require.
	// DefaultKnownTypes is used if nil.
	KnownTypes []string

	// ForEach is the array iteration helper; DefaultForEach if empty. Its
	// namespace is always required.
	ForEach string

	// Messages, if set, supplies translations that replace the source text
	// of extracted messages.
	Messages soymsg.Bundle

	// OnMessage, if set, is called with every extracted message.
	OnMessage func(*soymsg.Message)
}

// Compiler turns a token stream into JavaScript.
// A Compiler must not be used for two compilations at once.
type Compiler struct {
	docParser soydoc.Parser
	known     map[string]struct{}
	forEach   string
	messages  soymsg.Bundle
	onMessage func(*soymsg.Message)

	// per compilation
	wr       bytes.Buffer
	tokens   []*parse.Token
	pos      int          // index of the next token
	tok      *parse.Token // current token, for errors
	open     []block      // open block commands, innermost last
	scope    scope
	provides []string
	requires []string
	msgs     int
}

// block is an open block command.
type block struct {
	name string
	tok  *parse.Token
}

// NewCompiler returns a compiler configured with the given options.
func NewCompiler(opts Options) *Compiler {
	var c = &Compiler{
		docParser: opts.DocParser,
		forEach:   opts.ForEach,
		messages:  opts.Messages,
		onMessage: opts.OnMessage,
	}
	if c.docParser == nil {
		c.docParser = soydoc.Default
	}
	if c.forEach == "" {
		c.forEach = DefaultForEach
	}
	c.known = defaultKnown
	if opts.KnownTypes != nil {
		c.known = typeSet(opts.KnownTypes)
	}
	return c
}

// Compile generates the JavaScript for the given tokens: goog.provide lines
// for the declared namespaces, goog.require lines for the documented types,
// then one statement per token.
func (c *Compiler) Compile(tokens []*parse.Token) (js string, err error) {
	defer c.errRecover(&err)
	c.reset(tokens)
	for c.pos < len(c.tokens) {
		c.compileToken(c.nextToken())
	}
	if len(c.open) > 0 {
		var top = c.open[len(c.open)-1]
		c.tok = top.tok
		c.errorf(errortypes.UnterminatedBlock, "{%s} is never closed", top.name)
	}
	if ns := namespace(c.forEach); ns != "" {
		c.require(ns)
	}
	return c.header() + c.wr.String(), nil
}

func (c *Compiler) reset(tokens []*parse.Token) {
	c.wr.Reset()
	c.tokens = tokens
	c.pos = 0
	c.tok = nil
	c.open = nil
	c.scope = scope{}
	c.provides = nil
	c.requires = nil
	c.msgs = 0
}

func (c *Compiler) header() string {
	var buf bytes.Buffer
	for _, ns := range c.provides {
		buf.WriteString(`goog.provide("` + ns + `");` + "\n")
	}
	if len(c.provides) > 0 {
		buf.WriteString("\n")
	}
	for _, ns := range c.requires {
		buf.WriteString(`goog.require("` + ns + `");` + "\n")
	}
	if len(c.requires) > 0 {
		buf.WriteString("\n")
	}
	return buf.String()
}

func (c *Compiler) nextToken() *parse.Token {
	var tok = c.tokens[c.pos]
	c.pos++
	c.tok = tok
	return tok
}

func (c *Compiler) compileToken(tok *parse.Token) {
	switch tok.Kind {
	case parse.KindJSDoc:
		c.compileDoc(tok)
	case parse.KindCommand:
		var cmd = tok.Command()
		switch {
		case cmd.Name == "msg" && !cmd.Closing:
			c.compileMsg(tok)
		case cmd.Closing:
			c.compileCommandEnd(cmd)
		default:
			c.compileCommandStart(cmd)
		}
	case parse.KindCode:
		c.compileCode(tok)
	default:
		c.errorf(errortypes.UnknownTokenKind, "unknown token kind: %v", tok.Kind)
	}
}

func (c *Compiler) compileCode(tok *parse.Token) {
	if len(c.open) == 0 && strings.TrimSpace(tok.Text) == "" {
		return
	}
	c.jsln(`rendering += "`, parse.EscapeDoubleQuoted(tok.Text), `";`)
}

// provide records the namespace of a template, once.
func (c *Compiler) provide(ns string) {
	if !contains(c.provides, ns) {
		c.provides = append(c.provides, ns)
	}
}

// require records a type needed by the generated code, once.
func (c *Compiler) require(name string) {
	if !contains(c.requires, name) {
		c.requires = append(c.requires, name)
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// namespace returns the dotted path without its final segment, or the
// empty string if there is no dot.
func namespace(path string) string {
	if i := strings.LastIndex(path, "."); i != -1 {
		return path[:i]
	}
	return ""
}

// errorf formats the error and terminates processing.
func (c *Compiler) errorf(kind errortypes.Kind, format string, args ...interface{}) {
	var file, line = "", 0
	if c.tok != nil {
		file, line = c.tok.File, c.tok.Line
	}
	panic(errortypes.New(kind, file, line, format, args...))
}

// errRecover is the handler that turns panics into returns from the top
// level of Compile.
func (c *Compiler) errRecover(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	if _, ok := e.(runtime.Error); ok {
		panic(e)
	}
	if err, ok := e.(error); ok {
		*errp = err
		return
	}
	panic(e)
}

func (c *Compiler) js(args ...string) {
	for _, arg := range args {
		c.wr.WriteString(arg)
	}
}

// indent writes two spaces per open block.
func (c *Compiler) indent() {
	for i := 0; i < len(c.open); i++ {
		c.wr.WriteString("  ")
	}
}

func (c *Compiler) jsln(args ...string) {
	c.indent()
	c.js(args...)
	c.wr.WriteString("\n")
}
