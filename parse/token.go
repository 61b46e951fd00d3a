package parse

import "fmt"

// Kind identifies the type of a token.
type Kind int

const (
	KindInvalid Kind = iota // not used
	KindCode                // raw template text, rendered as is
	KindCommand             // a bracketed command, e.g. {if $x}
	KindJSDoc               // a /** ... */ doc comment
)

func (k Kind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindCommand:
		return "command"
	case KindJSDoc:
		return "jsdoc"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Token is a span of template source.
type Token struct {
	Kind Kind   // The type of this token.
	Text string // The source text of this token.
	File string // The name of the input; used only for errors.
	Line int    // The line being scanned when the token was emitted.

	cmd *Command // parsed lazily by Command
}

func (t *Token) String() string {
	if len(t.Text) > 20 {
		return fmt.Sprintf("%v(%.20q...)", t.Kind, t.Text)
	}
	return fmt.Sprintf("%v(%q)", t.Kind, t.Text)
}

// Source is one template file to tokenize.
type Source struct {
	Name string // used only in error messages
	Text string
}
