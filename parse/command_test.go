package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCommand(t *testing.T) {
	var tests = []struct {
		input string
		cmd   Command
	}{
		{"{if $x}", Command{Name: "if", Expr: "$x"}},
		{"{if   $x > 2}", Command{Name: "if", Expr: "$x > 2"}},
		{"{foreach $x in $list}", Command{Name: "foreach", Expr: "$x in $list"}},
		{"{template test.Simple}", Command{Name: "template", Expr: "test.Simple"}},
		{"{else}", Command{Name: "else"}},
		{"{else $x}", Command{Name: "else", Expr: "$x"}},
		{"{debugger}", Command{Name: "debugger"}},
		{"{$name}", Command{Expr: "$name"}},
		{"{ $name }", Command{Expr: "$name "}},
		{"{print $a_b}", Command{Name: "print", Expr: "$a_b"}},
		{`{msg desc="Hi"}`, Command{Name: "msg", Expr: `desc="Hi"`}},
		{"{/if}", Command{Closing: true, Name: "if"}},
		{"{/foreach}", Command{Closing: true, Name: "foreach"}},
		{"{/if $x}", Command{Closing: true, Name: "if", Trailing: " $x"}},
		{"{/}", Command{Closing: true}},
		{"{}", Command{}},
	}
	for _, test := range tests {
		var tok = &Token{Kind: KindCommand, Text: test.input}
		if diff := cmp.Diff(&test.cmd, tok.Command()); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestCommandCached(t *testing.T) {
	var tok = &Token{Kind: KindCommand, Text: "{if $x}"}
	var first = tok.Command()
	tok.Text = "{/if}"
	if tok.Command() != first {
		t.Errorf("expected the parsed command to be cached")
	}
	if (&Token{Kind: KindCode, Text: "{if $x}"}).Command() != nil {
		t.Errorf("expected nil command for a code token")
	}
}

func TestAttributes(t *testing.T) {
	var tests = []struct {
		input string
		attrs map[string]string
	}{
		{`{msg}`, map[string]string{}},
		{`{msg meaning="test" desc="Lorem ipsum."}`, map[string]string{"meaning": "test", "desc": "Lorem ipsum."}},
		{`{msg desc='single "quoted"'}`, map[string]string{"desc": `single "quoted"`}},
		{`{msg desc="escaped \"quote\""}`, map[string]string{"desc": `escaped "quote"`}},
		{`{msg desc='it\'s'}`, map[string]string{"desc": "it's"}},
		{`{msg  desc="two spaces"}`, map[string]string{"desc": "two spaces"}},
		{`{msg desc=unquoted}`, map[string]string{}},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.attrs, Attributes(test.input)); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", test.input, diff)
		}
	}
}
