package soymsg

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/robfig/soyc/errortypes"
	"github.com/robfig/soyc/parse"
)

func TestFingerprint(t *testing.T) {
	var tests = []struct {
		text, meaning string
		id            uint64
	}{
		{"Archive", "noun", 7224011416745566687},
		{"Archive", "verb", 4826315192146469447},
		{"A trip was taken.", "", 3329840836245051515},
	}
	for _, test := range tests {
		if actual := Fingerprint(test.text, test.meaning); actual != test.id {
			t.Errorf("Fingerprint(%q, %q) = %d, expected %d", test.text, test.meaning, actual, test.id)
		}
	}

	var msg = &Message{Text: "Archive", Meaning: "noun", Desc: "ignored"}
	if msg.Fingerprint() != 7224011416745566687 {
		t.Errorf("description must not affect the fingerprint")
	}
}

// resolve stands in for the compiler's expression resolution.
func resolve(expr string) string {
	return strings.ReplaceAll(expr, "$", "data.")
}

func extract(t *testing.T, input string) (*Message, error) {
	t.Helper()
	var run = parse.Tokenize(parse.Source{Name: "test.soy", Text: input})
	return Extract(1, run, resolve)
}

func TestExtract(t *testing.T) {
	var tests = []struct {
		name  string
		input string
		msg   *Message
	}{
		{
			name:  "plain",
			input: `{msg desc="Just text"}Hello world{/msg}`,
			msg:   &Message{Desc: "Just text", Text: "Hello world"},
		},
		{
			name:  "meaning",
			input: `{msg meaning="noun" desc="Button label"}Archive{/msg}`,
			msg:   &Message{Meaning: "noun", Desc: "Button label", Text: "Archive"},
		},
		{
			name:  "variables and link",
			input: `{msg desc="Profile"}I am {$name}, {$age} years old. Check out my <a href="{$website}">profile</a>.{/msg}`,
			msg: &Message{
				Desc: "Profile",
				Text: "I am {$name}, {$age} years old. Check out my {$startLink}profile{$endLink}.",
				Params: Params{
					{"name", "data.name"},
					{"age", "data.age"},
					{"startLink", `'<a href="' + data.website + '">'`},
					{"endLink", `'</a>'`},
				},
			},
		},
		{
			name:  "link variable also in text",
			input: `{msg}<a href="{$url}">{$url}</a>{/msg}`,
			msg: &Message{
				Text: "{$startLink}{$url}{$endLink}",
				Params: Params{
					{"url", "data.url"},
					{"startLink", `'<a href="' + data.url + '">'`},
					{"endLink", `'</a>'`},
				},
			},
		},
		{
			name:  "two links",
			input: `{msg}<a href="#">one</a> and <a class="x" href="#two">two</a>{/msg}`,
			msg: &Message{
				Text: "{$startLink_1}one{$endLink} and {$startLink_2}two{$endLink}",
				Params: Params{
					{"startLink_1", `'<a href="#">'`},
					{"endLink", `'</a>'`},
					{"startLink_2", `'<a class="x" href="#two">'`},
				},
			},
		},
		{
			name:  "not an anchor",
			input: `{msg}<abbr>HTML</abbr>{/msg}`,
			msg:   &Message{Text: "<abbr>HTML</abbr>"},
		},
		{
			name:  "line breaks",
			input: `{msg}one<br>two<br>three{/msg}`,
			msg: &Message{
				Text:   "one{$break}two{$break}three",
				Params: Params{{"break", `'<br>'`}},
			},
		},
		{
			name:  "placeholder names",
			input: `{msg}{$first_name} {print $last_name} {$user.age} {$a + 1} {$first_name}{/msg}`,
			msg: &Message{
				Text: "{$firstName} {$lastName} {$var_1} {$var_2} {$firstName}",
				Params: Params{
					{"firstName", "data.first_name"},
					{"lastName", "data.last_name"},
					{"var_1", "data.user.age"},
					{"var_2", "data.a + 1"},
				},
			},
		},
	}
	for _, test := range tests {
		var msg, err = extract(t, test.input)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		test.msg.ID = 1
		test.msg.File = "test.soy"
		test.msg.Line = 1
		if diff := cmp.Diff(test.msg, msg); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", test.name, diff)
		}
	}
}

func TestExtractErrors(t *testing.T) {
	var tests = []struct {
		input string
		kind  errortypes.Kind
	}{
		{`{msg}{if $x}yes{/if}{/msg}`, errortypes.Syntax},
		{`{msg}{/if}{/msg}`, errortypes.Syntax},
		{`{msg}{print}{/msg}`, errortypes.Syntax},
		{`{msg}/** doc */{/msg}`, errortypes.Syntax},
		{`{msg}`, errortypes.UnterminatedBlock},
	}
	for _, test := range tests {
		var _, err = extract(t, test.input)
		if !errortypes.Is(err, test.kind) {
			t.Errorf("%s: expected %v, got %v", test.input, test.kind, err)
		}
	}
}

func TestVarName(t *testing.T) {
	var tests = []struct{ expr, name string }{
		{"$name", "name"},
		{"$first_name", "firstName"},
		{"$a_b_c", "aBC"},
		{"$a__b", "a_b"},
		{"$trailing_", "trailing_"},
		{"$_private", "_private"},
		{"$HTML_id", "HTMLId"},
		{"$user.name", ""},
		{"$x + 1", ""},
		{"name", ""},
	}
	for _, test := range tests {
		if actual := VarName(test.expr); actual != test.name {
			t.Errorf("VarName(%q) = %q, expected %q", test.expr, actual, test.name)
		}
	}
}

func TestParams(t *testing.T) {
	var ps Params
	ps.Set("a", "1")
	ps.Set("b", "2")
	ps.Set("c", "3")
	ps.Set("a", "4")
	ps.Delete("b")
	ps.Delete("missing")
	if diff := cmp.Diff([]string{"a", "c"}, ps.Names()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if v, ok := ps.Get("a"); !ok || v != "4" {
		t.Errorf("Get(a) = %q, %v", v, ok)
	}
	if _, ok := ps.Get("b"); ok {
		t.Errorf("expected b to be deleted")
	}
}

func TestPlaceholders(t *testing.T) {
	var actual = Placeholders("Hi {$name}, see {$startLink}this{$endLink}. {not} {$}")
	if diff := cmp.Diff([]string{"name", "startLink", "endLink"}, actual); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
