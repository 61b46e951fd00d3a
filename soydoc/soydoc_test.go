package soydoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	var tests = []struct {
		name string
		body string
		doc  *Doc
	}{
		{"empty", "", &Doc{}},
		{"description", " Says hello ", &Doc{Description: "Says hello"}},
		{"multiline", `
 * Says hello
 * to the user.
 `, &Doc{Description: "Says hello\nto the user."}},
		{"params", `
 * Greets the user.
 * @param {string} name The user's name.
 * @param? {Array.<my.ns.Item>} items
 * @return {string}
 * trailing text is not description
 `, &Doc{
			Description: "Greets the user.",
			Params: []Param{
				{Name: "name", Type: "string", Desc: "The user's name."},
				{Name: "items", Type: "Array.<my.ns.Item>", Optional: true},
			},
		}},
		{"untyped", "* @param name", &Doc{Params: []Param{{Name: "name"}}}},
		{"record type", "* @param {{a: string, b: !my.Type}} rec", &Doc{
			Params: []Param{{Name: "rec", Type: "{a: string, b: !my.Type}"}},
		}},
		{"not a param", "* @parameters are documented elsewhere", &Doc{}},
	}
	for _, test := range tests {
		var doc, err = Parse(test.body)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if diff := cmp.Diff(test.doc, doc); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", test.name, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	var tests = []string{
		"* @param {string name",
		"* @param {string}",
	}
	for _, body := range tests {
		if _, err := Default.Parse(body); err == nil {
			t.Errorf("%q: expected error", body)
		}
	}
}
