// Package soymsg extracts translatable messages from {msg} blocks.
//
// A message is the text of a {msg} block in which printed values, links and
// line breaks are replaced by named placeholders:
//
//	{msg desc="Greeting"}Hello {$first_name}, see <a href="{$url}">this</a>.{/msg}
//
// becomes the text
//
//	Hello {$firstName}, see {$startLink}this{$endLink}.
//
// along with the JavaScript expression for each placeholder.
package soymsg

import "regexp"

// Message is the extracted content of one {msg} block.
type Message struct {
	ID      int    // sequence number within one compilation
	Meaning string // disambiguates identical texts, e.g. "noun" / "verb"
	Desc    string // note to translators
	Text    string // message text with {$name} placeholders
	Params  Params // placeholder values, in insertion order
	File    string // location of the opening {msg}
	Line    int
}

// Fingerprint returns the content-based identifier used to look up
// translations of this message.
func (m *Message) Fingerprint() uint64 {
	return Fingerprint(m.Text, m.Meaning)
}

// Param binds a placeholder name to a JavaScript expression.
type Param struct {
	Name  string
	Value string
}

// Params is an insertion-ordered set of placeholder bindings. Setting an
// existing name replaces its value in place.
type Params []Param

// Get returns the value bound to name.
func (ps Params) Get(name string) (string, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Set binds name to value.
func (ps *Params) Set(name, value string) {
	for i := range *ps {
		if (*ps)[i].Name == name {
			(*ps)[i].Value = value
			return
		}
	}
	*ps = append(*ps, Param{name, value})
}

// Delete removes the binding for name, if any.
func (ps *Params) Delete(name string) {
	for i, p := range *ps {
		if p.Name == name {
			*ps = append((*ps)[:i:i], (*ps)[i+1:]...)
			return
		}
	}
}

// Names returns the placeholder names in order.
func (ps Params) Names() []string {
	var names = make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

// Provider provides access to message bundles by locale.
type Provider interface {
	// Bundle returns translations for the given locale, which is in the form
	// [language_territory], or nil if none could be found.
	Bundle(locale string) Bundle
}

// Bundle is the set of translations available in a particular locale.
type Bundle interface {
	// Locale returns the locale of the bundle.
	Locale() string

	// Translation returns the translated placeholder text of the message with
	// the given fingerprint.
	Translation(id uint64) (string, bool)
}

var phRegex = regexp.MustCompile(`\{\$(\w+)\}`)

// Placeholders returns the names of the placeholders in a message text, in
// order of appearance.
func Placeholders(text string) []string {
	var names []string
	for _, match := range phRegex.FindAllStringSubmatch(text, -1) {
		names = append(names, match[1])
	}
	return names
}
