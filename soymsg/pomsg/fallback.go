package pomsg

import (
	"strings"

	"golang.org/x/text/language"
)

// fallbacks returns the locales that can be substituted for a locale, ordered
// by increasing generality, in the form used for po file names
// (lang_Script_REGION). It returns nil if the locale does not parse.
func fallbacks(locale string) []string {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil
	}
	var result []string
	var add = func(t language.Tag, err error) {
		if err == nil {
			result = append(result, strings.ReplaceAll(t.String(), "-", "_"))
		}
	}
	lang, script, region := tag.Raw()
	// The language package returns ZZ for an unspecified region, similar quirk for script.
	if region.String() != "ZZ" {
		add(language.Compose(lang, script, region))
	}
	if script.String() != "Zzzz" {
		add(language.Compose(lang, script))
	}
	add(language.Compose(lang))
	return result
}
