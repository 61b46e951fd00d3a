// Package pomsg provides a PO file implementation for message bundles
package pomsg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/robfig/gettext/po"
	"github.com/robfig/soyc/soymsg"
	"golang.org/x/text/language"
)

type provider struct {
	bundles map[string]soymsg.Bundle
}

// FileOpener defines an abstraction for opening a po file given a locale
type FileOpener interface {
	// Open returns ReadCloser for the po file indicated by locale. It returns
	// nil if the file does not exist
	Open(locale string) (io.ReadCloser, error)
}

// Load returns a soymsg.Provider that takes its translations by passing in the
// specified locales to the given FileOpener.
//
// Supports fallbacks for when a given locale does not exist, as long as the fallback files are in
// canonical form.
func Load(opener FileOpener, locales []string) (soymsg.Provider, error) {
	var prov = provider{make(map[string]soymsg.Bundle)}
	for _, locale := range locales {
		r, err := open(opener, locale)
		if err != nil {
			return nil, err
		}
		if r == nil {
			continue
		}

		pofile, err := po.Parse(r)
		r.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", locale, err)
		}

		b, err := newBundle(locale, pofile)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", locale, err)
		}
		prov.bundles[locale] = b
	}
	return prov, nil
}

// open returns the po file for the locale, or for the first of its fallbacks
// that exists. It returns nil if there is none.
func open(opener FileOpener, locale string) (io.ReadCloser, error) {
	r, err := opener.Open(locale)
	if err != nil || r != nil {
		return r, err
	}
	if _, err := language.Parse(locale); err != nil {
		return nil, err
	}
	for _, fallback := range fallbacks(locale) {
		r, err = opener.Open(fallback)
		if err != nil || r != nil {
			return r, err
		}
	}
	return nil, nil
}

// fsFileOpener is a FileOpener based on the filesystem and rooted at Dirname
type fsFileOpener struct {
	Dirname string
}

func (o fsFileOpener) Open(locale string) (io.ReadCloser, error) {
	switch f, err := os.Open(filepath.Join(o.Dirname, locale+".po")); {
	case os.IsNotExist(err):
		return nil, nil
	case err != nil:
		return nil, err
	default:
		return f, nil
	}
}

// Dir returns a soymsg.Provider that takes translations from the given path.
// For example, if dir is "/usr/local/msgs", po files should be of the form:
//
//	/usr/local/msgs/<lang>.po
//	/usr/local/msgs/<lang>_<territory>.po
func Dir(dirname string) (soymsg.Provider, error) {
	var entries, err = os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}
	var locales []string
	for _, entry := range entries {
		var name = entry.Name()
		if !entry.IsDir() && strings.HasSuffix(name, ".po") {
			locales = append(locales, strings.TrimSuffix(name, ".po"))
		}
	}
	return Load(fsFileOpener{dirname}, locales)
}

func (p provider) Bundle(locale string) soymsg.Bundle {
	bundle, ok := p.bundles[locale]
	if !ok {
		for _, fb := range fallbacks(locale) {
			bundle, ok = p.bundles[fb]
			if ok {
				break
			}
		}
	}
	return bundle
}

type bundle struct {
	messages map[uint64]string
	locale   string
}

// newBundle indexes the translated messages of a po file by fingerprint.
// The fingerprint is taken from an "id=" reference if there is one, and
// computed from msgid and msgctxt otherwise. Untranslated messages are
// skipped.
func newBundle(locale string, file po.File) (*bundle, error) {
	var msgs = make(map[uint64]string)
	for _, msg := range file.Messages {
		if len(msg.Str) == 0 || msg.Str[0] == "" {
			continue
		}
		if msg.IdPlural != "" {
			return nil, fmt.Errorf("plural messages are not supported: %q", msg.Id)
		}
		var id, err = messageID(msg)
		if err != nil {
			return nil, err
		}
		msgs[id] = msg.Str[0]
	}
	return &bundle{msgs, locale}, nil
}

func messageID(msg po.Message) (uint64, error) {
	for _, refs := range msg.References {
		for _, ref := range strings.Fields(refs) {
			if strings.HasPrefix(ref, "id=") {
				return strconv.ParseUint(ref[len("id="):], 10, 64)
			}
		}
	}
	return soymsg.Fingerprint(msg.Id, msg.Ctxt), nil
}

func (b *bundle) Translation(id uint64) (string, bool) {
	var text, ok = b.messages[id]
	return text, ok
}

func (b *bundle) Locale() string {
	return b.locale
}
