package soy

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/soyc/errortypes"
	"github.com/robfig/soyc/parse"
	"github.com/robfig/soyc/soyjs"
	"github.com/robfig/soyc/soymsg"
)

// Logger is used to print notifications and compile errors when using the
// "WatchFiles" feature.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, nil)).With("pkg", "soy")

type soyFile struct {
	name, content string
	fromDisk      bool // re-read on recompilation
}

// Output is the result of compiling a bundle.
type Output struct {
	JS       string            // the generated javascript
	Messages []*soymsg.Message // the extracted messages, in source order
}

// Bundle is a collection of template files. It acts as input for the
// compiler.
type Bundle struct {
	files                 []soyFile
	opts                  soyjs.Options
	err                   error
	watcher               *fsnotify.Watcher
	watching              sync.Once // starts the recompiler
	recompilationCallback func(*Output)
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{}
}

// WithOptions sets the options passed to the compiler.
func (b *Bundle) WithOptions(opts soyjs.Options) *Bundle {
	b.opts = opts
	return b
}

// WithTranslations makes the compiler substitute the translations for the
// given locale. It is an error if the provider has none.
func (b *Bundle) WithTranslations(prov soymsg.Provider, locale string) *Bundle {
	var bundle = prov.Bundle(locale)
	if bundle == nil {
		b.err = fmt.Errorf("no translations for locale %q", locale)
		return b
	}
	b.opts.Messages = bundle
	return b
}

// WatchFiles tells soy to watch any template files added to this bundle,
// re-compile as necessary, and pass the new output to the recompilation
// callback. It should be called once, before adding any files.
func (b *Bundle) WatchFiles(watch bool) *Bundle {
	if watch && b.err == nil && b.watcher == nil {
		b.watcher, b.err = fsnotify.NewWatcher()
	}
	return b
}

// AddTemplateDir adds all *.soy files found within the given directory
// (including sub-directories) to the bundle.
func (b *Bundle) AddTemplateDir(root string) *Bundle {
	var err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".soy") {
			return nil
		}
		b.AddTemplateFile(path)
		return nil
	})
	if err != nil {
		b.err = err
	}
	return b
}

// AddTemplateFile adds the given template file to this bundle.
// If WatchFiles is on, it will be subsequently watched for updates.
func (b *Bundle) AddTemplateFile(filename string) *Bundle {
	content, err := os.ReadFile(filename)
	if err != nil && b.err == nil {
		b.err = errortypes.NewErrFilePosf(filename, 0, 0, "reading template: %w", err)
	}
	if b.err == nil && b.watcher != nil {
		b.err = b.watcher.Add(filename)
	}
	b.files = append(b.files, soyFile{filename, string(content), true})
	return b
}

// AddTemplateString adds the given template to the bundle. The name is only
// used for error messages - it does not need to be provided nor does it need to
// be a real filename.
func (b *Bundle) AddTemplateString(filename, soyfile string) *Bundle {
	b.files = append(b.files, soyFile{filename, soyfile, false})
	return b
}

// SetRecompilationCallback assigns the bundle a function to call with the
// new output after each recompilation triggered by a file change.
func (b *Bundle) SetRecompilationCallback(c func(*Output)) *Bundle {
	b.recompilationCallback = c
	return b
}

// Compile tokenizes all of the template files in this bundle, in the order
// they were added, and compiles them into one javascript source.
func (b *Bundle) Compile() (*Output, error) {
	if b.err != nil {
		return nil, b.err
	}
	var out, err = b.compile()
	if err != nil {
		return nil, err
	}
	if b.watcher != nil {
		b.watching.Do(func() { go b.recompiler() })
	}
	return out, nil
}

func (b *Bundle) compile() (*Output, error) {
	var sources = make([]parse.Source, len(b.files))
	for i, f := range b.files {
		sources[i] = parse.Source{Name: f.name, Text: f.content}
	}

	var out = &Output{}
	var opts = b.opts
	var observer = opts.OnMessage
	opts.OnMessage = func(msg *soymsg.Message) {
		out.Messages = append(out.Messages, msg)
		if observer != nil {
			observer(msg)
		}
	}

	var js, err = soyjs.NewCompiler(opts).Compile(parse.Tokenize(sources...))
	if err != nil {
		return nil, err
	}
	out.JS = js
	return out, nil
}

// Close stops watching files.
func (b *Bundle) Close() error {
	if b.watcher == nil {
		return nil
	}
	return b.watcher.Close()
}

func (b *Bundle) recompiler() {
	for {
		select {
		case ev, ok := <-b.watcher.Events:
			if !ok {
				return
			}
			// If it's a rename, then fsnotify has removed the watch.
			// Add it back, after a delay.
			if ev.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
				time.Sleep(10 * time.Millisecond)
				if err := b.watcher.Add(ev.Name); err != nil {
					Logger.Error("watch failed", "file", ev.Name, "error", err)
				}
			}

			// Recompile all the templates.
			var bundle = NewBundle().WithOptions(b.opts)
			for _, f := range b.files {
				if f.fromDisk {
					bundle.AddTemplateFile(f.name)
				} else {
					bundle.AddTemplateString(f.name, f.content)
				}
			}
			if bundle.err != nil {
				Logger.Error("reload failed", "error", bundle.err)
				continue
			}
			var out, err = bundle.compile()
			if err != nil {
				Logger.Error("recompile failed", "error", err)
				continue
			}

			if b.recompilationCallback != nil {
				b.recompilationCallback(out)
			}
			Logger.Info("update successful", "event", ev.String())

		case err, ok := <-b.watcher.Errors:
			if !ok {
				return
			}
			// Nothing to do with errors
			Logger.Error("watch error", "error", err)
		}
	}
}
