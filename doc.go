// Package soy compiles Soy-like templates into Closure-style JavaScript.
//
// Each template becomes a function on its namespace that takes a data object and
// a map of helpers and returns the rendered string. Messages marked with {msg}
// are emitted as goog.getMsg calls, and may be replaced by translations taken
// from PO files.
//
// # Usage example
//
// Typically in a web application you have a directory containing views for all of
// your pages.  For example:
//
//	app/views/
//	app/views/account/
//	app/views/feed/
//	...
//
// This code snippet will compile all soy templates within app/views, using the
// German translations if there are any.  (Error checking is skipped.)
//
//	var msgs, _ = pomsg.Dir("app/messages")
//	var out, _ = soy.NewBundle().
//	    WatchFiles(mode == "dev").       // watch soy files, recompile on changes (in dev)
//	    WithTranslations(msgs, "de").    // substitute translated messages
//	    AddTemplateDir("app/views").     // load *.soy in all sub-directories
//	    SetRecompilationCallback(func(out *soy.Output) { serve(out.JS) }).
//	    Compile()
//	serve(out.JS)
//
// To produce a PO template for translators from the same messages:
//
//	pomsg.Extract(w, out.Messages)
//
// # Advanced Usage
//
// The soy package provides a friendly interface to its sub-packages.  Tools that
// need finer control, such as a different @param parser or a custom iteration
// helper, will be better served by using soy/parse and soy/soyjs directly.
//
// The soyc command wraps this package for use from the command line.
package soy
