// Package soyjs compiles templates to javascript.
//
// The generated code follows the Closure Library conventions: each template
// namespace is declared with goog.provide, documented parameter types are
// loaded with goog.require, and messages are declared with goog.getMsg so that
// the Closure Compiler can translate them.
//
// # Usage
//
//	var tokens = parse.Tokenize(parse.Source{Name: "hello.soy", Text: src})
//	var js, err = soyjs.NewCompiler(soyjs.Options{}).Compile(tokens)
//
// Given
//
//	/**
//	 * @param {string} name
//	 */
//	{template hello.World}
//	  Hello {$name}!
//	{/template}
//
// the compiler produces
//
//	goog.provide("hello");
//
//	goog.require("goog.array");
//
//	/**
//	 * @param {{ name: string }} data Data to map to template variables.
//	 * @param {!Object.<string, function(string): string>} _helpers Helper functions.
//	 * @return {string} Template rendering.
//	 */
//	hello.World = function (data, _helpers) { var rendering = "";
//	  rendering += "Hello ";
//	  rendering += String(data.name).replace(...);
//	  rendering += "!";
//	return rendering; };
//
// # Commands
//
// The block commands template, if and foreach must be closed, and may be
// nested (except template). Other commands:
//
//	{elseif $x}, {else}        continue an {if}
//	{$x}, {print $x}           print, stripping HTML tags other than a, b, strong
//	{dangerousPrint $x}        print without filtering
//	{dump $x}                  log the expression with console.debug
//	{debugger}                 break into the debugger
//	{msg desc=".."}..{/msg}    declare a translatable message
//
// Within an expression, $name refers to the enclosing foreach's loop variable
// of that name if there is one, and to data.name otherwise.
package soyjs
