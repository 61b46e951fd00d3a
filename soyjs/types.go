package soyjs

import (
	"strings"
	"unicode"

	"github.com/robfig/soyc/errortypes"
)

// primitiveTypes never need a goog.require.
var primitiveTypes = []string{
	"string", "number", "boolean", "function", "undefined", "null",
}

// DefaultKnownTypes are the JavaScript built-in constructors, which are
// available without a goog.require.
var DefaultKnownTypes = []string{
	"Array", "ArrayBuffer", "Boolean", "DataView", "Date", "Error",
	"EvalError", "Float32Array", "Float64Array", "Function", "Int8Array",
	"Int16Array", "Int32Array", "Map", "Number", "Object", "Promise",
	"Proxy", "RangeError", "ReferenceError", "RegExp", "Set", "String",
	"Symbol", "SyntaxError", "TypeError", "URIError", "Uint8Array",
	"Uint8ClampedArray", "Uint16Array", "Uint32Array", "WeakMap", "WeakSet",
}

var defaultKnown = typeSet(DefaultKnownTypes)

func typeSet(names []string) map[string]struct{} {
	var set = make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// ParseCompositeType returns the names of the types in a type expression
// such as "Array.<my.ns.Foo|string>" that need a goog.require: primitives
// and DefaultKnownTypes are left out.
func ParseCompositeType(expr string) ([]string, error) {
	return parseCompositeType(expr, defaultKnown)
}

func parseCompositeType(expr string, known map[string]struct{}) ([]string, error) {
	var (
		types []string
		start = -1 // start of the current name, if any
	)
	var flush = func(end int) {
		if start == -1 {
			return
		}
		var name = strings.TrimSuffix(expr[start:end], ".")
		start = -1
		if name == "" || isPrimitive(name) {
			return
		}
		if _, ok := known[name]; ok {
			return
		}
		types = append(types, name)
	}

	for pos, ch := range expr {
		switch {
		case isTypeNameChar(ch):
			if start == -1 {
				start = pos
			}
		case strings.ContainsRune("!<>,|", ch) || unicode.IsSpace(ch):
			flush(pos)
		default:
			return nil, errortypes.New(errortypes.InvalidCharacter, "", 0,
				"invalid character %q in composite type %q", ch, expr)
		}
	}
	flush(len(expr))
	return types, nil
}

func isTypeNameChar(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || '0' <= ch && ch <= '9' ||
		ch == '_' || ch == '.'
}

func isPrimitive(name string) bool {
	for _, p := range primitiveTypes {
		if p == name {
			return true
		}
	}
	return false
}
