package parse

// Lexer design from text/template, run synchronously into a slice.

const (
	leftDelim  = '{'
	rightDelim = '}'
	docStart   = "/**"
	docEnd     = "*/"
)

// stateFn represents the state of the lexer as a function that returns the
// next state.
type stateFn func(*lexer) stateFn

// lexer holds the state of the lexical scanning.
type lexer struct {
	name   string   // the name of the input; attached to every token.
	input  string   // the string being scanned.
	pos    int      // current position in the input.
	start  int      // start position of this token.
	line   int      // number of newlines consumed, plus one.
	tokens []*Token // scanned tokens.
}

// Tokenize scans each source in order and returns the normalized tokens of
// all of them, concatenated.
func Tokenize(sources ...Source) []*Token {
	var tokens []*Token
	for _, src := range sources {
		tokens = append(tokens, Normalize(TokenizeSource(src.Name, src.Text))...)
	}
	return tokens
}

// TokenizeSource scans a single template into raw (not normalized) tokens.
//
// Concatenating the text of the returned tokens reproduces the input, unless
// it ends inside a command or a doc comment: that unterminated tail is
// dropped.
func TokenizeSource(name, input string) []*Token {
	var l = &lexer{
		name:  name,
		input: input,
		line:  1,
	}
	for state := stateFn(lexCode); state != nil; {
		state = state(l)
	}
	return l.tokens
}

// next consumes one byte, counting lines. It returns false at end of input.
// All delimiters are ASCII, so multi-byte runes pass through untouched.
func (l *lexer) next() (byte, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	var ch = l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
	}
	return ch, true
}

// hasTail reports whether the pending span ends with s.
func (l *lexer) hasTail(s string) bool {
	return l.pos-l.start >= len(s) && l.input[l.pos-len(s):l.pos] == s
}

// emit appends the input between start and end as a token of the given kind.
func (l *lexer) emit(kind Kind, end int) {
	l.tokens = append(l.tokens, &Token{
		Kind: kind,
		Text: l.input[l.start:end],
		File: l.name,
		Line: l.line,
	})
	l.start = end
}

// lexCode scans plain text until a command or a doc comment begins.
func lexCode(l *lexer) stateFn {
	for {
		var ch, ok = l.next()
		if !ok {
			if l.pos > l.start {
				l.emit(KindCode, l.pos)
			}
			return nil
		}
		if ch == leftDelim {
			if l.pos-1 > l.start {
				l.emit(KindCode, l.pos-1)
			}
			return lexCommand
		}
		if l.hasTail(docStart) {
			if l.pos-len(docStart) > l.start {
				l.emit(KindCode, l.pos-len(docStart))
			}
			return lexDoc
		}
	}
}

// lexCommand scans through the closing delimiter. "{" has already been read.
// Doc comment markers are not recognized inside a command.
func lexCommand(l *lexer) stateFn {
	for {
		var ch, ok = l.next()
		if !ok {
			return nil
		}
		if ch == rightDelim {
			l.emit(KindCommand, l.pos)
			return lexCode
		}
	}
}

// lexDoc scans through the end of a doc comment. "/**" has already been read.
// Braces are not recognized inside a doc comment.
func lexDoc(l *lexer) stateFn {
	for {
		if _, ok := l.next(); !ok {
			return nil
		}
		if l.pos-l.start > len(docStart) && l.hasTail(docEnd) {
			l.emit(KindJSDoc, l.pos)
			return lexCode
		}
	}
}
