package errortypes

import (
	"errors"
	"fmt"
)

// ErrFilePos extends the error interface to add details on the file position where the error occurred.
type ErrFilePos interface {
	error
	File() string
	Line() int
	Col() int
}

// Kind classifies compile errors.
type Kind int

const (
	// UnknownTokenKind means a token kind outside code/command/jsdoc reached the
	// compiler. It indicates a bug, not a template defect.
	UnknownTokenKind Kind = iota + 1
	// Syntax is a defect in the template source.
	Syntax
	// InvalidCharacter is a character outside the composite type syntax.
	InvalidCharacter
	// UnterminatedBlock is a block command left open at end of input.
	UnterminatedBlock
)

func (k Kind) String() string {
	switch k {
	case UnknownTokenKind:
		return "unknown token kind"
	case Syntax:
		return "syntax error"
	case InvalidCharacter:
		return "invalid character"
	case UnterminatedBlock:
		return "unterminated block"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a compile error of a particular Kind, located in a template file.
type Error struct {
	Kind Kind
	Msg  string
	file string
	line int
	col  int
}

var _ ErrFilePos = &Error{}

// New creates an Error of the given kind at the given position.
func New(kind Kind, file string, line int, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		file: file,
		line: line,
	}
}

func (e *Error) Error() string {
	if e.file == "" && e.line == 0 {
		return e.Kind.String() + ": " + e.Msg
	}
	return fmt.Sprintf("%s:%d: %s: %s", e.file, e.line, e.Kind, e.Msg)
}

func (e *Error) File() string {
	return e.file
}

func (e *Error) Line() int {
	return e.line
}

func (e *Error) Col() int {
	return e.col
}

// Is reports whether err is, or wraps, an Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// NewErrFilePosf creates an error conforming to the ErrFilePos interface.
func NewErrFilePosf(file string, line, col int, format string, args ...interface{}) error {
	return &errFilePos{
		error: fmt.Errorf(format, args...),
		file:  file,
		line:  line,
		col:   col,
	}
}

// IsErrFilePos identifies whether or not the provided error, or any error it
// wraps, is of the ErrFilePos type.
func IsErrFilePos(err error) bool {
	return ToErrFilePos(err) != nil
}

// ToErrFilePos converts the input error to an ErrFilePos if possible, or nil if not.
// If IsErrFilePos returns true, this will not return nil.
func ToErrFilePos(err error) ErrFilePos {
	if err == nil {
		return nil
	}
	var out ErrFilePos
	if errors.As(err, &out) {
		return out
	}
	return nil
}

var _ ErrFilePos = &errFilePos{}

type errFilePos struct {
	error
	file string
	line int
	col  int
}

func (e *errFilePos) Unwrap() error {
	return e.error
}

func (e *errFilePos) File() string {
	return e.file
}

func (e *errFilePos) Line() int {
	return e.line
}

func (e *errFilePos) Col() int {
	return e.col
}
