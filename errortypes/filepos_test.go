package errortypes_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/robfig/soyc/errortypes"
)

func TestIsErrFilePos(t *testing.T) {
	var tests = []struct {
		name string
		in   error
		out  bool
	}{
		{
			name: "nil",
			out:  false,
		},
		{
			name: "errors.New",
			in:   errors.New("an error"),
			out:  false,
		},
		{
			name: "new ErrFilePos",
			in:   errortypes.NewErrFilePosf("file.soy", 1, 2, "message"),
			out:  true,
		},
		{
			name: "compile error",
			in:   errortypes.New(errortypes.Syntax, "file.soy", 3, "bad"),
			out:  true,
		},
		{
			name: "wrapped compile error",
			in:   fmt.Errorf("compiling: %w", errortypes.New(errortypes.Syntax, "file.soy", 3, "bad")),
			out:  true,
		},
	}
	for _, test := range tests {
		got := errortypes.IsErrFilePos(test.in)
		if got != test.out {
			t.Errorf("%s: Expected %v, got %v", test.name, test.out, got)
		}
	}
}

func TestToErrFilePos(t *testing.T) {
	var tests = []struct {
		name             string
		in               error
		expectNil        bool
		expectedFilename string
		expectedLine     int
		expectedCol      int
	}{
		{
			name:      "nil",
			expectNil: true,
		},
		{
			name:      "errors.New",
			in:        errors.New("an error"),
			expectNil: true,
		},
		{
			name:             "new ErrFilePos",
			in:               errortypes.NewErrFilePosf("file.soy", 1, 2, "message"),
			expectNil:        false,
			expectedFilename: "file.soy",
			expectedLine:     1,
			expectedCol:      2,
		},
		{
			name:             "wrapped compile error",
			in:               fmt.Errorf("x: %w", errortypes.New(errortypes.UnterminatedBlock, "a.soy", 7, "open")),
			expectNil:        false,
			expectedFilename: "a.soy",
			expectedLine:     7,
		},
	}
	for _, test := range tests {
		got := errortypes.ToErrFilePos(test.in)
		if test.expectNil && got != nil {
			t.Errorf("%s: expected ErrFilePos to be nil", test.name)
		}
		if !test.expectNil {
			if got == nil {
				t.Errorf("%s: expected ErrFilePos to be non-nil", test.name)
				return
			}
			if got.File() != test.expectedFilename {
				t.Errorf("%s: expected file '%s', got '%s'", test.name, test.expectedFilename, got.File())
			}
			if got.Line() != test.expectedLine {
				t.Errorf("%s: expected line %d, got %d", test.name, test.expectedLine, got.Line())
			}
			if got.Col() != test.expectedCol {
				t.Errorf("%s: expected col %d, got %d", test.name, test.expectedCol, got.Col())
			}
		}
	}
}

func TestIsKind(t *testing.T) {
	var err error = errortypes.New(errortypes.InvalidCharacter, "", 0, "%q", '#')
	if !errortypes.Is(fmt.Errorf("wrap: %w", err), errortypes.InvalidCharacter) {
		t.Errorf("expected InvalidCharacter")
	}
	if errortypes.Is(err, errortypes.Syntax) {
		t.Errorf("did not expect Syntax")
	}
	if errortypes.Is(errors.New("plain"), errortypes.Syntax) {
		t.Errorf("plain errors have no kind")
	}
	if got, want := err.Error(), `invalid character: '#'`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	err = errortypes.New(errortypes.Syntax, "a.soy", 4, "oops")
	if got, want := err.Error(), "a.soy:4: syntax error: oops"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
