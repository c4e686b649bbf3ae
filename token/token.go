// Package token defines the position and lexeme value types produced by a
// scanio.Reader.
//
package token

import (
	"errors"
	"fmt"
)

// Type represents a lexeme's category. Values >= 0 are free for client use.
//
type Type int

// EOF is the Type conventionally used for the end-of-input lexeme.
//
const EOF Type = -1

// ErrInvalidSpan is returned by New when the start position lies after a
// valid end position.
//
var ErrInvalidSpan = errors.New("token: span start after end")

// A Token is an immutable lexeme: a category, the committed text, the start
// and end positions of that text, and an optional client payload. The end
// position is the position just past the last character of the text; it may
// be NoPos if not yet known.
//
type Token struct {
	typ        Type
	text       string
	start, end Position
	val        interface{}
}

// New returns a new Token. It fails with ErrInvalidSpan if end is a valid
// position strictly before start.
//
func New(typ Type, text string, start, end Position, val interface{}) (Token, error) {
	if end.IsValid() && end.Before(start) {
		return Token{}, ErrInvalidSpan
	}
	return Token{typ: typ, text: text, start: start, end: end, val: val}, nil
}

// Type returns the token's category.
//
func (t Token) Type() Type { return t.typ }

// Text returns the committed text of the token.
//
func (t Token) Text() string { return t.text }

// Start returns the position of the first character of the token.
//
func (t Token) Start() Position { return t.start }

// End returns the position just past the last character of the token, or
// NoPos if the end is not known.
//
func (t Token) End() Position { return t.end }

// Value returns the client payload attached to the token, if any.
//
func (t Token) Value() interface{} { return t.val }

// Equal returns true if t and o have the same category, text and span. The
// payload is ignored.
//
func (t Token) Equal(o Token) bool {
	return t.typ == o.typ && t.text == o.text && t.start == o.start && t.end == o.end
}

// String returns a string representation of the token. This should be used
// only for debugging purposes as the output format is not guaranteed to be
// stable.
//
func (t Token) String() string {
	if t.typ == EOF {
		return fmt.Sprintf("%s EOF", t.start)
	}
	return fmt.Sprintf("%s %d %q", t.start, t.typ, t.text)
}
