package token_test

import (
	"errors"
	"testing"

	"github.com/lexholm/scanio/token"
)

func pos(line, col, off int) token.Position {
	return token.Position{Line: line, Col: col, Off: off}
}

func TestPosition(t *testing.T) {
	if token.NoPos.IsValid() {
		t.Error("NoPos must be invalid")
	}
	p := pos(1, 1, 0)
	if !p.IsValid() {
		t.Error("1:1 must be valid")
	}
	if !token.NoPos.Before(p) {
		t.Error("NoPos must order before all valid positions")
	}
	if !p.Before(pos(1, 5, 4)) || pos(1, 5, 4).Before(p) {
		t.Error("positions must order by offset")
	}
	if got := p.String(); got != "1:1" {
		t.Errorf("String() = %q", got)
	}
	if got := token.NoPos.String(); got != "-" {
		t.Errorf("NoPos.String() = %q", got)
	}
}

func TestNew(t *testing.T) {
	start, end := pos(1, 1, 0), pos(1, 4, 3)

	tok, err := token.New(2, "let", start, end, nil)
	if err != nil {
		t.Fatal(err)
	}
	if tok.Type() != 2 || tok.Text() != "let" || tok.Start() != start || tok.End() != end {
		t.Errorf("got %v", tok)
	}

	// start == end is a valid, empty span
	if _, err = token.New(0, "", start, start, nil); err != nil {
		t.Errorf("empty span: %v", err)
	}

	// an unknown end is always acceptable
	if _, err = token.New(0, "x", end, token.NoPos, nil); err != nil {
		t.Errorf("open span: %v", err)
	}

	// start past a known end is a caller bug
	if _, err = token.New(0, "x", end, start, nil); !errors.Is(err, token.ErrInvalidSpan) {
		t.Errorf("inverted span: %v", err)
	}
}

func TestToken_Equal(t *testing.T) {
	a, _ := token.New(1, "x", pos(1, 1, 0), pos(1, 2, 1), nil)
	b, _ := token.New(1, "x", pos(1, 1, 0), pos(1, 2, 1), "some payload")
	c, _ := token.New(2, "x", pos(1, 1, 0), pos(1, 2, 1), nil)
	d, _ := token.New(1, "y", pos(1, 1, 0), pos(1, 2, 1), nil)

	if !a.Equal(b) {
		t.Error("Equal must ignore the payload")
	}
	if a.Equal(c) {
		t.Error("Equal must compare categories")
	}
	if a.Equal(d) {
		t.Error("Equal must compare text")
	}
}
