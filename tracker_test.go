package scanio

import (
	"testing"

	"github.com/lexholm/scanio/token"
)

func TestTracker_Advance(t *testing.T) {
	data := []struct {
		name     string
		input    string
		tabWidth int
		next     token.Position
		last     token.Position
	}{
		{"empty", "", 4, token.Position{Line: 1, Col: 1, Off: 0}, token.NoPos},
		{"plain", "abc", 4, token.Position{Line: 1, Col: 4, Off: 3}, token.Position{Line: 1, Col: 3, Off: 2}},
		{"tab", "ab\tc", 4, token.Position{Line: 1, Col: 6, Off: 4}, token.Position{Line: 1, Col: 5, Off: 3}},
		{"tab at stop", "abcd\tx", 4, token.Position{Line: 1, Col: 10, Off: 6}, token.Position{Line: 1, Col: 9, Off: 5}},
		{"tab width 1", "\t\t", 1, token.Position{Line: 1, Col: 3, Off: 2}, token.Position{Line: 1, Col: 2, Off: 1}},
		{"lf", "a\nb", 4, token.Position{Line: 2, Col: 2, Off: 3}, token.Position{Line: 2, Col: 1, Off: 2}},
		{"cr", "a\rb", 4, token.Position{Line: 2, Col: 2, Off: 3}, token.Position{Line: 2, Col: 1, Off: 2}},
		{"crlf", "a\r\nb", 4, token.Position{Line: 2, Col: 2, Off: 4}, token.Position{Line: 2, Col: 1, Off: 3}},
		{"lfcr", "a\n\rb", 4, token.Position{Line: 3, Col: 2, Off: 4}, token.Position{Line: 3, Col: 1, Off: 3}},
		{"blank lines", "\n\n\n", 4, token.Position{Line: 4, Col: 1, Off: 3}, token.Position{Line: 3, Col: 1, Off: 2}},
	}

	for _, td := range data {
		t.Run(td.name, func(t *testing.T) {
			tr := newTracker(td.tabWidth)
			tr.advance([]rune(td.input))
			if tr.next != td.next {
				t.Errorf("next = %+v, expected %+v", tr.next, td.next)
			}
			if tr.last != td.last {
				t.Errorf("last = %+v, expected %+v", tr.last, td.last)
			}
		})
	}
}

// A \r\n pair split across two advance calls still counts as one line
// terminator.
func TestTracker_SplitCRLF(t *testing.T) {
	tr := newTracker(8)
	tr.advance([]rune("a\r"))
	if want := (token.Position{Line: 2, Col: 1, Off: 2}); tr.next != want {
		t.Fatalf("after \\r: next = %+v, expected %+v", tr.next, want)
	}
	tr.advance([]rune("\nb"))
	if want := (token.Position{Line: 2, Col: 2, Off: 4}); tr.next != want {
		t.Errorf("after \\nb: next = %+v, expected %+v", tr.next, want)
	}
	if want := (token.Position{Line: 2, Col: 1, Off: 3}); tr.last != want {
		t.Errorf("last = %+v, expected %+v", tr.last, want)
	}
}
