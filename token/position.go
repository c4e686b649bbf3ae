package token

import "fmt"

// Position describes a source position as a line/column pair plus the
// absolute rune offset from the start of the input. Line and Col are 1-based,
// Off is 0-based. Positions are totally ordered by Off.
//
type Position struct {
	Line int // 1-based line number
	Col  int // 1-based column number (tab-expanded rune index)
	Off  int // 0-based absolute rune offset
}

// NoPos is an invalid position, ordered before all valid positions. It is
// used where a position is not yet known, e.g. as the end of a span still
// being scanned.
//
var NoPos = Position{Off: -1}

// IsValid returns true if p is a valid position (i.e. p.Off >= 0).
//
func (p Position) IsValid() bool {
	return p.Off >= 0
}

// Before returns true if p is strictly before q in the input. An invalid
// position is before every valid one.
//
func (p Position) Before(q Position) bool {
	return p.Off < q.Off
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
