// Copyright 2025 Jonas Lexholm <jonas@lexholm.net>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package scanio

import "github.com/lexholm/scanio/token"

// tracker maintains the line/column/offset cursor over committed characters.
// It only ever moves forward: the commit path calls advance exactly once per
// discarded range, in input order, and ungetting never rewinds it.
//
// Both '\n' and '\r' terminate a line; a "\r\n" pair counts as a single
// terminator, even when the pair is split across two commits. A tab advances
// the column to one past the next multiple of tabWidth.
//
type tracker struct {
	last     token.Position // position of the last committed character
	next     token.Position // position of the first uncommitted character
	tabWidth int
	cr       bool // last committed character was '\r'
}

func newTracker(tabWidth int) tracker {
	return tracker{
		last:     token.NoPos,
		next:     token.Position{Line: 1, Col: 1},
		tabWidth: tabWidth,
	}
}

func (t *tracker) advance(chars []rune) {
	p := t.next
	for _, c := range chars {
		t.last = p
		p.Off++
		switch c {
		case '\n':
			if t.cr {
				// second half of a \r\n pair, the line count already moved
				p.Col = 1
			} else {
				p.Line++
				p.Col = 1
			}
		case '\r':
			p.Line++
			p.Col = 1
		case '\t':
			p.Col = (p.Col-1)/t.tabWidth*t.tabWidth + t.tabWidth + 1
		default:
			p.Col++
		}
		t.cr = c == '\r'
	}
	t.next = p
}
