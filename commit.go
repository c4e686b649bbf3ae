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

import (
	"strings"

	"github.com/lexholm/scanio/token"
)

// Drop commits the pending window: the trailing edge moves up to the read
// cursor, the position tracker advances over the discarded characters, and
// pushback past this point becomes impossible. Chunks left wholly behind the
// trailing edge return to the free list. Dropping an empty window is a no-op.
//
func (r *Reader) Drop() error {
	if r.src == nil {
		return ErrClosed
	}
	r.commit(nil)
	return nil
}

// Accept is Drop, but it also returns the committed text.
//
func (r *Reader) Accept() (string, error) {
	if r.src == nil {
		return "", ErrClosed
	}
	var b strings.Builder
	r.commit(&b)
	return b.String(), nil
}

// AcceptToken commits the pending window and returns it as a token of the
// given category, spanning from the window's start position to the position
// just past its last character. val is attached to the token as its payload.
//
func (r *Reader) AcceptToken(typ token.Type, val interface{}) (token.Token, error) {
	if r.src == nil {
		return token.Token{}, ErrClosed
	}
	start := r.tr.next
	var b strings.Builder
	r.commit(&b)
	return token.New(typ, b.String(), start, r.tr.next, val)
}

// commit discards [tail, cur), one chunk segment at a time: each segment is
// fed to the position tracker and, if b is not nil, appended to b. Chunks
// wholly behind the new trailing edge are recycled.
//
func (r *Reader) commit(b *strings.Builder) {
	for a := r.tail; a < r.cur; {
		end := (a>>r.shift + 1) << r.shift
		if end > r.cur {
			end = r.cur
		}
		lo := a & r.mask
		seg := r.ring.at(a >> r.shift).data[lo : lo+end-a]
		r.tr.advance(seg)
		if b != nil {
			for _, c := range seg {
				b.WriteRune(c)
			}
		}
		a = end
	}
	r.tail = r.cur
	for r.ring.count > 0 && r.ring.headOrd < r.tail>>r.shift {
		r.free = append(r.free, r.ring.pop())
	}
}
