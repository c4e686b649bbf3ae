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
	"errors"
	"io"
	"math/bits"

	"github.com/lexholm/scanio/token"
)

// EOF is the character returned by Peek and Read at end of input.
//
const EOF rune = -1

// Errors returned by Reader operations.
//
var (
	// ErrClosed is returned by any operation invoked after Close.
	ErrClosed = errors.New("scanio: reader is closed")
	// ErrNegativeCount is returned when a negative offset or count is passed
	// to PeekAhead, ReadAhead or UngetN. It is reported before any state is
	// touched.
	ErrNegativeCount = errors.New("scanio: negative count")
)

// A Reader is a buffered character source with unbounded lookahead, bounded
// pushback and line/column position tracking.
//
// Characters read from the Source accumulate in a ring of fixed-capacity
// chunks. Three cursors walk that ring, as absolute character indexes with
// tail <= cur <= frontier:
//
//	tail      trailing edge of the retained window (last commit)
//	cur       the read cursor
//	frontier  end of the data obtained from the Source so far
//
// Read and Unget move cur between tail and frontier. Peek fills the ring past
// cur without moving it; there is no bound on how far ahead it may look.
// Drop, Accept and AcceptToken move tail up to cur, feed the characters in
// between to the position tracker, and recycle chunks that fell wholly behind
// tail. Memory use is therefore bounded by the longest retained window, not
// by the length of the input.
//
// A Reader is not safe for concurrent use.
//
type Reader struct {
	src  Source // nil once closed
	ring chunkRing
	free []*chunk // retired chunks, reused before allocating

	mask  int // chunk size - 1
	shift int // log2 of chunk size

	tail     int
	cur      int
	frontier int

	eof bool // the source reported permanent end of input
	tr  tracker
}

// New returns a Reader drawing characters from src.
//
func New(src Source, opts ...Option) *Reader {
	o := defaults
	for _, opt := range opts {
		opt(&o)
	}
	return &Reader{
		src:   src,
		ring:  chunkRing{chunks: make([]*chunk, 4)},
		mask:  o.chunkSize - 1,
		shift: bits.TrailingZeros(uint(o.chunkSize)),
		tr:    newTracker(o.tabWidth),
	}
}

// Index returns the net number of characters consumed so far: characters
// returned by Read minus characters recovered by Unget. Peeks do not count.
//
func (r *Reader) Index() int {
	return r.cur
}

// StartPos returns the position of the first character of the pending
// (uncommitted) window, i.e. where the next committed lexeme will start.
//
func (r *Reader) StartPos() token.Position {
	return r.tr.next
}

// BeforeStartPos returns the position of the last committed character, or
// token.NoPos if nothing has been committed yet.
//
func (r *Reader) BeforeStartPos() token.Position {
	return r.tr.last
}

// Peek returns the character at the read cursor without consuming it, or EOF
// at end of input.
//
func (r *Reader) Peek() (rune, error) {
	return r.PeekAhead(0)
}

// PeekAhead returns the character k positions ahead of the read cursor
// without consuming anything, filling the ring as far as needed. There is no
// upper bound on k; at end of input it returns EOF. A negative k fails with
// ErrNegativeCount.
//
func (r *Reader) PeekAhead(k int) (rune, error) {
	if r.src == nil {
		return 0, ErrClosed
	}
	if k < 0 {
		return 0, ErrNegativeCount
	}
	for r.cur+k >= r.frontier {
		n, err := r.fill()
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return EOF, nil
		}
	}
	return r.at(r.cur + k), nil
}

// Read returns the character at the read cursor and consumes it. At end of
// input it returns EOF and consumes nothing.
//
func (r *Reader) Read() (rune, error) {
	c, err := r.Peek()
	if err != nil {
		return 0, err
	}
	if c != EOF {
		r.cur++
	}
	return c, nil
}

// ReadAhead consumes k+1 characters and returns the last of them. Skipped
// characters count as read. If end of input is hit first, ReadAhead consumes
// the characters that do exist and returns EOF. A negative k fails with
// ErrNegativeCount.
//
func (r *Reader) ReadAhead(k int) (rune, error) {
	c, err := r.PeekAhead(k)
	if err != nil {
		return 0, err
	}
	if c == EOF {
		r.cur = r.frontier
		return EOF, nil
	}
	r.cur += k + 1
	return c, nil
}

// Unget moves the read cursor back one character. It returns false, without
// moving, once the cursor is back at the last commit: committed characters
// cannot be recovered.
//
func (r *Reader) Unget() (bool, error) {
	if r.src == nil {
		return false, ErrClosed
	}
	if r.cur == r.tail {
		return false, nil
	}
	r.cur--
	return true, nil
}

// UngetN moves the read cursor back up to n characters, stopping early at the
// last commit, and returns the number of characters actually recovered. A
// short count is not an error. A negative n fails with ErrNegativeCount.
//
func (r *Reader) UngetN(n int) (int, error) {
	if r.src == nil {
		return 0, ErrClosed
	}
	if n < 0 {
		return 0, ErrNegativeCount
	}
	if m := r.cur - r.tail; n > m {
		n = m
	}
	r.cur -= n
	return n, nil
}

// Close releases the underlying Source. Close is idempotent; the Source is
// closed exactly once, and any subsequent Reader operation fails with
// ErrClosed.
//
func (r *Reader) Close() error {
	if r.src == nil {
		return nil
	}
	src := r.src
	r.src = nil
	return src.Close()
}

// at returns the character at absolute index a, which must lie in
// [tail, frontier).
//
func (r *Reader) at(a int) rune {
	return r.ring.at(a >> r.shift).data[a&r.mask]
}

// fill obtains more characters from the source into the frontier chunk,
// acquiring a fresh chunk first if the frontier sits at a chunk boundary.
// It returns the number of characters obtained; 0 means permanent end of
// input, which is latched so the source is never touched again.
//
func (r *Reader) fill() (int, error) {
	if r.eof {
		return 0, nil
	}
	ord := r.frontier >> r.shift
	if ord == r.ring.headOrd+r.ring.count {
		var c *chunk
		if n := len(r.free); n > 0 {
			c = r.free[n-1]
			r.free = r.free[:n-1]
		} else {
			c = &chunk{data: make([]rune, r.mask+1)}
		}
		r.ring.push(c)
	}
	buf := r.ring.at(ord).data[r.frontier&r.mask:]

	for i := 0; i < 100; i++ {
		n, err := r.src.ReadChars(buf)
		r.frontier += n
		if err == io.EOF {
			r.eof = true
			return n, nil
		}
		if n > 0 || err != nil {
			return n, err
		}
	}

	return 0, io.ErrNoProgress
}
