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
	"bufio"
	"io"
	"strings"
)

// A Source supplies characters to a Reader in blocks.
//
// ReadChars fills p with up to len(p) characters and returns the number of
// characters obtained. It returns 0, io.EOF only at permanent end of input.
// Any other error is propagated unchanged to the Reader's caller; retrying is
// the Source's business, not the Reader's.
//
// Close releases the underlying input. The Reader calls it at most once.
//
type Source interface {
	ReadChars(p []rune) (n int, err error)
	Close() error
}

type runeSource struct {
	r io.RuneReader
	c io.Closer // nil if the input needs no closing
}

// NewSource returns a Source reading UTF-8 text from r. If r implements
// io.RuneReader it is used directly, otherwise it is wrapped in a
// bufio.Reader. If r implements io.Closer, closing the Source closes r.
//
func NewSource(r io.Reader) Source {
	s := &runeSource{}
	if rr, ok := r.(io.RuneReader); ok {
		s.r = rr
	} else {
		s.r = bufio.NewReader(r)
	}
	if c, ok := r.(io.Closer); ok {
		s.c = c
	}
	return s
}

// NewStringSource returns a Source reading from the string s.
//
func NewStringSource(s string) Source {
	return &runeSource{r: strings.NewReader(s)}
}

func (s *runeSource) ReadChars(p []rune) (int, error) {
	n := 0
	for n < len(p) {
		r, _, err := s.r.ReadRune()
		if err != nil {
			if n > 0 && err == io.EOF {
				return n, nil
			}
			return n, err
		}
		p[n] = r
		n++
	}
	return n, nil
}

func (s *runeSource) Close() error {
	if s.c != nil {
		return s.c.Close()
	}
	return nil
}
