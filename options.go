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

type options struct {
	tabWidth  int
	chunkSize int
}

var defaults = options{
	tabWidth:  8,
	chunkSize: 512,
}

// An Option is a configuration option for a new Reader.
//
type Option func(*options)

// TabWidth sets the distance between tab stops used for column tracking.
// The default is 8. Values below 1 are treated as 1.
//
func TabWidth(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.tabWidth = n
	}
}

// ChunkSize sets the capacity, in characters, of the buffer chunks the
// Reader allocates. The value is rounded up to a power of two; the default
// is 512. Smaller chunks reduce the memory floor, larger chunks reduce
// per-fill overhead.
//
func ChunkSize(n int) Option {
	return func(o *options) {
		size := 2
		for size < n {
			size *= 2
		}
		o.chunkSize = size
	}
}
