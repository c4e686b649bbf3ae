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

// A chunk is one fixed-capacity slot of character storage. Chunks carry no
// links; the chunk of ordinal k holds the characters at absolute indexes
// [k*size, (k+1)*size), and chunkRing maps ordinals to slots.
//
type chunk struct {
	data []rune
}

// chunkRing is a FIFO of the live chunks, oldest first, backed by a circular
// slice that doubles when full. headOrd is the ordinal of the oldest live
// chunk; together with count it defines the live ordinal range.
//
type chunkRing struct {
	chunks  []*chunk
	head    int
	count   int
	headOrd int
}

func (q *chunkRing) push(c *chunk) {
	if q.count == len(q.chunks) {
		chunks := make([]*chunk, len(q.chunks)*2)
		copy(chunks, q.chunks[q.head:])
		copy(chunks[len(q.chunks)-q.head:], q.chunks[:q.head])
		q.head = 0
		q.chunks = chunks
	}
	q.chunks[(q.head+q.count)%len(q.chunks)] = c
	q.count++
}

// pop removes and returns the oldest live chunk. Callers must check that
// q.count > 0 beforehand.
//
func (q *chunkRing) pop() *chunk {
	c := q.chunks[q.head]
	q.chunks[q.head] = nil
	q.head = (q.head + 1) % len(q.chunks)
	q.headOrd++
	q.count--
	return c
}

// at returns the chunk of ordinal ord, which must lie in
// [headOrd, headOrd+count).
//
func (q *chunkRing) at(ord int) *chunk {
	return q.chunks[(q.head+ord-q.headOrd)%len(q.chunks)]
}
