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

/*
Package scanio provides the character-source layer that hand-written lexers
and scanners are built on: a forward-only input stream turned into a buffer
with unbounded lookahead, bounded pushback and exact line/column tracking.

Package scanio deliberately knows nothing about lexical rules. It supplies
positioned characters and lets the caller decide where lexemes begin and end;
the caller marks a lexeme by committing the characters read so far.

The retained window

A Reader keeps every character between the last commit and the read cursor,
so any of them can be pushed back with Unget:

	r := scanio.New(scanio.NewStringSource("let x = 1"))
	c, _ := r.Read()        // 'l'
	c, _ = r.Read()         // 'e'
	ok, _ := r.Unget()      // back to 'e', ok == true
	c, _ = r.Read()         // 'e' again
	_ = c

Lookahead is separate from pushback and unlimited: PeekAhead(k) walks as far
ahead of the cursor as needed, pulling more input into the buffer, without
consuming anything.

Committing a Drop, Accept or AcceptToken makes the characters behind the
cursor permanent: they receive final line/column positions, the buffer space
holding them becomes reusable, and Unget can no longer reach them. A scanner
typically reads to the end of a lexeme, then:

	tok, _ := r.AcceptToken(tokIdent, nil)
	// tok.Text()  == "let"
	// tok.Start() == 1:1, tok.End() == 1:4

Because commits bound the pushback history, they also bound memory: the
Reader holds on to at most the longest retained window plus one chunk of
lookahead, regardless of the total input length.

Positions

Positions are tracked only for committed characters, on the way out of the
window. This is what keeps lookahead cheap and pushback trivial: the tracker
moves strictly forward and never needs to undo a tab expansion or a line
break. StartPos is the position of the first uncommitted character, i.e.
where the next lexeme will start; BeforeStartPos is the position of the last
committed character. Tabs advance the column to the next tab stop (see
TabWidth); '\n', '\r' and "\r\n" each terminate a line.

Input

Characters come from a Source, which supplies them in blocks and reports
permanent end of input with io.EOF. NewSource adapts any io.Reader producing
UTF-8 text; NewStringSource reads from a string. End of input is not an
error: Peek and Read return the EOF sentinel rune, and pushback exhaustion
reports a false/short result. Errors are reserved for misuse (ErrClosed,
ErrNegativeCount) and for real I/O failures from the Source.

A Reader is exclusively owned by one goroutine; none of its operations are
safe for concurrent use on the same instance.
*/
package scanio
