// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package html5tokenizer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// inputStream is a restartable stream of Unicode scalar values with
// char()/unget()/charsUntil(), line/column accounting, and a side-channel
// queue of decoder errors. The tokenizer's many one-rune-of-lookahead
// states lean on the unget stack.
type inputStream struct {
	r *bufio.Reader

	ungetStack []rune

	offset int // byte offset of the next unread rune
	line   int // 0-based
	col    int // 0-based

	file string

	// decodeErrors accumulates surrogate/non-character code points and
	// genuine byte-decoding failures seen while reading, surfaced to the
	// tokenizer as ParseError tokens in source order.
	decodeErrors []error
}

const errUnknownEncoding = tokenizeError("html5tokenizer: unknown encoding")

// newInputStreamFromText builds an inputStream over already-decoded text.
func newInputStreamFromText(text, file string) *inputStream {
	return &inputStream{r: bufio.NewReader(strings.NewReader(text)), file: file}
}

// newInputStreamFromBytes builds an inputStream over raw bytes, resolving
// an encoding.Encoding the same way golang.org/x/net/html/charset does it
// for the standard library's net/html: an explicit declaredEncoding always
// wins; otherwise, when parseMeta is true, charset.DetermineEncoding peeks
// at the first few kilobytes for a <meta charset=...> directive; otherwise
// the bytes are assumed UTF-8.
func newInputStreamFromBytes(b []byte, declaredEncoding string, parseMeta bool, file string) (*inputStream, error) {
	var enc encoding.Encoding

	if declaredEncoding != "" {
		e, err := htmlindex.Get(declaredEncoding)
		if err != nil {
			return nil, fmt.Errorf("%w %q", errUnknownEncoding, declaredEncoding)
		}
		enc = e
	} else if parseMeta {
		peek := b
		const sniffWindow = 4096
		if len(peek) > sniffWindow {
			peek = peek[:sniffWindow]
		}
		e, _, _ := charset.DetermineEncoding(peek, "")
		enc = e
	}

	var r io.Reader = strings.NewReader(string(b))
	if enc != nil {
		r = enc.NewDecoder().Reader(strings.NewReader(string(b)))
	}

	return &inputStream{r: bufio.NewReader(r), file: file}, nil
}

// char reads and returns the next scalar value, normalizing "\r\n" and a
// lone "\r" to "\n". ok is false at end-of-input.
func (in *inputStream) char() (rune, bool) {
	if n := len(in.ungetStack); n > 0 {
		r := in.ungetStack[n-1]
		in.ungetStack = in.ungetStack[:n-1]
		in.advancePosition(r)
		return r, true
	}

	r, size, err := in.r.ReadRune()
	if err != nil {
		return 0, false
	}
	if r == utf8.RuneError && size <= 1 {
		in.decodeErrors = append(in.decodeErrors, fmt.Errorf("html5tokenizer: invalid byte sequence at offset %d", in.offset))
		in.advancePosition(r)
		return '�', true
	}

	consumedExtra := 0
	if r == '\r' {
		next, nextSize, nextErr := in.r.ReadRune()
		switch {
		case nextErr == nil && next == '\n':
			consumedExtra = nextSize
		case nextErr == nil:
			in.r.UnreadRune()
		}
		r = '\n'
	}

	if isSurrogate(r) || isNonCharacter(int(r)) {
		in.decodeErrors = append(in.decodeErrors, fmt.Errorf("html5tokenizer: disallowed code point U+%04X at offset %d", r, in.offset))
	}

	in.advancePosition(r)
	in.offset += consumedExtra
	return r, true
}

func isSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDFFF
}

// unget pushes one scalar back onto the stream; LIFO.
func (in *inputStream) unget(r rune) {
	in.ungetStack = append(in.ungetStack, r)
	in.retreatPosition(r)
}

// charsUntil consumes and returns the run of scalars up to the first
// member of stopSet (or, when invert is set, the first non-member),
// leaving the stopping scalar unconsumed.
func (in *inputStream) charsUntil(stopSet map[rune]bool, invert bool) string {
	var b strings.Builder
	for {
		r, ok := in.char()
		if !ok {
			return b.String()
		}
		inSet := stopSet[r]
		stop := inSet
		if invert {
			stop = !inSet
		}
		if stop {
			in.unget(r)
			return b.String()
		}
		b.WriteRune(r)
	}
}

func (in *inputStream) advancePosition(r rune) {
	in.offset += utf8.RuneLen(r)
	if r == '\n' {
		in.line++
		in.col = 0
	} else {
		in.col++
	}
}

// retreatPosition is an approximation: it undoes the simple offset/line/
// column bookkeeping for one rune. The tokenizer only pushes back runes it
// has just read, in reverse order of reading (up to a few at a time), so
// the offset is restored rune by rune, except that a "\n" normalized from
// "\r\n" gives back one byte rather than two until it is read again. The
// column is not reconstructed after crossing a newline.
func (in *inputStream) retreatPosition(r rune) {
	in.offset -= utf8.RuneLen(r)
	if r == '\n' {
		in.line--
	} else if in.col > 0 {
		in.col--
	}
}

// position returns the current byte offset, used for SourceSpan bookkeeping.
func (in *inputStream) position() int { return in.offset }

// lineNumber returns the current 1-based line number.
func (in *inputStream) lineNumber() int { return in.line + 1 }
