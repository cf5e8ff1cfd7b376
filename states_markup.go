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

// peekAndConsumeMatch reads len(lit) runes and, if they match lit (folding
// case when fold is true), consumes them and returns true; otherwise it
// pushes everything it read back onto the input and returns false. This is
// the bounded multi-rune lookahead MarkupDeclarationOpen needs to tell
// "<!--", "<!DOCTYPE" and "<![CDATA[" apart.
func (t *Tokenizer) peekAndConsumeMatch(lit string, fold bool) bool {
	want := []rune(lit)
	read := make([]rune, 0, len(want))
	for _, w := range want {
		r, ok := t.in.char()
		if !ok {
			for i := len(read) - 1; i >= 0; i-- {
				t.in.unget(read[i])
			}
			return false
		}
		read = append(read, r)
		got := r
		if fold {
			got = asciiToLower(got)
			w = asciiToLower(w)
		}
		if got != w {
			for i := len(read) - 1; i >= 0; i-- {
				t.in.unget(read[i])
			}
			return false
		}
	}
	return true
}

// stateMarkupDeclarationOpen implements the MarkupDeclarationOpen state:
// a three-way lookahead for a comment, a DOCTYPE, or (only when CDATAAllowed
// reports a foreign-content context) a CDATA section, falling back to a
// bogus comment.
func (t *Tokenizer) stateMarkupDeclarationOpen() bool {
	if t.peekAndConsumeMatch("--", false) {
		t.commentData.Reset()
		t.State = CommentStart
		return true
	}
	if t.peekAndConsumeMatch("DOCTYPE", true) {
		t.resetDoctype()
		t.State = StateDoctype
		return true
	}
	if t.CDATAAllowed && t.peekAndConsumeMatch("[CDATA[", false) {
		t.textBuf.Reset()
		t.State = CdataSection
		return true
	}
	t.addError(ErrExpectedDashesOrDoctype, nil)
	t.commentData.Reset()
	t.State = BogusComment
	return true
}

// stateBogusComment implements the BogusComment state: everything up to
// the next ">" (or EOF) becomes comment data, verbatim except that NUL
// becomes U+FFFD.
func (t *Tokenizer) stateBogusComment() bool {
	r, ok := t.in.char()
	if !ok {
		t.emitComment()
		return false
	}
	switch r {
	case '>':
		t.emitComment()
		t.State = Data
		return true
	case 0:
		t.commentData.WriteRune('�')
		return true
	default:
		t.commentData.WriteRune(r)
		return true
	}
}

func (t *Tokenizer) emitComment() {
	t.commentBuf = Comment{Data: t.commentData.String(), span: t.span()}
	t.commentData.Reset()
	t.emit(&t.commentBuf)
}

// stateCommentStart implements the CommentStart state.
func (t *Tokenizer) stateCommentStart() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInComment, nil)
		t.emitComment()
		return false
	}
	switch r {
	case '-':
		t.State = CommentStartDash
		return true
	case '>':
		t.addError(ErrIncorrectComment, nil)
		t.emitComment()
		t.State = Data
		return true
	default:
		t.in.unget(r)
		t.State = StateComment
		return true
	}
}

// stateCommentStartDash implements the CommentStartDash state.
func (t *Tokenizer) stateCommentStartDash() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInComment, nil)
		t.emitComment()
		return false
	}
	switch r {
	case '-':
		t.State = CommentEnd
		return true
	case '>':
		t.addError(ErrIncorrectComment, nil)
		t.emitComment()
		t.State = Data
		return true
	default:
		t.commentData.WriteByte('-')
		t.in.unget(r)
		t.State = StateComment
		return true
	}
}

// stateComment implements the Comment state.
func (t *Tokenizer) stateComment() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInComment, nil)
		t.emitComment()
		return false
	}
	switch r {
	case '-':
		t.State = CommentEndDash
		return true
	case 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.commentData.WriteRune('�')
		return true
	default:
		t.commentData.WriteRune(r)
		return true
	}
}

// stateCommentEndDash implements the CommentEndDash state.
func (t *Tokenizer) stateCommentEndDash() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInCommentEndDash, nil)
		t.emitComment()
		return false
	}
	switch r {
	case '-':
		t.State = CommentEnd
		return true
	default:
		t.commentData.WriteByte('-')
		t.in.unget(r)
		t.State = StateComment
		return true
	}
}

// stateCommentEnd implements the CommentEnd state (the "--" lookahead
// for ">", "!", another "-", or anything else).
func (t *Tokenizer) stateCommentEnd() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInCommentDoubleDash, nil)
		t.emitComment()
		return false
	}
	switch r {
	case '>':
		t.emitComment()
		t.State = Data
		return true
	case '!':
		t.addError(ErrUnexpectedBangAfterDoubleDashInComment, nil)
		t.State = CommentEndBang
		return true
	case '-':
		t.addError(ErrUnexpectedDashAfterDoubleDashInComment, nil)
		t.commentData.WriteByte('-')
		return true
	default:
		t.addError(ErrUnexpectedCharInComment, nil)
		t.commentData.WriteString("--")
		t.in.unget(r)
		t.State = StateComment
		return true
	}
}

// stateCommentEndBang implements the CommentEndBang state: the "--!"
// lookahead behind the malformed-but-tolerated "<!--a--!>" case. The
// parse error was already reported when CommentEnd saw the "!".
func (t *Tokenizer) stateCommentEndBang() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInCommentEndBangState, nil)
		t.emitComment()
		return false
	}
	switch r {
	case '-':
		t.commentData.WriteString("--!")
		t.State = CommentEndDash
		return true
	case '>':
		t.emitComment()
		t.State = Data
		return true
	default:
		t.commentData.WriteString("--!")
		t.in.unget(r)
		t.State = StateComment
		return true
	}
}

// stateCdataSection scans a <![CDATA[ ... ]]> section: everything up to
// "]]>" becomes one Characters token, NUL becomes U+FFFD
// with a parse error, and an unterminated section runs to EOF. The
// trailing-"]" counter slides so "]]]>" keeps the extra "]" as data.
func (t *Tokenizer) stateCdataSection() bool {
	pending := 0 // trailing ']' runes not yet committed as data
	flushPending := func() {
		for ; pending > 0; pending-- {
			t.textBuf.WriteByte(']')
		}
	}
	for {
		r, ok := t.in.char()
		if !ok {
			flushPending()
			t.emitCdata()
			t.State = Data
			return false
		}
		switch {
		case r == ']':
			if pending == 2 {
				t.textBuf.WriteByte(']')
			} else {
				pending++
			}
		case r == '>' && pending == 2:
			t.emitCdata()
			t.State = Data
			return true
		case r == 0:
			flushPending()
			t.addError(ErrInvalidCodepoint, nil)
			t.textBuf.WriteRune('�')
		default:
			flushPending()
			t.textBuf.WriteRune(r)
		}
	}
}

// emitCdata flushes the accumulated section as a single Characters token
// (a Characters token even when all whitespace), or nothing when the
// section was empty.
func (t *Tokenizer) emitCdata() {
	if t.textBuf.Len() == 0 {
		return
	}
	s := t.textBuf.String()
	t.textBuf.Reset()
	t.emitCharacters(s)
}
