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

// stateTagOpen implements the TagOpen state.
func (t *Tokenizer) stateTagOpen() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrExpectedTagName, nil)
		t.emitCharacters("<")
		return false
	}
	switch {
	case r == '!':
		t.State = MarkupDeclarationOpen
		return true
	case r == '/':
		t.State = CloseTagOpen
		return true
	case isLetter(r):
		t.resetTag(false)
		t.tagName.WriteRune(r)
		t.State = TagName
		return true
	case r == '>':
		t.addError(ErrExpectedTagNameButGotRightBracket, nil)
		t.emitCharacters("<>")
		t.State = Data
		return true
	case r == '?':
		if t.opts.AllowProcessingInstructions {
			t.resetPI()
			t.State = ProcessingInstructionState
			return true
		}
		t.in.unget(r)
		t.addError(ErrExpectedTagName, nil)
		t.State = BogusComment
		return true
	default:
		t.addError(ErrExpectedTagName, nil)
		t.in.unget(r)
		t.emitCharacters("<")
		t.State = Data
		return true
	}
}

// stateCloseTagOpen implements the CloseTagOpen state handling
// (covered by the TagOpen bullet's "/" branch and the general end-tag
// machinery described under TagName/appropriate-end-tag).
func (t *Tokenizer) stateCloseTagOpen() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrExpectedClosingTagButGot, nil)
		t.emitCharacters("</")
		return false
	}
	switch {
	case isLetter(r):
		t.resetTag(true)
		t.tagName.WriteRune(r)
		t.State = TagName
		return true
	case r == '>':
		t.addError(ErrExpectedClosingTagButGot, nil)
		t.State = Data
		return true
	default:
		t.in.unget(r)
		t.addError(ErrExpectedClosingTagButGot, nil)
		t.State = BogusComment
		return true
	}
}

// stateTagName implements the TagName state.
func (t *Tokenizer) stateTagName() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInTagName, nil)
		return false
	}
	switch {
	case isWhitespace(r):
		t.State = BeforeAttributeName
		return true
	case r == '/':
		t.State = SelfClosingStartTag
		return true
	case r == '>':
		t.emitCurrentTag()
		return true
	case r == 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.tagName.WriteRune('�')
		return true
	default:
		t.tagName.WriteRune(r)
		return true
	}
}

// genericLessThanSign implements the shared shape of RcdataLessThanSign /
// RawtextLessThanSign: "/" opens an end-tag attempt, anything else is a
// literal "<" and a return to the calling text state.
func (t *Tokenizer) genericLessThanSign(openState, fallbackState State) bool {
	r, ok := t.in.char()
	if ok && r == '/' {
		t.tempBuffer.Reset()
		t.State = openState
		return true
	}
	if ok {
		t.in.unget(r)
	}
	t.textBuf.WriteByte('<')
	t.State = fallbackState
	return true
}

// genericEndTagOpen implements the shared shape of RcdataEndTagOpen /
// RawtextEndTagOpen / ScriptDataEndTagOpen / ScriptDataEscapedEndTagOpen.
func (t *Tokenizer) genericEndTagOpen(nameState, fallbackState State) bool {
	r, ok := t.in.char()
	if ok && isLetter(r) {
		t.resetTag(true)
		t.in.unget(r)
		t.State = nameState
		return true
	}
	if ok {
		t.in.unget(r)
	}
	t.textBuf.WriteString("</")
	t.State = fallbackState
	return true
}

// genericEndTagName implements the shared shape of RcdataEndTagName /
// RawtextEndTagName / ScriptDataEndTagName / ScriptDataEscapedEndTagName:
// only an "appropriate end tag" is actually treated as a tag;
// otherwise everything read so far is reconsumed as literal text in
// fallbackState.
func (t *Tokenizer) genericEndTagName(fallbackState State) bool {
	r, ok := t.in.char()
	if !ok {
		t.textBuf.WriteString("</" + t.tempBuffer.String())
		t.State = fallbackState
		return true
	}
	appropriate := t.appropriateEndTag()
	switch {
	case isLetter(r):
		t.tagName.WriteRune(r)
		t.tempBuffer.WriteRune(r)
		return true
	case isWhitespace(r) && appropriate:
		t.State = BeforeAttributeName
		return true
	case r == '/' && appropriate:
		t.State = SelfClosingStartTag
		return true
	case r == '>' && appropriate:
		t.emitCurrentTag()
		return true
	default:
		t.in.unget(r)
		t.textBuf.WriteString("</" + t.tempBuffer.String())
		t.State = fallbackState
		return true
	}
}

func (t *Tokenizer) stateRcdataLessThanSign() bool {
	return t.genericLessThanSign(RcdataEndTagOpen, Rcdata)
}

func (t *Tokenizer) stateRcdataEndTagOpen() bool {
	return t.genericEndTagOpen(RcdataEndTagName, Rcdata)
}

func (t *Tokenizer) stateRcdataEndTagName() bool {
	return t.genericEndTagName(Rcdata)
}

func (t *Tokenizer) stateRawtextLessThanSign() bool {
	return t.genericLessThanSign(RawtextEndTagOpen, Rawtext)
}

func (t *Tokenizer) stateRawtextEndTagOpen() bool {
	return t.genericEndTagOpen(RawtextEndTagName, Rawtext)
}

func (t *Tokenizer) stateRawtextEndTagName() bool {
	return t.genericEndTagName(Rawtext)
}

// stateScriptDataLessThanSign implements the ScriptData state "<"
// lookahead: in addition to the end-tag attempt it recognizes "<!" which
// starts the escape sub-machine.
func (t *Tokenizer) stateScriptDataLessThanSign() bool {
	r, ok := t.in.char()
	switch {
	case ok && r == '/':
		t.tempBuffer.Reset()
		t.State = ScriptDataEndTagOpen
		return true
	case ok && r == '!':
		t.textBuf.WriteString("<!")
		t.State = ScriptDataEscapeStart
		return true
	}
	if ok {
		t.in.unget(r)
	}
	t.textBuf.WriteByte('<')
	t.State = ScriptData
	return true
}

func (t *Tokenizer) stateScriptDataEndTagOpen() bool {
	return t.genericEndTagOpen(ScriptDataEndTagName, ScriptData)
}

func (t *Tokenizer) stateScriptDataEndTagName() bool {
	return t.genericEndTagName(ScriptData)
}

func (t *Tokenizer) stateScriptDataEscapeStart() bool {
	r, ok := t.in.char()
	if ok && r == '-' {
		t.textBuf.WriteByte('-')
		t.State = ScriptDataEscapeStartDash
		return true
	}
	if ok {
		t.in.unget(r)
	}
	t.State = ScriptData
	return true
}

func (t *Tokenizer) stateScriptDataEscapeStartDash() bool {
	r, ok := t.in.char()
	if ok && r == '-' {
		t.textBuf.WriteByte('-')
		t.State = ScriptDataEscapedDashDash
		return true
	}
	if ok {
		t.in.unget(r)
	}
	t.State = ScriptData
	return true
}

func (t *Tokenizer) stateScriptDataEscaped() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInScriptInScript, nil)
		t.flushTextBuf()
		return false
	}
	switch r {
	case '-':
		t.textBuf.WriteByte('-')
		t.State = ScriptDataEscapedDash
		return true
	case '<':
		t.flushTextBuf()
		t.State = ScriptDataEscapedLessThanSign
		return true
	case 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.textBuf.WriteRune('�')
		return true
	default:
		t.textBuf.WriteRune(r)
		return true
	}
}

func (t *Tokenizer) stateScriptDataEscapedDash() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInScriptInScript, nil)
		t.flushTextBuf()
		return false
	}
	switch r {
	case '-':
		t.textBuf.WriteByte('-')
		t.State = ScriptDataEscapedDashDash
		return true
	case '<':
		t.flushTextBuf()
		t.State = ScriptDataEscapedLessThanSign
		return true
	case 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.textBuf.WriteRune('�')
		t.State = ScriptDataEscaped
		return true
	default:
		t.textBuf.WriteRune(r)
		t.State = ScriptDataEscaped
		return true
	}
}

// stateScriptDataEscapedDashDash implements the DashDash transition as the
// WHATWG spec gives it; some older tokenizers confused Dash and DashDash
// at this exact point.
func (t *Tokenizer) stateScriptDataEscapedDashDash() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInScriptInScript, nil)
		t.flushTextBuf()
		return false
	}
	switch r {
	case '-':
		t.textBuf.WriteByte('-')
		return true
	case '<':
		t.flushTextBuf()
		t.State = ScriptDataEscapedLessThanSign
		return true
	case '>':
		t.textBuf.WriteByte('>')
		t.State = ScriptData
		return true
	case 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.textBuf.WriteRune('�')
		t.State = ScriptDataEscaped
		return true
	default:
		t.textBuf.WriteRune(r)
		t.State = ScriptDataEscaped
		return true
	}
}

func (t *Tokenizer) stateScriptDataEscapedLessThanSign() bool {
	r, ok := t.in.char()
	if ok && r == '/' {
		t.tempBuffer.Reset()
		t.State = ScriptDataEscapedEndTagOpen
		return true
	}
	if ok && isLetter(r) {
		t.tempBuffer.Reset()
		t.in.unget(r)
		t.textBuf.WriteByte('<')
		t.State = ScriptDataDoubleEscapeStart
		return true
	}
	if ok {
		t.in.unget(r)
	}
	t.textBuf.WriteByte('<')
	t.State = ScriptDataEscaped
	return true
}

func (t *Tokenizer) stateScriptDataEscapedEndTagOpen() bool {
	return t.genericEndTagOpen(ScriptDataEscapedEndTagName, ScriptDataEscaped)
}

func (t *Tokenizer) stateScriptDataEscapedEndTagName() bool {
	return t.genericEndTagName(ScriptDataEscaped)
}

// stateScriptDataDoubleEscapeStart matches the temporary buffer against
// "script" case-insensitively once a whitespace, "/" or ">" terminator
// is seen.
func (t *Tokenizer) stateScriptDataDoubleEscapeStart() bool {
	r, ok := t.in.char()
	if !ok {
		t.State = ScriptDataEscaped
		return true
	}
	switch {
	case isWhitespace(r) || r == '/' || r == '>':
		t.textBuf.WriteRune(r)
		if asciiLower(t.tempBuffer.String()) == "script" {
			t.State = ScriptDataDoubleEscaped
		} else {
			t.State = ScriptDataEscaped
		}
		return true
	case isLetter(r):
		t.tempBuffer.WriteRune(r)
		t.textBuf.WriteRune(r)
		return true
	default:
		t.in.unget(r)
		t.State = ScriptDataEscaped
		return true
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscaped() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInScriptInScript, nil)
		t.flushTextBuf()
		return false
	}
	switch r {
	case '-':
		t.textBuf.WriteByte('-')
		t.State = ScriptDataDoubleEscapedDash
		return true
	case '<':
		t.textBuf.WriteByte('<')
		t.State = ScriptDataDoubleEscapedLessThanSign
		return true
	case 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.textBuf.WriteRune('�')
		return true
	default:
		t.textBuf.WriteRune(r)
		return true
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedDash() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInScriptInScript, nil)
		t.flushTextBuf()
		return false
	}
	switch r {
	case '-':
		t.textBuf.WriteByte('-')
		t.State = ScriptDataDoubleEscapedDashDash
		return true
	case '<':
		t.textBuf.WriteByte('<')
		t.State = ScriptDataDoubleEscapedLessThanSign
		return true
	case 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.textBuf.WriteRune('�')
		t.State = ScriptDataDoubleEscaped
		return true
	default:
		t.textBuf.WriteRune(r)
		t.State = ScriptDataDoubleEscaped
		return true
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedDashDash() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInScriptInScript, nil)
		t.flushTextBuf()
		return false
	}
	switch r {
	case '-':
		t.textBuf.WriteByte('-')
		return true
	case '<':
		t.textBuf.WriteByte('<')
		t.State = ScriptDataDoubleEscapedLessThanSign
		return true
	case '>':
		t.textBuf.WriteByte('>')
		t.State = ScriptData
		return true
	case 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.textBuf.WriteRune('�')
		t.State = ScriptDataDoubleEscaped
		return true
	default:
		t.textBuf.WriteRune(r)
		t.State = ScriptDataDoubleEscaped
		return true
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedLessThanSign() bool {
	r, ok := t.in.char()
	if ok && r == '/' {
		t.tempBuffer.Reset()
		t.textBuf.WriteByte('/')
		t.State = ScriptDataDoubleEscapeEnd
		return true
	}
	if ok {
		t.in.unget(r)
	}
	t.State = ScriptDataDoubleEscaped
	return true
}

func (t *Tokenizer) stateScriptDataDoubleEscapeEnd() bool {
	r, ok := t.in.char()
	if !ok {
		t.State = ScriptDataDoubleEscaped
		return true
	}
	switch {
	case isWhitespace(r) || r == '/' || r == '>':
		t.textBuf.WriteRune(r)
		if asciiLower(t.tempBuffer.String()) == "script" {
			t.State = ScriptDataEscaped
		} else {
			t.State = ScriptDataDoubleEscaped
		}
		return true
	case isLetter(r):
		t.tempBuffer.WriteRune(r)
		t.textBuf.WriteRune(r)
		return true
	default:
		t.in.unget(r)
		t.State = ScriptDataDoubleEscaped
		return true
	}
}
