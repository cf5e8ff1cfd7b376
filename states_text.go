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

// textBuf (a field on Tokenizer, see tokenizer.go) accumulates the current
// run of plain text shared by every text-bearing state (Data/Rcdata/
// Rawtext/ScriptData/Plaintext): only one of them is ever active at a
// time, so one reused buffer suffices.

// Stop sets for charsUntil: the runes each text state must inspect one at
// a time; everything in between is consumed as a run.
var (
	dataStops      = map[rune]bool{'&': true, '<': true, 0: true}
	rawtextStops   = map[rune]bool{'<': true, 0: true}
	plaintextStops = map[rune]bool{0: true}
)

// flushTextBuf emits whatever has accumulated in t.textBuf as a single
// Characters or SpaceCharacters token. Character tokens are emitted per
// contiguous run and never fused across an entity or a tag.
func (t *Tokenizer) flushTextBuf() {
	if t.textBuf.Len() == 0 {
		return
	}
	s := t.textBuf.String()
	t.textBuf.Reset()
	t.emitCharData(s)
}

// stateData implements the Data state.
func (t *Tokenizer) stateData() bool {
	r, ok := t.in.char()
	if !ok {
		t.flushTextBuf()
		return false
	}
	switch r {
	case '&':
		t.flushTextBuf()
		t.State = EntityData
		return true
	case '<':
		t.flushTextBuf()
		t.State = TagOpen
		return true
	case 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.textBuf.WriteRune(0)
		return true
	default:
		t.textBuf.WriteRune(r)
		t.textBuf.WriteString(t.in.charsUntil(dataStops, false))
		return true
	}
}

func (t *Tokenizer) stateEntityData() bool {
	t.consumeCharacterReference(0, false)
	t.State = Data
	return true
}

// stateRcdata implements the Rcdata state: like Data, but NUL
// becomes U+FFFD and '&' enters the RCDATA-flavored character-reference
// state, and "<" may start an end tag (RcdataLessThanSign).
func (t *Tokenizer) stateRcdata() bool {
	r, ok := t.in.char()
	if !ok {
		t.flushTextBuf()
		return false
	}
	switch r {
	case '&':
		t.flushTextBuf()
		t.State = CharacterReferenceInRcdata
		return true
	case '<':
		t.flushTextBuf()
		t.State = RcdataLessThanSign
		return true
	case 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.textBuf.WriteRune('�')
		return true
	default:
		t.textBuf.WriteRune(r)
		t.textBuf.WriteString(t.in.charsUntil(dataStops, false))
		return true
	}
}

func (t *Tokenizer) stateCharacterReferenceInRcdata() bool {
	t.consumeCharacterReference(0, false)
	t.State = Rcdata
	return true
}

// stateRawtext implements the Rawtext state: no character
// references at all, only the "<" end-tag lookahead and NUL replacement.
func (t *Tokenizer) stateRawtext() bool {
	r, ok := t.in.char()
	if !ok {
		t.flushTextBuf()
		return false
	}
	switch r {
	case '<':
		t.flushTextBuf()
		t.State = RawtextLessThanSign
		return true
	case 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.textBuf.WriteRune('�')
		return true
	default:
		t.textBuf.WriteRune(r)
		t.textBuf.WriteString(t.in.charsUntil(rawtextStops, false))
		return true
	}
}

// stateScriptData implements the ScriptData state: identical
// shape to Rawtext but with its own escape sub-machine reachable through
// ScriptDataLessThanSign.
func (t *Tokenizer) stateScriptData() bool {
	r, ok := t.in.char()
	if !ok {
		t.flushTextBuf()
		return false
	}
	switch r {
	case '<':
		t.flushTextBuf()
		t.State = ScriptDataLessThanSign
		return true
	case 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.textBuf.WriteRune('�')
		return true
	default:
		t.textBuf.WriteRune(r)
		t.textBuf.WriteString(t.in.charsUntil(rawtextStops, false))
		return true
	}
}

// statePlaintext implements the Plaintext state: it never leaves its
// state except at EOF.
func (t *Tokenizer) statePlaintext() bool {
	r, ok := t.in.char()
	if !ok {
		t.flushTextBuf()
		return false
	}
	if r == 0 {
		t.addError(ErrInvalidCodepoint, nil)
		t.textBuf.WriteRune('�')
		return true
	}
	t.textBuf.WriteRune(r)
	t.textBuf.WriteString(t.in.charsUntil(plaintextStops, false))
	return true
}
