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

// resetDoctype clears the doctype accumulators for a new <!DOCTYPE
// declaration. Correct starts true and is flipped by the first parse
// error anywhere along the doctype path.
func (t *Tokenizer) resetDoctype() {
	t.doctypeName.Reset()
	t.doctypePublic.Reset()
	t.doctypeSystem.Reset()
	t.haveDoctypePub = false
	t.haveDoctypeSys = false
	t.doctypeCorrect = true
}

// doctypeError reports a parse error inside the doctype path and flips
// the Correct flag: Correct survives only a doctype parsed without any
// error state along its path.
func (t *Tokenizer) doctypeError(kind ErrorKind) {
	t.addError(kind, nil)
	t.doctypeCorrect = false
}

func (t *Tokenizer) emitDoctype() {
	d := Doctype{Name: asciiLower(t.doctypeName.String()), Correct: t.doctypeCorrect, span: t.span()}
	if t.haveDoctypePub {
		id := t.doctypePublic.String()
		d.PublicID = &id
	}
	if t.haveDoctypeSys {
		id := t.doctypeSystem.String()
		d.SystemID = &id
	}
	t.doctypeBuf = d
	t.emit(&t.doctypeBuf)
}

// stateDoctype implements the Doctype state, entered right after
// MarkupDeclarationOpen matched the case-insensitive DOCTYPE keyword.
func (t *Tokenizer) stateDoctype() bool {
	r, ok := t.in.char()
	if !ok {
		t.doctypeError(ErrExpectedDoctypeNameButGotEOF)
		t.emitDoctype()
		return false
	}
	if isWhitespace(r) {
		t.State = BeforeDoctypeName
		return true
	}
	t.doctypeError(ErrNeedSpaceAfterDoctype)
	t.in.unget(r)
	t.State = BeforeDoctypeName
	return true
}

func (t *Tokenizer) stateBeforeDoctypeName() bool {
	r, ok := t.in.char()
	if !ok {
		t.doctypeError(ErrExpectedDoctypeNameButGotEOF)
		t.emitDoctype()
		return false
	}
	switch {
	case isWhitespace(r):
		return true
	case r == '>':
		t.doctypeError(ErrExpectedDoctypeNameButGotRightBracket)
		t.emitDoctype()
		t.State = Data
		return true
	case r == 0:
		t.doctypeError(ErrInvalidCodepoint)
		t.doctypeName.WriteRune('�')
		t.State = DoctypeName
		return true
	default:
		t.doctypeName.WriteRune(r)
		t.State = DoctypeName
		return true
	}
}

func (t *Tokenizer) stateDoctypeName() bool {
	r, ok := t.in.char()
	if !ok {
		t.doctypeError(ErrEOFInDoctypeName)
		t.emitDoctype()
		return false
	}
	switch {
	case isWhitespace(r):
		t.State = AfterDoctypeName
		return true
	case r == '>':
		t.emitDoctype()
		t.State = Data
		return true
	case r == 0:
		t.doctypeError(ErrInvalidCodepoint)
		t.doctypeName.WriteRune('�')
		return true
	default:
		t.doctypeName.WriteRune(r)
		return true
	}
}

// stateAfterDoctypeName recognizes the PUBLIC and SYSTEM keywords
// case-insensitively as six-character exact matches; anything else enters
// BogusDoctype.
func (t *Tokenizer) stateAfterDoctypeName() bool {
	r, ok := t.in.char()
	if !ok {
		t.doctypeError(ErrEOFInDoctype)
		t.emitDoctype()
		return false
	}
	switch {
	case isWhitespace(r):
		return true
	case r == '>':
		t.emitDoctype()
		t.State = Data
		return true
	default:
		t.in.unget(r)
		if t.peekAndConsumeMatch("PUBLIC", true) {
			t.State = AfterDoctypePublicKeyword
			return true
		}
		if t.peekAndConsumeMatch("SYSTEM", true) {
			t.State = AfterDoctypeSystemKeyword
			return true
		}
		t.doctypeError(ErrExpectedSpaceOrRightBracketInDoctype)
		t.State = BogusDoctype
		return true
	}
}

func (t *Tokenizer) stateAfterDoctypePublicKeyword() bool {
	r, ok := t.in.char()
	if !ok {
		t.doctypeError(ErrEOFInDoctype)
		t.emitDoctype()
		return false
	}
	switch {
	case isWhitespace(r):
		t.State = BeforeDoctypePublicIdentifier
		return true
	case r == '"', r == '\'':
		t.doctypeError(ErrUnexpectedCharInDoctype)
		t.in.unget(r)
		t.State = BeforeDoctypePublicIdentifier
		return true
	default:
		t.in.unget(r)
		t.State = BeforeDoctypePublicIdentifier
		return true
	}
}

func (t *Tokenizer) stateBeforeDoctypePublicIdentifier() bool {
	r, ok := t.in.char()
	if !ok {
		t.doctypeError(ErrEOFInDoctype)
		t.emitDoctype()
		return false
	}
	switch {
	case isWhitespace(r):
		return true
	case r == '"':
		t.haveDoctypePub = true
		t.doctypePublic.Reset()
		t.State = DoctypePublicIdentifierDoubleQuoted
		return true
	case r == '\'':
		t.haveDoctypePub = true
		t.doctypePublic.Reset()
		t.State = DoctypePublicIdentifierSingleQuoted
		return true
	case r == '>':
		t.doctypeError(ErrUnexpectedEndOfDoctype)
		t.emitDoctype()
		t.State = Data
		return true
	default:
		t.doctypeError(ErrUnexpectedCharInDoctype)
		t.State = BogusDoctype
		return true
	}
}

// stateDoctypePublicIdentifierQuoted implements both quoted public
// identifier states, parameterized on the quote character.
func (t *Tokenizer) stateDoctypePublicIdentifierQuoted(quote rune) bool {
	r, ok := t.in.char()
	if !ok {
		t.doctypeError(ErrEOFInDoctype)
		t.emitDoctype()
		return false
	}
	switch {
	case r == quote:
		t.State = AfterDoctypePublicIdentifier
		return true
	case r == '>':
		t.doctypeError(ErrUnexpectedEndOfDoctype)
		t.emitDoctype()
		t.State = Data
		return true
	case r == 0:
		t.doctypeError(ErrInvalidCodepoint)
		t.doctypePublic.WriteRune('�')
		return true
	default:
		t.doctypePublic.WriteRune(r)
		return true
	}
}

func (t *Tokenizer) stateAfterDoctypePublicIdentifier() bool {
	r, ok := t.in.char()
	if !ok {
		t.doctypeError(ErrEOFInDoctype)
		t.emitDoctype()
		return false
	}
	switch {
	case isWhitespace(r):
		t.State = BetweenDoctypePublicAndSystemIdentifiers
		return true
	case r == '>':
		t.emitDoctype()
		t.State = Data
		return true
	case r == '"':
		t.doctypeError(ErrUnexpectedCharInDoctype)
		t.haveDoctypeSys = true
		t.doctypeSystem.Reset()
		t.State = DoctypeSystemIdentifierDoubleQuoted
		return true
	case r == '\'':
		t.doctypeError(ErrUnexpectedCharInDoctype)
		t.haveDoctypeSys = true
		t.doctypeSystem.Reset()
		t.State = DoctypeSystemIdentifierSingleQuoted
		return true
	default:
		t.doctypeError(ErrUnexpectedCharInDoctype)
		t.State = BogusDoctype
		return true
	}
}

func (t *Tokenizer) stateBetweenDoctypePublicAndSystemIdentifiers() bool {
	r, ok := t.in.char()
	if !ok {
		t.doctypeError(ErrEOFInDoctype)
		t.emitDoctype()
		return false
	}
	switch {
	case isWhitespace(r):
		return true
	case r == '>':
		t.emitDoctype()
		t.State = Data
		return true
	case r == '"':
		t.haveDoctypeSys = true
		t.doctypeSystem.Reset()
		t.State = DoctypeSystemIdentifierDoubleQuoted
		return true
	case r == '\'':
		t.haveDoctypeSys = true
		t.doctypeSystem.Reset()
		t.State = DoctypeSystemIdentifierSingleQuoted
		return true
	default:
		t.doctypeError(ErrUnexpectedCharInDoctype)
		t.State = BogusDoctype
		return true
	}
}

func (t *Tokenizer) stateAfterDoctypeSystemKeyword() bool {
	r, ok := t.in.char()
	if !ok {
		t.doctypeError(ErrEOFInDoctype)
		t.emitDoctype()
		return false
	}
	switch {
	case isWhitespace(r):
		t.State = BeforeDoctypeSystemIdentifier
		return true
	case r == '"', r == '\'':
		t.doctypeError(ErrUnexpectedCharInDoctype)
		t.in.unget(r)
		t.State = BeforeDoctypeSystemIdentifier
		return true
	default:
		t.in.unget(r)
		t.State = BeforeDoctypeSystemIdentifier
		return true
	}
}

func (t *Tokenizer) stateBeforeDoctypeSystemIdentifier() bool {
	r, ok := t.in.char()
	if !ok {
		t.doctypeError(ErrEOFInDoctype)
		t.emitDoctype()
		return false
	}
	switch {
	case isWhitespace(r):
		return true
	case r == '"':
		t.haveDoctypeSys = true
		t.doctypeSystem.Reset()
		t.State = DoctypeSystemIdentifierDoubleQuoted
		return true
	case r == '\'':
		t.haveDoctypeSys = true
		t.doctypeSystem.Reset()
		t.State = DoctypeSystemIdentifierSingleQuoted
		return true
	case r == '>':
		t.doctypeError(ErrUnexpectedEndOfDoctype)
		t.emitDoctype()
		t.State = Data
		return true
	default:
		t.doctypeError(ErrUnexpectedCharInDoctype)
		t.State = BogusDoctype
		return true
	}
}

func (t *Tokenizer) stateDoctypeSystemIdentifierQuoted(quote rune) bool {
	r, ok := t.in.char()
	if !ok {
		t.doctypeError(ErrEOFInDoctype)
		t.emitDoctype()
		return false
	}
	switch {
	case r == quote:
		t.State = AfterDoctypeSystemIdentifier
		return true
	case r == '>':
		t.doctypeError(ErrUnexpectedEndOfDoctype)
		t.emitDoctype()
		t.State = Data
		return true
	case r == 0:
		t.doctypeError(ErrInvalidCodepoint)
		t.doctypeSystem.WriteRune('�')
		return true
	default:
		t.doctypeSystem.WriteRune(r)
		return true
	}
}

func (t *Tokenizer) stateAfterDoctypeSystemIdentifier() bool {
	r, ok := t.in.char()
	if !ok {
		t.doctypeError(ErrEOFInDoctype)
		t.emitDoctype()
		return false
	}
	switch {
	case isWhitespace(r):
		return true
	case r == '>':
		t.emitDoctype()
		t.State = Data
		return true
	default:
		t.doctypeError(ErrUnexpectedCharInDoctype)
		t.State = BogusDoctype
		return true
	}
}

// stateBogusDoctype swallows everything up to the next ">" (or EOF) and
// then emits whatever was accumulated; Correct is already false on every
// path that reaches this state.
func (t *Tokenizer) stateBogusDoctype() bool {
	r, ok := t.in.char()
	if !ok {
		t.emitDoctype()
		return false
	}
	if r == '>' {
		t.emitDoctype()
		t.State = Data
		return true
	}
	return true
}
