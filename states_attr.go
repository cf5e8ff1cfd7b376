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

// startAttr begins a new current attribute, the shared first step of
// BeforeAttributeName and AfterAttributeName's "anything else" bullets.
func (t *Tokenizer) startAttr(r rune) {
	t.haveAttrName = true
	t.attrName.Reset()
	t.attrName.WriteRune(r)
	t.curAttrValue.Reset()
}

// stateBeforeAttributeName implements the BeforeAttributeName state.
func (t *Tokenizer) stateBeforeAttributeName() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrExpectedAttributeNameButGotEOF, nil)
		return false
	}
	switch {
	case isWhitespace(r):
		return true
	case r == '/':
		t.State = SelfClosingStartTag
		return true
	case r == '>':
		t.emitCurrentTag()
		return true
	default:
		t.finishAttrIfAny()
		t.startAttr(r)
		t.State = AttributeName
		return true
	}
}

// stateAttributeName implements the AttributeName state.
func (t *Tokenizer) stateAttributeName() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInAttributeName, nil)
		t.finishAttrIfAny()
		return false
	}
	switch {
	case isWhitespace(r):
		t.State = AfterAttributeName
		return true
	case r == '/':
		t.finishAttrIfAny()
		t.State = SelfClosingStartTag
		return true
	case r == '>':
		t.finishAttrIfAny()
		t.emitCurrentTag()
		return true
	case r == '=':
		t.State = BeforeAttributeValue
		return true
	case r == '"', r == '\'', r == '<':
		t.addError(ErrInvalidCharacterInAttributeName, nil)
		t.attrName.WriteRune(r)
		return true
	case r == 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.attrName.WriteRune('�')
		return true
	default:
		t.attrName.WriteRune(r)
		return true
	}
}

// stateAfterAttributeName implements the AfterAttributeName state.
func (t *Tokenizer) stateAfterAttributeName() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInTagName, nil)
		t.finishAttrIfAny()
		return false
	}
	switch {
	case isWhitespace(r):
		return true
	case r == '/':
		t.finishAttrIfAny()
		t.State = SelfClosingStartTag
		return true
	case r == '=':
		t.State = BeforeAttributeValue
		return true
	case r == '>':
		t.finishAttrIfAny()
		t.emitCurrentTag()
		return true
	default:
		t.finishAttrIfAny()
		t.startAttr(r)
		t.State = AttributeName
		return true
	}
}

// stateBeforeAttributeValue implements the BeforeAttributeValue state.
func (t *Tokenizer) stateBeforeAttributeValue() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrExpectedAttributeValueButGot, nil)
		t.finishAttrIfAny()
		return false
	}
	switch {
	case isWhitespace(r):
		return true
	case r == '"':
		t.State = AttributeValueDoubleQuoted
		return true
	case r == '\'':
		t.State = AttributeValueSingleQuoted
		return true
	case r == '>':
		t.addError(ErrExpectedAttributeValueButGot, nil)
		t.finishAttrIfAny()
		t.emitCurrentTag()
		return true
	default:
		t.in.unget(r)
		t.State = AttributeValueUnquoted
		return true
	}
}

// stateAttributeValueQuoted implements both AttributeValueDoubleQuoted
// and AttributeValueSingleQuoted, parameterized on the quote character.
func (t *Tokenizer) stateAttributeValueQuoted(quote rune) bool {
	r, ok := t.in.char()
	if !ok {
		if quote == '"' {
			t.addError(ErrEOFInAttributeValueDoubleQuote, nil)
		} else {
			t.addError(ErrEOFInAttributeValueSingleQuote, nil)
		}
		t.finishAttrIfAny()
		return false
	}
	switch {
	case r == quote:
		t.finishAttrIfAny()
		t.State = AfterAttributeValue
		return true
	case r == '&':
		t.consumeCharacterReference(quote, true)
		return true
	case r == 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.curAttrValue.WriteRune('�')
		return true
	default:
		t.curAttrValue.WriteRune(r)
		return true
	}
}

// stateAttributeValueUnquoted implements the AttributeValueUnquoted state.
func (t *Tokenizer) stateAttributeValueUnquoted() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrEOFInAttributeValueNoQuotes, nil)
		t.finishAttrIfAny()
		return false
	}
	switch {
	case isWhitespace(r):
		t.finishAttrIfAny()
		t.State = BeforeAttributeName
		return true
	case r == '&':
		t.consumeCharacterReference('>', true)
		return true
	case r == '>':
		t.finishAttrIfAny()
		t.emitCurrentTag()
		return true
	case r == '=':
		t.addError(ErrEqualsInUnquotedAttributeValue, nil)
		t.curAttrValue.WriteRune(r)
		return true
	case r == '"', r == '\'', r == '<', r == '`':
		t.addError(ErrUnexpectedCharacterInUnquotedAttrValue, nil)
		t.curAttrValue.WriteRune(r)
		return true
	case r == 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.curAttrValue.WriteRune('�')
		return true
	default:
		t.curAttrValue.WriteRune(r)
		return true
	}
}

// stateAfterAttributeValue implements the AfterAttributeValue state.
func (t *Tokenizer) stateAfterAttributeValue() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrUnexpectedEOFAfterAttributeValue, nil)
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
	default:
		t.addError(ErrUnexpectedCharacterAfterAttributeValue, nil)
		t.in.unget(r)
		t.State = BeforeAttributeName
		return true
	}
}

// stateSelfClosingStartTag implements the SelfClosingStartTag state.
func (t *Tokenizer) stateSelfClosingStartTag() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrUnexpectedEOFAfterSolidusInTag, nil)
		return false
	}
	switch r {
	case '>':
		t.tagSelfClose = true
		t.emitCurrentTag()
		return true
	default:
		t.addError(ErrUnexpectedCharacterAfterSolidusInTag, nil)
		t.in.unget(r)
		t.State = BeforeAttributeName
		return true
	}
}
