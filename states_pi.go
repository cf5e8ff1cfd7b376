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

// Processing-instruction states. Recognizing <?target data?> at all is a
// superset of HTML5 (which treats "<?" as the start of a bogus comment);
// TagOpen only routes here when
// Options.AllowProcessingInstructions is set. Target and data are trimmed
// of leading whitespace; an unterminated PI is emitted with Correct=false.

func (t *Tokenizer) resetPI() {
	t.piTarget.Reset()
	t.piData.Reset()
}

func (t *Tokenizer) emitProcessingInstruction(correct bool) {
	t.piBuf = ProcessingInstruction{
		Target:  t.piTarget.String(),
		Data:    t.piData.String(),
		Correct: correct,
		span:    t.span(),
	}
	t.emit(&t.piBuf)
}

func (t *Tokenizer) stateProcessingInstruction() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrExpectedProcessingInstruction, nil)
		t.emitProcessingInstruction(false)
		return false
	}
	switch {
	case isWhitespace(r):
		return true
	case r == '?':
		t.State = ProcessingInstructionEnd
		return true
	case r == '>':
		t.addError(ErrExpectedProcessingInstruction, nil)
		t.emitProcessingInstruction(false)
		t.State = Data
		return true
	case r == 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.piTarget.WriteRune('�')
		t.State = ProcessingInstructionTarget
		return true
	default:
		t.piTarget.WriteRune(r)
		t.State = ProcessingInstructionTarget
		return true
	}
}

func (t *Tokenizer) stateProcessingInstructionTarget() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrExpectedProcessingInstruction, nil)
		t.emitProcessingInstruction(false)
		return false
	}
	switch {
	case isWhitespace(r):
		t.State = AfterProcessingInstructionTarget
		return true
	case r == '?':
		t.State = ProcessingInstructionEnd
		return true
	case r == 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.piTarget.WriteRune('�')
		return true
	default:
		t.piTarget.WriteRune(r)
		return true
	}
}

func (t *Tokenizer) stateAfterProcessingInstructionTarget() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrExpectedProcessingInstruction, nil)
		t.emitProcessingInstruction(false)
		return false
	}
	switch {
	case isWhitespace(r):
		return true
	case r == '?':
		t.State = ProcessingInstructionEnd
		return true
	default:
		t.in.unget(r)
		t.State = ProcessingInstructionData
		return true
	}
}

func (t *Tokenizer) stateProcessingInstructionData() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrExpectedProcessingInstruction, nil)
		t.emitProcessingInstruction(false)
		return false
	}
	switch {
	case r == '?':
		t.State = ProcessingInstructionEnd
		return true
	case r == 0:
		t.addError(ErrInvalidCodepoint, nil)
		t.piData.WriteRune('�')
		return true
	default:
		t.piData.WriteRune(r)
		return true
	}
}

// stateProcessingInstructionEnd has seen one "?" that may or may not close
// the PI: ">" closes it, another "?" keeps the previous "?" as literal data
// (so "a??>" yields data "a?"), anything else returns to the data state.
func (t *Tokenizer) stateProcessingInstructionEnd() bool {
	r, ok := t.in.char()
	if !ok {
		t.addError(ErrExpectedProcessingInstruction, nil)
		t.emitProcessingInstruction(false)
		return false
	}
	switch {
	case r == '>':
		t.emitProcessingInstruction(true)
		t.State = Data
		return true
	case r == '?':
		t.piData.WriteByte('?')
		return true
	default:
		t.piData.WriteByte('?')
		t.piData.WriteRune(r)
		t.State = ProcessingInstructionData
		return true
	}
}
