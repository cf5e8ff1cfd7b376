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
	"io"
	"strings"

	"github.com/Goodwine/triemap"
)

// tokenizeError is the Go-error sentinel type for genuine I/O and
// configuration failures, the same shape as go-xml's decodeError.
// Tokenization anomalies are never Go errors; they surface as ParseError
// tokens in the output stream.
type tokenizeError string

func (e tokenizeError) Error() string { return string(e) }

// Tokenizer is the WHATWG HTML5 tokenization state machine plus the
// iterator facade that presents it as a lazy finite sequence of tokens.
//
// A Tokenizer is single-threaded and pull-based: it runs only inside calls
// to Next. Between calls, the tree-construction collaborator may freely
// mutate State and CDATAAllowed.
type Tokenizer struct {
	opts Options
	in   *inputStream

	// State is mutated directly by the parser collaborator between calls
	// to Next, e.g. to Rcdata after emitting the start tag for <title>.
	State State

	// CDATAAllowed gates MarkupDeclarationOpen's "[CDATA[" recognition:
	// the parser sets this to report whether the current open element is
	// in a foreign (non-HTML) namespace.
	CDATAAllowed bool

	queue    []Token
	errQueue []*ParseError

	// eof latches once a state observes end-of-input from a position
	// where no more tokens can be produced; afterwards Next only drains
	// what is already queued.
	eof bool

	names triemap.RuneSliceMap

	// Current-token accumulators. Reused across tokens the same way
	// go-xml's Decoder reuses startTagBuf/closeTagBuf: a token returned
	// by Next must be read (or Copy()'d) before the next call.
	tagName      strings.Builder
	tagIsEnd     bool
	tagSelfClose bool
	attrs        attrBuffer
	attrName     strings.Builder
	curAttrValue strings.Builder // also written by the entity resolver in attribute context
	haveAttrName bool

	commentData strings.Builder

	doctypeName     strings.Builder
	doctypePublic   strings.Builder
	doctypeSystem   strings.Builder
	haveDoctypePub  bool
	haveDoctypeSys  bool
	doctypeCorrect  bool

	piTarget strings.Builder
	piData   strings.Builder

	tempBuffer strings.Builder
	textBuf    strings.Builder

	// lastStartTagName backs the "appropriate end tag" check.
	lastStartTagName string

	startTagBuf StartTag
	endTagBuf   EndTag
	commentBuf  Comment
	doctypeBuf  Doctype
	piBuf       ProcessingInstruction

	lastOffset int // span bookkeeping cursor
}

// New constructs a Tokenizer over pre-decoded text. file is used only for
// SourceSpan.File when opts.GenerateSpans is set.
func New(text string, file string, opts Options) *Tokenizer {
	return newTokenizer(newInputStreamFromText(text, file), opts)
}

// NewFromBytes constructs a Tokenizer over raw bytes, resolving an
// encoding per opts.Encoding/opts.ParseMeta.
func NewFromBytes(b []byte, file string, opts Options) (*Tokenizer, error) {
	in, err := newInputStreamFromBytes(b, opts.Encoding, opts.ParseMeta, file)
	if err != nil {
		return nil, err
	}
	return newTokenizer(in, opts), nil
}

func newTokenizer(in *inputStream, opts Options) *Tokenizer {
	t := &Tokenizer{opts: opts, in: in, State: Data}
	t.attrs.growBy(8)
	return t
}

// Next runs the state machine until at least one token or parse error is
// ready, dequeues the earliest of the two (parse errors interleave with
// content tokens in source order), and returns it. Next returns io.EOF
// once the tokenizer is exhausted, the same contract go-xml's
// Decoder.Token uses.
func (t *Tokenizer) Next() (Token, error) {
	if len(t.queue) == 0 && len(t.errQueue) == 0 {
		if !t.run() {
			return nil, io.EOF
		}
	}
	if len(t.errQueue) > 0 {
		e := t.errQueue[0]
		t.errQueue = t.errQueue[1:]
		return e, nil
	}
	tok := t.queue[0]
	t.queue = t.queue[1:]
	return tok, nil
}

// run drives step() until the queue or error queue is non-empty, or the
// current state reports EOF. It returns false only when nothing more is or
// ever will be available.
func (t *Tokenizer) run() bool {
	for len(t.queue) == 0 && len(t.errQueue) == 0 {
		if t.eof {
			return false
		}
		more := t.step()
		t.drainStreamErrors()
		if !more {
			t.eof = true
			return len(t.queue) > 0 || len(t.errQueue) > 0
		}
	}
	return true
}

// drainStreamErrors surfaces input-stream decode errors as ParseError
// tokens in source order, through the same queue as tokenizer-detected
// anomalies.
func (t *Tokenizer) drainStreamErrors() {
	for _, err := range t.in.decodeErrors {
		t.errQueue = append(t.errQueue, &ParseError{
			Kind:   ErrInvalidCodepoint,
			Params: map[string]any{"error": err.Error()},
		})
	}
	t.in.decodeErrors = t.in.decodeErrors[:0]
}

// step dispatches to the current state's handler. The return value is the
// per-state "may continue" flag: false means end-of-input was observed in
// a position from which no more tokens can be produced.
func (t *Tokenizer) step() bool {
	switch t.State {
	case Data:
		return t.stateData()
	case EntityData:
		return t.stateEntityData()
	case Rcdata:
		return t.stateRcdata()
	case CharacterReferenceInRcdata:
		return t.stateCharacterReferenceInRcdata()
	case Rawtext:
		return t.stateRawtext()
	case ScriptData:
		return t.stateScriptData()
	case Plaintext:
		return t.statePlaintext()

	case TagOpen:
		return t.stateTagOpen()
	case CloseTagOpen:
		return t.stateCloseTagOpen()
	case TagName:
		return t.stateTagName()

	case RcdataLessThanSign:
		return t.stateRcdataLessThanSign()
	case RcdataEndTagOpen:
		return t.stateRcdataEndTagOpen()
	case RcdataEndTagName:
		return t.stateRcdataEndTagName()

	case RawtextLessThanSign:
		return t.stateRawtextLessThanSign()
	case RawtextEndTagOpen:
		return t.stateRawtextEndTagOpen()
	case RawtextEndTagName:
		return t.stateRawtextEndTagName()

	case ScriptDataLessThanSign:
		return t.stateScriptDataLessThanSign()
	case ScriptDataEndTagOpen:
		return t.stateScriptDataEndTagOpen()
	case ScriptDataEndTagName:
		return t.stateScriptDataEndTagName()
	case ScriptDataEscapeStart:
		return t.stateScriptDataEscapeStart()
	case ScriptDataEscapeStartDash:
		return t.stateScriptDataEscapeStartDash()
	case ScriptDataEscaped:
		return t.stateScriptDataEscaped()
	case ScriptDataEscapedDash:
		return t.stateScriptDataEscapedDash()
	case ScriptDataEscapedDashDash:
		return t.stateScriptDataEscapedDashDash()
	case ScriptDataEscapedLessThanSign:
		return t.stateScriptDataEscapedLessThanSign()
	case ScriptDataEscapedEndTagOpen:
		return t.stateScriptDataEscapedEndTagOpen()
	case ScriptDataEscapedEndTagName:
		return t.stateScriptDataEscapedEndTagName()
	case ScriptDataDoubleEscapeStart:
		return t.stateScriptDataDoubleEscapeStart()
	case ScriptDataDoubleEscaped:
		return t.stateScriptDataDoubleEscaped()
	case ScriptDataDoubleEscapedDash:
		return t.stateScriptDataDoubleEscapedDash()
	case ScriptDataDoubleEscapedDashDash:
		return t.stateScriptDataDoubleEscapedDashDash()
	case ScriptDataDoubleEscapedLessThanSign:
		return t.stateScriptDataDoubleEscapedLessThanSign()
	case ScriptDataDoubleEscapeEnd:
		return t.stateScriptDataDoubleEscapeEnd()

	case BeforeAttributeName:
		return t.stateBeforeAttributeName()
	case AttributeName:
		return t.stateAttributeName()
	case AfterAttributeName:
		return t.stateAfterAttributeName()
	case BeforeAttributeValue:
		return t.stateBeforeAttributeValue()
	case AttributeValueDoubleQuoted:
		return t.stateAttributeValueQuoted('"')
	case AttributeValueSingleQuoted:
		return t.stateAttributeValueQuoted('\'')
	case AttributeValueUnquoted:
		return t.stateAttributeValueUnquoted()
	case AfterAttributeValue:
		return t.stateAfterAttributeValue()
	case SelfClosingStartTag:
		return t.stateSelfClosingStartTag()

	case BogusComment:
		return t.stateBogusComment()
	case MarkupDeclarationOpen:
		return t.stateMarkupDeclarationOpen()
	case CommentStart:
		return t.stateCommentStart()
	case CommentStartDash:
		return t.stateCommentStartDash()
	case StateComment:
		return t.stateComment()
	case CommentEndDash:
		return t.stateCommentEndDash()
	case CommentEnd:
		return t.stateCommentEnd()
	case CommentEndBang:
		return t.stateCommentEndBang()

	case StateDoctype:
		return t.stateDoctype()
	case BeforeDoctypeName:
		return t.stateBeforeDoctypeName()
	case DoctypeName:
		return t.stateDoctypeName()
	case AfterDoctypeName:
		return t.stateAfterDoctypeName()
	case AfterDoctypePublicKeyword:
		return t.stateAfterDoctypePublicKeyword()
	case BeforeDoctypePublicIdentifier:
		return t.stateBeforeDoctypePublicIdentifier()
	case DoctypePublicIdentifierDoubleQuoted:
		return t.stateDoctypePublicIdentifierQuoted('"')
	case DoctypePublicIdentifierSingleQuoted:
		return t.stateDoctypePublicIdentifierQuoted('\'')
	case AfterDoctypePublicIdentifier:
		return t.stateAfterDoctypePublicIdentifier()
	case BetweenDoctypePublicAndSystemIdentifiers:
		return t.stateBetweenDoctypePublicAndSystemIdentifiers()
	case AfterDoctypeSystemKeyword:
		return t.stateAfterDoctypeSystemKeyword()
	case BeforeDoctypeSystemIdentifier:
		return t.stateBeforeDoctypeSystemIdentifier()
	case DoctypeSystemIdentifierDoubleQuoted:
		return t.stateDoctypeSystemIdentifierQuoted('"')
	case DoctypeSystemIdentifierSingleQuoted:
		return t.stateDoctypeSystemIdentifierQuoted('\'')
	case AfterDoctypeSystemIdentifier:
		return t.stateAfterDoctypeSystemIdentifier()
	case BogusDoctype:
		return t.stateBogusDoctype()

	case CdataSection:
		return t.stateCdataSection()

	case ProcessingInstructionState:
		return t.stateProcessingInstruction()
	case ProcessingInstructionTarget:
		return t.stateProcessingInstructionTarget()
	case AfterProcessingInstructionTarget:
		return t.stateAfterProcessingInstructionTarget()
	case ProcessingInstructionData:
		return t.stateProcessingInstructionData()
	case ProcessingInstructionEnd:
		return t.stateProcessingInstructionEnd()
	}
	panic("html5tokenizer: impossible state " + t.State.String())
}

// intern folds repeated tag/attribute name spellings onto one shared
// string through triemap.RuneSliceMap, the way go-xml's readIdentifier
// interns element and attribute names: a document with many <div> or
// class= occurrences allocates each distinct spelling once.
func (t *Tokenizer) intern(runes []rune) string {
	if v, ok := t.names.Get(runes); ok {
		return v.(string)
	}
	s := string(runes)
	t.names.Put(runes, s)
	return s
}

func (t *Tokenizer) span() SourceSpan {
	if !t.opts.GenerateSpans {
		return SourceSpan{}
	}
	end := t.in.position()
	sp := SourceSpan{File: t.in.file, Start: t.lastOffset, End: end}
	t.lastOffset = end
	return sp
}

func (t *Tokenizer) emit(tok Token) {
	t.queue = append(t.queue, tok)
}

func (t *Tokenizer) emitCharacters(s string) {
	if s == "" {
		return
	}
	tok := &Characters{Data: s, span: t.span()}
	t.emit(tok)
}

func (t *Tokenizer) emitSpaceCharacters(s string) {
	if s == "" {
		return
	}
	tok := &SpaceCharacters{Data: s, span: t.span()}
	t.emit(tok)
}

// emitCharData dispatches a literal run of text to Characters or
// SpaceCharacters depending on content; the entity resolver applies the
// same split to resolved entity text.
func (t *Tokenizer) emitCharData(s string) {
	if isAllWhitespace(s) {
		t.emitSpaceCharacters(s)
	} else {
		t.emitCharacters(s)
	}
}

func (t *Tokenizer) resetTag(isEnd bool) {
	t.tagName.Reset()
	t.tagIsEnd = isEnd
	t.tagSelfClose = false
	t.attrs.reset()
}

func (t *Tokenizer) foldTagName(name string) string {
	if t.opts.LowercaseElementName {
		name = asciiLower(name)
	}
	return t.intern([]rune(name))
}

func (t *Tokenizer) foldAttrName(name string) string {
	if t.opts.LowercaseAttrName {
		name = asciiLower(name)
	}
	return t.intern([]rune(name))
}

// finishAttrIfAny closes out any attribute currently being built (name
// with or without a value) before a tag ends.
func (t *Tokenizer) finishAttrIfAny() {
	if !t.haveAttrName {
		return
	}
	name := t.foldAttrName(t.attrName.String())
	if t.attrs.contains(name) {
		t.addError(ErrDuplicateAttribute, map[string]any{"name": name})
	} else {
		t.attrs.add(Attr{Name: name, Value: t.curAttrValue.String()})
	}
	t.attrName.Reset()
	t.curAttrValue.Reset()
	t.haveAttrName = false
}

// emitCurrentTag emits the accumulated StartTag or EndTag and resets the
// state to Data. The parser collaborator may switch State again (to
// Rcdata/Rawtext/ScriptData/Plaintext) between this call returning and
// the next call to Next.
func (t *Tokenizer) emitCurrentTag() {
	t.finishAttrIfAny()
	name := t.foldTagName(t.tagName.String())
	attrs := t.attrs.get()

	if t.tagIsEnd {
		if len(attrs) > 0 {
			t.addError(ErrAttributesInEndTag, nil)
		}
		if t.tagSelfClose {
			t.addError(ErrThisClosingFlagOnEndTag, nil)
		}
		t.endTagBuf = EndTag{Name: name, Attr: attrs, SelfClosing: t.tagSelfClose, span: t.span()}
		t.emit(&t.endTagBuf)
		t.State = Data
		return
	}

	t.lastStartTagName = name
	t.startTagBuf = StartTag{Name: name, Attr: attrs, SelfClosing: t.tagSelfClose, span: t.span()}
	t.emit(&t.startTagBuf)

	if t.tagSelfClose {
		if t.opts.EmitSyntheticEndForSelfClosing && !IsVoidElement(name) {
			// The StartTag above reports SelfClosing as written in the
			// source; the synthetic EndTag is queued right behind it.
			t.endTagBuf = EndTag{Name: name, span: t.span()}
			t.emit(&t.endTagBuf)
		}
	}
	t.State = Data
}

// appropriateEndTag reports whether tempBuffer (case-folded) names the
// same element as the most recently emitted start tag.
func (t *Tokenizer) appropriateEndTag() bool {
	if t.lastStartTagName == "" {
		return false
	}
	return asciiLower(t.tempBuffer.String()) == asciiLower(t.lastStartTagName)
}
