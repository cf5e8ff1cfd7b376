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

// ErrorKind is a stable string identifier for one kind of tokenization
// anomaly. Anomalies are reported as ParseError tokens in the output
// stream, never as Go errors; ErrorKind is the Kind field of that token.
type ErrorKind string

const (
	ErrInvalidCodepoint                       ErrorKind = "invalid-codepoint"
	ErrExpectedTagName                        ErrorKind = "expected-tag-name"
	ErrExpectedTagNameButGotRightBracket      ErrorKind = "expected-tag-name-but-got-right-bracket"
	ErrEOFInTagName                           ErrorKind = "eof-in-tag-name"
	ErrExpectedClosingTagButGot               ErrorKind = "expected-closing-tag-but-got-*"
	ErrAttributesInEndTag                     ErrorKind = "attributes-in-end-tag"
	ErrThisClosingFlagOnEndTag                ErrorKind = "this-closing-flag-on-end-tag"
	ErrInvalidCharacterInAttributeName        ErrorKind = "invalid-character-in-attribute-name"
	ErrEOFInAttributeName                     ErrorKind = "eof-in-attribute-name"
	ErrDuplicateAttribute                     ErrorKind = "duplicate-attribute"
	ErrExpectedAttributeNameButGotEOF         ErrorKind = "expected-attribute-name-but-got-eof"
	ErrExpectedAttributeValueButGot           ErrorKind = "expected-attribute-value-but-got-*"
	ErrEqualsInUnquotedAttributeValue         ErrorKind = "equals-in-unquoted-attribute-value"
	ErrUnexpectedCharacterInUnquotedAttrValue ErrorKind = "unexpected-character-in-unquoted-attribute-value"
	ErrEOFInAttributeValueDoubleQuote         ErrorKind = "eof-in-attribute-value-double-quote"
	ErrEOFInAttributeValueSingleQuote         ErrorKind = "eof-in-attribute-value-single-quote"
	ErrEOFInAttributeValueNoQuotes            ErrorKind = "eof-in-attribute-value-no-quotes"
	ErrUnexpectedEOFAfterAttributeValue       ErrorKind = "unexpected-EOF-after-attribute-value"
	ErrUnexpectedCharacterAfterAttributeValue ErrorKind = "unexpected-character-after-attribute-value"
	ErrUnexpectedEOFAfterSolidusInTag         ErrorKind = "unexpected-EOF-after-solidus-in-tag"
	ErrUnexpectedCharacterAfterSolidusInTag   ErrorKind = "unexpected-character-after-soldius-in-tag"
	ErrIncorrectComment                       ErrorKind = "incorrect-comment"
	ErrEOFInComment                           ErrorKind = "eof-in-comment"
	ErrEOFInCommentEndDash                    ErrorKind = "eof-in-comment-end-dash"
	ErrEOFInCommentDoubleDash                 ErrorKind = "eof-in-comment-double-dash"
	ErrEOFInCommentEndBangState               ErrorKind = "eof-in-comment-end-bang-state"
	ErrUnexpectedBangAfterDoubleDashInComment ErrorKind = "unexpected-bang-after-double-dash-in-comment"
	ErrUnexpectedDashAfterDoubleDashInComment ErrorKind = "unexpected-dash-after-double-dash-in-comment"
	ErrUnexpectedCharInComment                ErrorKind = "unexpected-char-in-comment"
	ErrNeedSpaceAfterDoctype                  ErrorKind = "need-space-after-doctype"
	ErrExpectedDoctypeNameButGotEOF           ErrorKind = "expected-doctype-name-but-got-eof"
	ErrExpectedDoctypeNameButGotRightBracket  ErrorKind = "expected-doctype-name-but-got-right-bracket"
	ErrEOFInDoctypeName                       ErrorKind = "eof-in-doctype-name"
	ErrExpectedSpaceOrRightBracketInDoctype   ErrorKind = "expected-space-or-right-bracket-in-doctype"
	ErrEOFInDoctype                           ErrorKind = "eof-in-doctype"
	ErrUnexpectedCharInDoctype                ErrorKind = "unexpected-char-in-doctype"
	ErrUnexpectedEndOfDoctype                 ErrorKind = "unexpected-end-of-doctype"
	ErrIllegalCodepointForNumericEntity       ErrorKind = "illegal-codepoint-for-numeric-entity"
	ErrNumericEntityWithoutSemicolon          ErrorKind = "numeric-entity-without-semicolon"
	ErrExpectedNumericEntity                  ErrorKind = "expected-numeric-entity"
	ErrNamedEntityWithoutSemicolon            ErrorKind = "named-entity-without-semicolon"
	ErrExpectedNamedEntity                    ErrorKind = "expected-named-entity"
	ErrExpectedDashesOrDoctype                ErrorKind = "expected-dashes-or-doctype"
	ErrEOFInScriptInScript                    ErrorKind = "eof-in-script-in-script"
	ErrExpectedProcessingInstruction          ErrorKind = "expected-processing-instruction-*"
)

// addError appends a ParseError to the error queue. It does not touch
// lastOffset: ParseError tokens never advance the span cursor.
func (t *Tokenizer) addError(kind ErrorKind, params map[string]any) {
	t.errQueue = append(t.errQueue, &ParseError{Kind: kind, Params: params})
}
