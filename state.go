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

// State is the tokenizer's current position in the WHATWG tokenization
// state machine: a tagged enumeration dispatched through Tokenizer.step's
// switch.
type State int

const (
	Data State = iota
	EntityData
	Rcdata
	CharacterReferenceInRcdata
	Rawtext
	ScriptData
	Plaintext

	TagOpen
	CloseTagOpen
	TagName

	RcdataLessThanSign
	RcdataEndTagOpen
	RcdataEndTagName

	RawtextLessThanSign
	RawtextEndTagOpen
	RawtextEndTagName

	ScriptDataLessThanSign
	ScriptDataEndTagOpen
	ScriptDataEndTagName
	ScriptDataEscapeStart
	ScriptDataEscapeStartDash
	ScriptDataEscaped
	ScriptDataEscapedDash
	ScriptDataEscapedDashDash
	ScriptDataEscapedLessThanSign
	ScriptDataEscapedEndTagOpen
	ScriptDataEscapedEndTagName
	ScriptDataDoubleEscapeStart
	ScriptDataDoubleEscaped
	ScriptDataDoubleEscapedDash
	ScriptDataDoubleEscapedDashDash
	ScriptDataDoubleEscapedLessThanSign
	ScriptDataDoubleEscapeEnd

	BeforeAttributeName
	AttributeName
	AfterAttributeName
	BeforeAttributeValue
	AttributeValueDoubleQuoted
	AttributeValueSingleQuoted
	AttributeValueUnquoted
	AfterAttributeValue
	SelfClosingStartTag

	BogusComment
	MarkupDeclarationOpen
	CommentStart
	CommentStartDash
	StateComment
	CommentEndDash
	CommentEnd
	CommentEndBang

	StateDoctype
	BeforeDoctypeName
	DoctypeName
	AfterDoctypeName
	AfterDoctypePublicKeyword
	BeforeDoctypePublicIdentifier
	DoctypePublicIdentifierDoubleQuoted
	DoctypePublicIdentifierSingleQuoted
	AfterDoctypePublicIdentifier
	BetweenDoctypePublicAndSystemIdentifiers
	AfterDoctypeSystemKeyword
	BeforeDoctypeSystemIdentifier
	DoctypeSystemIdentifierDoubleQuoted
	DoctypeSystemIdentifierSingleQuoted
	AfterDoctypeSystemIdentifier
	BogusDoctype

	CdataSection

	ProcessingInstructionState
	ProcessingInstructionTarget
	AfterProcessingInstructionTarget
	ProcessingInstructionData
	ProcessingInstructionEnd
)

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UnknownState"
}

var stateNames = map[State]string{
	Data:                       "Data",
	EntityData:                 "EntityData",
	Rcdata:                     "Rcdata",
	CharacterReferenceInRcdata: "CharacterReferenceInRcdata",
	Rawtext:                    "Rawtext",
	ScriptData:                 "ScriptData",
	Plaintext:                  "Plaintext",

	TagOpen:      "TagOpen",
	CloseTagOpen: "CloseTagOpen",
	TagName:      "TagName",

	RcdataLessThanSign: "RcdataLessThanSign",
	RcdataEndTagOpen:   "RcdataEndTagOpen",
	RcdataEndTagName:   "RcdataEndTagName",

	RawtextLessThanSign: "RawtextLessThanSign",
	RawtextEndTagOpen:   "RawtextEndTagOpen",
	RawtextEndTagName:   "RawtextEndTagName",

	ScriptDataLessThanSign:              "ScriptDataLessThanSign",
	ScriptDataEndTagOpen:                "ScriptDataEndTagOpen",
	ScriptDataEndTagName:                "ScriptDataEndTagName",
	ScriptDataEscapeStart:               "ScriptDataEscapeStart",
	ScriptDataEscapeStartDash:           "ScriptDataEscapeStartDash",
	ScriptDataEscaped:                   "ScriptDataEscaped",
	ScriptDataEscapedDash:               "ScriptDataEscapedDash",
	ScriptDataEscapedDashDash:           "ScriptDataEscapedDashDash",
	ScriptDataEscapedLessThanSign:       "ScriptDataEscapedLessThanSign",
	ScriptDataEscapedEndTagOpen:         "ScriptDataEscapedEndTagOpen",
	ScriptDataEscapedEndTagName:         "ScriptDataEscapedEndTagName",
	ScriptDataDoubleEscapeStart:         "ScriptDataDoubleEscapeStart",
	ScriptDataDoubleEscaped:             "ScriptDataDoubleEscaped",
	ScriptDataDoubleEscapedDash:         "ScriptDataDoubleEscapedDash",
	ScriptDataDoubleEscapedDashDash:     "ScriptDataDoubleEscapedDashDash",
	ScriptDataDoubleEscapedLessThanSign: "ScriptDataDoubleEscapedLessThanSign",
	ScriptDataDoubleEscapeEnd:           "ScriptDataDoubleEscapeEnd",

	BeforeAttributeName:        "BeforeAttributeName",
	AttributeName:              "AttributeName",
	AfterAttributeName:         "AfterAttributeName",
	BeforeAttributeValue:       "BeforeAttributeValue",
	AttributeValueDoubleQuoted: "AttributeValueDoubleQuoted",
	AttributeValueSingleQuoted: "AttributeValueSingleQuoted",
	AttributeValueUnquoted:     "AttributeValueUnquoted",
	AfterAttributeValue:        "AfterAttributeValue",
	SelfClosingStartTag:        "SelfClosingStartTag",

	BogusComment:           "BogusComment",
	MarkupDeclarationOpen:  "MarkupDeclarationOpen",
	CommentStart:           "CommentStart",
	CommentStartDash:       "CommentStartDash",
	StateComment:               "Comment",
	CommentEndDash:         "CommentEndDash",
	CommentEnd:             "CommentEnd",
	CommentEndBang:         "CommentEndBang",

	StateDoctype:                             "Doctype",
	BeforeDoctypeName:                        "BeforeDoctypeName",
	DoctypeName:                              "DoctypeName",
	AfterDoctypeName:                         "AfterDoctypeName",
	AfterDoctypePublicKeyword:                "AfterDoctypePublicKeyword",
	BeforeDoctypePublicIdentifier:            "BeforeDoctypePublicIdentifier",
	DoctypePublicIdentifierDoubleQuoted:      "DoctypePublicIdentifierDoubleQuoted",
	DoctypePublicIdentifierSingleQuoted:      "DoctypePublicIdentifierSingleQuoted",
	AfterDoctypePublicIdentifier:             "AfterDoctypePublicIdentifier",
	BetweenDoctypePublicAndSystemIdentifiers: "BetweenDoctypePublicAndSystemIdentifiers",
	AfterDoctypeSystemKeyword:                "AfterDoctypeSystemKeyword",
	BeforeDoctypeSystemIdentifier:            "BeforeDoctypeSystemIdentifier",
	DoctypeSystemIdentifierDoubleQuoted:      "DoctypeSystemIdentifierDoubleQuoted",
	DoctypeSystemIdentifierSingleQuoted:      "DoctypeSystemIdentifierSingleQuoted",
	AfterDoctypeSystemIdentifier:             "AfterDoctypeSystemIdentifier",
	BogusDoctype:                             "BogusDoctype",

	CdataSection: "CdataSection",

	ProcessingInstructionState:       "ProcessingInstruction",
	ProcessingInstructionTarget:      "ProcessingInstructionTarget",
	AfterProcessingInstructionTarget: "AfterProcessingInstructionTarget",
	ProcessingInstructionData:        "ProcessingInstructionData",
	ProcessingInstructionEnd:         "ProcessingInstructionEnd",
}
