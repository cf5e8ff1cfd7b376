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

// Token is one lexical unit produced by the tokenizer:
//
//	StartTag:              <foo bar="baz">
//	EndTag:                </foo>
//	Characters:             non-whitespace text
//	SpaceCharacters:        all-whitespace text
//	Comment:               <!-- foo -->
//	Doctype:               <!DOCTYPE html>
//	ProcessingInstruction: <?target data?>
//	ParseError:            a recoverable anomaly, reported as data not control flow
type Token interface {
	token()

	// Copy makes a new instance of the token. Tokens returned by Tokenizer.Next
	// are owned by reused buffers and are overwritten on the next call; Copy is
	// how a caller keeps one around.
	Copy() Token

	// Span returns the token's source extent. The zero SourceSpan is returned
	// when span generation was not enabled for this Tokenizer.
	Span() SourceSpan
}

// Attr is a single (name, value) pair of a StartTag or, irregularly, an
// EndTag (see EndTag.Attr doc).
type Attr struct {
	Name  string
	Value string
}

// StartTag is an opening tag: <foo bar="baz"> or <foo bar="baz"/>.
type StartTag struct {
	Name         string
	Attr         []Attr
	SelfClosing  bool
	span         SourceSpan
}

func (*StartTag) token() {}

func (t *StartTag) Span() SourceSpan { return t.span }

func (t *StartTag) Copy() Token {
	c := *t
	if t.Attr != nil {
		c.Attr = make([]Attr, len(t.Attr))
		copy(c.Attr, t.Attr)
	}
	return &c
}

// EndTag is a closing tag: </foo>.
//
// EndTag.Attr is required empty and SelfClosing required false; a
// tokenizer that observes attributes or a trailing slash on an end tag
// still emits the token (parse errors are data, never control flow) but
// reports attributes-in-end-tag / this-closing-flag-on-end-tag as
// ParseError tokens alongside it.
type EndTag struct {
	Name        string
	Attr        []Attr
	SelfClosing bool
	span        SourceSpan
}

func (*EndTag) token() {}

func (t *EndTag) Span() SourceSpan { return t.span }

func (t *EndTag) Copy() Token {
	c := *t
	if t.Attr != nil {
		c.Attr = make([]Attr, len(t.Attr))
		copy(c.Attr, t.Attr)
	}
	return &c
}

// Characters is a run of non-whitespace-only text.
type Characters struct {
	Data string
	span SourceSpan
}

func (*Characters) token() {}

func (t *Characters) Span() SourceSpan { return t.span }

func (t *Characters) Copy() Token { c := *t; return &c }

// SpaceCharacters is a run of text made up entirely of HTML whitespace.
type SpaceCharacters struct {
	Data string
	span SourceSpan
}

func (*SpaceCharacters) token() {}

func (t *SpaceCharacters) Span() SourceSpan { return t.span }

func (t *SpaceCharacters) Copy() Token { c := *t; return &c }

// Comment is <!-- data -->.
type Comment struct {
	Data string
	span SourceSpan
}

func (*Comment) token() {}

func (t *Comment) Span() SourceSpan { return t.span }

func (t *Comment) Copy() Token { c := *t; return &c }

// Doctype is <!DOCTYPE html PUBLIC "..." "...">.
//
// Correct is true only if the doctype was parsed without any error state
// along its path.
type Doctype struct {
	Name     string
	PublicID *string
	SystemID *string
	Correct  bool
	span     SourceSpan
}

func (*Doctype) token() {}

func (t *Doctype) Span() SourceSpan { return t.span }

func (t *Doctype) Copy() Token {
	c := *t
	if t.PublicID != nil {
		id := *t.PublicID
		c.PublicID = &id
	}
	if t.SystemID != nil {
		id := *t.SystemID
		c.SystemID = &id
	}
	return &c
}

// ProcessingInstruction is <?target data?>.
//
// Correct is false when the PI was unterminated at EOF, or was the empty
// "<?>".
type ProcessingInstruction struct {
	Target  string
	Data    string
	Correct bool
	span    SourceSpan
}

func (*ProcessingInstruction) token() {}

func (t *ProcessingInstruction) Span() SourceSpan { return t.span }

func (t *ProcessingInstruction) Copy() Token { c := *t; return &c }

// ParseError is a recoverable tokenization anomaly, reported as data
// rather than as a Go error. Kind is one of the stable string
// identifiers enumerated in errors.go; Params carries the small amount of
// context some kinds attach (e.g. {"name": "x"} on duplicate-attribute).
type ParseError struct {
	Kind   ErrorKind
	Params map[string]any
	span   SourceSpan
}

func (*ParseError) token() {}

// Span always returns the zero SourceSpan: ParseError tokens do not advance
// the span cursor.
func (t *ParseError) Span() SourceSpan { return SourceSpan{} }

func (t *ParseError) Copy() Token {
	c := *t
	if t.Params != nil {
		c.Params = make(map[string]any, len(t.Params))
		for k, v := range t.Params {
			c.Params[k] = v
		}
	}
	return &c
}
