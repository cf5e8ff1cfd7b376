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
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var tokenCmpOpts = cmp.Options{
	cmp.AllowUnexported(StartTag{}, EndTag{}, Characters{}, SpaceCharacters{},
		Comment{}, Doctype{}, ProcessingInstruction{}, ParseError{}),
}

// tokenizeAll drains tok and returns copies of every yielded token.
func tokenizeAll(t *testing.T, tok *Tokenizer) []Token {
	t.Helper()
	var got []Token
	for {
		tk, err := tok.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			t.Fatal(err)
		}
		got = append(got, tk.Copy())
	}
	return got
}

func TestToken(t *testing.T) {
	const input = `<!DOCTYPE html><p class="intro">Hello &amp; welcome</p><!-- note --><br/>`

	want := []Token{
		&Doctype{Name: "html", Correct: true},
		&StartTag{Name: "p", Attr: []Attr{{"class", "intro"}}},
		&Characters{Data: "Hello "},
		&Characters{Data: "&"},
		&Characters{Data: " welcome"},
		&EndTag{Name: "p"},
		&Comment{Data: " note "},
		&StartTag{Name: "br", SelfClosing: true},
	}

	got := tokenizeAll(t, New(input, "test.html", DefaultOptions()))
	if diff := cmp.Diff(want, got, tokenCmpOpts); diff != "" {
		t.Error("Token diff (-want +got)\n", diff)
	}
}

func TestTokenScenarios(t *testing.T) {
	testCases := []struct {
		desc  string
		input string
		want  []Token
	}{
		{"start end", "<p>Hi</p>", []Token{
			&StartTag{Name: "p"},
			&Characters{Data: "Hi"},
			&EndTag{Name: "p"},
		}},
		{"entity in text", "a &amp; b", []Token{
			&Characters{Data: "a "},
			&Characters{Data: "&"},
			&Characters{Data: " b"},
		}},
		{"entity in attribute", `<a href="x?y&lt;=1">`, []Token{
			&StartTag{Name: "a", Attr: []Attr{{"href", "x?y<=1"}}},
		}},
		{"comment bang", "<!--a--!>", []Token{
			&ParseError{Kind: ErrUnexpectedBangAfterDoubleDashInComment},
			&Comment{Data: "a"},
		}},
		{"named entity without semicolon", "&notin", []Token{
			&ParseError{Kind: ErrNamedEntityWithoutSemicolon},
			&Characters{Data: "¬in"},
		}},
		{"synthetic end tag", "<x/>", []Token{
			&StartTag{Name: "x", SelfClosing: true},
			&EndTag{Name: "x"},
		}},
		{"void self closing", "<br/>", []Token{
			&StartTag{Name: "br", SelfClosing: true},
		}},
		{"end tag attributes", `</p class="x">`, []Token{
			&ParseError{Kind: ErrAttributesInEndTag},
			&EndTag{Name: "p", Attr: []Attr{{"class", "x"}}},
		}},
		{"duplicate attribute", `<a x=1 x=2>`, []Token{
			&ParseError{Kind: ErrDuplicateAttribute, Params: map[string]any{"name": "x"}},
			&StartTag{Name: "a", Attr: []Attr{{"x", "1"}}},
		}},
		{"bogus comment", "<!foo>", []Token{
			&ParseError{Kind: ErrExpectedDashesOrDoctype},
			&Comment{Data: "foo"},
		}},
		{"empty tag", "<>", []Token{
			&ParseError{Kind: ErrExpectedTagNameButGotRightBracket},
			&Characters{Data: "<>"},
		}},
		{"stray less than", "<3", []Token{
			&ParseError{Kind: ErrExpectedTagName},
			&Characters{Data: "<"},
			&Characters{Data: "3"},
		}},
		{"NUL in data", "a\x00b", []Token{
			&ParseError{Kind: ErrInvalidCodepoint},
			&Characters{Data: "a\x00b"},
		}},
		{"space characters", "\n\t ", []Token{
			&SpaceCharacters{Data: "\n\t "},
		}},
		{"uppercase names fold", `<DIV CLASS="a"></DIV>`, []Token{
			&StartTag{Name: "div", Attr: []Attr{{"class", "a"}}},
			&EndTag{Name: "div"},
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := tokenizeAll(t, New(tc.input, "test.html", DefaultOptions()))
			if diff := cmp.Diff(tc.want, got, tokenCmpOpts); diff != "" {
				t.Error("Token diff (-want +got)\n", diff)
			}
		})
	}
}

func TestTokenNoLowercasing(t *testing.T) {
	opts := DefaultOptions()
	opts.LowercaseElementName = false
	opts.LowercaseAttrName = false

	want := []Token{
		&StartTag{Name: "DIV", Attr: []Attr{{"CLASS", "a"}}},
		&EndTag{Name: "DIV"},
	}
	got := tokenizeAll(t, New(`<DIV CLASS="a"></DIV>`, "test.html", opts))
	if diff := cmp.Diff(want, got, tokenCmpOpts); diff != "" {
		t.Error("Token diff (-want +got)\n", diff)
	}
}

func TestTokenSelfClosingStrict(t *testing.T) {
	opts := DefaultOptions()
	opts.EmitSyntheticEndForSelfClosing = false

	want := []Token{
		&StartTag{Name: "x", SelfClosing: true},
	}
	got := tokenizeAll(t, New("<x/>", "test.html", opts))
	if diff := cmp.Diff(want, got, tokenCmpOpts); diff != "" {
		t.Error("Token diff (-want +got)\n", diff)
	}
}

func TestDoctype(t *testing.T) {
	pub := "-//W3C//DTD XHTML 1.0 Strict//EN"
	sys := "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd"
	legacy := "about:legacy-compat"

	testCases := []struct {
		desc  string
		input string
		want  []Token
	}{
		{"plain", "<!DOCTYPE html>", []Token{
			&Doctype{Name: "html", Correct: true},
		}},
		{"lowercase keyword uppercase name", "<!doctype HTML>", []Token{
			&Doctype{Name: "html", Correct: true},
		}},
		{"public and system", `<!DOCTYPE html PUBLIC "` + pub + `" "` + sys + `">`, []Token{
			&Doctype{Name: "html", PublicID: &pub, SystemID: &sys, Correct: true},
		}},
		{"system only", `<!DOCTYPE html SYSTEM "` + legacy + `">`, []Token{
			&Doctype{Name: "html", SystemID: &legacy, Correct: true},
		}},
		{"unknown keyword", "<!DOCTYPE html FOO>", []Token{
			&ParseError{Kind: ErrExpectedSpaceOrRightBracketInDoctype},
			&Doctype{Name: "html", Correct: false},
		}},
		{"missing name", "<!DOCTYPE>", []Token{
			&ParseError{Kind: ErrNeedSpaceAfterDoctype},
			&ParseError{Kind: ErrExpectedDoctypeNameButGotRightBracket},
			&Doctype{Correct: false},
		}},
		{"eof in name", "<!DOCTYPE ht", []Token{
			&ParseError{Kind: ErrEOFInDoctypeName},
			&Doctype{Name: "ht", Correct: false},
		}},
		{"unquoted public id", "<!DOCTYPE html PUBLIC foo>", []Token{
			&ParseError{Kind: ErrUnexpectedCharInDoctype},
			&Doctype{Name: "html", Correct: false},
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := tokenizeAll(t, New(tc.input, "test.html", DefaultOptions()))
			if diff := cmp.Diff(tc.want, got, tokenCmpOpts); diff != "" {
				t.Error("Token diff (-want +got)\n", diff)
			}
		})
	}
}

func TestProcessingInstruction(t *testing.T) {
	testCases := []struct {
		desc  string
		input string
		want  []Token
	}{
		{"target and data", `<?xml version="1.0"?>`, []Token{
			&ProcessingInstruction{Target: "xml", Data: `version="1.0"`, Correct: true},
		}},
		{"target only", "<?break?>", []Token{
			&ProcessingInstruction{Target: "break", Correct: true},
		}},
		{"literal question mark in data", "<?t d??>", []Token{
			&ProcessingInstruction{Target: "t", Data: "d?", Correct: true},
		}},
		{"unterminated", "<?php echo", []Token{
			&ParseError{Kind: ErrExpectedProcessingInstruction},
			&ProcessingInstruction{Target: "php", Data: "echo", Correct: false},
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := tokenizeAll(t, New(tc.input, "test.html", DefaultOptions()))
			if diff := cmp.Diff(tc.want, got, tokenCmpOpts); diff != "" {
				t.Error("Token diff (-want +got)\n", diff)
			}
		})
	}
}

func TestProcessingInstructionDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.AllowProcessingInstructions = false

	want := []Token{
		&ParseError{Kind: ErrExpectedTagName},
		&Comment{Data: "?x"},
	}
	got := tokenizeAll(t, New("<?x>", "test.html", opts))
	if diff := cmp.Diff(want, got, tokenCmpOpts); diff != "" {
		t.Error("Token diff (-want +got)\n", diff)
	}
}

func TestCdataSection(t *testing.T) {
	testCases := []struct {
		desc    string
		input   string
		allowed bool
		want    []Token
	}{
		{"foreign content", "<svg><![CDATA[x<y]]></svg>", true, []Token{
			&StartTag{Name: "svg"},
			&Characters{Data: "x<y"},
			&EndTag{Name: "svg"},
		}},
		{"trailing bracket kept", "<svg><![CDATA[a]]]></svg>", true, []Token{
			&StartTag{Name: "svg"},
			&Characters{Data: "a]"},
			&EndTag{Name: "svg"},
		}},
		{"html content", "<p><![CDATA[y]]></p>", false, []Token{
			&StartTag{Name: "p"},
			&ParseError{Kind: ErrExpectedDashesOrDoctype},
			&Comment{Data: "[CDATA[y]]"},
			&EndTag{Name: "p"},
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			tok := New(tc.input, "test.html", DefaultOptions())
			tok.CDATAAllowed = tc.allowed
			got := tokenizeAll(t, tok)
			if diff := cmp.Diff(tc.want, got, tokenCmpOpts); diff != "" {
				t.Error("Token diff (-want +got)\n", diff)
			}
		})
	}
}

// contentModelSwitch mimics the tree-construction collaborator: after each
// yielded start tag it moves the tokenizer into the element's content model,
// the feedback contract the parser is expected to honor between Next calls.
func contentModelSwitch(tok *Tokenizer, tk Token) {
	st, ok := tk.(*StartTag)
	if !ok {
		return
	}
	switch st.Name {
	case "title", "textarea":
		tok.State = Rcdata
	case "style", "xmp", "iframe", "noembed", "noframes":
		tok.State = Rawtext
	case "script":
		tok.State = ScriptData
	case "plaintext":
		tok.State = Plaintext
	}
}

func TestContentModels(t *testing.T) {
	testCases := []struct {
		desc  string
		input string
		want  []Token
	}{
		{"rcdata resolves entities", "<title>a &lt; b</title>", []Token{
			&StartTag{Name: "title"},
			&Characters{Data: "a "},
			&Characters{Data: "<"},
			&Characters{Data: " b"},
			&EndTag{Name: "title"},
		}},
		{"rawtext keeps markup", "<style>p>q{}</style>", []Token{
			&StartTag{Name: "style"},
			&Characters{Data: "p>q{}"},
			&EndTag{Name: "style"},
		}},
		{"script data", `<script>if (a<b) { } <!-- x --> </script>`, []Token{
			&StartTag{Name: "script"},
			&Characters{Data: "if (a"},
			&Characters{Data: "<b) { } "},
			&Characters{Data: "<!-- x --> "},
			&EndTag{Name: "script"},
		}},
		{"plaintext never ends", "<plaintext>a</b>", []Token{
			&StartTag{Name: "plaintext"},
			&Characters{Data: "a</b>"},
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			tok := New(tc.input, "test.html", DefaultOptions())
			var got []Token
			for {
				tk, err := tok.Next()
				if err != nil {
					if errors.Is(err, io.EOF) {
						break
					}
					t.Fatal(err)
				}
				got = append(got, tk.Copy())
				contentModelSwitch(tok, tk)
			}
			if diff := cmp.Diff(tc.want, got, tokenCmpOpts); diff != "" {
				t.Error("Token diff (-want +got)\n", diff)
			}
		})
	}
}

func TestSpans(t *testing.T) {
	const input = `<!DOCTYPE html><p a="1">x &amp; y</p><!--c-->`

	opts := DefaultOptions()
	opts.GenerateSpans = true
	got := tokenizeAll(t, New(input, "test.html", opts))

	var covered strings.Builder
	lastEnd := 0
	for _, tk := range got {
		if _, isErr := tk.(*ParseError); isErr {
			continue
		}
		sp := tk.Span()
		if sp.File != "test.html" {
			t.Errorf("span file = %q, want test.html", sp.File)
		}
		if sp.Start < lastEnd {
			t.Errorf("span %v starts before previous token's end %d", sp, lastEnd)
		}
		lastEnd = sp.End
		covered.WriteString(sp.Text(input))
	}
	if covered.String() != input {
		t.Errorf("span coverage = %q, want %q", covered.String(), input)
	}
	if lastEnd != len(input) {
		t.Errorf("final span end = %d, want %d", lastEnd, len(input))
	}
}

func TestDeterminism(t *testing.T) {
	const input = `<ul><li a=1 b='2'>x &notin; y</li><!--c--><?pi d?></ul>`

	first := tokenizeAll(t, New(input, "test.html", DefaultOptions()))
	second := tokenizeAll(t, New(input, "test.html", DefaultOptions()))
	if diff := cmp.Diff(first, second, tokenCmpOpts); diff != "" {
		t.Error("Token diff between identical runs (-first +second)\n", diff)
	}
}

func TestIsVoidElement(t *testing.T) {
	for _, name := range []string{"br", "img", "meta", "wbr"} {
		if !IsVoidElement(name) {
			t.Errorf("IsVoidElement(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"div", "span", "x"} {
		if IsVoidElement(name) {
			t.Errorf("IsVoidElement(%q) = true, want false", name)
		}
	}
}
