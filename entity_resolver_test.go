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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNumericEntities(t *testing.T) {
	testCases := []struct {
		desc  string
		input string
		want  []Token
	}{
		{"decimal", "&#65;", []Token{
			&Characters{Data: "A"},
		}},
		{"hex", "&#x2603;", []Token{
			&Characters{Data: "☃"},
		}},
		{"uppercase hex marker", "&#X41;", []Token{
			&Characters{Data: "A"},
		}},
		{"missing semicolon", "&#65 ", []Token{
			&ParseError{Kind: ErrNumericEntityWithoutSemicolon},
			&Characters{Data: "A"},
			&SpaceCharacters{Data: " "},
		}},
		{"windows-1252 remap", "&#128;", []Token{
			&ParseError{Kind: ErrIllegalCodepointForNumericEntity},
			&Characters{Data: "€"},
		}},
		{"surrogate", "&#xD800;", []Token{
			&ParseError{Kind: ErrIllegalCodepointForNumericEntity},
			&Characters{Data: "�"},
		}},
		{"out of range", "&#x110000;", []Token{
			&ParseError{Kind: ErrIllegalCodepointForNumericEntity},
			&Characters{Data: "�"},
		}},
		{"disallowed control", "&#1;", []Token{
			&ParseError{Kind: ErrIllegalCodepointForNumericEntity},
			&Characters{Data: "\x01"},
		}},
		{"no digits", "&#;", []Token{
			&ParseError{Kind: ErrExpectedNumericEntity},
			&Characters{Data: "&#"},
			&Characters{Data: ";"},
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

func TestNamedEntities(t *testing.T) {
	testCases := []struct {
		desc  string
		input string
		want  []Token
	}{
		{"with semicolon", "&notin;", []Token{
			&Characters{Data: "∉"},
		}},
		{"longest match wins", "&notin", []Token{
			&ParseError{Kind: ErrNamedEntityWithoutSemicolon},
			&Characters{Data: "¬in"},
		}},
		{"legacy at eof", "&amp", []Token{
			&ParseError{Kind: ErrNamedEntityWithoutSemicolon},
			&Characters{Data: "&"},
		}},
		{"legacy before text", "&copy 2020", []Token{
			&ParseError{Kind: ErrNamedEntityWithoutSemicolon},
			&Characters{Data: "©"},
			&Characters{Data: " 2020"},
		}},
		{"unknown name", "&xyz;", []Token{
			&ParseError{Kind: ErrExpectedNamedEntity},
			&Characters{Data: "&x"},
			&Characters{Data: "yz;"},
		}},
		{"no candidate at all", "&~a", []Token{
			&ParseError{Kind: ErrExpectedNamedEntity},
			&Characters{Data: "&"},
			&Characters{Data: "~a"},
		}},
		{"bare ampersand at eof", "&", []Token{
			&Characters{Data: "&"},
		}},
		{"ampersand before space", "& b", []Token{
			&Characters{Data: "&"},
			&Characters{Data: " b"},
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

func TestEntitiesInAttributes(t *testing.T) {
	testCases := []struct {
		desc  string
		input string
		want  []Token
	}{
		{"resolved in quoted value", `<a b="x&gt;y">`, []Token{
			&StartTag{Name: "a", Attr: []Attr{{"b", "x>y"}}},
		}},
		{"legacy compat stays literal", `<a b="&notin=c">`, []Token{
			&ParseError{Kind: ErrNamedEntityWithoutSemicolon},
			&StartTag{Name: "a", Attr: []Attr{{"b", "&notin=c"}}},
		}},
		{"legacy resolved before punctuation", `<a b="&not!">`, []Token{
			&ParseError{Kind: ErrNamedEntityWithoutSemicolon},
			&StartTag{Name: "a", Attr: []Attr{{"b", "¬!"}}},
		}},
		{"quote terminates reference", `<a b="&">`, []Token{
			&StartTag{Name: "a", Attr: []Attr{{"b", "&"}}},
		}},
		{"unquoted value keeps closing bracket", `<a b=x&y>`, []Token{
			&ParseError{Kind: ErrExpectedNamedEntity},
			&StartTag{Name: "a", Attr: []Attr{{"b", "x&y"}}},
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
