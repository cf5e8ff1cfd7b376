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

// Code-point classifiers (the tokenizer). All ASCII-only by design; HTML5
// tokenization never treats non-ASCII letters as "letters" for tag/attribute
// name purposes.

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isLetterOrDigit(r rune) bool {
	return isLetter(r) || isDigit(r)
}

// asciiToLower folds a single ASCII upper-case letter to lower-case; any
// other rune is returned unchanged.
func asciiToLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// asciiLower folds every ASCII A-Z in s to a-z.
func asciiLower(s string) string {
	hasUpper := false
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// replacementCharacter implements the Windows-1252-derived numeric
// character reference replacement table from the HTML5 spec. Returns
// (replacement, true) when n falls in the table.
func replacementCharacter(n int) (rune, bool) {
	r, ok := numericReplacementTable[n]
	return r, ok
}

var numericReplacementTable = map[int]rune{
	0x00: '�',
	0x80: '€',
	0x82: '‚',
	0x83: 'ƒ',
	0x84: '„',
	0x85: '…',
	0x86: '†',
	0x87: '‡',
	0x88: 'ˆ',
	0x89: '‰',
	0x8A: 'Š',
	0x8B: '‹',
	0x8C: 'Œ',
	0x8E: 'Ž',
	0x91: '‘',
	0x92: '’',
	0x93: '“',
	0x94: '”',
	0x95: '•',
	0x96: '–',
	0x97: '—',
	0x98: '˜',
	0x99: '™',
	0x9A: 'š',
	0x9B: '›',
	0x9C: 'œ',
	0x9E: 'ž',
	0x9F: 'Ÿ',
}

// disallowedScalar reports whether n is in the set of code points that
// fires illegal-codepoint-for-numeric-entity: the C0 control range except
// the code points permitted as whitespace, C1 controls other than the
// replacement-table entries, and non-characters.
func disallowedScalar(n int) bool {
	switch {
	case n >= 0x0001 && n <= 0x0008:
		return true
	case n == 0x000B:
		return true
	case n >= 0x000E && n <= 0x001F:
		return true
	case n >= 0x007F && n <= 0x009F:
		if _, ok := numericReplacementTable[n]; ok {
			return false
		}
		return true
	case n >= 0xFDD0 && n <= 0xFDEF:
		return true
	case isNonCharacter(n):
		return true
	}
	return false
}

func isNonCharacter(n int) bool {
	if n&0xFFFE == 0xFFFE {
		return true
	}
	switch n {
	case 0xFFFF, 0x1FFFF, 0x2FFFF, 0x3FFFF, 0x4FFFF, 0x5FFFF, 0x6FFFF,
		0x7FFFF, 0x8FFFF, 0x9FFFF, 0xAFFFF, 0xBFFFF, 0xCFFFF, 0xDFFFF,
		0xEFFFF, 0xFFFFF, 0x10FFFF:
		return true
	}
	return false
}

// voidElements is the set of HTML elements that never have content or an
// end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "command": true,
	"embed": true, "hr": true, "img": true, "input": true, "keygen": true,
	"link": true, "meta": true, "param": true, "source": true, "track": true,
	"wbr": true,
}

// IsVoidElement reports whether name (expected already lower-cased) is a
// void element per the HTML5 list.
func IsVoidElement(name string) bool {
	return voidElements[name]
}
