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
	"strconv"
	"strings"
)

// consumeCharacterReference resolves the character reference whose "&" was
// just consumed by the calling state. allowedChar is the current attribute
// quote ('>' in an unquoted value, 0 outside of an attribute); fromAttr marks attribute-value
// context for the historical "&notin=" compatibility rule. The resulting
// text is appended directly to its destination: the in-progress attribute
// value, or a new Characters / SpaceCharacters token.
func (t *Tokenizer) consumeCharacterReference(allowedChar rune, fromAttr bool) {
	r, ok := t.in.char()
	if !ok {
		t.emitEntityText("&", fromAttr)
		return
	}

	switch {
	case isWhitespace(r), r == '<', r == '&', r == allowedChar:
		t.in.unget(r)
		t.emitEntityText("&", fromAttr)
		return
	}

	if r == '#' {
		t.consumeNumericReference(fromAttr)
		return
	}

	t.in.unget(r)
	t.consumeNamedReference(fromAttr)
}

func (t *Tokenizer) consumeNumericReference(fromAttr bool) {
	var prefix strings.Builder
	prefix.WriteByte('#')

	hex := false
	r, ok := t.in.char()
	if ok && (r == 'x' || r == 'X') {
		hex = true
		prefix.WriteRune(r)
		r, ok = t.in.char()
	}

	if !ok || !isValidDigit(r, hex) {
		if ok {
			t.in.unget(r)
		}
		t.addError(ErrExpectedNumericEntity, nil)
		t.emitEntityText("&"+prefix.String(), fromAttr)
		return
	}

	var digits strings.Builder
	for ok && isValidDigit(r, hex) {
		digits.WriteRune(r)
		r, ok = t.in.char()
	}
	hasTerminator := ok
	terminator := r

	base := 10
	if hex {
		base = 16
	}
	n64, _ := strconv.ParseInt(digits.String(), base, 64)
	n := int(n64)

	var out rune
	if repl, remapped := replacementCharacter(n); remapped {
		out = repl
		t.addError(ErrIllegalCodepointForNumericEntity, nil)
	} else if (n >= 0xD800 && n <= 0xDFFF) || n > 0x10FFFF {
		out = '�'
		t.addError(ErrIllegalCodepointForNumericEntity, nil)
	} else {
		out = rune(n)
		if disallowedScalar(n) {
			t.addError(ErrIllegalCodepointForNumericEntity, nil)
		}
	}

	if !hasTerminator || terminator != ';' {
		t.addError(ErrNumericEntityWithoutSemicolon, nil)
		if hasTerminator {
			t.in.unget(terminator)
		}
	}

	t.emitEntityText(string(out), fromAttr)
}

func isValidDigit(r rune, hex bool) bool {
	if hex {
		return isHexDigit(r)
	}
	return isDigit(r)
}

// consumeNamedReference implements the longest-match named-reference
// resolution branch. The first candidate rune has already been
// pushed back onto the input stream by the caller.
func (t *Tokenizer) consumeNamedReference(fromAttr bool) {
	first, ok := t.in.char()
	if !ok {
		t.addError(ErrExpectedNamedEntity, nil)
		t.emitEntityText("&", fromAttr)
		return
	}

	bucket, hasBucket := entitiesByFirstChar[first]
	if !hasBucket {
		t.in.unget(first)
		t.addError(ErrExpectedNamedEntity, nil)
		t.emitEntityText("&", fromAttr)
		return
	}

	// Extend the candidate prefix one rune at a time, pruning the bucket to
	// names that still start with it; the rune that kills the last candidate
	// is un-got and everything consumed stays in buf. bestLen remembers the
	// longest prefix that is itself a complete name (covers &noti vs &not).
	candidates := bucket
	buf := []rune{first}

	bestLen := -1
	var replacement string
	if repl, ok := namedEntityReplacements[string(buf)]; ok {
		replacement, bestLen = repl, len(buf)
	}

	for len(candidates) > 0 {
		r, ok := t.in.char()
		if !ok {
			break
		}
		buf = append(buf, r)
		still := pruneEntityCandidates(candidates, buf)
		if len(still) == 0 {
			t.in.unget(r)
			buf = buf[:len(buf)-1]
			break
		}
		candidates = still
		if repl, ok := namedEntityReplacements[string(buf)]; ok {
			replacement, bestLen = repl, len(buf)
		}
	}

	if bestLen < 0 {
		// No complete name anywhere along the prefix: report the raw text
		// consumed, prefixed with "&"; the scalar that stopped the scan
		// is already back on the stream.
		t.addError(ErrExpectedNamedEntity, nil)
		t.emitEntityText("&"+string(buf), fromAttr)
		return
	}

	matched := string(buf[:bestLen])
	tail := string(buf[bestLen:])

	if matched[len(matched)-1] != ';' {
		t.addError(ErrNamedEntityWithoutSemicolon, nil)
		if fromAttr {
			// Historical compatibility: a legacy match followed by a letter,
			// digit or "=" inside an attribute value stays literal, so
			// &notin= must not become "¬in=". The scalar to test is the one
			// right after the matched name: the head of the tail, or the
			// next scalar on the stream when the match consumed everything.
			next, have := firstRune(tail)
			if !have {
				if r, ok := t.in.char(); ok {
					t.in.unget(r)
					next, have = r, true
				}
			}
			if have && (isLetterOrDigit(next) || next == '=') {
				t.emitEntityText("&"+matched+tail, fromAttr)
				return
			}
		}
	}

	t.emitEntityText(replacement+tail, fromAttr)
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

// pruneEntityCandidates keeps only the names in candidates that still
// have buf as a prefix.
func pruneEntityCandidates(candidates []string, buf []rune) []string {
	prefix := string(buf)
	kept := candidates[:0:0]
	for _, name := range candidates {
		if strings.HasPrefix(name, prefix) {
			kept = append(kept, name)
		}
	}
	return kept
}

// emitEntityText delivers the resolved (or literal-fallback) text to its
// destination: the in-progress attribute value, or directly as a new
// token.
func (t *Tokenizer) emitEntityText(s string, fromAttr bool) {
	if fromAttr {
		t.curAttrValue.WriteString(s)
		return
	}
	if isAllWhitespace(s) {
		t.emitSpaceCharacters(s)
	} else {
		t.emitCharacters(s)
	}
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		if !isWhitespace(r) {
			return false
		}
	}
	return true
}
