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

func readAll(in *inputStream) string {
	var runes []rune
	for {
		r, ok := in.char()
		if !ok {
			return string(runes)
		}
		runes = append(runes, r)
	}
}

func TestCharNormalizesNewlines(t *testing.T) {
	in := newInputStreamFromText("a\r\nb\rc\n", "t")
	if got, want := readAll(in), "a\nb\nc\n"; got != want {
		t.Errorf("readAll = %q, want %q", got, want)
	}
	if got, want := in.lineNumber(), 4; got != want {
		t.Errorf("lineNumber = %d, want %d", got, want)
	}
}

func TestUnget(t *testing.T) {
	in := newInputStreamFromText("abc", "t")
	r, _ := in.char()
	if r != 'a' {
		t.Fatalf("char = %q, want 'a'", r)
	}
	in.unget('a')
	in.unget('x') // LIFO: pushed last, read first
	if got, want := readAll(in), "xabc"; got != want {
		t.Errorf("readAll after unget = %q, want %q", got, want)
	}
}

func TestCharsUntil(t *testing.T) {
	in := newInputStreamFromText("hello<world", "t")
	if got, want := in.charsUntil(map[rune]bool{'<': true}, false), "hello"; got != want {
		t.Errorf("charsUntil = %q, want %q", got, want)
	}
	// The stop character is left unconsumed.
	if r, _ := in.char(); r != '<' {
		t.Errorf("char after charsUntil = %q, want '<'", r)
	}

	in = newInputStreamFromText("abba!x", "t")
	set := map[rune]bool{'a': true, 'b': true}
	if got, want := in.charsUntil(set, true), "abba"; got != want {
		t.Errorf("charsUntil(invert) = %q, want %q", got, want)
	}
	if r, _ := in.char(); r != '!' {
		t.Errorf("char after charsUntil(invert) = %q, want '!'", r)
	}
}

func TestPosition(t *testing.T) {
	in := newInputStreamFromText("ab\ncd", "t")
	if got := in.position(); got != 0 {
		t.Errorf("position = %d, want 0", got)
	}
	for i := 0; i < 3; i++ {
		in.char()
	}
	if got := in.position(); got != 3 {
		t.Errorf("position after 3 reads = %d, want 3", got)
	}
	if got := in.lineNumber(); got != 2 {
		t.Errorf("lineNumber = %d, want 2", got)
	}
}

func TestFromBytesExplicitEncoding(t *testing.T) {
	in, err := newInputStreamFromBytes([]byte{'c', 'a', 'f', 0xE9}, "windows-1252", false, "t")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := readAll(in), "café"; got != want {
		t.Errorf("readAll = %q, want %q", got, want)
	}
}

func TestFromBytesMetaSniffing(t *testing.T) {
	raw := append([]byte(`<meta charset="windows-1252">`), 0x93, 'q', 0x94)
	in, err := newInputStreamFromBytes(raw, "", true, "t")
	if err != nil {
		t.Fatal(err)
	}
	got := readAll(in)
	if want := `<meta charset="windows-1252">` + "“q”"; got != want {
		t.Errorf("readAll = %q, want %q", got, want)
	}
}

func TestFromBytesUnknownEncoding(t *testing.T) {
	if _, err := newInputStreamFromBytes([]byte("x"), "no-such-charset", false, "t"); err == nil {
		t.Error("newInputStreamFromBytes accepted an unknown encoding")
	}
}

func TestInvalidUTF8SurfacesAsParseError(t *testing.T) {
	tok, err := NewFromBytes([]byte("a\xffb"), "test.html", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	got := tokenizeAll(t, tok)
	if len(got) != 2 {
		t.Fatalf("token count = %d, want 2: %v", len(got), got)
	}
	pe, ok := got[0].(*ParseError)
	if !ok || pe.Kind != ErrInvalidCodepoint {
		t.Errorf("first token = %#v, want ParseError invalid-codepoint", got[0])
	}
	want := &Characters{Data: "a�b"}
	if diff := cmp.Diff(Token(want), got[1], tokenCmpOpts); diff != "" {
		t.Error("Token diff (-want +got)\n", diff)
	}
}
