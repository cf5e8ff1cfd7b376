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

// SourceSpan is a (file, start, end) triple describing the source extent a
// token covers. It is only populated when Options.GenerateSpans is true;
// otherwise every token carries the zero SourceSpan.
type SourceSpan struct {
	File  string
	Start int // byte offset, inclusive
	End   int // byte offset, exclusive
}

// Text returns src[s.Start:s.End]. Concatenating Text(src) for every
// non-ParseError token in order reproduces src up to the end of the last
// emitted token. Input read after that token is not covered: a tag cut off
// by end-of-input (for example a trailing "<a") emits no token, so its
// bytes belong to no span.
func (s SourceSpan) Text(src string) string {
	if s.Start < 0 || s.End > len(src) || s.Start > s.End {
		return ""
	}
	return src[s.Start:s.End]
}
