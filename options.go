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

// Options holds the tokenizer configuration: plain exported fields, set
// before constructing a Tokenizer, in the same spirit as go-xml's
// Decoder.ReadComment/ReadDirective flags.
type Options struct {
	// LowercaseElementName folds start/end tag names to ASCII lower.
	LowercaseElementName bool

	// LowercaseAttrName folds attribute names to ASCII lower.
	LowercaseAttrName bool

	// GenerateSpans attaches a SourceSpan to every emitted token.
	GenerateSpans bool

	// Encoding, if non-empty, is an explicit input encoding name (an IANA
	// charset alias resolvable by golang.org/x/text/encoding/htmlindex)
	// that overrides meta-sniffing.
	Encoding string

	// ParseMeta allows a one-shot encoding override taken from a
	// <meta charset=...> directive found in the first few kilobytes.
	ParseMeta bool

	// AllowProcessingInstructions gates the superset-of-HTML5 handling of
	// "<?" as the start of a ProcessingInstruction token rather than a
	// bogus comment. Set false for strict HTML5 conformance, where "<?"
	// always opens a bogus comment.
	AllowProcessingInstructions bool

	// EmitSyntheticEndForSelfClosing makes "<x/>" on a non-void element
	// emit a synthetic EndTag immediately after the StartTag, instead of
	// the strict HTML5 behavior where self-closing on an HTML element is
	// simply ignored.
	EmitSyntheticEndForSelfClosing bool
}

// DefaultOptions returns the default configuration: names fold to lower
// case, spans are off, and both authoring extensions are on.
func DefaultOptions() Options {
	return Options{
		LowercaseElementName:           true,
		LowercaseAttrName:              true,
		GenerateSpans:                  false,
		ParseMeta:                      false,
		AllowProcessingInstructions:    true,
		EmitSyntheticEndForSelfClosing: true,
	}
}
