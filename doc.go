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

// Package html5tokenizer is a streaming lexical analyzer for HTML5.
//
// It implements the tokenization stage of the WHATWG HTML parsing algorithm
// only: given a sequence of Unicode scalar values it produces a sequence of
// tokens (start tag, end tag, characters, space-characters, comment,
// doctype, processing instruction, parse error). There is no tree
// construction, no serialization and no DOM model here; a tree-construction
// stage is expected to drive this package through Tokenizer.Next and to
// push back a small amount of feedback (content-model switches and the
// CDATA-allowed flag) at well-defined points.
//
// This package reuses buffers and reusable token instances across calls to
// Next to reduce allocations, the same way github.com/Goodwine/go-xml does
// for XML.
package html5tokenizer
