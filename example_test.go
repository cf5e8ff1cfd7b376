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

package html5tokenizer_test

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/Goodwine/html5tokenizer"
)

// This example demonstrates driving the tokenizer by hand over a small
// document, and how to terminate the read loop.
func Example_manualTokenization() {
	const doc = `<!DOCTYPE html><p class="intro">Tom &amp; Jerry</p><br/>`

	tok := html5tokenizer.New(doc, "example.html", html5tokenizer.DefaultOptions())
	for {
		tk, err := tok.Next()
		if err != nil {
			// Tokenization completes when EOF is returned.
			if errors.Is(err, io.EOF) {
				break
			}
			log.Fatal(err)
			return
		}

		switch tk := tk.(type) {
		case *html5tokenizer.Doctype:
			fmt.Printf("doctype %s\n", tk.Name)
		case *html5tokenizer.StartTag:
			fmt.Printf("start   %s %v\n", tk.Name, tk.Attr)
		case *html5tokenizer.EndTag:
			fmt.Printf("end     %s\n", tk.Name)
		case *html5tokenizer.Characters:
			fmt.Printf("text    %q\n", tk.Data)
		case *html5tokenizer.SpaceCharacters:
			fmt.Printf("space   %q\n", tk.Data)
		case *html5tokenizer.ParseError:
			fmt.Printf("error   %s\n", tk.Kind)
		default:
			log.Fatalf("unexpected token: %T", tk)
		}
	}

	// Output:
	// doctype html
	// start   p [{class intro}]
	// text    "Tom "
	// text    "&"
	// text    " Jerry"
	// end     p
	// start   br []
}
