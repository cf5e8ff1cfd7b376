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

	"golang.org/x/net/html"
)

func BenchmarkTokenizeAll(b *testing.B) {
	doc := strings.Repeat(
		`<div id="row" class="a b"><a href="/x?a=1&amp;b=2">link &copy; 2020</a><!-- cell --><br/></div>`,
		500)

	testCases := []struct {
		desc        string
		tokenizeAll func()
	}{
		{"html5tokenizer",
			func() {
				tok := New(doc, "bench.html", DefaultOptions())
				for {
					_, err := tok.Next()
					if err != nil {
						if errors.Is(err, io.EOF) {
							return
						}
						b.Fatal("html5tokenizer parsing error")
					}
				}
			},
		},
		{"x_net_html",
			func() {
				z := html.NewTokenizer(strings.NewReader(doc))
				for {
					if z.Next() == html.ErrorToken {
						if errors.Is(z.Err(), io.EOF) {
							return
						}
						b.Fatal("x/net/html parsing error")
					}
				}
			},
		},
	}

	for _, tc := range testCases {
		b.Run(tc.desc, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tc.tokenizeAll()
			}
		})
	}
}
