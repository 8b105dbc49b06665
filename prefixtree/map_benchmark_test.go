// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
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
//
// SPDX-License-Identifier: Apache-2.0

package prefixtree

import (
	"strconv"
	"testing"
)

func benchmarkTree() *Map[string, int, int] {
	builder := NewBuilder[string, int, int]()

	for i := range 100 {
		segment := strconv.Itoa(i)

		builder.InsertExact([]string{"api", segment}, i)
		builder.Insert([]KeyPart[string, int]{
			Exact[string, int]("api"), Exact[string, int](segment), Wildcard[string](0),
		}, i)
		builder.Insert([]KeyPart[string, int]{
			Wildcard[string](0), Exact[string, int](segment), Wildcard[string](1),
		}, i)
	}

	return builder.Build()
}

func BenchmarkBuilderInsertAndBuild(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		benchmarkTree()
	}
}

func BenchmarkMapFind(b *testing.B) {
	tree := benchmarkTree()

	for uc, key := range map[string][]string{
		"exact":        {"api", "42"},
		"wildcard":     {"api", "42", "foo"},
		"backtracking": {"foo", "42", "bar"},
		"no match":     {"foo", "bar", "baz"},
	} {
		b.Run(uc, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				_, _ = tree.Find(key)
			}
		})
	}
}
