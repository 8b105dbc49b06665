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
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyPartCompare(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		lhs KeyPart[string, int]
		rhs KeyPart[string, int]
		exp int
	}{
		"equal exact parts":                {Exact[string, int]("a"), Exact[string, int]("a"), 0},
		"exact parts ordered by value":     {Exact[string, int]("a"), Exact[string, int]("b"), -1},
		"exact parts ordered by value rev": {Exact[string, int]("b"), Exact[string, int]("a"), 1},
		"equal wildcards":                  {Wildcard[string](1), Wildcard[string](1), 0},
		"wildcards ordered by weight":      {Wildcard[string](0), Wildcard[string](1), -1},
		"wildcards ordered by weight rev":  {Wildcard[string](5), Wildcard[string](1), 1},
		"exact precedes wildcard":          {Exact[string, int]("z"), Wildcard[string](-100), -1},
		"wildcard follows exact":           {Wildcard[string](-100), Exact[string, int](""), 1},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			res := tc.lhs.Compare(tc.rhs)

			// THEN
			assert.Equal(t, tc.exp, res)
			assert.Equal(t, tc.exp == 0, tc.lhs.Equal(tc.rhs))
		})
	}
}

func TestKeyPartEqualityIgnoresForeignPayload(t *testing.T) {
	t.Parallel()

	// an exact part with the zero value and a wildcard with the zero weight
	// share the same payload bytes, but belong to different categories
	exact := Exact[int, int](0)
	wildcard := Wildcard[int](0)

	assert.False(t, exact.Equal(wildcard))
	assert.False(t, wildcard.Equal(exact))
}

func TestKeyPartWithNaNIsEqualToItself(t *testing.T) {
	t.Parallel()

	part := Exact[float64, int](math.NaN())

	assert.True(t, part.Equal(Exact[float64, int](math.NaN())))
}

func TestKeyPartAccessors(t *testing.T) {
	t.Parallel()

	exact := Exact[string, int]("foo")
	wildcard := Wildcard[string](3)

	assert.False(t, exact.IsWildcard())
	assert.True(t, wildcard.IsWildcard())

	val, ok := exact.Value()
	assert.True(t, ok)
	assert.Equal(t, "foo", val)

	_, ok = exact.Weight()
	assert.False(t, ok)

	weight, ok := wildcard.Weight()
	assert.True(t, ok)
	assert.Equal(t, 3, weight)

	_, ok = wildcard.Value()
	assert.False(t, ok)

	assert.Equal(t, "Exact(foo)", exact.String())
	assert.Equal(t, "Wildcard(3)", wildcard.String())
}

func TestKeyPartSortOrder(t *testing.T) {
	t.Parallel()

	// GIVEN
	parts := []KeyPart[string, int]{
		Wildcard[string](2),
		Exact[string, int]("b"),
		Wildcard[string](0),
		Exact[string, int]("a"),
		Exact[string, int]("c"),
	}

	// WHEN
	slices.SortFunc(parts, KeyPart[string, int].Compare)

	// THEN
	assert.Equal(t, []KeyPart[string, int]{
		Exact[string, int]("a"),
		Exact[string, int]("b"),
		Exact[string, int]("c"),
		Wildcard[string](0),
		Wildcard[string](2),
	}, parts)
}

func TestExactParts(t *testing.T) {
	t.Parallel()

	parts := ExactParts[string, int]("a", "b")

	assert.Equal(t, []KeyPart[string, int]{Exact[string, int]("a"), Exact[string, int]("b")}, parts)
	assert.Empty(t, ExactParts[string, int]())
}
