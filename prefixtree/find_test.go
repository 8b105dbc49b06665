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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFind(t *testing.T) {
	t.Parallel()

	// GIVEN
	builder := NewBuilder[string, string, string]()

	for value, key := range map[string][]KeyPart[string, string]{
		"root":             {},
		"/users":           {Exact[string, string]("users")},
		"/users/me":        {Exact[string, string]("users"), Exact[string, string]("me")},
		"/users/:id":       {Exact[string, string]("users"), Wildcard[string]("id")},
		"/users/:id/posts": {Exact[string, string]("users"), Wildcard[string]("id"), Exact[string, string]("posts")},
		"/:page":           {Wildcard[string]("page")},
		"/:a/:b/c":         {Wildcard[string]("a"), Wildcard[string]("b"), Exact[string, string]("c")},
		"/:a/:z/d":         {Wildcard[string]("a"), Wildcard[string]("z"), Exact[string, string]("d")},
	} {
		builder.Insert(key, value)
	}

	tree := builder.Build()

	for uc, tc := range map[string]struct {
		key      []string
		expValue string
		expCapts map[string]string
		expErr   error
	}{
		"empty key":                     {key: nil, expValue: "root", expCapts: map[string]string{}},
		"exact match":                   {key: []string{"users"}, expValue: "/users", expCapts: map[string]string{}},
		"exact preferred over wildcard": {key: []string{"users", "me"}, expValue: "/users/me", expCapts: map[string]string{}},
		"wildcard match":                {key: []string{"users", "42"}, expValue: "/users/:id", expCapts: map[string]string{"id": "42"}},
		"wildcard in the middle":        {key: []string{"users", "42", "posts"}, expValue: "/users/:id/posts", expCapts: map[string]string{"id": "42"}},
		"wildcard at top level":         {key: []string{"about"}, expValue: "/:page", expCapts: map[string]string{"page": "about"}},
		"backtracking to lower weight": {
			key: []string{"x", "y", "d"}, expValue: "/:a/:z/d",
			expCapts: map[string]string{"a": "x", "z": "y"},
		},
		"backtracking out of exact branch": {
			key: []string{"users", "me", "c"}, expValue: "/:a/:b/c",
			expCapts: map[string]string{"a": "users", "b": "me"},
		},
		"key too long":              {key: []string{"users", "42", "posts", "1"}, expErr: ErrNotFound},
		"no value on matched node":  {key: []string{"x", "y"}, expErr: ErrNotFound},
		"no match for last element": {key: []string{"x", "y", "e"}, expErr: ErrNotFound},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			entry, err := tree.Find(tc.key)

			// THEN
			if tc.expErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expErr)
				assert.Nil(t, entry)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expValue, entry.Value)
			assert.Equal(t, tc.expCapts, entry.Captures)
		})
	}
}

func TestMapFindWithMatcher(t *testing.T) {
	t.Parallel()

	// GIVEN
	builder := NewBuilder[string, int, string]()
	builder.InsertExact([]string{"foo", "bar"}, "exact")
	builder.Insert([]KeyPart[string, int]{Exact[string, int]("foo"), Wildcard[string](0)}, "first")
	builder.Insert([]KeyPart[string, int]{Exact[string, int]("foo"), Wildcard[string](1)}, "second")

	tree := builder.Build()

	for uc, tc := range map[string]struct {
		matcher  Matcher[string]
		expValue string
		expCapts map[int]string
		expErr   error
	}{
		"no matcher": {
			expValue: "exact",
			expCapts: map[int]string{},
		},
		"exact rejected": {
			matcher:  MatcherFunc[string](func(value string) bool { return value != "exact" }),
			expValue: "first",
			expCapts: map[int]string{0: "bar"},
		},
		"exact and first wildcard rejected": {
			matcher:  MatcherFunc[string](func(value string) bool { return value == "second" }),
			expValue: "second",
			expCapts: map[int]string{1: "bar"},
		},
		"everything rejected": {
			matcher: MatcherFunc[string](func(_ string) bool { return false }),
			expErr:  ErrNotFound,
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			entry, err := tree.Find([]string{"foo", "bar"}, WithMatcher(tc.matcher))

			// THEN
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expValue, entry.Value)
			assert.Equal(t, tc.expCapts, entry.Captures)
		})
	}
}

func TestMapGet(t *testing.T) {
	t.Parallel()

	// GIVEN
	builder := NewBuilder[int, int, string]()
	builder.InsertExact([]int{1, 2, 3}, "123")

	tree := builder.Build()

	// WHEN
	val, ok := tree.Get([]int{1, 2, 3})
	_, notOk := tree.Get([]int{1, 2})

	// THEN
	assert.True(t, ok)
	assert.Equal(t, "123", val)
	assert.False(t, notOk)
}

func TestMapFindOnEmptyTree(t *testing.T) {
	t.Parallel()

	tree := NewBuilder[string, int, int]().Build()

	_, err := tree.Find([]string{"a"})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = tree.Find(nil)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 1, tree.NodeCount())
}
