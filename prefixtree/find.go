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
	"cmp"
	"fmt"
	"slices"
)

// Entry is the result of a successful lookup.
type Entry[E, W cmp.Ordered, V any] struct {
	Value V
	// Captures maps the weight of every wildcard on the matched path to the element
	// it matched. If a weight occurs more than once on the path, the last match wins.
	Captures map[W]E
}

type capture[E, W cmp.Ordered] struct {
	weight W
	value  E
}

// Find looks up the value for the given key. Exact key parts are preferred over
// wildcards, and wildcards with lower weight over those with higher weight. Every
// wildcard matches exactly one element. If the most specific candidate is rejected by
// the matcher given via WithMatcher, the lookup backtracks to the next candidate.
func (t *Map[E, W, V]) Find(key []E, opts ...FindOption[V]) (*Entry[E, W, V], error) {
	fOpts := findOpts[V]{matcher: MatcherFunc[V](func(_ V) bool { return true })}

	for _, opt := range opts {
		opt(&fOpts)
	}

	found, captures := t.root.find(key, make([]capture[E, W], 0, t.maxWildcardDepth), fOpts.matcher)
	if found == nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, key)
	}

	entry := &Entry[E, W, V]{
		Value:    found.value,
		Captures: make(map[W]E, len(captures)),
	}

	for _, c := range captures {
		entry.Captures[c.weight] = c.value
	}

	return entry, nil
}

// Get returns the value matching the given key, if any.
func (t *Map[E, W, V]) Get(key []E) (V, bool) {
	var def V

	entry, err := t.Find(key)
	if err != nil {
		return def, false
	}

	return entry.Value, true
}

func (n *Node[E, W, V]) find(
	key []E,
	captures []capture[E, W],
	matcher Matcher[V],
) (*Node[E, W, V], []capture[E, W]) {
	if len(key) == 0 {
		if n.hasValue && matcher.Match(n.value) {
			return n, captures
		}

		return nil, nil
	}

	element := key[0]
	remainder := key[1:]

	exact := n.children[:n.exactChildren]
	if idx, ok := slices.BinarySearchFunc(exact, element, func(child *Node[E, W, V], el E) int {
		return cmp.Compare(child.keyPart.value, el)
	}); ok {
		if found, tmp := exact[idx].find(remainder, captures, matcher); found != nil {
			return found, tmp
		}
	}

	for _, child := range n.children[n.exactChildren:] {
		found, tmp := child.find(remainder, append(captures, capture[E, W]{child.keyPart.weight, element}), matcher)
		if found != nil {
			return found, tmp
		}
	}

	return nil, nil
}
