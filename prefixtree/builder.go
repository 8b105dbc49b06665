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
	"iter"
	"slices"
)

// Builder incrementally assembles a prefix tree. Once all keys are inserted, Build
// turns it into an immutable Map. A Builder is single use: after Build returned, any
// further call panics. The zero value is an empty Builder ready to use.
//
// A Builder is not safe for concurrent use.
type Builder[E, W cmp.Ordered, V any] struct {
	root             *nodeBuilder[E, W, V]
	maxWildcardDepth int
	consumed         bool
}

type nodeBuilder[E, W cmp.Ordered, V any] struct {
	keyPart  *KeyPart[E, W]
	value    V
	hasValue bool

	// unordered until the tree is built
	children []*nodeBuilder[E, W, V]
}

func NewBuilder[E, W cmp.Ordered, V any]() *Builder[E, W, V] {
	return &Builder[E, W, V]{root: &nodeBuilder[E, W, V]{}}
}

// Insert associates value with the path described by key. An existing value on the
// same path is overwritten. An empty key addresses the root.
func (b *Builder[E, W, V]) Insert(key []KeyPart[E, W], value V) {
	b.InsertSeq(slices.Values(key), value)
}

// InsertExact works like Insert, but treats every element of the key as an exact key part.
func (b *Builder[E, W, V]) InsertExact(key []E, value V) {
	b.InsertSeq(func(yield func(KeyPart[E, W]) bool) {
		for _, el := range key {
			if !yield(Exact[E, W](el)) {
				return
			}
		}
	}, value)
}

// InsertSeq works like Insert, but takes the key parts from the given sequence.
func (b *Builder[E, W, V]) InsertSeq(key iter.Seq[KeyPart[E, W]], value V) {
	node := b.rootNode()
	wildcardDepth := 0

	for keyPart := range key {
		if keyPart.IsWildcard() {
			wildcardDepth++
		}

		node = node.childFor(keyPart)
	}

	node.value = value
	node.hasValue = true

	b.maxWildcardDepth = max(b.maxWildcardDepth, wildcardDepth)
}

// MaxWildcardDepth returns the highest number of wildcards seen in a single inserted key so far.
func (b *Builder[E, W, V]) MaxWildcardDepth() int { return b.maxWildcardDepth }

// Build consumes the builder and returns the finished tree.
func (b *Builder[E, W, V]) Build() *Map[E, W, V] {
	root := b.rootNode()

	b.root = nil
	b.consumed = true

	tree := &Map[E, W, V]{maxWildcardDepth: b.maxWildcardDepth}
	tree.root = tree.finalize(root)

	return tree
}

func (b *Builder[E, W, V]) rootNode() *nodeBuilder[E, W, V] {
	if b.consumed {
		panic(ErrBuilderConsumed)
	}

	if b.root == nil {
		b.root = &nodeBuilder[E, W, V]{}
	}

	return b.root
}

func (n *nodeBuilder[E, W, V]) childFor(keyPart KeyPart[E, W]) *nodeBuilder[E, W, V] {
	for _, child := range n.children {
		if child.keyPart.Equal(keyPart) {
			return child
		}
	}

	child := &nodeBuilder[E, W, V]{keyPart: &keyPart}
	n.children = append(n.children, child)

	return child
}

func (t *Map[E, W, V]) finalize(nb *nodeBuilder[E, W, V]) *Node[E, W, V] {
	node := &Node[E, W, V]{
		keyPart:  nb.keyPart,
		value:    nb.value,
		hasValue: nb.hasValue,
	}

	t.nodes++

	if nb.hasValue {
		t.values++
	}

	if nb.children != nil {
		slices.SortFunc(nb.children, func(a, b *nodeBuilder[E, W, V]) int {
			return a.keyPart.Compare(*b.keyPart)
		})

		node.children = make([]*Node[E, W, V], len(nb.children))
		node.exactChildren = len(nb.children)

		for idx, child := range nb.children {
			if child.keyPart.IsWildcard() && node.exactChildren == len(nb.children) {
				node.exactChildren = idx
			}

			node.children[idx] = t.finalize(child)
		}
	}

	// the construction node must not be used anymore
	*nb = nodeBuilder[E, W, V]{}

	return node
}
