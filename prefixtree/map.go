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

// Map is the immutable prefix tree created by Builder.Build. It can be shared between
// goroutines without synchronization.
type Map[E, W cmp.Ordered, V any] struct {
	root             *Node[E, W, V]
	maxWildcardDepth int
	nodes            int
	values           int
}

// Node is a single node of a finished tree. The children of a node are sorted by
// descending priority of their key parts, that is exact parts first.
type Node[E, W cmp.Ordered, V any] struct {
	keyPart  *KeyPart[E, W]
	value    V
	hasValue bool

	children []*Node[E, W, V]
	// children[:exactChildren] hold exact key parts
	exactChildren int
}

func (t *Map[E, W, V]) Root() *Node[E, W, V] { return t.root }

// MaxWildcardDepth returns the highest number of wildcard parts used in any key inserted
// while building the tree.
func (t *Map[E, W, V]) MaxWildcardDepth() int { return t.maxWildcardDepth }

// Len returns the number of values stored in the tree.
func (t *Map[E, W, V]) Len() int { return t.values }

// NodeCount returns the number of nodes including the root.
func (t *Map[E, W, V]) NodeCount() int { return t.nodes }

// Walk visits the nodes in depth-first pre-order following the priority order of the
// children. fn receives the key parts leading to the visited node; the slice is reused
// between calls. Returning false from fn skips the subtree of the visited node.
func (t *Map[E, W, V]) Walk(fn func(path []KeyPart[E, W], node *Node[E, W, V]) bool) {
	t.root.walk(make([]KeyPart[E, W], 0, 8), fn) //nolint:mnd
}

func (n *Node[E, W, V]) walk(path []KeyPart[E, W], fn func([]KeyPart[E, W], *Node[E, W, V]) bool) {
	if !fn(path, n) {
		return
	}

	for _, child := range n.children {
		child.walk(append(path, *child.keyPart), fn)
	}
}

// KeyPart returns the key part of the node. The second result is false for the root node only.
func (n *Node[E, W, V]) KeyPart() (KeyPart[E, W], bool) {
	if n.keyPart == nil {
		return KeyPart[E, W]{}, false
	}

	return *n.keyPart, true
}

func (n *Node[E, W, V]) Value() (V, bool) { return n.value, n.hasValue }

func (n *Node[E, W, V]) Children() iter.Seq[*Node[E, W, V]] { return slices.Values(n.children) }

func (n *Node[E, W, V]) NumChildren() int { return len(n.children) }

func (n *Node[E, W, V]) Child(idx int) *Node[E, W, V] { return n.children[idx] }

func (n *Node[E, W, V]) IsLeaf() bool { return len(n.children) == 0 }
