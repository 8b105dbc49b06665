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
)

type kind uint8

const (
	kindExact kind = iota
	kindWildcard
)

// KeyPart is a single segment of a key. It is either an exact alphabet value, which
// only matches an equal element, or a weighted wildcard, which matches any element.
//
// Key parts are totally ordered. Exact parts always precede wildcard parts. Exact parts
// are ordered by their value, wildcard parts by their weight, both ascending. A key part
// preceding another one has the higher priority when matching.
type KeyPart[E, W cmp.Ordered] struct {
	kind   kind
	value  E
	weight W
}

// Exact creates a key part matching only the given value.
func Exact[E, W cmp.Ordered](value E) KeyPart[E, W] {
	return KeyPart[E, W]{kind: kindExact, value: value}
}

// Wildcard creates a key part matching any single element. The weight decides the
// priority among sibling wildcards (lower weight wins) and serves as the capture name.
func Wildcard[E, W cmp.Ordered](weight W) KeyPart[E, W] {
	return KeyPart[E, W]{kind: kindWildcard, weight: weight}
}

func (k KeyPart[E, W]) IsWildcard() bool { return k.kind == kindWildcard }

// Value returns the exact value. The second result is false for wildcards.
func (k KeyPart[E, W]) Value() (E, bool) {
	return k.value, k.kind == kindExact
}

// Weight returns the wildcard weight. The second result is false for exact parts.
func (k KeyPart[E, W]) Weight() (W, bool) {
	return k.weight, k.kind == kindWildcard
}

// Compare returns a negative number if k precedes other, a positive number if other
// precedes k, and zero if both are equal.
func (k KeyPart[E, W]) Compare(other KeyPart[E, W]) int {
	if k.kind != other.kind {
		return cmp.Compare(k.kind, other.kind)
	}

	if k.kind == kindWildcard {
		return cmp.Compare(k.weight, other.weight)
	}

	return cmp.Compare(k.value, other.value)
}

func (k KeyPart[E, W]) Equal(other KeyPart[E, W]) bool { return k.Compare(other) == 0 }

func (k KeyPart[E, W]) String() string {
	if k.kind == kindWildcard {
		return fmt.Sprintf("Wildcard(%v)", k.weight)
	}

	return fmt.Sprintf("Exact(%v)", k.value)
}

// ExactParts converts the given elements into exact key parts.
func ExactParts[E, W cmp.Ordered](elements ...E) []KeyPart[E, W] {
	parts := make([]KeyPart[E, W], len(elements))
	for i, el := range elements {
		parts[i] = Exact[E, W](el)
	}

	return parts
}
