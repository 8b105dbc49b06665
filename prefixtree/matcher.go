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

// Matcher decides whether a value reached by Find is accepted. Rejecting it makes
// Find try the next candidate in priority order.
type Matcher[V any] interface {
	Match(value V) bool
}

// MatcherFunc lets a plain func act as a Matcher.
type MatcherFunc[V any] func(value V) bool

func (f MatcherFunc[V]) Match(value V) bool {
	return f(value)
}

type FindOption[V any] func(opts *findOpts[V])

type findOpts[V any] struct {
	matcher Matcher[V]
}

func WithMatcher[V any](matcher Matcher[V]) FindOption[V] {
	return func(opts *findOpts[V]) {
		if matcher != nil {
			opts.matcher = matcher
		}
	}
}
