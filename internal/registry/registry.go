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

package registry

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/inhies/go-bytesize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/dadrus/prefixtree/internal/config"
	"github.com/dadrus/prefixtree/internal/errorsx"
	"github.com/dadrus/prefixtree/internal/keyset"
	"github.com/dadrus/prefixtree/internal/x/errorchain"
	"github.com/dadrus/prefixtree/prefixtree"
)

var ErrNoKeySet = errors.New("no key set configured")

// Entry is the result of a successful lookup.
type Entry = prefixtree.Entry[string, string, string]

type snapshot struct {
	tree      *keyset.Tree
	separator string
}

// Registry serves lookups from the most recently built tree. A reload builds a new
// tree from the key set document and swaps it in. Lookups running concurrently keep
// using the tree they started with.
type Registry struct {
	path             string
	defaultSeparator string
	maxSize          bytesize.ByteSize

	current atomic.Pointer[snapshot]
	// serializes reloads
	mut     sync.Mutex
	metrics *metrics
	l       zerolog.Logger
}

func New(conf *config.Configuration, reg prometheus.Registerer, logger zerolog.Logger) (*Registry, error) {
	if len(conf.KeySet.Path) == 0 {
		return nil, errorchain.New(errorsx.ErrConfiguration).CausedBy(ErrNoKeySet)
	}

	m, err := newMetrics(reg)
	if err != nil {
		return nil, errorchain.NewWithMessage(errorsx.ErrInternal,
			"failed to register key set metrics").CausedBy(err)
	}

	r := &Registry{
		path:             conf.KeySet.Path,
		defaultSeparator: conf.KeySet.Separator,
		maxSize:          conf.KeySet.MaxSize,
		metrics:          m,
		l:                logger,
	}

	if err = r.Reload(); err != nil {
		return nil, err
	}

	return r, nil
}

// Reload rebuilds the tree from the key set document. On failure the previously
// active tree stays in place.
func (r *Registry) Reload() error {
	r.mut.Lock()
	defer r.mut.Unlock()

	doc, err := keyset.DecodeFile(r.path, r.maxSize)
	if err != nil {
		r.metrics.failed()

		return err
	}

	tree, err := doc.Build(r.defaultSeparator)
	if err != nil {
		r.metrics.failed()

		return err
	}

	r.current.Store(&snapshot{tree: tree, separator: doc.EffectiveSeparator(r.defaultSeparator)})
	r.metrics.observe(tree)

	r.l.Info().
		Str("_file", r.path).
		Int("_values", tree.Len()).
		Int("_nodes", tree.NodeCount()).
		Msg("Key set loaded")

	return nil
}

// Tree returns the active tree.
func (r *Registry) Tree() *keyset.Tree { return r.current.Load().tree }

// Separator returns the separator used to split keys for the active tree.
func (r *Registry) Separator() string { return r.current.Load().separator }

// Lookup splits key by the active separator and finds the most specific entry.
func (r *Registry) Lookup(key string) (*Entry, error) {
	snap := r.current.Load()

	parts, err := keyset.SplitKey(key, snap.separator)
	if err != nil {
		return nil, err
	}

	return snap.tree.Find(parts)
}

// OnChanged reloads the key set after the watcher reported a change.
func (r *Registry) OnChanged(logger zerolog.Logger) {
	if err := r.Reload(); err != nil {
		logger.Error().Err(err).
			Str("_file", r.path).
			Msg("Failed to reload key set. Keeping the previous one")
	}
}
