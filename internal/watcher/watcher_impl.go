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

package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/dadrus/prefixtree/internal/errorsx"
	"github.com/dadrus/prefixtree/internal/x/errorchain"
)

type listenerEntry struct {
	listeners    []ChangeListener
	resolvedPath string
}

type watcher struct {
	w *fsnotify.Watcher
	m map[string]*listenerEntry
	l zerolog.Logger

	mut     sync.Mutex
	done    chan struct{}
	started bool
}

func newWatcher(logger zerolog.Logger) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errorchain.NewWithMessage(errorsx.ErrInternal,
			"failed to instantiate file watcher").CausedBy(err)
	}

	return &watcher{
		w:    fsw,
		m:    make(map[string]*listenerEntry),
		l:    logger,
		done: make(chan struct{}),
	}, nil
}

func (w *watcher) Add(path string, cl ChangeListener) error {
	w.mut.Lock()
	defer w.mut.Unlock()

	entry := w.m[path]
	if entry != nil {
		entry.listeners = append(entry.listeners, cl)

		return nil
	}

	if err := w.w.Add(path); err != nil {
		return errorchain.NewWithMessagef(errorsx.ErrInternal,
			"listener registration for file %s failed", path).CausedBy(err)
	}

	resolvedPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return errorchain.NewWithMessagef(errorsx.ErrInternal,
			"listener registration for file %s failed", path).CausedBy(err)
	}

	w.m[path] = &listenerEntry{listeners: []ChangeListener{cl}, resolvedPath: resolvedPath}

	return nil
}

func (w *watcher) watch() {
	defer close(w.done)

	for {
		select {
		case evt, ok := <-w.w.Events:
			if !ok {
				w.l.Debug().Msg("Key set watcher closed")

				return
			}

			var (
				changed bool
				err     error
			)

			// symlink swaps, as done by kubernetes for mounted config maps, only show up as chmod
			if evt.Has(fsnotify.Chmod) {
				changed, err = w.checkForUpdate(evt.Name)
				if err != nil {
					w.l.Warn().Err(err).Msgf("Handling modification for %s failed", evt.Name)
				}
			}

			if evt.Has(fsnotify.Write) || changed {
				w.fireOnChange(evt.Name)
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				w.l.Debug().Msg("Key set watcher error channel closed")

				return
			}

			w.l.Warn().Err(err).Msg("Key set watcher error received")
		}
	}
}

func (w *watcher) checkForUpdate(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			_ = w.w.Remove(path)

			return false, nil
		}

		return false, err
	}

	resolvedPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false, err
	}

	w.mut.Lock()
	defer w.mut.Unlock()

	entry := w.m[path]
	if entry == nil || entry.resolvedPath == resolvedPath {
		return false, nil
	}

	_ = w.w.Remove(path)
	entry.resolvedPath = resolvedPath
	_ = w.w.Add(path)

	return true, nil
}

func (w *watcher) fireOnChange(path string) {
	w.mut.Lock()

	var listeners []ChangeListener
	if entry := w.m[path]; entry != nil {
		listeners = append(listeners, entry.listeners...)
	}

	w.mut.Unlock()

	for _, listener := range listeners {
		listener.OnChanged(w.l)
	}
}

func (w *watcher) start(_ context.Context) {
	w.l.Debug().Msg("Starting watching key set files for changes")

	w.mut.Lock()
	w.started = true
	w.mut.Unlock()

	go w.watch()
}

func (w *watcher) stop(_ context.Context) error {
	w.l.Debug().Msg("Stopping watching key set files for changes")

	err := w.w.Close()

	w.mut.Lock()
	started := w.started
	w.mut.Unlock()

	if started {
		<-w.done
	}

	return err
}
