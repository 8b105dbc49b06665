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
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/prefixtree/internal/config"
	"github.com/dadrus/prefixtree/internal/watcher"
)

// Module is used on app bootstrap.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(watchKeySet),
)

func watchKeySet(conf *config.Configuration, w watcher.Watcher, r *Registry, logger zerolog.Logger) error {
	if !conf.KeySet.Watch {
		logger.Info().Msg("Key set watching disabled")

		return nil
	}

	return w.Add(conf.KeySet.Path, r)
}
