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

package logging

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/dadrus/prefixtree/internal/config"
)

// Module is used on app bootstrap.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		config.LogConfiguration,
		NewLogger,
	),
	fx.WithLogger(func(logger zerolog.Logger) fxevent.Logger {
		return &eventLogger{l: logger}
	}),
)

type eventLogger struct {
	l zerolog.Logger
}

func (e *eventLogger) LogEvent(event fxevent.Event) {
	switch evt := event.(type) {
	case *fxevent.OnStartExecuted:
		if evt.Err != nil {
			e.l.Error().Err(evt.Err).Str("_callee", evt.FunctionName).Msg("OnStart hook failed")
		}
	case *fxevent.OnStopExecuted:
		if evt.Err != nil {
			e.l.Error().Err(evt.Err).Str("_callee", evt.FunctionName).Msg("OnStop hook failed")
		}
	case *fxevent.Started:
		if evt.Err != nil {
			e.l.Error().Err(evt.Err).Msg("Start failed")
		}
	default:
		e.l.Trace().Msgf("%T", event)
	}
}
