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

package prometheus

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/prefixtree/internal/config"
)

const readHeaderTimeout = 5 * time.Second

func newHandler(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return mux
}

func registerMetricsServer(
	lc fx.Lifecycle,
	conf *config.Configuration,
	gatherer prometheus.Gatherer,
	logger zerolog.Logger,
) {
	if !conf.Metrics.Enabled {
		logger.Info().Msg("Metrics exposure disabled")

		return
	}

	srv := &http.Server{
		Addr:              conf.Metrics.Address,
		Handler:           newHandler(gatherer),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			listener, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}

			go func() {
				logger.Info().Str("_address", listener.Addr().String()).Msg("Metrics endpoint starts listening")

				if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal().Err(err).Msg("Could not start metrics endpoint")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Tearing down metrics endpoint")

			return srv.Shutdown(ctx)
		},
	})
}
