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

package watch

import (
	"bytes"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/fx"

	"github.com/dadrus/prefixtree/cmd/flags"
	"github.com/dadrus/prefixtree/internal"
	"github.com/dadrus/prefixtree/internal/config"
	"github.com/dadrus/prefixtree/internal/logging"
)

func createApp(cmd *cobra.Command, args []string, options ...fx.Option) (*fx.App, error) {
	configPath, _ := cmd.Flags().GetString(flags.Config)
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)
	cli := bytes.NewBufferString(cmd.CommandPath())

	cmd.Flags().Visit(func(flag *pflag.Flag) {
		cli.WriteString(" --")
		cli.WriteString(flag.Name)

		if flag.Value.Type() != "bool" {
			cli.WriteString(" ")
			cli.WriteString(flag.Value.String())
		}
	})

	cfg, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
	)
	if err != nil {
		return nil, err
	}

	if len(args) != 0 {
		cfg.KeySet.Path = args[0]
	}

	logger := logging.NewLogger(cfg.Log)
	logger.Info().
		Str("_cli", cli.String()).
		Str("_keyset", cfg.KeySet.Path).
		Msg("Starting prefixtree")

	app := fx.New(append([]fx.Option{
		fx.Supply(cfg),
		internal.Module,
	}, options...)...)

	return app, app.Err()
}
