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

package inspect

import (
	"github.com/spf13/cobra"

	"github.com/dadrus/prefixtree/cmd/flags"
	"github.com/dadrus/prefixtree/internal/config"
	"github.com/dadrus/prefixtree/internal/keyset"
)

type loadedKeySet struct {
	tree      *keyset.Tree
	separator string
}

func loadKeySet(cmd *cobra.Command, path string) (*loadedKeySet, error) {
	configPath, _ := cmd.Flags().GetString(flags.Config)
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)

	conf, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
	)
	if err != nil {
		return nil, err
	}

	doc, err := keyset.DecodeFile(path, conf.KeySet.MaxSize)
	if err != nil {
		return nil, err
	}

	tree, err := doc.Build(conf.KeySet.Separator)
	if err != nil {
		return nil, err
	}

	return &loadedKeySet{tree: tree, separator: doc.EffectiveSeparator(conf.KeySet.Separator)}, nil
}
