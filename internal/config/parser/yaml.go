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

package parser

import (
	"os"

	"github.com/drone/envsubst/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/dadrus/prefixtree/internal/errorsx"
	"github.com/dadrus/prefixtree/internal/x/errorchain"
	"github.com/dadrus/prefixtree/internal/x/stringx"
)

func koanfFromYaml(configFile string, substituteEnvVars bool) (*koanf.Koanf, error) {
	raw, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errorchain.NewWithMessagef(errorsx.ErrConfiguration,
			"failed to read yaml config from %s", configFile).CausedBy(err)
	}

	if substituteEnvVars {
		content, err := envsubst.EvalEnv(stringx.ToString(raw))
		if err != nil {
			return nil, errorchain.NewWithMessagef(errorsx.ErrConfiguration,
				"substitution of environment variables in %s failed", configFile).CausedBy(err)
		}

		raw = stringx.ToBytes(content)
	}

	parser := koanf.New(".")

	if err := parser.Load(rawbytes.Provider(raw), yaml.Parser()); err != nil {
		return nil, errorchain.NewWithMessagef(errorsx.ErrConfiguration,
			"failed to load yaml config from %s", configFile).CausedBy(err)
	}

	return parser, nil
}
