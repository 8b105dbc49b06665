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

package encoding

import (
	"bytes"
	"errors"
	"io"

	"github.com/drone/envsubst/v2"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/maps"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/prefixtree/internal/errorsx"
	"github.com/dadrus/prefixtree/internal/x/errorchain"
	"github.com/dadrus/prefixtree/internal/x/stringx"
)

// Decoder decodes yaml or json documents into structs using mapstructure and validates
// the result.
type Decoder struct {
	decoderOpts
}

func NewDecoder(opts ...DecoderOption) *Decoder {
	decoder := &Decoder{
		decoderOpts: decoderOpts{
			validator: noopValidator{},
			tagName:   "json",
		},
	}

	for _, opt := range opts {
		opt(&decoder.decoderOpts)
	}

	return decoder
}

func (d *Decoder) Decode(out any, reader io.Reader) error {
	var rawConfig map[string]any

	if d.substituteEnvVars {
		raw, err := io.ReadAll(reader)
		if err != nil {
			return errorchain.NewWithMessage(errorsx.ErrInternal,
				"reading object failed").CausedBy(err)
		}

		content, err := envsubst.EvalEnv(stringx.ToString(raw))
		if err != nil {
			return errorchain.NewWithMessage(errorsx.ErrConfiguration,
				"substitution of environment variables failed").CausedBy(err)
		}

		reader = bytes.NewReader(stringx.ToBytes(content))
	}

	// json is a subset of yaml, so a yaml decoder serves both
	if err := yaml.NewDecoder(reader).Decode(&rawConfig); err != nil {
		if errors.Is(err, io.EOF) {
			return errorchain.NewWithMessage(errorsx.ErrConfiguration, "empty document")
		}

		return errorchain.NewWithMessage(errorsx.ErrConfiguration,
			"parsing of object failed").CausedBy(err)
	}

	return d.DecodeMap(out, rawConfig)
}

func (d *Decoder) DecodeMap(out any, in map[string]any) error {
	if d.schema != nil {
		maps.IntfaceKeysToStrings(in)

		if err := d.schema.Validate(in); err != nil {
			return errorchain.NewWithMessage(errorsx.ErrConfiguration,
				"schema validation failed").CausedBy(err)
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: d.errorOnUnused,
		TagName:     d.tagName,
		DecodeHook:  mapstructure.ComposeDecodeHookFunc(d.decodeHooks...),
	})
	if err != nil {
		return errorchain.NewWithMessage(errorsx.ErrInternal,
			"failed creating object decoder").CausedBy(err)
	}

	if err = dec.Decode(in); err != nil {
		return errorchain.NewWithMessage(errorsx.ErrConfiguration,
			"decoding of object failed").CausedBy(err)
	}

	if err = d.validator.ValidateStruct(out); err != nil {
		return errorchain.NewWithMessage(errorsx.ErrConfiguration,
			"object validation failed").CausedBy(err)
	}

	return nil
}
