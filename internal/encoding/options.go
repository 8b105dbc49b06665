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
	"github.com/go-viper/mapstructure/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

type Validator interface {
	ValidateStruct(s any) error
}

type noopValidator struct{}

func (noopValidator) ValidateStruct(_ any) error { return nil }

type decoderOpts struct {
	validator         Validator
	tagName           string
	errorOnUnused     bool
	substituteEnvVars bool
	decodeHooks       []mapstructure.DecodeHookFunc
	schema            *jsonschema.Schema
}

type DecoderOption func(o *decoderOpts)

func WithValidator(validator Validator) DecoderOption {
	return func(o *decoderOpts) {
		if validator != nil {
			o.validator = validator
		}
	}
}

func WithTagName(name string) DecoderOption {
	return func(o *decoderOpts) {
		if len(name) != 0 {
			o.tagName = name
		}
	}
}

func WithErrorOnUnused(flag bool) DecoderOption {
	return func(o *decoderOpts) {
		o.errorOnUnused = flag
	}
}

func WithEnvVarsSubstitution(flag bool) DecoderOption {
	return func(o *decoderOpts) {
		o.substituteEnvVars = flag
	}
}

func WithDecodeHooks(hooks ...mapstructure.DecodeHookFunc) DecoderOption {
	return func(o *decoderOpts) {
		o.decodeHooks = append(o.decodeHooks, hooks...)
	}
}

// WithSchema enables validation of the raw document against the given JSON schema
// before it is decoded.
func WithSchema(schema *jsonschema.Schema) DecoderOption {
	return func(o *decoderOpts) {
		o.schema = schema
	}
}
