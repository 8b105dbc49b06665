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
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/prefixtree/internal/errorsx"
)

type testNestedConfig struct {
	SomeString string `koanf:"some_string"`
	SomeInt    int    `koanf:"someint"`
	SomeBool   bool   `koanf:"somebool"`
}

type testConfig struct {
	SomeString string           `koanf:"some_string"`
	SomeInt    int              `koanf:"someint"`
	SomeBool   bool             `koanf:"some_bool"`
	Timeout    time.Duration    `koanf:"timeout"`
	Nested     testNestedConfig `koanf:"nested"`
}

func writeFile(t *testing.T, content string) string {
	t.Helper()

	fileName := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0o600))

	return fileName
}

func TestConfigLoaderLoad(t *testing.T) {
	// GIVEN
	config := testConfig{
		SomeString: "default value",
		SomeInt:    666,
		Timeout:    time.Second,
		Nested:     testNestedConfig{SomeInt: 1},
	}

	fileName := writeFile(t, `
some_string: "overridden by yaml file"
someint: 10
timeout: 5s
nested:
  some_string: ${CONFIGLOADERTEST_SUBST}
`)

	t.Setenv("CONFIGLOADERTEST_SUBST", "substituted")
	t.Setenv("CONFIGLOADERTEST_SOME__BOOL", "true")
	t.Setenv("CONFIGLOADERTEST_SOMEINT", "42")
	t.Setenv("CONFIGLOADERTEST_NESTED_SOMEBOOL", "true")

	// WHEN
	err := New(
		WithConfigFile(fileName),
		WithEnvPrefix("CONFIGLOADERTEST_"),
		WithEnvVarsSubstitution(true),
	).Load(&config)

	// THEN
	require.NoError(t, err)

	assert.Equal(t, "overridden by yaml file", config.SomeString) // yaml override
	assert.Equal(t, 42, config.SomeInt)                           // env override
	assert.True(t, config.SomeBool)                               // set by env
	assert.Equal(t, 5*time.Second, config.Timeout)                // yaml override with decode hook
	assert.Equal(t, "substituted", config.Nested.SomeString)      // env substitution
	assert.Equal(t, 1, config.Nested.SomeInt)                     // default
	assert.True(t, config.Nested.SomeBool)                        // set by env
}

func TestConfigLoaderLoadWithoutConfigFile(t *testing.T) {
	t.Parallel()

	// GIVEN
	config := testConfig{SomeString: "default value"}

	// WHEN
	err := New().Load(&config)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "default value", config.SomeString)
}

func TestConfigLoaderLoadFails(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		opts   func(t *testing.T) []Option
		config any
		assert func(t *testing.T, err error)
	}{
		"not existing config file": {
			opts: func(t *testing.T) []Option {
				t.Helper()

				return []Option{WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))}
			},
			config: &testConfig{},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, errorsx.ErrConfiguration)
				require.ErrorContains(t, err, "not accessible")
			},
		},
		"invalid yaml": {
			opts: func(t *testing.T) []Option {
				t.Helper()

				return []Option{WithConfigFile(writeFile(t, "foo: [bar"))}
			},
			config: &testConfig{},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, errorsx.ErrConfiguration)
				require.ErrorContains(t, err, "failed to load yaml")
			},
		},
		"validator rejects config file": {
			opts: func(t *testing.T) []Option {
				t.Helper()

				return []Option{
					WithConfigFile(writeFile(t, "foo: bar")),
					WithConfigValidator(func(_ string) error { return errorsx.ErrArgument }),
				}
			},
			config: &testConfig{},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, errorsx.ErrArgument)
			},
		},
		"struct without lowercase koanf tags": {
			opts: func(t *testing.T) []Option {
				t.Helper()

				return nil
			},
			config: &struct {
				Foo string `koanf:"Foo"`
			}{},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, errorsx.ErrConfiguration)
				require.ErrorContains(t, err, "lowercase")
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			err := New(tc.opts(t)...).Load(tc.config)

			// THEN
			tc.assert(t, err)
		})
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	// GIVEN
	dest := map[string]any{"a": 1, "b": map[string]any{"c": 2, "d": 3}}
	src := map[string]any{"b": map[string]any{"c": 4}, "e": 5}

	// WHEN
	res := merge(dest, src)

	// THEN
	assert.Equal(t, map[string]any{"a": 1, "b": map[string]any{"c": 4, "d": 3}, "e": 5}, res)
	assert.Equal(t, "foo", merge(map[string]any{}, "foo"))
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "log.level", normalizeKey("PT_", "PT_LOG_LEVEL"))
	assert.Equal(t, "key_set.path", normalizeKey("PT_", "PT_KEY__SET_PATH"))
}
