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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/dadrus/prefixtree/cmd/flags"
	"github.com/dadrus/prefixtree/internal/registry"
)

func TestCreateApp(t *testing.T) {
	t.Parallel()

	testDir := t.TempDir()
	keySetFile := filepath.Join(testDir, "keyset.yaml")
	configFile := filepath.Join(testDir, "config.yaml")

	require.NoError(t, os.WriteFile(keySetFile, []byte(`
version: "1"
entries:
  - key: /api/:id
    value: api
`), 0o600))

	require.NoError(t, os.WriteFile(configFile, []byte(`
metrics:
  enabled: false
keyset:
  watch: false
`), 0o600))

	for uc, tc := range map[string]struct {
		args   []string
		flags  []string
		assert func(t *testing.T, err error, reg *registry.Registry)
	}{
		"no key set": {
			flags: []string{"--" + flags.Config, configFile},
			assert: func(t *testing.T, err error, _ *registry.Registry) {
				t.Helper()

				require.ErrorContains(t, err, registry.ErrNoKeySet.Error())
			},
		},
		"missing config file": {
			args:  []string{keySetFile},
			flags: []string{"--" + flags.Config, filepath.Join(testDir, "missing.yaml")},
			assert: func(t *testing.T, err error, _ *registry.Registry) {
				t.Helper()

				require.ErrorContains(t, err, "not accessible")
			},
		},
		"key set given as argument": {
			args:  []string{keySetFile},
			flags: []string{"--" + flags.Config, configFile},
			assert: func(t *testing.T, err error, reg *registry.Registry) {
				t.Helper()

				require.NoError(t, err)

				entry, err := reg.Lookup("/api/42")
				require.NoError(t, err)
				assert.Equal(t, "api", entry.Value)
				assert.Equal(t, map[string]string{"id": "42"}, entry.Captures)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			cmd := NewWatchCommand()
			flags.RegisterGlobalFlags(cmd)
			require.NoError(t, cmd.ParseFlags(tc.flags))

			var reg *registry.Registry

			// WHEN
			app, err := createApp(cmd, tc.args, fx.NopLogger, fx.Populate(&reg))
			if err == nil {
				require.NoError(t, app.Start(context.Background()))
				t.Cleanup(func() { _ = app.Stop(context.Background()) })
			}

			// THEN
			tc.assert(t, err, reg)
		})
	}
}
