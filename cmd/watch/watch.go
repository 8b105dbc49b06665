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
	"github.com/spf13/cobra"
)

// NewWatchCommand represents the "watch" command.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [path to key set]",
		Short: "Keeps the tree built from a key set up to date and exposes its metrics",
		Long: "Builds the tree from the key set document and rebuilds it whenever the\n" +
			"document changes. The path argument overrides the keyset.path setting.",
		Args:    cobra.MaximumNArgs(1),
		Example: "prefixtree watch -c config.yaml keyset.yaml",
		Run: func(cmd *cobra.Command, args []string) {
			app, err := createApp(cmd, args)
			if err != nil {
				panic(err)
			}

			app.Run()
		},
	}
}
