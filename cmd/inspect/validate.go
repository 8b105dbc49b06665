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
	"os"

	"github.com/spf13/cobra"
)

// NewValidateCommand represents the "validate" command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "validate [path to key set]",
		Short:   "Validates a key set document and builds the tree from it",
		Args:    cobra.ExactArgs(1),
		Example: "prefixtree validate -c config.yaml keyset.yaml",
		Run: func(cmd *cobra.Command, args []string) {
			if err := validateKeySet(cmd, args); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}
}

func validateKeySet(cmd *cobra.Command, args []string) error {
	ks, err := loadKeySet(cmd, args[0])
	if err != nil {
		return err
	}

	cmd.Printf("Key set is valid: %d values, %d nodes, max wildcard depth %d\n",
		ks.tree.Len(), ks.tree.NodeCount(), ks.tree.MaxWildcardDepth())

	return nil
}
