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
	"unicode/utf8"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/dadrus/prefixtree/cmd/flags"
	"github.com/dadrus/prefixtree/internal/errorsx"
	"github.com/dadrus/prefixtree/internal/keyset"
	"github.com/dadrus/prefixtree/internal/x/errorchain"
)

// NewDumpCommand represents the "dump" command.
func NewDumpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [path to key set]",
		Short: "Prints the entries of a key set in the order they are matched",
		Args:  cobra.ExactArgs(1),
		Example: "prefixtree dump keyset.yaml\n" +
			"prefixtree dump --filter '/api/**' keyset.yaml",
		Run: func(cmd *cobra.Command, args []string) {
			if err := dumpKeySet(cmd, args); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}

	cmd.Flags().String(flags.Filter, "",
		"Glob the patterns must match to be printed.\n"+
			"'*' does not cross the separator, '**' does.")

	return cmd
}

func dumpKeySet(cmd *cobra.Command, args []string) error {
	ks, err := loadKeySet(cmd, args[0])
	if err != nil {
		return err
	}

	filter, err := compileFilter(cmd, ks.separator)
	if err != nil {
		return err
	}

	ks.tree.Walk(func(path []keyset.KeyPart, node *keyset.Node) bool {
		value, ok := node.Value()
		if !ok {
			return true
		}

		pattern := keyset.FormatPattern(path, ks.separator)
		if filter == nil || filter.Match(pattern) {
			cmd.Printf("%s\t%s\n", pattern, value)
		}

		return true
	})

	return nil
}

func compileFilter(cmd *cobra.Command, separator string) (glob.Glob, error) {
	expression, _ := cmd.Flags().GetString(flags.Filter)
	if len(expression) == 0 {
		return nil, nil //nolint:nilnil
	}

	var separators []rune
	if utf8.RuneCountInString(separator) == 1 {
		separators = []rune(separator)
	}

	filter, err := glob.Compile(expression, separators...)
	if err != nil {
		return nil, errorchain.NewWithMessagef(errorsx.ErrArgument,
			"invalid filter %s", expression).CausedBy(err)
	}

	return filter, nil
}
