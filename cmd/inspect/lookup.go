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
	"errors"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dadrus/prefixtree/cmd/flags"
	"github.com/dadrus/prefixtree/internal/keyset"
)

var errUnmatchedKeys = errors.New("not all keys matched")

type lookupResult struct {
	Key      string            `json:"key"`
	Value    string            `json:"value,omitempty"`
	Captures map[string]string `json:"captures,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// NewLookupCommand represents the "lookup" command.
func NewLookupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lookup [path to key set] [key]...",
		Short:   "Finds the most specific entry of a key set for each given key",
		Args:    cobra.MinimumNArgs(2), //nolint:mnd
		Example: "prefixtree lookup keyset.yaml /api/v1/users /api/42/users",
		Run: func(cmd *cobra.Command, args []string) {
			if err := lookupKeys(cmd, args); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}

	cmd.Flags().Bool(flags.JSONOutput, false, "Print one JSON object per key")

	return cmd
}

func lookupKeys(cmd *cobra.Command, args []string) error {
	ks, err := loadKeySet(cmd, args[0])
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool(flags.JSONOutput)
	unmatched := 0

	for _, key := range args[1:] {
		res := lookupResult{Key: key}

		if parts, err := keyset.SplitKey(key, ks.separator); err != nil {
			res.Error = err.Error()
		} else if entry, err := ks.tree.Find(parts); err != nil {
			res.Error = err.Error()
		} else {
			res.Value = entry.Value
			res.Captures = entry.Captures
		}

		if len(res.Error) != 0 {
			unmatched++
		}

		if err = printResult(cmd, res, asJSON); err != nil {
			return err
		}
	}

	if unmatched != 0 {
		return errUnmatchedKeys
	}

	return nil
}

func printResult(cmd *cobra.Command, res lookupResult, asJSON bool) error {
	if asJSON {
		raw, err := json.Marshal(res)
		if err != nil {
			return err
		}

		cmd.Println(string(raw))

		return nil
	}

	if len(res.Error) != 0 {
		cmd.Printf("%s\t%s\n", res.Key, res.Error)

		return nil
	}

	captures := make([]string, 0, len(res.Captures))
	for _, name := range slices.Sorted(maps.Keys(res.Captures)) {
		captures = append(captures, name+"="+res.Captures[name])
	}

	cmd.Printf("%s\t%s\t%s\n", res.Key, res.Value, strings.Join(captures, ","))

	return nil
}
