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

// merge merges src into dest. Maps are merged recursively, everything else is
// overridden by src.
func merge(dest, src any) any {
	destMap, destIsMap := dest.(map[string]any)
	srcMap, srcIsMap := src.(map[string]any)

	if !destIsMap || !srcIsMap {
		return src
	}

	for key, val := range srcMap {
		if old, present := destMap[key]; present {
			destMap[key] = merge(old, val)
		} else {
			destMap[key] = val
		}
	}

	return destMap
}
