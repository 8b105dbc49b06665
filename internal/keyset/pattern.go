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

package keyset

import (
	"errors"
	"strings"

	"github.com/dadrus/prefixtree/internal/x/errorchain"
	"github.com/dadrus/prefixtree/prefixtree"
)

var ErrInvalidPattern = errors.New("invalid key pattern")

type KeyPart = prefixtree.KeyPart[string, string]

// ParsePattern splits pattern into key parts. A part starting with ':' is a wildcard
// weighted by (and capturing under) the rest of the part. A leading backslash escapes
// ':' and '\'. A leading separator is optional, and a pattern consisting of nothing but
// the separator, as well as the empty pattern, addresses the root.
func ParsePattern(pattern, separator string) ([]KeyPart, error) {
	elements, err := SplitKey(pattern, separator)
	if err != nil {
		return nil, err
	}

	parts := make([]KeyPart, len(elements))

	for idx, element := range elements {
		switch {
		case element[0] == ':':
			if len(element) == 1 {
				return nil, errorchain.NewWithMessagef(ErrInvalidPattern,
					"wildcard without name at position %d in %s", idx, pattern)
			}

			parts[idx] = prefixtree.Wildcard[string](element[1:])
		case element[0] == '\\' && len(element) > 1 && (element[1] == ':' || element[1] == '\\'):
			parts[idx] = prefixtree.Exact[string, string](element[1:])
		default:
			parts[idx] = prefixtree.Exact[string, string](element)
		}
	}

	return parts, nil
}

// SplitKey splits a concrete key into its elements using the same rules as
// ParsePattern, but without any interpretation of the elements.
func SplitKey(key, separator string) ([]string, error) {
	if len(separator) == 0 {
		return nil, errorchain.NewWithMessage(ErrInvalidPattern, "empty separator")
	}

	trimmed := strings.TrimPrefix(key, separator)
	if len(trimmed) == 0 {
		return []string{}, nil
	}

	elements := strings.Split(trimmed, separator)
	for idx, element := range elements {
		if len(element) == 0 {
			return nil, errorchain.NewWithMessagef(ErrInvalidPattern,
				"empty key part at position %d in %s", idx, key)
		}
	}

	return elements, nil
}

// FormatPattern is the inverse of ParsePattern.
func FormatPattern(parts []KeyPart, separator string) string {
	var sb strings.Builder

	for _, part := range parts {
		sb.WriteString(separator)

		if weight, ok := part.Weight(); ok {
			sb.WriteByte(':')
			sb.WriteString(weight)

			continue
		}

		value, _ := part.Value()
		if len(value) != 0 && (value[0] == ':' || value[0] == '\\') {
			sb.WriteByte('\\')
		}

		sb.WriteString(value)
	}

	if sb.Len() == 0 {
		return separator
	}

	return sb.String()
}
