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
	_ "embed"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/inhies/go-bytesize"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/dadrus/prefixtree/internal/encoding"
	"github.com/dadrus/prefixtree/internal/errorsx"
	"github.com/dadrus/prefixtree/internal/validation"
	"github.com/dadrus/prefixtree/internal/x"
	"github.com/dadrus/prefixtree/internal/x/errorchain"
	"github.com/dadrus/prefixtree/prefixtree"
)

//go:embed keyset.schema.json
var schemaDocument string

// nolint: gochecknoglobals
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaDocument))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource("keyset.schema.json", doc); err != nil {
		return nil, err
	}

	return compiler.Compile("keyset.schema.json")
})

// Tree is the finished tree built from a key set.
type Tree = prefixtree.Map[string, string, string]

// Node is a node of a Tree.
type Node = prefixtree.Node[string, string, string]

type Document struct {
	Version   string  `json:"version"   validate:"required"`
	Separator string  `json:"separator"`
	Entries   []Entry `json:"entries"   validate:"dive"`
}

type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value" validate:"required"`
}

// Decode reads a yaml or json key set document. Environment variables referenced in
// the document are substituted.
func Decode(reader io.Reader) (*Document, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, errorchain.NewWithMessage(errorsx.ErrInternal,
			"failed to compile key set schema").CausedBy(err)
	}

	var doc Document

	if err = encoding.NewDecoder(
		encoding.WithSchema(schema),
		encoding.WithValidator(validation.DefaultValidator),
		encoding.WithEnvVarsSubstitution(true),
		encoding.WithErrorOnUnused(true),
	).Decode(&doc, reader); err != nil {
		return nil, err
	}

	return &doc, nil
}

// DecodeFile decodes the key set document stored at path. Documents larger than
// maxSize bytes are rejected. A maxSize of 0 disables the check.
func DecodeFile(path string, maxSize bytesize.ByteSize) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errorchain.NewWithMessagef(errorsx.ErrArgument,
			"failed to open key set %s", path).CausedBy(err)
	}

	defer file.Close()

	if maxSize != 0 {
		info, err := file.Stat()
		if err != nil {
			return nil, errorchain.NewWithMessagef(errorsx.ErrArgument,
				"failed to stat key set %s", path).CausedBy(err)
		}

		if bytesize.ByteSize(info.Size()) > maxSize { //nolint:gosec
			return nil, errorchain.NewWithMessagef(errorsx.ErrArgument,
				"key set %s exceeds the maximum size of %s", path, maxSize)
		}
	}

	return Decode(file)
}

// EffectiveSeparator returns the separator set in the document, or defaultSeparator if
// the document does not define one.
func (d *Document) EffectiveSeparator(defaultSeparator string) string {
	return x.IfThenElse(len(d.Separator) != 0, d.Separator, defaultSeparator)
}

// Build parses all entries and builds the tree. Entries with equal keys overwrite
// earlier ones.
func (d *Document) Build(defaultSeparator string) (*Tree, error) {
	separator := d.EffectiveSeparator(defaultSeparator)
	builder := prefixtree.NewBuilder[string, string, string]()

	for idx, entry := range d.Entries {
		key, err := ParsePattern(entry.Key, separator)
		if err != nil {
			return nil, errorchain.NewWithMessagef(errorsx.ErrConfiguration,
				"entry %d of the key set is invalid", idx).CausedBy(err)
		}

		builder.Insert(key, entry.Value)
	}

	return builder.Build(), nil
}
