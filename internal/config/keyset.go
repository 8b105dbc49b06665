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

package config

import "github.com/inhies/go-bytesize"

type KeySetConfig struct {
	// Path of the key set document. Empty if not configured.
	Path string `koanf:"path"`
	// Separator used to split keys into key parts, unless the document sets its own.
	Separator string `koanf:"separator" validate:"required"`
	// Watch enables rebuilding the tree whenever the key set document changes.
	Watch bool `koanf:"watch"`
	// MaxSize limits the size of the key set document.
	MaxSize bytesize.ByteSize `koanf:"max_size"`
}
