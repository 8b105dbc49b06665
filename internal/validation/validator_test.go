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

package validation

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noSpacesValidator struct{}

func (noSpacesValidator) Tag() string { return "nospaces" }

func (noSpacesValidator) Validate(fl validator.FieldLevel) bool {
	return !strings.Contains(fl.Field().String(), " ")
}

func (noSpacesValidator) MessageTemplate() string { return "{0} must not contain spaces" }

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	type testStruct struct {
		Name  string `koanf:"name"  validate:"required"`
		Count int    `json:"count"  validate:"gte=1"`
		Other string `validate:"omitempty,oneof=a b"`
	}

	for uc, tc := range map[string]struct {
		value  testStruct
		expErr string
	}{
		"valid":          {value: testStruct{Name: "foo", Count: 1}},
		"missing name":   {value: testStruct{Count: 1}, expErr: "'name' is a required field"},
		"count too low":  {value: testStruct{Name: "foo"}, expErr: "'count' must be 1 or greater"},
		"unknown option": {value: testStruct{Name: "foo", Count: 1, Other: "c"}, expErr: "'Other' must be one of [a b]"},
		"multiple errors": {
			value:  testStruct{},
			expErr: "'count' must be 1 or greater, 'name' is a required field",
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			err := ValidateStruct(tc.value)

			// THEN
			if len(tc.expErr) == 0 {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tc.expErr, err.Error())
		})
	}
}

func TestValidatorWithTagValidator(t *testing.T) {
	t.Parallel()

	// GIVEN
	type testStruct struct {
		Value string `koanf:"value" validate:"nospaces"`
	}

	v, err := NewValidator(WithTagValidator(noSpacesValidator{}))
	require.NoError(t, err)

	// WHEN
	okErr := v.ValidateStruct(testStruct{Value: "foo"})
	failErr := v.ValidateStruct(testStruct{Value: "foo bar"})

	// THEN
	require.NoError(t, okErr)
	require.Error(t, failErr)
	assert.Equal(t, "'value' must not contain spaces", failErr.Error())

	var verrs validator.ValidationErrors
	require.ErrorAs(t, failErr, &verrs)
}
