// Copyright 2021 FerretDB Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegexCanonicalizesOptions(t *testing.T) {
	t.Parallel()

	r, err := NewRegex("^abc$", "mi")
	require.NoError(t, err)
	assert.Equal(t, "im", r.Options)
}

func TestNewRegexRejectsInvalidOption(t *testing.T) {
	t.Parallel()

	_, err := NewRegex("^abc$", "z")
	require.Error(t, err)

	var be *Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrInvalidArgument, be.Kind)
}

func TestRegexEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	r, err := NewRegex("^abc$", "mi")
	require.NoError(t, err)

	buf := make([]byte, SizeRegex(r))
	EncodeRegex(buf, r)

	decoded, err := DecodeRegex(buf)
	require.NoError(t, err)
	assert.Equal(t, r, decoded)
}

func TestDecodeRegexRejectsUnsortedOptions(t *testing.T) {
	t.Parallel()

	r := Regex{Pattern: "^abc$", Options: "mi"}

	buf := make([]byte, SizeRegex(r))
	EncodeRegex(buf, r)

	_, err := DecodeRegex(buf)
	require.ErrorIs(t, err, ErrNotSorted)
}
