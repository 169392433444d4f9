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

func TestDecimal128StringRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []string{
		"0",
		"10",
		"-10",
		"1.5",
		"-1.5",
		"123456789012345678",
		"0.000001234",
		"NaN",
		"Infinity",
		"-Infinity",
	}

	for _, s := range cases {
		s := s
		t.Run(s, func(t *testing.T) {
			t.Parallel()

			d, err := ParseDecimal128(s)
			require.NoError(t, err)
			assert.Equal(t, s, d.String())
		})
	}
}

func TestDecimal128ScientificNotation(t *testing.T) {
	t.Parallel()

	d, err := ParseDecimal128("1.23E+10")
	require.NoError(t, err)
	assert.Equal(t, "1.23E+10", d.String())
}

func TestDecimal128EncodeDecode(t *testing.T) {
	t.Parallel()

	d, err := ParseDecimal128("42")
	require.NoError(t, err)

	buf := make([]byte, SizeDecimal128)
	EncodeDecimal128(buf, d)

	decoded, err := DecodeDecimal128(buf)
	require.NoError(t, err)
	assert.Equal(t, d, decoded)

	_, err = DecodeDecimal128(buf[:SizeDecimal128-1])
	require.ErrorIs(t, err, ErrDecodeShortInput)
}

func TestDecimal128ParseEmpty(t *testing.T) {
	t.Parallel()

	_, err := ParseDecimal128("")
	require.Error(t, err)

	var be *Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrInvalidArgument, be.Kind)
}

func TestDecimal128IsNaNIsInfinite(t *testing.T) {
	t.Parallel()

	nan, err := ParseDecimal128("NaN")
	require.NoError(t, err)
	assert.True(t, nan.IsNaN())
	assert.False(t, nan.IsInfinite())

	inf, err := ParseDecimal128("Infinity")
	require.NoError(t, err)
	assert.True(t, inf.IsInfinite())
	assert.False(t, inf.IsNaN())
}
