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
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt32Exactness(t *testing.T) {
	t.Parallel()

	n, err := ToInt32(int64(1 << 20))
	require.NoError(t, err)
	assert.Equal(t, int32(1<<20), n)

	_, err = ToInt32(int64(1) << 40)
	require.Error(t, err)

	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, ErrNumberOutOfRange, be.Kind)
}

func TestToInt64FromFloat(t *testing.T) {
	t.Parallel()

	n, err := ToInt64(float64(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	_, err = ToInt64(float64(1.5))
	require.Error(t, err)

	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, ErrNumberOutOfRange, be.Kind)
}

func TestToFloat64FromLargeInt64(t *testing.T) {
	t.Parallel()

	_, err := ToFloat64(int64(1) << 60)
	require.Error(t, err)

	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, ErrNumberOutOfRange, be.Kind)
}

func TestToInt64TypeMismatch(t *testing.T) {
	t.Parallel()

	_, err := ToInt64("not a number")
	require.Error(t, err)

	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, ErrTypeMismatch, be.Kind)
}

func TestToIntMatchesPlatformWidth(t *testing.T) {
	t.Parallel()

	n, err := ToInt(int32(42))
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = ToInt(float64(7))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	if strconv.IntSize == 64 {
		n, err = ToInt(int64(1) << 40)
		require.NoError(t, err)
		assert.Equal(t, int(int64(1)<<40), n)
	}

	_, err = ToInt("nope")
	require.Error(t, err)

	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, ErrTypeMismatch, be.Kind)
}

func TestToDecimal128TiedValuesProduceSameEncoding(t *testing.T) {
	t.Parallel()

	fromInt64, err := ToDecimal128(int64(10))
	require.NoError(t, err)

	fromFloat64, err := ToDecimal128(float64(10))
	require.NoError(t, err)

	fromInt32, err := ToDecimal128(int32(10))
	require.NoError(t, err)

	assert.Equal(t, fromInt64, fromFloat64)
	assert.Equal(t, fromInt64, fromInt32)
	assert.Equal(t, "10", fromInt64.String())
}

func TestToDecimal128PassesThroughExisting(t *testing.T) {
	t.Parallel()

	want, err := ParseDecimal128("1.5")
	require.NoError(t, err)

	got, err := ToDecimal128(want)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestToDecimal128TypeMismatch(t *testing.T) {
	t.Parallel()

	_, err := ToDecimal128("not a number")
	require.Error(t, err)

	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, ErrTypeMismatch, be.Kind)
}
