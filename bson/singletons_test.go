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

func TestSingletonRoundTripThroughDocument(t *testing.T) {
	t.Parallel()

	d := NewDocument("n", Null{}, "mn", MinKey{}, "mx", MaxKey{})

	raw, err := d.Encode()
	require.NoError(t, err)

	decoded, err := raw.Decode()
	require.NoError(t, err)

	n, ok := decoded.Get("n")
	require.True(t, ok)
	assert.Equal(t, Null{}, n)

	mn, ok := decoded.Get("mn")
	require.True(t, ok)
	assert.Equal(t, MinKey{}, mn)

	mx, ok := decoded.Get("mx")
	require.True(t, ok)
	assert.Equal(t, MaxKey{}, mx)
}

func TestSingletonSizesAreZero(t *testing.T) {
	t.Parallel()

	assert.Zero(t, SizeNull)
	assert.Zero(t, SizeUndefined)
	assert.Zero(t, SizeMinKey)
	assert.Zero(t, SizeMaxKey)
}
