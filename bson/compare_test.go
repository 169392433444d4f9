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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareCrossTypeOrder(t *testing.T) {
	t.Parallel()

	ordered := []any{
		MinKey{},
		int32(1),
		"a string",
		NewDocument("a", int32(1)),
		NewArray(int32(1)),
		Binary{Subtype: BinaryGeneric, B: []byte{1}},
		ObjectID{1},
		false,
		time.Unix(0, 0).UTC(),
		Timestamp{Seconds: 1},
		Regex{Pattern: "a"},
		MaxKey{},
	}

	for i := 0; i < len(ordered); i++ {
		for j := 0; j < len(ordered); j++ {
			got := Compare(ordered[i], ordered[j])
			switch {
			case i < j:
				assert.Negative(t, got, "index %d should sort before %d", i, j)
			case i > j:
				assert.Positive(t, got, "index %d should sort after %d", i, j)
			default:
				assert.Zero(t, got)
			}
		}
	}
}

func TestCompareNumericCrossType(t *testing.T) {
	t.Parallel()

	assert.Zero(t, Compare(int32(5), int64(5)))
	assert.Zero(t, Compare(int32(5), float64(5)))
	assert.Negative(t, Compare(int32(4), int64(5)))
	assert.Positive(t, Compare(float64(5.5), int32(5)))
}

func TestCompareDecimal128CrossType(t *testing.T) {
	t.Parallel()

	d, err := ParseDecimal128("10")
	require.NoError(t, err)

	assert.Zero(t, Compare(d, int32(10)))
	assert.Zero(t, Compare(d, float64(10)))
	assert.Negative(t, Compare(d, int32(11)))
}

func TestDocumentEqualUsesCompare(t *testing.T) {
	t.Parallel()

	a := NewDocument("x", int32(1))
	b := NewDocument("x", int64(1))

	assert.True(t, a.Equal(b), "numeric cross-type equality must hold under Equal")
}
