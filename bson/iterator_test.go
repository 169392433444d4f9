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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrotype-io/bson/internal/iterator"
)

func TestDocumentIteratorOrder(t *testing.T) {
	t.Parallel()

	d := NewDocument("a", int32(1), "b", int32(2), "c", int32(3))

	it := d.Iterator()

	var keys []string

	for {
		k, _, err := it.Next()
		if errors.Is(err, iterator.ErrIteratorDone) {
			break
		}

		require.NoError(t, err)
		keys = append(keys, k)
	}

	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestDocumentIteratorConcurrentModification(t *testing.T) {
	t.Parallel()

	d := NewDocument("a", int32(1))

	it := d.Iterator()
	require.NoError(t, d.Set("b", int32(2)))

	_, _, err := it.Next()
	require.ErrorIs(t, err, ErrConcurrentModification)
}

func TestArrayIteratorOrderAndConcurrentModification(t *testing.T) {
	t.Parallel()

	a := NewArray(int32(1), int32(2))

	it := a.Iterator()

	idx, v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, int32(1), v)

	require.NoError(t, a.Append(int32(3)))

	_, _, err = it.Next()
	require.ErrorIs(t, err, ErrConcurrentModification)
}

func TestRawDocumentIteratorDecodesLazily(t *testing.T) {
	t.Parallel()

	d := NewDocument("a", int32(1), "s", "hello")
	raw, err := d.Encode()
	require.NoError(t, err)

	it := raw.Iterator()

	k, v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", k)
	assert.Equal(t, int32(1), v)

	k, v, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, "s", k)
	assert.Equal(t, "hello", v)

	_, _, err = it.Next()
	require.ErrorIs(t, err, iterator.ErrIteratorDone)
}
