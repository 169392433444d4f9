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

func TestObjectIDParseHexRoundTrip(t *testing.T) {
	t.Parallel()

	id := NewObjectID()

	parsed, err := ParseObjectID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
	assert.Equal(t, id.Hex(), parsed.Hex())
}

func TestObjectIDParseInvalid(t *testing.T) {
	t.Parallel()

	_, err := ParseObjectID("not-hex-and-wrong-len")
	require.Error(t, err)

	var be *Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrInvalidArgument, be.Kind)

	_, err = ParseObjectID("zzzzzzzzzzzzzzzzzzzzzzzz")
	require.Error(t, err)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrInvalidArgument, be.Kind)
}

func TestObjectIDUnique(t *testing.T) {
	t.Parallel()

	a := NewObjectID()
	b := NewObjectID()
	assert.NotEqual(t, a, b)
}

func TestObjectIDEncodeDecode(t *testing.T) {
	t.Parallel()

	id := NewObjectID()

	buf := make([]byte, SizeObjectID)
	EncodeObjectID(buf, id)

	decoded, err := DecodeObjectID(buf)
	require.NoError(t, err)
	assert.Equal(t, id, decoded)

	_, err = DecodeObjectID(buf[:SizeObjectID-1])
	require.ErrorIs(t, err, ErrDecodeShortInput)
}
