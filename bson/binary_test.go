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

func TestNewBinaryUUIDLengthGuard(t *testing.T) {
	t.Parallel()

	_, err := NewBinary(BinaryUUID, make([]byte, 15))
	require.Error(t, err)

	var be *Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrInvalidArgument, be.Kind)

	bin, err := NewBinary(BinaryUUID, make([]byte, 16))
	require.NoError(t, err)
	assert.Equal(t, BinaryUUID, bin.Subtype)
	assert.Len(t, bin.B, 16)
}

func TestNewBinaryReservedSubtypeRejected(t *testing.T) {
	t.Parallel()

	_, err := NewBinary(BinarySubtype(0x10), []byte{1, 2, 3})
	require.Error(t, err)

	var be *Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrInvalidArgument, be.Kind)
}

func TestBinaryEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	bin, err := NewBinary(BinaryGeneric, []byte("payload"))
	require.NoError(t, err)

	buf := make([]byte, SizeBinary(bin))
	EncodeBinary(buf, bin)

	decoded, err := DecodeBinary(buf)
	require.NoError(t, err)
	assert.Equal(t, bin, decoded)
}

func TestDecodeBinaryUUIDLengthGuard(t *testing.T) {
	t.Parallel()

	bin := Binary{Subtype: BinaryUUID, B: make([]byte, 15)}

	buf := make([]byte, 4+1+len(bin.B))
	buf[4] = byte(bin.Subtype)

	_, err := DecodeBinary(buf)
	require.Error(t, err)

	var be *Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrDataCorrupted, be.Kind)
}

func TestDecodeBinaryShortInput(t *testing.T) {
	t.Parallel()

	_, err := DecodeBinary([]byte{0x01, 0x00})
	require.ErrorIs(t, err, ErrDecodeShortInput)
}
