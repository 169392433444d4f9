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

func TestDBPointerEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	p := DBPointer{Ref: "coll", ID: NewObjectID()}

	buf := make([]byte, SizeDBPointer(p))
	EncodeDBPointer(buf, p)

	decoded, err := DecodeDBPointer(buf)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestCodeEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	c := Code("function() { return 1; }")

	buf := make([]byte, SizeCode(c))
	EncodeCode(buf, c)

	decoded, err := DecodeCode(buf)
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestSymbolEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	s := Symbol("legacy-symbol")

	buf := make([]byte, SizeSymbol(s))
	EncodeSymbol(buf, s)

	decoded, err := DecodeSymbol(buf)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
}

func TestCodeWithScopeEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	c := CodeWithScope{
		Code:  "function() { return x; }",
		Scope: NewDocument("x", int32(1)),
	}

	buf := make([]byte, SizeCodeWithScope(c))
	require.NoError(t, EncodeCodeWithScope(buf, c))

	decoded, err := DecodeCodeWithScope(buf)
	require.NoError(t, err)
	assert.Equal(t, c.Code, decoded.Code)

	v, ok := decoded.Scope.Get("x")
	require.True(t, ok)
	assert.Equal(t, int32(1), v)
}

func TestDecodeCodeWithScopeShortInput(t *testing.T) {
	t.Parallel()

	_, err := DecodeCodeWithScope([]byte{0x01})
	require.ErrorIs(t, err, ErrDecodeShortInput)
}
