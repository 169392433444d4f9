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

func TestRawDocumentShallowVsDeep(t *testing.T) {
	t.Parallel()

	inner := NewDocument("y", int32(1))
	d := NewDocument("x", inner)

	raw, err := d.Encode()
	require.NoError(t, err)

	shallow, err := raw.Decode()
	require.NoError(t, err)

	v, ok := shallow.Get("x")
	require.True(t, ok)
	_, isRaw := v.(RawDocument)
	assert.True(t, isRaw, "shallow decode must leave nested documents as RawDocument")

	deep, err := raw.DecodeDeep()
	require.NoError(t, err)

	v, ok = deep.Get("x")
	require.True(t, ok)
	_, isDoc := v.(*Document)
	assert.True(t, isDoc, "deep decode must recursively decode nested documents")
}

func TestRawDocumentValidateDoesNotAllocate(t *testing.T) {
	t.Parallel()

	d := NewDocument("a", int32(1))
	raw, err := d.Encode()
	require.NoError(t, err)

	assert.NoError(t, raw.Validate())
}

func TestRawDocumentMissingTerminator(t *testing.T) {
	t.Parallel()

	d := NewDocument("a", int32(1))
	raw, err := d.Encode()
	require.NoError(t, err)

	corrupt := append([]byte(nil), raw...)
	corrupt[len(corrupt)-1] = 0x01

	_, err = RawDocument(corrupt).Decode()
	require.ErrorIs(t, err, ErrMissingTerminator)
}

func TestRawDocumentLengthMismatch(t *testing.T) {
	t.Parallel()

	d := NewDocument("a", int32(1))
	raw, err := d.Encode()
	require.NoError(t, err)

	truncated := raw[:len(raw)-2]

	_, err = RawDocument(truncated).Decode()
	require.Error(t, err)
}

func TestFindRawDocument(t *testing.T) {
	t.Parallel()

	d := NewDocument("a", int32(1))
	raw, err := d.Encode()
	require.NoError(t, err)

	trailing := append(append([]byte(nil), raw...), 0xff, 0xff, 0xff)

	found := FindRawDocument(trailing)
	require.NotNil(t, found)
	assert.Equal(t, []byte(raw), []byte(found))

	assert.Nil(t, FindRawDocument([]byte{0x01, 0x02}))
}

// FuzzRawDocumentDecode checks the parser-fuzz-safety property: arbitrary
// bytes either decode to a valid Document or return a tagged error, never
// panic.
func FuzzRawDocumentDecode(f *testing.F) {
	d := NewDocument("a", int32(1), "s", "hello", "arr", NewArray(int32(1), int32(2)))
	raw, err := d.Encode()
	require.NoError(f, err)

	f.Add([]byte(raw))
	f.Add([]byte{})
	f.Add([]byte{0x05, 0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0x00})

	f.Fuzz(func(t *testing.T, b []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic on input %x: %v", b, r)
			}
		}()

		_, _ = RawDocument(b).Decode()
	})
}
