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
)

func TestDocumentInsertionOrder(t *testing.T) {
	t.Parallel()

	d := MakeDocument(0)
	require.NoError(t, d.Add("c", int32(3)))
	require.NoError(t, d.Add("a", int32(1)))
	require.NoError(t, d.Add("b", int32(2)))

	assert.Equal(t, []string{"c", "a", "b"}, d.Keys())

	require.NoError(t, d.Set("a", int32(10)))
	assert.Equal(t, []string{"c", "a", "b"}, d.Keys(), "replacement must not move the key")

	v, ok := d.Get("a")
	require.True(t, ok)
	assert.Equal(t, int32(10), v)
}

func TestDocumentDuplicateKeyRejected(t *testing.T) {
	t.Parallel()

	d := MakeDocument(0)
	require.NoError(t, d.Add("x", int32(1)))

	err := d.Add("x", int32(2))
	require.Error(t, err)

	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, ErrInvalidArgument, be.Kind)
}

func TestDocumentGetOptional(t *testing.T) {
	t.Parallel()

	d := NewDocument("a", int32(1))

	v, err := d.GetOptional("a")
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)

	_, err = d.GetOptional("missing")
	require.Error(t, err)

	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, ErrKeyNotFound, be.Kind)
}

func TestDocumentRemove(t *testing.T) {
	t.Parallel()

	d := NewDocument("a", int32(1), "b", int32(2), "c", int32(3))
	d.Remove("b")

	assert.Equal(t, []string{"a", "c"}, d.Keys())
	assert.False(t, d.Has("b"))

	d.Remove("does-not-exist") // no-op, must not panic
	assert.Equal(t, 2, d.Len())
}

func TestDocumentCommand(t *testing.T) {
	t.Parallel()

	d := NewDocument("ping", int32(1))
	assert.Equal(t, "ping", d.Command())

	assert.Panics(t, func() {
		MakeDocument(0).Command()
	})
}

func TestDocumentCommandName(t *testing.T) {
	t.Parallel()

	d := NewDocument("ping", int32(1))

	name, ok := d.CommandName()
	assert.True(t, ok)
	assert.Equal(t, "ping", name)

	name, ok = MakeDocument(0).CommandName()
	assert.False(t, ok)
	assert.Equal(t, "", name)
}

func TestDocumentCloneIsShallow(t *testing.T) {
	t.Parallel()

	inner := NewArray(int32(1))
	d := NewDocument("a", inner)

	clone := d.Clone()
	require.NoError(t, clone.Add("b", int32(2)))

	assert.False(t, d.Has("b"), "adding to the clone must not affect the original")
	assert.Equal(t, []string{"a"}, d.Keys())

	innerClone, ok := clone.Get("a")
	require.True(t, ok)

	require.NoError(t, innerClone.(*Array).Append(int32(99)))
	assert.Equal(t, 2, inner.Len(), "Clone shares composite values with the original")
}

func TestDocumentByteRoundTrip(t *testing.T) {
	t.Parallel()

	d := NewDocument(
		"a", int32(1),
		"b", "two",
		"c", NewArray(int32(1), "hi"),
	)

	raw, err := d.Encode()
	require.NoError(t, err)

	decoded, err := raw.DecodeDeep()
	require.NoError(t, err)

	assert.True(t, d.Equal(decoded))
}

func TestDocumentEmptyBytes(t *testing.T) {
	t.Parallel()

	raw, err := MakeDocument(0).Encode()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05, 0x00, 0x00, 0x00, 0x00}, []byte(raw))
}

func TestDocumentSingleInt32Bytes(t *testing.T) {
	t.Parallel()

	d := NewDocument("x", int32(7))

	raw, err := d.Encode()
	require.NoError(t, err)

	expected := []byte{0x0c, 0x00, 0x00, 0x00, 0x10, 'x', 0x00, 0x07, 0x00, 0x00, 0x00, 0x00}
	assert.Equal(t, expected, []byte(raw))
}

func TestDocumentTooLarge(t *testing.T) {
	t.Parallel()

	big := make([]byte, MaxDocumentLen)
	d := NewDocument("s", string(big))

	_, err := d.Encode()
	require.Error(t, err)

	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, ErrTooLarge, be.Kind)
}

func TestDocumentDeepCopyIndependence(t *testing.T) {
	t.Parallel()

	inner := NewArray(int32(1))
	d := NewDocument("a", inner)

	clone := d.DeepCopy()

	innerClone, ok := clone.Get("a")
	require.True(t, ok)

	require.NoError(t, innerClone.(*Array).Append(int32(2)))
	assert.Equal(t, 1, inner.Len(), "mutating the clone must not affect the original")
}
