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

func TestWriterBasic(t *testing.T) {
	t.Parallel()

	w := NewWriter()
	require.NoError(t, w.AppendInt32("x", 7))
	require.NoError(t, w.AppendString("s", "hello"))

	doc, err := w.Finalize()
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "s"}, doc.Keys())

	v, _ := doc.Get("x")
	assert.Equal(t, int32(7), v)
}

func TestWriterNestedDocumentAndArray(t *testing.T) {
	t.Parallel()

	w := NewWriter()
	require.NoError(t, w.AppendDocument("nested", func(inner *Writer) error {
		return inner.AppendInt32("y", 1)
	}))
	require.NoError(t, w.AppendArray("arr", func(aw *ArrayWriter) error {
		if err := aw.AppendInt32(1); err != nil {
			return err
		}
		return aw.AppendString("hi")
	}))

	doc, err := w.Finalize()
	require.NoError(t, err)

	raw, err := doc.Encode()
	require.NoError(t, err)

	decoded, err := raw.DecodeDeep()
	require.NoError(t, err)

	nested, ok := decoded.Get("nested")
	require.True(t, ok)
	nestedDoc, ok := nested.(*Document)
	require.True(t, ok)
	y, _ := nestedDoc.Get("y")
	assert.Equal(t, int32(1), y)

	arr, ok := decoded.Get("arr")
	require.True(t, ok)
	arrVal, ok := arr.(*Array)
	require.True(t, ok)
	assert.Equal(t, 2, arrVal.Len())
}

func TestWriterTooLarge(t *testing.T) {
	t.Parallel()

	w := NewWriter()
	require.NoError(t, w.AppendInt32("x", 7))

	before := w.buf.Len()

	err := w.AppendString("s", string(make([]byte, MaxDocumentLen)))
	require.Error(t, err)

	var be *Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrTooLarge, be.Kind)

	assert.Equal(t, before, w.buf.Len(), "a failing Append must leave the writer unchanged")

	doc, err := w.Finalize()
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, doc.Keys())
}

func TestWriterTooLargeNestedDocument(t *testing.T) {
	t.Parallel()

	w := NewWriter()

	err := w.AppendDocument("nested", func(inner *Writer) error {
		return inner.AppendString("s", string(make([]byte, MaxDocumentLen)))
	})
	require.Error(t, err)

	var be *Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrTooLarge, be.Kind)
}
