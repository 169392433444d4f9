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
	"log/slog"
	"strconv"

	"github.com/ferrotype-io/bson/internal/lazyerrors"
	"github.com/ferrotype-io/bson/internal/must"
)

// RawArray is a BSON array in its binary wire encoding: a document whose
// keys are the decimal indexes "0", "1", ….
type RawArray []byte

// FindRawArray returns the first BSON array found at the start of b, with
// the same validation behavior as [FindRawDocument].
func FindRawArray(b []byte) RawArray {
	doc := FindRawDocument(b)
	if doc == nil {
		return nil
	}

	return RawArray(doc)
}

// LogValue implements [log/slog.LogValuer], rendering raw compactly without
// decoding it.
func (raw RawArray) LogValue() slog.Value {
	return slogValue(raw, 0)
}

// Decode decodes raw, which must hold exactly one BSON array with no
// trailing bytes. Nested documents and arrays are returned as
// RawDocument/RawArray subslices of raw, without copying.
func (raw RawArray) Decode() (*Array, error) {
	res, err := raw.decode(decodeShallow)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// DecodeDeep decodes raw, recursively decoding every nested document and array.
func (raw RawArray) DecodeDeep() (*Array, error) {
	res, err := raw.decode(decodeDeep)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// Validate checks that raw contains a single structurally valid BSON
// array, without allocating an *Array.
func (raw RawArray) Validate() error {
	_, err := raw.decode(decodeCheckOnly)
	if err != nil {
		return lazyerrors.Error(err)
	}

	return nil
}

// decode reuses RawDocument's field-walking logic (a BSON array is encoded
// identically to a document) and converts the resulting fields into a
// position-indexed Array, validating that keys are exactly "0", "1", ….
func (raw RawArray) decode(mode decodeMode) (*Array, error) {
	doc, err := RawDocument(raw).decode(mode)
	if err != nil {
		return nil, err
	}

	if mode == decodeCheckOnly {
		return nil, nil
	}

	a := MakeArray(doc.Len())

	for i, f := range doc.fields {
		if f.key != strconv.Itoa(i) {
			return nil, lazyerrors.Errorf("array index key %q at position %d: %w", f.key, i, ErrDecodeInvalidInput)
		}

		must.NoError(a.Append(f.value))
	}

	return a, nil
}
