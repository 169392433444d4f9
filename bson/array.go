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
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ferrotype-io/bson/internal/must"
)

// Array represents a BSON array: an ordered list of values, encoded on the
// wire as a Document whose keys are the decimal string indexes "0", "1", ….
//
// The zero value is not valid; use [NewArray] or [MakeArray].
type Array struct {
	values     []any
	generation uint64
}

// MakeArray creates an empty Array with capacity for n elements preallocated.
func MakeArray(n int) *Array {
	return &Array{values: make([]any, 0, n)}
}

// NewArray creates an Array from the given values. It panics if any value
// is not a valid [Type].
func NewArray(values ...any) *Array {
	a := MakeArray(len(values))

	for _, v := range values {
		if err := a.Append(v); err != nil {
			panic(fmt.Sprintf("bson.NewArray: %s", err))
		}
	}

	return a
}

// Append adds value to the end of a. It returns an error if value is not a
// valid [Type].
func (a *Array) Append(value any) error {
	if !validBSONType(value) {
		return newError(ErrInvalidArgument, "invalid BSON type %T", value)
	}

	a.values = append(a.values, value)
	a.generation++

	return nil
}

// Get returns the value at index i and true, or nil and false if i is out
// of range.
func (a *Array) Get(i int) (any, bool) {
	if i < 0 || i >= len(a.values) {
		return nil, false
	}

	return a.values[i], true
}

// Set replaces the value at index i. It returns an error if i is out of
// range or value is not a valid [Type].
func (a *Array) Set(i int, value any) error {
	if i < 0 || i >= len(a.values) {
		return newError(ErrValueNotFound, "index %d out of range", i)
	}

	if !validBSONType(value) {
		return newError(ErrInvalidArgument, "invalid BSON type %T", value)
	}

	a.values[i] = value
	a.generation++

	return nil
}

// Remove deletes the element at index i, shifting later elements down. It
// returns an error if i is out of range.
func (a *Array) Remove(i int) error {
	if i < 0 || i >= len(a.values) {
		return newError(ErrValueNotFound, "index %d out of range", i)
	}

	a.values = append(a.values[:i], a.values[i+1:]...)
	a.generation++

	return nil
}

// Len returns the number of elements in a.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}

	return len(a.values)
}

// Values returns the array's elements. The returned slice is a copy and
// safe to mutate.
func (a *Array) Values() []any {
	values := make([]any, len(a.values))
	copy(values, a.values)

	return values
}

// DeepCopy returns a copy of a whose composite-typed elements are
// themselves deep-copied.
func (a *Array) DeepCopy() *Array {
	if a == nil {
		return nil
	}

	clone := MakeArray(len(a.values))

	for _, v := range a.values {
		must.NoError(clone.Append(deepCopyValue(v)))
	}

	return clone
}

// Equal reports whether a and other have the same length and equal
// elements in the same order, using [Compare] for element comparison.
func (a *Array) Equal(other *Array) bool {
	if a.Len() != other.Len() {
		return false
	}

	for i, v := range a.values {
		if Compare(v, other.values[i]) != 0 {
			return false
		}
	}

	return true
}

// sizeArray returns the encoded size, in bytes, of a: the int32 length
// prefix, every element's tag/index-key/value, and the trailing NUL
// terminator.
func sizeArray(a *Array) int {
	size := 4 + 1

	for i, v := range a.values {
		size += 1 + SizeCString(strconv.Itoa(i)) + sizeValue(v)
	}

	return size
}

// Encode serializes a into the standard BSON byte representation of its
// equivalent document (integer-string keys "0", "1", …).
//
// It returns [ErrTooLarge] (wrapped in a *Error) if the encoded form would
// exceed [MaxDocumentLen].
func (a *Array) Encode() (RawArray, error) {
	size := sizeArray(a)
	if size > MaxDocumentLen {
		return nil, newError(ErrTooLarge, "array of %d bytes exceeds the %d byte limit", size, MaxDocumentLen)
	}

	b := make([]byte, size)

	if err := encodeArrayInto(b, a); err != nil {
		return nil, err
	}

	return b, nil
}

// encodeArrayInto encodes a into b, which must be exactly sizeArray(a)
// bytes long.
func encodeArrayInto(b []byte, a *Array) error {
	EncodeInt32(b, int32(len(b)))

	offset := 4

	for i, v := range a.values {
		b[offset] = byte(tagOf(v))
		offset++

		key := strconv.Itoa(i)
		EncodeCString(b[offset:], key)
		offset += SizeCString(key)

		n, err := encodeValueInto(b[offset:], v)
		if err != nil {
			return err
		}

		offset += n
	}

	b[offset] = 0

	return nil
}

// LogValue implements [log/slog.LogValuer], rendering a as a group of
// index-keyed attributes.
func (a *Array) LogValue() slog.Value {
	if a == nil {
		return slog.StringValue("Array(nil)")
	}

	return slogValue(a, 0)
}
