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
	"time"

	"github.com/ferrotype-io/bson/internal/must"
)

// field is a single key/value pair of a [Document], kept in insertion order.
type field struct {
	key   string
	value any
}

// Document represents a BSON document: an ordered collection of key/value
// pairs. Unlike a Go map, key order is preserved and observable through
// [Document.Keys], [Document.Values], and [Document.Iterator].
//
// The zero value is not a valid Document; use [NewDocument] or
// [MakeDocument].
type Document struct {
	fields []field
	m      map[string]int // key -> index into fields, for O(1) lookup

	generation uint64 // bumped on every mutation (Add, Set, Remove), for iterator invalidation
}

// MakeDocument creates an empty Document with capacity for n fields
// preallocated.
func MakeDocument(n int) *Document {
	return &Document{
		fields: make([]field, 0, n),
		m:      make(map[string]int, n),
	}
}

// NewDocument creates a Document from alternating key/value pairs, in the
// manner of MongoDB driver bson.D literals: NewDocument("a", 1, "b", "two").
//
// It panics if the arguments are malformed (odd count, non-string key, or
// invalid value type) or if a key is duplicated.
func NewDocument(pairs ...any) *Document {
	if len(pairs)%2 != 0 {
		panic("bson.NewDocument: odd number of arguments")
	}

	doc := MakeDocument(len(pairs) / 2)

	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("bson.NewDocument: argument %d is not a string key", i))
		}

		if err := doc.add(key, pairs[i+1]); err != nil {
			panic(fmt.Sprintf("bson.NewDocument: %s", err))
		}
	}

	return doc
}

// add validates and appends a new field; it does not allow replacing an
// existing key.
func (d *Document) add(key string, value any) error {
	if !validBSONType(value) {
		return newError(ErrInvalidArgument, "invalid BSON type %T for key %q", value, key)
	}

	if _, dup := d.m[key]; dup {
		return newError(ErrInvalidArgument, "duplicate key %q", key)
	}

	d.m[key] = len(d.fields)
	d.fields = append(d.fields, field{key: key, value: value})
	d.generation++

	return nil
}

// Add appends a new key/value pair to the end of d. It returns an error if
// the key already exists or the value is not a valid [Type].
func (d *Document) Add(key string, value any) error {
	return d.add(key, value)
}

// Set inserts key with value, or replaces the value of an existing key in
// place (preserving its position). It returns an error if value is not a
// valid [Type].
func (d *Document) Set(key string, value any) error {
	if !validBSONType(value) {
		return newError(ErrInvalidArgument, "invalid BSON type %T for key %q", value, key)
	}

	if i, ok := d.m[key]; ok {
		d.fields[i].value = value
		d.generation++

		return nil
	}

	d.m[key] = len(d.fields)
	d.fields = append(d.fields, field{key: key, value: value})
	d.generation++

	return nil
}

// Remove deletes key from d, if present. It is a no-op otherwise.
func (d *Document) Remove(key string) {
	i, ok := d.m[key]
	if !ok {
		return
	}

	d.fields = append(d.fields[:i], d.fields[i+1:]...)
	delete(d.m, key)

	for k, idx := range d.m {
		if idx > i {
			d.m[k] = idx - 1
		}
	}

	d.generation++
}

// Get returns the value of key and true, or nil and false if key is absent.
func (d *Document) Get(key string) (any, bool) {
	i, ok := d.m[key]
	if !ok {
		return nil, false
	}

	return d.fields[i].value, true
}

// GetOptional returns the value of key, wrapped to signal absence: the
// second result is an [ErrKeyNotFound] *Error when key is missing.
//
// Most callers should prefer Get; GetOptional exists for codec call sites
// that want a single error-returning signature.
func (d *Document) GetOptional(key string) (any, error) {
	v, ok := d.Get(key)
	if !ok {
		return nil, newError(ErrKeyNotFound, "key %q not found", key)
	}

	return v, nil
}

// Has reports whether key is present in d.
func (d *Document) Has(key string) bool {
	_, ok := d.m[key]
	return ok
}

// Len returns the number of fields in d.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}

	return len(d.fields)
}

// Keys returns the document's keys, in insertion order. The returned slice
// is a copy and safe to mutate.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.fields))
	for i, f := range d.fields {
		keys[i] = f.key
	}

	return keys
}

// Values returns the document's values, in insertion order. The returned
// slice is a copy and safe to mutate.
func (d *Document) Values() []any {
	values := make([]any, len(d.fields))
	for i, f := range d.fields {
		values[i] = f.value
	}

	return values
}

// CommandName returns the key of the first field, which by MongoDB wire
// protocol convention names the command being issued, and true. It returns
// "", false for an empty document.
func (d *Document) CommandName() (string, bool) {
	if len(d.fields) == 0 {
		return "", false
	}

	return d.fields[0].key, true
}

// Command returns the key of the first field, which by MongoDB wire
// protocol convention names the command being issued. It panics if d is
// empty.
func (d *Document) Command() string {
	name, ok := d.CommandName()
	if !ok {
		panic("bson.Document.Command: empty document")
	}

	return name
}

// Clone returns a shallow copy of d: a new Document with its own field
// slice and key index, so structural mutations (Add, Set, Remove) on the
// clone do not affect d or vice versa. Composite-typed values (nested
// documents and arrays) are shared with d, not copied; use [Document.DeepCopy]
// when that sharing is unsafe.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}

	fields := make([]field, len(d.fields))
	copy(fields, d.fields)

	m := make(map[string]int, len(d.m))
	for k, i := range d.m {
		m[k] = i
	}

	return &Document{fields: fields, m: m}
}

// DeepCopy returns a copy of d whose composite-typed values (nested
// documents and arrays) are themselves deep-copied; scalar values are
// copied by value.
func (d *Document) DeepCopy() *Document {
	if d == nil {
		return nil
	}

	clone := MakeDocument(len(d.fields))

	for _, f := range d.fields {
		must.NoError(clone.add(f.key, deepCopyValue(f.value)))
	}

	return clone
}

// deepCopyValue deep-copies v if it is a composite BSON value, and returns
// it unchanged otherwise (scalars are already copy-by-value in Go, with the
// sole exception of Binary's backing slice).
func deepCopyValue(v any) any {
	switch v := v.(type) {
	case *Document:
		return v.DeepCopy()
	case *Array:
		return v.DeepCopy()
	case Binary:
		b := make([]byte, len(v.B))
		copy(b, v.B)

		return Binary{Subtype: v.Subtype, B: b}
	case RawDocument:
		b := make(RawDocument, len(v))
		copy(b, v)

		return b
	case RawArray:
		b := make(RawArray, len(v))
		copy(b, v)

		return b
	default:
		return v
	}
}

// Equal reports whether d and other have the same keys, in the same order,
// with equal values, using [Compare] for value comparison.
func (d *Document) Equal(other *Document) bool {
	if d.Len() != other.Len() {
		return false
	}

	for i, f := range d.fields {
		if other.fields[i].key != f.key {
			return false
		}

		if Compare(f.value, other.fields[i].value) != 0 {
			return false
		}
	}

	return true
}

// sizeDocument returns the encoded size, in bytes, of d: the int32 length
// prefix, every field's tag/cstring-key/value, and the trailing NUL
// terminator.
func sizeDocument(d *Document) int {
	size := 4 + 1 // length prefix + terminator

	for _, f := range d.fields {
		size += 1 + SizeCString(f.key) + sizeValue(f.value)
	}

	return size
}

// sizeValue returns the encoded size, in bytes, of a single field value
// (excluding its tag and key).
func sizeValue(v any) int {
	switch v := v.(type) {
	case float64:
		return SizeFloat64
	case string:
		return SizeString(v)
	case Binary:
		return SizeBinary(v)
	case Undefined:
		return SizeUndefined
	case ObjectID:
		return SizeObjectID
	case bool:
		return SizeBool
	case time.Time:
		return SizeDateTime
	case Null:
		return SizeNull
	case Regex:
		return SizeRegex(v)
	case DBPointer:
		return SizeDBPointer(v)
	case Code:
		return SizeCode(v)
	case Symbol:
		return SizeSymbol(v)
	case CodeWithScope:
		return SizeCodeWithScope(v)
	case int32:
		return SizeInt32
	case Timestamp:
		return SizeTimestamp
	case int64:
		return SizeInt64
	case Decimal128:
		return SizeDecimal128
	case MinKey:
		return SizeMinKey
	case MaxKey:
		return SizeMaxKey
	case *Document:
		return sizeDocument(v)
	case *Array:
		return sizeArray(v)
	case RawDocument:
		return len(v)
	case RawArray:
		return len(v)
	default:
		panic(fmt.Sprintf("bson: sizeValue: invalid type %T", v))
	}
}

// Encode serializes d into the standard BSON byte representation.
//
// It returns [ErrTooLarge] (wrapped in a *Error) if the encoded form would
// exceed [MaxDocumentLen].
func (d *Document) Encode() (RawDocument, error) {
	size := sizeDocument(d)
	if size > MaxDocumentLen {
		return nil, newError(ErrTooLarge, "document of %d bytes exceeds the %d byte limit", size, MaxDocumentLen)
	}

	b := make([]byte, size)

	if err := encodeDocumentInto(b, d); err != nil {
		return nil, err
	}

	return b, nil
}

// encodeDocumentInto encodes d into b, which must be exactly sizeDocument(d)
// bytes long.
func encodeDocumentInto(b []byte, d *Document) error {
	EncodeInt32(b, int32(len(b)))

	offset := 4

	for _, f := range d.fields {
		b[offset] = byte(tagOf(f.value))
		offset++

		EncodeCString(b[offset:], f.key)
		offset += SizeCString(f.key)

		n, err := encodeValueInto(b[offset:], f.value)
		if err != nil {
			return err
		}

		offset += n
	}

	b[offset] = 0

	return nil
}

// encodeValueInto encodes a single field value (excluding its tag and key)
// into b, returning the number of bytes written.
func encodeValueInto(b []byte, v any) (int, error) {
	switch v := v.(type) {
	case float64:
		EncodeFloat64(b, v)
		return SizeFloat64, nil
	case string:
		EncodeString(b, v)
		return SizeString(v), nil
	case Binary:
		EncodeBinary(b, v)
		return SizeBinary(v), nil
	case Undefined:
		return 0, nil
	case ObjectID:
		EncodeObjectID(b, v)
		return SizeObjectID, nil
	case bool:
		EncodeBool(b, v)
		return SizeBool, nil
	case time.Time:
		EncodeDateTime(b, v)
		return SizeDateTime, nil
	case Null:
		return 0, nil
	case Regex:
		EncodeRegex(b, v)
		return SizeRegex(v), nil
	case DBPointer:
		EncodeDBPointer(b, v)
		return SizeDBPointer(v), nil
	case Code:
		EncodeCode(b, v)
		return SizeCode(v), nil
	case Symbol:
		EncodeSymbol(b, v)
		return SizeSymbol(v), nil
	case CodeWithScope:
		if err := EncodeCodeWithScope(b, v); err != nil {
			return 0, err
		}

		return SizeCodeWithScope(v), nil
	case int32:
		EncodeInt32(b, v)
		return SizeInt32, nil
	case Timestamp:
		EncodeTimestamp(b, v)
		return SizeTimestamp, nil
	case int64:
		EncodeInt64(b, v)
		return SizeInt64, nil
	case Decimal128:
		EncodeDecimal128(b, v)
		return SizeDecimal128, nil
	case MinKey:
		return 0, nil
	case MaxKey:
		return 0, nil
	case *Document:
		if err := encodeDocumentInto(b, v); err != nil {
			return 0, err
		}

		return sizeDocument(v), nil
	case *Array:
		if err := encodeArrayInto(b, v); err != nil {
			return 0, err
		}

		return sizeArray(v), nil
	case RawDocument:
		copy(b, v)
		return len(v), nil
	case RawArray:
		copy(b, v)
		return len(v), nil
	default:
		panic(fmt.Sprintf("bson: encodeValueInto: invalid type %T", v))
	}
}

// LogValue implements [log/slog.LogValuer], rendering d as a group of its
// fields so that structured loggers print BSON documents without dumping
// raw byte slices.
func (d *Document) LogValue() slog.Value {
	if d == nil {
		return slog.StringValue("Document(nil)")
	}

	return slogValue(d, 0)
}
