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

// Package bson implements the BSON value model, document codec, and
// streaming reader/writer defined by https://bsonspec.org/spec.html.
//
// # Types
//
// The 21 BSON element kinds are represented by the following Go types:
//
//	BSON                Go
//
//	Document            *bson.Document or bson.RawDocument
//	Array               *bson.Array    or bson.RawArray
//
//	Double              float64
//	String              string
//	Binary data         bson.Binary
//	Undefined           bson.Undefined
//	ObjectId            bson.ObjectID
//	Boolean             bool
//	UTC datetime        time.Time
//	Null                bson.Null
//	Regular expression  bson.Regex
//	DBPointer           bson.DBPointer
//	JavaScript code     bson.Code
//	Symbol              bson.Symbol
//	JS code w/ scope    bson.CodeWithScope
//	32-bit integer      int32
//	Timestamp           bson.Timestamp
//	64-bit integer      int64
//	Decimal128          bson.Decimal128
//	Min key             bson.MinKey
//	Max key             bson.MaxKey
//
// Composite types (Document and Array) are passed by pointer. Raw composite
// types and scalars are passed by value.
//
// [Undefined], [DBPointer], and [Symbol] are deprecated by the BSON
// specification itself: this package decodes them for round-trip fidelity
// but does not construct them from any non-deprecated API.
package bson

import (
	"math"
	"time"
)

// MaxDocumentLen is the largest total length, in bytes, a BSON document may
// have (16 MiB), per the wire format's size cap.
const MaxDocumentLen = 16 * 1024 * 1024

// minDocumentLen is the smallest valid encoding: an empty document.
const minDocumentLen = 5

// ScalarType lists the Go types used to represent BSON scalars (everything
// except Document and Array).
type ScalarType interface {
	float64 | string | Binary | Undefined | ObjectID | bool | time.Time |
		Null | Regex | DBPointer | Code | Symbol | CodeWithScope |
		int32 | Timestamp | int64 | Decimal128 | MinKey | MaxKey
}

// CompositeType lists the Go types used to represent BSON composites,
// including their raw (undecoded) forms.
type CompositeType interface {
	*Document | *Array | RawDocument | RawArray
}

// Type is the constraint satisfied by every concrete Go representation of a
// BSON value.
type Type interface {
	ScalarType | CompositeType
}

// validBSONType reports whether v is one of the concrete types listed by [Type].
func validBSONType(v any) bool {
	switch v.(type) {
	case *Document, RawDocument, *Array, RawArray:
	case float64, string, Binary, Undefined, ObjectID, bool, time.Time:
	case Null, Regex, DBPointer, Code, Symbol, CodeWithScope:
	case int32, Timestamp, int64, Decimal128, MinKey, MaxKey:
	default:
		return false
	}

	return true
}

// exactInt64ToFloat64 reports whether n can be represented as a float64 without loss.
func exactInt64ToFloat64(n int64) (float64, bool) {
	f := float64(n)
	if int64(f) != n {
		return 0, false
	}

	// guard against the range where int64->float64->int64 round-trips
	// but precision was actually lost (beyond 2^53).
	if math.Abs(f) > (1 << 53) {
		return 0, false
	}

	return f, true
}

// Projector accessors: one comma-ok free function per BSON variant, each
// reporting whether v holds that variant and, if so, its payload. They
// perform no coercion between variants; use [ToInt32], [ToInt64],
// [ToFloat64], [ToInt], or [ToDecimal128] for that.

// AsInt32 reports whether v is a BSON 32-bit integer.
func AsInt32(v any) (int32, bool) {
	n, ok := v.(int32)
	return n, ok
}

// AsInt64 reports whether v is a BSON 64-bit integer.
func AsInt64(v any) (int64, bool) {
	n, ok := v.(int64)
	return n, ok
}

// AsDouble reports whether v is a BSON double.
func AsDouble(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

// AsString reports whether v is a BSON string.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsDocument reports whether v is a decoded BSON document. It does not
// match [RawDocument]; decode a raw document first.
func AsDocument(v any) (*Document, bool) {
	d, ok := v.(*Document)
	return d, ok
}

// AsArray reports whether v is a decoded BSON array. It does not match
// [RawArray]; decode a raw array first.
func AsArray(v any) (*Array, bool) {
	a, ok := v.(*Array)
	return a, ok
}

// AsBool reports whether v is a BSON boolean.
func AsBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// AsDateTime reports whether v is a BSON UTC datetime.
func AsDateTime(v any) (time.Time, bool) {
	t, ok := v.(time.Time)
	return t, ok
}

// AsBinary reports whether v is BSON binary data.
func AsBinary(v any) (Binary, bool) {
	b, ok := v.(Binary)
	return b, ok
}

// AsObjectID reports whether v is a BSON ObjectId.
func AsObjectID(v any) (ObjectID, bool) {
	id, ok := v.(ObjectID)
	return id, ok
}

// AsDecimal128 reports whether v is a BSON Decimal128.
func AsDecimal128(v any) (Decimal128, bool) {
	d, ok := v.(Decimal128)
	return d, ok
}

// AsRegex reports whether v is a BSON regular expression.
func AsRegex(v any) (Regex, bool) {
	r, ok := v.(Regex)
	return r, ok
}

// AsCode reports whether v is BSON JavaScript code.
func AsCode(v any) (Code, bool) {
	c, ok := v.(Code)
	return c, ok
}

// AsCodeWithScope reports whether v is BSON JavaScript code with scope.
func AsCodeWithScope(v any) (CodeWithScope, bool) {
	c, ok := v.(CodeWithScope)
	return c, ok
}

// AsSymbol reports whether v is a deprecated BSON symbol.
func AsSymbol(v any) (Symbol, bool) {
	s, ok := v.(Symbol)
	return s, ok
}

// AsDBPointer reports whether v is a deprecated BSON DBPointer.
func AsDBPointer(v any) (DBPointer, bool) {
	p, ok := v.(DBPointer)
	return p, ok
}

// AsTimestamp reports whether v is a BSON internal timestamp.
func AsTimestamp(v any) (Timestamp, bool) {
	ts, ok := v.(Timestamp)
	return ts, ok
}
