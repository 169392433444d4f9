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
	"bytes"
	"math"
	"math/big"
	"time"
)

// typeOrder assigns each BSON type a rank in the canonical cross-type
// comparison order: MinKey, Undefined, Null, numbers, string-ish, document,
// array, binary, ObjectID, bool, date, timestamp, regex, MaxKey. Symbol and
// Code share the string rank, CodeWithScope the document rank, and
// DBPointer the ObjectID rank.
func typeOrder(v any) int {
	switch v.(type) {
	case MinKey:
		return 0
	case Undefined:
		return 1
	case Null:
		return 2
	case float64, int32, int64, Decimal128:
		return 3
	case string, Symbol, Code:
		return 4
	case *Document, RawDocument, CodeWithScope:
		return 5
	case *Array, RawArray:
		return 6
	case Binary:
		return 7
	case ObjectID, DBPointer:
		return 8
	case bool:
		return 9
	case time.Time:
		return 10
	case Timestamp:
		return 11
	case Regex:
		return 12
	case MaxKey:
		return 13
	default:
		return -1
	}
}

// Compare returns -1, 0, or 1 according to whether a is less than, equal
// to, or greater than b, using BSON's canonical cross-type ordering when a
// and b have different types, and the natural order of their shared type
// otherwise.
//
// Numeric scalars (float64, int32, int64, Decimal128) compare by numeric
// value across types, matching the BSON specification's type-bracketing
// rule that all numbers sort together. Composite types compare
// lexicographically by field/element, recursively.
func Compare(a, b any) int {
	if oa, ob := typeOrder(a), typeOrder(b); oa != ob {
		return compareInt(oa, ob)
	}

	switch a := a.(type) {
	case float64, int32, int64, Decimal128:
		return compareNumeric(a, b)

	case string:
		return bytes.Compare([]byte(a), []byte(b.(string)))
	case Symbol:
		return bytes.Compare([]byte(a), []byte(b.(Symbol)))
	case Code:
		return bytes.Compare([]byte(a), []byte(b.(Code)))

	case *Document:
		return compareDocuments(a, documentOf(b))
	case RawDocument:
		da, err := a.Decode()
		if err != nil {
			return 0
		}

		return compareDocuments(da, documentOf(b))
	case CodeWithScope:
		bv := b.(CodeWithScope)
		if c := bytes.Compare([]byte(a.Code), []byte(bv.Code)); c != 0 {
			return c
		}

		return compareDocuments(a.Scope, bv.Scope)

	case *Array:
		return compareArrays(a, arrayOf(b))
	case RawArray:
		aa, err := a.Decode()
		if err != nil {
			return 0
		}

		return compareArrays(aa, arrayOf(b))

	case Binary:
		bv := b.(Binary)
		if a.Subtype != bv.Subtype {
			return compareInt(int(a.Subtype), int(bv.Subtype))
		}

		return bytes.Compare(a.B, bv.B)

	case ObjectID:
		return bytes.Compare(a[:], b.(ObjectID)[:])
	case DBPointer:
		bv := b.(DBPointer)
		if c := bytes.Compare([]byte(a.Ref), []byte(bv.Ref)); c != 0 {
			return c
		}

		return bytes.Compare(a.ID[:], bv.ID[:])

	case bool:
		bv := b.(bool)
		if a == bv {
			return 0
		}

		if !a {
			return -1
		}

		return 1

	case time.Time:
		bv := b.(time.Time)

		switch {
		case a.Before(bv):
			return -1
		case a.After(bv):
			return 1
		default:
			return 0
		}

	case Timestamp:
		bv := b.(Timestamp)
		if a.Seconds != bv.Seconds {
			return compareInt(int(a.Seconds), int(bv.Seconds))
		}

		return compareInt(int(a.Increment), int(bv.Increment))

	case Regex:
		bv := b.(Regex)
		if c := bytes.Compare([]byte(a.Pattern), []byte(bv.Pattern)); c != 0 {
			return c
		}

		return bytes.Compare([]byte(a.Options), []byte(bv.Options))

	default:
		// MinKey, MaxKey, Undefined, Null: single-valued types, always equal to themselves.
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareNumeric compares two values known to be one of BSON's three
// numeric scalar types, by numeric value, regardless of which of the three
// each operand is.
func compareNumeric(a, b any) int {
	af := asFloat(a)
	bf := asFloat(b)

	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

func asFloat(v any) float64 {
	switch v := v.(type) {
	case float64:
		return v
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case Decimal128:
		if v.IsNaN() {
			return math.NaN()
		}

		if v.IsInfinite() {
			if v.sign() {
				return math.Inf(-1)
			}

			return math.Inf(1)
		}

		coeff, exponent := v.coefficientAndExponent()

		f := new(big.Float).SetPrec(200).SetInt(coeff)
		f.Mul(f, bigPow10(exponent))

		result, _ := f.Float64()
		if v.sign() {
			result = -result
		}

		return result
	default:
		return 0
	}
}

// bigPow10 returns 10^exponent as a big.Float, handling negative exponents
// via division since big.Float has no native exponentiation.
func bigPow10(exponent int) *big.Float {
	neg := exponent < 0
	if neg {
		exponent = -exponent
	}

	result := big.NewFloat(1).SetPrec(200)
	base := big.NewFloat(10).SetPrec(200)

	for i := 0; i < exponent; i++ {
		result.Mul(result, base)
	}

	if neg {
		result.Quo(big.NewFloat(1).SetPrec(200), result)
	}

	return result
}

func compareDocuments(a, b *Document) int {
	an, bn := a.Len(), b.Len()

	n := an
	if bn < n {
		n = bn
	}

	for i := 0; i < n; i++ {
		if a.fields[i].key != b.fields[i].key {
			return bytes.Compare([]byte(a.fields[i].key), []byte(b.fields[i].key))
		}

		if c := Compare(a.fields[i].value, b.fields[i].value); c != 0 {
			return c
		}
	}

	return compareInt(an, bn)
}

func compareArrays(a, b *Array) int {
	an, bn := a.Len(), b.Len()

	n := an
	if bn < n {
		n = bn
	}

	for i := 0; i < n; i++ {
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}

	return compareInt(an, bn)
}

// documentOf normalizes a *Document or RawDocument operand to a *Document,
// panicking on mismatch since callers only reach here after a type-order
// equality check.
func documentOf(v any) *Document {
	switch v := v.(type) {
	case *Document:
		return v
	case RawDocument:
		d, err := v.Decode()
		if err != nil {
			return MakeDocument(0)
		}

		return d
	default:
		panic("bson: documentOf: not a document")
	}
}

func arrayOf(v any) *Array {
	switch v := v.(type) {
	case *Array:
		return v
	case RawArray:
		a, err := v.Decode()
		if err != nil {
			return MakeArray(0)
		}

		return a
	default:
		panic("bson: arrayOf: not an array")
	}
}
