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
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// ToInt64 coerces v, one of BSON's three numeric scalar types (float64,
// int32, int64), to an int64 without loss of precision.
//
// It returns an [ErrNumberOutOfRange] *Error for a float64 with a
// fractional part or outside int64's range, and an [ErrTypeMismatch]
// *Error for any non-numeric v.
func ToInt64(v any) (int64, error) {
	switch v := v.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case float64:
		if math.Trunc(v) != v {
			return 0, newError(ErrNumberOutOfRange, "%v has a fractional part", v)
		}

		if v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, newError(ErrNumberOutOfRange, "%v is out of int64 range", v)
		}

		return int64(v), nil
	default:
		return 0, newError(ErrTypeMismatch, "expected a numeric type, got %T", v)
	}
}

// ToInt32 coerces v to an int32 without loss of precision, using [ToInt64]
// and then checking int32's narrower range.
func ToInt32(v any) (int32, error) {
	n, err := ToInt64(v)
	if err != nil {
		return 0, err
	}

	if err := clampToRange(n, int32(math.MinInt32), int32(math.MaxInt32)); err != nil {
		return 0, err
	}

	return int32(n), nil
}

// ToFloat64 coerces v, one of BSON's three numeric scalar types, to a
// float64. A conversion from int64 that would lose precision (magnitude
// beyond 2^53) fails with [ErrNumberOutOfRange].
func ToFloat64(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case int32:
		return float64(v), nil
	case int64:
		f, ok := exactInt64ToFloat64(v)
		if !ok {
			return 0, newError(ErrNumberOutOfRange, "%d cannot be represented exactly as float64", v)
		}

		return f, nil
	default:
		return 0, newError(ErrTypeMismatch, "expected a numeric type, got %T", v)
	}
}

// NewInt returns v as a BSON integer of the platform's native width: an
// int32 on a 32-bit target and an int64 on a 64-bit one.
func NewInt(v int) any {
	if strconv.IntSize == 32 {
		return int32(v)
	}

	return int64(v)
}

// ToInt coerces v to the platform's native int width: int32's range on a
// 32-bit target, int64's on a 64-bit one, mirroring the width-conditional
// rule [NewInt] uses.
func ToInt(v any) (int, error) {
	if strconv.IntSize == 32 {
		n, err := ToInt32(v)
		return int(n), err
	}

	n, err := ToInt64(v)

	return int(n), err
}

// ToDecimal128 coerces v to a [Decimal128] by formatting it as the
// canonical decimal string and parsing that string, per spec's
// anything-to-decimal128 tie-breaking rule — so tied values (float64(10)
// and int64(10)) both produce the Decimal128 bit pattern for "10" rather
// than two different encodings of the same number.
func ToDecimal128(v any) (Decimal128, error) {
	switch v := v.(type) {
	case Decimal128:
		return v, nil
	case int32:
		return ParseDecimal128(strconv.FormatInt(int64(v), 10))
	case int64:
		return ParseDecimal128(strconv.FormatInt(v, 10))
	case float64:
		return ParseDecimal128(strconv.FormatFloat(v, 'g', -1, 64))
	default:
		return Decimal128{}, newError(ErrTypeMismatch, "expected a numeric type, got %T", v)
	}
}

// number is the constraint satisfied by every Go numeric type this package
// coerces BSON's three numeric scalars to or from.
type number interface {
	constraints.Integer | constraints.Float
}

// clampToRange reports whether n fits in the [lo, hi] range of T, returning
// an [ErrNumberOutOfRange] *Error describing the violation otherwise.
//
// Its only caller is [ToInt32].
func clampToRange[T number](n int64, lo, hi T) error {
	if int64(lo) > n || n > int64(hi) {
		return newError(ErrNumberOutOfRange, "%d is out of range [%v, %v]", n, lo, hi)
	}

	return nil
}
