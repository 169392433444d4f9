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

package bsoncodec

import (
	"golang.org/x/exp/constraints"

	"github.com/ferrotype-io/bson"
)

// toSized narrows n (already known to fit an int64, since it came from
// [bson.ToInt64]) to a sized Go integer type T, failing if that narrowing
// would change its value.
//
// The "probe" trick detects T's signedness without reflection: the zero
// value of an unsigned type underflows on "- 1" to its maximum value,
// which is greater than zero; a signed type's zero value does not.
func toSized[T constraints.Integer](n int64) (T, bool) {
	var probe T

	if probe-1 > 0 && n < 0 {
		return 0, false
	}

	v := T(n)
	if int64(v) != n {
		return 0, false
	}

	return v, true
}

// DecodeSizedInt decodes the value at key k of a keyed container into the
// narrowest Go integer type T that can hold it exactly, using
// exact-representation coercion: it fails with NumberOutOfRange if the
// stored numeric value does not fit T, regardless of what BSON numeric
// scalar kind actually stored it.
func DecodeSizedInt[T constraints.Integer, K CodingKey](c *KeyedDecodingContainer[K], k K) (T, error) {
	n, err := c.DecodeInt64(k)
	if err != nil {
		return 0, err
	}

	v, ok := toSized[T](n)
	if !ok {
		return 0, newCodecError(c.dec.path.child(k), bson.ErrNumberOutOfRange, "%d does not fit the requested integer type", n)
	}

	return v, nil
}

// DecodeSizedIntElement is DecodeSizedInt's dual for unkeyed containers.
func DecodeSizedIntElement[T constraints.Integer](c *UnkeyedDecodingContainer) (T, error) {
	idx := c.idx

	n, err := c.DecodeInt64()
	if err != nil {
		return 0, err
	}

	v, ok := toSized[T](n)
	if !ok {
		return 0, newCodecError(c.dec.path.child(IndexKey(idx)), bson.ErrNumberOutOfRange, "%d does not fit the requested integer type", n)
	}

	return v, nil
}

// toInt64Exact widens v to int64, failing only for unsigned values beyond
// int64's range (BSON has no unsigned 64-bit scalar to hold them exactly).
func toInt64Exact[T constraints.Integer](v T) (int64, bool) {
	n := int64(v)
	if n < 0 && v > 0 {
		return 0, false
	}

	return n, true
}

// EncodeSizedInt encodes v, a Go integer type of any width, as the
// narrowest BSON numeric scalar that holds it exactly (int32 if it fits,
// else int64).
func EncodeSizedInt[T constraints.Integer, K CodingKey](c *KeyedEncodingContainer[K], v T, k K) error {
	n, ok := toInt64Exact(v)
	if !ok {
		return newCodecError(c.enc.path.child(k), bson.ErrNumberOutOfRange, "%d does not fit int64", uint64(v))
	}

	if n >= -(1<<31) && n <= (1<<31)-1 {
		return c.EncodeInt32(int32(n), k)
	}

	return c.EncodeInt64(n, k)
}

// EncodeSizedIntElement is EncodeSizedInt's dual for unkeyed containers.
func EncodeSizedIntElement[T constraints.Integer](c *UnkeyedEncodingContainer, v T) error {
	n, ok := toInt64Exact(v)
	if !ok {
		idx := c.arr.Len()
		return newCodecError(c.enc.path.child(IndexKey(idx)), bson.ErrNumberOutOfRange, "%d does not fit int64", uint64(v))
	}

	if n >= -(1<<31) && n <= (1<<31)-1 {
		return c.EncodeInt32(int32(n))
	}

	return c.EncodeInt64(n)
}
