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
	"encoding/binary"
	"time"
)

// SizeDateTime is the encoded size, in bytes, of a BSON UTC datetime.
const SizeDateTime = 8

// EncodeDateTime encodes t into b (milliseconds since the Unix epoch, little-endian),
// which must be at least SizeDateTime bytes long.
func EncodeDateTime(b []byte, t time.Time) {
	binary.LittleEndian.PutUint64(b, uint64(t.UnixMilli()))
}

// DecodeDateTime decodes a BSON UTC datetime from the start of b.
func DecodeDateTime(b []byte) (time.Time, error) {
	if len(b) < SizeDateTime {
		return time.Time{}, ErrDecodeShortInput
	}

	ms := int64(binary.LittleEndian.Uint64(b))

	return time.UnixMilli(ms).UTC(), nil
}

// SecondsToDateTime converts a floating-point count of seconds since the
// Unix epoch to a time.Time with millisecond precision, rounding to the
// nearest millisecond.
//
// This is millisecond precision with round-to-nearest, not the lossy
// truncating integer division some historical BSON implementations used.
func SecondsToDateTime(seconds float64) time.Time {
	ms := int64(seconds*1000 + sign(seconds)*0.5)
	return time.UnixMilli(ms).UTC()
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}

	return 1
}
