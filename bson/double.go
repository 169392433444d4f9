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
	"math"
)

// SizeFloat64 is the encoded size, in bytes, of a BSON double.
const SizeFloat64 = 8

// EncodeFloat64 encodes v into b, which must be at least SizeFloat64 bytes long.
func EncodeFloat64(b []byte, v float64) {
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
}

// DecodeFloat64 decodes a BSON double from the start of b.
func DecodeFloat64(b []byte) (float64, error) {
	if len(b) < SizeFloat64 {
		return 0, ErrDecodeShortInput
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}
