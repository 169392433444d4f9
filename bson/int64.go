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

import "encoding/binary"

// SizeInt64 is the encoded size, in bytes, of a BSON int64.
const SizeInt64 = 8

// EncodeInt64 encodes v into b, which must be at least SizeInt64 bytes long.
func EncodeInt64(b []byte, v int64) {
	binary.LittleEndian.PutUint64(b, uint64(v))
}

// DecodeInt64 decodes a BSON int64 from the start of b.
func DecodeInt64(b []byte) (int64, error) {
	if len(b) < SizeInt64 {
		return 0, ErrDecodeShortInput
	}

	return int64(binary.LittleEndian.Uint64(b)), nil
}
