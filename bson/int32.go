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

// SizeInt32 is the encoded size, in bytes, of a BSON int32.
const SizeInt32 = 4

// EncodeInt32 encodes v into b, which must be at least SizeInt32 bytes long.
func EncodeInt32(b []byte, v int32) {
	binary.LittleEndian.PutUint32(b, uint32(v))
}

// DecodeInt32 decodes a BSON int32 from the start of b.
func DecodeInt32(b []byte) (int32, error) {
	if len(b) < SizeInt32 {
		return 0, ErrDecodeShortInput
	}

	return int32(binary.LittleEndian.Uint32(b)), nil
}
