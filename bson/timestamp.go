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

// Timestamp represents the internal MongoDB replication Timestamp scalar,
// distinct from the UTC datetime type.
type Timestamp struct {
	Increment uint32
	Seconds   uint32
}

// SizeTimestamp is the encoded size, in bytes, of a BSON timestamp.
const SizeTimestamp = 8

// EncodeTimestamp encodes ts into b, which must be at least SizeTimestamp bytes long.
func EncodeTimestamp(b []byte, ts Timestamp) {
	binary.LittleEndian.PutUint32(b[0:4], ts.Increment)
	binary.LittleEndian.PutUint32(b[4:8], ts.Seconds)
}

// DecodeTimestamp decodes a BSON timestamp from the start of b.
func DecodeTimestamp(b []byte) (Timestamp, error) {
	if len(b) < SizeTimestamp {
		return Timestamp{}, ErrDecodeShortInput
	}

	return Timestamp{
		Increment: binary.LittleEndian.Uint32(b[0:4]),
		Seconds:   binary.LittleEndian.Uint32(b[4:8]),
	}, nil
}
