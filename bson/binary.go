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

// BinarySubtype is the one-byte tag distinguishing kinds of [Binary] payloads.
type BinarySubtype byte

// Binary subtypes defined by the BSON specification. 0x07-0x7f is reserved
// for future versions of the specification; 0x80-0xff is open for
// user-defined subtypes.
const (
	BinaryGeneric    = BinarySubtype(0x00)
	BinaryFunction   = BinarySubtype(0x01)
	BinaryGenericOld = BinarySubtype(0x02)
	BinaryUUIDOld    = BinarySubtype(0x03)
	BinaryUUID       = BinarySubtype(0x04)
	BinaryMD5        = BinarySubtype(0x05)
	BinaryEncrypted  = BinarySubtype(0x06)

	binaryReservedLow  = BinarySubtype(0x07)
	binaryReservedHigh = BinarySubtype(0x7f)
	binaryUserLow      = BinarySubtype(0x80)
)

// Binary represents the BSON binary data scalar.
type Binary struct {
	Subtype BinarySubtype
	B       []byte
}

// NewBinary constructs a Binary, validating the UUID length constraint and
// the reserved subtype range.
func NewBinary(subtype BinarySubtype, data []byte) (Binary, error) {
	if subtype >= binaryReservedLow && subtype < binaryUserLow {
		return Binary{}, newError(ErrInvalidArgument, "binary subtype %#02x is reserved", byte(subtype))
	}

	if (subtype == BinaryUUID || subtype == BinaryUUIDOld) && len(data) != 16 {
		return Binary{}, newError(ErrInvalidArgument, "UUID binary subtype requires 16 bytes, got %d", len(data))
	}

	return Binary{Subtype: subtype, B: data}, nil
}

// SizeBinary returns the encoded size, in bytes, of bin.
func SizeBinary(bin Binary) int {
	return 4 + 1 + len(bin.B)
}

// EncodeBinary encodes bin into b, which must be at least SizeBinary(bin) bytes long.
func EncodeBinary(b []byte, bin Binary) {
	binary.LittleEndian.PutUint32(b, uint32(len(bin.B)))
	b[4] = byte(bin.Subtype)
	copy(b[5:], bin.B)
}

// DecodeBinary decodes a BSON binary value from the start of b.
func DecodeBinary(b []byte) (Binary, error) {
	if len(b) < 5 {
		return Binary{}, ErrDecodeShortInput
	}

	l := int(int32(binary.LittleEndian.Uint32(b)))
	if l < 0 {
		return Binary{}, ErrDecodeInvalidInput
	}

	if len(b) < 5+l {
		return Binary{}, ErrDecodeShortInput
	}

	subtype := BinarySubtype(b[4])

	data := make([]byte, l)
	copy(data, b[5:5+l])

	if (subtype == BinaryUUID || subtype == BinaryUUIDOld) && l != 16 {
		return Binary{}, newError(ErrDataCorrupted, "UUID binary subtype requires 16 bytes, got %d", l)
	}

	return Binary{Subtype: subtype, B: data}, nil
}
