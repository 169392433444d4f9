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
	"unicode/utf8"
)

// SizeString returns the encoded size, in bytes, of the BSON string s
// (i32 length prefix, including the terminator, plus the UTF-8 bytes plus the terminator).
func SizeString(s string) int {
	return 4 + len(s) + 1
}

// EncodeString encodes s into b, which must be at least SizeString(s) bytes long.
func EncodeString(b []byte, s string) {
	binary.LittleEndian.PutUint32(b, uint32(len(s)+1))
	copy(b[4:], s)
	b[4+len(s)] = 0
}

// DecodeString decodes a BSON string from the start of b.
func DecodeString(b []byte) (string, error) {
	if len(b) < 4 {
		return "", ErrDecodeShortInput
	}

	l := int(int32(binary.LittleEndian.Uint32(b)))
	if l < 1 {
		return "", ErrDecodeInvalidInput
	}

	if len(b) < 4+l {
		return "", ErrDecodeShortInput
	}

	if b[4+l-1] != 0 {
		return "", ErrDecodeInvalidInput
	}

	s := string(b[4 : 4+l-1])
	if !utf8.ValidString(s) {
		return "", ErrDecodeInvalidInput
	}

	return s, nil
}
