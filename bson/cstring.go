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

import "unicode/utf8"

// SizeCString returns the size, in bytes, of the encoding of s as a BSON cstring.
func SizeCString(s string) int {
	return len(s) + 1
}

// EncodeCString encodes s as a BSON cstring into b.
//
// b must be at least SizeCString(s) bytes long; only that many bytes are modified.
func EncodeCString(b []byte, s string) {
	copy(b, s)
	b[len(s)] = 0
}

// DecodeCString decodes a cstring from the start of b, returning the decoded
// string (not including the terminator).
//
// It validates that the string is valid UTF-8 and contains no embedded NUL
// other than the terminator.
func DecodeCString(b []byte) (string, error) {
	i := 0
	for ; i < len(b); i++ {
		if b[i] == 0 {
			s := string(b[:i])
			if !utf8.ValidString(s) {
				return "", ErrDecodeInvalidInput
			}

			return s, nil
		}
	}

	return "", ErrDecodeShortInput
}
