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

// SizeBool is the encoded size, in bytes, of a BSON boolean.
const SizeBool = 1

// EncodeBool encodes v into b, which must be at least SizeBool bytes long.
func EncodeBool(b []byte, v bool) {
	if v {
		b[0] = 1
	} else {
		b[0] = 0
	}
}

// DecodeBool decodes a BSON boolean from the start of b.
func DecodeBool(b []byte) (bool, error) {
	if len(b) < SizeBool {
		return false, ErrDecodeShortInput
	}

	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrDecodeInvalidInput
	}
}
