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

import "sort"

// regexValidOptions are the option characters recognized by the BSON
// specification. "l" is parsed and preserved across BSON round-trips. This
// module has no conversion from a Regex to a Go regexp.
const regexValidOptions = "imslux"

// Regex represents the BSON regular expression scalar.
//
// Options is always canonically sorted; [NewRegex] and decoding both
// enforce this.
type Regex struct {
	Pattern string
	Options string
}

// NewRegex constructs a Regex, canonicalizing (sorting) its options.
func NewRegex(pattern, options string) (Regex, error) {
	for _, o := range options {
		ok := false

		for _, v := range regexValidOptions {
			if o == v {
				ok = true
				break
			}
		}

		if !ok {
			return Regex{}, newError(ErrInvalidArgument, "invalid regex option %q", o)
		}
	}

	return Regex{Pattern: pattern, Options: sortOptions(options)}, nil
}

// sortOptions returns options with its characters sorted, matching the
// canonical form the BSON specification requires.
func sortOptions(options string) string {
	b := []byte(options)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })

	return string(b)
}

// SizeRegex returns the encoded size, in bytes, of r.
func SizeRegex(r Regex) int {
	return SizeCString(r.Pattern) + SizeCString(r.Options)
}

// EncodeRegex encodes r into b, which must be at least SizeRegex(r) bytes long.
func EncodeRegex(b []byte, r Regex) {
	EncodeCString(b, r.Pattern)
	EncodeCString(b[SizeCString(r.Pattern):], r.Options)
}

// DecodeRegex decodes a BSON regular expression from the start of b.
//
// Options are validated to be canonically sorted; a decoded value whose
// options are out of order is reported via [ErrNotSorted].
func DecodeRegex(b []byte) (Regex, error) {
	pattern, err := DecodeCString(b)
	if err != nil {
		return Regex{}, err
	}

	rest := b[SizeCString(pattern):]

	options, err := DecodeCString(rest)
	if err != nil {
		return Regex{}, err
	}

	if sortOptions(options) != options {
		return Regex{}, ErrNotSorted
	}

	return Regex{Pattern: pattern, Options: options}, nil
}
