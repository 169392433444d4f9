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

// Package bsoncodec implements a reflective coding protocol bridging Go
// values and the bson package's Document/Array model, in the style of
// Swift's Codable: a type implements Encodable/Decodable once, against
// keyed, unkeyed, or single-value containers, without runtime reflection
// over struct tags.
package bsoncodec

import "strconv"

// CodingKey identifies one step of a coding path: either a document field
// name or an array index.
type CodingKey interface {
	// StringValue returns the key as it would appear in a keyed container
	// (a BSON document field name, or the decimal string of an index).
	StringValue() string

	// IntValue returns the key as an array index, and whether it is one.
	IntValue() (int, bool)
}

// stringKey is a CodingKey for a named document field.
type stringKey string

func (k stringKey) StringValue() string    { return string(k) }
func (k stringKey) IntValue() (int, bool) { return 0, false }

// intKey is a CodingKey for a positional array element.
type intKey int

func (k intKey) StringValue() string    { return strconv.Itoa(int(k)) }
func (k intKey) IntValue() (int, bool) { return int(k), true }

// Key returns a CodingKey for the named document field s.
func Key(s string) CodingKey {
	return stringKey(s)
}

// IndexKey returns a CodingKey for array index i.
func IndexKey(i int) CodingKey {
	return intKey(i)
}

// path is an immutable coding path, rendered for error messages as a
// dotted/indexed string (e.g. "address[0].zip").
type path []CodingKey

func (p path) child(k CodingKey) path {
	next := make(path, len(p)+1)
	copy(next, p)
	next[len(p)] = k

	return next
}

func (p path) String() string {
	if len(p) == 0 {
		return "<root>"
	}

	s := ""

	for i, k := range p {
		if _, ok := k.IntValue(); ok {
			s += "[" + k.StringValue() + "]"
			continue
		}

		if i > 0 {
			s += "."
		}

		s += k.StringValue()
	}

	return s
}
