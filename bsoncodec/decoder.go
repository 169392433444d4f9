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

package bsoncodec

import "github.com/ferrotype-io/bson"

// ValueDecoder is one node of the decoding process: the BSON value
// currently focused, and the coding path that led to it.
type ValueDecoder struct {
	path  path
	opts  Options
	value any
}

// single returns the single-value container for d.
func (d *ValueDecoder) single() *SingleValueDecodingContainer {
	return &SingleValueDecodingContainer{dec: d}
}

// Options returns the coding strategies in effect for d.
func (d *ValueDecoder) Options() Options {
	return d.opts
}

// WithOptions returns a ValueDecoder identical to d but with override
// merged on top of d's own options.
func (d *ValueDecoder) WithOptions(override Options) *ValueDecoder {
	clone := *d
	clone.opts = d.opts.merge(override)

	return &clone
}

// Keyed views d's focused value as a keyed (document) container.
func (d *ValueDecoder) Keyed() (*KeyedDecodingContainer[CodingKey], error) {
	doc, err := asDocument(d)
	if err != nil {
		return nil, err
	}

	return &KeyedDecodingContainer[CodingKey]{dec: d, doc: doc}, nil
}

// Unkeyed views d's focused value as an unkeyed (array) container.
func (d *ValueDecoder) Unkeyed() (*UnkeyedDecodingContainer, error) {
	arr, err := asArray(d)
	if err != nil {
		return nil, err
	}

	return &UnkeyedDecodingContainer{dec: d, arr: arr}, nil
}

func asDocument(d *ValueDecoder) (*bson.Document, error) {
	switch v := d.value.(type) {
	case *bson.Document:
		return v, nil
	case bson.RawDocument:
		doc, err := v.Decode()
		if err != nil {
			return nil, newCodecError(d.path, bson.ErrDataCorrupted, "%s", err)
		}

		return doc, nil
	default:
		return nil, newTypeMismatch(d.path, "document", typeName(d.value))
	}
}

func asArray(d *ValueDecoder) (*bson.Array, error) {
	switch v := d.value.(type) {
	case *bson.Array:
		return v, nil
	case bson.RawArray:
		arr, err := v.Decode()
		if err != nil {
			return nil, newCodecError(d.path, bson.ErrDataCorrupted, "%s", err)
		}

		return arr, nil
	default:
		return nil, newTypeMismatch(d.path, "array", typeName(d.value))
	}
}

// Decode runs v's DecodeBSON starting from doc as the top-level document.
func Decode(doc *bson.Document, v Decodable, overrides ...Options) error {
	opts := defaultOptions()
	for _, o := range overrides {
		opts = opts.merge(o)
	}

	root := &ValueDecoder{opts: opts, value: doc}

	return v.DecodeBSON(root)
}
