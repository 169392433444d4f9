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

// ValueEncoder is one node of the encoding process: it knows the coding
// path leading to it and a single slot to commit its final value into.
// Calling Keyed or Unkeyed, or committing a value through a single-value
// container, "starts" the node; a node can only be started once
// (canEncodeNewValue below).
//
// The zero value is not usable; obtain one via [Encode], or from a
// container's child-encoder methods.
type ValueEncoder struct {
	path    path
	opts    Options
	set     func(v any) error
	started bool
}

// canEncodeNewValue mirrors the design's storage.len() == codingPath.len()
// predicate: a node may commit a value only once. It is expressed here as
// "has this node already started" rather than comparing stack depths,
// since each ValueEncoder already represents exactly one path element
// rather than a shared stack machine.
func (e *ValueEncoder) canEncodeNewValue() bool {
	return !e.started
}

func (e *ValueEncoder) commit(v any) error {
	if !e.canEncodeNewValue() {
		return newCodecError(e.path, bson.ErrInternal, "a value was already encoded at this path")
	}

	e.started = true

	return e.set(v)
}

// single returns the single-value container for e.
func (e *ValueEncoder) single() *SingleValueEncodingContainer {
	return &SingleValueEncodingContainer{enc: e}
}

// Keyed starts a keyed (document) container at e's path.
func (e *ValueEncoder) Keyed() (*KeyedEncodingContainer[CodingKey], error) {
	if !e.canEncodeNewValue() {
		return nil, newCodecError(e.path, bson.ErrInternal, "a container was already started at this path")
	}

	doc := bson.MakeDocument(0)
	e.started = true

	if err := e.set(doc); err != nil {
		return nil, err
	}

	return &KeyedEncodingContainer[CodingKey]{enc: e, doc: doc}, nil
}

// Unkeyed starts an unkeyed (array) container at e's path.
func (e *ValueEncoder) Unkeyed() (*UnkeyedEncodingContainer, error) {
	if !e.canEncodeNewValue() {
		return nil, newCodecError(e.path, bson.ErrInternal, "a container was already started at this path")
	}

	arr := bson.MakeArray(0)
	e.started = true

	if err := e.set(arr); err != nil {
		return nil, err
	}

	return &UnkeyedEncodingContainer{enc: e, arr: arr}, nil
}

// Options returns the coding strategies in effect for e.
func (e *ValueEncoder) Options() Options {
	return e.opts
}

// WithOptions returns a ValueEncoder identical to e but with override
// merged on top of e's own options (explicit fields on override win).
func (e *ValueEncoder) WithOptions(override Options) *ValueEncoder {
	clone := *e
	clone.opts = e.opts.merge(override)

	return &clone
}

// Encode runs v's EncodeBSON against a fresh top-level encoder and returns
// the resulting Document. EncodeBSON must encode v as a keyed container;
// encoding a scalar or an array at the top level is an error, matching the
// design's invariant that a successful top-level encode leaves exactly one
// map container on the stack.
func Encode(v Encodable, overrides ...Options) (*bson.Document, error) {
	opts := defaultOptions()
	for _, o := range overrides {
		opts = opts.merge(o)
	}

	var result any

	root := &ValueEncoder{
		opts: opts,
		set:  func(v any) error { result = v; return nil },
	}

	if err := v.EncodeBSON(root); err != nil {
		return nil, err
	}

	doc, ok := result.(*bson.Document)
	if !ok {
		return nil, newCodecError(root.path, bson.ErrInvalidArgument,
			"top-level value must encode as a document, got %s", typeName(result))
	}

	return doc, nil
}
