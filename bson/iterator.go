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
	"github.com/ferrotype-io/bson/internal/iterator"
)

// Iterator walks a [Document]'s fields in insertion order.
//
// Obtaining an Iterator does not copy the document's fields; it is
// invalidated by any mutation (Add, Set of a new or existing key, Remove)
// made to the Document after the Iterator was created. A call to Next after
// such a mutation returns [ErrConcurrentModification], mirroring the
// detection Go's range loop performs on maps being modified.
type Iterator struct {
	doc        *Document
	generation uint64
	pos        int
}

// Iterator returns a fresh [Iterator] over d's fields.
func (d *Document) Iterator() *Iterator {
	return &Iterator{doc: d, generation: d.generation}
}

// Next returns the next key/value pair, or [iterator.ErrIteratorDone] once
// every field has been visited.
func (it *Iterator) Next() (string, any, error) {
	if it.doc.generation != it.generation {
		return "", nil, ErrConcurrentModification
	}

	if it.pos >= len(it.doc.fields) {
		return "", nil, iterator.ErrIteratorDone
	}

	f := it.doc.fields[it.pos]
	it.pos++

	return f.key, f.value, nil
}

// Close releases resources held by it. Iterator holds none, but Close
// participates in the [iterator.Interface] contract so a *Document's
// Iterator can be passed anywhere that contract is expected.
func (it *Iterator) Close() {}

// check interface
var _ iterator.Interface[string, any] = (*Iterator)(nil)

// ArrayIterator walks an [Array]'s elements in order, with the same
// concurrent-modification detection as [Iterator].
type ArrayIterator struct {
	arr        *Array
	generation uint64
	pos        int
}

// Iterator returns a fresh [ArrayIterator] over a's elements.
func (a *Array) Iterator() *ArrayIterator {
	return &ArrayIterator{arr: a, generation: a.generation}
}

// Next returns the next index/value pair, or [iterator.ErrIteratorDone]
// once every element has been visited.
func (it *ArrayIterator) Next() (int, any, error) {
	if it.arr.generation != it.generation {
		return 0, nil, ErrConcurrentModification
	}

	if it.pos >= len(it.arr.values) {
		return 0, nil, iterator.ErrIteratorDone
	}

	i, v := it.pos, it.arr.values[it.pos]
	it.pos++

	return i, v, nil
}

// Close releases resources held by it. ArrayIterator holds none.
func (it *ArrayIterator) Close() {}

// check interface
var _ iterator.Interface[int, any] = (*ArrayIterator)(nil)

// Iterator returns a fresh [RawIterator] over raw's top-level fields, decoding
// each value lazily as Next is called rather than all at once.
//
// Unlike [Document.Iterator], a RawDocument can't be concurrently mutated
// (it's an immutable byte slice), so there is no generation check: Next
// only fails on malformed input.
func (raw RawDocument) Iterator() *RawIterator {
	return &RawIterator{raw: raw, offset: 4}
}

// RawIterator walks a [RawDocument]'s fields in wire order, decoding one
// field at a time.
type RawIterator struct {
	raw    RawDocument
	offset int
}

// Next decodes and returns the next key/value pair, or
// [iterator.ErrIteratorDone] once the terminating byte is reached.
func (it *RawIterator) Next() (string, any, error) {
	if it.offset >= len(it.raw)-1 {
		return "", nil, iterator.ErrIteratorDone
	}

	t := tag(it.raw[it.offset])
	it.offset++

	name, err := DecodeCString(it.raw[it.offset:])
	if err != nil {
		return "", nil, wrapDecodeErr(it.offset, err)
	}

	it.offset += SizeCString(name)

	v, n, err := decodeTaggedValue(t, it.raw[it.offset:], decodeShallow)
	if err != nil {
		return "", nil, wrapDecodeErr(it.offset, err)
	}

	it.offset += n

	return name, v, nil
}

// Close releases resources held by it. RawIterator holds none.
func (it *RawIterator) Close() {}

// check interface
var _ iterator.Interface[string, any] = (*RawIterator)(nil)
