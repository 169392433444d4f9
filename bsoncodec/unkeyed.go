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

import (
	"time"

	"github.com/google/uuid"

	"github.com/ferrotype-io/bson"
)

// UnkeyedEncodingContainer encodes a sequence of values positionally; each
// call appends the next element.
type UnkeyedEncodingContainer struct {
	enc *ValueEncoder
	arr *bson.Array
}

// Count returns the number of elements encoded so far.
func (c *UnkeyedEncodingContainer) Count() int {
	return c.arr.Len()
}

func (c *UnkeyedEncodingContainer) nextEncoder() *ValueEncoder {
	idx := c.arr.Len()

	return &ValueEncoder{
		path: c.enc.path.child(IndexKey(idx)),
		opts: c.enc.opts,
		set:  func(v any) error { return c.arr.Append(v) },
	}
}

func (c *UnkeyedEncodingContainer) EncodeNil() error { return c.nextEncoder().single().encodeNil() }

func (c *UnkeyedEncodingContainer) EncodeDouble(v float64) error {
	return c.nextEncoder().single().encodeDouble(v)
}

func (c *UnkeyedEncodingContainer) EncodeString(v string) error {
	return c.nextEncoder().single().encodeString(v)
}

func (c *UnkeyedEncodingContainer) EncodeBool(v bool) error {
	return c.nextEncoder().single().encodeBool(v)
}

func (c *UnkeyedEncodingContainer) EncodeInt32(v int32) error {
	return c.nextEncoder().single().encodeInt32(v)
}

func (c *UnkeyedEncodingContainer) EncodeInt64(v int64) error {
	return c.nextEncoder().single().encodeInt64(v)
}

func (c *UnkeyedEncodingContainer) EncodeBinary(v bson.Binary) error {
	return c.nextEncoder().single().encodeBinary(v)
}

func (c *UnkeyedEncodingContainer) EncodeObjectID(v bson.ObjectID) error {
	return c.nextEncoder().single().encodeObjectID(v)
}

func (c *UnkeyedEncodingContainer) EncodeDecimal128(v bson.Decimal128) error {
	return c.nextEncoder().single().encodeDecimal128(v)
}

func (c *UnkeyedEncodingContainer) EncodeTimestamp(v bson.Timestamp) error {
	return c.nextEncoder().single().encodeTimestamp(v)
}

func (c *UnkeyedEncodingContainer) EncodeRegex(v bson.Regex) error {
	return c.nextEncoder().single().encodeRegex(v)
}

func (c *UnkeyedEncodingContainer) EncodeDateTime(v time.Time) error {
	child := c.nextEncoder()
	return child.opts.Date.encode(child, v)
}

func (c *UnkeyedEncodingContainer) EncodeUUID(v uuid.UUID) error {
	child := c.nextEncoder()
	return child.opts.UUID.encode(child, v)
}

func (c *UnkeyedEncodingContainer) EncodeBytes(v []byte) error {
	child := c.nextEncoder()
	return child.opts.Data.encode(child, v)
}

func (c *UnkeyedEncodingContainer) EncodeEncodable(v Encodable) error {
	return v.EncodeBSON(c.nextEncoder())
}

func (c *UnkeyedEncodingContainer) NestedKeyedContainer() (*KeyedEncodingContainer[CodingKey], error) {
	return c.nextEncoder().Keyed()
}

func (c *UnkeyedEncodingContainer) NestedUnkeyedContainer() (*UnkeyedEncodingContainer, error) {
	return c.nextEncoder().Unkeyed()
}

func (c *UnkeyedEncodingContainer) SuperEncoder() *ValueEncoder {
	return c.nextEncoder()
}

// UnkeyedDecodingContainer decodes a sequence of values positionally,
// tracking CurrentIndex as it's consumed.
type UnkeyedDecodingContainer struct {
	dec *ValueDecoder
	arr *bson.Array
	idx int
}

// Count returns the total number of elements in the container.
func (c *UnkeyedDecodingContainer) Count() int {
	return c.arr.Len()
}

// CurrentIndex returns the index of the next element to be decoded.
func (c *UnkeyedDecodingContainer) CurrentIndex() int {
	return c.idx
}

// IsAtEnd reports whether every element has been decoded.
func (c *UnkeyedDecodingContainer) IsAtEnd() bool {
	return c.idx >= c.arr.Len()
}

func (c *UnkeyedDecodingContainer) nextDecoder() (*ValueDecoder, error) {
	v, ok := c.arr.Get(c.idx)
	if !ok {
		return nil, newCodecError(c.dec.path.child(IndexKey(c.idx)), bson.ErrValueNotFound, "unkeyed container exhausted at index %d", c.idx)
	}

	cd := &ValueDecoder{path: c.dec.path.child(IndexKey(c.idx)), opts: c.dec.opts, value: v}
	c.idx++

	return cd, nil
}

// DecodeNil reports whether the next element is a BSON null, consuming it
// if so; it does not advance the index when the next element is not nil.
func (c *UnkeyedDecodingContainer) DecodeNil() (bool, error) {
	v, ok := c.arr.Get(c.idx)
	if !ok {
		return false, newCodecError(c.dec.path.child(IndexKey(c.idx)), bson.ErrValueNotFound, "unkeyed container exhausted at index %d", c.idx)
	}

	if _, isNull := v.(bson.Null); isNull {
		c.idx++
		return true, nil
	}

	return false, nil
}

func (c *UnkeyedDecodingContainer) DecodeDouble() (float64, error) {
	cd, err := c.nextDecoder()
	if err != nil {
		return 0, err
	}

	return cd.single().decodeDouble()
}

func (c *UnkeyedDecodingContainer) DecodeString() (string, error) {
	cd, err := c.nextDecoder()
	if err != nil {
		return "", err
	}

	return cd.single().decodeString()
}

func (c *UnkeyedDecodingContainer) DecodeBool() (bool, error) {
	cd, err := c.nextDecoder()
	if err != nil {
		return false, err
	}

	return cd.single().decodeBool()
}

func (c *UnkeyedDecodingContainer) DecodeInt32() (int32, error) {
	cd, err := c.nextDecoder()
	if err != nil {
		return 0, err
	}

	return cd.single().decodeInt32()
}

func (c *UnkeyedDecodingContainer) DecodeInt64() (int64, error) {
	cd, err := c.nextDecoder()
	if err != nil {
		return 0, err
	}

	return cd.single().decodeInt64()
}

func (c *UnkeyedDecodingContainer) DecodeBinary() (bson.Binary, error) {
	cd, err := c.nextDecoder()
	if err != nil {
		return bson.Binary{}, err
	}

	return cd.single().decodeBinary()
}

func (c *UnkeyedDecodingContainer) DecodeObjectID() (bson.ObjectID, error) {
	cd, err := c.nextDecoder()
	if err != nil {
		return bson.ObjectID{}, err
	}

	return cd.single().decodeObjectID()
}

func (c *UnkeyedDecodingContainer) DecodeDecimal128() (bson.Decimal128, error) {
	cd, err := c.nextDecoder()
	if err != nil {
		return bson.Decimal128{}, err
	}

	return cd.single().decodeDecimal128()
}

func (c *UnkeyedDecodingContainer) DecodeTimestamp() (bson.Timestamp, error) {
	cd, err := c.nextDecoder()
	if err != nil {
		return bson.Timestamp{}, err
	}

	return cd.single().decodeTimestamp()
}

func (c *UnkeyedDecodingContainer) DecodeRegex() (bson.Regex, error) {
	cd, err := c.nextDecoder()
	if err != nil {
		return bson.Regex{}, err
	}

	return cd.single().decodeRegex()
}

func (c *UnkeyedDecodingContainer) DecodeDateTime() (time.Time, error) {
	cd, err := c.nextDecoder()
	if err != nil {
		return time.Time{}, err
	}

	return cd.opts.Date.decode(cd)
}

func (c *UnkeyedDecodingContainer) DecodeUUID() (uuid.UUID, error) {
	cd, err := c.nextDecoder()
	if err != nil {
		return uuid.UUID{}, err
	}

	return cd.opts.UUID.decode(cd)
}

func (c *UnkeyedDecodingContainer) DecodeBytes() ([]byte, error) {
	cd, err := c.nextDecoder()
	if err != nil {
		return nil, err
	}

	return cd.opts.Data.decode(cd)
}

func (c *UnkeyedDecodingContainer) DecodeDecodable(v Decodable) error {
	cd, err := c.nextDecoder()
	if err != nil {
		return err
	}

	return v.DecodeBSON(cd)
}

func (c *UnkeyedDecodingContainer) NestedKeyedContainer() (*KeyedDecodingContainer[CodingKey], error) {
	cd, err := c.nextDecoder()
	if err != nil {
		return nil, err
	}

	return cd.Keyed()
}

func (c *UnkeyedDecodingContainer) NestedUnkeyedContainer() (*UnkeyedDecodingContainer, error) {
	cd, err := c.nextDecoder()
	if err != nil {
		return nil, err
	}

	return cd.Unkeyed()
}

func (c *UnkeyedDecodingContainer) SuperDecoder() (*ValueDecoder, error) {
	return c.nextDecoder()
}
