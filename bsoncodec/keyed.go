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

// KeyedEncodingContainer encodes values under named keys of type K.
type KeyedEncodingContainer[K CodingKey] struct {
	enc *ValueEncoder
	doc *bson.Document
}

// childEncoder returns the referencing encoder for key k: committing a
// value through it writes straight into doc, since set closes over doc.
func (c *KeyedEncodingContainer[K]) childEncoder(k K) *ValueEncoder {
	key := k.StringValue()

	return &ValueEncoder{
		path: c.enc.path.child(k),
		opts: c.enc.opts,
		set:  func(v any) error { return c.doc.Set(key, v) },
	}
}

func (c *KeyedEncodingContainer[K]) EncodeNil(k K) error { return c.childEncoder(k).single().encodeNil() }

func (c *KeyedEncodingContainer[K]) EncodeDouble(v float64, k K) error {
	return c.childEncoder(k).single().encodeDouble(v)
}

func (c *KeyedEncodingContainer[K]) EncodeString(v string, k K) error {
	return c.childEncoder(k).single().encodeString(v)
}

func (c *KeyedEncodingContainer[K]) EncodeBool(v bool, k K) error {
	return c.childEncoder(k).single().encodeBool(v)
}

func (c *KeyedEncodingContainer[K]) EncodeInt32(v int32, k K) error {
	return c.childEncoder(k).single().encodeInt32(v)
}

func (c *KeyedEncodingContainer[K]) EncodeInt64(v int64, k K) error {
	return c.childEncoder(k).single().encodeInt64(v)
}

func (c *KeyedEncodingContainer[K]) EncodeBinary(v bson.Binary, k K) error {
	return c.childEncoder(k).single().encodeBinary(v)
}

func (c *KeyedEncodingContainer[K]) EncodeObjectID(v bson.ObjectID, k K) error {
	return c.childEncoder(k).single().encodeObjectID(v)
}

func (c *KeyedEncodingContainer[K]) EncodeDecimal128(v bson.Decimal128, k K) error {
	return c.childEncoder(k).single().encodeDecimal128(v)
}

func (c *KeyedEncodingContainer[K]) EncodeTimestamp(v bson.Timestamp, k K) error {
	return c.childEncoder(k).single().encodeTimestamp(v)
}

func (c *KeyedEncodingContainer[K]) EncodeRegex(v bson.Regex, k K) error {
	return c.childEncoder(k).single().encodeRegex(v)
}

// EncodeDateTime encodes v under k using the container's Date strategy.
func (c *KeyedEncodingContainer[K]) EncodeDateTime(v time.Time, k K) error {
	child := c.childEncoder(k)
	return child.opts.Date.encode(child, v)
}

// EncodeUUID encodes v under k using the container's UUID strategy.
func (c *KeyedEncodingContainer[K]) EncodeUUID(v uuid.UUID, k K) error {
	child := c.childEncoder(k)
	return child.opts.UUID.encode(child, v)
}

// EncodeBytes encodes v under k using the container's Data strategy.
func (c *KeyedEncodingContainer[K]) EncodeBytes(v []byte, k K) error {
	child := c.childEncoder(k)
	return child.opts.Data.encode(child, v)
}

// EncodeEncodable encodes v, which implements Encodable, under k.
func (c *KeyedEncodingContainer[K]) EncodeEncodable(v Encodable, k K) error {
	return v.EncodeBSON(c.childEncoder(k))
}

// NestedKeyedContainer starts a nested document container under k.
func (c *KeyedEncodingContainer[K]) NestedKeyedContainer(k K) (*KeyedEncodingContainer[CodingKey], error) {
	return c.childEncoder(k).Keyed()
}

// NestedUnkeyedContainer starts a nested array container under k.
func (c *KeyedEncodingContainer[K]) NestedUnkeyedContainer(k K) (*UnkeyedEncodingContainer, error) {
	return c.childEncoder(k).Unkeyed()
}

// SuperEncoder returns a referencing encoder reserved at k, for encoding a
// base type's fields into a nested slot of the current container (the
// class-inheritance encoding pattern).
func (c *KeyedEncodingContainer[K]) SuperEncoder(k K) *ValueEncoder {
	return c.childEncoder(k)
}

// KeyedDecodingContainer decodes values under named keys of type K.
type KeyedDecodingContainer[K CodingKey] struct {
	dec *ValueDecoder
	doc *bson.Document
}

// Contains reports whether k is present in the container.
func (c *KeyedDecodingContainer[K]) Contains(k K) bool {
	return c.doc.Has(k.StringValue())
}

// DecodeNil reports whether k is present and holds a BSON null.
func (c *KeyedDecodingContainer[K]) DecodeNil(k K) bool {
	v, ok := c.doc.Get(k.StringValue())
	if !ok {
		return false
	}

	_, isNull := v.(bson.Null)
	return isNull
}

func (c *KeyedDecodingContainer[K]) childDecoder(k K) (*ValueDecoder, error) {
	v, ok := c.doc.Get(k.StringValue())
	if !ok {
		return nil, newCodecError(c.dec.path.child(k), bson.ErrKeyNotFound, "key %q not found", k.StringValue())
	}

	return &ValueDecoder{path: c.dec.path.child(k), opts: c.dec.opts, value: v}, nil
}

func (c *KeyedDecodingContainer[K]) DecodeDouble(k K) (float64, error) {
	cd, err := c.childDecoder(k)
	if err != nil {
		return 0, err
	}

	return cd.single().decodeDouble()
}

func (c *KeyedDecodingContainer[K]) DecodeString(k K) (string, error) {
	cd, err := c.childDecoder(k)
	if err != nil {
		return "", err
	}

	return cd.single().decodeString()
}

func (c *KeyedDecodingContainer[K]) DecodeBool(k K) (bool, error) {
	cd, err := c.childDecoder(k)
	if err != nil {
		return false, err
	}

	return cd.single().decodeBool()
}

func (c *KeyedDecodingContainer[K]) DecodeInt32(k K) (int32, error) {
	cd, err := c.childDecoder(k)
	if err != nil {
		return 0, err
	}

	return cd.single().decodeInt32()
}

func (c *KeyedDecodingContainer[K]) DecodeInt64(k K) (int64, error) {
	cd, err := c.childDecoder(k)
	if err != nil {
		return 0, err
	}

	return cd.single().decodeInt64()
}

func (c *KeyedDecodingContainer[K]) DecodeBinary(k K) (bson.Binary, error) {
	cd, err := c.childDecoder(k)
	if err != nil {
		return bson.Binary{}, err
	}

	return cd.single().decodeBinary()
}

func (c *KeyedDecodingContainer[K]) DecodeObjectID(k K) (bson.ObjectID, error) {
	cd, err := c.childDecoder(k)
	if err != nil {
		return bson.ObjectID{}, err
	}

	return cd.single().decodeObjectID()
}

func (c *KeyedDecodingContainer[K]) DecodeDecimal128(k K) (bson.Decimal128, error) {
	cd, err := c.childDecoder(k)
	if err != nil {
		return bson.Decimal128{}, err
	}

	return cd.single().decodeDecimal128()
}

func (c *KeyedDecodingContainer[K]) DecodeTimestamp(k K) (bson.Timestamp, error) {
	cd, err := c.childDecoder(k)
	if err != nil {
		return bson.Timestamp{}, err
	}

	return cd.single().decodeTimestamp()
}

func (c *KeyedDecodingContainer[K]) DecodeRegex(k K) (bson.Regex, error) {
	cd, err := c.childDecoder(k)
	if err != nil {
		return bson.Regex{}, err
	}

	return cd.single().decodeRegex()
}

// DecodeDateTime decodes the value at k using the container's Date
// strategy.
func (c *KeyedDecodingContainer[K]) DecodeDateTime(k K) (time.Time, error) {
	cd, err := c.childDecoder(k)
	if err != nil {
		return time.Time{}, err
	}

	return cd.opts.Date.decode(cd)
}

// DecodeUUID decodes the value at k using the container's UUID strategy.
func (c *KeyedDecodingContainer[K]) DecodeUUID(k K) (uuid.UUID, error) {
	cd, err := c.childDecoder(k)
	if err != nil {
		return uuid.UUID{}, err
	}

	return cd.opts.UUID.decode(cd)
}

// DecodeBytes decodes the value at k using the container's Data strategy.
func (c *KeyedDecodingContainer[K]) DecodeBytes(k K) ([]byte, error) {
	cd, err := c.childDecoder(k)
	if err != nil {
		return nil, err
	}

	return cd.opts.Data.decode(cd)
}

// DecodeDecodable decodes the value at k into v, which implements Decodable.
func (c *KeyedDecodingContainer[K]) DecodeDecodable(v Decodable, k K) error {
	cd, err := c.childDecoder(k)
	if err != nil {
		return err
	}

	return v.DecodeBSON(cd)
}

// NestedKeyedContainer views the value at k as a nested document container.
func (c *KeyedDecodingContainer[K]) NestedKeyedContainer(k K) (*KeyedDecodingContainer[CodingKey], error) {
	cd, err := c.childDecoder(k)
	if err != nil {
		return nil, err
	}

	return cd.Keyed()
}

// NestedUnkeyedContainer views the value at k as a nested array container.
func (c *KeyedDecodingContainer[K]) NestedUnkeyedContainer(k K) (*UnkeyedDecodingContainer, error) {
	cd, err := c.childDecoder(k)
	if err != nil {
		return nil, err
	}

	return cd.Unkeyed()
}

// SuperDecoder returns the decoder focused at k, the dual of SuperEncoder.
func (c *KeyedDecodingContainer[K]) SuperDecoder(k K) (*ValueDecoder, error) {
	return c.childDecoder(k)
}
