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
	"errors"
	"fmt"
	"time"

	"github.com/ferrotype-io/bson"
)

// SingleValueEncodingContainer encodes exactly one primitive value,
// including nil, at the encoder's current coding path.
type SingleValueEncodingContainer struct {
	enc *ValueEncoder
}

func (c *SingleValueEncodingContainer) encodeNil() error           { return c.enc.commit(bson.Null{}) }
func (c *SingleValueEncodingContainer) encodeDouble(v float64) error { return c.enc.commit(v) }
func (c *SingleValueEncodingContainer) encodeString(v string) error { return c.enc.commit(v) }
func (c *SingleValueEncodingContainer) encodeBool(v bool) error     { return c.enc.commit(v) }
func (c *SingleValueEncodingContainer) encodeInt32(v int32) error   { return c.enc.commit(v) }
func (c *SingleValueEncodingContainer) encodeInt64(v int64) error   { return c.enc.commit(v) }
func (c *SingleValueEncodingContainer) encodeBinary(v bson.Binary) error { return c.enc.commit(v) }
func (c *SingleValueEncodingContainer) encodeObjectID(v bson.ObjectID) error { return c.enc.commit(v) }
func (c *SingleValueEncodingContainer) encodeDecimal128(v bson.Decimal128) error {
	return c.enc.commit(v)
}
func (c *SingleValueEncodingContainer) encodeTimestamp(v bson.Timestamp) error { return c.enc.commit(v) }
func (c *SingleValueEncodingContainer) encodeRegex(v bson.Regex) error         { return c.enc.commit(v) }

// encodeDateTime commits a time.Time as a native BSON datetime element,
// bypassing any Date strategy. Callers that need a configurable strategy go
// through DateStrategy.encode, which calls this for its default case.
func (c *SingleValueEncodingContainer) encodeDateTime(v time.Time) error { return c.enc.commit(v) }

// SingleValueDecodingContainer decodes exactly one primitive value,
// including nil, from the decoder's current focus.
type SingleValueDecodingContainer struct {
	dec *ValueDecoder
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}

	return fmt.Sprintf("%T", v)
}

func (c *SingleValueDecodingContainer) decodeNil() bool {
	if c.dec.value == nil {
		return true
	}

	_, ok := c.dec.value.(bson.Null)
	return ok
}

func (c *SingleValueDecodingContainer) decodeDouble() (float64, error) {
	f, err := bson.ToFloat64(c.dec.value)
	if err != nil {
		return 0, newTypeMismatch(c.dec.path, "double", typeName(c.dec.value))
	}

	return f, nil
}

func (c *SingleValueDecodingContainer) decodeString() (string, error) {
	s, ok := c.dec.value.(string)
	if !ok {
		return "", newTypeMismatch(c.dec.path, "string", typeName(c.dec.value))
	}

	return s, nil
}

func (c *SingleValueDecodingContainer) decodeBool() (bool, error) {
	b, ok := c.dec.value.(bool)
	if !ok {
		return false, newTypeMismatch(c.dec.path, "bool", typeName(c.dec.value))
	}

	return b, nil
}

func (c *SingleValueDecodingContainer) decodeInt32() (int32, error) {
	n, err := bson.ToInt32(c.dec.value)
	if err != nil {
		return 0, wrapNumeric(c.dec.path, err, "int32", c.dec.value)
	}

	return n, nil
}

func (c *SingleValueDecodingContainer) decodeInt64() (int64, error) {
	n, err := bson.ToInt64(c.dec.value)
	if err != nil {
		return 0, wrapNumeric(c.dec.path, err, "int64", c.dec.value)
	}

	return n, nil
}

func (c *SingleValueDecodingContainer) decodeBinary() (bson.Binary, error) {
	b, ok := c.dec.value.(bson.Binary)
	if !ok {
		return bson.Binary{}, newTypeMismatch(c.dec.path, "binary", typeName(c.dec.value))
	}

	return b, nil
}

func (c *SingleValueDecodingContainer) decodeObjectID() (bson.ObjectID, error) {
	id, ok := c.dec.value.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, newTypeMismatch(c.dec.path, "objectId", typeName(c.dec.value))
	}

	return id, nil
}

func (c *SingleValueDecodingContainer) decodeDecimal128() (bson.Decimal128, error) {
	d, ok := c.dec.value.(bson.Decimal128)
	if !ok {
		return bson.Decimal128{}, newTypeMismatch(c.dec.path, "decimal128", typeName(c.dec.value))
	}

	return d, nil
}

func (c *SingleValueDecodingContainer) decodeTimestamp() (bson.Timestamp, error) {
	ts, ok := c.dec.value.(bson.Timestamp)
	if !ok {
		return bson.Timestamp{}, newTypeMismatch(c.dec.path, "timestamp", typeName(c.dec.value))
	}

	return ts, nil
}

func (c *SingleValueDecodingContainer) decodeRegex() (bson.Regex, error) {
	r, ok := c.dec.value.(bson.Regex)
	if !ok {
		return bson.Regex{}, newTypeMismatch(c.dec.path, "regex", typeName(c.dec.value))
	}

	return r, nil
}

// decodeDateTime requires the focused value to literally be a BSON
// datetime (time.Time); it deliberately does not fall back to any numeric
// coercion, so a field declared as a Date never silently consumes a Double
// or Int64 meant for something else.
func (c *SingleValueDecodingContainer) decodeDateTime() (time.Time, error) {
	t, ok := c.dec.value.(time.Time)
	if !ok {
		return time.Time{}, newTypeMismatch(c.dec.path, "datetime", typeName(c.dec.value))
	}

	return t, nil
}

func wrapNumeric(p path, err error, target string, found any) error {
	var be *bson.Error
	if errors.As(err, &be) && be.Kind == bson.ErrNumberOutOfRange {
		return newCodecError(p, bson.ErrNumberOutOfRange, "%s does not fit in %s", typeName(found), target)
	}

	return newTypeMismatch(p, target, typeName(found))
}
