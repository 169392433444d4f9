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
	"encoding/base64"
	"time"

	"github.com/google/uuid"

	"github.com/ferrotype-io/bson"
)

// dateKind enumerates how a time.Time is mapped to and from a BSON value.
// The zero value, dateUnset, lets [Options] tell "not overridden" apart
// from an explicit choice when merging encoder/decoder options.
type dateKind int

const (
	dateUnset dateKind = iota
	dateDeferredToNative
	dateBSONDateTime // default
	dateMillisecondsSince1970
	dateSecondsSince1970
	dateISO8601
	dateFormatted
	dateCustom
)

// DateStrategy configures how Date values (time.Time) are encoded and
// decoded. The zero value means "inherit from the parent/default".
type DateStrategy struct {
	kind     dateKind
	layout   string
	encodeFn func(*ValueEncoder, time.Time) error
	decodeFn func(*ValueDecoder) (time.Time, error)
}

// DateDeferredToNative encodes/decodes time.Time using the host language's
// native representation, i.e. a time.Time is stored and read back as-is
// without an intermediate transform. Identical to DateBSONDateTime in this
// implementation since Go's native date representation already is
// time.Time; kept as a distinct option for bijective-pairing symmetry with
// the source design.
var DateDeferredToNative = DateStrategy{kind: dateDeferredToNative}

// DateBSONDateTime is the default: a time.Time is stored as a BSON UTC
// datetime element (tag 0x09).
var DateBSONDateTime = DateStrategy{kind: dateBSONDateTime}

// DateMillisecondsSince1970 stores a time.Time as an int64 count of
// milliseconds since the Unix epoch.
var DateMillisecondsSince1970 = DateStrategy{kind: dateMillisecondsSince1970}

// DateSecondsSince1970 stores a time.Time as a float64 count of seconds
// since the Unix epoch.
var DateSecondsSince1970 = DateStrategy{kind: dateSecondsSince1970}

// DateISO8601 stores a time.Time as an RFC 3339 / ISO 8601 string.
var DateISO8601 = DateStrategy{kind: dateISO8601}

// DateFormatted stores a time.Time as a string formatted with layout (in
// the time.Format sense).
func DateFormatted(layout string) DateStrategy {
	return DateStrategy{kind: dateFormatted, layout: layout}
}

// DateCustom stores a time.Time using caller-supplied encode/decode
// functions, each given the field's [ValueEncoder] or [ValueDecoder].
func DateCustom(encode func(*ValueEncoder, time.Time) error, decode func(*ValueDecoder) (time.Time, error)) DateStrategy {
	return DateStrategy{kind: dateCustom, encodeFn: encode, decodeFn: decode}
}

func (s DateStrategy) encode(e *ValueEncoder, t time.Time) error {
	switch s.kind {
	case dateDeferredToNative, dateBSONDateTime, dateUnset:
		return e.single().encodeDateTime(t)
	case dateMillisecondsSince1970:
		return e.single().encodeInt64(t.UnixMilli())
	case dateSecondsSince1970:
		return e.single().encodeDouble(float64(t.UnixMilli()) / 1000)
	case dateISO8601:
		return e.single().encodeString(t.UTC().Format(time.RFC3339Nano))
	case dateFormatted:
		return e.single().encodeString(t.UTC().Format(s.layout))
	case dateCustom:
		return s.encodeFn(e, t)
	default:
		return e.single().encodeDateTime(t)
	}
}

func (s DateStrategy) decode(d *ValueDecoder) (time.Time, error) {
	switch s.kind {
	case dateDeferredToNative, dateBSONDateTime, dateUnset:
		return d.single().decodeDateTime()
	case dateMillisecondsSince1970:
		ms, err := d.single().decodeInt64()
		if err != nil {
			return time.Time{}, err
		}

		return time.UnixMilli(ms).UTC(), nil
	case dateSecondsSince1970:
		secs, err := d.single().decodeDouble()
		if err != nil {
			return time.Time{}, err
		}

		return bson.SecondsToDateTime(secs), nil
	case dateISO8601:
		str, err := d.single().decodeString()
		if err != nil {
			return time.Time{}, err
		}

		return time.Parse(time.RFC3339Nano, str)
	case dateFormatted:
		str, err := d.single().decodeString()
		if err != nil {
			return time.Time{}, err
		}

		return time.Parse(s.layout, str)
	case dateCustom:
		return s.decodeFn(d)
	default:
		return d.single().decodeDateTime()
	}
}

// uuidKind enumerates how a uuid.UUID is mapped to and from a BSON value.
type uuidKind int

const (
	uuidUnset uuidKind = iota
	uuidDeferredToNative
	uuidBinary // default, subtype 0x04
)

// UUIDStrategy configures how uuid.UUID values are encoded and decoded.
type UUIDStrategy struct {
	kind uuidKind
}

// UUIDDeferredToNative stores a uuid.UUID as its native textual form (a
// BSON string), rather than the binary subtype 0x04 encoding.
var UUIDDeferredToNative = UUIDStrategy{kind: uuidDeferredToNative}

// UUIDBinary is the default: a uuid.UUID is stored as 16-byte
// [bson.Binary] with subtype 0x04.
var UUIDBinary = UUIDStrategy{kind: uuidBinary}

func (s UUIDStrategy) encode(e *ValueEncoder, v uuid.UUID) error {
	if s.kind == uuidDeferredToNative {
		return e.single().encodeString(v.String())
	}

	b := v[:]
	data := make([]byte, len(b))
	copy(data, b)

	return e.single().encodeBinary(bson.Binary{Subtype: bson.BinaryUUID, B: data})
}

func (s UUIDStrategy) decode(d *ValueDecoder) (uuid.UUID, error) {
	if s.kind == uuidDeferredToNative {
		str, err := d.single().decodeString()
		if err != nil {
			return uuid.UUID{}, err
		}

		return uuid.Parse(str)
	}

	bin, err := d.single().decodeBinary()
	if err != nil {
		return uuid.UUID{}, err
	}

	return uuid.FromBytes(bin.B)
}

// dataKind enumerates how a []byte is mapped to and from a BSON value.
type dataKind int

const (
	dataUnset dataKind = iota
	dataDeferredToNative
	dataBinary // default, subtype 0x00
	dataBase64
	dataCustom
)

// DataStrategy configures how raw byte buffers are encoded and decoded.
type DataStrategy struct {
	kind     dataKind
	encodeFn func(*ValueEncoder, []byte) error
	decodeFn func(*ValueDecoder) ([]byte, error)
}

// DataDeferredToNative stores a []byte as a base64 BSON string, the
// encoding Go's own json/text codecs default to for byte slices.
var DataDeferredToNative = DataStrategy{kind: dataDeferredToNative}

// DataBinary is the default: a []byte is stored as generic (subtype 0x00)
// [bson.Binary].
var DataBinary = DataStrategy{kind: dataBinary}

// DataBase64 stores a []byte as a base64-encoded BSON string.
var DataBase64 = DataStrategy{kind: dataBase64}

// DataCustom stores a []byte using caller-supplied encode/decode functions.
func DataCustom(encode func(*ValueEncoder, []byte) error, decode func(*ValueDecoder) ([]byte, error)) DataStrategy {
	return DataStrategy{kind: dataCustom, encodeFn: encode, decodeFn: decode}
}

func (s DataStrategy) encode(e *ValueEncoder, v []byte) error {
	switch s.kind {
	case dataDeferredToNative, dataBase64:
		return e.single().encodeString(base64.StdEncoding.EncodeToString(v))
	case dataCustom:
		return s.encodeFn(e, v)
	default:
		data := make([]byte, len(v))
		copy(data, v)

		return e.single().encodeBinary(bson.Binary{Subtype: bson.BinaryGeneric, B: data})
	}
}

func (s DataStrategy) decode(d *ValueDecoder) ([]byte, error) {
	switch s.kind {
	case dataDeferredToNative, dataBase64:
		str, err := d.single().decodeString()
		if err != nil {
			return nil, err
		}

		return base64.StdEncoding.DecodeString(str)
	case dataCustom:
		return s.decodeFn(d)
	default:
		bin, err := d.single().decodeBinary()
		if err != nil {
			return nil, err
		}

		return bin.B, nil
	}
}

// Options carries the coding strategies threaded through an
// Encoder/Decoder. The zero value of each field means "not explicitly
// set"; [Options.merge] lets an override copy win only on fields it
// actually sets, per the spec's "explicit overrides win" merge rule.
type Options struct {
	Date DateStrategy
	UUID UUIDStrategy
	Data DataStrategy
}

// defaultOptions returns the strategy defaults named in the design:
// bsonDateTime, binary (0x04), binary (0x00).
func defaultOptions() Options {
	return Options{Date: DateBSONDateTime, UUID: UUIDBinary, Data: DataBinary}
}

// merge returns o with any field explicitly set on override replacing o's.
func (o Options) merge(override Options) Options {
	if override.Date.kind != dateUnset {
		o.Date = override.Date
	}

	if override.UUID.kind != uuidUnset {
		o.UUID = override.UUID
	}

	if override.Data.kind != dataUnset {
		o.Data = override.Data
	}

	return o
}
