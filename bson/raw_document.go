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
	"encoding/binary"
	"log/slog"

	"github.com/ferrotype-io/bson/internal/lazyerrors"
	"github.com/ferrotype-io/bson/internal/must"
)

// RawDocument is a BSON document in its binary wire encoding. It usually
// references a slice of a larger buffer rather than holding its own copy.
type RawDocument []byte

// decodeMode controls how much work RawDocument/RawArray decoding does.
type decodeMode int

const (
	// decodeShallow decodes only top-level fields; nested documents and
	// arrays are kept as RawDocument/RawArray subslices.
	decodeShallow decodeMode = iota

	// decodeDeep recursively decodes nested documents and arrays too.
	decodeDeep

	// decodeCheckOnly validates structure without building any *Document/*Array.
	decodeCheckOnly
)

// FindRawDocument returns the first BSON document found at the start of b.
//
// The returned RawDocument is not validated beyond its length prefix and
// terminating byte; callers that need a guarantee should call Validate or
// Decode.
func FindRawDocument(b []byte) RawDocument {
	if len(b) < minDocumentLen {
		return nil
	}

	dl := int(binary.LittleEndian.Uint32(b))
	if dl < minDocumentLen || len(b) < dl {
		return nil
	}

	if b[dl-1] != 0 {
		return nil
	}

	return b[:dl]
}

// LogValue implements [log/slog.LogValuer], rendering raw compactly without
// decoding it (cheap enough to call on every log statement, unlike Decode).
func (raw RawDocument) LogValue() slog.Value {
	return slogValue(raw, 0)
}

// Decode decodes raw, which must hold exactly one BSON document with no
// trailing bytes. Nested documents and arrays are returned as
// RawDocument/RawArray subslices of raw, without copying.
func (raw RawDocument) Decode() (*Document, error) {
	res, err := raw.decode(decodeShallow)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// DecodeDeep decodes raw, recursively decoding every nested document and array.
func (raw RawDocument) DecodeDeep() (*Document, error) {
	res, err := raw.decode(decodeDeep)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// Validate checks that raw contains a single structurally valid BSON
// document, without allocating a *Document.
func (raw RawDocument) Validate() error {
	_, err := raw.decode(decodeCheckOnly)
	if err != nil {
		return lazyerrors.Error(err)
	}

	return nil
}

func (raw RawDocument) decode(mode decodeMode) (*Document, error) {
	bl := len(raw)
	if bl < minDocumentLen {
		return nil, lazyerrors.Errorf("len(raw) = %d: %w", bl, ErrDecodeShortInput)
	}

	dl := int(binary.LittleEndian.Uint32(raw))
	if dl != bl {
		return nil, lazyerrors.Errorf("len(raw) = %d, document length = %d: %w", bl, dl, ErrDecodeInvalidInput)
	}

	if last := raw[bl-1]; last != 0 {
		return nil, lazyerrors.Errorf("last byte = %d: %w", last, ErrMissingTerminator)
	}

	var res *Document
	if mode != decodeCheckOnly {
		res = MakeDocument(1)
	}

	offset := 4

	for offset != bl-1 {
		if err := decodeCheckOffset(raw, offset, 1); err != nil {
			return nil, lazyerrors.Error(err)
		}

		t := tag(raw[offset])
		offset++

		if err := decodeCheckOffset(raw, offset, 1); err != nil {
			return nil, lazyerrors.Error(err)
		}

		name, err := DecodeCString(raw[offset:])
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		offset += SizeCString(name)

		v, n, err := decodeTaggedValue(t, raw[offset:], mode)
		if err != nil {
			return nil, wrapDecodeErr(offset, err)
		}

		offset += n

		if mode != decodeCheckOnly {
			must.NoError(res.add(name, v))
		}
	}

	return res, nil
}

// decodeTaggedValue decodes a single value of kind t from the start of b,
// returning the value (nil in decodeCheckOnly mode) and the number of bytes
// consumed.
func decodeTaggedValue(t tag, b []byte, mode decodeMode) (any, int, error) {
	switch t {
	case tagDouble:
		v, err := DecodeFloat64(b)
		return v, SizeFloat64, err

	case tagString:
		v, err := DecodeString(b)
		return v, SizeString(v), err

	case tagDocument:
		l, err := peekDocumentLen(b)
		if err != nil {
			return nil, 0, err
		}

		sub := RawDocument(b[:l])

		switch mode {
		case decodeDeep:
			v, err := sub.decode(decodeDeep)
			return v, l, err
		case decodeCheckOnly:
			_, err := sub.decode(decodeCheckOnly)
			return nil, l, err
		default:
			return sub, l, nil
		}

	case tagArray:
		l, err := peekDocumentLen(b)
		if err != nil {
			return nil, 0, err
		}

		sub := RawArray(b[:l])

		switch mode {
		case decodeDeep:
			v, err := sub.decode(decodeDeep)
			return v, l, err
		case decodeCheckOnly:
			_, err := sub.decode(decodeCheckOnly)
			return nil, l, err
		default:
			return sub, l, nil
		}

	case tagBinary:
		v, err := DecodeBinary(b)
		return v, SizeBinary(v), err

	case tagUndefined:
		return Undefined{}, 0, nil

	case tagObjectID:
		v, err := DecodeObjectID(b)
		return v, SizeObjectID, err

	case tagBool:
		v, err := DecodeBool(b)
		return v, SizeBool, err

	case tagDateTime:
		v, err := DecodeDateTime(b)
		return v, SizeDateTime, err

	case tagNull:
		return Null{}, 0, nil

	case tagRegex:
		v, err := DecodeRegex(b)
		return v, SizeRegex(v), err

	case tagDBPointer:
		v, err := DecodeDBPointer(b)
		return v, SizeDBPointer(v), err

	case tagCode:
		v, err := DecodeCode(b)
		return v, SizeCode(v), err

	case tagSymbol:
		v, err := DecodeSymbol(b)
		return v, SizeSymbol(v), err

	case tagCodeWithScope:
		v, err := DecodeCodeWithScope(b)
		if err != nil {
			return nil, 0, err
		}

		return v, SizeCodeWithScope(v), nil

	case tagInt32:
		v, err := DecodeInt32(b)
		return v, SizeInt32, err

	case tagTimestamp:
		v, err := DecodeTimestamp(b)
		return v, SizeTimestamp, err

	case tagInt64:
		v, err := DecodeInt64(b)
		return v, SizeInt64, err

	case tagDecimal128:
		v, err := DecodeDecimal128(b)
		return v, SizeDecimal128, err

	case tagMinKey:
		return MinKey{}, 0, nil

	case tagMaxKey:
		return MaxKey{}, 0, nil

	default:
		return nil, 0, lazyerrors.Errorf("unexpected tag %s: %w", t, ErrDecodeInvalidInput)
	}
}

// peekDocumentLen reads and validates the int32 length prefix of a nested
// document/array starting at the beginning of b.
func peekDocumentLen(b []byte) (int, error) {
	if err := decodeCheckOffset(b, 0, 4); err != nil {
		return 0, err
	}

	l := int(int32(binary.LittleEndian.Uint32(b)))
	if l < minDocumentLen {
		return 0, ErrDecodeInvalidInput
	}

	if err := decodeCheckOffset(b, 0, l); err != nil {
		return 0, err
	}

	return l, nil
}

// decodeCheckOffset verifies that b has at least size+1 bytes available
// starting at offset (the +1 accounts for the trailing terminator byte any
// nested document/array must still have room for).
func decodeCheckOffset(b []byte, offset, size int) error {
	if len(b[offset:]) < size+1 {
		return lazyerrors.Errorf("offset = %d, size = %d: %w", offset, size, ErrDecodeShortInput)
	}

	return nil
}
