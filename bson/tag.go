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
	"fmt"
	"time"
)

// tag is the single byte preceding every document element that identifies its BSON type.
type tag byte

const (
	tagDouble         = tag(0x01)
	tagString         = tag(0x02)
	tagDocument       = tag(0x03)
	tagArray          = tag(0x04)
	tagBinary         = tag(0x05)
	tagUndefined      = tag(0x06)
	tagObjectID       = tag(0x07)
	tagBool           = tag(0x08)
	tagDateTime       = tag(0x09)
	tagNull           = tag(0x0a)
	tagRegex          = tag(0x0b)
	tagDBPointer      = tag(0x0c)
	tagCode           = tag(0x0d)
	tagSymbol         = tag(0x0e)
	tagCodeWithScope  = tag(0x0f)
	tagInt32          = tag(0x10)
	tagTimestamp      = tag(0x11)
	tagInt64          = tag(0x12)
	tagDecimal128     = tag(0x13)
	tagMinKey         = tag(0xff)
	tagMaxKey         = tag(0x7f)
)

// String returns the BSON spec name for the tag, or a hex fallback for unknown tags.
func (t tag) String() string {
	switch t {
	case tagDouble:
		return "double"
	case tagString:
		return "string"
	case tagDocument:
		return "document"
	case tagArray:
		return "array"
	case tagBinary:
		return "binary"
	case tagUndefined:
		return "undefined"
	case tagObjectID:
		return "objectId"
	case tagBool:
		return "bool"
	case tagDateTime:
		return "dateTime"
	case tagNull:
		return "null"
	case tagRegex:
		return "regex"
	case tagDBPointer:
		return "dbPointer"
	case tagCode:
		return "code"
	case tagSymbol:
		return "symbol"
	case tagCodeWithScope:
		return "codeWithScope"
	case tagInt32:
		return "int32"
	case tagTimestamp:
		return "timestamp"
	case tagInt64:
		return "int64"
	case tagDecimal128:
		return "decimal128"
	case tagMinKey:
		return "minKey"
	case tagMaxKey:
		return "maxKey"
	default:
		return fmt.Sprintf("tag(%#02x)", byte(t))
	}
}

// tagOf returns the wire tag for a valid BSON value. It panics for invalid types.
func tagOf(v any) tag {
	switch v.(type) {
	case float64:
		return tagDouble
	case string:
		return tagString
	case *Document, RawDocument:
		return tagDocument
	case *Array, RawArray:
		return tagArray
	case Binary:
		return tagBinary
	case Undefined:
		return tagUndefined
	case ObjectID:
		return tagObjectID
	case bool:
		return tagBool
	case time.Time:
		return tagDateTime
	default:
	}

	switch v.(type) {
	case Null:
		return tagNull
	case Regex:
		return tagRegex
	case DBPointer:
		return tagDBPointer
	case Code:
		return tagCode
	case Symbol:
		return tagSymbol
	case CodeWithScope:
		return tagCodeWithScope
	case int32:
		return tagInt32
	case Timestamp:
		return tagTimestamp
	case int64:
		return tagInt64
	case Decimal128:
		return tagDecimal128
	case MinKey:
		return tagMinKey
	case MaxKey:
		return tagMaxKey
	}

	panic(fmt.Sprintf("bson: invalid type %T", v))
}
