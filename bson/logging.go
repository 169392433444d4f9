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
	"log/slog"
	"math"
	"strconv"
	"time"
)

// logDepthLimit caps recursion when rendering a BSON value for logging, so
// a cyclical or pathologically deep document can't hang a log call.
const logDepthLimit = 20

// slogValue returns a compact [slog.Value] representation of any BSON
// value. Some information is lost in the conversion (int32 and int64 both
// render as integers, for instance); it is meant for structured log
// output, not round-tripping.
func slogValue(v any, depth int) slog.Value {
	switch v := v.(type) {
	case *Document:
		if depth > logDepthLimit {
			return slog.StringValue("Document<...>")
		}

		attrs := make([]slog.Attr, len(v.fields))
		for i, f := range v.fields {
			attrs[i] = slog.Attr{Key: f.key, Value: slogValue(f.value, depth+1)}
		}

		return slog.GroupValue(attrs...)

	case RawDocument:
		return slog.StringValue("RawDocument<" + strconv.Itoa(len(v)) + ">")

	case *Array:
		if depth > logDepthLimit {
			return slog.StringValue("Array<...>")
		}

		attrs := make([]slog.Attr, len(v.values))
		for i, e := range v.values {
			attrs[i] = slog.Attr{Key: strconv.Itoa(i), Value: slogValue(e, depth+1)}
		}

		return slog.GroupValue(attrs...)

	case RawArray:
		return slog.StringValue("RawArray<" + strconv.Itoa(len(v)) + ">")

	case float64:
		switch {
		case math.IsNaN(v):
			return slog.StringValue("NaN")
		case math.IsInf(v, 1):
			return slog.StringValue("+Inf")
		case math.IsInf(v, -1):
			return slog.StringValue("-Inf")
		default:
			return slog.Float64Value(v)
		}

	case string:
		return slog.StringValue(v)

	case Binary:
		return slog.StringValue(fmt.Sprintf("Binary(%s, %d bytes)", v.Subtype, len(v.B)))

	case Undefined:
		return slog.StringValue("undefined")

	case ObjectID:
		return slog.StringValue("ObjectID(" + v.Hex() + ")")

	case bool:
		return slog.BoolValue(v)

	case time.Time:
		return slog.TimeValue(v)

	case Null:
		return slog.StringValue("null")

	case Regex:
		return slog.StringValue("/" + v.Pattern + "/" + v.Options)

	case DBPointer:
		return slog.StringValue(fmt.Sprintf("DBPointer(%s, %s)", v.Ref, v.ID.Hex()))

	case Code:
		return slog.StringValue(fmt.Sprintf("Code(%d bytes)", len(v)))

	case Symbol:
		return slog.StringValue(string(v))

	case CodeWithScope:
		return slog.StringValue(fmt.Sprintf("CodeWithScope(%d bytes, scope=%d fields)", len(v.Code), v.Scope.Len()))

	case int32:
		return slog.Int64Value(int64(v))

	case Timestamp:
		return slog.StringValue(fmt.Sprintf("Timestamp(t=%d, i=%d)", v.Seconds, v.Increment))

	case int64:
		return slog.Int64Value(v)

	case Decimal128:
		return slog.StringValue(v.String())

	case MinKey:
		return slog.StringValue("MinKey")

	case MaxKey:
		return slog.StringValue("MaxKey")

	default:
		panic(fmt.Sprintf("bson: slogValue: invalid type %T", v))
	}
}

// BinarySubtype's String is used by slogValue for Binary rendering.
func (s BinarySubtype) String() string {
	switch s {
	case BinaryGeneric:
		return "generic"
	case BinaryFunction:
		return "function"
	case BinaryGenericOld:
		return "generic (old)"
	case BinaryUUIDOld:
		return "UUID (old)"
	case BinaryUUID:
		return "UUID"
	case BinaryMD5:
		return "MD5"
	case BinaryEncrypted:
		return "encrypted"
	default:
		return fmt.Sprintf("subtype(%#02x)", byte(s))
	}
}
