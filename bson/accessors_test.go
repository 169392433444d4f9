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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessorsMatchOwnVariant(t *testing.T) {
	t.Parallel()

	n, ok := AsInt32(int32(1))
	assert.True(t, ok)
	assert.Equal(t, int32(1), n)

	n64, ok := AsInt64(int64(1))
	assert.True(t, ok)
	assert.Equal(t, int64(1), n64)

	f, ok := AsDouble(float64(1.5))
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	s, ok := AsString("hi")
	assert.True(t, ok)
	assert.Equal(t, "hi", s)

	doc := NewDocument("a", int32(1))
	gotDoc, ok := AsDocument(doc)
	assert.True(t, ok)
	assert.Same(t, doc, gotDoc)

	arr := NewArray(int32(1))
	gotArr, ok := AsArray(arr)
	assert.True(t, ok)
	assert.Same(t, arr, gotArr)

	b, ok := AsBool(true)
	assert.True(t, ok)
	assert.True(t, b)

	now := time.Now().UTC()
	dt, ok := AsDateTime(now)
	assert.True(t, ok)
	assert.True(t, now.Equal(dt))

	bin := Binary{Subtype: BinaryGeneric, B: []byte("x")}
	gotBin, ok := AsBinary(bin)
	assert.True(t, ok)
	assert.Equal(t, bin, gotBin)

	id := NewObjectID()
	gotID, ok := AsObjectID(id)
	assert.True(t, ok)
	assert.Equal(t, id, gotID)

	dec, err := ParseDecimal128("1.5")
	assert.NoError(t, err)
	gotDec, ok := AsDecimal128(dec)
	assert.True(t, ok)
	assert.Equal(t, dec, gotDec)

	re, err := NewRegex("abc", "i")
	assert.NoError(t, err)
	gotRe, ok := AsRegex(re)
	assert.True(t, ok)
	assert.Equal(t, re, gotRe)

	code := Code("function() {}")
	gotCode, ok := AsCode(code)
	assert.True(t, ok)
	assert.Equal(t, code, gotCode)

	cws := CodeWithScope{Code: "function() {}", Scope: NewDocument()}
	gotCWS, ok := AsCodeWithScope(cws)
	assert.True(t, ok)
	assert.Equal(t, cws, gotCWS)

	sym := Symbol("sym")
	gotSym, ok := AsSymbol(sym)
	assert.True(t, ok)
	assert.Equal(t, sym, gotSym)

	ptr := DBPointer{Ref: "c", ID: id}
	gotPtr, ok := AsDBPointer(ptr)
	assert.True(t, ok)
	assert.Equal(t, ptr, gotPtr)

	ts := Timestamp{Increment: 2, Seconds: 1}
	gotTS, ok := AsTimestamp(ts)
	assert.True(t, ok)
	assert.Equal(t, ts, gotTS)
}

func TestAccessorsRejectOtherVariants(t *testing.T) {
	t.Parallel()

	_, ok := AsInt32(int64(1))
	assert.False(t, ok)

	_, ok = AsString(int32(1))
	assert.False(t, ok)

	_, ok = AsDocument(RawDocument{})
	assert.False(t, ok, "a raw document is a distinct representation from a decoded one")

	_, ok = AsBool("true")
	assert.False(t, ok)
}
