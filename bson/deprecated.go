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

import "encoding/binary"

// DBPointer represents the deprecated BSON DBPointer scalar.
//
// It is read-only: this package decodes it for round-trip fidelity, and a
// [Document] holding a value obtained from decoding can re-encode it ([Writer]
// has no Append method for it), but there is no "new DBPointer" constructor — the type is dead per the BSON
// specification.
type DBPointer struct {
	Ref string
	ID  ObjectID
}

// SizeDBPointer returns the encoded size, in bytes, of p.
func SizeDBPointer(p DBPointer) int {
	return SizeString(p.Ref) + SizeObjectID
}

// EncodeDBPointer encodes p into b, which must be at least SizeDBPointer(p) bytes long.
func EncodeDBPointer(b []byte, p DBPointer) {
	EncodeString(b, p.Ref)
	EncodeObjectID(b[SizeString(p.Ref):], p.ID)
}

// DecodeDBPointer decodes a BSON DBPointer from the start of b.
func DecodeDBPointer(b []byte) (DBPointer, error) {
	ref, err := DecodeString(b)
	if err != nil {
		return DBPointer{}, err
	}

	id, err := DecodeObjectID(b[SizeString(ref):])
	if err != nil {
		return DBPointer{}, err
	}

	return DBPointer{Ref: ref, ID: id}, nil
}

// Code represents the BSON JavaScript code scalar (source text, no scope).
type Code string

// SizeCode returns the encoded size, in bytes, of c.
func SizeCode(c Code) int {
	return SizeString(string(c))
}

// EncodeCode encodes c into b, which must be at least SizeCode(c) bytes long.
func EncodeCode(b []byte, c Code) {
	EncodeString(b, string(c))
}

// DecodeCode decodes a BSON JavaScript code value from the start of b.
func DecodeCode(b []byte) (Code, error) {
	s, err := DecodeString(b)
	if err != nil {
		return "", err
	}

	return Code(s), nil
}

// Symbol represents the deprecated BSON Symbol scalar, a UTF-8 string
// historically distinguished from ordinary strings by some drivers.
//
// Like [DBPointer] and [Undefined], it decodes for round-trip fidelity
// only.
type Symbol string

// SizeSymbol returns the encoded size, in bytes, of s.
func SizeSymbol(s Symbol) int {
	return SizeString(string(s))
}

// EncodeSymbol encodes s into b, which must be at least SizeSymbol(s) bytes long.
func EncodeSymbol(b []byte, s Symbol) {
	EncodeString(b, string(s))
}

// DecodeSymbol decodes a BSON symbol value from the start of b.
func DecodeSymbol(b []byte) (Symbol, error) {
	s, err := DecodeString(b)
	if err != nil {
		return "", err
	}

	return Symbol(s), nil
}

// CodeWithScope represents the BSON JavaScript-code-with-scope scalar:
// source text paired with a Document of variable bindings.
type CodeWithScope struct {
	Code  string
	Scope *Document
}

// SizeCodeWithScope returns the encoded size, in bytes, of c.
//
// It panics if c.Scope's encoded form cannot be computed; callers should
// only pass values obtained from decoding or built with a valid Document.
func SizeCodeWithScope(c CodeWithScope) int {
	return 4 + SizeString(c.Code) + sizeDocument(c.Scope)
}

// EncodeCodeWithScope encodes c into b, which must be at least
// SizeCodeWithScope(c) bytes long.
func EncodeCodeWithScope(b []byte, c CodeWithScope) error {
	EncodeInt32(b, int32(SizeCodeWithScope(c)))
	EncodeString(b[4:], c.Code)

	scopeBytes, err := c.Scope.Encode()
	if err != nil {
		return err
	}

	copy(b[4+SizeString(c.Code):], scopeBytes)

	return nil
}

// DecodeCodeWithScope decodes a BSON JavaScript-code-with-scope value from
// the start of b. Bytes after the value are ignored; the total length prefix
// must not exceed len(b), and the code string must end within it.
func DecodeCodeWithScope(b []byte) (CodeWithScope, error) {
	if len(b) < 4 {
		return CodeWithScope{}, ErrDecodeShortInput
	}

	total := int(int32(binary.LittleEndian.Uint32(b)))
	if total < 4 || total > len(b) {
		return CodeWithScope{}, ErrDecodeInvalidInput
	}

	code, err := DecodeString(b[4:])
	if err != nil {
		return CodeWithScope{}, err
	}

	scopeStart := 4 + SizeString(code)
	if scopeStart > total {
		return CodeWithScope{}, ErrDecodeInvalidInput
	}

	scope, err := RawDocument(b[scopeStart:total]).Decode()
	if err != nil {
		return CodeWithScope{}, err
	}

	return CodeWithScope{Code: code, Scope: scope}, nil
}
