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
	"errors"
	"fmt"
)

// ErrorKind classifies the errors this package can return. See [Error].
type ErrorKind int

const (
	_ ErrorKind = iota

	// ErrInvalidArgument means a constructor received malformed input
	// (bad hex, wrong UUID length, invalid Decimal128 string, reserved
	// binary subtype).
	ErrInvalidArgument

	// ErrInternal means a structural invariant was violated on input
	// that was assumed already valid (cache coherency, unexpected
	// state), including unexpected buffer exhaustion.
	ErrInternal

	// ErrTooLarge means appending a value would make a document exceed
	// [MaxDocumentLen].
	ErrTooLarge

	// ErrDataCorrupted means the wire bytes violate the BSON grammar.
	ErrDataCorrupted

	// ErrTypeMismatch means a value was present but not of the type the
	// caller asked to coerce it to, and no lossless coercion exists.
	ErrTypeMismatch

	// ErrKeyNotFound means a document field lookup found no such key.
	ErrKeyNotFound

	// ErrValueNotFound means an array index or similar positional lookup
	// found no such element.
	ErrValueNotFound

	// ErrNumberOutOfRange means a numeric coercion would lose information
	// (overflow, or a fractional value where an integer was required).
	ErrNumberOutOfRange
)

// String returns a short, lowercase label for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidArgument:
		return "invalid argument"
	case ErrInternal:
		return "internal"
	case ErrTooLarge:
		return "too large"
	case ErrDataCorrupted:
		return "data corrupted"
	case ErrTypeMismatch:
		return "type mismatch"
	case ErrKeyNotFound:
		return "key not found"
	case ErrValueNotFound:
		return "value not found"
	case ErrNumberOutOfRange:
		return "number out of range"
	default:
		return "unknown"
	}
}

// Error is returned by this package's constructors, the [Writer], and document parsing.
type Error struct {
	Kind   ErrorKind
	Offset int // byte offset at which the problem was detected, or -1 if not applicable
	msg    string
	err    error
}

// newError builds an *Error with no known offset.
func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: -1, msg: fmt.Sprintf(format, args...)}
}

// newErrorAt builds an *Error with a known byte offset.
func newErrorAt(kind ErrorKind, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("bson: %s at offset %d: %s", e.Kind, e.Offset, e.msg)
	}

	return fmt.Sprintf("bson: %s: %s", e.Kind, e.msg)
}

// Unwrap allows errors.Is(err, ErrDecodeShortInput) and similar sentinels to match.
func (e *Error) Unwrap() error {
	return e.err
}

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, &Error{Kind: ErrTooLarge}).
func (e *Error) Is(target error) bool {
	var o *Error
	if errors.As(target, &o) {
		return e.Kind == o.Kind
	}

	return false
}

// Sentinel decode errors, wrapped by [Error] values returned from parsing.
var (
	// ErrDecodeShortInput means the input ended before a complete element could be read.
	ErrDecodeShortInput = errors.New("bson: unexpected end of input")

	// ErrDecodeInvalidInput means the input bytes do not form a valid BSON document.
	ErrDecodeInvalidInput = errors.New("bson: invalid input")

	// ErrNotSorted means a Regex's options string was not canonically sorted on decode.
	ErrNotSorted = errors.New("bson: regex options are not sorted")

	// ErrMissingTerminator means a document did not end with the trailing 0x00 byte.
	ErrMissingTerminator = errors.New("bson: document is missing its terminating byte")

	// ErrConcurrentModification is returned by an [Iterator] when the
	// [Document] it was created from has been mutated since.
	ErrConcurrentModification = errors.New("bson: document was modified during iteration")
)

func wrapDecodeErr(offset int, err error) error {
	return &Error{Kind: ErrDataCorrupted, Offset: offset, msg: err.Error(), err: err}
}
