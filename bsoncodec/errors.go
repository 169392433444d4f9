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
	"fmt"

	"github.com/ferrotype-io/bson"
)

// CodecError is returned by the containers' Encode/Decode operations when a
// coding check fails. Errors from parsing inside a strategy (time layouts,
// UUID text, base64) and from the bson package are returned as those
// packages produce them. It reuses bson.ErrorKind rather than inventing a parallel taxonomy, since
// the coding protocol's failure modes (type mismatch, key/value not found,
// number out of range, data corrupted, invalid argument) are exactly the
// kinds bson.Error already enumerates.
type CodecError struct {
	Kind     bson.ErrorKind
	Path     string // dotted/indexed coding path, e.g. "address[0].zip"
	Expected string // populated for Kind == bson.ErrTypeMismatch
	Found    string // populated for Kind == bson.ErrTypeMismatch
	msg      string
	err      error
}

func newCodecError(p path, kind bson.ErrorKind, format string, args ...any) *CodecError {
	return &CodecError{Kind: kind, Path: p.String(), msg: fmt.Sprintf(format, args...)}
}

func newTypeMismatch(p path, expected, found string) *CodecError {
	return &CodecError{
		Kind:     bson.ErrTypeMismatch,
		Path:     p.String(),
		Expected: expected,
		Found:    found,
		msg:      fmt.Sprintf("expected %s, found %s", expected, found),
	}
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("bsoncodec: %s at %s: %s", e.Kind, e.Path, e.msg)
}

// Unwrap allows errors.Is/errors.As to see the wrapped cause, if any.
func (e *CodecError) Unwrap() error {
	return e.err
}

// Is reports whether target is a *CodecError with the same Kind, mirroring
// [bson.Error.Is].
func (e *CodecError) Is(target error) bool {
	o, ok := target.(*CodecError)
	if !ok {
		return false
	}

	return e.Kind == o.Kind
}
