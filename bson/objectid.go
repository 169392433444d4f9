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
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"sync/atomic"
	"time"
)

// ObjectID represents the BSON ObjectId scalar: a 12-byte value with an
// embedded 4-byte creation timestamp (seconds since the Unix epoch).
type ObjectID [12]byte

// SizeObjectID is the encoded size, in bytes, of a BSON ObjectID.
const SizeObjectID = 12

var objectIDProcessUnique = randomProcessID()
var objectIDCounter = newObjectIDCounter()

// randomProcessID returns 5 random bytes used to disambiguate ObjectIDs
// generated on different processes (and, incidentally, different hosts).
func randomProcessID() [5]byte {
	var b [5]byte
	_, _ = rand.Read(b[:])

	return b
}

// newObjectIDCounter returns an atomic counter seeded randomly, matching
// the ObjectID specification's requirement that the counter start at a
// random value per process.
func newObjectIDCounter() *atomic.Uint32 {
	var seed [4]byte
	_, _ = rand.Read(seed[:])

	c := &atomic.Uint32{}
	c.Store(binary.BigEndian.Uint32(seed[:]))

	return c
}

// NewObjectID generates a fresh ObjectID from the current time, the
// process-unique bytes, and a monotonically increasing counter.
func NewObjectID() ObjectID {
	var id ObjectID

	binary.BigEndian.PutUint32(id[0:4], uint32(time.Now().Unix()))
	copy(id[4:9], objectIDProcessUnique[:])

	c := objectIDCounter.Add(1)
	id[9] = byte(c >> 16)
	id[10] = byte(c >> 8)
	id[11] = byte(c)

	return id
}

// ParseObjectID parses a 24-character lowercase hex string into an ObjectID.
func ParseObjectID(s string) (ObjectID, error) {
	if len(s) != 24 {
		return ObjectID{}, newError(ErrInvalidArgument, "ObjectID hex string must be 24 characters, got %d", len(s))
	}

	var id ObjectID
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return ObjectID{}, newError(ErrInvalidArgument, "invalid ObjectID hex string %q: %s", s, err)
	}

	return id, nil
}

// Hex returns the canonical 24-character lowercase hex representation.
func (id ObjectID) Hex() string {
	return hex.EncodeToString(id[:])
}

// String implements fmt.Stringer, returning the same value as [ObjectID.Hex].
func (id ObjectID) String() string {
	return id.Hex()
}

// Timestamp returns the creation time embedded in the first 4 bytes of id.
func (id ObjectID) Timestamp() time.Time {
	sec := binary.BigEndian.Uint32(id[0:4])
	return time.Unix(int64(sec), 0).UTC()
}

// EncodeObjectID encodes id into b, which must be at least SizeObjectID bytes long.
func EncodeObjectID(b []byte, id ObjectID) {
	copy(b, id[:])
}

// DecodeObjectID decodes a BSON ObjectID from the start of b.
func DecodeObjectID(b []byte) (ObjectID, error) {
	if len(b) < SizeObjectID {
		return ObjectID{}, ErrDecodeShortInput
	}

	var id ObjectID
	copy(id[:], b[:SizeObjectID])

	return id, nil
}
