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

// Null represents the BSON null scalar. It carries no data; its presence
// as a field's value is the only information.
type Null struct{}

// Undefined represents the deprecated BSON undefined scalar.
//
// It decodes for round-trip fidelity but cannot be constructed by any
// non-deprecated API; see the package doc.
type Undefined struct{}

// MinKey represents the BSON min-key scalar, which compares less than
// every other BSON value.
type MinKey struct{}

// MaxKey represents the BSON max-key scalar, which compares greater than
// every other BSON value.
type MaxKey struct{}

// These singleton types have no payload, so their encoded size is always zero.
const (
	SizeNull      = 0
	SizeUndefined = 0
	SizeMinKey    = 0
	SizeMaxKey    = 0
)
