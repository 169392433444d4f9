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

// Encodable is implemented by types that know how to encode themselves
// through the container protocol, analogous to Swift's Encodable.
type Encodable interface {
	EncodeBSON(enc *ValueEncoder) error
}

// Decodable is implemented by types that know how to decode themselves
// through the container protocol, analogous to Swift's Decodable.
type Decodable interface {
	DecodeBSON(dec *ValueDecoder) error
}
