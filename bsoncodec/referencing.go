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

// referencingEncoder is what SuperEncoder and every nested-container
// constructor actually hand back: a *ValueEncoder whose set closure writes
// straight into the slot the parent container reserved for it (a document
// field or an array index).
//
// A host with arena-allocated containers needs an explicit "splice into
// (parent, slot) on finalize" step, because its containers are values
// copied in and out of the arena. Go's Document/Array store their
// composite-typed field values as *Document/*Array pointers, so the
// parent's slot already refers to the exact same heap object the child
// mutates; there is nothing left to splice at finalization time. This
// alias exists so the concept has a name matching the design, not because
// the behavior needs a distinct type.
type referencingEncoder = ValueEncoder
