// Copyright 2023-2025 The upb-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package upb compares Protobuf unknown-field encodings for semantic
// equality.
//
// A decoder that meets a field it has no schema for must preserve it
// verbatim for round-tripping. Two such preserved byte ranges can differ
// without being semantically different: serializers may emit fields in any
// order, recursively so inside groups. [UnknownFieldsEqual] answers whether
// two unknown-field byte ranges carry the same fields with the same values
// regardless of that order. No schema information is consulted; every field
// is opaque wire data.
//
// Inputs must be valid wire format restricted to unknown-field encodings
// (wire types 0, 1, 2, 3 and 5, with type 4 only as a group terminator).
// Nothing validates this: the contract is a verdict for valid input and
// unspecified behavior, including panics, for anything else.
//
// Equality is defined as "equal after a stable sort by tag". Fields repeated
// under one tag therefore compare in encounter order; two encodings carrying
// the same multiset of values in a different relative order under the same
// tag are not equal.
package upb
