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

// Package zc provides helpers for working with zero-copy ranges.
package zc

import (
	"fmt"
	"math"
)

// Range is a representation of a []byte as a slice relative to some larger
// byte array, such as the source of a parsed message.
//
// This is a packed representation of a value with the layout
//
//	struct {
//	  offset, len uint32
//	}
//
// The zero value faithfully represents an empty slice.
type Range uint64

// NewRaw creates a new Range from an offset and a length.
//
// Both must fit in a uint32; sources are capped at 4GB.
func NewRaw(offset, length int) Range {
	if uint64(offset) > math.MaxUint32 || uint64(length) > math.MaxUint32 {
		panic(fmt.Sprintf("zc: range too large: [%d:%d]", offset, length))
	}
	return Range(uint32(offset)) | Range(length)<<32
}

// Start returns the start offset of this slice within its source.
func (r Range) Start() int { return int(uint32(r)) }

// End returns the end offset of this slice within its source.
func (r Range) End() int { return r.Start() + r.Len() }

// Len returns the length of this Range.
func (r Range) Len() int { return int(r >> 32) }

// Bytes converts this Range into a byte slice, given its source.
func (r Range) Bytes(src []byte) []byte {
	if r.Len() == 0 {
		return nil
	}
	return src[r.Start():r.End():r.End()]
}

// String implements [fmt.Stringer].
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d]", r.Start(), r.End())
}
