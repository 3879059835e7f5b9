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

// Package unknown implements order-independent equality of unknown-field
// wire data.
//
// Two serializations of the same fields need not be byte-identical: fields
// may appear in any order, recursively so inside groups. [Compare] parses
// both buffers into per-tag-sorted field sets and walks them structurally.
// Schema information never enters the picture; every field is opaque wire
// data.
package unknown

// Result is the verdict of a comparison.
//
// The values match the public CompareResult constants in the root package.
type Result int

const (
	Equal Result = iota
	NotEqual
	OutOfMemory
	MaxDepthExceeded
)

// Options configures a call to [Compare].
type Options struct {
	// MaxDepth bounds group nesting. Entering a group when the remaining
	// budget hits zero aborts with MaxDepthExceeded.
	MaxDepth int

	// ScratchLimit bounds the scratch memory one comparison may charge, in
	// bytes. Zero or less means unbounded.
	ScratchLimit int
}

// abort carries the verdict of a fatal condition out of an arbitrarily deep
// build. It is panicked with at the point of failure and recovered exactly
// once, in [Compare]; no intermediate frame checks for it.
type abort struct {
	result Result
}
