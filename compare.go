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

package upb

import (
	"fmt"

	"github.com/EliSchleifer/upb/internal/unknown"
)

// CompareResult is the verdict of [UnknownFieldsEqual].
type CompareResult int

const (
	// Equal means the two encodings carry the same fields with the same
	// values, independent of serialization order.
	Equal CompareResult = iota

	// NotEqual means the encodings differ in some field's presence, value,
	// or wire type, or in the relative order of a repeated tag.
	NotEqual

	// OutOfMemory means scratch allocation exceeded the configured budget
	// before a verdict was reached. See [WithScratchLimit].
	OutOfMemory

	// MaxDepthExceeded means group nesting exceeded the configured
	// recursion budget. See [WithMaxDepth].
	MaxDepthExceeded
)

// String implements [fmt.Stringer].
func (r CompareResult) String() string {
	switch r {
	case Equal:
		return "Equal"
	case NotEqual:
		return "NotEqual"
	case OutOfMemory:
		return "OutOfMemory"
	case MaxDepthExceeded:
		return "MaxDepthExceeded"
	default:
		return fmt.Sprintf("CompareResult(%d)", int(r))
	}
}

// DefaultMaxDepth is the group recursion budget used when [WithMaxDepth] is
// not given.
const DefaultMaxDepth = 100

// CompareOption is a configuration setting for [UnknownFieldsEqual].
type CompareOption struct{ apply func(*unknown.Options) }

// WithMaxDepth sets the maximum group recursion depth. Entering a group once
// the budget is spent aborts the comparison with [MaxDepthExceeded].
//
// This is the only safeguard against adversarially nested input; setting a
// large value enables potential DoS vectors.
func WithMaxDepth(depth int) CompareOption {
	return CompareOption{func(o *unknown.Options) { o.MaxDepth = depth }}
}

// WithScratchLimit bounds the scratch memory one comparison may use, in
// bytes. Exceeding it aborts with [OutOfMemory]. The default is no bound.
func WithScratchLimit(bytes int) CompareOption {
	return CompareOption{func(o *unknown.Options) { o.ScratchLimit = bytes }}
}

// UnknownFieldsEqual reports whether buf1 and buf2 encode semantically equal
// unknown-field sets.
//
// Both buffers must be valid unknown-field wire data; see the package
// documentation for the exact contract. Byte-identical buffers are Equal
// without parsing. Each call is self-contained, so independent comparisons
// may run concurrently.
func UnknownFieldsEqual(buf1, buf2 []byte, options ...CompareOption) CompareResult {
	opts := unknown.Options{MaxDepth: DefaultMaxDepth}
	for _, option := range options {
		option.apply(&opts)
	}
	return CompareResult(unknown.Compare(buf1, buf2, opts))
}
