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

package arena

// Slice is a growable sequence whose backing memory is charged to an
// [Arena].
//
// Growth is amortized doubling with a minimum capacity of 4. The zero Slice
// is empty and ready to append to.
type Slice[T any] struct {
	raw []T
}

// Len returns this slice's length.
func (s Slice[T]) Len() int {
	return len(s.raw)
}

// Cap returns this slice's capacity.
func (s Slice[T]) Cap() int {
	return cap(s.raw)
}

// Load returns the value at the given index.
func (s Slice[T]) Load(n int) T {
	return s.raw[n]
}

// Raw returns the underlying slice.
//
// The return value aliases the slice's backing memory and is only valid
// until the next append.
func (s Slice[T]) Raw() []T {
	return s.raw
}

// AppendOne appends one element, growing on a if necessary. It reports
// failure if the arena's budget cannot cover the growth; a failed append
// leaves the slice unchanged.
func (s Slice[T]) AppendOne(a *Arena, v T) (Slice[T], bool) {
	if len(s.raw) == cap(s.raw) {
		// Like a true arena realloc, the old block's charge is not
		// refunded; it stays on the budget until Free.
		grown, ok := Make[T](a, max(4, 2*cap(s.raw)))
		if !ok {
			return s, false
		}
		s.raw = append(grown[:0], s.raw...)
	}
	s.raw = append(s.raw, v)
	return s, true
}
