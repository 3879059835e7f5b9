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

// Package arena provides a scoped scratch-allocation region with an optional
// byte budget.
//
// In upb, the comparison scratch lives in a true arena that is bulk-freed at
// the end of each call; allocation can fail and that failure terminates the
// comparison. Go's collector owns the bytes themselves, so what an [Arena]
// scopes here is the budget and the lifetime: every allocation made for one
// comparison is charged to one Arena, and [Arena.Free] ends the region. A
// budget-exceeded charge is the Go rendition of allocation failure.
package arena

import "unsafe"

// Arena charges scratch allocations against an optional byte budget.
//
// The zero Arena has no budget and is ready to use. An Arena is not safe for
// concurrent use; each comparison call owns its own.
type Arena struct {
	used  int
	limit int
}

// Limited returns an arena that refuses charges beyond limit bytes.
//
// A limit of zero or less means no budget.
func Limited(limit int) *Arena {
	return &Arena{limit: limit}
}

// Reserve charges size bytes against the budget, reporting whether the budget
// can cover it. A failed Reserve charges nothing.
func (a *Arena) Reserve(size int) bool {
	if a.limit > 0 && size > a.limit-a.used {
		return false
	}
	a.used += size
	return true
}

// Used reports the bytes charged so far.
func (a *Arena) Used() int {
	return a.used
}

// Free resets this arena to an "empty" state, releasing everything charged
// to it.
//
// Memory handed out against this arena must not be referenced after a call
// to Free.
func (a *Arena) Free() {
	a.used = 0
}

// New allocates a single zeroed T charged to a. It reports failure if the
// budget cannot cover the allocation.
func New[T any](a *Arena) (*T, bool) {
	var z T
	if !a.Reserve(int(unsafe.Sizeof(z))) {
		return nil, false
	}
	return new(T), true
}

// Make allocates a slice of n zeroed Ts charged to a. It reports failure if
// the budget cannot cover the allocation.
func Make[T any](a *Arena, n int) ([]T, bool) {
	var z T
	if !a.Reserve(n * int(unsafe.Sizeof(z))) {
		return nil, false
	}
	return make([]T, n), true
}
