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

package unknown

import "github.com/EliSchleifer/upb/internal/arena"

// sort sorts set's fields by ascending tag. Fields with equal tags keep
// their encounter order; the comparator's positional walk depends on that.
//
// The merge scratch is shared by every set built during one comparison. It
// only ever grows, doubling from a floor of 8, and its charge is released
// with the arena at the end of the call.
func (p *parser) sort(set *fieldSet) {
	n := set.fields.Len()
	if cap(p.scratch) < n {
		c := max(8, cap(p.scratch))
		for c < n {
			c *= 2
		}
		scratch, ok := arena.Make[field](p.arena, c)
		if !ok {
			p.fail(OutOfMemory)
		}
		p.scratch = scratch
	}
	mergeSort(set.fields.Raw(), p.scratch)
}

// mergeSort recursively sorts arr by tag, splitting at the midpoint.
func mergeSort(arr, tmp []field) {
	if len(arr) <= 1 {
		return
	}
	mid := len(arr) / 2
	mergeSort(arr[:mid], tmp)
	mergeSort(arr[mid:], tmp)
	merge(arr, mid, tmp)
}

// merge merges the sorted halves arr[:mid] and arr[mid:] back into arr,
// comparing only tags. Ties take from the left half first, which is what
// makes the sort stable.
func merge(arr []field, mid int, tmp []field) {
	tmp = tmp[:copy(tmp, arr)]

	left, right := tmp[:mid], tmp[mid:]
	out := arr[:0]
	for len(left) > 0 && len(right) > 0 {
		if left[0].tag <= right[0].tag {
			out = append(out, left[0])
			left = left[1:]
		} else {
			out = append(out, right[0])
			right = right[1:]
		}
	}
	out = append(out, left...)
	_ = append(out, right...)
}
