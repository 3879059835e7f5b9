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

import (
	"bytes"

	"github.com/EliSchleifer/upb/internal/arena"
)

// Compare reports whether buf1 and buf2 encode the same unknown fields,
// independent of serialization order.
//
// Byte-identical buffers short-circuit to Equal without parsing. Otherwise
// both sides are built into sorted field sets on a scratch region scoped to
// this call and compared structurally. The region is released on every exit
// path, including the abrupt ones.
func Compare(buf1, buf2 []byte, opts Options) (res Result) {
	if len(buf1) == 0 && len(buf2) == 0 {
		return Equal
	}
	if len(buf1) == 0 || len(buf2) == 0 {
		return NotEqual
	}
	if bytes.Equal(buf1, buf2) {
		return Equal
	}

	a := arena.Limited(opts.ScratchLimit)
	defer a.Free()

	defer func() {
		switch r := recover().(type) {
		case nil:
		case abort:
			res = r.result
		default:
			panic(r)
		}
	}()

	p := &parser{arena: a, depth: opts.MaxDepth}
	set1 := p.parse(buf1)
	set2 := p.parse(buf2)

	if equal(set1, set2, buf1, buf2) {
		return Equal
	}
	return NotEqual
}
