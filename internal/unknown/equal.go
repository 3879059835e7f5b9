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

	"google.golang.org/protobuf/encoding/protowire"
)

// equal reports whether two sorted field sets match position for position:
// same length, and at every index the same tag and the same value under that
// tag's wire type. Group values recurse; everything else is bitwise or
// byte-wise.
//
// This is not multiset equality. Fields repeated under one tag compare in
// encounter order, which the stable sort preserved.
func equal(x, y *fieldSet, xsrc, ysrc []byte) bool {
	if x.fields.Len() != y.fields.Len() {
		return false
	}
	for i, n := 0, x.fields.Len(); i < n; i++ {
		f1 := x.fields.Load(i)
		f2 := y.fields.Load(i)
		if f1.tag != f2.tag {
			return false
		}
		switch protowire.Type(f1.tag & 7) {
		case protowire.VarintType, protowire.Fixed64Type, protowire.Fixed32Type:
			if f1.bits != f2.bits {
				return false
			}
		case protowire.BytesType:
			if !bytes.Equal(f1.span.Bytes(xsrc), f2.span.Bytes(ysrc)) {
				return false
			}
		case protowire.StartGroupType:
			if !equal(f1.group, f2.group, xsrc, ysrc) {
				return false
			}
		}
	}
	return true
}
