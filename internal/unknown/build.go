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
	"encoding/binary"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/EliSchleifer/upb/internal/arena"
	"github.com/EliSchleifer/upb/internal/zc"
)

// field is one parsed unknown-field record.
//
// The value lives in whichever slot the tag's wire type calls for: bits for
// varint, fixed64 and fixed32 (a fixed32 occupies the low 32 bits), span for
// length-delimited payloads, group for nested groups. Fixed payloads keep
// their exact bit pattern; they are never reinterpreted as a numeric type.
type field struct {
	tag   uint32
	bits  uint64
	span  zc.Range
	group *fieldSet
}

// fieldSet is an ordered sequence of fields, owned by its parent group entry
// or by the top-level comparison.
type fieldSet struct {
	fields arena.Slice[field]
}

// parser is the per-call state shared by every recursive build frame.
type parser struct {
	src     []byte
	arena   *arena.Arena
	scratch []field // merge scratch; grows monotonically, freed with the call
	depth   int
}

// fail abandons the comparison. Control resumes at the recover in [Compare].
func (p *parser) fail(r Result) {
	panic(abort{r})
}

// readVarint decodes one base-128 varint starting at pos and returns the
// advanced cursor and the value.
//
// Well-formedness is the caller's contract: the encoding must terminate
// within the buffer and within 70 bits. Malformed input faults like any
// other out-of-range slice access.
func (p *parser) readVarint(pos int) (int, uint64) {
	var v uint64
	for shift := uint(0); ; shift += 7 {
		b := p.src[pos]
		pos++
		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return pos, v
		}
	}
}

// parse builds the field set for one whole buffer.
func (p *parser) parse(src []byte) *fieldSet {
	p.src = src
	set, _ := p.build(0)
	return set
}

// build parses fields from src[pos:] until the end of the buffer or an
// end-group tag, which closes the nesting level the caller entered. It
// returns the set and the advanced cursor.
func (p *parser) build(pos int) (*fieldSet, int) {
	var fields arena.Slice[field]
	var lastTag uint32
	sorted := true

	for pos < len(p.src) {
		var raw uint64
		pos, raw = p.readVarint(pos)
		tag := uint32(raw)
		if protowire.Type(tag&7) == protowire.EndGroupType {
			break
		}
		if tag < lastTag {
			sorted = false
		}
		lastTag = tag

		f := field{tag: tag}
		switch protowire.Type(tag & 7) {
		case protowire.VarintType:
			pos, f.bits = p.readVarint(pos)
		case protowire.Fixed64Type:
			f.bits = binary.LittleEndian.Uint64(p.src[pos:])
			pos += 8
		case protowire.Fixed32Type:
			f.bits = uint64(binary.LittleEndian.Uint32(p.src[pos:]))
			pos += 4
		case protowire.BytesType:
			var n uint64
			pos, n = p.readVarint(pos)
			f.span = zc.NewRaw(pos, int(n))
			pos += int(n)
		case protowire.StartGroupType:
			p.depth--
			if p.depth == 0 {
				p.fail(MaxDepthExceeded)
			}
			f.group, pos = p.build(pos)
			p.depth++
		}

		var ok bool
		fields, ok = fields.AppendOne(p.arena, f)
		if !ok {
			p.fail(OutOfMemory)
		}
	}

	set, ok := arena.New[fieldSet](p.arena)
	if !ok {
		p.fail(OutOfMemory)
	}
	set.fields = fields
	if !sorted {
		p.sort(set)
	}
	return set, pos
}
