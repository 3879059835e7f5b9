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

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EliSchleifer/upb/internal/arena"
)

func TestBudget(t *testing.T) {
	t.Parallel()

	a := arena.Limited(64)
	assert.True(t, a.Reserve(32))
	assert.True(t, a.Reserve(32))
	assert.False(t, a.Reserve(1))
	assert.Equal(t, 64, a.Used())

	a.Free()
	assert.Equal(t, 0, a.Used())
	assert.True(t, a.Reserve(64))
}

func TestUnbudgeted(t *testing.T) {
	t.Parallel()

	var a arena.Arena
	assert.True(t, a.Reserve(1<<40))
	assert.True(t, a.Reserve(1<<40))
}

func TestSliceGrowth(t *testing.T) {
	t.Parallel()

	var a arena.Arena
	var s arena.Slice[int]
	assert.Equal(t, 0, s.Len())

	for i := 0; i < 9; i++ {
		var ok bool
		s, ok = s.AppendOne(&a, i)
		assert.True(t, ok)
	}

	assert.Equal(t, 9, s.Len())
	assert.Equal(t, 16, s.Cap())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, s.Raw())
	assert.Equal(t, 3, s.Load(3))
}

func TestSliceExhaustion(t *testing.T) {
	t.Parallel()

	// Room for the initial capacity-4 block of uint64s and nothing more.
	a := arena.Limited(4 * 8)
	var s arena.Slice[uint64]

	var ok bool
	for i := 0; i < 4; i++ {
		s, ok = s.AppendOne(a, uint64(i))
		assert.True(t, ok)
	}

	_, ok = s.AppendOne(a, 99)
	assert.False(t, ok)
	assert.Equal(t, 4, s.Len(), "failed append must leave the slice unchanged")
}

func TestNewAndMake(t *testing.T) {
	t.Parallel()

	a := arena.Limited(16)
	p, ok := arena.New[uint64](a)
	assert.True(t, ok)
	assert.NotNil(t, p)
	assert.Zero(t, *p)

	_, ok = arena.Make[uint64](a, 2)
	assert.False(t, ok)

	vs, ok := arena.Make[uint64](a, 1)
	assert.True(t, ok)
	assert.Len(t, vs, 1)
}
