package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStaticBitSet_Size(t *testing.T) {
	bs := NewStaticBitSet(100)
	assert.Equal(t, 100, bs.Len())
}

func TestSetAndIsSet(t *testing.T) {
	bs := NewStaticBitSet(10)
	bs.Set(3)
	assert.True(t, bs.IsSet(3), "bit 3 should be set")
	assert.False(t, bs.IsSet(4), "bit 4 should not be set")
	bs.Unset(3)
	assert.False(t, bs.IsSet(3))
}

func TestSetRangeSingleWord(t *testing.T) {
	bs := NewStaticBitSet(64)
	bs.SetRange(3, 7)
	assert.Equal(t, 4, bs.Count())
	assert.False(t, bs.IsSet(2))
	assert.True(t, bs.IsSet(3))
	assert.True(t, bs.IsSet(6))
	assert.False(t, bs.IsSet(7))
}

func TestSetRangeAcrossWords(t *testing.T) {
	bs := NewStaticBitSet(200)
	bs.SetRange(60, 130)
	assert.Equal(t, 70, bs.Count())
	assert.False(t, bs.IsSet(59))
	assert.True(t, bs.IsSet(64))
	assert.True(t, bs.IsSet(129))
	assert.False(t, bs.IsSet(130))
}

func TestSetRangeFullLastWord(t *testing.T) {
	bs := NewStaticBitSet(128)
	bs.SetRange(0, 128)
	assert.Equal(t, 128, bs.Count())
}

func TestSetRangeEmpty(t *testing.T) {
	bs := NewStaticBitSet(10)
	bs.SetRange(4, 4)
	assert.Equal(t, 0, bs.Count())
}

func TestClear(t *testing.T) {
	bs := NewStaticBitSet(10)
	bs.Set(1)
	bs.Set(2)
	bs.Clear()
	assert.Equal(t, 0, bs.Count())
}

func TestNewStaticBitSetFull(t *testing.T) {
	bs := NewStaticBitSetFull(10)
	for i := range 10 {
		assert.True(t, bs.IsSet(i), "bit %d should be set in full bitset", i)
	}
}

func TestSetOutOfBoundsPanics(t *testing.T) {
	bs := NewStaticBitSet(5)
	assert.Panics(t, func() { bs.Set(5) })
	assert.Panics(t, func() { bs.Set(-1) })
	assert.Panics(t, func() { bs.SetRange(2, 6) })
}

func TestAddWithOverflow(t *testing.T) {
	sum, overflow := AddWithOverflow(3, 4)
	assert.False(t, overflow)
	assert.Equal(t, 7, sum)
	_, overflow = AddWithOverflow(int(^uint(0)>>1), 1)
	assert.True(t, overflow)
	_, overflow = AddWithOverflow(-int(^uint(0)>>1)-1, -1)
	assert.True(t, overflow)
}

func TestUnreachablePanics(t *testing.T) {
	assert.PanicsWithValue(t, "unreachable: unknown area type 9", func() {
		Unreachable("area type", 9)
	})
	assert.Panics(t, func() { Assert(false, "boom") })
	assert.NotPanics(t, func() { Assert(true) })
}
