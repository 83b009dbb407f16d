package utils

import (
	"math/bits"
)

const bitSetSize = 64 // Number of bits in a uint64

// StaticBitSet is a simple bit set implementation
type StaticBitSet struct {
	bits      []uint64
	size      int
	sliceSize int // Number of uint64s needed to store the bits
}

// SetRange sets every bit in [start, end) to 1.
func (s *StaticBitSet) SetRange(start int, end int) {
	Assert(0 <= start)
	Assert(start <= end)
	Assert(end <= s.size, "End index out of bounds")
	if start == end {
		return
	}
	startAddr, startOffset := s.addr(start)
	endAddr, endOffset := s.addr(end - 1)

	// low: every bit at or above startOffset.
	// 1 << startOffset = 0000 ... 10000...000
	//                             |startOffset
	// ^((1 << startOffset) - 1) = 1111 ... 10000...000
	var low uint64 = ^((1 << startOffset) - 1)

	// high: every bit at or below endOffset. A shift by 64 yields 0, so
	// endOffset == 63 gives all ones.
	// (1 << (endOffset + 1)) - 1 = 0000 ... 01111...1111
	//                                       | endOffset
	var high uint64 = (1 << (endOffset + 1)) - 1

	if startAddr == endAddr {
		s.bits[startAddr] |= low & high
		return
	}
	s.bits[startAddr] |= low
	s.bits[endAddr] |= high
	for i := startAddr + 1; i < endAddr; i++ {
		s.bits[i] = ^uint64(0)
	}
}

// NewStaticBitSet creates a new StaticBitSet with the given size.
func NewStaticBitSet(size int) *StaticBitSet {
	set := &StaticBitSet{size: size}
	set.init()
	return set
}

// NewStaticBitSetFull creates a StaticBitSet with all bits set to 1.
func NewStaticBitSetFull(size int) *StaticBitSet {
	set := &StaticBitSet{
		size: size,
	}
	set.init()
	set.SetRange(0, size)
	return set
}

// Set sets the bit at the given idx to 1
func (s *StaticBitSet) Set(idx int) {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	idx, offset := s.addr(idx)
	s.bits[idx] |= 1 << offset
}

// Unset clears the bit at the given idx
func (s *StaticBitSet) Unset(idx int) {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	idx, offset := s.addr(idx)
	s.bits[idx] &^= 1 << offset // Clear the bit at idx
}

// addr return the index of bit array containing the bit at idx and offset of
// givent bit in that array.
func (s *StaticBitSet) addr(idx int) (int, int) {
	return idx / bitSetSize, idx % bitSetSize
}

// IsSet returns if bit at given idx is set
func (s *StaticBitSet) IsSet(idx int) bool {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	idx, offset := s.addr(idx)
	return s.bits[idx]&(1<<offset) != 0
}

// Count counts the number of bits set
func (s *StaticBitSet) Count() int {
	total := 0
	for i := range s.sliceSize {
		// Count the number of bits set
		total += bits.OnesCount64(s.bits[i])
	}
	return total
}

func (s *StaticBitSet) init() {
	s.sliceSize = (s.size + 63) / 64 // Calculate how many uint64s we need
	s.bits = make([]uint64, s.sliceSize)
}

// Clear clears the bits set
func (s *StaticBitSet) Clear() {
	s.init()
}

// Len returns the number of addressable bits.
func (s *StaticBitSet) Len() int {
	return s.size
}
