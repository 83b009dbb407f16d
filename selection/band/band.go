// Package band holds the mutable, half-open run of row or column indices
// that selections are built from.
package band

import (
	"fmt"

	"github.com/hnimtadd/gridsel/selection/indexrange"
	"github.com/hnimtadd/gridsel/selection/utils"
)

// Band covers the indices [start, after). after == start + length holds
// after every mutator and length is never negative.
//
// Boundaries here are half-open while indexrange.Range is inclusive; the
// two meet at after == stop + 1.
type Band struct {
	start  int
	length int
	after  int
}

func New(start, length int) (*Band, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: band length %d", indexrange.ErrInvalidArgument, length)
	}
	after, overflow := utils.AddWithOverflow(start, length)
	if overflow {
		return nil, fmt.Errorf("%w: band %d+%d overflows", indexrange.ErrInvalidArgument, start, length)
	}
	return &Band{start: start, length: length, after: after}, nil
}

// FromRange converts an inclusive range into a band.
func FromRange(r indexrange.Range) *Band {
	return &Band{start: r.Start, length: r.Len(), after: r.Stop + 1}
}

func (b *Band) Start() int  { return b.start }
func (b *Band) Length() int { return b.length }
func (b *Band) After() int  { return b.after }

func (b *Band) IsEmpty() bool { return b.length == 0 }

// Range returns the inclusive equivalent, or false for an empty band.
func (b *Band) Range() (indexrange.Range, bool) {
	if b.IsEmpty() {
		return indexrange.Range{}, false
	}
	return indexrange.Range{Start: b.start, Stop: b.after - 1}, true
}

// SetStart moves the first index while keeping after fixed.
func (b *Band) SetStart(start int) error {
	if start > b.after {
		return fmt.Errorf("%w: start %d past after %d", indexrange.ErrInvalidArgument, start, b.after)
	}
	b.start = start
	b.length = b.after - start
	b.check()
	return nil
}

// SetAfter moves the end while keeping start fixed.
func (b *Band) SetAfter(after int) error {
	if after < b.start {
		return fmt.Errorf("%w: after %d before start %d", indexrange.ErrInvalidArgument, after, b.start)
	}
	b.after = after
	b.length = after - b.start
	b.check()
	return nil
}

// Move shifts the whole band by delta.
func (b *Band) Move(delta int) {
	b.start += delta
	b.after += delta
	b.check()
}

// Grow extends (or with negative n shrinks) the band at its end.
func (b *Band) Grow(n int) error {
	if b.length+n < 0 {
		return fmt.Errorf("%w: cannot shrink band of %d by %d", indexrange.ErrInvalidArgument, b.length, -n)
	}
	b.length += n
	b.after = b.start + b.length
	b.check()
	return nil
}

func (b *Band) Includes(index int) bool {
	return b.start <= index && index < b.after
}

func (b *Band) Overlaps(other *Band) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	return b.start < other.after && other.start < b.after
}

func (b *Band) Abuts(other *Band) bool {
	return b.after == other.start || other.after == b.start
}

func (b *Band) Contains(other *Band) bool {
	return b.start <= other.start && other.after <= b.after
}

// CreateFromAbuttingOverlapping returns the band spanning b and other. The
// caller checks Abuts or Overlaps first.
func (b *Band) CreateFromAbuttingOverlapping(other *Band) *Band {
	start := min(b.start, other.start)
	after := max(b.after, other.after)
	return &Band{start: start, length: after - start, after: after}
}

// PutIndices writes every index of the band into sink starting at offset
// count and returns the offset past the last one written.
func (b *Band) PutIndices(sink []int, count int) int {
	utils.Assert(count+b.length <= len(sink), "sink too small for band")
	for i := b.start; i < b.after; i++ {
		sink[count] = i
		count++
	}
	return count
}

// AppendIndices is the growable form of PutIndices.
func (b *Band) AppendIndices(dst []int) []int {
	for i := b.start; i < b.after; i++ {
		dst = append(dst, i)
	}
	return dst
}

func (b *Band) String() string {
	return fmt.Sprintf("[%d,%d)", b.start, b.after)
}

func (b *Band) check() {
	utils.Assert(b.length >= 0, "band length is negative")
	utils.Assert(b.after == b.start+b.length, "band after out of sync")
}
