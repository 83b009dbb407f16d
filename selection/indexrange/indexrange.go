// Package indexrange implements the algebra over inclusive integer spans
// used for bands of rows and columns.
package indexrange

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an operation receives a negative
// index, a non-positive extent where one is required, or a reversed range.
// The operation is rejected and no state changes.
var ErrInvalidArgument = errors.New("invalid argument")

// Range is an inclusive span [Start, Stop] of consecutive indices.
// Start <= Stop always holds for ranges built by this package.
type Range struct {
	Start int
	Stop  int
}

// Make returns the range of count indices beginning at start.
func Make(start, count int) Range {
	return Range{Start: start, Stop: start + count - 1}
}

// New validates and returns [start, stop].
func New(start, stop int) (Range, error) {
	if start > stop {
		return Range{}, fmt.Errorf("%w: range start %d after stop %d",
			ErrInvalidArgument, start, stop)
	}
	return Range{Start: start, Stop: stop}, nil
}

// Len is the number of indices covered.
func (r Range) Len() int {
	return r.Stop - r.Start + 1
}

// Includes reports whether i lies inside r.
func (r Range) Includes(i int) bool {
	return r.Start <= i && i <= r.Stop
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Start, r.Stop)
}

// Overlaps reports whether a and b share at least one index.
func Overlaps(a, b Range) bool {
	return b.Includes(a.Start) ||
		b.Includes(a.Stop) ||
		(a.Start < b.Start && a.Stop > b.Stop)
}

// Abuts reports whether a and b are exactly adjacent. Intersecting ranges
// never abut.
func Abuts(a, b Range) bool {
	return a.Stop+1 == b.Start || b.Stop+1 == a.Start
}

// Contains reports whether inner lies entirely inside outer.
func Contains(outer, inner Range) bool {
	return outer.Start <= inner.Start && inner.Stop <= outer.Stop
}

// Merge returns the smallest range covering a and b. It does not check that
// the two overlap or abut; callers establish that first.
func Merge(a, b Range) Range {
	return Range{Start: min(a.Start, b.Start), Stop: max(a.Stop, b.Stop)}
}

// Intersect returns the indices shared by a and b, if any.
func Intersect(a, b Range) (Range, bool) {
	r := Range{Start: max(a.Start, b.Start), Stop: min(a.Stop, b.Stop)}
	if r.Start > r.Stop {
		return Range{}, false
	}
	return r, true
}

// Subtract returns the parts of minuend not covered by subtrahend: nothing
// when fully covered, the minuend itself when disjoint, one remainder when
// the subtrahend clips an end, and two when it punches a hole.
func Subtract(minuend, subtrahend Range) []Range {
	if !Overlaps(minuend, subtrahend) {
		return []Range{minuend}
	}
	coversStart := subtrahend.Start <= minuend.Start
	coversStop := subtrahend.Stop >= minuend.Stop
	switch {
	case coversStart && coversStop:
		return nil
	case coversStart:
		return []Range{{Start: subtrahend.Stop + 1, Stop: minuend.Stop}}
	case coversStop:
		return []Range{{Start: minuend.Start, Stop: subtrahend.Start - 1}}
	default:
		return []Range{
			{Start: minuend.Start, Stop: subtrahend.Start - 1},
			{Start: subtrahend.Stop + 1, Stop: minuend.Stop},
		}
	}
}
