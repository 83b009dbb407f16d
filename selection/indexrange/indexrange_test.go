package indexrange

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	assert.Equal(t, Range{Start: 3, Stop: 6}, Make(3, 4))
	assert.Equal(t, 4, Make(3, 4).Len())
}

func TestNewRejectsReversedRange(t *testing.T) {
	_, err := New(5, 4)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	r, err := New(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())
}

var samples = []Range{
	{0, 0}, {0, 4}, {5, 9}, {2, 7}, {3, 3}, {-5, 9}, {5, 15}, {10, 12}, {0, 9},
}

func TestOverlapsAndAbutsCommute(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "overlaps %v %v", a, b)
			assert.Equal(t, Abuts(a, b), Abuts(b, a), "abuts %v %v", a, b)
			if Overlaps(a, b) {
				assert.False(t, Abuts(a, b), "%v %v overlap and abut", a, b)
			}
		}
	}
}

func TestSelfOverlapsNeverAbuts(t *testing.T) {
	for _, a := range samples {
		assert.True(t, Overlaps(a, a))
		assert.False(t, Abuts(a, a))
	}
}

func TestOverlapsContainedEitherWay(t *testing.T) {
	assert.True(t, Overlaps(Range{3, 5}, Range{0, 9}))
	assert.True(t, Overlaps(Range{0, 9}, Range{3, 5}))
	assert.False(t, Overlaps(Range{0, 4}, Range{5, 9}))
}

func TestAbuts(t *testing.T) {
	assert.True(t, Abuts(Range{0, 4}, Range{5, 9}))
	assert.True(t, Abuts(Range{5, 9}, Range{0, 4}))
	assert.False(t, Abuts(Range{0, 4}, Range{6, 9}))
	assert.False(t, Abuts(Range{0, 5}, Range{5, 9}))
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name       string
		minuend    Range
		subtrahend Range
		want       []Range
	}{
		{"hole", Range{0, 9}, Range{3, 5}, []Range{{0, 2}, {6, 9}}},
		{"full cover", Range{0, 9}, Range{-5, 9}, nil},
		{"exact cover", Range{0, 9}, Range{0, 9}, nil},
		{"trailing overlap", Range{0, 9}, Range{5, 15}, []Range{{0, 4}}},
		{"leading overlap", Range{0, 9}, Range{-2, 3}, []Range{{4, 9}}},
		{"disjoint", Range{0, 9}, Range{11, 20}, []Range{{0, 9}}},
		{"abutting", Range{0, 9}, Range{10, 20}, []Range{{0, 9}}},
		{"single index at start", Range{0, 9}, Range{0, 0}, []Range{{1, 9}}},
		{"single index at stop", Range{0, 9}, Range{9, 9}, []Range{{0, 8}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Subtract(tt.minuend, tt.subtrahend))
		})
	}
}

func TestSubtractIsNotCommutative(t *testing.T) {
	assert.Equal(t, []Range{{0, 2}, {6, 9}}, Subtract(Range{0, 9}, Range{3, 5}))
	assert.Nil(t, Subtract(Range{3, 5}, Range{0, 9}))
}

func TestMerge(t *testing.T) {
	assert.Equal(t, Range{0, 9}, Merge(Range{0, 4}, Range{5, 9}))
	assert.Equal(t, Range{0, 9}, Merge(Range{5, 9}, Range{0, 4}))
	assert.Equal(t, Range{0, 9}, Merge(Range{0, 9}, Range{2, 3}))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(Range{0, 9}, Range{0, 9}))
	assert.True(t, Contains(Range{0, 9}, Range{3, 5}))
	assert.False(t, Contains(Range{3, 5}, Range{0, 9}))
	assert.False(t, Contains(Range{0, 9}, Range{5, 10}))
}

func TestIntersect(t *testing.T) {
	r, ok := Intersect(Range{0, 9}, Range{5, 15})
	assert.True(t, ok)
	assert.Equal(t, Range{5, 9}, r)
	_, ok = Intersect(Range{0, 4}, Range{5, 9})
	assert.False(t, ok)
}
