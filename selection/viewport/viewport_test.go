package viewport

import (
	"slices"
	"testing"

	"github.com/hnimtadd/gridsel/logger"
	"github.com/hnimtadd/gridsel/selection/area"
	"github.com/hnimtadd/gridsel/selection/coordinate"
	"github.com/hnimtadd/gridsel/selection/indexrange"
	"github.com/hnimtadd/gridsel/selection/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rows 10..14, columns 2..5
var window = Window{
	RowRange:    indexrange.Range{Start: 10, Stop: 14},
	ColumnRange: indexrange.Range{Start: 2, Stop: 5},
}

func newSet(t *testing.T, areas ...area.Area) *set.Set {
	t.Helper()
	s := set.New(set.Options{Rows: 100, Cols: 20, Logger: logger.Discard})
	for _, a := range areas {
		require.NoError(t, s.AddArea(a))
	}
	return s
}

func TestVisibleSkipsOffscreenAreas(t *testing.T) {
	onscreen, _ := area.NewRow(12, 1)
	offscreen, _ := area.NewRow(50, 1)
	col, _ := area.NewColumn(3, 1)
	farRect, _ := area.NewRectangle(10, 10, 2, 2)
	s := newSet(t, onscreen, offscreen, col, farRect)

	got := slices.Collect(Visible(s, window))
	assert.Equal(t, []area.Area{onscreen, col}, got)
}

func TestMask(t *testing.T) {
	r, _ := area.NewRow(11, 1)
	rect, _ := area.NewRectangle(0, 13, 3, 5)
	s := newSet(t, r, rect)

	mask := Mask(s, window)
	require.Equal(t, 20, mask.Len())
	// Row 11 is view row 1: all four visible cells.
	for vx := range 4 {
		assert.True(t, mask.IsSet(1*4+vx))
	}
	// The rectangle covers data columns 0..2, visible as view column 0.
	assert.True(t, mask.IsSet(3*4+0))
	assert.True(t, mask.IsSet(4*4+0))
	assert.False(t, mask.IsSet(3*4+1))
	assert.Equal(t, 6, mask.Count())

	for vy := range 5 {
		for vx := range 4 {
			p := ToData(window, Point{Tag: TagView, Coordinate: coordinate.NewPoint(vx, vy)})
			assert.Equal(t, s.Query(p.Coordinate.X, p.Coordinate.Y), mask.IsSet(vy*4+vx))
		}
	}
}

func TestMaskAll(t *testing.T) {
	s := newSet(t, area.NewAll())
	assert.Equal(t, 20, Mask(s, window).Count())
}

func TestPointTranslation(t *testing.T) {
	data := Point{Tag: TagData, Coordinate: coordinate.NewPoint(3, 12)}
	view, ok := ToView(window, data)
	require.True(t, ok)
	assert.Equal(t, Point{Tag: TagView, Coordinate: coordinate.NewPoint(1, 2)}, view)
	assert.Equal(t, data, ToData(window, view))
	assert.Equal(t, data, ToData(window, data))

	_, ok = ToView(window, Point{Tag: TagData, Coordinate: coordinate.NewPoint(0, 12)})
	assert.False(t, ok)
	assert.Equal(t, "view", TagView.String())
}
