// Package viewport narrows a selection down to what a virtualized grid
// currently shows.
package viewport

import (
	"iter"

	"github.com/hnimtadd/gridsel/selection/area"
	"github.com/hnimtadd/gridsel/selection/indexrange"
	"github.com/hnimtadd/gridsel/selection/utils"
)

// Layout is provided by the view. It reports, in data space, which rows and
// columns are visible.
type Layout interface {
	Rows() indexrange.Range
	Columns() indexrange.Range
}

// Source is anything that can enumerate selection areas, such as *set.Set.
type Source interface {
	Areas() []area.Area
}

// Window is a fixed Layout.
type Window struct {
	RowRange    indexrange.Range
	ColumnRange indexrange.Range
}

func (w Window) Rows() indexrange.Range    { return w.RowRange }
func (w Window) Columns() indexrange.Range { return w.ColumnRange }

func windowArea(l Layout) area.Area {
	rows, cols := l.Rows(), l.Columns()
	return area.Area{
		Type:   area.TypeRectangle,
		X:      cols.Start,
		Y:      rows.Start,
		Width:  cols.Len(),
		Height: rows.Len(),
	}
}

// Visible yields, in selection order, the areas intersecting the window.
func Visible(src Source, l Layout) iter.Seq[area.Area] {
	window := windowArea(l)
	return func(yield func(area.Area) bool) {
		for _, a := range src.Areas() {
			if !a.Overlaps(window) {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// Mask marks every selected visible cell. Bit vy*width+vx stands for the view
// cell (vx, vy), width being the number of visible columns.
func Mask(src Source, l Layout) *utils.StaticBitSet {
	rows, cols := l.Rows(), l.Columns()
	width := cols.Len()
	mask := utils.NewStaticBitSet(rows.Len() * width)
	for a := range Visible(src, l) {
		if a.Type == area.TypeAll {
			return utils.NewStaticBitSetFull(mask.Len())
		}
		r, c := rows, cols
		if ar, ok := a.Rows(); ok {
			r, _ = indexrange.Intersect(ar, rows)
		}
		if ac, ok := a.Columns(); ok {
			c, _ = indexrange.Intersect(ac, cols)
		}
		for y := r.Start; y <= r.Stop; y++ {
			offset := (y - rows.Start) * width
			mask.SetRange(offset+c.Start-cols.Start, offset+c.Stop-cols.Start+1)
		}
	}
	return mask
}
