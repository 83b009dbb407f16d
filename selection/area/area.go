// Package area defines selection areas: rows, columns, rectangles and the
// whole grid, together with the toggle priority between them.
package area

import (
	"fmt"
	"math"

	"github.com/hnimtadd/gridsel/selection/coordinate"
	"github.com/hnimtadd/gridsel/selection/indexrange"
	"github.com/hnimtadd/gridsel/selection/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// Area is a selected region. Which geometry fields are meaningful depends
// on Type:
//
//	TypeRow:       Y, Height
//	TypeColumn:    X, Width
//	TypeRectangle: X, Y, Width, Height
//	TypeAll:       none
//
// Width and Height are always positive for the axes a type uses and zero
// for the ones it ignores. Corner records the drag anchor.
type Area struct {
	Type   Type
	X, Y   int
	Width  int
	Height int
	Corner Corner
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{indexrange.ErrInvalidArgument}, args...)...)
}

// span normalizes a signed extent measured from anchor. A positive extent
// covers anchor..anchor+extent-1, a negative one anchor+extent+1..anchor.
func span(anchor, extent int) (start, length int, err error) {
	switch {
	case anchor < 0:
		return 0, 0, invalid("negative index %d", anchor)
	case extent == 0:
		return 0, 0, invalid("zero extent")
	case extent == math.MinInt:
		return 0, 0, invalid("extent %d from %d leaves the grid", extent, anchor)
	case extent > 0:
		if _, overflow := utils.AddWithOverflow(anchor, extent); overflow {
			return 0, 0, invalid("extent %d from %d overflows", extent, anchor)
		}
		return anchor, extent, nil
	}
	start = anchor + extent + 1
	if start < 0 {
		return 0, 0, invalid("extent %d from %d leaves the grid", extent, anchor)
	}
	return start, -extent, nil
}

// extentTo is the signed extent from anchor that reaches target inclusively.
func extentTo(anchor, target int) int {
	if target >= anchor {
		return target - anchor + 1
	}
	return target - anchor - 1
}

// NewRow selects height rows starting at y.
func NewRow(y, height int) (Area, error) {
	if height < 1 {
		return Area{}, invalid("row height %d", height)
	}
	return newRowSpan(y, height)
}

func newRowSpan(anchor, extent int) (Area, error) {
	start, length, err := span(anchor, extent)
	if err != nil {
		return Area{}, err
	}
	return Area{
		Type:   TypeRow,
		Y:      start,
		Height: length,
		Corner: CornerFromWidthHeight(1, extent),
	}, nil
}

// NewColumn selects width columns starting at x.
func NewColumn(x, width int) (Area, error) {
	if width < 1 {
		return Area{}, invalid("column width %d", width)
	}
	return newColumnSpan(x, width)
}

func newColumnSpan(anchor, extent int) (Area, error) {
	start, length, err := span(anchor, extent)
	if err != nil {
		return Area{}, err
	}
	return Area{
		Type:   TypeColumn,
		X:      start,
		Width:  length,
		Corner: CornerFromWidthHeight(extent, 1),
	}, nil
}

// NewRectangle normalizes a rectangle dragged from the anchor cell (x, y)
// with signed extents. NewRectangle(5, 0, -3, 2) covers columns 3..5 of rows
// 0..1 and remembers CornerTopRight.
func NewRectangle(x, y, width, height int) (Area, error) {
	left, w, err := span(x, width)
	if err != nil {
		return Area{}, err
	}
	top, h, err := span(y, height)
	if err != nil {
		return Area{}, err
	}
	return Area{
		Type:   TypeRectangle,
		X:      left,
		Y:      top,
		Width:  w,
		Height: h,
		Corner: CornerFromWidthHeight(width, height),
	}, nil
}

// NewCell is the 1x1 rectangle at (x, y).
func NewCell(x, y int) (Area, error) {
	return NewRectangle(x, y, 1, 1)
}

func NewAll() Area {
	return Area{Type: TypeAll}
}

// fits reports whether start+length-1 is representable.
func fits(start, length int) bool {
	_, overflow := utils.AddWithOverflow(start, length)
	return !overflow
}

// Validate reports whether a has the shape its constructors guarantee.
// Areas built by hand go through it before entering a selection set.
func (a Area) Validate() error {
	switch a.Type {
	case TypeRow:
		if a.Y < 0 || a.Height < 1 || !fits(a.Y, a.Height) {
			return invalid("row y=%d height=%d", a.Y, a.Height)
		}
	case TypeColumn:
		if a.X < 0 || a.Width < 1 || !fits(a.X, a.Width) {
			return invalid("column x=%d width=%d", a.X, a.Width)
		}
	case TypeRectangle:
		if a.X < 0 || a.Y < 0 || a.Width < 1 || a.Height < 1 ||
			!fits(a.X, a.Width) || !fits(a.Y, a.Height) {
			return invalid("rectangle %d,%d %dx%d", a.X, a.Y, a.Width, a.Height)
		}
	case TypeAll:
	default:
		utils.Unreachable("area type", a.Type)
	}
	return nil
}

// Size is the covered cell count for rectangles, the band length for rows
// and columns, and zero for the whole grid.
func (a Area) Size() int {
	switch a.Type {
	case TypeRow:
		return a.Height
	case TypeColumn:
		return a.Width
	case TypeRectangle:
		return a.Width * a.Height
	case TypeAll:
		return 0
	default:
		utils.Unreachable("area type", a.Type)
		return 0
	}
}

// Equal compares geometry only; the type is not part of equality.
func (a Area) Equal(other Area) bool {
	return a.X == other.X &&
		a.Y == other.Y &&
		a.Width == other.Width &&
		a.Height == other.Height
}

// Rows returns the covered rows, or false when a is unbounded along y.
func (a Area) Rows() (indexrange.Range, bool) {
	switch a.Type {
	case TypeRow, TypeRectangle:
		return indexrange.Make(a.Y, a.Height), true
	case TypeColumn, TypeAll:
		return indexrange.Range{}, false
	default:
		utils.Unreachable("area type", a.Type)
		return indexrange.Range{}, false
	}
}

// Columns returns the covered columns, or false when a is unbounded along x.
func (a Area) Columns() (indexrange.Range, bool) {
	switch a.Type {
	case TypeColumn, TypeRectangle:
		return indexrange.Make(a.X, a.Width), true
	case TypeRow, TypeAll:
		return indexrange.Range{}, false
	default:
		utils.Unreachable("area type", a.Type)
		return indexrange.Range{}, false
	}
}

// Includes reports whether the cell (x, y) lies inside a.
func (a Area) Includes(x, y int) bool {
	switch a.Type {
	case TypeRow:
		return a.Y <= y && y < a.Y+a.Height
	case TypeColumn:
		return a.X <= x && x < a.X+a.Width
	case TypeRectangle:
		return a.X <= x && x < a.X+a.Width &&
			a.Y <= y && y < a.Y+a.Height
	case TypeAll:
		return true
	default:
		utils.Unreachable("area type", a.Type)
		return false
	}
}

func axisOverlaps(a, b indexrange.Range, aBounded, bBounded bool) bool {
	if !aBounded || !bBounded {
		return true
	}
	return indexrange.Overlaps(a, b)
}

// Overlaps reports whether a and other share at least one cell.
func (a Area) Overlaps(other Area) bool {
	ar, aok := a.Rows()
	or, ook := other.Rows()
	if !axisOverlaps(ar, or, aok, ook) {
		return false
	}
	ac, aok := a.Columns()
	oc, ook := other.Columns()
	return axisOverlaps(ac, oc, aok, ook)
}

// Anchor is the cell the area was dragged from.
func (a Area) Anchor() coordinate.Cell {
	x, y := a.X, a.Y
	if a.Corner.isRight() && a.Width > 0 {
		x += a.Width - 1
	}
	if a.Corner.isBottom() && a.Height > 0 {
		y += a.Height - 1
	}
	return coordinate.NewPoint(x, y)
}

// ExtendTo resizes a so that it spans from its anchor to (x, y). Rows only
// follow y, columns only follow x, and the whole grid does not change.
func (a Area) ExtendTo(x, y int) (Area, error) {
	if x < 0 || y < 0 {
		return Area{}, invalid("negative cell %d,%d", x, y)
	}
	anchor := a.Anchor()
	switch a.Type {
	case TypeRow:
		return newRowSpan(anchor.Y, extentTo(anchor.Y, y))
	case TypeColumn:
		return newColumnSpan(anchor.X, extentTo(anchor.X, x))
	case TypeRectangle:
		return NewRectangle(anchor.X, anchor.Y,
			extentTo(anchor.X, x), extentTo(anchor.Y, y))
	case TypeAll:
		return a, nil
	default:
		utils.Unreachable("area type", a.Type)
		return Area{}, nil
	}
}

// Clip converts a to the rectangle of concrete cells it covers on a grid of
// rows x cols. It returns false when nothing is left.
func (a Area) Clip(rows, cols int) (Area, bool) {
	grid := Area{Type: TypeRectangle, Width: cols, Height: rows}
	if rows < 1 || cols < 1 {
		return Area{}, false
	}
	r := grid
	if rr, ok := a.Rows(); ok {
		clipped, ok := indexrange.Intersect(rr, indexrange.Make(0, rows))
		if !ok {
			return Area{}, false
		}
		r.Y, r.Height = clipped.Start, clipped.Len()
	}
	if cr, ok := a.Columns(); ok {
		clipped, ok := indexrange.Intersect(cr, indexrange.Make(0, cols))
		if !ok {
			return Area{}, false
		}
		r.X, r.Width = clipped.Start, clipped.Len()
	}
	return r, true
}

// Hash identifies a by type and geometry.
func (a Area) Hash() uint64 {
	hashed, err := hashstructure.Hash(a, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash area: %v", err))
	return hashed
}

func (a Area) String() string {
	switch a.Type {
	case TypeRow:
		return fmt.Sprintf("row[%d+%d]", a.Y, a.Height)
	case TypeColumn:
		return fmt.Sprintf("column[%d+%d]", a.X, a.Width)
	case TypeRectangle:
		return fmt.Sprintf("rectangle[%d,%d %dx%d %s]", a.X, a.Y, a.Width, a.Height, a.Corner)
	case TypeAll:
		return "all"
	default:
		return "unknown"
	}
}
