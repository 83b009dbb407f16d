package viewport

import "github.com/hnimtadd/gridsel/selection/coordinate"

// The space a point is expressed in. "(3, 7)" can mean the fourth column of
// the data, or the fourth visible column of the viewport once the user has
// scrolled.
type Tag int

const (
	// Indices into the underlying data. Selection areas always live here.
	TagData Tag = iota

	// Positions relative to the top-left visible cell. Renderers and
	// hit-testing speak this space.
	TagView
)

func (t Tag) String() string {
	switch t {
	case TagData:
		return "data"
	case TagView:
		return "view"
	default:
		return "unknown"
	}
}

// An x/y point for some definition of location (tag).
type Point struct {
	Tag        Tag
	Coordinate coordinate.Cell
}

// ToView translates p into view space. It returns false when the point is
// not currently visible.
func ToView(l Layout, p Point) (Point, bool) {
	if p.Tag == TagView {
		return p, true
	}
	rows, cols := l.Rows(), l.Columns()
	if !rows.Includes(p.Coordinate.Y) || !cols.Includes(p.Coordinate.X) {
		return Point{}, false
	}
	return Point{
		Tag: TagView,
		Coordinate: coordinate.NewPoint(
			p.Coordinate.X-cols.Start,
			p.Coordinate.Y-rows.Start,
		),
	}, true
}

// ToData translates p into data space.
func ToData(l Layout, p Point) Point {
	if p.Tag == TagData {
		return p
	}
	return Point{
		Tag: TagData,
		Coordinate: coordinate.NewPoint(
			p.Coordinate.X+l.Columns().Start,
			p.Coordinate.Y+l.Rows().Start,
		),
	}
}
