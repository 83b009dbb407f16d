package area

// Type classifies the shape of a selection area. The set is closed: every
// switch over Type ends in utils.Unreachable.
type Type int

const (
	// A band of whole rows, unbounded along x.
	TypeRow Type = iota
	// A band of whole columns, unbounded along y.
	TypeColumn
	// A bounded block of cells.
	TypeRectangle
	// Every cell of the grid.
	TypeAll
)

func (t Type) String() string {
	switch t {
	case TypeRow:
		return "row"
	case TypeColumn:
		return "column"
	case TypeRectangle:
		return "rectangle"
	case TypeAll:
		return "all"
	default:
		return "unknown"
	}
}

// The corner a rectangle was dragged from. It is the fixed point of later
// resizes.
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

func (c Corner) String() string {
	switch c {
	case CornerTopLeft:
		return "top-left"
	case CornerTopRight:
		return "top-right"
	case CornerBottomRight:
		return "bottom-right"
	case CornerBottomLeft:
		return "bottom-left"
	default:
		return "unknown"
	}
}

// CornerFromWidthHeight derives the anchor corner from the signs of a raw
// drag extent.
func CornerFromWidthHeight(width, height int) Corner {
	switch {
	case width >= 0 && height >= 0:
		return CornerTopLeft
	case width >= 0:
		return CornerBottomLeft
	case height >= 0:
		return CornerTopRight
	default:
		return CornerBottomRight
	}
}

func (c Corner) isRight() bool {
	return c == CornerTopRight || c == CornerBottomRight
}

func (c Corner) isBottom() bool {
	return c == CornerBottomLeft || c == CornerBottomRight
}

func (t Type) known() bool {
	return t >= TypeRow && t <= TypeAll
}

// ParseType is the inverse of Type.String.
func ParseType(name string) (Type, bool) {
	for t := TypeRow; t <= TypeAll; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}
