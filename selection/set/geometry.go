package set

import (
	"github.com/hnimtadd/gridsel/selection/area"
	"github.com/hnimtadd/gridsel/selection/band"
	"github.com/hnimtadd/gridsel/selection/indexrange"
	"github.com/hnimtadd/gridsel/selection/utils"
)

// mergeBands joins two inclusive spans when they overlap or abut.
func mergeBands(a, b indexrange.Range) (indexrange.Range, bool) {
	ab, bb := band.FromRange(a), band.FromRange(b)
	if !ab.Overlaps(bb) && !ab.Abuts(bb) {
		return indexrange.Range{}, false
	}
	merged, ok := ab.CreateFromAbuttingOverlapping(bb).Range()
	utils.Assert(ok, "merged band is empty")
	return merged, true
}

// tryMerge joins incoming with existing when both have the same type and
// their union is again a single area of that type. The result keeps the
// incoming area's corner.
func tryMerge(incoming, existing area.Area) (area.Area, bool) {
	if incoming.Type != existing.Type {
		return area.Area{}, false
	}
	merged := incoming
	switch incoming.Type {
	case area.TypeRow:
		rows, ok := mergeBands(rowsOf(incoming), rowsOf(existing))
		if !ok {
			return area.Area{}, false
		}
		merged.Y, merged.Height = rows.Start, rows.Len()
	case area.TypeColumn:
		cols, ok := mergeBands(columnsOf(incoming), columnsOf(existing))
		if !ok {
			return area.Area{}, false
		}
		merged.X, merged.Width = cols.Start, cols.Len()
	case area.TypeRectangle:
		ir, ic := rowsOf(incoming), columnsOf(incoming)
		er, ec := rowsOf(existing), columnsOf(existing)
		switch {
		case indexrange.Contains(ir, er) && indexrange.Contains(ic, ec):
			return incoming, true
		case indexrange.Contains(er, ir) && indexrange.Contains(ec, ic):
			merged.X, merged.Y = existing.X, existing.Y
			merged.Width, merged.Height = existing.Width, existing.Height
		case ic == ec:
			rows, ok := mergeBands(ir, er)
			if !ok {
				return area.Area{}, false
			}
			merged.Y, merged.Height = rows.Start, rows.Len()
		case ir == er:
			cols, ok := mergeBands(ic, ec)
			if !ok {
				return area.Area{}, false
			}
			merged.X, merged.Width = cols.Start, cols.Len()
		default:
			return area.Area{}, false
		}
	case area.TypeAll:
	default:
		utils.Unreachable("area type", incoming.Type)
	}
	return merged, true
}

// subtractSame removes region from existing when both share a type. Rows and
// columns split into at most two bands, rectangles into at most four.
func subtractSame(existing, region area.Area) []area.Area {
	utils.Assert(existing.Type == region.Type, "subtracting across types")
	switch existing.Type {
	case area.TypeRow:
		var out []area.Area
		for _, r := range indexrange.Subtract(rowsOf(existing), rowsOf(region)) {
			piece := existing
			piece.Y, piece.Height = r.Start, r.Len()
			out = append(out, piece)
		}
		return out
	case area.TypeColumn:
		var out []area.Area
		for _, c := range indexrange.Subtract(columnsOf(existing), columnsOf(region)) {
			piece := existing
			piece.X, piece.Width = c.Start, c.Len()
			out = append(out, piece)
		}
		return out
	case area.TypeRectangle:
		return subtractRectangle(existing, region)
	case area.TypeAll:
		return nil
	default:
		utils.Unreachable("area type", existing.Type)
		return nil
	}
}

// subtractRectangle cuts region out of existing: full-width strips above and
// below the intersection, then the pieces left and right of it.
func subtractRectangle(existing, region area.Area) []area.Area {
	if !existing.Overlaps(region) {
		return []area.Area{existing}
	}
	er, ec := rowsOf(existing), columnsOf(existing)
	middle, _ := indexrange.Intersect(er, rowsOf(region))

	var out []area.Area
	for _, r := range indexrange.Subtract(er, middle) {
		out = append(out, rectangle(existing.Corner, r, ec))
	}
	for _, c := range indexrange.Subtract(ec, columnsOf(region)) {
		out = append(out, rectangle(existing.Corner, middle, c))
	}
	return out
}

func rectangle(corner area.Corner, rows, cols indexrange.Range) area.Area {
	return area.Area{
		Type:   area.TypeRectangle,
		X:      cols.Start,
		Y:      rows.Start,
		Width:  cols.Len(),
		Height: rows.Len(),
		Corner: corner,
	}
}

func rowsOf(a area.Area) indexrange.Range {
	r, ok := a.Rows()
	utils.Assert(ok, "area has no row extent")
	return r
}

func columnsOf(a area.Area) indexrange.Range {
	c, ok := a.Columns()
	utils.Assert(ok, "area has no column extent")
	return c
}
