package area

import "github.com/hnimtadd/gridsel/selection/utils"

// IsHigherTogglePriority reports whether candidate takes precedence over
// reference when both cover the cell being toggled. The ranking, highest
// first, is
//
//	row > column > rectangle(size>1) > rectangle(size==1) > all
//
// and equal ranks report true both ways.
func IsHigherTogglePriority(candidate, reference Area) bool {
	if !reference.Type.known() {
		utils.Unreachable("area type", reference.Type)
	}
	switch candidate.Type {
	case TypeAll:
		return reference.Type == TypeAll
	case TypeRectangle:
		switch reference.Type {
		case TypeAll:
			return true
		case TypeRectangle:
			return candidate.Size() > 1 || reference.Size() == 1
		default:
			return false
		}
	case TypeColumn:
		return reference.Type != TypeRow
	case TypeRow:
		return true
	default:
		utils.Unreachable("area type", candidate.Type)
		return false
	}
}

// TogglePriority picks the area that a toggle acts on among areas that all
// cover one cell. It is a single left-to-right pass: an area replaces the
// current pick only when it strictly outranks it, so ties keep the earliest.
func TogglePriority(areas []Area) (Area, bool) {
	switch len(areas) {
	case 0:
		return Area{}, false
	case 1:
		return areas[0], true
	}
	best := areas[0]
	for _, candidate := range areas[1:] {
		if IsHigherTogglePriority(candidate, best) &&
			!IsHigherTogglePriority(best, candidate) {
			best = candidate
		}
	}
	return best, true
}
