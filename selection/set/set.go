// Package set is the selection model of a grid: an insertion-ordered list
// of possibly overlapping areas plus the area last acted on.
//
// A Set has a single writer. Every mutation runs to completion before it
// returns and either commits entirely or, on an error, leaves the set
// unchanged.
package set

import (
	"fmt"
	"slices"

	"github.com/hnimtadd/gridsel/logger"
	"github.com/hnimtadd/gridsel/selection/area"
	"github.com/hnimtadd/gridsel/selection/band"
	"github.com/hnimtadd/gridsel/selection/indexrange"
	"github.com/hnimtadd/gridsel/selection/utils"
	"github.com/mitchellh/hashstructure/v2"
)

type Options struct {
	// Grid bounds. Both must be positive.
	Rows, Cols int
	Logger     logger.Logger
}

type Set struct {
	rows, cols int

	areas []area.Area

	// The area created or changed by the latest mutation. It anchors
	// ExtendTo.
	last    area.Area
	hasLast bool

	observers registry
	logger    logger.Logger
}

func New(opts Options) *Set {
	utils.Assert(opts.Rows > 0 && opts.Cols > 0, "grid bounds must be positive")
	return &Set{
		rows:   opts.Rows,
		cols:   opts.Cols,
		logger: logger.OrDefault(opts.Logger),
	}
}

func (s *Set) Rows() int { return s.rows }
func (s *Set) Cols() int { return s.cols }

// Reset drops the selection and adopts new bounds, as on a data reload.
func (s *Set) Reset(rows, cols int) {
	utils.Assert(rows > 0 && cols > 0, "grid bounds must be positive")
	s.rows, s.cols = rows, cols
	s.Clear()
}

func (s *Set) checkCell(x, y int) error {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return fmt.Errorf("%w: cell %d,%d outside %dx%d grid",
			indexrange.ErrInvalidArgument, x, y, s.cols, s.rows)
	}
	return nil
}

// validate checks a's shape and that it stays inside the grid.
func (s *Set) validate(a area.Area) error {
	if err := a.Validate(); err != nil {
		return err
	}
	// Compared as start > bound-length so that huge extents cannot wrap.
	if _, ok := a.Rows(); ok && a.Y > s.rows-a.Height {
		return fmt.Errorf("%w: %s past row %d", indexrange.ErrInvalidArgument, a, s.rows-1)
	}
	if _, ok := a.Columns(); ok && a.X > s.cols-a.Width {
		return fmt.Errorf("%w: %s past column %d", indexrange.ErrInvalidArgument, a, s.cols-1)
	}
	return nil
}

// AddArea appends a, first merging it with every area of the same type it
// overlaps or abuts. Areas of different types are never merged.
func (s *Set) AddArea(a area.Area) error {
	if err := s.validate(a); err != nil {
		return err
	}
	merged := a
	absorbed := make([]bool, len(s.areas))
	var removed []area.Area
	// A merge can grow the area into neighbours already passed over.
	for progress := true; progress; {
		progress = false
		for i, existing := range s.areas {
			if absorbed[i] {
				continue
			}
			if m, ok := tryMerge(merged, existing); ok {
				merged = m
				absorbed[i] = true
				removed = append(removed, existing)
				progress = true
			}
		}
	}
	if len(removed) > 0 {
		kept := s.areas[:0]
		for i, existing := range s.areas {
			if !absorbed[i] {
				kept = append(kept, existing)
			}
		}
		s.areas = kept
		s.logger.Debug("merged selection areas",
			"area", merged.String(), "absorbed", len(removed))
	}
	s.areas = append(s.areas, merged)
	s.setLast(merged)
	s.observers.notify(Change{Added: []area.Area{merged}, Removed: removed})
	return nil
}

// RemoveArea subtracts a from every area of the same type. Each affected
// area is replaced by what is left of it, possibly nothing.
func (s *Set) RemoveArea(a area.Area) error {
	if err := s.validate(a); err != nil {
		return err
	}
	s.subtract(a, func(existing area.Area) ([]area.Area, bool) {
		if existing.Type != a.Type || !existing.Overlaps(a) {
			return nil, false
		}
		return subtractSame(existing, a), true
	})
	return nil
}

// SubtractRegion deselects region from every area regardless of type. Areas
// of another type than region are first reduced to the concrete rectangle
// they cover on the grid.
func (s *Set) SubtractRegion(region area.Area) error {
	if err := s.validate(region); err != nil {
		return err
	}
	clipped, _ := region.Clip(s.rows, s.cols)
	s.subtract(region, func(existing area.Area) ([]area.Area, bool) {
		if !existing.Overlaps(region) {
			return nil, false
		}
		if existing.Type == region.Type {
			return subtractSame(existing, region), true
		}
		if region.Type == area.TypeAll {
			return nil, true
		}
		rect, ok := existing.Clip(s.rows, s.cols)
		if !ok {
			return nil, true
		}
		return subtractRectangle(rect, clipped), true
	})
	return nil
}

// subtract replaces, in place, every area that cut reports as hit with the
// pieces cut returns for it.
func (s *Set) subtract(region area.Area, cut func(area.Area) ([]area.Area, bool)) {
	var (
		next    []area.Area
		added   []area.Area
		removed []area.Area
	)
	lastHit := false
	for _, existing := range s.areas {
		pieces, hit := cut(existing)
		if !hit {
			next = append(next, existing)
			continue
		}
		removed = append(removed, existing)
		added = append(added, pieces...)
		next = append(next, pieces...)
		if s.hasLast && existing == s.last {
			lastHit = true
		}
	}
	if len(removed) == 0 {
		return
	}
	s.areas = next
	if lastHit {
		s.hasLast = false
		if len(added) > 0 {
			s.setLast(added[len(added)-1])
		}
	}
	s.logger.Debug("subtracted selection region",
		"region", region.String(), "replaced", len(removed), "pieces", len(added))
	s.observers.notify(Change{Added: added, Removed: removed})
}

// Covering returns, in list order, the areas that include (x, y).
func (s *Set) Covering(x, y int) []area.Area {
	var out []area.Area
	for _, a := range s.areas {
		if a.Includes(x, y) {
			out = append(out, a)
		}
	}
	return out
}

// ToggleCell flips the cell at (x, y). With no area covering it a single
// cell is selected. Otherwise the covering area with the highest toggle
// priority loses the cell at its own granularity: a row area drops the
// whole row y, a column area the whole column x, a rectangle the cell, and
// the whole-grid area is replaced by the grid minus the cell.
func (s *Set) ToggleCell(x, y int) error {
	if err := s.checkCell(x, y); err != nil {
		return err
	}
	winner, ok := area.TogglePriority(s.Covering(x, y))
	if !ok {
		cell, err := area.NewCell(x, y)
		if err != nil {
			return err
		}
		return s.AddArea(cell)
	}

	var (
		region area.Area
		err    error
	)
	switch winner.Type {
	case area.TypeRow:
		region, err = area.NewRow(y, 1)
	case area.TypeColumn:
		region, err = area.NewColumn(x, 1)
	case area.TypeRectangle, area.TypeAll:
		region, err = area.NewCell(x, y)
	default:
		utils.Unreachable("area type", winner.Type)
	}
	if err != nil {
		return err
	}

	var pieces []area.Area
	if winner.Type == area.TypeAll {
		grid, _ := winner.Clip(s.rows, s.cols)
		pieces = subtractRectangle(grid, region)
	} else {
		pieces = subtractSame(winner, region)
	}

	i := slices.Index(s.areas, winner)
	utils.Assert(i >= 0, "toggle winner not in set")
	s.areas = slices.Replace(s.areas, i, i+1, pieces...)
	s.hasLast = false
	if len(pieces) > 0 {
		s.setLast(pieces[len(pieces)-1])
	}
	s.logger.Debug("toggled cell off", "x", x, "y", y,
		"area", winner.String(), "pieces", len(pieces))
	s.observers.notify(Change{Added: pieces, Removed: []area.Area{winner}})
	return nil
}

// ExtendTo resizes the last area from its anchor corner so that it reaches
// (x, y), as a shift-click does. The area keeps its place in the list.
func (s *Set) ExtendTo(x, y int) error {
	if err := s.checkCell(x, y); err != nil {
		return err
	}
	if !s.hasLast {
		return fmt.Errorf("%w: no area to extend", indexrange.ErrInvalidArgument)
	}
	extended, err := s.last.ExtendTo(x, y)
	if err != nil {
		return err
	}
	if err := s.validate(extended); err != nil {
		return err
	}
	i := slices.Index(s.areas, s.last)
	utils.Assert(i >= 0, "last area not in set")
	previous := s.areas[i]
	s.areas[i] = extended
	s.setLast(extended)
	s.observers.notify(Change{Added: []area.Area{extended}, Removed: []area.Area{previous}})
	return nil
}

// Query reports whether any area includes (x, y). Cells outside the grid are
// never selected.
func (s *Set) Query(x, y int) bool {
	if s.checkCell(x, y) != nil {
		return false
	}
	for _, a := range s.areas {
		if a.Includes(x, y) {
			return true
		}
	}
	return false
}

// Areas returns a copy of the areas in insertion order.
func (s *Set) Areas() []area.Area {
	return slices.Clone(s.areas)
}

func (s *Set) Len() int { return len(s.areas) }

// Last returns the area the latest mutation created or changed.
func (s *Set) Last() (area.Area, bool) {
	return s.last, s.hasLast
}

func (s *Set) setLast(a area.Area) {
	s.last = a
	s.hasLast = true
}

// Clear drops every area. Clearing an empty set notifies nobody.
func (s *Set) Clear() {
	if len(s.areas) == 0 {
		return
	}
	removed := s.areas
	s.areas = nil
	s.hasLast = false
	s.observers.notify(Change{Removed: removed, Cleared: true})
}

// Subscribe registers l for every committed mutation.
func (s *Set) Subscribe(l Listener) *Subscription {
	return s.observers.add(l)
}

// Fingerprint hashes the committed areas. Renderers compare it between
// frames to skip repaints when nothing changed.
func (s *Set) Fingerprint() uint64 {
	hashed, err := hashstructure.Hash(s.areas, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash selection: %v", err))
	return hashed
}

// SelectedRows lists, ascending, the rows selected in full by row areas or
// by a whole-grid area.
func (s *Set) SelectedRows() []int {
	return s.selectedBands(area.TypeRow, s.rows, area.Area.Rows)
}

// SelectedColumns is the column counterpart of SelectedRows.
func (s *Set) SelectedColumns() []int {
	return s.selectedBands(area.TypeColumn, s.cols, area.Area.Columns)
}

func (s *Set) selectedBands(
	t area.Type,
	bound int,
	extent func(area.Area) (indexrange.Range, bool),
) []int {
	total := 0
	for _, a := range s.areas {
		switch a.Type {
		case area.TypeAll:
			return band.FromRange(indexrange.Make(0, bound)).AppendIndices(nil)
		case t:
			total += a.Size()
		}
	}
	if total == 0 {
		return nil
	}
	sink := make([]int, total)
	count := 0
	for _, a := range s.areas {
		if a.Type != t {
			continue
		}
		r, _ := extent(a)
		count = band.FromRange(r).PutIndices(sink, count)
	}
	slices.Sort(sink)
	return slices.Compact(sink)
}
