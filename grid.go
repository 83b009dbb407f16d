// Package gridsel keeps the selection of a virtualized grid: whole rows,
// whole columns, rectangles and the entire grid, selected and deselected
// through the intents a grid widget produces for clicks, drags and keys.
package gridsel

import (
	"errors"
	"fmt"

	"github.com/hnimtadd/gridsel/logger"
	"github.com/hnimtadd/gridsel/selection/area"
	"github.com/hnimtadd/gridsel/selection/indexrange"
	"github.com/hnimtadd/gridsel/selection/query"
	"github.com/hnimtadd/gridsel/selection/render"
	"github.com/hnimtadd/gridsel/selection/set"
)

// ErrInvalidArgument is returned, wrapped, for negative or out-of-range
// input. The selection is unchanged when it is returned.
var ErrInvalidArgument = indexrange.ErrInvalidArgument

type Grid struct {
	// The committed selection.
	selection *set.Set

	// The drag in progress, if any. Its area is not part of the selection
	// until EndDrag.
	drag *set.Gesture

	logger logger.Logger
}

type Options struct {
	Rows, Cols int
	Logger     logger.Logger
}

func New(opts Options) *Grid {
	l := logger.OrDefault(opts.Logger)
	return &Grid{
		selection: set.New(set.Options{
			Rows:   opts.Rows,
			Cols:   opts.Cols,
			Logger: l,
		}),
		logger: l,
	}
}

// check logs rejected input at warn level and passes err through.
func (g *Grid) check(err error, op string, args ...any) error {
	if err != nil && errors.Is(err, ErrInvalidArgument) {
		g.logger.Warn("rejected selection intent",
			append([]any{"op", op, "err", err.Error()}, args...)...)
	}
	return err
}

func (g *Grid) add(op string, a area.Area, err error) error {
	if err != nil {
		return g.check(err, op)
	}
	return g.check(g.selection.AddArea(a), op, "area", a.String())
}

// SelectRow adds height rows starting at y.
func (g *Grid) SelectRow(y, height int) error {
	a, err := area.NewRow(y, height)
	return g.add("select-row", a, err)
}

// SelectColumn adds width columns starting at x.
func (g *Grid) SelectColumn(x, width int) error {
	a, err := area.NewColumn(x, width)
	return g.add("select-column", a, err)
}

// SelectRectangle adds the rectangle anchored at (x, y) with signed extents.
func (g *Grid) SelectRectangle(x, y, width, height int) error {
	a, err := area.NewRectangle(x, y, width, height)
	return g.add("select-rectangle", a, err)
}

func (g *Grid) SelectAll() error {
	return g.add("select-all", area.NewAll(), nil)
}

// Select adds an area built elsewhere, e.g. parsed from a reference.
func (g *Grid) Select(a area.Area) error {
	return g.add("select", a, nil)
}

// ToggleCell flips a single cell, as a ctrl-click does.
func (g *Grid) ToggleCell(x, y int) error {
	return g.check(g.selection.ToggleCell(x, y), "toggle", "x", x, "y", y)
}

// ExtendTo resizes the last selected area to reach (x, y), as a
// shift-click does.
func (g *Grid) ExtendTo(x, y int) error {
	return g.check(g.selection.ExtendTo(x, y), "extend", "x", x, "y", y)
}

// Remove deselects a from every area of its type.
func (g *Grid) Remove(a area.Area) error {
	return g.check(g.selection.RemoveArea(a), "remove", "area", a.String())
}

// Deselect removes region from every area whatever its type.
func (g *Grid) Deselect(region area.Area) error {
	return g.check(g.selection.SubtractRegion(region), "deselect", "area", region.String())
}

// Clear drops the selection and any drag in progress.
func (g *Grid) Clear() {
	g.CancelDrag()
	g.selection.Clear()
}

// Resize adopts new bounds after a data reload. The selection is dropped.
func (g *Grid) Resize(rows, cols int) {
	g.CancelDrag()
	g.selection.Reset(rows, cols)
}

// BeginDrag starts a drag from a, replacing any drag still in progress.
func (g *Grid) BeginDrag(a area.Area) error {
	gesture, err := g.selection.Begin(a)
	if err != nil {
		return g.check(err, "begin-drag", "area", a.String())
	}
	if g.drag != nil {
		g.logger.Debug("replacing unfinished drag", "area", g.drag.Area().String())
		g.drag.Cancel()
	}
	g.drag = gesture
	return nil
}

func (g *Grid) noDrag(op string) error {
	return g.check(fmt.Errorf("%w: no drag in progress", ErrInvalidArgument), op)
}

// DragTo moves the free corner of the pending drag to (x, y).
func (g *Grid) DragTo(x, y int) error {
	if g.drag == nil {
		return g.noDrag("drag-to")
	}
	return g.check(g.drag.ExtendTo(x, y), "drag-to", "x", x, "y", y)
}

// EndDrag commits the pending drag to the selection.
func (g *Grid) EndDrag() error {
	if g.drag == nil {
		return g.noDrag("end-drag")
	}
	if err := g.drag.Commit(); err != nil {
		return g.check(err, "end-drag")
	}
	g.drag = nil
	return nil
}

// CancelDrag discards the pending drag, if any.
func (g *Grid) CancelDrag() {
	if g.drag == nil {
		return
	}
	g.drag.Cancel()
	g.drag = nil
}

// Pending is the area of the drag in progress.
func (g *Grid) Pending() (area.Area, bool) {
	if g.drag == nil {
		return area.Area{}, false
	}
	return g.drag.Area(), true
}

// Query reports whether the cell (x, y) is selected. A pending drag does
// not count.
func (g *Grid) Query(x, y int) bool {
	return g.selection.Query(x, y)
}

func (g *Grid) Areas() []area.Area {
	return g.selection.Areas()
}

func (g *Grid) Rows() int { return g.selection.Rows() }
func (g *Grid) Cols() int { return g.selection.Cols() }

// Selection exposes the underlying set for viewport and export helpers.
func (g *Grid) Selection() *set.Set {
	return g.selection
}

func (g *Grid) Subscribe(l set.Listener) *set.Subscription {
	return g.selection.Subscribe(l)
}

// Find returns the areas matching the filter expression src, e.g.
// `type == "row" && size > 2`.
func (g *Grid) Find(src string) ([]area.Area, error) {
	f, err := query.Compile(src)
	if err != nil {
		return nil, err
	}
	return f.Select(g.selection.Areas())
}

// String dumps the selection with column and row headers.
func (g *Grid) String() string {
	return render.PlainString(g.selection, render.Options{
		Rows:   g.selection.Rows(),
		Cols:   g.selection.Cols(),
		Header: true,
	})
}
