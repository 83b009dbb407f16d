package set

import (
	"fmt"

	"github.com/hnimtadd/gridsel/selection/area"
	"github.com/hnimtadd/gridsel/selection/indexrange"
)

// Gesture is an area being dragged out. It is invisible to Query until
// Commit adds it to the set; Cancel discards it.
type Gesture struct {
	set  *Set
	area area.Area
	done bool
}

// Begin starts a gesture from a, typically a single cell, row or column at
// the point where the drag started.
func (s *Set) Begin(a area.Area) (*Gesture, error) {
	if err := s.validate(a); err != nil {
		return nil, err
	}
	return &Gesture{set: s, area: a}, nil
}

// Area is the in-progress area.
func (g *Gesture) Area() area.Area { return g.area }

func (g *Gesture) Done() bool { return g.done }

func (g *Gesture) finished() error {
	return fmt.Errorf("%w: gesture already finished", indexrange.ErrInvalidArgument)
}

// ExtendTo resizes the pending area from its anchor to (x, y). On error the
// pending area is unchanged.
func (g *Gesture) ExtendTo(x, y int) error {
	if g.done {
		return g.finished()
	}
	if err := g.set.checkCell(x, y); err != nil {
		return err
	}
	extended, err := g.area.ExtendTo(x, y)
	if err != nil {
		return err
	}
	g.area = extended
	return nil
}

// Commit adds the pending area to the set, merging like AddArea does.
func (g *Gesture) Commit() error {
	if g.done {
		return g.finished()
	}
	if err := g.set.AddArea(g.area); err != nil {
		return err
	}
	g.done = true
	return nil
}

// Cancel drops the pending area. The set never saw it.
func (g *Gesture) Cancel() {
	g.done = true
}
