// Package query filters selection areas with small boolean expressions
// such as `type == "row" && size > 2` or `Covers(3, 4)`.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/hnimtadd/gridsel/selection/area"
)

// env is what an expression sees for one area. Geometry a type does not use
// reads as zero.
type env struct {
	Type   string `expr:"type"`
	X      int    `expr:"x"`
	Y      int    `expr:"y"`
	Width  int    `expr:"width"`
	Height int    `expr:"height"`
	Size   int    `expr:"size"`
}

// Covers reports whether the area includes the cell (x, y).
func (e env) Covers(x, y int) bool {
	t, ok := area.ParseType(e.Type)
	if !ok {
		return false
	}
	a := area.Area{Type: t, X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
	return a.Includes(x, y)
}

func envOf(a area.Area) env {
	return env{
		Type:   a.Type.String(),
		X:      a.X,
		Y:      a.Y,
		Width:  a.Width,
		Height: a.Height,
		Size:   a.Size(),
	}
}

// Filter is a compiled expression. It is immutable and can be reused.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile checks src against the area environment; unknown names and
// non-boolean results are compile errors.
func Compile(src string) (*Filter, error) {
	program, err := expr.Compile(src, expr.Env(env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", src, err)
	}
	return &Filter{source: src, program: program}, nil
}

func (f *Filter) String() string { return f.source }

// Match evaluates the filter for a.
func (f *Filter) Match(a area.Area) (bool, error) {
	out, err := expr.Run(f.program, envOf(a))
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q: %w", f.source, err)
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q evaluated to %T, expected bool", f.source, out)
	}
	return matched, nil
}

// Select keeps, in order, the areas the filter matches.
func (f *Filter) Select(areas []area.Area) ([]area.Area, error) {
	var out []area.Area
	for _, a := range areas {
		ok, err := f.Match(a)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, a)
		}
	}
	return out, nil
}
