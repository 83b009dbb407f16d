// Package ref reads and writes A1-style references to selection areas:
// "B3" (one cell), "A1:C3" (rectangle), "3:5" (rows), "B:D" (columns) and
// "*" (everything).
package ref

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hnimtadd/gridsel/selection/area"
	"github.com/hnimtadd/gridsel/selection/coordinate"
	"github.com/hnimtadd/gridsel/selection/indexrange"
	"golang.org/x/text/width"
)

// ColToName converts a 0-based column index to a column name.
// 0→"A", 25→"Z", 26→"AA", 702→"AAA"
func ColToName(col int) string {
	result := ""
	col++ // convert to 1-based for algorithm
	for col > 0 {
		col-- // adjust for 0-indexed letter
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

// NameToCol converts a column name to a 0-based column index.
// "A"→0, "Z"→25, "AA"→26
func NameToCol(name string) (int, error) {
	name = strings.ToUpper(name)
	if name == "" {
		return 0, fmt.Errorf("%w: empty column name", indexrange.ErrInvalidArgument)
	}
	col := 0
	for _, ch := range name {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("%w: invalid column name %q", indexrange.ErrInvalidArgument, name)
		}
		col = col*26 + int(ch-'A') + 1
	}
	return col - 1, nil
}

// normalize folds full-width input ("Ｂ３") to ASCII and drops absolute
// markers and surrounding space.
func normalize(s string) string {
	s = width.Fold.String(s)
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, "$", "")
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}

// parseRow reads a 1-based row number into a 0-based index.
func parseRow(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: invalid row number %q", indexrange.ErrInvalidArgument, s)
	}
	return n - 1, nil
}

// ParseCell parses a single cell such as "B3" or "$B$3".
func ParseCell(s string) (coordinate.Cell, error) {
	name := normalize(s)
	i := 0
	for i < len(name) && isAlpha(name[i]) {
		i++
	}
	if i == 0 || i == len(name) {
		return coordinate.Cell{}, fmt.Errorf("%w: invalid cell reference %q", indexrange.ErrInvalidArgument, s)
	}
	col, err := NameToCol(name[:i])
	if err != nil {
		return coordinate.Cell{}, err
	}
	row, err := parseRow(name[i:])
	if err != nil {
		return coordinate.Cell{}, err
	}
	return coordinate.NewPoint(col, row), nil
}

// Parse reads one area reference. The first cell of a range is the anchor,
// so "C3:A1" keeps its bottom-right corner for later resizes.
func Parse(s string) (area.Area, error) {
	text := normalize(s)
	if text == "*" {
		return area.NewAll(), nil
	}
	first, last, isRange := strings.Cut(text, ":")
	if !isRange {
		cell, err := ParseCell(text)
		if err != nil {
			return area.Area{}, err
		}
		return area.NewCell(cell.X, cell.Y)
	}

	switch {
	case isDigits(first) && isDigits(last):
		from, err := parseRow(first)
		if err != nil {
			return area.Area{}, err
		}
		to, err := parseRow(last)
		if err != nil {
			return area.Area{}, err
		}
		a, err := area.NewRow(from, 1)
		if err != nil {
			return area.Area{}, err
		}
		return a.ExtendTo(0, to)
	case isLetters(first) && isLetters(last):
		from, err := NameToCol(first)
		if err != nil {
			return area.Area{}, err
		}
		to, err := NameToCol(last)
		if err != nil {
			return area.Area{}, err
		}
		a, err := area.NewColumn(from, 1)
		if err != nil {
			return area.Area{}, err
		}
		return a.ExtendTo(to, 0)
	}

	from, err := ParseCell(first)
	if err != nil {
		return area.Area{}, fmt.Errorf("invalid area reference %q: %w", s, err)
	}
	to, err := ParseCell(last)
	if err != nil {
		return area.Area{}, fmt.Errorf("invalid area reference %q: %w", s, err)
	}
	a, err := area.NewCell(from.X, from.Y)
	if err != nil {
		return area.Area{}, err
	}
	return a.ExtendTo(to.X, to.Y)
}

// ParseList reads references separated by commas or semicolons.
func ParseList(s string) ([]area.Area, error) {
	parts := strings.FieldsFunc(width.Fold.String(s), func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := make([]area.Area, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		a, err := Parse(part)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// CellName formats a cell as "B3".
func CellName(x, y int) string {
	return ColToName(x) + strconv.Itoa(y+1)
}

// Format writes a in the form Parse reads, top-left first.
func Format(a area.Area) string {
	switch a.Type {
	case area.TypeRow:
		return fmt.Sprintf("%d:%d", a.Y+1, a.Y+a.Height)
	case area.TypeColumn:
		return ColToName(a.X) + ":" + ColToName(a.X+a.Width-1)
	case area.TypeRectangle:
		if a.Width == 1 && a.Height == 1 {
			return CellName(a.X, a.Y)
		}
		return CellName(a.X, a.Y) + ":" + CellName(a.X+a.Width-1, a.Y+a.Height-1)
	case area.TypeAll:
		return "*"
	default:
		return "?"
	}
}
