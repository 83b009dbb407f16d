// Package render prints a selection as text, one line per grid row. It is
// meant for debugging, tests and the command line, not for painting.
package render

import (
	"strconv"
	"strings"

	dw "github.com/mattn/go-runewidth"

	"github.com/hnimtadd/gridsel/selection/ref"
)

// Querier answers whether a cell is selected, such as *set.Set.
type Querier interface {
	Query(x, y int) bool
}

type Options struct {
	Rows, Cols int

	// Marks for selected and unselected cells. They may be wide runes.
	Selected   string
	Unselected string

	// Header adds column names above the grid and row numbers to its left.
	Header bool
}

func (o *Options) defaults() {
	if o.Selected == "" {
		o.Selected = "#"
	}
	if o.Unselected == "" {
		o.Unselected = "."
	}
}

// PlainString renders q over the grid described by opts.
func PlainString(q Querier, opts Options) string {
	opts.defaults()
	markWidth := max(dw.StringWidth(opts.Selected), dw.StringWidth(opts.Unselected))

	widths := make([]int, opts.Cols)
	for x := range widths {
		widths[x] = markWidth
		if opts.Header {
			widths[x] = max(markWidth, dw.StringWidth(ref.ColToName(x)))
		}
	}
	labelWidth := 0
	if opts.Header {
		labelWidth = len(strconv.Itoa(opts.Rows))
	}

	var b strings.Builder
	if opts.Header {
		b.WriteString(strings.Repeat(" ", labelWidth))
		for x, w := range widths {
			b.WriteByte(' ')
			b.WriteString(dw.FillRight(ref.ColToName(x), w))
		}
		b.WriteByte('\n')
	}
	for y := range opts.Rows {
		if opts.Header {
			b.WriteString(dw.FillLeft(strconv.Itoa(y+1), labelWidth))
		}
		for x, w := range widths {
			if opts.Header || x > 0 {
				b.WriteByte(' ')
			}
			mark := opts.Unselected
			if q.Query(x, y) {
				mark = opts.Selected
			}
			b.WriteString(dw.FillRight(mark, w))
		}
		if y < opts.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
