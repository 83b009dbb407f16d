// Package export writes a selection into a spreadsheet workbook. Selected
// cells get a solid fill and the whole selection is recorded as a defined
// name, so it survives a round trip through a spreadsheet application.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hnimtadd/gridsel/selection/area"
	"github.com/hnimtadd/gridsel/selection/indexrange"
)

const (
	DefaultSheet = "Selection"
	DefaultColor = "FFE699"
	DefinedName  = "Selection"
)

type Options struct {
	Sheet      string
	Rows, Cols int
	// Fill color as RRGGBB.
	Color string
}

func (o *Options) defaults() {
	if o.Sheet == "" {
		o.Sheet = DefaultSheet
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
}

// cellName is the absolute A1 name of the zero-based cell (x, y).
func cellName(x, y int) (string, error) {
	return excelize.CoordinatesToCellName(x+1, y+1, true)
}

// RefersTo lists the clipped areas as a comma separated range reference on
// sheet, or "" when nothing is left after clipping.
func RefersTo(sheet string, rects []area.Area) (string, error) {
	quoted := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	refs := make([]string, 0, len(rects))
	for _, r := range rects {
		from, err := cellName(r.X, r.Y)
		if err != nil {
			return "", err
		}
		to, err := cellName(r.X+r.Width-1, r.Y+r.Height-1)
		if err != nil {
			return "", err
		}
		refs = append(refs, quoted+"!"+from+":"+to)
	}
	return strings.Join(refs, ","), nil
}

// WriteWorkbook paints areas onto a fresh workbook of opts.Rows x opts.Cols
// and writes it to w as xlsx.
func WriteWorkbook(w io.Writer, areas []area.Area, opts Options) (err error) {
	opts.defaults()
	if opts.Rows < 1 || opts.Cols < 1 {
		return fmt.Errorf("%w: workbook grid %dx%d", indexrange.ErrInvalidArgument, opts.Cols, opts.Rows)
	}

	f := excelize.NewFile()
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err := f.SetSheetName("Sheet1", opts.Sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{opts.Color}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create fill style: %w", err)
	}

	rects := make([]area.Area, 0, len(areas))
	for _, a := range areas {
		if r, ok := a.Clip(opts.Rows, opts.Cols); ok {
			rects = append(rects, r)
		}
	}
	for _, r := range rects {
		from, err := cellName(r.X, r.Y)
		if err != nil {
			return err
		}
		to, err := cellName(r.X+r.Width-1, r.Y+r.Height-1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(opts.Sheet, from, to, style); err != nil {
			return fmt.Errorf("style %s:%s: %w", from, to, err)
		}
	}

	if len(rects) > 0 {
		refersTo, err := RefersTo(opts.Sheet, rects)
		if err != nil {
			return err
		}
		if err := f.SetDefinedName(&excelize.DefinedName{
			Name:     DefinedName,
			RefersTo: refersTo,
		}); err != nil {
			return fmt.Errorf("define selection name: %w", err)
		}
	}
	return f.Write(w)
}
