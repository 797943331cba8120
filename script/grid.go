package script

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/npillmayer/regiontree"
)

// MaxGridCells limits the number of cells a grid command may print.
const MaxGridCells = 10_000

// ErrGridTooLarge is returned for grids of more than MaxGridCells cells.
var ErrGridTooLarge = errors.New("script: grid too large")

// CellReader reads single cells of a tree.
type CellReader interface {
	At(r, c int) (int64, error)
}

// Palette colors cell values by sign.
type Palette struct {
	Negative *color.Color
	Zero     *color.Color
	Positive *color.Color
}

// DefaultPalette returns the palette used by NewGridPrinter.
func DefaultPalette() Palette {
	return Palette{
		Negative: color.New(color.FgRed),
		Zero:     color.New(color.Faint),
		Positive: color.New(color.FgBlue),
	}
}

// GridPrinter prints rectangles of cells as right-aligned columns.
// Coloring is switched off globally by setting color.NoColor.
type GridPrinter struct {
	Colors Palette
}

// NewGridPrinter creates a grid printer with the default palette.
func NewGridPrinter() *GridPrinter {
	return &GridPrinter{Colors: DefaultPalette()}
}

// Print writes the cells of q to w, one line per row.
func (gp *GridPrinter) Print(w io.Writer, tree CellReader, q regiontree.Rect) error {
	if q.Empty() {
		return errors.Wrapf(regiontree.ErrInvalidRange, "grid %v", q)
	}
	if q.Area() > MaxGridCells {
		return errors.Wrapf(ErrGridTooLarge, "grid %v has %d cells, at most %d allowed",
			q, q.Area(), MaxGridCells)
	}
	rows := make([][]int64, 0, q.R2-q.R1+1)
	width := 1
	for r := q.R1; r <= q.R2; r++ {
		row := make([]int64, 0, q.C2-q.C1+1)
		for c := q.C1; c <= q.C2; c++ {
			v, err := tree.At(r, c)
			if err != nil {
				return err
			}
			width = max(width, len(strconv.FormatInt(v, 10)))
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				io.WriteString(w, " ")
			}
			cell := fmt.Sprintf("%*d", width, v)
			if c := gp.colorFor(v); c != nil {
				c.Fprint(w, cell)
			} else {
				io.WriteString(w, cell)
			}
		}
		io.WriteString(w, "\n")
	}
	return nil
}

func (gp *GridPrinter) colorFor(v int64) *color.Color {
	switch {
	case v < 0:
		return gp.Colors.Negative
	case v == 0:
		return gp.Colors.Zero
	}
	return gp.Colors.Positive
}
