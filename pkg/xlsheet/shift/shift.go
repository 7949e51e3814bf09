// Package shift relocates bands of rows within a sheet.
package shift

import (
	"fmt"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/grid"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

// Params describes a row shift.
type Params struct {
	// Start is the first row of the band (0-based).
	Start int
	// End is the last row of the band (0-based, inclusive).
	End int
	// N is the distance to move; negative values move up.
	N int
	// CopyRowHeight keeps explicit row heights. When false every row falls
	// back to the sheet default.
	CopyRowHeight bool
	// ResetOriginalRowHeight sets every row to the sheet default height.
	ResetOriginalRowHeight bool
}

// Result lists what a shift did, by original row number.
type Result struct {
	Moved   []int
	Dropped []int
}

// Rows moves every row in [p.Start, p.End] by p.N. Rows sitting in the
// landing zone outside the band are dropped. Height rules apply to every
// row of the sheet, not only the band. Merged regions are left untouched.
func Rows(store *grid.Store, p Params, defaultHeight float64) (Result, error) {
	if p.Start < 0 || p.End < p.Start {
		return Result{}, fmt.Errorf("invalid row band [%d,%d]: %w", p.Start, p.End, models.ErrOutOfRange)
	}
	if p.Start+p.N < 0 {
		return Result{}, fmt.Errorf("shifting row %d by %d leaves the sheet: %w", p.Start, p.N, models.ErrOutOfRange)
	}

	var res Result
	rows := store.Rows()
	kept := rows[:0]
	for _, row := range rows {
		if !p.CopyRowHeight {
			row.Height = -1
		}
		if p.ResetOriginalRowHeight && defaultHeight >= 0 {
			row.Height = defaultHeight
		}

		switch {
		case Overwritten(p.Start, p.End, p.N, row.Num):
			res.Dropped = append(res.Dropped, row.Num)
			continue
		case row.Num >= p.Start && row.Num <= p.End:
			res.Moved = append(res.Moved, row.Num)
			row.Num += p.N
		}
		kept = append(kept, row)
	}

	store.Rebuild(kept)
	return res, nil
}

// Overwritten reports whether row rownum lies in the landing zone of the
// band [start, end] moved by n without being part of the band itself.
func Overwritten(start, end, n, rownum int) bool {
	if rownum < start+n || rownum > end+n {
		return false
	}
	if n > 0 && rownum > end {
		return true
	}
	if n < 0 && rownum < start {
		return true
	}
	return false
}
