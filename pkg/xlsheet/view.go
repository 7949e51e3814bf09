package xlsheet

import (
	"fmt"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

// Zoom bounds in percent.
const (
	MinZoom = 10
	MaxZoom = 400
)

// SetDisplayGridlines shows or hides the cell gridlines.
func (s *Sheet) SetDisplayGridlines(show bool) { s.view.ShowGridLines = show }

// IsDisplayGridlines reports whether gridlines are shown.
func (s *Sheet) IsDisplayGridlines() bool { return s.view.ShowGridLines }

// SetDisplayFormulas shows formulas instead of their results.
func (s *Sheet) SetDisplayFormulas(show bool) { s.view.ShowFormulas = show }

// IsDisplayFormulas reports whether formulas are shown.
func (s *Sheet) IsDisplayFormulas() bool { return s.view.ShowFormulas }

// SetDisplayRowColHeadings shows or hides the row and column headings.
func (s *Sheet) SetDisplayRowColHeadings(show bool) { s.view.ShowRowColHeaders = show }

// IsDisplayRowColHeadings reports whether row and column headings are shown.
func (s *Sheet) IsDisplayRowColHeadings() bool { return s.view.ShowRowColHeaders }

// SetZoom sets the window zoom in percent.
func (s *Sheet) SetZoom(scale int) error {
	if scale < MinZoom || scale > MaxZoom {
		return NewSheetError(s.name, "set zoom", fmt.Errorf("scale %d not in [%d,%d]: %w", scale, MinZoom, MaxZoom, ErrOutOfRange))
	}
	s.view.ZoomScale = scale
	return nil
}

// SetZoomRatio sets the zoom as the fraction numerator/denominator, e.g. 3/4
// for 75%.
func (s *Sheet) SetZoomRatio(numerator, denominator int) error {
	if denominator <= 0 {
		return NewSheetError(s.name, "set zoom", fmt.Errorf("denominator %d: %w", denominator, ErrOutOfRange))
	}
	return s.SetZoom(numerator * 100 / denominator)
}

// Zoom returns the window zoom in percent, 100 when unset.
func (s *Sheet) Zoom() int {
	if s.view.ZoomScale == 0 {
		return 100
	}
	return s.view.ZoomScale
}

// ShowInPane scrolls the window so that (topRow, leftCol) is the first
// visible cell. Both are 0-based.
func (s *Sheet) ShowInPane(topRow, leftCol int) {
	s.view.TopLeftCell = models.CellRange{FirstRow: topRow, LastRow: topRow, FirstCol: leftCol, LastCol: leftCol}.TopLeft()
}

// TopLeftCell returns the first visible cell in A1 notation, "" when unset.
func (s *Sheet) TopLeftCell() string { return s.view.TopLeftCell }

// SetColumnWidth sets the width in characters of column (0-based).
func (s *Sheet) SetColumnWidth(column int, width float64) {
	s.columns.SetWidth(column+1, width)
}

// ColumnWidth returns the width of column (0-based), falling back to the
// default column width.
func (s *Sheet) ColumnWidth(column int) float64 {
	return s.columns.Width(column+1, s.format.DefaultColWidth)
}

// SetColumnHidden hides or shows column (0-based).
func (s *Sheet) SetColumnHidden(column int, hidden bool) {
	s.columns.SetHidden(column+1, hidden)
}

// IsColumnHidden reports whether column (0-based) is hidden.
func (s *Sheet) IsColumnHidden(column int) bool {
	return s.columns.Hidden(column + 1)
}

// SetDefaultColumnWidth sets the width in characters of columns without an
// explicit width.
func (s *Sheet) SetDefaultColumnWidth(width float64) { s.format.DefaultColWidth = width }

// DefaultColumnWidth returns the default column width in characters.
func (s *Sheet) DefaultColumnWidth() float64 { return s.format.DefaultColWidth }

// SetDefaultRowHeight sets the height in points of rows without an explicit
// height.
func (s *Sheet) SetDefaultRowHeight(height float64) { s.format.DefaultRowHeight = height }

// DefaultRowHeight returns the default row height in points.
func (s *Sheet) DefaultRowHeight() float64 { return s.format.DefaultRowHeight }
