package xlsheet

import (
	"fmt"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

// MarginKind identifies one of the six page margins.
type MarginKind int

const (
	LeftMargin MarginKind = iota
	RightMargin
	TopMargin
	BottomMargin
	HeaderMargin
	FooterMargin
)

func (k MarginKind) String() string {
	switch k {
	case LeftMargin:
		return "left"
	case RightMargin:
		return "right"
	case TopMargin:
		return "top"
	case BottomMargin:
		return "bottom"
	case HeaderMargin:
		return "header"
	case FooterMargin:
		return "footer"
	}
	return fmt.Sprintf("MarginKind(%d)", int(k))
}

// ParseMarginKind returns the margin named name, e.g. "top".
func ParseMarginKind(name string) (MarginKind, error) {
	for k := LeftMargin; k <= FooterMargin; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("margin %q: %w", name, ErrUnknownMargin)
}

func (s *Sheet) margin(kind MarginKind) *float64 {
	switch kind {
	case LeftMargin:
		return &s.margins.Left
	case RightMargin:
		return &s.margins.Right
	case TopMargin:
		return &s.margins.Top
	case BottomMargin:
		return &s.margins.Bottom
	case HeaderMargin:
		return &s.margins.Header
	case FooterMargin:
		return &s.margins.Footer
	}
	return nil
}

// Margin returns the size of a page margin in inches.
func (s *Sheet) Margin(kind MarginKind) (float64, error) {
	m := s.margin(kind)
	if m == nil {
		return 0, NewSheetError(s.name, "get margin", fmt.Errorf("%v: %w", kind, ErrUnknownMargin))
	}
	return *m, nil
}

// SetMargin sets the size of a page margin in inches.
func (s *Sheet) SetMargin(kind MarginKind, size float64) error {
	m := s.margin(kind)
	if m == nil {
		return NewSheetError(s.name, "set margin", fmt.Errorf("%v: %w", kind, ErrUnknownMargin))
	}
	*m = size
	return nil
}

// SetRowBreak inserts a manual page break after row (0-based).
func (s *Sheet) SetRowBreak(row int) {
	s.rowBreaks = insertBreak(s.rowBreaks, row)
}

// RemoveRowBreak removes the page break after row.
func (s *Sheet) RemoveRowBreak(row int) {
	s.rowBreaks = removeBreak(s.rowBreaks, row)
}

// IsRowBroken reports whether a page break follows row.
func (s *Sheet) IsRowBroken(row int) bool {
	return hasBreak(s.rowBreaks, row)
}

// RowBreaks returns the rows followed by a page break, in ascending order.
// The result is empty, never nil, when no breaks are set.
func (s *Sheet) RowBreaks() []int {
	return append([]int{}, s.rowBreaks...)
}

// SetColumnBreak inserts a manual page break after column (0-based).
func (s *Sheet) SetColumnBreak(column int) {
	s.colBreaks = insertBreak(s.colBreaks, column)
}

// RemoveColumnBreak removes the page break after column.
func (s *Sheet) RemoveColumnBreak(column int) {
	s.colBreaks = removeBreak(s.colBreaks, column)
}

// IsColumnBroken reports whether a page break follows column.
func (s *Sheet) IsColumnBroken(column int) bool {
	return hasBreak(s.colBreaks, column)
}

// ColumnBreaks returns the columns followed by a page break. The result is
// empty, never nil, when no breaks are set.
func (s *Sheet) ColumnBreaks() []int {
	return append([]int{}, s.colBreaks...)
}

// SetHorizontallyCenter centers the content horizontally on printed pages.
func (s *Sheet) SetHorizontallyCenter(value bool) {
	s.print.HorizontallyCentered = value
}

// HorizontallyCenter reports whether printed content is centered horizontally.
func (s *Sheet) HorizontallyCenter() bool {
	return s.print.HorizontallyCentered
}

// SetVerticallyCenter centers the content vertically on printed pages.
func (s *Sheet) SetVerticallyCenter(value bool) {
	s.print.VerticallyCentered = value
}

// VerticallyCenter reports whether printed content is centered vertically.
func (s *Sheet) VerticallyCenter() bool {
	return s.print.VerticallyCentered
}

// PrintAreas returns the user-defined print areas.
func (s *Sheet) PrintAreas() []models.CellRange {
	return append([]models.CellRange(nil), s.printAreas...)
}

// SetPrintAreas replaces the print areas. No areas clears them.
func (s *Sheet) SetPrintAreas(areas ...models.CellRange) {
	s.printAreas = append([]models.CellRange(nil), areas...)
}
