package xlsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GroupRow raises the outline level of rows fromRow..toRow. Both bounds are
// 1-based and inclusive.
func (s *Sheet) GroupRow(fromRow, toRow int) error {
	if err := checkBand(fromRow, toRow, excelize.TotalRows); err != nil {
		return NewSheetError(s.name, "group rows", err)
	}
	s.outline.GroupRows(fromRow, toRow)
	return nil
}

// UngroupRow lowers the outline level of rows fromRow..toRow (1-based).
// Rows left at level 0 without cells are removed.
func (s *Sheet) UngroupRow(fromRow, toRow int) error {
	if err := checkBand(fromRow, toRow, excelize.TotalRows); err != nil {
		return NewSheetError(s.name, "ungroup rows", err)
	}
	s.outline.UngroupRows(fromRow, toRow)
	return nil
}

// GroupColumn raises the outline level of columns fromColumn..toColumn
// (1-based).
func (s *Sheet) GroupColumn(fromColumn, toColumn int) error {
	if err := checkBand(fromColumn, toColumn, excelize.MaxColumns); err != nil {
		return NewSheetError(s.name, "group columns", err)
	}
	s.outline.GroupColumns(fromColumn, toColumn)
	return nil
}

// UngroupColumn lowers the outline level of columns fromColumn..toColumn
// (1-based). Columns left at level 0 lose their width and hidden flag too.
func (s *Sheet) UngroupColumn(fromColumn, toColumn int) error {
	if err := checkBand(fromColumn, toColumn, excelize.MaxColumns); err != nil {
		return NewSheetError(s.name, "ungroup columns", err)
	}
	s.outline.UngroupColumns(fromColumn, toColumn)
	return nil
}

// checkBand validates a 1-based inclusive band against the sheet limit.
func checkBand(from, to, limit int) error {
	if from < 1 || to > limit || from > to {
		return fmt.Errorf("band %d:%d outside 1:%d: %w", from, to, limit, ErrOutOfRange)
	}
	return nil
}

// RowOutlineLevel returns the outline level of row num (0-based).
func (s *Sheet) RowOutlineLevel(num int) int {
	if row := s.rows.Get(num); row != nil {
		return row.OutlineLevel
	}
	return 0
}

// ColumnOutlineLevel returns the outline level of column index (1-based).
func (s *Sheet) ColumnOutlineLevel(index int) int {
	if col := s.columns.Get(index); col != nil {
		return col.OutlineLevel
	}
	return 0
}

// SetRowSumsBelow sets whether summary rows appear below detail rows.
func (s *Sheet) SetRowSumsBelow(value bool) {
	s.summary.SummaryBelow = value
}

// RowSumsBelow reports whether summary rows appear below detail rows.
func (s *Sheet) RowSumsBelow() bool {
	return s.summary.SummaryBelow
}

// SetRowSumsRight sets whether summary columns appear right of detail columns.
func (s *Sheet) SetRowSumsRight(value bool) {
	s.summary.SummaryRight = value
}

// RowSumsRight reports whether summary columns appear right of detail columns.
func (s *Sheet) RowSumsRight() bool {
	return s.summary.SummaryRight
}
