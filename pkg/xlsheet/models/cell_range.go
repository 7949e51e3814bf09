package models

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellRange represents a rectangular block of cells with inclusive bounds.
type CellRange struct {
	// FirstRow is the top row (0-based).
	FirstRow int `json:"first_row"`
	// LastRow is the bottom row (0-based, inclusive).
	LastRow int `json:"last_row"`
	// FirstCol is the left column (0-based).
	FirstCol int `json:"first_col"`
	// LastCol is the right column (0-based, inclusive).
	LastCol int `json:"last_col"`
}

// NewCellRange builds a range from two corners given in any order.
func NewCellRange(row1, row2, col1, col2 int) CellRange {
	if row2 < row1 {
		row1, row2 = row2, row1
	}
	if col2 < col1 {
		col1, col2 = col2, col1
	}
	return CellRange{FirstRow: row1, LastRow: row2, FirstCol: col1, LastCol: col2}
}

// ParseCellRange parses a reference like $A$1:$D$10 or B3.
func ParseCellRange(ref string) (CellRange, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return CellRange{}, fmt.Errorf("invalid cell range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return CellRange{}, fmt.Errorf("invalid cell range %q: %w", ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return CellRange{}, fmt.Errorf("invalid cell range %q: %w", ref, err)
	}

	return NewCellRange(startRow-1, endRow-1, startCol-1, endCol-1), nil
}

// TopLeft returns the A1 name of the first cell.
func (c CellRange) TopLeft() string {
	name, _ := excelize.CoordinatesToCellName(c.FirstCol+1, c.FirstRow+1)
	return name
}

// BottomRight returns the A1 name of the last cell.
func (c CellRange) BottomRight() string {
	name, _ := excelize.CoordinatesToCellName(c.LastCol+1, c.LastRow+1)
	return name
}

// Ref formats the range in A1 notation, e.g. "B2:D4".
func (c CellRange) Ref() string {
	return c.TopLeft() + ":" + c.BottomRight()
}

// String implements fmt.Stringer.
func (c CellRange) String() string {
	return c.Ref()
}

// Contains reports whether the cell at (row, col) lies inside the range.
func (c CellRange) Contains(row, col int) bool {
	return row >= c.FirstRow && row <= c.LastRow && col >= c.FirstCol && col <= c.LastCol
}

// IsSingleCell reports whether the range covers exactly one cell.
func (c CellRange) IsSingleCell() bool {
	return c.FirstRow == c.LastRow && c.FirstCol == c.LastCol
}
