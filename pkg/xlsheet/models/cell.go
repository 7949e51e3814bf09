// Package models defines data structures for the sheet model.
package models

import "sort"

// Cell is a single cell value within a row.
type Cell struct {
	// Col is the column index (0-based).
	Col int `json:"c"`
	// V is the cell value. The model does not interpret it.
	V interface{} `json:"v"`
}

// Row represents a single row with its cells and layout attributes.
type Row struct {
	// Num is the row index (0-based).
	Num int `json:"r"`
	// Cells holds the row's cells ordered by column.
	Cells []Cell `json:"cells,omitempty"`
	// Height is the row height in points, -1 when the sheet default applies.
	Height float64 `json:"height"`
	// Hidden reports whether the row is hidden.
	Hidden bool `json:"hidden,omitzero"`
	// OutlineLevel is the grouping depth (0 = not grouped).
	OutlineLevel int `json:"outline_level,omitzero"`
}

// NewRow returns an empty row using the default height.
func NewRow(num int) *Row {
	return &Row{Num: num, Height: -1}
}

// FirstCellNum returns the column of the first cell, or -1 if the row has no cells.
func (r *Row) FirstCellNum() int {
	if len(r.Cells) == 0 {
		return -1
	}
	return r.Cells[0].Col
}

// LastCellNum returns the column of the last cell, or -1 if the row has no cells.
func (r *Row) LastCellNum() int {
	if len(r.Cells) == 0 {
		return -1
	}
	return r.Cells[len(r.Cells)-1].Col
}

// Cell returns the value stored at col.
func (r *Row) Cell(col int) (interface{}, bool) {
	i := sort.Search(len(r.Cells), func(i int) bool { return r.Cells[i].Col >= col })
	if i < len(r.Cells) && r.Cells[i].Col == col {
		return r.Cells[i].V, true
	}
	return nil, false
}

// SetCell stores v at col, keeping cells ordered by column.
func (r *Row) SetCell(col int, v interface{}) {
	i := sort.Search(len(r.Cells), func(i int) bool { return r.Cells[i].Col >= col })
	if i < len(r.Cells) && r.Cells[i].Col == col {
		r.Cells[i].V = v
		return
	}
	r.Cells = append(r.Cells, Cell{})
	copy(r.Cells[i+1:], r.Cells[i:])
	r.Cells[i] = Cell{Col: col, V: v}
}

// RemoveCell deletes the cell at col if present.
func (r *Row) RemoveCell(col int) {
	i := sort.Search(len(r.Cells), func(i int) bool { return r.Cells[i].Col >= col })
	if i < len(r.Cells) && r.Cells[i].Col == col {
		r.Cells = append(r.Cells[:i], r.Cells[i+1:]...)
	}
}

// UsesDefaultHeight reports whether the row has no explicit height.
func (r *Row) UsesDefaultHeight() bool {
	return r.Height < 0
}
