// Package outline implements row and column grouping.
package outline

import (
	"sort"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

// Columns stores per-column metadata keyed by 1-based column index.
type Columns struct {
	cols map[int]*models.Column
}

// NewColumns creates a helper holding the given columns.
func NewColumns(cols ...models.Column) *Columns {
	c := &Columns{cols: make(map[int]*models.Column, len(cols))}
	for i := range cols {
		col := cols[i]
		c.cols[col.Index] = &col
	}
	return c
}

// Get returns the column at index, or nil when it carries no metadata.
func (c *Columns) Get(index int) *models.Column {
	return c.cols[index]
}

// Ensure returns the column at index, creating it when needed.
func (c *Columns) Ensure(index int) *models.Column {
	col, ok := c.cols[index]
	if !ok {
		col = &models.Column{Index: index, Width: -1}
		c.cols[index] = col
	}
	return col
}

// Remove drops all metadata of the column at index.
func (c *Columns) Remove(index int) {
	delete(c.cols, index)
}

// Len returns the number of columns carrying metadata.
func (c *Columns) Len() int {
	return len(c.cols)
}

// All returns the columns sorted by index.
func (c *Columns) All() []*models.Column {
	out := make([]*models.Column, 0, len(c.cols))
	for _, col := range c.cols {
		out = append(out, col)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// SetWidth sets the width in characters of the column at index.
func (c *Columns) SetWidth(index int, width float64) {
	c.Ensure(index).Width = width
}

// Width returns the width of the column at index, or def when unset.
func (c *Columns) Width(index int, def float64) float64 {
	if col := c.Get(index); col != nil && col.Width >= 0 {
		return col.Width
	}
	return def
}

// SetHidden hides or shows the column at index.
func (c *Columns) SetHidden(index int, hidden bool) {
	c.Ensure(index).Hidden = hidden
}

// Hidden reports whether the column at index is hidden.
func (c *Columns) Hidden(index int) bool {
	col := c.Get(index)
	return col != nil && col.Hidden
}
