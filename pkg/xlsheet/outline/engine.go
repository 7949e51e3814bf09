package outline

import (
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/grid"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

// FormatSink receives the sheet-wide maximum outline levels.
type FormatSink interface {
	SetOutlineLevelRow(level int)
	SetOutlineLevelCol(level int)
}

// Engine groups and ungroups bands of rows and columns.
//
// Bands are 1-based and inclusive on both axes. Rows are stored 0-based, so
// row band index i maps to row number i-1.
type Engine struct {
	rows   *grid.Store
	cols   *Columns
	format FormatSink
}

// NewEngine creates an engine over the given stores.
func NewEngine(rows *grid.Store, cols *Columns, format FormatSink) *Engine {
	return &Engine{rows: rows, cols: cols, format: format}
}

// GroupRows raises the outline level of every row in [from, to], creating
// missing rows.
func (e *Engine) GroupRows(from, to int) {
	for i := from; i <= to; i++ {
		row := e.rows.Get(i - 1)
		if row == nil {
			row = e.rows.Create(i - 1)
		}
		row.OutlineLevel++
	}
	e.Publish()
}

// UngroupRows lowers the outline level of every existing row in [from, to].
// A row that ends at level 0 with no cells is removed.
func (e *Engine) UngroupRows(from, to int) {
	var band []*models.Row
	e.rows.AscendRange(from-1, to-1, func(row *models.Row) bool {
		band = append(band, row)
		return true
	})
	for _, row := range band {
		row.OutlineLevel--
		if row.OutlineLevel == 0 && row.FirstCellNum() == -1 {
			e.rows.Remove(row.Num)
		}
	}
	e.Publish()
}

// GroupColumns raises the outline level of every column in [from, to].
func (e *Engine) GroupColumns(from, to int) {
	for i := from; i <= to; i++ {
		e.cols.Ensure(i).OutlineLevel++
	}
	e.Publish()
}

// UngroupColumns lowers the outline level of every existing column in
// [from, to]. A column that ends at level 0 or below is removed together
// with its width and visibility.
func (e *Engine) UngroupColumns(from, to int) {
	for i := from; i <= to; i++ {
		col := e.cols.Get(i)
		if col == nil {
			continue
		}
		col.OutlineLevel--
		if col.OutlineLevel <= 0 {
			e.cols.Remove(i)
		}
	}
	e.Publish()
}

// MaxRowLevel returns the highest outline level over all rows.
func (e *Engine) MaxRowLevel() int {
	level := 0
	e.rows.Ascend(func(row *models.Row) bool {
		if row.OutlineLevel > level {
			level = row.OutlineLevel
		}
		return true
	})
	return level
}

// MaxColumnLevel returns the highest outline level over all columns.
func (e *Engine) MaxColumnLevel() int {
	level := 0
	for _, col := range e.cols.cols {
		if col.OutlineLevel > level {
			level = col.OutlineLevel
		}
	}
	return level
}

// Publish pushes both maxima to the format sink. Every group and ungroup
// call ends with it.
func (e *Engine) Publish() {
	if e.format == nil {
		return
	}
	e.format.SetOutlineLevelRow(e.MaxRowLevel())
	e.format.SetOutlineLevelCol(e.MaxColumnLevel())
}
