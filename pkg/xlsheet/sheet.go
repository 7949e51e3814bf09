package xlsheet

import (
	"fmt"
	"sort"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/grid"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/merge"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/outline"
	"github.com/xuri/excelize/v2"
)

// Sheet is the in-memory model of one worksheet. It owns the row store, the
// merged region registry and the outline engine, and is the only caller of
// the shift algorithm and the header/footer codec.
//
// Sheet is not safe for concurrent use.
type Sheet struct {
	name string

	rows    *grid.Store
	merges  *merge.Registry
	columns *outline.Columns
	outline *outline.Engine

	format       models.SheetFormat
	summary      models.OutlineProperties
	headerFooter models.HeaderFooterText
	margins      models.PageMargins
	print        models.PrintOptions
	rowBreaks    []int
	colBreaks    []int
	view         models.SheetView
	printAreas   []models.CellRange

	links    HyperlinkResolver
	comments CommentsSource
}

// formatSink publishes outline maxima into the sheet format.
type formatSink struct {
	format *models.SheetFormat
}

func (f formatSink) SetOutlineLevelRow(level int) { f.format.OutlineLevelRow = level }
func (f formatSink) SetOutlineLevelCol(level int) { f.format.OutlineLevelCol = level }

// New creates an empty sheet.
func New(name string, opts SheetOptions) *Sheet {
	data := models.NewSheetData(name)
	if opts.DefaultRowHeight > 0 {
		data.Format.DefaultRowHeight = opts.DefaultRowHeight
	}
	if opts.DefaultColumnWidth > 0 {
		data.Format.DefaultColWidth = opts.DefaultColumnWidth
	}
	return FromData(data)
}

// FromData builds a sheet from a snapshot. The snapshot is copied; later
// changes to it do not affect the sheet. Outline maxima are recomputed from
// the rows and columns.
func FromData(data models.SheetData) *Sheet {
	s := &Sheet{
		name:         data.Name,
		rows:         grid.NewStore(),
		merges:       merge.NewRegistry(data.MergedRegions...),
		columns:      outline.NewColumns(data.Columns...),
		format:       data.Format,
		summary:      data.Outline,
		headerFooter: data.HeaderFooter,
		margins:      data.Margins,
		print:        data.Print,
		rowBreaks:    normalizeBreaks(data.Breaks.Rows),
		colBreaks:    normalizeBreaks(data.Breaks.Cols),
		view:         data.View,
		printAreas:   append([]models.CellRange(nil), data.PrintAreas...),
		links:        NewHyperlinkTable(data.Hyperlinks...),
		comments:     NewCommentTable(data.Comments...),
	}
	for i := range data.Rows {
		s.rows.Insert(copyRow(&data.Rows[i]))
	}
	s.outline = outline.NewEngine(s.rows, s.columns, formatSink{&s.format})
	s.outline.Publish()
	return s
}

// Snapshot returns a detached copy of the sheet.
func (s *Sheet) Snapshot() models.SheetData {
	data := models.SheetData{
		Name:          s.name,
		MergedRegions: s.merges.All(),
		Format:        s.format,
		Outline:       s.summary,
		HeaderFooter:  s.headerFooter,
		Margins:       s.margins,
		Print:         s.print,
		Breaks: models.PageBreaks{
			Rows: append([]int(nil), s.rowBreaks...),
			Cols: append([]int(nil), s.colBreaks...),
		},
		View:       s.view,
		Hyperlinks: s.links.Hyperlinks(),
		Comments:   s.comments.Comments(),
		PrintAreas: append([]models.CellRange(nil), s.printAreas...),
	}
	s.rows.Ascend(func(row *models.Row) bool {
		data.Rows = append(data.Rows, *copyRow(row))
		return true
	})
	for _, col := range s.columns.All() {
		data.Columns = append(data.Columns, *col)
	}
	return data
}

// Name returns the sheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Format returns the sheet format properties, including the outline maxima.
func (s *Sheet) Format() models.SheetFormat {
	return s.format
}

// CreateRow adds an empty row numbered num (0-based) and returns it. An
// existing row with the same number is replaced.
func (s *Sheet) CreateRow(num int) (*models.Row, error) {
	if err := checkRowNum(num); err != nil {
		return nil, NewSheetError(s.name, "create row", err)
	}
	return s.rows.Create(num), nil
}

// Row returns the row numbered num, or nil when it does not exist.
func (s *Sheet) Row(num int) *models.Row {
	return s.rows.Get(num)
}

// RemoveRow deletes the row numbered num.
func (s *Sheet) RemoveRow(num int) {
	s.rows.Remove(num)
}

// Rows returns the rows in ascending order.
func (s *Sheet) Rows() []*models.Row {
	return s.rows.Rows()
}

// FirstRowNum returns the number of the first row, or -1 when the sheet has
// no rows.
func (s *Sheet) FirstRowNum() int {
	return s.rows.FirstRowNum()
}

// LastRowNum returns the number of the last row, or -1 when the sheet has
// no rows.
func (s *Sheet) LastRowNum() int {
	return s.rows.LastRowNum()
}

// PhysicalNumberOfRows returns the number of rows actually stored.
func (s *Sheet) PhysicalNumberOfRows() int {
	return s.rows.PhysicalRowCount()
}

// SetCellValue stores v at (row, col), creating the row when needed.
func (s *Sheet) SetCellValue(row, col int, v interface{}) error {
	if err := checkRowNum(row); err != nil {
		return NewSheetError(s.name, "set cell value", err)
	}
	if col < 0 || col >= excelize.MaxColumns {
		return NewSheetError(s.name, "set cell value",
			fmt.Errorf("column %d outside 0:%d: %w", col, excelize.MaxColumns-1, ErrOutOfRange))
	}
	r := s.rows.Get(row)
	if r == nil {
		r = s.rows.Create(row)
	}
	r.SetCell(col, v)
	return nil
}

// CellValue returns the value at (row, col).
func (s *Sheet) CellValue(row, col int) (interface{}, bool) {
	r := s.rows.Get(row)
	if r == nil {
		return nil, false
	}
	return r.Cell(col)
}

// checkRowNum validates a 0-based row number.
func checkRowNum(num int) error {
	if num < 0 || num >= excelize.TotalRows {
		return fmt.Errorf("row %d outside 0:%d: %w", num, excelize.TotalRows-1, ErrOutOfRange)
	}
	return nil
}

func copyRow(row *models.Row) *models.Row {
	c := *row
	c.Cells = append([]models.Cell(nil), row.Cells...)
	return &c
}

func normalizeBreaks(ids []int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		out = insertBreak(out, id)
	}
	return out
}

func insertBreak(ids []int, id int) []int {
	i := sort.SearchInts(ids, id)
	if i < len(ids) && ids[i] == id {
		return ids
	}
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}

func removeBreak(ids []int, id int) []int {
	i := sort.SearchInts(ids, id)
	if i < len(ids) && ids[i] == id {
		return append(ids[:i], ids[i+1:]...)
	}
	return ids
}

func hasBreak(ids []int, id int) bool {
	i := sort.SearchInts(ids, id)
	return i < len(ids) && ids[i] == id
}
