package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

// RenderSummary writes one line per sheet with its row, column and merge
// counts and the outline maxima.
func RenderSummary(w io.Writer, wb *models.WorkbookData) error {
	t := tablewriter.NewWriter(w)
	t.Header("Sheet", "Rows", "First", "Last", "Columns", "Merges", "Row Level", "Col Level")
	for _, s := range wb.Sheets {
		first, last := -1, -1
		if len(s.Rows) > 0 {
			first, last = s.Rows[0].Num, s.Rows[len(s.Rows)-1].Num
		}
		if err := t.Append([]string{
			s.Name,
			strconv.Itoa(len(s.Rows)),
			strconv.Itoa(first),
			strconv.Itoa(last),
			strconv.Itoa(len(s.Columns)),
			strconv.Itoa(len(s.MergedRegions)),
			strconv.Itoa(s.Format.OutlineLevelRow),
			strconv.Itoa(s.Format.OutlineLevelCol),
		}); err != nil {
			return err
		}
	}
	return t.Render()
}

// RenderRows writes the rows of a sheet with their layout and cell values.
func RenderRows(w io.Writer, sheet *models.SheetData) error {
	t := tablewriter.NewWriter(w)
	t.Header("Row", "Height", "Hidden", "Level", "Cells")
	for _, row := range sheet.Rows {
		height := "default"
		if !row.UsesDefaultHeight() {
			height = strconv.FormatFloat(row.Height, 'f', -1, 64)
		}
		if err := t.Append([]string{
			strconv.Itoa(row.Num),
			height,
			strconv.FormatBool(row.Hidden),
			strconv.Itoa(row.OutlineLevel),
			formatCells(row),
		}); err != nil {
			return err
		}
	}
	return t.Render()
}

// RenderColumns writes the columns carrying metadata.
func RenderColumns(w io.Writer, sheet *models.SheetData) error {
	t := tablewriter.NewWriter(w)
	t.Header("Column", "Width", "Hidden", "Level")
	for _, col := range sheet.Columns {
		width := "default"
		if col.Width >= 0 {
			width = strconv.FormatFloat(col.Width, 'f', -1, 64)
		}
		if err := t.Append([]string{
			strconv.Itoa(col.Index),
			width,
			strconv.FormatBool(col.Hidden),
			strconv.Itoa(col.OutlineLevel),
		}); err != nil {
			return err
		}
	}
	return t.Render()
}

// RenderMerges writes the merged regions with their registry index.
func RenderMerges(w io.Writer, sheet *models.SheetData) error {
	t := tablewriter.NewWriter(w)
	t.Header("Index", "Range")
	for i, region := range sheet.MergedRegions {
		if err := t.Append([]string{strconv.Itoa(i), region.Ref()}); err != nil {
			return err
		}
	}
	return t.Render()
}

func formatCells(row models.Row) string {
	parts := make([]string, 0, len(row.Cells))
	for _, c := range row.Cells {
		name := models.CellRange{FirstRow: row.Num, LastRow: row.Num, FirstCol: c.Col, LastCol: c.Col}.TopLeft()
		parts = append(parts, fmt.Sprintf("%s=%v", name, c.V))
	}
	return strings.Join(parts, " ")
}
