// Package writer saves sheet snapshots as xlsx files through excelize.
package writer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets is returned when saving a workbook without sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

const (
	printAreaName   = "_xlnm.Print_Area"
	maxOutlineLevel = 7
)

// SaveWorkbook writes sheets, in order, into a new xlsx file at path.
func SaveWorkbook(path string, sheets ...models.SheetData) error {
	if len(sheets) == 0 {
		return ErrNoSheets
	}

	f := excelize.NewFile()
	defer f.Close()

	first := f.GetSheetName(0)
	for i, data := range sheets {
		if i == 0 {
			if err := f.SetSheetName(first, data.Name); err != nil {
				return fmt.Errorf("naming sheet %q: %w", data.Name, err)
			}
		} else if _, err := f.NewSheet(data.Name); err != nil {
			return fmt.Errorf("adding sheet %q: %w", data.Name, err)
		}
		if err := WriteSheet(f, data); err != nil {
			return fmt.Errorf("writing sheet %q: %w", data.Name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}
	pkg, err := patchPackage(buf.Bytes(), sheets)
	if err != nil {
		return err
	}
	return os.WriteFile(path, pkg, 0o644)
}

// WriteSheet writes a snapshot into the existing sheet data.Name of f.
// Merged regions and page breaks are left out; SaveWorkbook adds them to
// the saved package.
func WriteSheet(f *excelize.File, data models.SheetData) error {
	steps := []struct {
		name string
		fn   func(*excelize.File, models.SheetData) error
	}{
		{"rows", writeRows},
		{"columns", writeColumns},
		{"format", writeFormat},
		{"header/footer", writeHeaderFooter},
		{"margins", writeMargins},
		{"view", writeView},
		{"hyperlinks", writeHyperlinks},
		{"comments", writeComments},
		{"print areas", writePrintAreas},
	}
	for _, step := range steps {
		if err := step.fn(f, data); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	return nil
}

func cellName(row, col int) (string, error) {
	return excelize.CoordinatesToCellName(col+1, row+1)
}

func outlineLevel(level int) uint8 {
	if level > maxOutlineLevel {
		return maxOutlineLevel
	}
	return uint8(level)
}

func writeRows(f *excelize.File, data models.SheetData) error {
	for _, row := range data.Rows {
		for _, cell := range row.Cells {
			name, err := cellName(row.Num, cell.Col)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(data.Name, name, cell.V); err != nil {
				return err
			}
		}

		r := row.Num + 1
		if !row.UsesDefaultHeight() {
			if err := f.SetRowHeight(data.Name, r, row.Height); err != nil {
				return err
			}
		}
		if row.Hidden {
			if err := f.SetRowVisible(data.Name, r, false); err != nil {
				return err
			}
		}
		if row.OutlineLevel > 0 {
			if err := f.SetRowOutlineLevel(data.Name, r, outlineLevel(row.OutlineLevel)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeColumns(f *excelize.File, data models.SheetData) error {
	for _, col := range data.Columns {
		name, err := excelize.ColumnNumberToName(col.Index)
		if err != nil {
			return err
		}
		if col.Width >= 0 {
			if err := f.SetColWidth(data.Name, name, name, col.Width); err != nil {
				return err
			}
		}
		if col.Hidden {
			if err := f.SetColVisible(data.Name, name, false); err != nil {
				return err
			}
		}
		if col.OutlineLevel > 0 {
			if err := f.SetColOutlineLevel(data.Name, name, outlineLevel(col.OutlineLevel)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeFormat(f *excelize.File, data models.SheetData) error {
	return f.SetSheetProps(data.Name, &excelize.SheetPropsOptions{
		DefaultRowHeight:    &data.Format.DefaultRowHeight,
		DefaultColWidth:     &data.Format.DefaultColWidth,
		OutlineSummaryBelow: &data.Outline.SummaryBelow,
		OutlineSummaryRight: &data.Outline.SummaryRight,
	})
}

func writeHeaderFooter(f *excelize.File, data models.SheetData) error {
	hf := data.HeaderFooter
	if hf == (models.HeaderFooterText{}) {
		return nil
	}
	return f.SetHeaderFooter(data.Name, &excelize.HeaderFooterOptions{
		DifferentFirst:   hf.DifferentFirst,
		DifferentOddEven: hf.DifferentOddEven,
		OddHeader:        hf.OddHeader,
		OddFooter:        hf.OddFooter,
		EvenHeader:       hf.EvenHeader,
		EvenFooter:       hf.EvenFooter,
		FirstHeader:      hf.FirstHeader,
		FirstFooter:      hf.FirstFooter,
	})
}

func writeMargins(f *excelize.File, data models.SheetData) error {
	m := data.Margins
	return f.SetPageMargins(data.Name, &excelize.PageLayoutMarginsOptions{
		Left:         &m.Left,
		Right:        &m.Right,
		Top:          &m.Top,
		Bottom:       &m.Bottom,
		Header:       &m.Header,
		Footer:       &m.Footer,
		Horizontally: &data.Print.HorizontallyCentered,
		Vertically:   &data.Print.VerticallyCentered,
	})
}

func writeView(f *excelize.File, data models.SheetData) error {
	v := data.View
	opts := &excelize.ViewOptions{
		ShowGridLines:     &v.ShowGridLines,
		ShowFormulas:      &v.ShowFormulas,
		ShowRowColHeaders: &v.ShowRowColHeaders,
	}
	if v.ZoomScale > 0 {
		zoom := float64(v.ZoomScale)
		opts.ZoomScale = &zoom
	}
	if v.TopLeftCell != "" {
		opts.TopLeftCell = &v.TopLeftCell
	}
	return f.SetSheetView(data.Name, 0, opts)
}

func linkType(target string) string {
	if strings.Contains(target, "://") || strings.HasPrefix(target, "mailto:") {
		return "External"
	}
	return "Location"
}

func writeHyperlinks(f *excelize.File, data models.SheetData) error {
	for _, link := range data.Hyperlinks {
		name, err := cellName(link.Row, link.Col)
		if err != nil {
			return err
		}
		if err := f.SetCellHyperLink(data.Name, name, link.Target, linkType(link.Target)); err != nil {
			return err
		}
	}
	return nil
}

func writeComments(f *excelize.File, data models.SheetData) error {
	for _, c := range data.Comments {
		name, err := cellName(c.Row, c.Col)
		if err != nil {
			return err
		}
		if err := f.AddComment(data.Name, excelize.Comment{Cell: name, Author: c.Author, Text: c.Text}); err != nil {
			return err
		}
	}
	return nil
}

func writePrintAreas(f *excelize.File, data models.SheetData) error {
	if len(data.PrintAreas) == 0 {
		return nil
	}
	refs := make([]string, 0, len(data.PrintAreas))
	for _, area := range data.PrintAreas {
		ref, err := absoluteRef(data.Name, area)
		if err != nil {
			return err
		}
		refs = append(refs, ref)
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: strings.Join(refs, ","),
		Scope:    data.Name,
	})
}

// absoluteRef formats area as 'Sheet'!$A$1:$B$2.
func absoluteRef(sheet string, area models.CellRange) (string, error) {
	from, err := excelize.CoordinatesToCellName(area.FirstCol+1, area.FirstRow+1, true)
	if err != nil {
		return "", err
	}
	to, err := excelize.CoordinatesToCellName(area.LastCol+1, area.LastRow+1, true)
	if err != nil {
		return "", err
	}
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'!" + from + ":" + to, nil
}
