package parser

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func saveTestWorkbook(t *testing.T, build func(f *excelize.File)) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	build(f)

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestLoadWorkbook(t *testing.T) {
	left, right, top, bottom, header, footer := 1.5, 0.7, 0.75, 0.75, 0.3, 0.3
	path := saveTestWorkbook(t, func(f *excelize.File) {
		sheet := "Sheet1"
		f.SetCellValue(sheet, "A1", "Header1")
		f.SetCellValue(sheet, "B1", "Header2")
		f.SetCellValue(sheet, "A2", 100)
		f.SetCellValue(sheet, "B3", 200.5)
		f.SetRowHeight(sheet, 2, 30)
		f.SetRowOutlineLevel(sheet, 5, 2)
		f.SetColWidth(sheet, "E", "E", 20)
		f.SetColOutlineLevel(sheet, "C", 1)
		f.MergeCell(sheet, "C6", "D7")
		f.SetPageMargins(sheet, &excelize.PageLayoutMarginsOptions{
			Left: &left, Right: &right, Top: &top, Bottom: &bottom, Header: &header, Footer: &footer,
		})
		f.SetHeaderFooter(sheet, &excelize.HeaderFooterOptions{OddHeader: "&LLeft&CCenter"})
		f.InsertPageBreak(sheet, "A10")
		f.NewSheet("Second")
	})

	wb, err := LoadWorkbook(path, Options{})
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}

	if wb.BookName != "test.xlsx" {
		t.Errorf("BookName = %q, expected %q", wb.BookName, "test.xlsx")
	}
	if len(wb.Sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(wb.Sheets))
	}

	sheet, ok := wb.Sheet("Sheet1")
	if !ok {
		t.Fatalf("Sheet1 not loaded")
	}

	byNum := make(map[int]int)
	for i, row := range sheet.Rows {
		byNum[row.Num] = i
	}

	first, ok := byNum[0]
	if !ok {
		t.Fatalf("row 0 missing")
	}
	if v, _ := sheet.Rows[first].Cell(0); v != "Header1" {
		t.Errorf("A1 = %v, expected Header1", v)
	}
	if i, ok := byNum[1]; !ok || sheet.Rows[i].Height != 30 {
		t.Errorf("row 1 missing or wrong height")
	} else if v, _ := sheet.Rows[i].Cell(0); v != int64(100) {
		t.Errorf("A2 = %v (%T), expected int64(100)", v, v)
	}
	if i, ok := byNum[2]; !ok {
		t.Errorf("row 2 missing")
	} else if v, _ := sheet.Rows[i].Cell(1); v != 200.5 {
		t.Errorf("B3 = %v, expected 200.5", v)
	}
	if i, ok := byNum[4]; !ok || sheet.Rows[i].OutlineLevel != 2 {
		t.Errorf("row 4 missing or not grouped at level 2")
	}

	var widthOK, outlineOK bool
	for _, col := range sheet.Columns {
		switch col.Index {
		case 3:
			outlineOK = col.OutlineLevel == 1
		case 5:
			widthOK = col.Width == 20
		}
	}
	if !widthOK || !outlineOK {
		t.Errorf("Columns = %+v, expected width 20 on E and level 1 on C", sheet.Columns)
	}

	if len(sheet.MergedRegions) != 1 || sheet.MergedRegions[0].Ref() != "C6:D7" {
		t.Errorf("MergedRegions = %v, expected [C6:D7]", sheet.MergedRegions)
	}
	if m := sheet.Margins; m.Left != left || m.Right != right || m.Top != top ||
		m.Bottom != bottom || m.Header != header || m.Footer != footer {
		t.Errorf("Margins = %+v", sheet.Margins)
	}
	if sheet.HeaderFooter.OddHeader != "&LLeft&CCenter" {
		t.Errorf("OddHeader = %q", sheet.HeaderFooter.OddHeader)
	}
	if len(sheet.Breaks.Rows) != 1 || sheet.Breaks.Rows[0] != 9 {
		t.Errorf("row breaks = %v, expected [9]", sheet.Breaks.Rows)
	}
	if len(sheet.Hyperlinks) != 0 || len(sheet.Comments) != 0 {
		t.Errorf("links and comments loaded without being requested")
	}
}

func TestLoadWorkbookOptionalComponents(t *testing.T) {
	path := saveTestWorkbook(t, func(f *excelize.File) {
		sheet := "Sheet1"
		f.SetCellValue(sheet, "A1", "link")
		f.SetCellHyperLink(sheet, "A1", "https://example.com", "External")
		f.AddComment(sheet, excelize.Comment{Cell: "B2", Author: "Ann", Text: "check this"})
		f.SetDefinedName(&excelize.DefinedName{
			Name:     "_xlnm.Print_Area",
			RefersTo: "Sheet1!$A$1:$C$5",
			Scope:    "Sheet1",
		})
	})

	wb, err := LoadWorkbook(path, Options{IncludeLinks: true, IncludeComments: true, IncludePrintAreas: true})
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}
	sheet := wb.Sheets[0]

	if len(sheet.Hyperlinks) != 1 || sheet.Hyperlinks[0].Target != "https://example.com" {
		t.Errorf("Hyperlinks = %+v", sheet.Hyperlinks)
	}
	if len(sheet.Comments) != 1 {
		t.Fatalf("Comments = %+v, expected one", sheet.Comments)
	}
	if c := sheet.Comments[0]; c.Row != 1 || c.Col != 1 || !strings.Contains(c.Text, "check this") {
		t.Errorf("comment = %+v", c)
	}
	if len(sheet.PrintAreas) != 1 || sheet.PrintAreas[0].Ref() != "A1:C5" {
		t.Errorf("PrintAreas = %v, expected [A1:C5]", sheet.PrintAreas)
	}
}

func TestLoadWorkbookMissingFile(t *testing.T) {
	if _, err := LoadWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"), Options{}); err == nil {
		t.Errorf("LoadWorkbook on a missing file expected error")
	}
}
