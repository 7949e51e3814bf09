package xlsheet

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

func TestOptions(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		opts                         Options
		links, comments, printAreas bool
	}{
		{Options{Mode: ModeLight}, false, false, false},
		{DefaultOptions(), false, true, true},
		{Options{Mode: ModeVerbose}, true, true, true},
		{Options{Mode: ModeLight, IncludeLinks: &yes, IncludePrintAreas: &yes}, true, false, true},
		{Options{Mode: ModeVerbose, IncludeComments: &no}, true, false, true},
	}

	for _, tt := range tests {
		if got := tt.opts.ShouldIncludeLinks(); got != tt.links {
			t.Errorf("%+v: ShouldIncludeLinks() = %v", tt.opts, got)
		}
		if got := tt.opts.ShouldIncludeComments(); got != tt.comments {
			t.Errorf("%+v: ShouldIncludeComments() = %v", tt.opts, got)
		}
		if got := tt.opts.ShouldIncludePrintAreas(); got != tt.printAreas {
			t.Errorf("%+v: ShouldIncludePrintAreas() = %v", tt.opts, got)
		}
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Open on missing file: got %v, expected ErrFileNotFound", err)
	}
}

func TestWorkbookRoundTrip(t *testing.T) {
	wb := &Workbook{BookName: "book.xlsx"}
	s := wb.AddSheet("Data", SheetOptions{})
	s.SetCellValue(0, 0, "name")
	s.SetCellValue(2, 1, int64(7))
	s.Row(2).Height = 20
	s.GroupRow(5, 6)
	s.GroupColumn(2, 3)
	s.SetColumnWidth(5, 12.5)
	s.AddMergedRegion(models.NewCellRange(1, 2, 1, 2))
	s.Header().SetCenter("Title")
	if err := s.SetMargin(TopMargin, 1); err != nil {
		t.Fatalf("SetMargin failed: %v", err)
	}
	s.SetRowBreak(10)
	if err := s.SetZoom(150); err != nil {
		t.Fatalf("SetZoom failed: %v", err)
	}
	wb.AddSheet("Empty", SheetOptions{})

	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := wb.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	loaded, err := Open(path, Options{Mode: ModeLight})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(loaded.Sheets) != 2 || loaded.Sheets[1].Name() != "Empty" {
		t.Fatalf("loaded %d sheets", len(loaded.Sheets))
	}

	got, ok := loaded.Sheet("Data")
	if !ok {
		t.Fatalf("sheet Data not found")
	}
	if v, _ := got.CellValue(0, 0); v != "name" {
		t.Errorf("A1 = %v", v)
	}
	if v, _ := got.CellValue(2, 1); v != int64(7) {
		t.Errorf("B3 = %v (%T)", v, v)
	}
	if got.Row(2).Height != 20 {
		t.Errorf("row 2 height = %v", got.Row(2).Height)
	}
	if got.RowOutlineLevel(4) != 1 || got.RowOutlineLevel(5) != 1 || got.Format().OutlineLevelRow != 1 {
		t.Errorf("row outline not restored")
	}
	if got.ColumnOutlineLevel(2) != 1 || got.ColumnOutlineLevel(3) != 1 {
		t.Errorf("column outline not restored")
	}
	if got.ColumnWidth(5) != 12.5 {
		t.Errorf("column width = %v", got.ColumnWidth(5))
	}
	if r, err := got.MergedRegion(0); err != nil || r.Ref() != "B2:C3" {
		t.Errorf("MergedRegion(0) = %v, %v", r, err)
	}
	if got.Header().Center() != "Title" {
		t.Errorf("header center = %q", got.Header().Center())
	}
	if m, _ := got.Margin(TopMargin); m != 1 {
		t.Errorf("top margin = %v", m)
	}
	if !got.IsRowBroken(10) {
		t.Errorf("row break lost: %v", got.RowBreaks())
	}
	if got.Zoom() != 150 {
		t.Errorf("zoom = %d", got.Zoom())
	}
}
