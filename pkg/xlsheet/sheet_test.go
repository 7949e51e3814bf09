package xlsheet

import (
	"errors"
	"testing"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

func TestNewSheetDefaults(t *testing.T) {
	s := New("Data", SheetOptions{})

	if s.Name() != "Data" {
		t.Errorf("Name() = %q", s.Name())
	}
	if s.FirstRowNum() != -1 || s.LastRowNum() != -1 || s.PhysicalNumberOfRows() != 0 {
		t.Errorf("empty sheet reports rows: first=%d last=%d count=%d",
			s.FirstRowNum(), s.LastRowNum(), s.PhysicalNumberOfRows())
	}
	if s.DefaultRowHeight() != 15 || s.DefaultColumnWidth() != 8 {
		t.Errorf("defaults = %v/%v, expected 15/8", s.DefaultRowHeight(), s.DefaultColumnWidth())
	}
	if !s.RowSumsBelow() || !s.RowSumsRight() {
		t.Errorf("summary rows and columns should default to below/right")
	}

	custom := New("Custom", SheetOptions{DefaultRowHeight: 20, DefaultColumnWidth: 12})
	if custom.DefaultRowHeight() != 20 || custom.DefaultColumnWidth() != 12 {
		t.Errorf("custom defaults = %v/%v", custom.DefaultRowHeight(), custom.DefaultColumnWidth())
	}
}

func TestSheetRows(t *testing.T) {
	s := New("Data", SheetOptions{})
	for _, num := range []int{7, 2, 11, 4} {
		s.CreateRow(num)
	}
	s.SetCellValue(4, 3, "x")

	prev := -1
	for _, row := range s.Rows() {
		if got := s.Row(row.Num); got != row {
			t.Errorf("Row(%d) does not return the iterated row", row.Num)
		}
		if row.Num <= prev {
			t.Errorf("rows not strictly ascending: %d after %d", row.Num, prev)
		}
		prev = row.Num
	}

	if s.FirstRowNum() != 2 || s.LastRowNum() != 11 || s.PhysicalNumberOfRows() != 4 {
		t.Errorf("first=%d last=%d count=%d, expected 2/11/4",
			s.FirstRowNum(), s.LastRowNum(), s.PhysicalNumberOfRows())
	}
	if v, ok := s.CellValue(4, 3); !ok || v != "x" {
		t.Errorf("CellValue(4,3) = %v, %v", v, ok)
	}

	s.RemoveRow(11)
	if s.Row(11) != nil || s.LastRowNum() != 7 {
		t.Errorf("row 11 still present after RemoveRow")
	}

	// Creating an existing row replaces it.
	s.CreateRow(4)
	if _, ok := s.CellValue(4, 3); ok {
		t.Errorf("CreateRow did not replace row 4")
	}
}

func TestMergedRegions(t *testing.T) {
	s := New("Data", SheetOptions{})

	if _, err := s.MergedRegion(0); !errors.Is(err, ErrIllegalState) {
		t.Errorf("MergedRegion on empty sheet: got %v, expected ErrIllegalState", err)
	}
	if err := s.RemoveMergedRegion(0); !errors.Is(err, ErrIllegalState) {
		t.Errorf("RemoveMergedRegion on empty sheet: got %v, expected ErrIllegalState", err)
	}

	a := models.NewCellRange(0, 1, 0, 1)
	b := models.NewCellRange(3, 3, 2, 4)
	c := models.NewCellRange(5, 6, 0, 0)
	for i, r := range []models.CellRange{a, b, c} {
		if n := s.AddMergedRegion(r); n != i+1 {
			t.Errorf("AddMergedRegion returned %d, expected %d", n, i+1)
		}
	}

	if err := s.RemoveMergedRegion(1); err != nil {
		t.Fatalf("RemoveMergedRegion(1) failed: %v", err)
	}
	if s.NumMergedRegions() != 2 {
		t.Errorf("NumMergedRegions() = %d, expected 2", s.NumMergedRegions())
	}
	if got, _ := s.MergedRegion(0); got != a {
		t.Errorf("MergedRegion(0) = %v, expected %v", got, a)
	}
	if got, _ := s.MergedRegion(1); got != c {
		t.Errorf("MergedRegion(1) = %v, expected %v", got, c)
	}
	if s.MergedRegionIndex(c) != 1 || s.MergedRegionIndex(b) != -1 {
		t.Errorf("MergedRegionIndex mismatch after removal")
	}

	_, err := s.MergedRegion(2)
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("MergedRegion(2): got %v, expected ErrOutOfRange", err)
	}
	var sheetErr *SheetError
	if !errors.As(err, &sheetErr) || sheetErr.Sheet != "Data" || sheetErr.Op != "get merged region" {
		t.Errorf("expected *SheetError for Data, got %#v", err)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := New("Data", SheetOptions{})
	s.SetCellValue(1, 0, "a")
	s.AddMergedRegion(models.NewCellRange(0, 0, 0, 1))
	s.SetColumnWidth(2, 30)

	data := s.Snapshot()
	data.Rows[0].Cells[0].V = "changed"
	data.MergedRegions[0].LastCol = 9

	if v, _ := s.CellValue(1, 0); v != "a" {
		t.Errorf("snapshot shares cells with the sheet")
	}
	if r, _ := s.MergedRegion(0); r.LastCol != 1 {
		t.Errorf("snapshot shares merged regions with the sheet")
	}

	copied := FromData(data)
	if v, _ := copied.CellValue(1, 0); v != "changed" {
		t.Errorf("FromData lost cell value")
	}
	if copied.ColumnWidth(2) != 30 {
		t.Errorf("FromData lost column width")
	}
	data.Rows[0].Cells[0].V = "again"
	if v, _ := copied.CellValue(1, 0); v != "changed" {
		t.Errorf("FromData shares cells with the snapshot")
	}
}

func TestFromDataRecomputesOutlineMaxima(t *testing.T) {
	data := models.NewSheetData("Data")
	data.Rows = []models.Row{{Num: 3, Height: -1, OutlineLevel: 3}}
	data.Columns = []models.Column{{Index: 2, Width: -1, OutlineLevel: 2}}
	data.Format.OutlineLevelRow = 0

	s := FromData(data)
	if f := s.Format(); f.OutlineLevelRow != 3 || f.OutlineLevelCol != 2 {
		t.Errorf("Format() = %+v, expected maxima 3/2", f)
	}
}

func TestRowAndBandBounds(t *testing.T) {
	tests := []struct {
		name string
		op   func(s *Sheet) error
	}{
		{"create negative row", func(s *Sheet) error { _, err := s.CreateRow(-5); return err }},
		{"set cell in negative row", func(s *Sheet) error { return s.SetCellValue(-1, 0, "x") }},
		{"set cell in negative column", func(s *Sheet) error { return s.SetCellValue(0, -1, "x") }},
		{"group rows from zero", func(s *Sheet) error { return s.GroupRow(0, 1) }},
		{"group rows reversed", func(s *Sheet) error { return s.GroupRow(5, 2) }},
		{"ungroup rows from zero", func(s *Sheet) error { return s.UngroupRow(0, 0) }},
		{"group column zero", func(s *Sheet) error { return s.GroupColumn(0, 0) }},
		{"group columns past the last", func(s *Sheet) error { return s.GroupColumn(1, 16385) }},
		{"ungroup columns reversed", func(s *Sheet) error { return s.UngroupColumn(3, 1) }},
	}

	for _, tt := range tests {
		s := New("Data", SheetOptions{})
		s.SetCellValue(3, 0, "a")
		s.SetCellValue(4, 0, "b")

		err := tt.op(s)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%s: got %v, expected ErrOutOfRange", tt.name, err)
		}
		var sheetErr *SheetError
		if !errors.As(err, &sheetErr) || sheetErr.Sheet != "Data" {
			t.Errorf("%s: error %v is not a SheetError for Data", tt.name, err)
		}
		if s.FirstRowNum() != 3 || s.PhysicalNumberOfRows() != 2 {
			t.Errorf("%s: rows changed, first=%d count=%d", tt.name, s.FirstRowNum(), s.PhysicalNumberOfRows())
		}
		if s.ColumnOutlineLevel(0) != 0 || s.Format().OutlineLevelCol != 0 || s.Format().OutlineLevelRow != 0 {
			t.Errorf("%s: outline changed", tt.name)
		}
	}
}
