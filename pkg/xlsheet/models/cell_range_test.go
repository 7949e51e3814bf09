package models

import "testing"

func TestParseCellRange(t *testing.T) {
	tests := []struct {
		ref      string
		expected CellRange
	}{
		{"A1:D10", CellRange{FirstRow: 0, LastRow: 9, FirstCol: 0, LastCol: 3}},
		{"$B$2:$C$3", CellRange{FirstRow: 1, LastRow: 2, FirstCol: 1, LastCol: 2}},
		{"C5", CellRange{FirstRow: 4, LastRow: 4, FirstCol: 2, LastCol: 2}},
		{"D4:B2", CellRange{FirstRow: 1, LastRow: 3, FirstCol: 1, LastCol: 3}},
	}

	for _, tt := range tests {
		result, err := ParseCellRange(tt.ref)
		if err != nil {
			t.Errorf("ParseCellRange(%q) failed: %v", tt.ref, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseCellRange(%q) = %+v, expected %+v", tt.ref, result, tt.expected)
		}
	}
}

func TestParseCellRangeInvalid(t *testing.T) {
	for _, ref := range []string{"", "A1:B2:C3", "1A:B2", "hello"} {
		if _, err := ParseCellRange(ref); err == nil {
			t.Errorf("ParseCellRange(%q) expected error", ref)
		}
	}
}

func TestCellRangeRef(t *testing.T) {
	r := NewCellRange(3, 1, 3, 1)
	if got := r.Ref(); got != "B2:D4" {
		t.Errorf("Ref() = %q, expected %q", got, "B2:D4")
	}
	if !r.Contains(2, 2) || r.Contains(0, 0) {
		t.Errorf("Contains() mismatch for %s", r)
	}
	if r.IsSingleCell() {
		t.Errorf("%s reported as single cell", r)
	}
	if !NewCellRange(0, 0, 0, 0).IsSingleCell() {
		t.Errorf("A1:A1 not reported as single cell")
	}
}

func TestRowSetCellKeepsOrder(t *testing.T) {
	r := NewRow(4)
	if r.FirstCellNum() != -1 {
		t.Fatalf("FirstCellNum() on empty row = %d, expected -1", r.FirstCellNum())
	}

	r.SetCell(5, "e")
	r.SetCell(1, "a")
	r.SetCell(3, "c")
	r.SetCell(3, "C")

	if r.FirstCellNum() != 1 || r.LastCellNum() != 5 {
		t.Errorf("cell bounds = [%d,%d], expected [1,5]", r.FirstCellNum(), r.LastCellNum())
	}
	if v, ok := r.Cell(3); !ok || v != "C" {
		t.Errorf("Cell(3) = %v, %v; expected C", v, ok)
	}

	r.RemoveCell(1)
	if r.FirstCellNum() != 3 {
		t.Errorf("FirstCellNum() after remove = %d, expected 3", r.FirstCellNum())
	}
	if !r.UsesDefaultHeight() {
		t.Errorf("new row should use default height")
	}
}
