package parser

import "testing"

const sampleWorksheet = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <sheetPr><outlinePr summaryBelow="0"/></sheetPr>
  <sheetFormatPr defaultRowHeight="16.5" outlineLevelRow="2" outlineLevelCol="1"/>
  <cols>
    <col min="2" max="3" width="20" customWidth="1"/>
    <col min="5" max="5" width="9.140625" hidden="1" outlineLevel="1"/>
    <col min="7" max="7" outlineLevel="1" customWidth="1"/>
    <col min="8" max="8" style="2"/>
  </cols>
  <sheetData>
    <row r="1"><c r="A1" t="s"><v>0</v></c></row>
    <row r="3" ht="30" customHeight="1"><c r="B3"><v>1</v></c></row>
    <row r="6" outlineLevel="2" hidden="1"/>
  </sheetData>
  <printOptions horizontalCentered="1"/>
  <pageMargins left="0.7" right="0.7" top="0.75" bottom="0.75" header="0.3" footer="0.3"/>
  <headerFooter differentOddEven="1">
    <oddHeader>&amp;LLeft&amp;CCenter</oddHeader>
    <evenFooter>&amp;RPage &amp;P</evenFooter>
  </headerFooter>
  <rowBreaks count="2" manualBreakCount="2"><brk id="10" max="16383" man="1"/><brk id="20" max="16383" man="1"/></rowBreaks>
  <colBreaks count="1" manualBreakCount="1"><brk id="4" max="1048575" man="1"/></colBreaks>
</worksheet>`

func TestParseWorksheet(t *testing.T) {
	ws, err := ParseWorksheet([]byte(sampleWorksheet))
	if err != nil {
		t.Fatalf("ParseWorksheet failed: %v", err)
	}

	format := ws.Format()
	if format.DefaultRowHeight != 16.5 || format.DefaultColWidth != 8 {
		t.Errorf("Format() defaults = %+v", format)
	}
	if format.OutlineLevelRow != 2 || format.OutlineLevelCol != 1 {
		t.Errorf("Format() outline levels = %+v", format)
	}

	outline := ws.Outline()
	if outline.SummaryBelow || !outline.SummaryRight {
		t.Errorf("Outline() = %+v, expected below=false right=true", outline)
	}

	if p := ws.Print(); !p.HorizontallyCentered || p.VerticallyCentered {
		t.Errorf("Print() = %+v", p)
	}

	hf := ws.HeaderFooterText()
	if hf.OddHeader != "&LLeft&CCenter" || hf.EvenFooter != "&RPage &P" || !hf.DifferentOddEven {
		t.Errorf("HeaderFooterText() = %+v", hf)
	}

	breaks := ws.Breaks()
	if len(breaks.Rows) != 2 || breaks.Rows[0] != 10 || breaks.Rows[1] != 20 {
		t.Errorf("row breaks = %v, expected [10 20]", breaks.Rows)
	}
	if len(breaks.Cols) != 1 || breaks.Cols[0] != 4 {
		t.Errorf("column breaks = %v, expected [4]", breaks.Cols)
	}
}

func TestWorksheetColumns(t *testing.T) {
	ws, err := ParseWorksheet([]byte(sampleWorksheet))
	if err != nil {
		t.Fatalf("ParseWorksheet failed: %v", err)
	}

	cols := ws.Columns()
	expected := []struct {
		index  int
		width  float64
		hidden bool
		level  int
	}{
		{2, 20, false, 0},
		{3, 20, false, 0},
		{5, 9.140625, true, 1},
		{7, -1, false, 1},
	}
	if len(cols) != len(expected) {
		t.Fatalf("Columns() returned %d columns, expected %d: %+v", len(cols), len(expected), cols)
	}
	for i, e := range expected {
		c := cols[i]
		if c.Index != e.index || c.Width != e.width || c.Hidden != e.hidden || c.OutlineLevel != e.level {
			t.Errorf("column %d = %+v, expected %+v", i, c, e)
		}
	}
}

func TestWorksheetRowAttributes(t *testing.T) {
	ws, err := ParseWorksheet([]byte(sampleWorksheet))
	if err != nil {
		t.Fatalf("ParseWorksheet failed: %v", err)
	}

	attrs := ws.RowAttributes()
	if len(attrs) != 3 {
		t.Fatalf("RowAttributes() returned %d rows, expected 3", len(attrs))
	}
	if r := attrs[0]; r.Height != -1 || r.OutlineLevel != 0 {
		t.Errorf("row 0 = %+v", r)
	}
	if r := attrs[2]; r.Height != 30 {
		t.Errorf("row 2 height = %v, expected 30", r.Height)
	}
	if r := attrs[5]; !r.Hidden || r.OutlineLevel != 2 || r.Num != 5 {
		t.Errorf("row 5 = %+v", r)
	}
}

func TestParseWorksheetDefaults(t *testing.T) {
	ws, err := ParseWorksheet([]byte(`<worksheet><sheetData/></worksheet>`))
	if err != nil {
		t.Fatalf("ParseWorksheet failed: %v", err)
	}

	if f := ws.Format(); f.DefaultRowHeight != 15 || f.OutlineLevelRow != 0 {
		t.Errorf("Format() = %+v", f)
	}
	if o := ws.Outline(); !o.SummaryBelow || !o.SummaryRight {
		t.Errorf("Outline() = %+v", o)
	}
	breaks := ws.Breaks()
	if len(breaks.Rows) != 0 || len(breaks.Cols) != 0 {
		t.Errorf("Breaks() = %+v, expected none", breaks)
	}
	if len(ws.Columns()) != 0 || len(ws.RowAttributes()) != 0 {
		t.Errorf("expected no columns or rows")
	}
}

func TestParseWorksheetInvalid(t *testing.T) {
	if _, err := ParseWorksheet([]byte(`<worksheet><sheetData>`)); err == nil {
		t.Errorf("ParseWorksheet on truncated XML expected error")
	}
}
