package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

func sampleWorkbook() *models.WorkbookData {
	sheet := models.NewSheetData("Data")
	sheet.Rows = []models.Row{
		{Num: 0, Height: -1, Cells: []models.Cell{{Col: 0, V: "name"}, {Col: 1, V: int64(3)}}},
		{Num: 4, Height: 22.5, OutlineLevel: 1},
	}
	sheet.Columns = []models.Column{{Index: 2, Width: 14}}
	sheet.MergedRegions = []models.CellRange{models.NewCellRange(1, 2, 0, 1)}
	sheet.Format.OutlineLevelRow = 1
	return &models.WorkbookData{BookName: "book.xlsx", Sheets: []models.SheetData{sheet}}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleWorkbook(), false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var decoded struct {
		BookName string `json:"book_name"`
		Sheets   []struct {
			Name string `json:"name"`
			Rows []struct {
				Num    int     `json:"r"`
				Height float64 `json:"height"`
				Cells  []struct {
					Col int `json:"c"`
					V   any `json:"v"`
				} `json:"cells"`
			} `json:"rows"`
			MergedRegions []models.CellRange `json:"merged_regions"`
		} `json:"sheets"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.BookName != "book.xlsx" || len(decoded.Sheets) != 1 {
		t.Fatalf("decoded = %+v", decoded)
	}
	s := decoded.Sheets[0]
	if s.Name != "Data" || len(s.Rows) != 2 || s.Rows[1].Num != 4 || s.Rows[1].Height != 22.5 {
		t.Errorf("rows = %+v", s.Rows)
	}
	if len(s.Rows[0].Cells) != 2 || s.Rows[0].Cells[0].V != "name" {
		t.Errorf("cells = %+v", s.Rows[0].Cells)
	}
	if len(s.MergedRegions) != 1 || s.MergedRegions[0].Ref() != "A2:B3" {
		t.Errorf("merged regions = %+v", s.MergedRegions)
	}
	if bytes.Contains(data, []byte("\n")) {
		t.Errorf("compact output contains newlines")
	}
	if bytes.Contains(data, []byte(`"hidden"`)) {
		t.Errorf("zero hidden flag should be omitted: %s", data)
	}
}

func TestToJSONPretty(t *testing.T) {
	wb := sampleWorkbook()
	data, err := SheetToJSON(&wb.Sheets[0], true)
	if err != nil {
		t.Fatalf("SheetToJSON failed: %v", err)
	}
	if !bytes.Contains(data, []byte("\n  \"name\":")) {
		t.Errorf("pretty output not indented:\n%s", data)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, wb, true); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"book_name":`) || !strings.Contains(buf.String(), `"book.xlsx"`) {
		t.Errorf("WriteJSON output:\n%s", buf.String())
	}
}

func TestRenderTables(t *testing.T) {
	wb := sampleWorkbook()
	sheet := &wb.Sheets[0]

	tests := []struct {
		name   string
		render func(*bytes.Buffer) error
		want   []string
	}{
		{"summary", func(b *bytes.Buffer) error { return RenderSummary(b, wb) }, []string{"Data"}},
		{"rows", func(b *bytes.Buffer) error { return RenderRows(b, sheet) }, []string{"A1=name", "B1=3", "22.5", "default"}},
		{"columns", func(b *bytes.Buffer) error { return RenderColumns(b, sheet) }, []string{"14"}},
		{"merges", func(b *bytes.Buffer) error { return RenderMerges(b, sheet) }, []string{"A2:B3"}},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		if err := tt.render(&buf); err != nil {
			t.Fatalf("%s: render failed: %v", tt.name, err)
		}
		for _, want := range tt.want {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("%s: output missing %q:\n%s", tt.name, want, buf.String())
			}
		}
	}
}
