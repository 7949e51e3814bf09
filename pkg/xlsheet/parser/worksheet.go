package parser

import (
	"encoding/xml"
	"sort"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

// Worksheet holds the parts of a worksheet XML that excelize does not expose
// through its getters: row and column attributes, page breaks, sheet
// format, outline and print properties, and header/footer text.
type Worksheet struct {
	SheetPr       *xlsxSheetPr       `xml:"sheetPr"`
	SheetFormatPr *xlsxSheetFormatPr `xml:"sheetFormatPr"`
	Cols          []xlsxCols         `xml:"cols"`
	SheetData     xlsxSheetData      `xml:"sheetData"`
	PrintOptions  *xlsxPrintOptions  `xml:"printOptions"`
	HeaderFooter  *xlsxHeaderFooter  `xml:"headerFooter"`
	RowBreaks     *xlsxBreaks        `xml:"rowBreaks"`
	ColBreaks     *xlsxBreaks        `xml:"colBreaks"`
}

type xlsxSheetPr struct {
	OutlinePr *xlsxOutlinePr `xml:"outlinePr"`
}

type xlsxOutlinePr struct {
	SummaryBelow *bool `xml:"summaryBelow,attr"`
	SummaryRight *bool `xml:"summaryRight,attr"`
}

type xlsxSheetFormatPr struct {
	DefaultColWidth  float64 `xml:"defaultColWidth,attr"`
	DefaultRowHeight float64 `xml:"defaultRowHeight,attr"`
	OutlineLevelRow  int     `xml:"outlineLevelRow,attr"`
	OutlineLevelCol  int     `xml:"outlineLevelCol,attr"`
}

type xlsxCols struct {
	Col []xlsxCol `xml:"col"`
}

type xlsxCol struct {
	Min          int     `xml:"min,attr"`
	Max          int     `xml:"max,attr"`
	Width        float64 `xml:"width,attr"`
	Hidden       bool    `xml:"hidden,attr"`
	OutlineLevel int     `xml:"outlineLevel,attr"`
}

type xlsxSheetData struct {
	Rows []xlsxRow `xml:"row"`
}

// xlsxRow skips the cells; cell values come from excelize.
type xlsxRow struct {
	R            int     `xml:"r,attr"`
	Ht           float64 `xml:"ht,attr"`
	CustomHeight bool    `xml:"customHeight,attr"`
	Hidden       bool    `xml:"hidden,attr"`
	OutlineLevel int     `xml:"outlineLevel,attr"`
}

type xlsxPrintOptions struct {
	HorizontalCentered bool `xml:"horizontalCentered,attr"`
	VerticalCentered   bool `xml:"verticalCentered,attr"`
}

type xlsxHeaderFooter struct {
	DifferentFirst   bool   `xml:"differentFirst,attr"`
	DifferentOddEven bool   `xml:"differentOddEven,attr"`
	OddHeader        string `xml:"oddHeader"`
	OddFooter        string `xml:"oddFooter"`
	EvenHeader       string `xml:"evenHeader"`
	EvenFooter       string `xml:"evenFooter"`
	FirstHeader      string `xml:"firstHeader"`
	FirstFooter      string `xml:"firstFooter"`
}

type xlsxBreaks struct {
	Brk []xlsxBreak `xml:"brk"`
}

type xlsxBreak struct {
	ID int `xml:"id,attr"`
}

// ParseWorksheet decodes a worksheet part.
func ParseWorksheet(data []byte) (*Worksheet, error) {
	ws := &Worksheet{}
	if err := xml.Unmarshal(data, ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// Format returns the sheet format properties, starting from defaults.
func (w *Worksheet) Format() models.SheetFormat {
	format := models.DefaultSheetFormat()
	if w.SheetFormatPr == nil {
		return format
	}
	if w.SheetFormatPr.DefaultRowHeight > 0 {
		format.DefaultRowHeight = w.SheetFormatPr.DefaultRowHeight
	}
	if w.SheetFormatPr.DefaultColWidth > 0 {
		format.DefaultColWidth = w.SheetFormatPr.DefaultColWidth
	}
	format.OutlineLevelRow = w.SheetFormatPr.OutlineLevelRow
	format.OutlineLevelCol = w.SheetFormatPr.OutlineLevelCol
	return format
}

// Outline returns the outline summary placement. Both flags default to true.
func (w *Worksheet) Outline() models.OutlineProperties {
	props := models.OutlineProperties{SummaryBelow: true, SummaryRight: true}
	if w.SheetPr == nil || w.SheetPr.OutlinePr == nil {
		return props
	}
	if v := w.SheetPr.OutlinePr.SummaryBelow; v != nil {
		props.SummaryBelow = *v
	}
	if v := w.SheetPr.OutlinePr.SummaryRight; v != nil {
		props.SummaryRight = *v
	}
	return props
}

// Print returns the page centering flags.
func (w *Worksheet) Print() models.PrintOptions {
	if w.PrintOptions == nil {
		return models.PrintOptions{}
	}
	return models.PrintOptions{
		HorizontallyCentered: w.PrintOptions.HorizontalCentered,
		VerticallyCentered:   w.PrintOptions.VerticalCentered,
	}
}

// HeaderFooterText returns the raw header and footer strings.
func (w *Worksheet) HeaderFooterText() models.HeaderFooterText {
	hf := w.HeaderFooter
	if hf == nil {
		return models.HeaderFooterText{}
	}
	return models.HeaderFooterText{
		OddHeader:        hf.OddHeader,
		OddFooter:        hf.OddFooter,
		EvenHeader:       hf.EvenHeader,
		EvenFooter:       hf.EvenFooter,
		FirstHeader:      hf.FirstHeader,
		FirstFooter:      hf.FirstFooter,
		DifferentFirst:   hf.DifferentFirst,
		DifferentOddEven: hf.DifferentOddEven,
	}
}

// Breaks returns the manual page breaks. Missing break lists are empty.
func (w *Worksheet) Breaks() models.PageBreaks {
	var breaks models.PageBreaks
	if w.RowBreaks != nil {
		for _, brk := range w.RowBreaks.Brk {
			breaks.Rows = append(breaks.Rows, brk.ID)
		}
	}
	if w.ColBreaks != nil {
		for _, brk := range w.ColBreaks.Brk {
			breaks.Cols = append(breaks.Cols, brk.ID)
		}
	}
	return breaks
}

// Columns expands <col> spans into one entry per column that carries a
// custom width, hidden flag or outline level.
func (w *Worksheet) Columns() []models.Column {
	byIndex := make(map[int]models.Column)
	for _, cols := range w.Cols {
		for _, c := range cols.Col {
			if c.Min <= 0 || c.Max < c.Min {
				continue
			}
			width := -1.0
			if c.Width > 0 {
				width = c.Width
			}
			if width < 0 && !c.Hidden && c.OutlineLevel == 0 {
				continue
			}
			for i := c.Min; i <= c.Max; i++ {
				byIndex[i] = models.Column{
					Index:        i,
					Width:        width,
					Hidden:       c.Hidden,
					OutlineLevel: c.OutlineLevel,
				}
			}
		}
	}

	columns := make([]models.Column, 0, len(byIndex))
	for _, col := range byIndex {
		columns = append(columns, col)
	}
	sort.Slice(columns, func(i, j int) bool { return columns[i].Index < columns[j].Index })
	return columns
}

// RowAttributes returns the layout of every <row> element keyed by 0-based
// row number.
func (w *Worksheet) RowAttributes() map[int]models.Row {
	attrs := make(map[int]models.Row, len(w.SheetData.Rows))
	for _, r := range w.SheetData.Rows {
		if r.R <= 0 {
			continue
		}
		height := -1.0
		if r.CustomHeight && r.Ht > 0 {
			height = r.Ht
		}
		attrs[r.R-1] = models.Row{
			Num:          r.R - 1,
			Height:       height,
			Hidden:       r.Hidden,
			OutlineLevel: r.OutlineLevel,
		}
	}
	return attrs
}
