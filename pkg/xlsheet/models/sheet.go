package models

// SheetData is a detached snapshot of one sheet, the unit exchanged with
// the loader and the serialization sink.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows contains rows in ascending order.
	Rows []Row `json:"rows,omitempty"`
	// Columns contains columns carrying non-default metadata.
	Columns []Column `json:"columns,omitempty"`
	// MergedRegions contains merged ranges in registry order.
	MergedRegions []CellRange `json:"merged_regions,omitempty"`
	// Format holds default sizes and outline maxima.
	Format SheetFormat `json:"format"`
	// Outline holds outline summary placement.
	Outline OutlineProperties `json:"outline"`
	// HeaderFooter holds the encoded header and footer strings.
	HeaderFooter HeaderFooterText `json:"header_footer"`
	// Margins holds page margins.
	Margins PageMargins `json:"margins"`
	// Print holds page centering flags.
	Print PrintOptions `json:"print"`
	// Breaks holds manual page breaks.
	Breaks PageBreaks `json:"breaks"`
	// View holds window display settings.
	View SheetView `json:"view"`
	// Hyperlinks contains cell hyperlinks.
	Hyperlinks []Hyperlink `json:"hyperlinks,omitempty"`
	// Comments contains cell comments.
	Comments []Comment `json:"comments,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []CellRange `json:"print_areas,omitempty"`
}

// NewSheetData returns a snapshot carrying the defaults of a fresh sheet.
func NewSheetData(name string) SheetData {
	return SheetData{
		Name:    name,
		Format:  DefaultSheetFormat(),
		Outline: OutlineProperties{SummaryBelow: true, SummaryRight: true},
		Margins: DefaultPageMargins(),
		View:    DefaultSheetView(),
	}
}
