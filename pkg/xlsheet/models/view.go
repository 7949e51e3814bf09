package models

// SheetView holds display settings of the sheet window.
type SheetView struct {
	ShowGridLines     bool `json:"show_grid_lines"`
	ShowFormulas      bool `json:"show_formulas,omitzero"`
	ShowRowColHeaders bool `json:"show_row_col_headers"`
	// ZoomScale is a percentage (10..400), 0 when unset.
	ZoomScale int `json:"zoom_scale,omitzero"`
	// TopLeftCell is the first visible cell, e.g. "C5".
	TopLeftCell string `json:"top_left_cell,omitempty"`
}

// DefaultSheetView returns the view a new sheet starts with.
func DefaultSheetView() SheetView {
	return SheetView{ShowGridLines: true, ShowRowColHeaders: true}
}

// SheetFormat holds sheet-wide row and column formatting properties.
type SheetFormat struct {
	// DefaultRowHeight is in points.
	DefaultRowHeight float64 `json:"default_row_height"`
	// DefaultColWidth is in characters.
	DefaultColWidth float64 `json:"default_col_width"`
	// OutlineLevelRow is the maximum row outline level.
	OutlineLevelRow int `json:"outline_level_row,omitzero"`
	// OutlineLevelCol is the maximum column outline level.
	OutlineLevelCol int `json:"outline_level_col,omitzero"`
}

// DefaultSheetFormat returns the format a new sheet starts with.
func DefaultSheetFormat() SheetFormat {
	return SheetFormat{DefaultRowHeight: 15, DefaultColWidth: 8}
}

// OutlineProperties controls where outline summaries appear.
type OutlineProperties struct {
	SummaryBelow bool `json:"summary_below"`
	SummaryRight bool `json:"summary_right"`
}
