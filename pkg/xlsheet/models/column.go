package models

// Column holds per-column metadata.
type Column struct {
	// Index is the column index (1-based).
	Index int `json:"index"`
	// Width is the column width in characters, -1 when the sheet default applies.
	Width float64 `json:"width"`
	// Hidden reports whether the column is hidden.
	Hidden bool `json:"hidden,omitzero"`
	// OutlineLevel is the grouping depth (0 = not grouped).
	OutlineLevel int `json:"outline_level,omitzero"`
}
