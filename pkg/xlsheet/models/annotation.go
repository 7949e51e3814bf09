package models

// Hyperlink ties a cell to a link target.
type Hyperlink struct {
	Row    int    `json:"r"`
	Col    int    `json:"c"`
	Target string `json:"target"`
}

// Comment is a note attached to a cell.
type Comment struct {
	Row    int    `json:"r"`
	Col    int    `json:"c"`
	Author string `json:"author,omitempty"`
	Text   string `json:"text"`
}
