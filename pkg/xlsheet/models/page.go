package models

// PageMargins holds the six page margins in inches.
type PageMargins struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Header float64 `json:"header"`
	Footer float64 `json:"footer"`
}

// DefaultPageMargins returns the margins a new sheet starts with.
func DefaultPageMargins() PageMargins {
	return PageMargins{
		Left:   0.7,
		Right:  0.7,
		Top:    0.75,
		Bottom: 0.75,
		Header: 0.3,
		Footer: 0.3,
	}
}

// PrintOptions holds page centering flags.
type PrintOptions struct {
	HorizontallyCentered bool `json:"horizontally_centered,omitzero"`
	VerticallyCentered   bool `json:"vertically_centered,omitzero"`
}

// PageBreaks lists manual page breaks.
type PageBreaks struct {
	// Rows holds row break ids (0-based).
	Rows []int `json:"rows,omitzero"`
	// Cols holds column break ids (0-based).
	Cols []int `json:"cols,omitzero"`
}

// HeaderFooterText holds the raw encoded header and footer strings.
type HeaderFooterText struct {
	OddHeader        string `json:"odd_header,omitempty"`
	OddFooter        string `json:"odd_footer,omitempty"`
	EvenHeader       string `json:"even_header,omitempty"`
	EvenFooter       string `json:"even_footer,omitempty"`
	FirstHeader      string `json:"first_header,omitempty"`
	FirstFooter      string `json:"first_footer,omitempty"`
	DifferentFirst   bool   `json:"different_first,omitzero"`
	DifferentOddEven bool   `json:"different_odd_even,omitzero"`
}
