// Package xlsheet models a single spreadsheet sheet: ordered row storage,
// merged regions, row and column outlining, row shifting and header/footer
// sections, together with xlsx loading and saving.
package xlsheet

import "github.com/ukaji3/xlsheet-go/pkg/xlsheet/parser"

// Mode selects how much of a workbook is loaded.
type Mode string

const (
	// ModeLight loads rows, columns, merges and page setup only.
	ModeLight Mode = "light"
	// ModeStandard also loads comments and print areas.
	ModeStandard Mode = "standard"
	// ModeVerbose loads everything, including cell hyperlinks.
	ModeVerbose Mode = "verbose"
)

// Options configures loading behavior.
type Options struct {
	// Mode specifies the load mode (light, standard, verbose).
	Mode Mode
	// IncludeLinks specifies whether to load cell hyperlinks.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeLinks *bool
	// IncludeComments specifies whether to load cell comments.
	// If nil, defaults to false for light mode, true otherwise.
	IncludeComments *bool
	// IncludePrintAreas specifies whether to load print areas.
	// If nil, defaults to false for light mode, true otherwise.
	IncludePrintAreas *bool
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldIncludeLinks returns whether to load cell hyperlinks.
func (o Options) ShouldIncludeLinks() bool {
	if o.IncludeLinks != nil {
		return *o.IncludeLinks
	}
	return o.Mode == ModeVerbose
}

// ShouldIncludeComments returns whether to load cell comments.
func (o Options) ShouldIncludeComments() bool {
	if o.IncludeComments != nil {
		return *o.IncludeComments
	}
	return o.Mode != ModeLight
}

// ShouldIncludePrintAreas returns whether to load print areas.
func (o Options) ShouldIncludePrintAreas() bool {
	if o.IncludePrintAreas != nil {
		return *o.IncludePrintAreas
	}
	return o.Mode != ModeLight
}

func (o Options) parserOptions() parser.Options {
	return parser.Options{
		IncludeLinks:      o.ShouldIncludeLinks(),
		IncludeComments:   o.ShouldIncludeComments(),
		IncludePrintAreas: o.ShouldIncludePrintAreas(),
	}
}

// SheetOptions holds the defaults of a new sheet. Zero values keep the
// built-in defaults.
type SheetOptions struct {
	// DefaultRowHeight is in points.
	DefaultRowHeight float64
	// DefaultColumnWidth is in characters.
	DefaultColumnWidth float64
}
