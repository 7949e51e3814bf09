package parser

import (
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractMargins returns the page margins of a sheet. Unset margins keep
// their defaults.
func ExtractMargins(f *excelize.File, sheetName string) (models.PageMargins, error) {
	margins := models.DefaultPageMargins()

	opts, err := f.GetPageMargins(sheetName)
	if err != nil {
		return margins, err
	}

	for _, m := range []struct {
		src *float64
		dst *float64
	}{
		{opts.Left, &margins.Left},
		{opts.Right, &margins.Right},
		{opts.Top, &margins.Top},
		{opts.Bottom, &margins.Bottom},
		{opts.Header, &margins.Header},
		{opts.Footer, &margins.Footer},
	} {
		if m.src != nil {
			*m.dst = *m.src
		}
	}
	return margins, nil
}

// ExtractView returns the display settings of the first sheet view.
func ExtractView(f *excelize.File, sheetName string) (models.SheetView, error) {
	view := models.DefaultSheetView()

	opts, err := f.GetSheetView(sheetName, 0)
	if err != nil {
		return view, err
	}

	if opts.ShowGridLines != nil {
		view.ShowGridLines = *opts.ShowGridLines
	}
	if opts.ShowFormulas != nil {
		view.ShowFormulas = *opts.ShowFormulas
	}
	if opts.ShowRowColHeaders != nil {
		view.ShowRowColHeaders = *opts.ShowRowColHeaders
	}
	if opts.ZoomScale != nil && *opts.ZoomScale > 0 && *opts.ZoomScale != 100 {
		view.ZoomScale = int(*opts.ZoomScale)
	}
	if opts.TopLeftCell != nil {
		view.TopLeftCell = *opts.TopLeftCell
	}
	return view, nil
}
