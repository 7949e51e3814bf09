package parser

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
	"github.com/xuri/excelize/v2"
)

// Options selects the optional components read by the loader.
type Options struct {
	IncludeLinks      bool
	IncludeComments   bool
	IncludePrintAreas bool
}

// LoadWorkbook reads every sheet of an xlsx file. Only a failure to open the
// file is fatal; components that cannot be read are logged and left empty.
func LoadWorkbook(path string, opts Options) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	worksheets, err := ReadWorksheets(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Reading worksheet parts failed, row attributes unavailable")
		worksheets = nil
	}

	var printAreas map[string][]models.CellRange
	if opts.IncludePrintAreas {
		printAreas = ExtractPrintAreas(f)
	}

	wb := &models.WorkbookData{BookName: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		data := LoadSheet(f, sheetName, worksheets[sheetName], opts)
		data.PrintAreas = printAreas[sheetName]
		wb.Sheets = append(wb.Sheets, data)
	}

	return wb, nil
}

// LoadSheet reads one sheet. ws may be nil, in which case row and column
// attributes, breaks and header/footer text fall back to defaults.
func LoadSheet(f *excelize.File, sheetName string, ws *Worksheet, opts Options) models.SheetData {
	data := models.NewSheetData(sheetName)
	logger := log.With().Str("sheet", sheetName).Logger()

	var attrs map[int]models.Row
	if ws != nil {
		attrs = ws.RowAttributes()
		data.Columns = ws.Columns()
		data.Format = ws.Format()
		data.Outline = ws.Outline()
		data.Print = ws.Print()
		data.Breaks = ws.Breaks()
		data.HeaderFooter = ws.HeaderFooterText()
	}

	rows, err := ExtractRows(f, sheetName, attrs)
	if err != nil {
		logger.Warn().Err(err).Str("component", "rows").Msg("Skipping component")
	}
	data.Rows = rows

	if data.MergedRegions, err = ExtractMergedRegions(f, sheetName); err != nil {
		logger.Warn().Err(err).Str("component", "merges").Msg("Skipping component")
	}
	if data.Margins, err = ExtractMargins(f, sheetName); err != nil {
		logger.Warn().Err(err).Str("component", "margins").Msg("Skipping component")
	}
	if data.View, err = ExtractView(f, sheetName); err != nil {
		logger.Warn().Err(err).Str("component", "view").Msg("Skipping component")
	}

	if opts.IncludeLinks {
		data.Hyperlinks = ExtractHyperlinks(f, sheetName, data.Rows)
	}
	if opts.IncludeComments {
		if data.Comments, err = ExtractComments(f, sheetName); err != nil {
			logger.Warn().Err(err).Str("component", "comments").Msg("Skipping component")
		}
	}

	logger.Debug().
		Int("rows", len(data.Rows)).
		Int("columns", len(data.Columns)).
		Int("merged_regions", len(data.MergedRegions)).
		Msg("Loaded sheet")

	return data
}
