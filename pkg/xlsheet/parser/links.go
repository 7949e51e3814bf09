package parser

import (
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractHyperlinks resolves the hyperlink of every non-empty cell in rows.
func ExtractHyperlinks(f *excelize.File, sheetName string, rows []models.Row) []models.Hyperlink {
	var links []models.Hyperlink
	for _, row := range rows {
		for _, cell := range row.Cells {
			cellName, err := excelize.CoordinatesToCellName(cell.Col+1, row.Num+1)
			if err != nil {
				continue
			}
			hasLink, target, err := f.GetCellHyperLink(sheetName, cellName)
			if err == nil && hasLink && target != "" {
				links = append(links, models.Hyperlink{Row: row.Num, Col: cell.Col, Target: target})
			}
		}
	}
	return links
}
