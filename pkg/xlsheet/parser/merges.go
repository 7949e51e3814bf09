package parser

import (
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractMergedRegions returns the merged ranges of a sheet in document order.
func ExtractMergedRegions(f *excelize.File, sheetName string) ([]models.CellRange, error) {
	cells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	var regions []models.CellRange
	for _, mc := range cells {
		region, err := models.ParseCellRange(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if err != nil {
			continue
		}
		regions = append(regions, region)
	}
	return regions, nil
}
