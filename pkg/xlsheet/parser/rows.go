package parser

import (
	"sort"
	"strconv"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractRows builds the rows of a sheet from its cell values and the row
// attributes decoded from the worksheet part. A row is kept when it has a
// value or appears as a <row> element.
func ExtractRows(f *excelize.File, sheetName string, attrs map[int]models.Row) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	byNum := make(map[int]*models.Row, len(attrs))
	for num, attr := range attrs {
		row := attr
		byNum[num] = &row
	}

	for rowIdx, values := range rows {
		for colIdx, cellValue := range values {
			if cellValue == "" {
				continue
			}
			row, ok := byNum[rowIdx]
			if !ok {
				row = models.NewRow(rowIdx)
				byNum[rowIdx] = row
			}
			row.Cells = append(row.Cells, models.Cell{Col: colIdx, V: parseValue(cellValue)})
		}
	}

	result := make([]models.Row, 0, len(byNum))
	for _, row := range byNum {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Num < result[j].Num })

	return result, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
