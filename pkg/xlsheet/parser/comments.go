package parser

import (
	"strings"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractComments returns the cell comments of a sheet.
func ExtractComments(f *excelize.File, sheetName string) ([]models.Comment, error) {
	comments, err := f.GetComments(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.Comment
	for _, c := range comments {
		col, row, err := excelize.CellNameToCoordinates(c.Cell)
		if err != nil {
			continue
		}
		result = append(result, models.Comment{
			Row:    row - 1,
			Col:    col - 1,
			Author: c.Author,
			Text:   commentText(c),
		})
	}
	return result, nil
}

// commentText prefers the plain text and falls back to the rich text runs.
func commentText(c excelize.Comment) string {
	if c.Text != "" {
		return c.Text
	}
	var b strings.Builder
	for _, run := range c.Paragraph {
		b.WriteString(run.Text)
	}
	return b.String()
}
