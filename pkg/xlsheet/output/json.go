// Package output renders sheet snapshots as JSON or terminal tables.
package output

import (
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

func jsonOptions(pretty bool) []json.Options {
	if pretty {
		return []json.Options{jsontext.WithIndent("  ")}
	}
	return nil
}

// ToJSON serializes a workbook snapshot.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return json.Marshal(wb, jsonOptions(pretty)...)
}

// SheetToJSON serializes one sheet snapshot.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return json.Marshal(sheet, jsonOptions(pretty)...)
}

// WriteJSON streams v to w.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	return json.MarshalWrite(w, v, jsonOptions(pretty)...)
}
