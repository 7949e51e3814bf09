package xlsheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/parser"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/writer"
)

// Workbook is an ordered list of sheets.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Sheets holds the sheets in workbook order.
	Sheets []*Sheet
}

// Open loads every sheet of an xlsx file.
func Open(path string, opts Options) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	data, err := parser.LoadWorkbook(path, opts.parserOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return FromWorkbookData(data), nil
}

// FromWorkbookData builds a workbook from a snapshot.
func FromWorkbookData(data *models.WorkbookData) *Workbook {
	wb := &Workbook{BookName: data.BookName}
	for _, sheet := range data.Sheets {
		wb.Sheets = append(wb.Sheets, FromData(sheet))
	}
	return wb
}

// Sheet returns the sheet named name.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	for _, s := range w.Sheets {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// AddSheet appends an empty sheet.
func (w *Workbook) AddSheet(name string, opts SheetOptions) *Sheet {
	s := New(name, opts)
	w.Sheets = append(w.Sheets, s)
	return s
}

// Snapshot returns a detached copy of the workbook.
func (w *Workbook) Snapshot() *models.WorkbookData {
	data := &models.WorkbookData{BookName: w.BookName}
	for _, s := range w.Sheets {
		data.Sheets = append(data.Sheets, s.Snapshot())
	}
	return data
}

// SaveAs writes the workbook to a new xlsx file.
func (w *Workbook) SaveAs(path string) error {
	return writer.SaveWorkbook(path, w.Snapshot().Sheets...)
}
