package models

// WorkbookData represents a workbook as an ordered list of sheet snapshots.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds the sheets in workbook order.
	Sheets []SheetData `json:"sheets"`
}

// Sheet returns the sheet named name.
func (w *WorkbookData) Sheet(name string) (*SheetData, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}
