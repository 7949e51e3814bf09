package xlsheet

import "github.com/ukaji3/xlsheet-go/pkg/xlsheet/shift"

// ShiftRows moves rows startRow..endRow (0-based, inclusive) by n rows and
// clears explicit row heights. Rows in the landing zone are dropped.
func (s *Sheet) ShiftRows(startRow, endRow, n int) (shift.Result, error) {
	return s.ShiftRowsWithHeight(startRow, endRow, n, false, false)
}

// ShiftRowsWithHeight moves rows startRow..endRow by n rows. When
// copyRowHeight is false every row loses its explicit height. When
// resetOriginalRowHeight is true every row gets the default row height.
// Merged regions are not moved. The row outline maximum is refreshed when
// rows are dropped.
func (s *Sheet) ShiftRowsWithHeight(startRow, endRow, n int, copyRowHeight, resetOriginalRowHeight bool) (shift.Result, error) {
	res, err := shift.Rows(s.rows, shift.Params{
		Start:                  startRow,
		End:                    endRow,
		N:                      n,
		CopyRowHeight:          copyRowHeight,
		ResetOriginalRowHeight: resetOriginalRowHeight,
	}, s.format.DefaultRowHeight)
	if err != nil {
		return res, NewSheetError(s.name, "shift rows", err)
	}
	if len(res.Dropped) > 0 {
		s.outline.Publish()
	}
	return res, nil
}
