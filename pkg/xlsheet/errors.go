package xlsheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// Error kinds reported by sheet operations.
var (
	// ErrOutOfRange indicates an index, row or column outside valid bounds.
	ErrOutOfRange = models.ErrOutOfRange
	// ErrIllegalState indicates an operation that is meaningless for the
	// current structure, such as reading merged regions of a sheet without any.
	ErrIllegalState = models.ErrIllegalState
	// ErrUnknownMargin indicates an unrecognized margin kind.
	ErrUnknownMargin = models.ErrUnknownMargin
)

// SheetError represents a failed operation on a sheet.
type SheetError struct {
	Sheet string
	Op    string // "get merged region", "shift rows", "set margin", ...
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("%s failed on sheet %q: %v", e.Op, e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheet, op string, err error) *SheetError {
	return &SheetError{
		Sheet: sheet,
		Op:    op,
		Err:   err,
	}
}
