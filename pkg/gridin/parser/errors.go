package parser

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates a mandatory sheet file does not exist.
var ErrSheetNotFound = errors.New("sheet file not found")

// ErrMissingColumn indicates a mandatory sheet lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// ErrBadConversion indicates a process row carries a conversion value
// outside the recognized set. Conversion has no safe default, so this is
// fatal for the processes sheet.
var ErrBadConversion = errors.New("unsupported conversion value")

// SheetError wraps an error with the sheet it occurred in.
type SheetError struct {
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %v", e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
