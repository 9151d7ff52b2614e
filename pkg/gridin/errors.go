package gridin

import (
	"errors"
	"fmt"
)

// ErrWorkbookNotFound indicates the input workbook does not exist.
var ErrWorkbookNotFound = errors.New("workbook not found")

// ErrNoSheets indicates the workbook contains no sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// StageError wraps a fatal error with the pipeline stage it occurred in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %q: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
