package hourflow

import (
	"errors"
	"fmt"

	"github.com/ukaji3/hourflow-go/pkg/hourflow/parser"
	"github.com/ukaji3/hourflow-go/pkg/hourflow/reshape"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrEmptySheet indicates the sheet holds no cells.
var ErrEmptySheet = parser.ErrEmptySheet

// ErrAnchorOrder indicates the project-task anchor does not follow the fixed-budget anchor.
var ErrAnchorOrder = reshape.ErrAnchorOrder

// SchemaError reports required columns missing from the sheet header.
type SchemaError = reshape.SchemaError

// AnchorError reports misordered anchor columns.
type AnchorError = reshape.AnchorError

// IntakeError represents a failure reading the workbook.
type IntakeError struct {
	Path  string
	Stage string // "open", "read"
	Err   error
}

func (e *IntakeError) Error() string {
	return fmt.Sprintf("reading %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *IntakeError) Unwrap() error {
	return e.Err
}

// NewIntakeError creates a new IntakeError.
func NewIntakeError(path, stage string, err error) *IntakeError {
	return &IntakeError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
