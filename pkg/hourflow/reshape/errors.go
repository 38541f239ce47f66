package reshape

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAnchorOrder indicates the project-task anchor does not follow the fixed-budget anchor.
var ErrAnchorOrder = errors.New("anchor columns out of order")

// SchemaError reports required columns absent from the table header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// AnchorError reports the positions of misordered anchor columns.
type AnchorError struct {
	Fixed, Project           string
	FixedIndex, ProjectIndex int
}

func (e *AnchorError) Error() string {
	return fmt.Sprintf("%v: %q (column %d) must come before %q (column %d)",
		ErrAnchorOrder, e.Fixed, e.FixedIndex+1, e.Project, e.ProjectIndex+1)
}

func (e *AnchorError) Unwrap() error {
	return ErrAnchorOrder
}
