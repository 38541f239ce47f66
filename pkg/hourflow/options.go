// Package hourflow turns personnel working-hour sheets into Sankey flow graphs.
package hourflow

import (
	"io"
	"log/slog"

	"github.com/ukaji3/hourflow-go/pkg/hourflow/reshape"
)

// SelectAll is the default sentinel that expands to every individual in the sheet.
const SelectAll = "*"

// DefaultSelectionSize is how many leading individuals are selected when none are requested.
const DefaultSelectionSize = 5

// Options configures a pipeline run.
type Options struct {
	// Columns names the identity and anchor columns.
	Columns reshape.Columns
	// Labels names the two top categories. Empty labels default to the anchor names.
	Labels reshape.Labels
	// Selection lists the individuals to include. It may contain SelectAllToken.
	// If nil, the first DefaultSelection individuals are used.
	Selection []string
	// SelectAllToken overrides SelectAll when non-empty.
	SelectAllToken string
	// DefaultSelection overrides DefaultSelectionSize when positive.
	DefaultSelection int
	// AggregateLeaves sums sub-category -> individual links per pair.
	AggregateLeaves bool
	// Sheet is the sheet to read; empty means the first sheet.
	Sheet string
	// UsePrintArea restricts the table to the sheet's print area when one is defined.
	UsePrintArea bool
	// Password opens an encrypted workbook.
	Password string
	// Logger receives debug output. If nil, logging is discarded.
	Logger *slog.Logger
}

// DefaultOptions returns options for the standard survey sheet layout.
func DefaultOptions() Options {
	return Options{
		Columns: reshape.DefaultColumns(),
	}
}

func (o Options) selectAllToken() string {
	if o.SelectAllToken != "" {
		return o.SelectAllToken
	}
	return SelectAll
}

func (o Options) defaultSelection() int {
	if o.DefaultSelection > 0 {
		return o.DefaultSelection
	}
	return DefaultSelectionSize
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
