package hourflow

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/hourflow-go/pkg/hourflow/models"
	"github.com/ukaji3/hourflow-go/pkg/hourflow/parser"
	"github.com/ukaji3/hourflow-go/pkg/hourflow/reshape"
	"github.com/ukaji3/hourflow-go/pkg/hourflow/sankey"
	"github.com/xuri/excelize/v2"
)

// Generate reads the workbook at path and builds its Sankey graph.
func Generate(path string, opts Options) (*models.Graph, error) {
	table, err := ReadTable(path, opts)
	if err != nil {
		return nil, err
	}
	return GenerateFromTable(table, opts)
}

// GenerateReader is Generate for a workbook held in memory, such as an upload body.
func GenerateReader(r io.Reader, opts Options) (*models.Graph, error) {
	f, err := excelize.OpenReader(r, excelize.Options{Password: opts.Password})
	if err != nil {
		return nil, NewIntakeError("<reader>", "open", errors.Join(ErrInvalidFormat, err))
	}
	defer f.Close()

	table, err := parser.ReadTable(f, parser.ReadOptions{Sheet: opts.Sheet, UsePrintArea: opts.UsePrintArea})
	if err != nil {
		return nil, NewIntakeError("<reader>", "read", err)
	}
	return GenerateFromTable(table, opts)
}

// ReadTable opens the workbook at path and returns the selected sheet as a table.
func ReadTable(path string, opts Options) (models.Table, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return models.Table{}, NewIntakeError(path, "open", ErrFileNotFound)
	}

	f, err := excelize.OpenFile(path, excelize.Options{Password: opts.Password})
	if err != nil {
		return models.Table{}, NewIntakeError(path, "open", errors.Join(ErrInvalidFormat, err))
	}
	defer f.Close()

	table, err := parser.ReadTable(f, parser.ReadOptions{Sheet: opts.Sheet, UsePrintArea: opts.UsePrintArea})
	if err != nil {
		return models.Table{}, NewIntakeError(path, "read", err)
	}
	return table, nil
}

// Names returns the individuals of the sheet in row order. It is the list a
// caller chooses a selection from.
func Names(table models.Table, opts Options) ([]string, error) {
	if err := reshape.Validate(table, opts.Columns.Required()); err != nil {
		return nil, err
	}
	return reshape.Distinct(table, opts.Columns.Name), nil
}

// GenerateFromTable runs validation, selection, reshaping and graph assembly on table.
// The table is not modified. On error no graph is returned.
func GenerateFromTable(table models.Table, opts Options) (*models.Graph, error) {
	log := opts.logger()

	if err := reshape.Validate(table, opts.Columns.Required()); err != nil {
		log.Debug("schema check failed", "error", err)
		return nil, err
	}

	observed := reshape.Distinct(table, opts.Columns.Name)
	selection := opts.Selection
	if selection == nil {
		n := opts.defaultSelection()
		if n > len(observed) {
			n = len(observed)
		}
		selection = observed[:n]
	}
	selection = reshape.ExpandSelection(observed, selection, opts.selectAllToken())

	selected := reshape.FilterRows(table, opts.Columns.Name, selection)
	log.Debug("selection applied", "requested", len(selection), "rows", len(selected.Rows))

	rows, stats, err := reshape.Reshape(selected, opts.Columns, opts.Labels)
	if err != nil {
		log.Debug("band partition failed", "error", err)
		return nil, err
	}
	log.Debug("reshaped",
		"cells", stats.Cells,
		"unparsed", stats.Unparsed,
		"dropped", stats.Dropped,
		"kept", len(rows),
	)

	graph := sankey.Build(sankey.Input{
		Rows:            rows,
		Groups:          groups(selected, opts.Columns.Group),
		Names:           reshape.Distinct(selected, opts.Columns.Name),
		AggregateLeaves: opts.AggregateLeaves,
	})
	for label, total := range sankey.Totals(rows) {
		log.Debug("top category total", "label", label, "hours", total.String())
	}
	log.Debug("graph built", "nodes", len(graph.Nodes), "links", len(graph.Links))

	return &graph, nil
}

// groups lists the selected rows' groups, naming blank cells the way reshape does.
func groups(t models.Table, column string) []string {
	out := reshape.Distinct(t, column)
	idx := t.Index(column)
	for row := range t.Rows {
		if strings.TrimSpace(t.Cell(row, idx)) == "" {
			return append(out, reshape.Ungrouped)
		}
	}
	return out
}
