package reshape

import (
	"strings"

	"github.com/ukaji3/hourflow-go/pkg/hourflow/models"
	"github.com/ukaji3/hourflow-go/pkg/hourflow/parser"
)

// Stats counts what happened to band cells during a reshape.
type Stats struct {
	// Cells is the number of long-form rows produced by unpivoting.
	Cells int
	// Unparsed is the number of cells that failed numeric coercion (blank included).
	Unparsed int
	// Dropped is the number of rows removed for a value that is missing or not positive.
	Dropped int
}

// Melt unpivots the band columns: one row per (table row, band column) carrying the cell text.
func Melt(t models.Table, cols Columns, band []int, label string) []models.LongRow {
	nameIdx := t.Index(cols.Name)
	groupIdx := t.Index(cols.Group)

	out := make([]models.LongRow, 0, len(t.Rows)*len(band))
	for _, col := range band {
		for row := range t.Rows {
			group := strings.TrimSpace(t.Cell(row, groupIdx))
			if group == "" {
				group = Ungrouped
			}
			out = append(out, models.LongRow{
				Group:       group,
				Name:        strings.TrimSpace(t.Cell(row, nameIdx)),
				SubCategory: t.Columns[col],
				Raw:         t.Cell(row, col),
				TopCategory: label,
			})
		}
	}
	return out
}

// Coerce parses each row's Raw text into Value, leaving Value nil on failure.
// It returns the number of rows that failed to parse.
func Coerce(rows []models.LongRow) int {
	failed := 0
	for i := range rows {
		d, ok := parser.ParseHours(rows[i].Raw)
		if !ok {
			rows[i].Value = nil
			failed++
			continue
		}
		rows[i].Value = &d
	}
	return failed
}

// KeepPositive removes rows whose value is missing, zero or negative.
func KeepPositive(rows []models.LongRow) []models.LongRow {
	kept := rows[:0]
	for _, r := range rows {
		if r.Value != nil && r.Value.IsPositive() {
			kept = append(kept, r)
		}
	}
	return kept
}

// Reshape partitions the validated table into its two bands, unpivots both and keeps the
// strictly positive observations. Fixed-band rows precede project-band rows.
func Reshape(t models.Table, cols Columns, labels Labels) ([]models.LongRow, Stats, error) {
	bands, err := Partition(t, cols.FixedTotal, cols.ProjectTotal)
	if err != nil {
		return nil, Stats{}, err
	}
	labels = labels.Resolve(cols)

	rows := Melt(t, cols, bands.Fixed, labels.Fixed)
	rows = append(rows, Melt(t, cols, bands.Project, labels.Project)...)

	stats := Stats{Cells: len(rows)}
	stats.Unparsed = Coerce(rows)
	rows = KeepPositive(rows)
	stats.Dropped = stats.Cells - len(rows)

	return rows, stats, nil
}
