package reshape

import (
	"strings"

	"github.com/ukaji3/hourflow-go/pkg/hourflow/models"
)

// Distinct returns the distinct non-blank values of column in row order.
func Distinct(t models.Table, column string) []string {
	idx := t.Index(column)
	if idx < 0 {
		return nil
	}
	seen := make(map[string]bool)
	var values []string
	for row := range t.Rows {
		v := strings.TrimSpace(t.Cell(row, idx))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

// ExpandSelection resolves a requested selection against the observed names.
// Requested names are trimmed the way table names are. When requested contains
// the selectAll sentinel the result is every observed name.
func ExpandSelection(observed, requested []string, selectAll string) []string {
	out := make([]string, 0, len(requested))
	for _, r := range requested {
		r = strings.TrimSpace(r)
		if r == selectAll {
			return append([]string(nil), observed...)
		}
		out = append(out, r)
	}
	return out
}

// FilterRows returns a copy of t holding only rows whose name is in selected.
func FilterRows(t models.Table, nameColumn string, selected []string) models.Table {
	want := make(map[string]bool, len(selected))
	for _, s := range selected {
		want[s] = true
	}
	idx := t.Index(nameColumn)

	out := models.Table{Columns: append([]string(nil), t.Columns...)}
	for row := range t.Rows {
		if want[strings.TrimSpace(t.Cell(row, idx))] {
			out.Rows = append(out.Rows, append([]string(nil), t.Rows[row]...))
		}
	}
	return out
}
