// Package models defines data structures for the hour-flow pipeline.
package models

// Table is a header row plus data rows in sheet column order.
// Column order is significant: band membership is derived from it.
type Table struct {
	// Columns holds the header names in sheet order.
	Columns []string `json:"columns"`
	// Rows holds cell text per row; a row may be shorter than Columns.
	Rows [][]string `json:"rows"`
}

// Index returns the position of the first column named name, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the text at (row, col), or "" when the row is short.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}
