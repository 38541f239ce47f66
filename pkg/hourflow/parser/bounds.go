package parser

// Region is an inclusive, 1-based cell rectangle.
type Region struct {
	R1, C1, R2, C2 int
}

// clip restricts rows to the region. Rows and cells outside it are dropped.
func (r Region) clip(rows [][]string) [][]string {
	var out [][]string
	for rowIdx := r.R1 - 1; rowIdx <= r.R2-1 && rowIdx < len(rows); rowIdx++ {
		if rowIdx < 0 {
			continue
		}
		row := rows[rowIdx]
		start, end := r.C1-1, r.C2
		if start < 0 {
			start = 0
		}
		if end > len(row) {
			end = len(row)
		}
		if start >= end {
			out = append(out, nil)
			continue
		}
		out = append(out, row[start:end])
	}
	return out
}

// findDataBounds finds the bounding box of non-empty cells.
// All four results are -1 when every cell is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
