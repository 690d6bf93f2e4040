package markdown

// Matrix is a rectangular table: every row has len(Header) cells.
type Matrix struct {
	Header []string
	Rows   [][]string
}

// Empty reports whether the matrix has no data rows.
func (m Matrix) Empty() bool {
	return len(m.Rows) == 0
}

// MatrixFromTable uses the first row of t as header. Data rows wider than
// the header are truncated, narrower rows are discarded.
// ok is false when no data row remains.
func MatrixFromTable(t Table) (m Matrix, ok bool) {
	if len(t.Rows) < 2 {
		return Matrix{}, false
	}

	header := append([]string(nil), t.Rows[0]...)
	var rows [][]string
	for _, row := range t.Rows[1:] {
		if len(row) < len(header) {
			continue
		}
		rows = append(rows, append([]string(nil), row[:len(header)]...))
	}

	if len(rows) == 0 {
		return Matrix{}, false
	}
	return Matrix{Header: header, Rows: rows}, true
}
