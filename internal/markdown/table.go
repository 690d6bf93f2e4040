package markdown

import "strings"

// Table is a parsed markdown table block.
// Rows holds trimmed cells; rows may have different lengths.
type Table struct {
	Rows      [][]string
	HasHeader bool // second source line was a separator row
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Body returns the data rows: all rows after the header when the table has
// one, otherwise all rows.
func (t Table) Body() [][]string {
	if t.HasHeader && len(t.Rows) > 0 {
		return t.Rows[1:]
	}
	return t.Rows
}

// ParseTable consumes consecutive '|'-prefixed lines starting at lines[start].
// Separator rows are skipped. Parsing stops at the first line that does not
// start with '|' (after trimming). next is the index of that line.
func ParseTable(lines []string, start int) (t Table, next int) {
	i := start
	sawSeparator := false

	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "|") {
			break
		}
		if isSeparatorRow(line) {
			if !sawSeparator && len(t.Rows) == 1 && i == start+1 {
				t.HasHeader = true
			}
			sawSeparator = true
			continue
		}
		if cells := splitRow(line); len(cells) > 0 {
			t.Rows = append(t.Rows, cells)
		}
	}

	return t, i
}

// FirstTable parses the first table found in text.
// found is false when text contains no table line outside code fences.
func FirstTable(text string) (t Table, found bool) {
	lines := strings.Split(text, "\n")
	inFence := false
	for i, line := range lines {
		if isFence(line) {
			inFence = !inFence
			continue
		}
		if !inFence && strings.HasPrefix(strings.TrimSpace(line), "|") {
			t, _ = ParseTable(lines, i)
			return t, true
		}
	}
	return Table{}, false
}

// isSeparatorRow reports whether line is made only of pipes, dashes, colons
// and spaces, with at least one dash.
func isSeparatorRow(line string) bool {
	if !strings.Contains(line, "-") {
		return false
	}
	for _, r := range line {
		switch r {
		case '|', '-', ':', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// splitRow splits a table line into trimmed cells.
// One leading and one trailing pipe are dropped; interior empty cells stay.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	if strings.HasSuffix(line, "|") && !strings.HasSuffix(line, `\|`) {
		line = line[:len(line)-1]
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}

	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
