package mdtools

import (
	"strings"
)

// DefaultTableTitle is the heading written above a rendered table.
const DefaultTableTitle = "Transposed Table"

// Table represents a markdown pipe table.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// TableParser reads the first table of a markdown document.
type TableParser interface {
	// ParseTable returns the table found in source.
	// Returns EINVALID if source holds no table.
	ParseTable(source []byte) (*Table, error)
}

// Dimensions returns the number of data rows and columns of the table.
func (t *Table) Dimensions() (rows, cols int) {
	return len(t.Rows), len(t.Header)
}

// Validate returns an error if the table is not rectangular.
func (t *Table) Validate() error {
	if len(t.Header) == 0 {
		return Errorf(EINVALID, "table header required")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return Errorf(EINVALID, "table row %d has %d cells, header has %d", i+1, len(row), len(t.Header))
		}
	}
	return nil
}

// Transpose swaps rows and columns, using the first column as the new header.
//
// The new header is corner followed by the first cell of every row. Each
// remaining original column becomes a row led by its original header. An
// empty corner keeps the original top-left header.
func (t *Table) Transpose(corner string) *Table {
	if len(t.Header) == 0 {
		return &Table{}
	}
	if corner == "" {
		corner = t.Header[0]
	}

	header := make([]string, 0, len(t.Rows)+1)
	header = append(header, corner)
	for _, row := range t.Rows {
		header = append(header, cell(row, 0))
	}

	rows := make([][]string, 0, len(t.Header)-1)
	for j := 1; j < len(t.Header); j++ {
		row := make([]string, 0, len(t.Rows)+1)
		row = append(row, t.Header[j])
		for _, r := range t.Rows {
			row = append(row, cell(r, j))
		}
		rows = append(rows, row)
	}

	return &Table{Header: header, Rows: rows}
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// ParseTable collects the pipe-table lines of a markdown document and parses
// them as one table: the first line is the header, the second the separator,
// and the rest are data rows. Lines starting with '#' are never table lines.
//
// Rows shorter than the header are padded with empty cells; longer rows are
// rejected.
func ParseTable(lines []string) (*Table, error) {
	var tableLines []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || !strings.Contains(trimmed, "|") || strings.HasPrefix(trimmed, "#") {
			continue
		}
		tableLines = append(tableLines, trimmed)
	}

	if len(tableLines) == 0 {
		return nil, Errorf(EINVALID, "no markdown table found")
	}

	t := &Table{Header: SplitRow(tableLines[0])}
	if len(tableLines) < 3 {
		return t, nil
	}

	for i, line := range tableLines[2:] {
		row := SplitRow(line)
		if len(row) > len(t.Header) {
			return nil, Errorf(EINVALID, "table row %d has %d cells, header has %d", i+1, len(row), len(t.Header))
		}
		for len(row) < len(t.Header) {
			row = append(row, "")
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// SplitRow splits a pipe-table line into trimmed cells.
// Outer pipes are optional and "\|" is read as a literal pipe.
func SplitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	if strings.HasSuffix(line, "|") && !strings.HasSuffix(line, `\|`) {
		line = strings.TrimSuffix(line, "|")
	}

	var cells []string
	var sb strings.Builder
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '\\' && i+1 < len(line) && line[i+1] == '|':
			sb.WriteByte('|')
			i++
		case line[i] == '|':
			cells = append(cells, strings.TrimSpace(sb.String()))
			sb.Reset()
		default:
			sb.WriteByte(line[i])
		}
	}
	return append(cells, strings.TrimSpace(sb.String()))
}

// RenderTable formats t as a markdown pipe table preceded by an H1 title.
// The title is omitted when empty. Pipes inside cells are escaped.
func RenderTable(title string, t *Table) string {
	var b strings.Builder
	if title != "" {
		b.WriteString("# ")
		b.WriteString(title)
		b.WriteString("\n\n")
	}

	writeRow(&b, t.Header)
	sep := make([]string, len(t.Header))
	for i := range sep {
		sep[i] = "---"
	}
	b.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, row := range t.Rows {
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	b.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
}
