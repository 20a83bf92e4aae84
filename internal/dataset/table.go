package dataset

import (
	"fmt"
	"strings"

	"gamelens/internal/errors"
)

// RequiredColumns is the fixed, documented schema of the games catalog.
// Extraction fails when any of these is absent from the header row.
var RequiredColumns = []string{
	"Title",
	"Release_Date",
	"Developers",
	"Summary",
	"Platforms",
	"Genres",
	"Rating",
	"Plays",
	"Playing",
	"Backlogs",
	"Wishlist",
	"Lists",
	"Reviews",
}

// Table holds the raw tabular data exactly as read from the source file.
// Cells stay strings; typed interpretation happens in the analytics layer.
type Table struct {
	Path   string
	Header []string
	Rows   [][]string

	columns map[string]int
}

// newTable builds the column lookup from the header row. Duplicate
// header names keep their first position; names are matched with
// surrounding whitespace trimmed.
func newTable(path string, header []string, rows [][]string) *Table {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		trimmed := strings.TrimSpace(name)
		if _, exists := columns[trimmed]; !exists {
			columns[trimmed] = i
		}
	}
	return &Table{
		Path:    path,
		Header:  header,
		Rows:    rows,
		columns: columns,
	}
}

// ColumnIndex returns the position of a named column
func (t *Table) ColumnIndex(name string) (int, bool) {
	idx, ok := t.columns[name]
	return idx, ok
}

// Value returns the cell under the named column for the given row.
// Rows shorter than the header read as empty cells.
func (t *Table) Value(row []string, name string) string {
	idx, ok := t.columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// validate checks the fixed schema and that the table has at least one
// data row. Both violations are fatal input errors.
func (t *Table) validate() error {
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := t.columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return errors.NewInputError(
			fmt.Sprintf("input is missing required columns: %s", strings.Join(missing, ", ")), nil).
			WithContext("file", t.Path)
	}

	if len(t.Rows) == 0 {
		return errors.NewInputError("dataset is empty: 0 records after the header row", nil).
			WithContext("file", t.Path)
	}

	return nil
}

// dropEmptyRows removes rows whose cells are all blank. Spreadsheet
// exports often carry trailing rows of empty cells.
func dropEmptyRows(rows [][]string) [][]string {
	kept := rows[:0]
	for _, row := range rows {
		hasData := false
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				hasData = true
				break
			}
		}
		if hasData {
			kept = append(kept, row)
		}
	}
	return kept
}
