package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"gamelens/internal/config"
	"gamelens/internal/errors"
)

// Load reads the games catalog at path into a Table, dispatching on the
// file extension, and validates the fixed schema and a non-zero row count.
func Load(ctx context.Context, path string) (*Table, error) {
	var (
		table *Table
		err   error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case config.InputFormatCSV:
		table, err = ReadCSV(ctx, path)
	case config.InputFormatWorkbook:
		table, err = ReadWorkbook(ctx, path)
	default:
		return nil, errors.NewInputError(
			fmt.Sprintf("unsupported input format %q (want .csv or .xlsx)", ext), nil)
	}
	if err != nil {
		return nil, err
	}

	if err := table.validate(); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Dataset loaded",
		slog.String("file", path),
		slog.Int("records", table.RowCount()),
		slog.Int("columns", len(table.Header)))

	return table, nil
}

// ReadCSV reads a CSV export. Ragged rows are tolerated: short rows read
// as empty cells, extra cells are ignored.
func ReadCSV(ctx context.Context, path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to parse CSV %s", path), err)
	}
	if len(records) == 0 {
		return nil, errors.NewInputError(fmt.Sprintf("%s contains no header row", path), nil)
	}

	header := records[0]
	// Exports written by Excel carry a UTF-8 BOM in the first cell
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	rows := dropEmptyRows(records[1:])

	slog.DebugContext(ctx, "CSV file read",
		slog.String("file", path),
		slog.Int("raw_rows", len(records)-1),
		slog.Int("data_rows", len(rows)))

	return newTable(path, header, rows), nil
}

// ReadWorkbook reads the first sheet of an XLSX workbook as the catalog
// table, with the same shape rules as the CSV reader.
func ReadWorkbook(ctx context.Context, path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to open workbook %s", path), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewInputError(fmt.Sprintf("workbook %s has no sheets", path), nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to read sheet %q of %s", sheets[0], path), err)
	}
	if len(rows) == 0 {
		return nil, errors.NewInputError(fmt.Sprintf("%s contains no header row", path), nil)
	}

	header := rows[0]
	data := dropEmptyRows(rows[1:])

	slog.DebugContext(ctx, "Workbook read",
		slog.String("file", path),
		slog.String("sheet", sheets[0]),
		slog.Int("data_rows", len(data)))

	return newTable(path, header, data), nil
}
