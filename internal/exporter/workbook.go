package exporter

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"gamelens/internal/analytics"
	"gamelens/internal/errors"
)

// WriteWorkbook writes the full analysis as a single XLSX file with three
// sheets: Summary, Top Genres, and Genre Ratings.
func WriteWorkbook(path string, data *ReportData) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return errors.NewStorageError("failed to name summary sheet", err)
	}
	if err := writeSummarySheet(f, data); err != nil {
		return err
	}
	if err := writeTopGenresSheet(f, data.TopGenres); err != nil {
		return err
	}
	if err := writeRatingsSheet(f, data.Ratings); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for workbook", err)
	}
	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError("failed to save workbook", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, data *ReportData) error {
	rows := [][]interface{}{
		{"Video Game Library Analysis"},
		{"Generated", data.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Source", data.SourceFile},
		{},
		{"Total Games", data.Stats.TotalGames},
		{"Total Plays", data.Stats.TotalPlays},
		{"Average Rating", data.Stats.AverageRating},
		{"Highest Rating", data.Stats.HighestRating},
		{"Lowest Rating", data.Stats.LowestRating},
		{"Unique Genres", data.Stats.UniqueGenres},
		{"Recovered Cells", data.Warnings},
	}
	if data.MostPlayed != nil {
		rows = append(rows,
			[]interface{}{},
			[]interface{}{"Most Played Game", data.MostPlayed.Title},
			[]interface{}{"Plays", data.MostPlayed.PlayCount},
		)
	}

	if err := f.SetColWidth("Summary", "A", "A", 22); err != nil {
		return errors.NewStorageError("failed to size summary columns", err)
	}
	return writeRows(f, "Summary", rows)
}

func writeTopGenresSheet(f *excelize.File, genres []analytics.GenreAggregate) error {
	const sheet = "Top Genres"
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.NewStorageError("failed to create top genres sheet", err)
	}

	rows := [][]interface{}{{"Rank", "Genre", "Total Plays", "Games"}}
	for i, g := range genres {
		rows = append(rows, []interface{}{i + 1, g.Genre, g.TotalPlays, g.GameCount})
	}

	if err := f.SetColWidth(sheet, "B", "B", 26); err != nil {
		return errors.NewStorageError("failed to size genre columns", err)
	}
	return writeRows(f, sheet, rows)
}

func writeRatingsSheet(f *excelize.File, genres []analytics.GenreAggregate) error {
	const sheet = "Genre Ratings"
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.NewStorageError("failed to create genre ratings sheet", err)
	}

	rows := [][]interface{}{{"Rank", "Genre", "Mean Rating", "Rated Games"}}
	for i, g := range genres {
		rows = append(rows, []interface{}{i + 1, g.Genre, g.MeanRating, g.RatedCount})
	}

	if err := f.SetColWidth(sheet, "B", "B", 26); err != nil {
		return errors.NewStorageError("failed to size genre columns", err)
	}
	return writeRows(f, sheet, rows)
}

// writeRows writes each row into column A of the sheet, top to bottom.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.NewStorageError("failed to compute cell coordinates", err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return errors.NewStorageError("failed to write workbook row", err)
		}
	}
	return nil
}
