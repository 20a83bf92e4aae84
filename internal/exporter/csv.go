package exporter

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gamelens/internal/analytics"
	"gamelens/internal/errors"
)

// CSVWriter exports aggregate tables as CSV.
type CSVWriter struct {
	logger *slog.Logger
	opts   WriteOptions
}

// WriteOptions configures CSV output behavior.
type WriteOptions struct {
	IncludeBOM bool // prefix a UTF-8 BOM so Excel opens the file correctly
	Delimiter  rune // zero value means comma
}

// NewCSVWriter creates a CSV writer with the given options.
func NewCSVWriter(logger *slog.Logger, opts WriteOptions) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	return &CSVWriter{logger: logger, opts: opts}
}

// WriteTopGenres writes the play-count ranking with one row per genre.
func (w *CSVWriter) WriteTopGenres(path string, genres []analytics.GenreAggregate) error {
	header := []string{"Rank", "Genre", "Total Plays", "Games"}
	records := make([][]string, 0, len(genres))
	for i, g := range genres {
		records = append(records, []string{
			strconv.Itoa(i + 1),
			g.Genre,
			formatInt(g.TotalPlays),
			strconv.Itoa(g.GameCount),
		})
	}
	return w.write(path, header, records)
}

// WriteRatingSummary writes the mean-rating ranking with one row per genre.
func (w *CSVWriter) WriteRatingSummary(path string, genres []analytics.GenreAggregate) error {
	header := []string{"Rank", "Genre", "Mean Rating", "Rated Games"}
	records := make([][]string, 0, len(genres))
	for i, g := range genres {
		records = append(records, []string{
			strconv.Itoa(i + 1),
			g.Genre,
			formatFloat(g.MeanRating),
			strconv.Itoa(g.RatedCount),
		})
	}
	return w.write(path, header, records)
}

func (w *CSVWriter) write(path string, header []string, records [][]string) error {
	w.logger.Info("Writing CSV file",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for CSV output", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create CSV file", err)
	}
	defer file.Close()

	if w.opts.IncludeBOM {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return errors.NewStorageError("failed to write BOM", err)
		}
	}

	writer := csv.NewWriter(file)
	writer.Comma = w.opts.Delimiter

	if err := writer.Write(header); err != nil {
		return errors.NewStorageError("failed to write CSV header", err)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return errors.NewStorageError("failed to write CSV record", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush CSV output", err)
	}
	return nil
}
