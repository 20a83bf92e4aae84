package analytics

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"gamelens/internal/dataset"
	"gamelens/internal/errors"
)

// Analyzer runs the normalization and aggregation pass over a loaded
// dataset. It owns no I/O beyond structured warning logs; malformed cells
// degrade to zero values instead of failing the run.
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer. A nil logger falls back to slog.Default().
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// Analyze cleans every row of the table into a GameRecord, then folds the
// records into per-genre aggregates and library statistics. Row order is
// preserved so tie-breaks stay deterministic for a given input file.
func (a *Analyzer) Analyze(ctx context.Context, table *dataset.Table) (*Analysis, error) {
	if table == nil {
		return nil, errors.NewValidationError("no dataset to analyze")
	}

	start := time.Now()
	a.logger.InfoContext(ctx, "analyzing dataset",
		slog.String("file", table.Path),
		slog.Int("records", table.RowCount()))

	analysis := &Analysis{Records: make([]GameRecord, 0, table.RowCount())}
	for i, row := range table.Rows {
		analysis.Records = append(analysis.Records, a.buildRecord(ctx, table, i, row, &analysis.Warnings))
	}

	a.aggregate(analysis)

	a.logger.InfoContext(ctx, "analysis complete",
		slog.Int("records", len(analysis.Records)),
		slog.Int("genres", len(analysis.Genres)),
		slog.Int("warnings", analysis.Warnings),
		slog.Duration("elapsed", time.Since(start)))

	return analysis, nil
}

// buildRecord normalizes one source row. Unparseable numeric cells are
// logged and replaced with zero; an unparseable rating leaves the record
// unrated.
func (a *Analyzer) buildRecord(ctx context.Context, table *dataset.Table, index int, row []string, warnings *int) GameRecord {
	rowNum := index + 1

	rec := GameRecord{
		Row:         rowNum,
		Title:       strings.TrimSpace(table.Value(row, "Title")),
		ReleaseDate: strings.TrimSpace(table.Value(row, "Release_Date")),
		Developers:  ParseList(table.Value(row, "Developers")),
		Platforms:   ParseList(table.Value(row, "Platforms")),
		Genres:      ParseList(table.Value(row, "Genres")),
		Plays:       strings.TrimSpace(table.Value(row, "Plays")),
	}

	rec.PlayCount = a.normalizeCount(ctx, rowNum, "Plays", rec.Plays, warnings)
	rec.Playing = a.normalizeCount(ctx, rowNum, "Playing", table.Value(row, "Playing"), warnings)
	rec.Backlogs = a.normalizeCount(ctx, rowNum, "Backlogs", table.Value(row, "Backlogs"), warnings)
	rec.Wishlist = a.normalizeCount(ctx, rowNum, "Wishlist", table.Value(row, "Wishlist"), warnings)
	rec.Lists = a.normalizeCount(ctx, rowNum, "Lists", table.Value(row, "Lists"), warnings)
	rec.Reviews = a.normalizeCount(ctx, rowNum, "Reviews", table.Value(row, "Reviews"), warnings)

	rawRating := table.Value(row, "Rating")
	rec.Rating, rec.Rated = ParseRating(rawRating)
	if !rec.Rated && strings.TrimSpace(rawRating) != "" {
		*warnings++
		a.logger.WarnContext(ctx, "rating not parseable, treating game as unrated",
			slog.Int("row", rowNum),
			slog.String("title", rec.Title),
			slog.String("value", rawRating))
	}

	return rec
}

// normalizeCount converts one count cell, recovering to zero with a warning
// when the cell cannot be read.
func (a *Analyzer) normalizeCount(ctx context.Context, row int, column, raw string, warnings *int) int64 {
	value, err := NormalizePlayCount(raw)
	if err != nil {
		*warnings++
		a.logger.WarnContext(ctx, "count not parseable, using 0",
			slog.Int("row", row),
			slog.String("column", column),
			slog.String("value", raw))
		return 0
	}
	return value
}

// aggregate explodes each record into its genres and folds the results
// into the analysis. A game with N genres contributes its full play count
// and rating to all N aggregates.
func (a *Analyzer) aggregate(analysis *Analysis) {
	byGenre := make(map[string]*GenreAggregate)
	ratingSums := make(map[string]float64)

	stats := LibraryStats{TotalGames: len(analysis.Records)}
	var ratingSum float64
	var ratedGames int

	for _, rec := range analysis.Records {
		stats.TotalPlays += rec.PlayCount

		if rec.Rated {
			ratedGames++
			ratingSum += rec.Rating
			if ratedGames == 1 || rec.Rating > stats.HighestRating {
				stats.HighestRating = rec.Rating
			}
			if ratedGames == 1 || rec.Rating < stats.LowestRating {
				stats.LowestRating = rec.Rating
			}
		}

		// A record tagged with the same genre twice still counts once.
		seen := make(map[string]struct{}, len(rec.Genres))
		for _, g := range rec.Genres {
			if _, dup := seen[g]; dup {
				continue
			}
			seen[g] = struct{}{}

			agg, ok := byGenre[g]
			if !ok {
				agg = &GenreAggregate{Genre: g}
				byGenre[g] = agg
			}
			agg.TotalPlays += rec.PlayCount
			agg.GameCount++
			if rec.Rated {
				agg.RatedCount++
				ratingSums[g] += rec.Rating
			}
		}
	}

	if ratedGames > 0 {
		stats.AverageRating = ratingSum / float64(ratedGames)
	}
	stats.UniqueGenres = len(byGenre)
	analysis.stats = stats

	genres := make([]GenreAggregate, 0, len(byGenre))
	for name, agg := range byGenre {
		if agg.RatedCount > 0 {
			agg.MeanRating = ratingSums[name] / float64(agg.RatedCount)
		}
		genres = append(genres, *agg)
	}
	sort.Slice(genres, func(i, j int) bool {
		if genres[i].TotalPlays != genres[j].TotalPlays {
			return genres[i].TotalPlays > genres[j].TotalPlays
		}
		return genres[i].Genre < genres[j].Genre
	})
	analysis.Genres = genres
}
