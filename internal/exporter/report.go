package exporter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gamelens/internal/analytics"
	"gamelens/internal/errors"
)

// ReportData carries everything the text report and workbook need. The
// caller injects GeneratedAt so output for a given dataset is byte-for-byte
// reproducible under test.
type ReportData struct {
	GeneratedAt time.Time
	SourceFile  string
	MostPlayed  *analytics.GameRecord
	TopGenres   []analytics.GenreAggregate
	Ratings     []analytics.GenreAggregate
	Stats       analytics.LibraryStats
	Warnings    int
}

// english renders counts with thousands separators ("21,000") in the
// report; CSV and workbook cells stay bare for machine consumption.
var english = message.NewPrinter(language.English)

// WriteReport writes the plain-text analysis report. Sections appear in a
// fixed order with fixed formatting; the only variable input is the data
// itself, so identical analyses produce identical files.
func WriteReport(path string, data *ReportData) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Video Game Library Analysis\n")
	fmt.Fprintf(&buf, "===========================\n\n")
	fmt.Fprintf(&buf, "Generated: %s\n", data.GeneratedAt.Format("2006-01-02 15:04:05"))
	if data.SourceFile != "" {
		fmt.Fprintf(&buf, "Source: %s\n", data.SourceFile)
	}
	fmt.Fprintf(&buf, "\n")

	writeMostPlayed(&buf, data.MostPlayed)
	writeTopGenres(&buf, data.TopGenres)
	writeRatings(&buf, data.Ratings)
	writeStats(&buf, data.Stats, data.Warnings)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for report", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.NewStorageError("failed to write analysis report", err)
	}
	return nil
}

// section prints a numbered section title underlined with dashes.
func section(w io.Writer, number int, title string) {
	fmt.Fprintf(w, "%d. %s\n", number, title)
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(title)+3))
}

func writeMostPlayed(w io.Writer, game *analytics.GameRecord) {
	section(w, 1, "MOST PLAYED GAME")
	if game == nil {
		fmt.Fprintf(w, "No games found.\n\n")
		return
	}

	fmt.Fprintf(w, "Title: %s\n", game.Title)
	if game.ReleaseDate != "" {
		fmt.Fprintf(w, "Released: %s\n", game.ReleaseDate)
	}
	if len(game.Developers) > 0 {
		fmt.Fprintf(w, "Developers: %s\n", strings.Join(game.Developers, ", "))
	}
	if len(game.Genres) > 0 {
		fmt.Fprintf(w, "Genres: %s\n", strings.Join(game.Genres, ", "))
	}
	english.Fprintf(w, "Plays: %d (%s)\n", game.PlayCount, game.Plays)
	if game.Rated {
		fmt.Fprintf(w, "Rating: %.1f / 5\n", game.Rating)
	} else {
		fmt.Fprintf(w, "Rating: unrated\n")
	}
	fmt.Fprintf(w, "\n")
}

func writeTopGenres(w io.Writer, genres []analytics.GenreAggregate) {
	section(w, 2, "TOP GENRES BY TOTAL PLAYS")
	if len(genres) == 0 {
		fmt.Fprintf(w, "No genres found.\n\n")
		return
	}

	width := nameWidth(genres)
	for i, g := range genres {
		english.Fprintf(w, "%2d. %-*s %12d plays  (%d games)\n",
			i+1, width, g.Genre, g.TotalPlays, g.GameCount)
	}
	fmt.Fprintf(w, "\n")
}

func writeRatings(w io.Writer, genres []analytics.GenreAggregate) {
	section(w, 3, "MEAN RATING BY GENRE")
	if len(genres) == 0 {
		fmt.Fprintf(w, "No rated genres found.\n\n")
		return
	}

	width := nameWidth(genres)
	for i, g := range genres {
		fmt.Fprintf(w, "%2d. %-*s %.2f  (%d rated games)\n",
			i+1, width, g.Genre, g.MeanRating, g.RatedCount)
	}
	fmt.Fprintf(w, "\n")
}

func writeStats(w io.Writer, stats analytics.LibraryStats, warnings int) {
	section(w, 4, "LIBRARY STATISTICS")
	english.Fprintf(w, "Total Games: %d\n", stats.TotalGames)
	english.Fprintf(w, "Total Plays: %d\n", stats.TotalPlays)
	fmt.Fprintf(w, "Average Rating: %.2f\n", stats.AverageRating)
	fmt.Fprintf(w, "Highest Rating: %.2f\n", stats.HighestRating)
	fmt.Fprintf(w, "Lowest Rating: %.2f\n", stats.LowestRating)
	fmt.Fprintf(w, "Unique Genres: %d\n", stats.UniqueGenres)
	if warnings > 0 {
		fmt.Fprintf(w, "Recovered Cells: %d\n", warnings)
	}
}

// nameWidth returns the padding width for aligned genre columns.
func nameWidth(genres []analytics.GenreAggregate) int {
	width := 10
	for _, g := range genres {
		if len(g.Genre) > width {
			width = len(g.Genre)
		}
	}
	return width
}
