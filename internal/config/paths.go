package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Well-known output file names. These are fixed regardless of the
// analysis tunables so downstream consumers can rely on them.
const (
	ReportFileName        = "video_game_analysis.txt"
	TopGenresCSVName      = "top_genres.csv"
	GenreRatingsCSVName   = "genre_ratings.csv"
	WorkbookFileName      = "video_game_analysis.xlsx"
	MostPlayedChartName   = "most_played_game.png"
	TopGenresChartName    = "top_genres.png"
	GenreRatingsChartName = "genre_ratings.png"
	CombinedChartName     = "combined_analysis.png"
)

// Paths contains all the output locations of a pipeline run.
// This is the single source of truth for generated file paths.
type Paths struct {
	OutputDir string

	// Well-known output files
	ReportFile        string
	TopGenresCSV      string
	GenreRatingsCSV   string
	WorkbookFile      string
	MostPlayedChart   string
	TopGenresChart    string
	GenreRatingsChart string
	CombinedChart     string
}

// NewPaths builds the output layout under the given directory
func NewPaths(outputDir string) *Paths {
	return &Paths{
		OutputDir: outputDir,

		ReportFile:        filepath.Join(outputDir, ReportFileName),
		TopGenresCSV:      filepath.Join(outputDir, TopGenresCSVName),
		GenreRatingsCSV:   filepath.Join(outputDir, GenreRatingsCSVName),
		WorkbookFile:      filepath.Join(outputDir, WorkbookFileName),
		MostPlayedChart:   filepath.Join(outputDir, MostPlayedChartName),
		TopGenresChart:    filepath.Join(outputDir, TopGenresChartName),
		GenreRatingsChart: filepath.Join(outputDir, GenreRatingsChartName),
		CombinedChart:     filepath.Join(outputDir, CombinedChartName),
	}
}

// EnsureDirectories creates the output directory if it doesn't exist
func (p *Paths) EnsureDirectories() error {
	logger := slog.Default()

	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %v", p.OutputDir, err)
	}

	if logger != nil {
		logger.Debug("Ensured directory exists",
			slog.String("directory", p.OutputDir))
	}

	return nil
}

// OutputFiles returns every fixed output location in report order
func (p *Paths) OutputFiles() []string {
	return []string{
		p.ReportFile,
		p.TopGenresCSV,
		p.GenreRatingsCSV,
		p.WorkbookFile,
		p.MostPlayedChart,
		p.TopGenresChart,
		p.GenreRatingsChart,
		p.CombinedChart,
	}
}

// TopGamesChartPath returns the path for a per-genre top-games chart.
// The slug is expected to come from genre.Slugify.
func (p *Paths) TopGamesChartPath(slug string) string {
	return filepath.Join(p.OutputDir, fmt.Sprintf("top_games_%s.png", slug))
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LogPathResolution logs the resolved output layout for debugging
func (p *Paths) LogPathResolution() {
	logger := slog.Default()
	if logger == nil {
		return
	}

	logger.Info("Path resolution summary",
		slog.String("output_dir", p.OutputDir),
		slog.Group("report_files",
			slog.String("report", p.ReportFile),
			slog.String("top_genres_csv", p.TopGenresCSV),
			slog.String("genre_ratings_csv", p.GenreRatingsCSV),
			slog.String("workbook", p.WorkbookFile),
		),
		slog.Group("charts",
			slog.String("most_played", p.MostPlayedChart),
			slog.String("top_genres", p.TopGenresChart),
			slog.String("genre_ratings", p.GenreRatingsChart),
			slog.String("combined", p.CombinedChart),
		))
}
