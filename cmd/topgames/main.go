package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gamelens/internal/analytics"
	"gamelens/internal/chart"
	"gamelens/internal/config"
	"gamelens/internal/dataset"
	"gamelens/internal/genre"
	"gamelens/internal/infrastructure"
)

func main() {
	genres := flag.Int("genres", 6, "number of top genres to chart")
	games := flag.Int("games", 5, "games per genre chart")
	configFile := flag.String("config", "", "optional YAML configuration file")
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger initialization error:", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.EnsureRunID(context.Background())

	logger.InfoContext(ctx, "Rendering per-genre rankings",
		slog.String("input", cfg.Input.Path),
		slog.Int("genres", *genres),
		slog.Int("games", *games))

	paths := config.NewPaths(cfg.Output.Dir)
	if err := paths.EnsureDirectories(); err != nil {
		logger.ErrorContext(ctx, "Cannot prepare output directory",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	table, err := dataset.Load(ctx, cfg.Input.Path)
	if err != nil {
		logger.ErrorContext(ctx, "Extraction failed",
			slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, "extraction failed:", err)
		os.Exit(1)
	}

	analysis, err := analytics.NewAnalyzer(logger).Analyze(ctx, table)
	if err != nil {
		logger.ErrorContext(ctx, "Analysis failed",
			slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, "analysis failed:", err)
		os.Exit(1)
	}

	renderer, err := chart.NewRenderer(logger)
	if err != nil {
		logger.ErrorContext(ctx, "Renderer initialization failed",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	var written []string
	for _, agg := range analysis.TopGenres(*genres) {
		ranked := analysis.TopGamesForGenre(agg.Genre, *games)
		path := paths.TopGamesChartPath(genre.Slugify(agg.Genre))
		if err := renderer.TopGamesChart(path, agg.Genre, ranked); err != nil {
			logger.ErrorContext(ctx, "Chart rendering failed",
				slog.String("genre", agg.Genre),
				slog.String("error", err.Error()))
			fmt.Fprintln(os.Stderr, "rendering failed:", err)
			os.Exit(1)
		}
		written = append(written, path)
	}

	logger.InfoContext(ctx, "Genre rankings rendered",
		slog.Int("charts", len(written)))

	fmt.Printf("Rendered %d genre charts\n", len(written))
	for _, path := range written {
		fmt.Printf("  %s\n", path)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}
