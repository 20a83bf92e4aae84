package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gamelens/internal/config"
	"gamelens/internal/infrastructure"
	"gamelens/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
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

	logger.InfoContext(ctx, "Starting analysis",
		slog.String("app", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("input", cfg.Input.Path))

	p, err := pipeline.New(cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to assemble pipeline",
			slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, "analysis failed:", err)
		os.Exit(1)
	}

	result, err := p.Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Analysis run failed",
			slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, "analysis failed:", err)
		os.Exit(1)
	}

	fmt.Printf("Analyzed %d games across %d genres in %s\n",
		result.Records, result.Genres, result.Duration.Round(time.Millisecond))
	if result.MostPlayed != "" {
		fmt.Printf("Most played: %s\n", result.MostPlayed)
	}
	if result.Warnings > 0 {
		fmt.Printf("Recovered %d unparseable cells (details in the log)\n", result.Warnings)
	}
	fmt.Println("Outputs:")
	for _, path := range result.Outputs {
		fmt.Printf("  %s\n", path)
	}
}
