// Package config provides centralized configuration management for the
// gamelens pipeline. It handles loading configuration from multiple sources,
// validation, and provides a type-safe API for every generated file path.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (gamelens.yml / gamelens.yaml)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern GAMELENS_* for namespacing:
//
//	GAMELENS_INPUT_PATH=backloggd_games.csv
//	GAMELENS_ANALYSIS_TOP_GENRES=20
//	GAMELENS_OUTPUT_DIR=output
//	GAMELENS_LOGGING_LEVEL=info
//
// # Path Management
//
// The package provides centralized path management through the Paths type,
// which derives every generated file location from the output directory:
//
//	paths := config.NewPaths(cfg.Output.Dir)
//	report := paths.ReportFile
//	chart := paths.TopGenresChart
//
// # Validation
//
// All configuration is validated at load time to ensure:
//
//	- Required fields are present
//	- Counts are within acceptable ranges
//	- The input path has a supported extension
//	- Logging fields carry known values
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
