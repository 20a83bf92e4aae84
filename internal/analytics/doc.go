// Package analytics turns a loaded game catalog into aggregate insights.
// It owns the transform step of the pipeline: cell normalization, genre
// explosion, and the ordered rankings the report and charts are built from.
//
// # Architecture
//
// The package is organized around three pieces:
//
// 1. Normalizers: NormalizePlayCount, ParseList, ParseRating clean raw cells
// 2. Analyzer: one pass over the table building GameRecords and aggregates
// 3. Analysis: query methods over the finished aggregates
//
// # Usage
//
// Typical flow after loading a dataset:
//
//	analyzer := analytics.NewAnalyzer(logger)
//	analysis, err := analyzer.Analyze(ctx, table)
//	if err != nil {
//	    return err
//	}
//	top := analysis.TopGenres(20)
//	game, ok := analysis.MostPlayed()
//
// # Data Flow
//
//	Table rows → buildRecord → GameRecords → aggregate → GenreAggregates + LibraryStats
//
// # Error Handling
//
// Cell-level problems never abort the run:
//
//	- Unparseable counts are logged and replaced with zero
//	- Unparseable ratings leave the game unrated
//	- Malformed list cells degrade to empty lists
//
// Only a missing table is an error. The number of recovered cells is
// reported on Analysis.Warnings so callers can surface data quality.
//
// # Determinism
//
// Every ranking has a defined tie-break (source row order for games, name
// order for genres), so a given input file always produces identical output.
package analytics
