package config

// Application constants
const (
	// Application Info
	AppName    = "gamelens"
	AppVersion = "1.0.0"

	// Supported input formats
	InputFormatCSV      = ".csv"
	InputFormatWorkbook = ".xlsx"

	// Default locations
	DefaultInputFile = "backloggd_games.csv"
	DefaultOutputDir = "output"
	DefaultLogFile   = "logs/gamelens.log"

	// Aggregation defaults
	DefaultTopGenres        = 20
	DefaultPieGenres        = 15
	DefaultCombinedGenres   = 15
	DefaultTopGamesPerGenre = 5
)
