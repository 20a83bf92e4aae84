package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
// Environment keys are derived from the field names under the GAMELENS
// prefix (GAMELENS_INPUT_PATH, GAMELENS_ANALYSIS_TOP_GENRES, ...). Fields
// deliberately carry no envconfig name tags: a named tag also registers an
// unprefixed fallback, which would read ambient variables like PATH.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// InputConfig locates the dataset to analyze
type InputConfig struct {
	Path string `yaml:"path" validate:"required,datafile"`
}

// AnalysisConfig contains the aggregation tunables
type AnalysisConfig struct {
	TopGenres        int `yaml:"top_genres" split_words:"true" validate:"min=1"`
	PieGenres        int `yaml:"pie_genres" split_words:"true" validate:"min=1"`
	CombinedGenres   int `yaml:"combined_genres" split_words:"true" validate:"min=1"`
	TopGamesPerGenre int `yaml:"top_games_per_genre" split_words:"true" validate:"min=1"`
}

// OutputConfig controls where and how results are written
type OutputConfig struct {
	Dir        string `yaml:"dir" validate:"required"`
	IncludeBOM bool   `yaml:"include_bom" split_words:"true"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" validate:"oneof=json text"`
	Output   string `yaml:"output" validate:"oneof=stderr stdout file both"`
	FilePath string `yaml:"file_path" split_words:"true"`
}

// Load loads configuration in order of precedence: defaults, then an
// optional YAML file, then GAMELENS_* environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if configFile := findConfigFile(); configFile != "" {
		if err := applyFile(cfg, configFile); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("GAMELENS", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file, still
// applying defaults underneath and environment variables on top.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()

	if err := applyFile(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from file: %w", err)
	}

	if err := envconfig.Process("GAMELENS", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// applyFile overlays YAML file values on top of cfg. Keys absent from
// the file leave the existing values untouched.
func applyFile(cfg *Config, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", filePath, err)
	}

	return nil
}

// validate validates the configuration
func (c *Config) validate() error {
	v := validator.New()

	// datafile: the input must be one of the supported table formats
	err := v.RegisterValidation("datafile", func(fl validator.FieldLevel) bool {
		path := strings.ToLower(fl.Field().String())
		return strings.HasSuffix(path, InputFormatCSV) || strings.HasSuffix(path, InputFormatWorkbook)
	})
	if err != nil {
		return fmt.Errorf("failed to register validation: %w", err)
	}

	if err := v.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			messages := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				messages = append(messages, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
		}
		return err
	}

	if (c.Logging.Output == "file" || c.Logging.Output == "both") && c.Logging.FilePath == "" {
		return fmt.Errorf("logging.file_path is required when logging.output is %q", c.Logging.Output)
	}

	return nil
}

// findConfigFile returns the path to the config file
func findConfigFile() string {
	// Check for config file in common locations
	locations := []string{
		"gamelens.yml",
		"gamelens.yaml",
		"configs/gamelens.yml",
		"configs/gamelens.yaml",
	}

	for _, location := range locations {
		if FileExists(location) {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Path: DefaultInputFile,
		},
		Analysis: AnalysisConfig{
			TopGenres:        DefaultTopGenres,
			PieGenres:        DefaultPieGenres,
			CombinedGenres:   DefaultCombinedGenres,
			TopGamesPerGenre: DefaultTopGamesPerGenre,
		},
		Output: OutputConfig{
			Dir:        DefaultOutputDir,
			IncludeBOM: true,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stderr",
			FilePath: DefaultLogFile,
		},
	}
}
