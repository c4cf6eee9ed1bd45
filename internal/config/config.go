// =============================================================================
// Timesheet Reshaper - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration from a YAML file.
//
// CONFIGURATION FILE (config.yaml):
//   input_path: ./timesheet.csv
//   output_path: ./timesheet_tidy.csv
//   ticket_column: Ticket
//   csv:
//     delimiter: ","
//   archive:
//     enabled: false
//     dir: ./archive
//   log_level: info
//
// All settings have sensible defaults; an empty file is a valid
// configuration apart from the input/output paths, which the defaults cover
// as well.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the application configuration.
// This is loaded from the config.yaml file.
type Config struct {
	// InputPath is the path to the wide-format timesheet to read.
	// Files ending in .xlsx are read as spreadsheets; everything else is
	// read as delimiter-separated text.
	// Default: "./timesheet.csv"
	InputPath string `yaml:"input_path"`

	// OutputPath is the path the tidy CSV is written to.
	// Default: "./timesheet_tidy.csv"
	OutputPath string `yaml:"output_path"`

	// TicketColumn is the header label of the ticket column. Every other
	// column in the input header is treated as a date column.
	// Default: "Ticket"
	TicketColumn string `yaml:"ticket_column"`

	// CSV contains settings for parsing delimiter-separated input.
	CSV CSVSettings `yaml:"csv"`

	// Archive contains settings for archiving processed input files.
	Archive ArchiveSettings `yaml:"archive"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// CSVSettings contains settings for parsing CSV input files.
type CSVSettings struct {
	// Delimiter is the character used to separate fields.
	// Common values: "," (comma), "|" (pipe), "\t" (tab)
	// Default: ","
	Delimiter string `yaml:"delimiter"`
}

// ArchiveSettings contains settings for archiving processed input files.
type ArchiveSettings struct {
	// Enabled determines whether the input file is moved to the archive
	// directory after a successful run.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Dir is the directory archived input files are moved to.
	// Default: "./archive"
	Dir string `yaml:"dir"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the Config struct with defaults applied.
//   - An error if the file cannot be read or parsed.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied, for running
// without a config file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputPath == "" {
		cfg.InputPath = "./timesheet.csv"
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "./timesheet_tidy.csv"
	}
	if cfg.TicketColumn == "" {
		cfg.TicketColumn = "Ticket"
	}
	if cfg.CSV.Delimiter == "" {
		cfg.CSV.Delimiter = ","
	}
	if cfg.Archive.Dir == "" {
		cfg.Archive.Dir = "./archive"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate validates the configuration.
func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level: %q", cfg.LogLevel)
	}

	if cfg.InputPath == cfg.OutputPath {
		return fmt.Errorf("input_path and output_path must differ")
	}

	return nil
}
