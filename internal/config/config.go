// =============================================================================
// autoAmortize - Configuration Module
// =============================================================================
//
// Loads the optional YAML configuration for the tool. Every option has a
// sensible default and the tool runs without any configuration file at all;
// a missing file simply yields the defaults, while a present-but-broken file
// is an error (a user who wrote a config wants it honored).
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// OutputDir is the directory where generated journal CSVs are placed.
	// Default: "./outputs"
	OutputDir string `yaml:"output_dir"`

	// OutputNameFormat is the naming format for output files. Placeholders:
	//   {seq}       - next sequential number in the output directory
	//   {uuid}      - a random UUID
	//   {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
	//   {date}      - current date (YYYYMMDD)
	// Default: "{seq}.csv", matching the historical numbered-output scheme.
	OutputNameFormat string `yaml:"output_name_format"`

	// HeaderKeywords are the substrings used to recognize the header row of
	// the schedule. A row matches when any cell contains any keyword,
	// case-insensitively.
	// Default: ["items", "invoice", "amount"]
	HeaderKeywords []string `yaml:"header_keywords"`

	// PrepaymentsAccount is the default prepayments ledger code. When set,
	// the process command uses it instead of prompting.
	PrepaymentsAccount string `yaml:"prepayments_account"`
}

// Load reads the configuration at path. A missing file is not an error - the
// defaults are returned - but an unreadable or malformed file is.
func Load(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(&config)
			return &config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// applyDefaults sets default values for any unset options.
func applyDefaults(config *Config) {
	if config.OutputDir == "" {
		config.OutputDir = "./outputs"
	}
	if config.OutputNameFormat == "" {
		config.OutputNameFormat = "{seq}.csv"
	}
	if len(config.HeaderKeywords) == 0 {
		config.HeaderKeywords = []string{"items", "invoice", "amount"}
	}
}

// validate rejects configurations that would fail later in confusing ways.
func validate(config *Config) error {
	for _, keyword := range config.HeaderKeywords {
		if strings.TrimSpace(keyword) == "" {
			return fmt.Errorf("header_keywords must not contain blank entries")
		}
	}
	return nil
}
