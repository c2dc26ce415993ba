// Package config provides configuration management for the case collector.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default paths used when no configuration file overrides them.
const (
	DefaultCasesDir  = "./data/cases"
	DefaultOutput    = "./data/cases.json"
	DefaultLookupCSV = "./data/justice.csv"
	DefaultIndent    = 2
	DefaultLogLevel  = "info"
)

// Configuration validation errors.
var (
	ErrMissingCasesDir   = errors.New("collector.paths.cases_dir is required")
	ErrMissingLookupCSV  = errors.New("collector.paths.lookup_csv is required")
	ErrMissingOutputPath = errors.New("collector.paths.output is required")
	ErrReportIsOutput    = errors.New("collector.paths.report must differ from collector.paths.output")
	ErrInvalidIndent     = errors.New("collector.output.indent must be between 0 and 8")
	ErrInvalidLogLevel   = errors.New("collector.logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete collector configuration.
type Config struct {
	Collector CollectorConfig `yaml:"collector"`
}

// CollectorConfig contains collector settings.
type CollectorConfig struct {
	Paths   PathsConfig   `yaml:"paths"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Lock    LockConfig    `yaml:"lock"`
}

// PathsConfig holds the input and output locations.
type PathsConfig struct {
	CasesDir  string `yaml:"cases_dir"`
	LookupCSV string `yaml:"lookup_csv"`
	Output    string `yaml:"output"`
	// Report is the optional markdown summary path. Empty disables it.
	Report string `yaml:"report"`
}

// OutputConfig defines how the dataset is encoded.
type OutputConfig struct {
	PrettyPrint bool `yaml:"pretty_print"`
	Indent      int  `yaml:"indent"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LockConfig controls the output file lock.
type LockConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Collector: CollectorConfig{
			Paths: PathsConfig{
				CasesDir:  DefaultCasesDir,
				LookupCSV: DefaultLookupCSV,
				Output:    DefaultOutput,
			},
			Output: OutputConfig{
				PrettyPrint: true,
				Indent:      DefaultIndent,
			},
			Logging: LoggingConfig{Level: DefaultLogLevel},
			Lock:    LockConfig{Enabled: true},
		},
	}
}

// LoadConfig loads configuration from a YAML file layered over Default.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	paths := c.Collector.Paths

	if paths.CasesDir == "" {
		return ErrMissingCasesDir
	}

	if paths.LookupCSV == "" {
		return ErrMissingLookupCSV
	}

	if paths.Output == "" {
		return ErrMissingOutputPath
	}

	if paths.Report != "" && paths.Report == paths.Output {
		return ErrReportIsOutput
	}

	if c.Collector.Output.Indent < 0 || c.Collector.Output.Indent > 8 {
		return ErrInvalidIndent
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Collector.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// Indent returns the JSON indent width, 0 when pretty printing is off.
func (c *Config) Indent() int {
	if !c.Collector.Output.PrettyPrint {
		return 0
	}

	return c.Collector.Output.Indent
}

// LockPath returns the lock file guarding the output path.
func (c *Config) LockPath() string {
	return c.Collector.Paths.Output + ".lock"
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Cases: %s, Lookup: %s, Output: %s}",
		c.Collector.Paths.CasesDir,
		c.Collector.Paths.LookupCSV,
		c.Collector.Paths.Output,
	)
}
