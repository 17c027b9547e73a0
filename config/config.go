package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the sift tool.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	History HistoryConfig `yaml:"history"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig holds the scan and rendering limits for one search.
type SearchConfig struct {
	Extensions          []string `yaml:"extensions"`
	Excludes            []string `yaml:"excludes"`
	MaxFileBytes        int64    `yaml:"max_file_bytes"`    // files above this are skipped, not errors
	MaxFilesScanned     int      `yaml:"max_files_scanned"` // hard cap terminating the walk early
	MaxSnippetChars     int      `yaml:"max_snippet_chars"`
	MaxResultsDisplayed int      `yaml:"max_results_displayed"`
	MaxResponseChars    int      `yaml:"max_response_chars"`
}

// HistoryConfig holds query-history configuration.
type HistoryConfig struct {
	Enabled    bool `yaml:"enabled"`
	MaxEntries int  `yaml:"max_entries"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Extensions:          []string{".txt", ".log", ".dat", ".csv"},
			Excludes:            []string{"**/.git/**", "**/node_modules/**"},
			MaxFileBytes:        10 * 1024 * 1024,
			MaxFilesScanned:     10000,
			MaxSnippetChars:     200,
			MaxResultsDisplayed: 8,
			MaxResponseChars:    50000,
		},
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: 100,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for sift.yaml).
func LoadFromDir(dir string) (*Config, error) {
	// Try sift.yaml in the directory
	path := filepath.Join(dir, "sift.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Try .sift/config.yaml
	path = filepath.Join(dir, ".sift", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Return defaults
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// HistoryDBPath returns the path to the query history database.
func HistoryDBPath(dir string) string {
	return filepath.Join(dir, ".sift", "history.db")
}

// EnsureSiftDir ensures the .sift directory exists.
func EnsureSiftDir(dir string) error {
	siftDir := filepath.Join(dir, ".sift")
	return os.MkdirAll(siftDir, 0755)
}
