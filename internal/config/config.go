// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/job-compare/internal/ingestion"
	"github.com/jonathan/job-compare/internal/schemas"
	"github.com/jonathan/job-compare/internal/types"
	schemadocs "github.com/jonathan/job-compare/schemas"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Data
	TagsPath    string                 `json:"tags_path,omitempty"`    // Tag list (.md "N. Name" lines, or .yaml)
	DatabaseURL string                 `json:"database_url,omitempty"` // PostgreSQL URL; replaces CSV sources when set
	Sources     []ingestion.SourceSpec `json:"sources,omitempty"`      // One CSV per company

	// Behavior
	APIKey            string `json:"api_key,omitempty"`             // Gemini API key for tag-jobs
	Verbose           bool   `json:"verbose,omitempty"`             // Print detailed debug information
	MaxSimilarResults int    `json:"max_similar_results,omitempty"` // Default similar-jobs limit

	Server ServerConfig `json:"server,omitempty"`
	Tagger TaggerConfig `json:"tagger,omitempty"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           int      `json:"port,omitempty"`
	AllowedOrigins []string `json:"allowed_origins,omitempty"` // CORS origins; empty allows any
}

// TaggerConfig holds settings for the LLM tagging command.
type TaggerConfig struct {
	BatchSize       int     `json:"batch_size,omitempty"`
	IntervalSeconds float64 `json:"interval_seconds,omitempty"` // Pause between model calls
	MaxTagsPerJob   int     `json:"max_tags_per_job,omitempty"`
}

// LoadConfig loads configuration from a JSON file and checks it against the
// config schema. Returns an error if the file cannot be read, parsed or
// does not match the schema.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := schemas.ValidateJSONString(schemadocs.Config, string(data)); err != nil {
		return nil, fmt.Errorf("config does not match schema: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Source files are not checked for existence; a missing file is skipped at
// load time like any other unreadable source.
func (c *Config) Validate() error {
	if c.MaxSimilarResults < 0 {
		return fmt.Errorf("config error: 'max_similar_results' must be non-negative")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 0 and 65535")
	}
	if c.Tagger.BatchSize < 0 {
		return fmt.Errorf("config error: 'tagger.batch_size' must be non-negative")
	}
	if c.Tagger.IntervalSeconds < 0 {
		return fmt.Errorf("config error: 'tagger.interval_seconds' must be non-negative")
	}

	seen := make(map[types.Company]bool)
	for i, src := range c.Sources {
		if !src.Company.Valid() {
			return fmt.Errorf("config error: sources[%d]: unknown company %q", i, src.Company)
		}
		if seen[src.Company] {
			return fmt.Errorf("config error: sources[%d]: duplicate company %q", i, src.Company)
		}
		seen[src.Company] = true

		if src.Path == "" {
			return fmt.Errorf("config error: sources[%d]: 'path' is required", i)
		}
		if src.Columns.Title == "" || src.Columns.Description == "" || src.Columns.Tags == "" {
			return fmt.Errorf("config error: sources[%d]: columns 'title', 'description' and 'tag_ids' are required", i)
		}
	}

	if c.TagsPath != "" {
		if _, err := os.Stat(c.TagsPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: tags file not found: %s", c.TagsPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.TagsPath == "" {
		result.TagsPath = defaults.TagsPath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Slices: a configured list replaces the defaults entirely
	if len(result.Sources) == 0 {
		result.Sources = append([]ingestion.SourceSpec(nil), defaults.Sources...)
	}
	if len(result.Server.AllowedOrigins) == 0 {
		result.Server.AllowedOrigins = append([]string(nil), defaults.Server.AllowedOrigins...)
	}

	// Numeric fields: use default if zero
	if result.MaxSimilarResults == 0 {
		result.MaxSimilarResults = defaults.MaxSimilarResults
	}
	if result.Server.Port == 0 {
		result.Server.Port = defaults.Server.Port
	}
	if result.Tagger.BatchSize == 0 {
		result.Tagger.BatchSize = defaults.Tagger.BatchSize
	}
	if result.Tagger.IntervalSeconds == 0 {
		result.Tagger.IntervalSeconds = defaults.Tagger.IntervalSeconds
	}
	if result.Tagger.MaxTagsPerJob == 0 {
		result.Tagger.MaxTagsPerJob = defaults.Tagger.MaxTagsPerJob
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
