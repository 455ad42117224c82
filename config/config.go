// Package config provides configuration loading and management for apcheck.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/apcheck/fault"
)

// Config represents the complete apcheck configuration
type Config struct {
	Validation ValidationConfig `yaml:"validation"`
	Fetch      FetchConfig      `yaml:"fetch"`
	Narrative  NarrativeConfig  `yaml:"narrative"`
	NATS       NATSConfig       `yaml:"nats"`
	Output     OutputConfig     `yaml:"output"`
}

// ValidationConfig configures the validation engine
type ValidationConfig struct {
	// ReifyRefs enables fetching and recursive validation of references
	ReifyRefs bool `yaml:"reify_refs"`
	// RejectSeverity is the duck-typing rejection threshold (default: "must")
	RejectSeverity string `yaml:"reject_severity"`
	// MaxDepth bounds recursive reference resolution (default: 8)
	MaxDepth int `yaml:"max_depth"`
}

// FetchConfig configures the reference fetcher
type FetchConfig struct {
	// Timeout is the per-request fetch timeout (default: 10s)
	Timeout time.Duration `yaml:"timeout"`
	// UserAgent overrides the default request user agent
	UserAgent string `yaml:"user_agent"`
}

// NarrativeConfig configures fault narrative resolution
type NarrativeConfig struct {
	// Language is the preferred narrative language tag (default: "en")
	Language string `yaml:"language"`
	// OverrideDir holds narrative catalog overrides, watched for changes
	OverrideDir string `yaml:"override_dir"`
}

// NATSConfig configures the validation service connection
type NATSConfig struct {
	// URL is the NATS server URL (empty = service disabled)
	URL string `yaml:"url"`
	// Subject is the request subject the service answers on
	Subject string `yaml:"subject"`
}

// OutputConfig configures fault rendering
type OutputConfig struct {
	// Format is one of "table", "json", "ndjson", "html"
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Validation: ValidationConfig{
			ReifyRefs:      false,
			RejectSeverity: "must",
			MaxDepth:       8,
		},
		Fetch: FetchConfig{
			Timeout: 10 * time.Second,
		},
		Narrative: NarrativeConfig{
			Language: "en",
		},
		NATS: NATSConfig{
			URL:     "",
			Subject: "apcheck.validate",
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := fault.ParseSeverity(c.Validation.RejectSeverity); err != nil {
		return fmt.Errorf("validation.reject_severity: %w", err)
	}
	if c.Validation.MaxDepth < 1 {
		return fmt.Errorf("validation.max_depth must be at least 1")
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive")
	}
	switch c.Output.Format {
	case "table", "json", "ndjson", "html":
	default:
		return fmt.Errorf("output.format must be one of table, json, ndjson, html")
	}
	if c.NATS.URL != "" && c.NATS.Subject == "" {
		return fmt.Errorf("nats.subject is required when nats.url is set")
	}
	return nil
}

// RejectSeverity returns the parsed rejection threshold. Call Validate
// first; an unparsable value falls back to must.
func (c *Config) RejectSeverity() fault.Severity {
	s, err := fault.ParseSeverity(c.Validation.RejectSeverity)
	if err != nil {
		return fault.SeverityMust
	}
	return s
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Validation
	if other.Validation.ReifyRefs {
		c.Validation.ReifyRefs = true
	}
	if other.Validation.RejectSeverity != "" {
		c.Validation.RejectSeverity = other.Validation.RejectSeverity
	}
	if other.Validation.MaxDepth != 0 {
		c.Validation.MaxDepth = other.Validation.MaxDepth
	}

	// Fetch
	if other.Fetch.Timeout != 0 {
		c.Fetch.Timeout = other.Fetch.Timeout
	}
	if other.Fetch.UserAgent != "" {
		c.Fetch.UserAgent = other.Fetch.UserAgent
	}

	// Narrative
	if other.Narrative.Language != "" {
		c.Narrative.Language = other.Narrative.Language
	}
	if other.Narrative.OverrideDir != "" {
		c.Narrative.OverrideDir = other.Narrative.OverrideDir
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Subject != "" {
		c.NATS.Subject = other.NATS.Subject
	}

	// Output
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
}
