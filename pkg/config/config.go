package config

import (
	"github.com/bdeleeuw/clipstash/internal/platform"
	"github.com/bdeleeuw/clipstash/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Clipboards ClipboardsConfig `yaml:"clipboards"`
	Copy       CopyConfig       `yaml:"copy"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ClipboardsConfig holds staging area settings
type ClipboardsConfig struct {
	// Dir is the base directory holding all clipboards (empty = platform default)
	Dir string `yaml:"dir"`
	// Default is the clipboard used when none is named
	Default string `yaml:"default"`
}

// CopyConfig holds copy-engine settings
type CopyConfig struct {
	// Safe forces full byte copies instead of hard links
	Safe bool `yaml:"safe"`
	// Conflict is the starting paste conflict policy
	Conflict models.ConflictPolicy `yaml:"conflict"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show progress bars
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // Log file path (empty = disabled)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Clipboards: ClipboardsConfig{
			Dir:     "",
			Default: "0",
		},
		Copy: CopyConfig{
			Safe:     false,
			Conflict: models.ConflictAsk,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Format:  "text",
			Level:   "info",
			File:    "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Clipboards.Default == "" {
		return &models.ValidationError{
			Field:   "clipboards.default",
			Message: "default clipboard name is required",
		}
	}
	if err := platform.ValidateClipboardName(c.Clipboards.Default); err != nil {
		return &models.ValidationError{
			Field:   "clipboards.default",
			Message: err.Error(),
		}
	}

	switch c.Copy.Conflict {
	case "", models.ConflictAsk, models.ConflictSkipAll, models.ConflictReplaceAll:
	default:
		return &models.ValidationError{
			Field:   "copy.conflict",
			Message: "must be 'ask', 'skip-all', or 'replace-all'",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}

// BaseDir resolves the clipboards base directory, falling back to the
// platform default when unset.
func (c *Config) BaseDir() string {
	if c.Clipboards.Dir != "" {
		return c.Clipboards.Dir
	}
	return platform.DefaultBaseDir()
}
