// Package catalog loads the recipe catalog from CSV, JSON, or SQLite sources,
// read from disk or fetched over HTTP.
package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Format identifies how catalog data is encoded.
type Format string

// Supported formats.
const (
	FormatAuto   Format = "auto"
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

// Config holds the configuration for loading a catalog.
type Config struct {
	Source        string // file path or http(s) URL
	Format        Format
	Table         string // SQLite table holding the recipes
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Source:        "./data/results.csv",
		Format:        FormatAuto,
		Table:         "recipes",
		Timeout:       10 * time.Second,
		RetryAttempts: 3,
		RetryDelay:    500 * time.Millisecond,
	}
}

// ParseFormat validates a format name. The empty string means auto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatCSV, FormatJSON, FormatSQLite:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return fmt.Errorf("catalog source is required")
	}

	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts cannot be negative")
	}

	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay cannot be negative")
	}

	if c.resolveFormat() == FormatSQLite {
		if isRemote(c.Source) {
			return fmt.Errorf("%w: sqlite catalogs must be local files", ErrUnsupportedFormat)
		}
		if !validIdentifier(c.Table) {
			return fmt.Errorf("invalid table name %q", c.Table)
		}
	}

	return nil
}

// resolveFormat returns the configured format, or the one implied by the
// source's extension when the format is auto.
func (c *Config) resolveFormat() Format {
	if c.Format != "" && c.Format != FormatAuto {
		return c.Format
	}
	return DetectFormat(c.Source)
}

// DetectFormat guesses the format from a path or URL extension. Anything
// unrecognized is treated as CSV.
func DetectFormat(source string) Format {
	path := source
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.ToLower(path)

	switch {
	case strings.HasSuffix(path, ".json"):
		return FormatJSON
	case strings.HasSuffix(path, ".db"),
		strings.HasSuffix(path, ".sqlite"),
		strings.HasSuffix(path, ".sqlite3"):
		return FormatSQLite
	default:
		return FormatCSV
	}
}

func isRemote(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func validIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
