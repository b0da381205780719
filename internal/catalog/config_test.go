package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		source string
		want   Format
	}{
		{source: "./data/results.csv", want: FormatCSV},
		{source: "recipes.JSON", want: FormatJSON},
		{source: "https://example.com/catalog.json?raw=1", want: FormatJSON},
		{source: "catalog.db", want: FormatSQLite},
		{source: "catalog.sqlite3", want: FormatSQLite},
		{source: "catalog", want: FormatCSV},
		{source: "https://example.com/export#sheet.json", want: FormatCSV},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.source))
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatAuto, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		modify  func(*Config)
		name    string
		wantErr bool
	}{
		{name: "defaults", modify: func(_ *Config) {}},
		{name: "empty source", modify: func(c *Config) { c.Source = "  " }, wantErr: true},
		{name: "bad format", modify: func(c *Config) { c.Format = "yaml" }, wantErr: true},
		{name: "zero timeout", modify: func(c *Config) { c.Timeout = 0 }, wantErr: true},
		{name: "negative retries", modify: func(c *Config) { c.RetryAttempts = -1 }, wantErr: true},
		{name: "negative delay", modify: func(c *Config) { c.RetryDelay = -time.Second }, wantErr: true},
		{name: "remote sqlite", modify: func(c *Config) { c.Source = "https://example.com/catalog.db" }, wantErr: true},
		{name: "bad table", modify: func(c *Config) { c.Source = "catalog.db"; c.Table = "1recipes" }, wantErr: true},
		{name: "table ignored for csv", modify: func(c *Config) { c.Table = "not valid" }},
		{name: "local sqlite", modify: func(c *Config) { c.Source = "catalog.db"; c.Table = "potions_v2" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
