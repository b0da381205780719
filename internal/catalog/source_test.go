package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/alembic/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name   string
		source string
		format Format
		check  func(t *testing.T, src any)
	}{
		{
			name:   "local csv",
			source: "./data/results.csv",
			check: func(t *testing.T, src any) {
				fs, ok := src.(*FileSource)
				require.True(t, ok)
				assert.Equal(t, FormatCSV, fs.Format)
			},
		},
		{
			name:   "forced json",
			source: "./data/catalog.txt",
			format: FormatJSON,
			check: func(t *testing.T, src any) {
				fs, ok := src.(*FileSource)
				require.True(t, ok)
				assert.Equal(t, FormatJSON, fs.Format)
			},
		},
		{
			name:   "remote",
			source: "https://example.com/results.csv",
			check: func(t *testing.T, src any) {
				hs, ok := src.(*HTTPSource)
				require.True(t, ok)
				require.NotNil(t, hs.Client)
				assert.Equal(t, DefaultConfig().Timeout, hs.Client.Timeout)
				assert.Equal(t, 3, hs.Retry.MaxAttempts)
			},
		},
		{
			name:   "sqlite",
			source: "catalog.sqlite",
			check: func(t *testing.T, src any) {
				ss, ok := src.(*SQLiteSource)
				require.True(t, ok)
				assert.Equal(t, "recipes", ss.Table)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Source = tt.source
			if tt.format != "" {
				cfg.Format = tt.format
			}
			src, err := Open(cfg)
			require.NoError(t, err)
			tt.check(t, src)
		})
	}
}

func TestOpen_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source = ""
	_, err := Open(cfg)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestFileSource_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV+"0,0,x,Broken,bad\n"), 0600))

	src := &FileSource{Path: path, Format: FormatAuto}
	recipes, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, recipes, 2)
	assert.Len(t, src.Report().Skipped, 1)
	assert.Equal(t, path, src.Describe())

	_, err = (&FileSource{Path: filepath.Join(dir, "missing.csv")}).Load(context.Background())
	assert.ErrorIs(t, err, common.ErrCatalogLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSource_RejectsSQLiteFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	_, err := (&FileSource{Path: path, Format: FormatSQLite}).Load(context.Background())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
