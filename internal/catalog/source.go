package catalog

import (
	"fmt"
	"io"
	"net/http"

	"github.com/Veraticus/alembic/internal/common"
	"github.com/Veraticus/alembic/internal/model"
	"github.com/Veraticus/alembic/internal/service"
)

// Reporter is implemented by sources that record skipped rows.
type Reporter interface {
	Report() LoadReport
}

// Open returns the source described by cfg.
func Open(cfg Config) (service.CatalogSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	format := cfg.resolveFormat()
	switch {
	case isRemote(cfg.Source):
		return &HTTPSource{
			URL:    cfg.Source,
			Format: format,
			Client: &http.Client{Timeout: cfg.Timeout},
			Retry: service.RetryOptions{
				MaxAttempts:  max(1, cfg.RetryAttempts),
				InitialDelay: cfg.RetryDelay,
				MaxDelay:     common.DefaultRetryOptions().MaxDelay,
				Multiplier:   common.DefaultRetryOptions().Multiplier,
			},
		}, nil
	case format == FormatSQLite:
		return &SQLiteSource{Path: cfg.Source, Table: cfg.Table}, nil
	default:
		return &FileSource{Path: cfg.Source, Format: format}, nil
	}
}

// parse decodes a text catalog in the given format.
func parse(r io.Reader, format Format) ([]model.Recipe, LoadReport, error) {
	switch format {
	case FormatCSV, FormatAuto, "":
		return ParseCSV(r)
	case FormatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, LoadReport{}, fmt.Errorf("failed to read json catalog: %w", err)
		}
		return ParseJSON(data)
	default:
		return nil, LoadReport{}, fmt.Errorf("%w: %s cannot be parsed from a stream", ErrUnsupportedFormat, format)
	}
}
