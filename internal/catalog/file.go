package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/alembic/internal/common"
	"github.com/Veraticus/alembic/internal/model"
)

// FileSource reads a CSV or JSON catalog from disk.
type FileSource struct {
	Path   string
	Format Format
	report LoadReport
}

// Describe implements service.CatalogSource.
func (s *FileSource) Describe() string {
	return s.Path
}

// Report returns the outcome of the last Load.
func (s *FileSource) Report() LoadReport {
	return s.report
}

// Load implements service.CatalogSource.
func (s *FileSource) Load(ctx context.Context) ([]model.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrCatalogLoad, err)
	}
	defer f.Close()

	format := s.Format
	if format == "" || format == FormatAuto {
		format = DetectFormat(s.Path)
	}

	recipes, report, err := parse(f, format)
	s.report = report
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrCatalogLoad, s.Path, err)
	}

	slog.Info("Loaded recipe catalog",
		"source", s.Path,
		"recipes", len(recipes),
		"skipped", len(report.Skipped))
	return recipes, nil
}
