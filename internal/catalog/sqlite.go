package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/Veraticus/alembic/internal/common"
	"github.com/Veraticus/alembic/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteSource reads recipes from a table with the columns
// slot0, slot1, slot2, header, description. The database is opened read-only.
type SQLiteSource struct {
	Path   string
	Table  string
	report LoadReport
}

// Describe implements service.CatalogSource.
func (s *SQLiteSource) Describe() string {
	return s.Path + "#" + s.table()
}

// Report returns the outcome of the last Load.
func (s *SQLiteSource) Report() LoadReport {
	return s.report
}

func (s *SQLiteSource) table() string {
	if s.Table == "" {
		return DefaultConfig().Table
	}
	return s.Table
}

// Load implements service.CatalogSource.
func (s *SQLiteSource) Load(ctx context.Context) ([]model.Recipe, error) {
	table := s.table()
	if !validIdentifier(table) {
		return nil, fmt.Errorf("%w: invalid table name %q", common.ErrInvalidConfig, table)
	}

	// mode=ro would otherwise create an empty database on a typo.
	if _, err := os.Stat(s.Path); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrCatalogLoad, err)
	}

	dsn := "file:" + (&url.URL{Path: s.Path}).EscapedPath() + "?mode=ro"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", common.ErrCatalogLoad, err)
	}
	defer db.Close()

	db.SetMaxOpenConns(1)

	query := fmt.Sprintf(`SELECT slot0, slot1, slot2, header, description FROM "%s" ORDER BY rowid`, table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrCatalogLoad, s.Describe(), err)
	}
	defer rows.Close()

	var b builder
	for n := 1; rows.Next(); n++ {
		var (
			slots               [model.SlotCount]sql.NullString
			header, description sql.NullString
		)
		if err := rows.Scan(&slots[0], &slots[1], &slots[2], &header, &description); err != nil {
			return nil, fmt.Errorf("%w: failed to scan row %d: %w", common.ErrCatalogLoad, n, err)
		}

		raw := rawRow{
			row:         n,
			title:       header.String,
			description: description.String,
		}
		for i, slot := range slots {
			raw.slots[i] = slot.String
		}
		b.add(raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrCatalogLoad, s.Describe(), err)
	}

	s.report = b.report
	for _, skipped := range b.report.Skipped {
		slog.Warn("Skipping malformed recipe row", "source", s.Describe(), "row", skipped.Row, "reason", skipped.Reason)
	}

	slog.Info("Loaded recipe catalog",
		"source", s.Describe(),
		"recipes", len(b.recipes),
		"skipped", len(b.report.Skipped))
	return b.recipes, nil
}
