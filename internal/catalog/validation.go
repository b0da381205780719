package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/alembic/internal/common"
	"github.com/Veraticus/alembic/internal/model"
)

// Catalog errors.
var (
	ErrMissingColumn     = errors.New("missing required column")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrCatalogTooLarge   = errors.New("catalog too large")
)

// RowError describes a row that was skipped during loading. Row is the line
// number for CSV and the 1-based element or row position otherwise.
type RowError struct {
	Reason string
	Row    int
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

func (e RowError) Unwrap() error {
	return common.ErrMalformedRow
}

// LoadReport summarizes a load.
type LoadReport struct {
	Skipped  []RowError
	Accepted int
}

// rawRow is one catalog row before validation.
type rawRow struct {
	title       string
	description string
	slots       [model.SlotCount]string
	row         int
}

// builder accumulates validated recipes and assigns dense IDs.
type builder struct {
	recipes []model.Recipe
	report  LoadReport
}

func (b *builder) add(r rawRow) {
	var slots [model.SlotCount]model.Ingredient
	for i, raw := range r.slots {
		ing, err := parseSlot(raw)
		if err != nil {
			b.report.Skipped = append(b.report.Skipped, RowError{
				Row:    r.row,
				Reason: fmt.Sprintf("slot %d: %v", i, err),
			})
			return
		}
		slots[i] = ing
	}

	b.recipes = append(b.recipes, model.Recipe{
		ID:          len(b.recipes),
		Slots:       slots,
		Title:       r.title,
		Description: model.RenderDescription(r.description),
	})
	b.report.Accepted++
}

// parseSlot accepts a decimal ingredient index in [0,9].
func parseSlot(raw string) (model.Ingredient, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty ingredient index")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("ingredient index %q is not a number", raw)
	}
	ing := model.Ingredient(n)
	if !ing.Valid() {
		return 0, fmt.Errorf("ingredient index %d out of range [0,%d]", n, model.KindCount-1)
	}
	return ing, nil
}
