package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Veraticus/alembic/internal/model"
)

// csvColumns maps the required fields to their column positions.
type csvColumns struct {
	slots       [model.SlotCount]int
	title       int
	description int
}

// ParseCSV reads a header-row CSV catalog. Slot columns are those named
// "0", "1", and "2", or else the first three columns; "header" and
// "description" are found by name. Stray quotes inside fields are kept as
// text. Rows with invalid slots are skipped and reported.
func ParseCSV(r io.Reader) ([]model.Recipe, LoadReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, LoadReport{}, nil
	}
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, LoadReport{}, err
	}
	width := max(cols.title, cols.description, cols.slots[0], cols.slots[1], cols.slots[2]) + 1

	var b builder
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			b.report.Skipped = append(b.report.Skipped, RowError{
				Row:    parseErr.StartLine,
				Reason: parseErr.Err.Error(),
			})
			continue
		}
		if err != nil {
			return nil, b.report, fmt.Errorf("failed to read csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if len(record) < width {
			b.report.Skipped = append(b.report.Skipped, RowError{
				Row:    line,
				Reason: fmt.Sprintf("expected at least %d fields, got %d", width, len(record)),
			})
			continue
		}

		b.add(rawRow{
			row:         line,
			slots:       [model.SlotCount]string{record[cols.slots[0]], record[cols.slots[1]], record[cols.slots[2]]},
			title:       record[cols.title],
			description: record[cols.description],
		})
	}

	for _, skipped := range b.report.Skipped {
		slog.Warn("Skipping malformed recipe row", "row", skipped.Row, "reason", skipped.Reason)
	}

	return b.recipes, b.report, nil
}

func locateColumns(header []string) (csvColumns, error) {
	cols := csvColumns{
		slots:       [model.SlotCount]int{0, 1, 2},
		title:       -1,
		description: -1,
	}
	if len(header) < model.SlotCount {
		return cols, fmt.Errorf("%w: expected %d leading ingredient columns, got %d columns",
			ErrMissingColumn, model.SlotCount, len(header))
	}

	named := [model.SlotCount]int{-1, -1, -1}
	for i, h := range header {
		switch name := strings.ToLower(strings.TrimSpace(h)); name {
		case "header":
			cols.title = i
		case "description":
			cols.description = i
		case "0", "1", "2":
			named[name[0]-'0'] = i
		}
	}

	if named[0] >= 0 && named[1] >= 0 && named[2] >= 0 {
		cols.slots = named
	}
	if cols.title < 0 {
		return cols, fmt.Errorf("%w: header", ErrMissingColumn)
	}
	if cols.description < 0 {
		return cols, fmt.Errorf("%w: description", ErrMissingColumn)
	}

	return cols, nil
}
