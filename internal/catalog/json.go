package catalog

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/alembic/internal/model"
	"github.com/tidwall/gjson"
)

// ParseJSON reads a catalog encoded as a JSON array of objects. Slots come
// from a "slots" array or from the keys "0", "1", and "2"; text from
// "header" and "description".
func ParseJSON(data []byte) ([]model.Recipe, LoadReport, error) {
	if !gjson.ValidBytes(data) {
		return nil, LoadReport{}, fmt.Errorf("invalid json catalog")
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, LoadReport{}, fmt.Errorf("json catalog must be an array, got %s", root.Type)
	}

	var b builder
	position := 0
	root.ForEach(func(_, row gjson.Result) bool {
		position++
		if !row.IsObject() {
			b.report.Skipped = append(b.report.Skipped, RowError{Row: position, Reason: "element is not an object"})
			return true
		}

		raw := rawRow{
			row:         position,
			title:       row.Get("header").String(),
			description: row.Get("description").String(),
		}

		if slots := row.Get("slots"); slots.Exists() {
			values := slots.Array()
			if !slots.IsArray() || len(values) != model.SlotCount {
				b.report.Skipped = append(b.report.Skipped, RowError{
					Row:    position,
					Reason: fmt.Sprintf("slots must be an array of %d indices", model.SlotCount),
				})
				return true
			}
			for i, v := range values {
				raw.slots[i] = jsonSlot(v)
			}
		} else {
			for i := range raw.slots {
				raw.slots[i] = jsonSlot(row.Get(fmt.Sprintf("%d", i)))
			}
		}

		b.add(raw)
		return true
	})

	for _, skipped := range b.report.Skipped {
		slog.Warn("Skipping malformed recipe element", "row", skipped.Row, "reason", skipped.Reason)
	}

	return b.recipes, b.report, nil
}

// jsonSlot renders a slot value as text so numbers and numeric strings go
// through the same validation. Non-integral numbers are rejected there.
func jsonSlot(v gjson.Result) string {
	switch v.Type {
	case gjson.Number, gjson.String:
		return v.String()
	default:
		return v.Raw
	}
}
