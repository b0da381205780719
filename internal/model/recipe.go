package model

import (
	"slices"
	"strconv"
	"strings"
)

// SlotCount is the number of ingredient units every recipe consumes.
const SlotCount = 3

// Recipe is one entry of the catalog. Its ID is its position in the catalog.
type Recipe struct {
	Title       string
	Description string // rendered: escaped "\n" sequences are already line breaks
	ID          int
	Slots       [SlotCount]Ingredient
}

// Key returns the slot indices sorted ascending and comma-joined, e.g. "0,0,1".
func (r Recipe) Key() string {
	return SlotKey(r.Slots)
}

// Uses reports whether any slot requires the given kind.
func (r Recipe) Uses(kind Ingredient) bool {
	return slices.Contains(r.Slots[:], kind)
}

// IngredientNames returns the short names of the slots in slot order.
func (r Recipe) IngredientNames() []string {
	names := make([]string, SlotCount)
	for i, s := range r.Slots {
		names[i] = s.ShortName()
	}
	return names
}

// SlotKey builds the canonical key for three slots.
func SlotKey(slots [SlotCount]Ingredient) string {
	sorted := slots
	slices.Sort(sorted[:])

	parts := make([]string, SlotCount)
	for i, s := range sorted {
		parts[i] = strconv.Itoa(int(s))
	}
	return strings.Join(parts, ",")
}

// RenderDescription converts literal "\n" escape sequences into line breaks.
func RenderDescription(raw string) string {
	return strings.ReplaceAll(raw, `\n`, "\n")
}
