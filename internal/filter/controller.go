// Package filter holds the user-facing filter state and keeps the visibility
// vector in sync with it.
package filter

import (
	"log/slog"
	"slices"

	"github.com/Veraticus/alembic/internal/engine"
	"github.com/Veraticus/alembic/internal/model"
)

// Controller owns the inventory, search text, and sort direction, and runs a
// filter pass after every change. It is not safe for concurrent use.
type Controller struct {
	engine     *engine.Engine
	search     string
	visibility engine.Visibility
	inventory  model.Inventory
	reversed   bool
}

// New creates a controller with an empty inventory and no search, so every
// recipe starts visible.
func New(eng *engine.Engine) *Controller {
	c := &Controller{engine: eng}
	c.refresh()
	return c
}

// Engine returns the availability engine backing the controller.
func (c *Controller) Engine() *engine.Engine {
	return c.engine
}

// SetEngine swaps in a new engine, keeping the inventory, search, and sort
// direction, and runs a pass against it.
func (c *Controller) SetEngine(eng *engine.Engine) {
	c.engine = eng
	c.refresh()
}

// Inventory returns a copy of the current inventory.
func (c *Controller) Inventory() model.Inventory {
	return c.inventory
}

// SetInventory replaces the whole inventory.
func (c *Controller) SetInventory(inv model.Inventory) {
	c.inventory = inv
	c.refresh()
}

// SetCount sets the count of one kind.
func (c *Controller) SetCount(kind model.Ingredient, n int) error {
	if err := c.inventory.Set(kind, n); err != nil {
		return err
	}
	c.refresh()
	return nil
}

// Adjust adds delta to the count of one kind, clamping to 0..model.MaxCount,
// and returns the new count.
func (c *Controller) Adjust(kind model.Ingredient, delta int) int {
	if !kind.Valid() {
		return 0
	}
	n := min(model.MaxCount, max(0, c.inventory[kind]+delta))
	if n != c.inventory[kind] {
		c.inventory[kind] = n
		c.refresh()
	}
	return n
}

// Search returns the current search text.
func (c *Controller) Search() string {
	return c.search
}

// SetSearch replaces the search text.
func (c *Controller) SetSearch(s string) {
	c.search = s
	c.refresh()
}

// ClearSearch empties the search text.
func (c *Controller) ClearSearch() {
	c.SetSearch("")
}

// Reset zeroes the inventory and clears the search.
func (c *Controller) Reset() {
	c.inventory = model.Inventory{}
	c.search = ""
	c.refresh()
}

// ToggleSort flips the display order.
func (c *Controller) ToggleSort() {
	c.reversed = !c.reversed
}

// Reversed reports whether recipes are displayed in reverse catalog order.
func (c *Controller) Reversed() bool {
	return c.reversed
}

// Visibility returns the visibility vector of the last filter pass.
func (c *Controller) Visibility() engine.Visibility {
	return c.visibility
}

// Visible returns the visible recipes in display order.
func (c *Controller) Visible() []model.Recipe {
	recipes := c.engine.Recipes()
	visible := make([]model.Recipe, 0, c.visibility.Count())
	for i, ok := range c.visibility {
		if ok {
			visible = append(visible, recipes[i])
		}
	}
	if c.reversed {
		slices.Reverse(visible)
	}
	return visible
}

// VisibleCount returns how many recipes the last pass left visible.
func (c *Controller) VisibleCount() int {
	return c.visibility.Count()
}

// Total returns the catalog size.
func (c *Controller) Total() int {
	return c.engine.Len()
}

func (c *Controller) refresh() {
	c.visibility = c.engine.Filter(c.inventory, c.search)
	slog.Debug("filter pass",
		"inventory", c.inventory.Signature(),
		"search", c.search,
		"visible", c.visibility.Count(),
		"total", len(c.visibility))
}
