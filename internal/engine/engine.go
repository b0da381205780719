// Package engine decides which catalog recipes can be crafted from an inventory.
package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/alembic/internal/model"
)

// Strategy selects the availability check used by the engine.
type Strategy string

const (
	// StrategyAuto uses the prefix range check when it is exact for the
	// current inventory and falls back to the per-unit check otherwise.
	StrategyAuto Strategy = "auto"
	// StrategyPrefix always uses the prefix range check.
	StrategyPrefix Strategy = "prefix"
	// StrategyNaive always decrements a copy of the inventory per slot.
	StrategyNaive Strategy = "naive"
)

// ParseStrategy validates a strategy name. The empty string means auto.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyAuto:
		return StrategyAuto, nil
	case StrategyPrefix:
		return StrategyPrefix, nil
	case StrategyNaive:
		return StrategyNaive, nil
	default:
		return "", fmt.Errorf("invalid strategy %q: must be auto, prefix, or naive", s)
	}
}

// Visibility holds one flag per recipe in catalog order.
type Visibility []bool

// Count returns the number of visible recipes.
func (v Visibility) Count() int {
	n := 0
	for _, ok := range v {
		if ok {
			n++
		}
	}
	return n
}

// Config holds configuration options for the engine.
type Config struct {
	Strategy Strategy
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Strategy: StrategyAuto,
	}
}

// Engine owns a recipe catalog, the demand descriptor of every recipe, and
// the prefix cache of the most recent inventory. It is not safe for
// concurrent use.
type Engine struct {
	strategy Strategy
	recipes  []model.Recipe
	demands  []Demand
	cache    prefixCache
}

// New creates an engine over the given catalog with the default configuration.
func New(recipes []model.Recipe) *Engine {
	return NewWithConfig(recipes, DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration. Demand
// descriptors are built once here and reused for the engine's lifetime.
func NewWithConfig(recipes []model.Recipe, config Config) *Engine {
	strategy := config.Strategy
	if strategy == "" {
		strategy = StrategyAuto
	}

	demands := make([]Demand, len(recipes))
	for i, r := range recipes {
		demands[i] = BuildDemand(r.Slots)
	}

	slog.Debug("built demand descriptors", "recipes", len(recipes), "strategy", strategy)

	return &Engine{
		strategy: strategy,
		recipes:  recipes,
		demands:  demands,
	}
}

// Len returns the number of recipes in the catalog.
func (e *Engine) Len() int {
	return len(e.recipes)
}

// Recipes returns the catalog in catalog order. Callers must not modify it.
func (e *Engine) Recipes() []model.Recipe {
	return e.recipes
}

// Recipe returns the recipe with the given id.
func (e *Engine) Recipe(id int) model.Recipe {
	return e.recipes[id]
}

// Demand returns the cached demand descriptor of a recipe.
func (e *Engine) Demand(id int) Demand {
	return e.demands[id]
}

// Strategy returns the availability strategy in use.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// CacheStats returns prefix cache hit and miss counts.
func (e *Engine) CacheStats() CacheStats {
	return e.cache.stats
}

// Craftable reports whether recipe id can be crafted from inv.
func (e *Engine) Craftable(inv model.Inventory, id int) bool {
	prefix, exact := e.cache.lookup(inv)
	return e.craftable(inv, prefix, exact, id)
}

func (e *Engine) craftable(inv model.Inventory, prefix CostPrefix, exact bool, id int) bool {
	switch e.strategy {
	case StrategyPrefix:
		return CheckPrefix(prefix, e.demands[id])
	case StrategyNaive:
		return CheckNaive(inv, e.recipes[id].Slots)
	default:
		if exact {
			return CheckPrefix(prefix, e.demands[id])
		}
		return CheckNaive(inv, e.recipes[id].Slots)
	}
}

// Filter runs one filter pass and returns the visibility of every recipe.
// An empty inventory counts as "everything craftable" and an empty search
// matches everything.
func (e *Engine) Filter(inv model.Inventory, search string) Visibility {
	visible := make(Visibility, len(e.recipes))

	empty := inv.IsEmpty()
	if empty && search == "" {
		for i := range visible {
			visible[i] = true
		}
		return visible
	}

	prefix, exact := e.cache.lookup(inv)
	query := strings.ToLower(strings.TrimSpace(search))

	for i, r := range e.recipes {
		craftable := empty || e.craftable(inv, prefix, exact, i)
		matches := search == "" || MatchesSearch(r, query)
		visible[i] = craftable && matches
	}

	return visible
}

// MatchesSearch reports whether the lowercase query is a substring of the
// recipe title or description, ignoring case.
func MatchesSearch(r model.Recipe, query string) bool {
	return strings.Contains(strings.ToLower(r.Title), query) ||
		strings.Contains(strings.ToLower(r.Description), query)
}
