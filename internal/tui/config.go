package tui

import (
	"github.com/Veraticus/alembic/internal/engine"
	"github.com/Veraticus/alembic/internal/model"
	"github.com/Veraticus/alembic/internal/service"
	"github.com/Veraticus/alembic/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Source    service.CatalogSource
	Strategy  engine.Strategy
	Recipes   []model.Recipe
	Inventory model.Inventory
	Width     int
	Height    int
	AltScreen bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Strategy:  engine.StrategyAuto,
		Width:     80,
		Height:    24,
		AltScreen: true,
	}
}

// WithSource sets the catalog source loaded when the program starts.
func WithSource(source service.CatalogSource) Option {
	return func(c *Config) {
		c.Source = source
	}
}

// WithRecipes starts the TUI with an already loaded catalog. A configured
// source is ignored.
func WithRecipes(recipes []model.Recipe) Option {
	return func(c *Config) {
		c.Recipes = recipes
		c.Source = nil
	}
}

// WithStrategy sets the availability strategy.
func WithStrategy(strategy engine.Strategy) Option {
	return func(c *Config) {
		c.Strategy = strategy
	}
}

// WithInventory sets the starting inventory.
func WithInventory(inv model.Inventory) Option {
	return func(c *Config) {
		c.Inventory = inv
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithAltScreen controls whether the program takes over the full terminal.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
