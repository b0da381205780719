package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/alembic/internal/engine"
	"github.com/Veraticus/alembic/internal/filter"
	"github.com/Veraticus/alembic/internal/model"
	"github.com/Veraticus/alembic/internal/service"
	"github.com/Veraticus/alembic/internal/tui/components"
	"github.com/Veraticus/alembic/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus identifies which part of the screen receives keys.
type Focus int

const (
	FocusInventory Focus = iota
	FocusRecipes
	FocusSearch
)

func (f Focus) String() string {
	switch f {
	case FocusInventory:
		return "Inventory"
	case FocusRecipes:
		return "Recipes"
	case FocusSearch:
		return "Search"
	default:
		return "Unknown"
	}
}

// Model holds the main TUI state. All filter passes run synchronously
// inside Update.
type Model struct {
	ctx       context.Context
	theme     themes.Theme
	source    service.CatalogSource
	lastError error
	filter    *filter.Controller
	strategy  engine.Strategy
	status    string
	keymap    KeyMap
	help      help.Model
	search    textinput.Model
	inventory components.InventoryModel
	recipes   components.RecipeListModel
	width     int
	height    int
	focus     Focus
	prevFocus Focus
	showHelp  bool
	ready     bool
	quitting  bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	ctrl := filter.New(engine.NewWithConfig(cfg.Recipes, engine.Config{Strategy: cfg.Strategy}))
	if !cfg.Inventory.IsEmpty() {
		ctrl.SetInventory(cfg.Inventory)
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search titles and descriptions"
	search.CharLimit = 64

	m := Model{
		ctx:       ctx,
		theme:     cfg.Theme,
		source:    cfg.Source,
		filter:    ctrl,
		strategy:  cfg.Strategy,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		search:    search,
		inventory: components.NewInventory(cfg.Theme),
		recipes:   components.NewRecipeList(cfg.Theme),
		width:     cfg.Width,
		height:    cfg.Height,
		focus:     FocusInventory,
		ready:     cfg.Source == nil,
	}
	m.applyFocus()
	m.handleResize()
	m.sync()
	return m
}

// Init starts loading the catalog when a source is configured.
func (m Model) Init() tea.Cmd {
	if m.source == nil {
		return nil
	}
	return loadCatalog(m.ctx, m.source)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case catalogLoadedMsg:
		m.handleCatalogLoaded(msg)
		return m, nil

	case statusMsg:
		m.status = msg.text
		if !msg.isErr {
			m.lastError = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key press to the search field or the panels.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.focus == FocusSearch {
		return m.handleSearchKey(msg)
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Help), key.Matches(msg, m.keymap.ClearSearch):
			m.showHelp = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true

	case key.Matches(msg, m.keymap.Search):
		m.prevFocus = m.focus
		m.focus = FocusSearch
		m.applyFocus()
		cmd = m.search.Focus()

	case key.Matches(msg, m.keymap.ClearSearch):
		m.clearSearch()

	case key.Matches(msg, m.keymap.ToggleSort):
		m.filter.ToggleSort()
		m.sync()

	case key.Matches(msg, m.keymap.Reset):
		m.filter.Reset()
		m.search.SetValue("")
		m.sync()
		cmd = showStatus("Inventory and search cleared", false)

	case key.Matches(msg, m.keymap.SwitchFocus):
		if m.focus == FocusInventory {
			m.focus = FocusRecipes
		} else {
			m.focus = FocusInventory
		}
		m.applyFocus()

	case key.Matches(msg, m.keymap.PageUp):
		m.recipes.PageUp()

	case key.Matches(msg, m.keymap.PageDown):
		m.recipes.PageDown()

	case key.Matches(msg, m.keymap.JumpKind):
		m.inventory.Select(model.Ingredient(msg.String()[0] - '0'))
		m.focus = FocusInventory
		m.applyFocus()

	case key.Matches(msg, m.keymap.Increment):
		m.adjust(1)

	case key.Matches(msg, m.keymap.Decrement):
		m.adjust(-1)

	case key.Matches(msg, m.keymap.Up):
		if m.focus == FocusInventory {
			m.inventory.MoveUp()
		} else {
			m.recipes, cmd = m.recipes.Update(msg)
		}

	case key.Matches(msg, m.keymap.Down):
		if m.focus == FocusInventory {
			m.inventory.MoveDown()
		} else {
			m.recipes, cmd = m.recipes.Update(msg)
		}
	}

	return m, cmd
}

// handleSearchKey edits the search text, running a filter pass whenever it
// changes.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.LeaveSearch):
		m.leaveSearch()
		return m, nil
	case key.Matches(msg, m.keymap.ClearSearch):
		m.clearSearch()
		m.leaveSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.filter.Search() {
		m.filter.SetSearch(v)
		m.sync()
	}
	return m, cmd
}

func (m *Model) leaveSearch() {
	m.search.Blur()
	m.focus = m.prevFocus
	m.applyFocus()
}

func (m *Model) clearSearch() {
	m.search.SetValue("")
	if m.filter.Search() != "" {
		m.filter.ClearSearch()
		m.sync()
	}
}

func (m *Model) adjust(delta int) {
	kind := m.inventory.Selected()
	n := m.filter.Adjust(kind, delta)
	m.sync()
	slog.Debug("inventory adjusted", "kind", kind.ShortName(), "count", n)
}

// handleCatalogLoaded swaps in the loaded catalog. On failure the catalog
// stays empty and the error is shown in the status bar.
func (m *Model) handleCatalogLoaded(msg catalogLoadedMsg) {
	m.ready = true

	if msg.err != nil {
		m.lastError = msg.err
		m.status = fmt.Sprintf("Failed to load catalog: %v", msg.err)
		slog.Error("Failed to load recipe catalog", "source", msg.source, "error", msg.err)
		return
	}

	m.lastError = nil
	m.filter.SetEngine(engine.NewWithConfig(msg.recipes, engine.Config{Strategy: m.strategy}))
	m.status = fmt.Sprintf("Loaded %d recipes from %s", len(msg.recipes), msg.source)
	if msg.skipped > 0 {
		m.status += fmt.Sprintf(" (%d malformed rows skipped)", msg.skipped)
	}
	m.sync()
}

// applyFocus propagates the focus to the components.
func (m *Model) applyFocus() {
	m.inventory.SetFocused(m.focus == FocusInventory)
	if m.focus == FocusRecipes {
		m.recipes.Focus()
	} else {
		m.recipes.Blur()
	}
}

// sync copies the controller state into the components.
func (m *Model) sync() {
	m.inventory.SetCounts(m.filter.Inventory())
	m.recipes.SetRecipes(m.filter.Visible(), m.filter.Total())
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	// Border (2) and padding (4) on each side of the frame.
	inner := max(20, m.width-6)
	// Header (2), search line (2), status bar (1), help (1), frame (4).
	body := max(6, m.height-10)

	if m.width < 80 {
		m.inventory.Resize(inner)
		m.recipes.Resize(inner, max(6, body-model.KindCount-3))
	} else {
		m.inventory.Resize(inventoryWidth)
		m.recipes.Resize(inner-inventoryWidth-3, body)
	}

	m.help.Width = inner
	m.search.Width = max(10, inner-4)
}

// Inventory returns the current inventory.
func (m Model) Inventory() model.Inventory {
	return m.filter.Inventory()
}

// Visible returns the recipes currently listed, in display order.
func (m Model) Visible() []model.Recipe {
	return m.recipes.Recipes()
}
