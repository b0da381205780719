package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/alembic/internal/model"
	"github.com/Veraticus/alembic/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// InventoryModel renders the ten ingredient counts with a selection cursor.
// Counts are owned by the filter controller; the panel only displays them.
type InventoryModel struct {
	theme   themes.Theme
	counts  model.Inventory
	cursor  model.Ingredient
	width   int
	focused bool
}

// NewInventory creates an inventory panel with the cursor on the first kind.
func NewInventory(theme themes.Theme) InventoryModel {
	return InventoryModel{
		theme:   theme,
		width:   44,
		focused: true,
	}
}

// SetCounts replaces the displayed counts.
func (m *InventoryModel) SetCounts(inv model.Inventory) {
	m.counts = inv
}

// Selected returns the kind under the cursor.
func (m InventoryModel) Selected() model.Ingredient {
	return m.cursor
}

// Select moves the cursor to kind. Invalid kinds are ignored.
func (m *InventoryModel) Select(kind model.Ingredient) {
	if kind.Valid() {
		m.cursor = kind
	}
}

// MoveUp moves the cursor to the previous kind, stopping at the first.
func (m *InventoryModel) MoveUp() {
	m.cursor = max(m.cursor-1, 0)
}

// MoveDown moves the cursor to the next kind, stopping at the last.
func (m *InventoryModel) MoveDown() {
	m.cursor = min(m.cursor+1, model.KindCount-1)
}

// SetFocused marks whether the panel has keyboard focus.
func (m *InventoryModel) SetFocused(focused bool) {
	m.focused = focused
}

// Resize updates the panel width.
func (m *InventoryModel) Resize(width int) {
	m.width = max(20, width)
}

// View renders the inventory panel.
func (m InventoryModel) View() string {
	title := m.theme.Title.Render("Inventory")
	if !m.focused {
		title = m.theme.Subtitle.Render("Inventory")
	}

	rows := make([]string, 0, model.KindCount)
	for _, ing := range model.AllIngredients() {
		rows = append(rows, m.renderRow(ing))
	}

	total := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Render(fmt.Sprintf("%d ingredients held", m.counts.Total()))

	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(rows, "\n"), "", total)
}

func (m InventoryModel) renderRow(ing model.Ingredient) string {
	marker := "  "
	if ing == m.cursor {
		marker = "▸ "
	}

	nameWidth := max(8, m.width-12)
	name := ing.Name()
	if len(name) > nameWidth {
		name = name[:nameWidth-1] + "…"
	}

	count := m.counts[ing]
	countText := fmt.Sprintf("×%d", count)
	countStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)
	if count > 0 {
		countStyle = lipgloss.NewStyle().Foreground(m.theme.Success).Bold(true)
	}

	row := fmt.Sprintf("%s%d %s %s",
		marker,
		int(ing),
		lipgloss.NewStyle().Foreground(m.theme.TierColor(int(ing))).Width(nameWidth).Render(name),
		countStyle.Render(countText))

	if ing == m.cursor && m.focused {
		return m.theme.Highlighted.Render(row)
	}
	return row
}
