package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/alembic/internal/model"
	"github.com/Veraticus/alembic/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RecipeListModel manages the table of visible recipes and the detail pane
// for the selected one.
type RecipeListModel struct {
	theme   themes.Theme
	recipes []model.Recipe
	table   table.Model
	total   int
	width   int
	height  int
}

// NewRecipeList creates an empty recipe list.
func NewRecipeList(theme themes.Theme) RecipeListModel {
	t := table.New(
		table.WithColumns(recipeColumns(80)),
		table.WithFocused(false),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return RecipeListModel{
		theme:  theme,
		table:  t,
		width:  80,
		height: 20,
	}
}

// SetRecipes replaces the visible recipes. total is the catalog size shown
// in the header.
func (m *RecipeListModel) SetRecipes(recipes []model.Recipe, total int) {
	m.recipes = recipes
	m.total = total
	m.table.SetRows(m.buildTableRows())

	if cursor := m.table.Cursor(); cursor < 0 || cursor >= len(recipes) {
		m.table.SetCursor(max(0, min(cursor, len(recipes)-1)))
	}
}

// Recipes returns the recipes currently listed.
func (m RecipeListModel) Recipes() []model.Recipe {
	return m.recipes
}

// Selected returns the recipe under the cursor.
func (m RecipeListModel) Selected() (model.Recipe, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.recipes) {
		return model.Recipe{}, false
	}
	return m.recipes[i], true
}

// Cursor returns the table cursor.
func (m RecipeListModel) Cursor() int {
	return m.table.Cursor()
}

// Focus gives the table keyboard focus.
func (m *RecipeListModel) Focus() {
	m.table.Focus()
}

// Blur removes keyboard focus from the table.
func (m *RecipeListModel) Blur() {
	m.table.Blur()
}

// Focused reports whether the table has keyboard focus.
func (m RecipeListModel) Focused() bool {
	return m.table.Focused()
}

// PageUp scrolls one page towards the start.
func (m *RecipeListModel) PageUp() {
	if len(m.recipes) == 0 {
		return
	}
	m.table.MoveUp(max(1, m.table.Height()))
}

// PageDown scrolls one page towards the end.
func (m *RecipeListModel) PageDown() {
	if len(m.recipes) == 0 {
		return
	}
	m.table.MoveDown(max(1, m.table.Height()))
}

// Update handles messages. Keys only reach the table while it is focused.
func (m RecipeListModel) Update(msg tea.Msg) (RecipeListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the list with its header and the selected recipe's details.
func (m RecipeListModel) View() string {
	header := m.renderHeader()
	if len(m.recipes) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Italic(true).
			Render("No recipes match the current inventory and search.")
		return lipgloss.JoinVertical(lipgloss.Left, header, empty)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.table.View(),
		"",
		m.renderDetail(),
	)
}

func (m RecipeListModel) renderHeader() string {
	title := m.theme.Title.Render("Recipes")
	status := fmt.Sprintf("%d of %d craftable", len(m.recipes), m.total)
	return lipgloss.JoinVertical(lipgloss.Left, title, m.theme.Subtitle.Render(status))
}

// renderDetail shows the selected recipe's ingredients and full description.
func (m RecipeListModel) renderDetail() string {
	r, ok := m.Selected()
	if !ok {
		return ""
	}

	ingredients := strings.Join(r.IngredientNames(), " + ")
	body := r.Description
	if body == "" {
		body = lipgloss.NewStyle().Foreground(m.theme.Muted).Render("(no description)")
	}

	width := max(20, m.width-4)
	return m.theme.RoundedBox.
		Width(width).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.Bold.Render(r.Title),
			lipgloss.NewStyle().Foreground(m.theme.Secondary).Render(ingredients),
			"",
			body,
		))
}

func (m RecipeListModel) buildTableRows() []table.Row {
	rows := make([]table.Row, 0, len(m.recipes))
	for _, r := range m.recipes {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Title,
			strings.Join(r.IngredientNames(), " "),
		})
	}
	return rows
}

// Resize updates the component size. The detail pane takes roughly a third
// of the height.
func (m *RecipeListModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// Header: title, spacing, subtitle, spacing = 4; table header = 2;
	// detail pane with borders and padding.
	detail := max(6, height/3)
	m.table.SetHeight(max(3, height-6-detail))
	m.table.SetColumns(recipeColumns(width))
}

func recipeColumns(width int) []table.Column {
	available := max(40, width-6)
	ingredients := max(14, available/4)
	return []table.Column{
		{Title: "#", Width: 5},
		{Title: "Title", Width: max(12, available-5-ingredients)},
		{Title: "Ingredients", Width: ingredients},
	}
}
