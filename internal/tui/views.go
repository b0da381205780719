package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const inventoryWidth = 44

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return m.renderLoading()
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.width < 80 {
		return m.renderCompactView()
	}
	return m.renderFullView()
}

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	source := ""
	if m.source != nil {
		source = m.source.Describe()
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Alembic"),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Loading recipe catalog "+source),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderCompactView stacks the panels for narrow terminals.
func (m Model) renderCompactView() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderSearch(),
		m.inventory.View(),
		"",
		m.recipes.View(),
	)
	return m.wrapWithBorder(content)
}

// renderFullView places the inventory beside the recipes.
func (m Model) renderFullView() string {
	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(inventoryWidth).Render(m.inventory.View()),
		m.theme.Normal.Render(" │ "),
		m.recipes.View(),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, m.renderSearch(), panels)
	return m.wrapWithBorder(content)
}

// renderSearch renders the search field, or a hint when it is idle.
func (m Model) renderSearch() string {
	if m.focus == FocusSearch || m.search.Value() != "" {
		return m.search.View() + "\n"
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press / to search") + "\n"
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("Alembic - Help")

	full := m.help
	full.ShowAll = true

	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.
			MaxHeight(m.height-2).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				title,
				full.View(m.keymap),
				"",
				footer,
			)),
	)
}

// wrapWithBorder adds the status bar, short help, and a border.
func (m Model) wrapWithBorder(content string) string {
	fullContent := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.renderStatusBar(),
		m.help.View(m.keymap),
	)

	return m.theme.BorderedBox.
		Width(m.width - 2).
		Render(fullContent)
}

// renderStatusBar shows the focus, the last status message, and the filter
// summary.
func (m Model) renderStatusBar() string {
	left := m.focus.String()

	center := m.status
	centerStyle := m.theme.Normal
	if m.lastError != nil {
		centerStyle = m.theme.StatusError
	}

	order := "↓"
	if m.filter.Reversed() {
		order = "↑"
	}
	right := fmt.Sprintf("%d/%d %s %s", m.filter.VisibleCount(), m.filter.Total(), order, m.strategy)

	totalWidth := max(0, m.width-8)
	spacing := max(2, totalWidth-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right))
	leftPad := spacing / 2
	rightPad := spacing - leftPad

	return fmt.Sprintf("%s%s%s%s%s",
		m.theme.StatusInfo.Render(left),
		strings.Repeat(" ", leftPad),
		centerStyle.Render(center),
		strings.Repeat(" ", rightPad),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(right),
	)
}
