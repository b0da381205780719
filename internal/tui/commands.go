package tui

import (
	"context"

	"github.com/Veraticus/alembic/internal/catalog"
	"github.com/Veraticus/alembic/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// loadCatalog loads the recipe catalog off the update loop.
func loadCatalog(ctx context.Context, source service.CatalogSource) tea.Cmd {
	return func() tea.Msg {
		recipes, err := source.Load(ctx)
		msg := catalogLoadedMsg{
			source:  source.Describe(),
			recipes: recipes,
			err:     err,
		}
		if r, ok := source.(catalog.Reporter); ok {
			msg.skipped = len(r.Report().Skipped)
		}
		return msg
	}
}

// showStatus sets the status line.
func showStatus(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isErr: isErr}
	}
}
