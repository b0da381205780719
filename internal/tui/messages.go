package tui

import "github.com/Veraticus/alembic/internal/model"

// Data loading messages.
type catalogLoadedMsg struct {
	err     error
	source  string
	recipes []model.Recipe
	skipped int
}

// statusMsg replaces the status line text.
type statusMsg struct {
	text  string
	isErr bool
}
