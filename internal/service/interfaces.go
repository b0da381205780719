// Package service defines the interfaces shared between application layers.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/alembic/internal/model"
)

// CatalogSource defines the contract for anything that can produce the
// recipe catalog.
type CatalogSource interface {
	// Load returns the recipes in catalog order with IDs assigned densely
	// from zero.
	Load(ctx context.Context) ([]model.Recipe, error)
	// Describe names the source for logs and status lines.
	Describe() string
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
