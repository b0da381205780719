package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/alembic/internal/catalog"
	"github.com/Veraticus/alembic/internal/common"
	"github.com/Veraticus/alembic/internal/config"
	"github.com/Veraticus/alembic/internal/engine"
	"github.com/Veraticus/alembic/internal/model"
	"github.com/Veraticus/alembic/internal/service"
)

// openCatalog builds the configured catalog source without loading it.
func openCatalog() (service.CatalogSource, error) {
	cfg, err := config.LoadCatalogConfig()
	if err != nil {
		return nil, err
	}

	source, err := catalog.Open(*cfg)
	if err != nil {
		return nil, err
	}
	return source, nil
}

// loadCatalog opens and loads the configured catalog.
func loadCatalog(ctx context.Context) ([]model.Recipe, error) {
	source, err := openCatalog()
	if err != nil {
		return nil, err
	}

	recipes, err := source.Load(ctx)
	if err != nil {
		common.LogError(err, "Failed to load recipe catalog", common.Fields{"source": source.Describe()})
		return nil, common.NewUserError(fmt.Sprintf("could not load recipes from %s", source.Describe()), err)
	}

	if r, ok := source.(catalog.Reporter); ok {
		if skipped := r.Report().Skipped; len(skipped) > 0 {
			slog.Warn("Some catalog rows were skipped", "source", source.Describe(), "count", len(skipped))
		}
	}

	return recipes, nil
}

// newEngine builds an engine with the configured strategy.
func newEngine(recipes []model.Recipe) (*engine.Engine, error) {
	strategy, err := config.LoadEngineStrategy()
	if err != nil {
		return nil, err
	}
	return engine.NewWithConfig(recipes, engine.Config{Strategy: strategy}), nil
}
