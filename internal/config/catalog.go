package config

import (
	"fmt"
	"os"

	"github.com/Veraticus/alembic/internal/catalog"
	"github.com/Veraticus/alembic/internal/common"
	"github.com/Veraticus/alembic/internal/engine"
	"github.com/spf13/viper"
)

// LoadCatalogConfig loads catalog configuration from Viper and environment variables.
// It follows this precedence:
// 1. Viper configuration (from config file, flags, or ALEMBIC_ env vars)
// 2. Direct environment variables (ALEMBIC_CATALOG, ALEMBIC_CATALOG_TABLE)
// 3. Default values
func LoadCatalogConfig() (*catalog.Config, error) {
	config := catalog.DefaultConfig()
	var fromViper bool

	if v := viper.GetString("catalog.source"); v != "" {
		config.Source = v
		fromViper = true
	}
	if v := viper.GetString("catalog.format"); v != "" {
		format, err := catalog.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: catalog.format: %w", common.ErrInvalidConfig, err)
		}
		config.Format = format
	}
	if v := viper.GetString("catalog.table"); v != "" {
		config.Table = v
	}
	if viper.IsSet("catalog.timeout") {
		if d := viper.GetDuration("catalog.timeout"); d != 0 {
			config.Timeout = d
		}
	}
	if viper.IsSet("catalog.retry_attempts") {
		config.RetryAttempts = viper.GetInt("catalog.retry_attempts")
	}
	if viper.IsSet("catalog.retry_delay") {
		config.RetryDelay = viper.GetDuration("catalog.retry_delay")
	}

	// Override with direct environment variables if not set
	if !fromViper {
		if v := os.Getenv("ALEMBIC_CATALOG"); v != "" {
			config.Source = v
		}
	}
	if v := os.Getenv("ALEMBIC_CATALOG_TABLE"); v != "" && viper.GetString("catalog.table") == "" {
		config.Table = v
	}

	config.Source = ExpandPath(config.Source)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	return &config, nil
}

// LoadEngineStrategy reads engine.strategy, falling back to ALEMBIC_STRATEGY
// and then to the auto strategy.
func LoadEngineStrategy() (engine.Strategy, error) {
	raw := viper.GetString("engine.strategy")
	if raw == "" {
		raw = os.Getenv("ALEMBIC_STRATEGY")
	}

	strategy, err := engine.ParseStrategy(raw)
	if err != nil {
		return "", fmt.Errorf("%w: engine.strategy: %w", common.ErrInvalidConfig, err)
	}
	return strategy, nil
}
