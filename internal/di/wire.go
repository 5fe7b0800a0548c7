package di

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/brokerbook/internal/config"
)

// Wire initializes all dependencies and returns a fully configured container.
// The caller owns the container and must Close it.
func Wire(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	container, err := InitializeDatabases(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize databases: %w", err)
	}

	InitializeServices(container, cfg, log)

	log.Info().
		Str("data_dir", cfg.DataDir).
		Str("load_mode", cfg.LoadMode).
		Msg("Dependency injection wiring completed successfully")

	return container, nil
}
