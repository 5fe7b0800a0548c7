package di

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/brokerbook/internal/config"
	"github.com/aristath/brokerbook/internal/database"
)

// InitializeDatabases opens the records database and applies its schema.
func InitializeDatabases(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	recordsDB, err := database.New(database.Config{
		Path: cfg.DatabasePath,
		Name: "records",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize records database: %w", err)
	}

	if err := recordsDB.Migrate(); err != nil {
		recordsDB.Close()
		return nil, fmt.Errorf("failed to migrate records database: %w", err)
	}

	log.Info().Str("path", recordsDB.Path()).Msg("Records database ready")
	return &Container{RecordsDB: recordsDB}, nil
}
