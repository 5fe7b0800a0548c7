package di

import (
	"github.com/rs/zerolog"

	"github.com/aristath/brokerbook/internal/config"
	"github.com/aristath/brokerbook/internal/services"
)

// InitializeServices creates the dataset service on top of the records database.
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) {
	container.Dataset = services.NewDatasetService(container.RecordsDB.Conn(), services.Options{
		DataDir:         cfg.DataDir,
		LoadMode:        cfg.LoadMode,
		CanonicalFormat: cfg.CanonicalFormat,
	}, log)
}
