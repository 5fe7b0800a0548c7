// Package di provides dependency injection type definitions.
package di

import (
	"github.com/aristath/brokerbook/internal/database"
	"github.com/aristath/brokerbook/internal/services"
)

// Container holds the application's long-lived dependencies.
type Container struct {
	RecordsDB *database.DB
	Dataset   *services.DatasetService
}

// Close releases the database connection.
func (c *Container) Close() error {
	if c == nil || c.RecordsDB == nil {
		return nil
	}
	return c.RecordsDB.Close()
}
