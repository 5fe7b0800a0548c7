// Package utils holds small helpers shared across packages.
package utils

import (
	"time"

	"github.com/rs/zerolog"
)

// SlowOperation is the duration above which OperationTimer logs a warning.
const SlowOperation = 10 * time.Second

// OperationTimer provides a defer-friendly way to measure operation duration
//
// Usage:
//
//	func (s *DatasetService) SaveData(ctx context.Context) error {
//	    defer utils.OperationTimer("save_data", s.log)()
//	}
func OperationTimer(operation string, log zerolog.Logger) func() {
	start := time.Now()

	return func() {
		duration := time.Since(start)

		log.Debug().
			Str("operation", operation).
			Dur("duration_ms", duration).
			Msg("Operation completed")

		if duration > SlowOperation {
			log.Warn().
				Str("operation", operation).
				Dur("duration", duration).
				Msg("Slow operation detected")
		}
	}
}
