package utils

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestOperationTimer(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := OperationTimer("load_data", log)
	assert.Empty(t, buf.String())

	done()
	assert.Contains(t, buf.String(), `"operation":"load_data"`)
	assert.Contains(t, buf.String(), "Operation completed")
	assert.NotContains(t, buf.String(), "Slow operation")
}

func TestOperationTimer_InfoLevelIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.InfoLevel)

	OperationTimer("save_data", log)()
	assert.Empty(t, buf.String())
}
