// Package cli implements the brokerbook command line tool on top of the
// dataset service.
package cli

import (
	"io"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/aristath/brokerbook/internal/services"
)

// Runtime is handed to every command as the first Execute argument.
type Runtime struct {
	Dataset *services.DatasetService
	Out     io.Writer
	Log     zerolog.Logger
}

// Commands lists the brokerbook subcommands.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&convertCmd{},
		&listCmd{},
	}
}

func runtimeFrom(args []interface{}) (*Runtime, bool) {
	if len(args) == 0 {
		return nil, false
	}
	rt, ok := args[0].(*Runtime)
	return rt, ok && rt != nil
}
