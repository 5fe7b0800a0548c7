// Command brokerbook converts records between persistence channels and
// prints record reports.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/aristath/brokerbook/internal/cli"
	"github.com/aristath/brokerbook/internal/config"
	"github.com/aristath/brokerbook/internal/di"
	"github.com/aristath/brokerbook/pkg/logger"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cli.Commands() {
		commander.Register(c, "")
	}

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Config{Level: "info", Pretty: true, Output: os.Stderr})
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Reports go to stdout, so logs go to stderr.
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
		Output: os.Stderr,
	})

	container, err := di.Wire(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	status := commander.Execute(context.Background(), &cli.Runtime{
		Dataset: container.Dataset,
		Out:     os.Stdout,
		Log:     log,
	})
	container.Close()
	os.Exit(int(status))
}
