package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/aristath/brokerbook/internal/config"
	"github.com/aristath/brokerbook/internal/fileio"
)

type convertCmd struct {
	from string
	to   string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "copy every record from one channel to another" }
func (*convertCmd) Usage() string {
	return `brokerbook convert -from <format> -to <format>

  Reads stock quotes, brokers, investors and investment companies from one
  channel and writes them all to another. Formats: ser, csv, xml, json, db.
  Reading csv keeps only the fields the text format carries. Text files hold
  no person ids, so csv cannot be converted to db.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "db", "Channel to read from.")
	f.StringVar(&c.to, "to", "json", "Channel to write to.")
}

func (c *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	rt, ok := runtimeFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	for _, format := range []string{c.from, c.to} {
		if err := config.ValidateFormat(format); err != nil {
			fmt.Fprintln(f.Output(), err)
			return subcommands.ExitUsageError
		}
	}
	if c.from == c.to {
		fmt.Fprintf(f.Output(), "-from and -to are both %q\n", c.from)
		return subcommands.ExitUsageError
	}
	if c.from == string(fileio.FormatText) && c.to == config.FormatDatabase {
		fmt.Fprintf(f.Output(), "cannot convert %s to %s: text files do not carry ids\n", c.from, c.to)
		return subcommands.ExitUsageError
	}

	if err := rt.Dataset.Import(ctx, c.from); err != nil {
		rt.Log.Error().Err(err).Str("format", c.from).Msg("Import failed")
		return subcommands.ExitFailure
	}
	if err := rt.Dataset.Export(ctx, c.to); err != nil {
		rt.Log.Error().Err(err).Str("format", c.to).Msg("Export failed")
		return subcommands.ExitFailure
	}

	sum := rt.Dataset.Summary()
	fmt.Fprintf(rt.Out, "converted %s -> %s: %d stock quotes, %d brokers, %d investors, %d investment companies\n",
		c.from, c.to, sum.StockQuotes, sum.Brokers, sum.Investors, sum.InvestmentCompanies)
	return subcommands.ExitSuccess
}
