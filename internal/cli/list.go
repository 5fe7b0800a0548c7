package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/aristath/brokerbook/internal/config"
	"github.com/aristath/brokerbook/internal/fileio"
	"github.com/aristath/brokerbook/internal/services"
)

// Entity names accepted by list -entity.
var entities = []string{"stockquotes", "brokers", "investors", "companies"}

type listCmd struct {
	from   string
	entity string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "print a report of one record type" }
func (*listCmd) Usage() string {
	return `brokerbook list -entity <stockquotes|brokers|investors|companies> [-from <format>]

  Imports every record from the given channel and prints a table of the
  requested type.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "db", "Channel to read from (ser, csv, xml, json, db).")
	f.StringVar(&c.entity, "entity", "investors", "Record type to print.")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	rt, ok := runtimeFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if err := config.ValidateFormat(c.from); err != nil {
		fmt.Fprintln(f.Output(), err)
		return subcommands.ExitUsageError
	}

	var report func(w io.Writer, s *services.DatasetService)
	switch c.entity {
	case "stockquotes":
		report = printStockQuotes
	case "brokers":
		report = printBrokers
	case "investors":
		report = printInvestors
	case "companies":
		report = printCompanies
	default:
		fmt.Fprintf(f.Output(), "unknown entity %q, want one of %s\n", c.entity, strings.Join(entities, ", "))
		return subcommands.ExitUsageError
	}

	if err := rt.Dataset.Import(ctx, c.from); err != nil {
		rt.Log.Error().Err(err).Str("format", c.from).Msg("Import failed")
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(rt.Out, 0, 0, 2, ' ', 0)
	report(w, rt.Dataset)
	if err := w.Flush(); err != nil {
		rt.Log.Error().Err(err).Msg("Failed to write report")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func printStockQuotes(w io.Writer, s *services.DatasetService) {
	fmt.Fprintln(w, "TICKER\tVALUE\tDATE")
	for _, q := range s.StockQuotes() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", q.TickerSymbol, money(q.Value), q.Date.Format(fileio.DateFormat))
	}
}

func printBrokers(w io.Writer, s *services.DatasetService) {
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tHIRED\tSALARY\tCLIENTS")
	for _, b := range s.Brokers() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.Name, b.Status, b.DateOfHire.Format(fileio.DateFormat), money(b.Salary), strings.Join(b.ClientNames, ", "))
	}
}

func printInvestors(w io.Writer, s *services.DatasetService) {
	fmt.Fprintln(w, "ID\tNAME\tMEMBER SINCE\tPOSITIONS\tACCOUNT VALUE")
	for _, inv := range s.Investors() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			inv.ID, inv.Name, inv.MemberSince.Format(fileio.DateFormat), len(inv.Stocks), money(inv.AccountValue))
	}
}

func printCompanies(w io.Writer, s *services.DatasetService) {
	fmt.Fprintln(w, "COMPANY\tBROKERS")
	for _, ic := range s.InvestmentCompanies() {
		fmt.Fprintf(w, "%s\t%s\n", ic.CompanyName, strings.Join(ic.BrokerNames, ", "))
	}
}
