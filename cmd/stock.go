package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/nextfinance/renderer"
)

type stockCmd struct{}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "display the detail view of a stock" }
func (*stockCmd) Usage() string {
	return `nf stock <ticker>

  Displays the price, the chart and an empty trade ticket of a stock.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: stock requires exactly one ticker")
		return subcommands.ExitUsageError
	}

	_, s, status := openSession()
	if status != subcommands.ExitSuccess {
		return status
	}
	defer s.Close()

	if err := s.Select(f.Arg(0)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ticket, err := s.Ticket()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StockDetailMarkdown(renderer.NewStockDetail(ticket, s.DetailSeries(), s.Padding())))
	return subcommands.ExitSuccess
}
