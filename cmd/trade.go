package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/nextfinance"
)

// tradeCmd holds the flags for the 'trade' subcommand.
type tradeCmd struct {
	side   string
	shares string
}

func (*tradeCmd) Name() string     { return "trade" }
func (*tradeCmd) Synopsis() string { return "place a simulated order" }
func (*tradeCmd) Usage() string {
	return `nf trade [-side buy|sell] -shares <amount> <ticker>

  Validates and logs a simulated order. Nothing is executed.
`
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.side, "side", "buy", "Side of the order: buy or sell.")
	f.StringVar(&c.shares, "shares", "", "Number of shares, decimals allowed.")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: trade requires exactly one ticker")
		return subcommands.ExitUsageError
	}
	side, err := nextfinance.ParseSide(c.side)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
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
	ticket.SetSide(side)
	ticket.SetAmount(c.shares)

	order, err := s.Submit(ticket)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, order)
	fmt.Fprintf(stdout, "Estimated total: %s\n", order.Total)
	return subcommands.ExitSuccess
}
