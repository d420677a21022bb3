package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/nextfinance/renderer"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	query    string
	selected string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the portfolio dashboard" }
func (*dashboardCmd) Usage() string {
	return `nf dashboard [-q <query>] [-select <ticker>]

  Displays the portfolio overview, its chart, the watchlist and the latest news.
  The watchlist is filtered by the query, matching tickers and names regardless of case.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter the watchlist by ticker or name.")
	f.StringVar(&c.selected, "select", "", "Open the detail view of a stock below the dashboard.")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, s, status := openSession()
	if status != subcommands.ExitSuccess {
		return status
	}
	defer s.Close()

	fmt.Fprint(stderr, renderer.LoadingMarkdown())
	select {
	case <-s.Load(cfg.Dashboard.LoadDelay):
	case <-ctx.Done():
		fmt.Fprintf(stderr, "Interrupted: %v\n", ctx.Err())
		return subcommands.ExitFailure
	}

	s.SetQuery(c.query)
	md := renderer.DashboardMarkdown(renderer.NewDashboard(s))

	if c.selected != "" {
		if err := s.Select(c.selected); err != nil {
			fmt.Fprintf(stderr, "Error selecting stock: %v\n", err)
			return subcommands.ExitUsageError
		}
		ticket, err := s.Ticket()
		if err != nil {
			fmt.Fprintf(stderr, "Error opening trade ticket: %v\n", err)
			return subcommands.ExitFailure
		}
		md += "\n---\n\n" + renderer.StockDetailMarkdown(renderer.NewStockDetail(ticket, s.DetailSeries(), s.Padding()))
	}

	printMarkdown(md)
	return subcommands.ExitSuccess
}
