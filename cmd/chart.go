package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/nextfinance"
	"github.com/etnz/nextfinance/chart"
	"github.com/etnz/nextfinance/renderer"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	format string
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "export a chart" }
func (*chartCmd) Usage() string {
	return `nf chart [-format text|svg|png|json] [-o <file>] [<ticker>]

  Exports the chart of a stock, or of the portfolio when no ticker is given.
  PNG output requires -o.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "text", "Output format: text, svg, png or json.")
	f.StringVar(&c.output, "o", "", "Write the chart to this file instead of stdout.")
}

// chartData is the json output of the chart command.
type chartData struct {
	Title  string                       `json:"title"`
	Color  string                       `json:"color"`
	Series nextfinance.Series           `json:"series"`
	Chart  []nextfinance.ProjectedPoint `json:"chart"`
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(stderr, "Error: chart accepts at most one ticker")
		return subcommands.ExitUsageError
	}
	if c.format == "png" && c.output == "" {
		fmt.Fprintln(stderr, "Error: png output requires -o")
		return subcommands.ExitUsageError
	}

	_, s, status := openSession()
	if status != subcommands.ExitSuccess {
		return status
	}
	defer s.Close()

	data := chartData{Title: "Portfolio", Series: s.PortfolioSeries(), Color: s.Portfolio().TodayChange.Trend().Color()}
	if f.NArg() == 1 {
		id := f.Arg(0)
		st, err := s.Stock(id)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		series, err := s.StockSeries(id)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		data = chartData{Title: st.Name + " (" + st.ID + ")", Series: series, Color: st.Trend().Color()}
	}
	points, ok := nextfinance.Project(data.Series, s.Padding())
	data.Chart = points

	var content []byte
	switch c.format {
	case "text":
		if ok {
			content = []byte(renderer.Plot(points, renderer.PlotWidth, renderer.PlotHeight) + "\n")
		} else {
			content = []byte("No data available\n")
		}
	case "svg":
		content = []byte(renderer.SVG(points, ok, data.Color))
	case "png":
		img, err := chart.PNG(data.Series, chart.Options{Title: data.Title, Padding: s.Padding()})
		if err != nil {
			fmt.Fprintf(stderr, "Error rendering chart: %v\n", err)
			return subcommands.ExitFailure
		}
		content = img
	case "json":
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Error encoding chart: %v\n", err)
			return subcommands.ExitFailure
		}
		content = append(b, '\n')
	default:
		fmt.Fprintf(stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	if err := writeOutput(c.output, content); err != nil {
		fmt.Fprintf(stderr, "Error writing chart: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// writeOutput writes content to the file at path, or to stdout when path is empty.
func writeOutput(path string, content []byte) error {
	if path == "" {
		_, err := stdout.Write(content)
		return err
	}
	return os.WriteFile(path, content, 0o644)
}
