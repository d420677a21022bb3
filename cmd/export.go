package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"

	"github.com/etnz/nextfinance"
	"github.com/etnz/nextfinance/renderer"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	query string
	path  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the dashboard state as JSON" }
func (*exportCmd) Usage() string {
	return `nf export [-q <query>] [-path <jsonpath>]

  Prints the dashboard state as JSON. With -path, prints only the values
  selected by the JSONPath expression, for instance '$.stocks[*].id'.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter the watchlist by ticker or name.")
	f.StringVar(&c.path, "path", "", "JSONPath expression selecting the values to print.")
}

// exportData is the document printed by the export command.
type exportData struct {
	Session string                     `json:"session"`
	State   nextfinance.SelectionState `json:"state"`
	*renderer.Dashboard
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, s, status := openSession()
	if status != subcommands.ExitSuccess {
		return status
	}
	defer s.Close()

	s.Store().FinishLoading()
	s.SetQuery(c.query)
	doc := exportData{Session: s.ID, State: s.Store().State(), Dashboard: renderer.NewDashboard(s)}

	out, err := exportJSON(doc, c.path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}

// exportJSON marshals v, keeping only what path selects when it is not empty.
func exportJSON(v any, path string) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var obj any
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, err
	}
	if path != "" {
		obj, err = jsonpath.Get(path, obj)
		if err != nil {
			return nil, fmt.Errorf("error evaluating %q: %w", path, err)
		}
	}
	return json.MarshalIndent(obj, "", "  ")
}
