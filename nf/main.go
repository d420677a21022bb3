package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/nextfinance"
	"github.com/etnz/nextfinance/cmd"
	"github.com/etnz/nextfinance/internal/logger"
)

func main() {
	completion().Complete("nf")

	logger.InitLogger()
	defer logger.Sync()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a subcommand of commander.
func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	var tickers predict.Set
	for _, s := range nextfinance.DefaultSeed().Stocks() {
		tickers = append(tickers, s.ID)
	}
	query := predict.Something
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"plain":  predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"dashboard": {Flags: map[string]complete.Predictor{"q": query, "select": tickers}},
			"stock":     {Args: tickers},
			"trade": {
				Flags: map[string]complete.Predictor{"side": predict.Set{"buy", "sell"}, "shares": predict.Something},
				Args:  tickers,
			},
			"chart": {
				Flags: map[string]complete.Predictor{"format": predict.Set{"text", "svg", "png", "json"}, "o": predict.Files("*")},
				Args:  tickers,
			},
			"export": {Flags: map[string]complete.Predictor{"q": query, "path": predict.Something}},
			"watch":  {Flags: map[string]complete.Predictor{"every": predict.Set{"@every 5s", "@every 1m"}, "q": query, "n": predict.Something}},
			"serve":  {Flags: map[string]complete.Predictor{"addr": predict.Something}},
			"topic":  {Flags: map[string]complete.Predictor{"list": predict.Nothing}, Args: predict.Set{"dashboard", "trading", "charts", "config"}},
		},
	}
}
