// Package cmd implements the nf command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/nextfinance"
	"github.com/etnz/nextfinance/internal/config"
	"github.com/etnz/nextfinance/internal/logger"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "dashboard")
	c.Register(&stockCmd{}, "dashboard")
	c.Register(&tradeCmd{}, "dashboard")

	c.Register(&chartCmd{}, "data")
	c.Register(&exportCmd{}, "data")

	c.Register(&watchCmd{}, "services")
	c.Register(&serveCmd{}, "services")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configPath = flag.String("config", "", "Path to the configuration file. Defaults to $NF_CONFIG or nf.yaml")
var plain = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")

// stdout and stderr are replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// loadConfig reads and validates the application configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.Path(*configPath))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newSession starts a dashboard session as configured.
func newSession(cfg *config.Config) (*nextfinance.Session, error) {
	seed, err := nextfinance.LoadSeed(cfg.Dashboard.SeedFile)
	if err != nil {
		return nil, err
	}
	opts := append(cfg.SessionOptions(), nextfinance.WithLogger(logger.Log))
	return nextfinance.NewSession(seed, opts...), nil
}

// openSession loads the configuration and starts a session, reporting errors on stderr.
func openSession() (*config.Config, *nextfinance.Session, subcommands.ExitStatus) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	s, err := newSession(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading seed: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	return cfg, s, subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	if *plain {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
