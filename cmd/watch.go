package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/etnz/nextfinance/internal/config"
	"github.com/etnz/nextfinance/internal/logger"
	"github.com/etnz/nextfinance/renderer"
)

// watchCmd holds the flags for the 'watch' subcommand.
type watchCmd struct {
	every string
	query string
	count int
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "refresh the dashboard on a schedule" }
func (*watchCmd) Usage() string {
	return `nf watch [-every <schedule>] [-q <query>] [-n <count>]

  Prints a freshly generated dashboard on every tick of the schedule, until
  interrupted. The schedule is a cron expression with seconds, or a descriptor
  such as '@every 5s'. Defaults to schedule.refresh of the configuration.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.every, "every", "", "Refresh schedule.")
	f.StringVar(&c.query, "q", "", "Filter the watchlist by ticker or name.")
	f.IntVar(&c.count, "n", 0, "Stop after this many refreshes. 0 runs until interrupted.")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	spec := cfg.Schedule.Refresh
	if c.every != "" {
		spec = c.every
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := &watcher{cfg: cfg, query: c.query, count: c.count, done: stop}
	if err := w.run(ctx, spec); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// watcher renders a new dashboard on every tick.
type watcher struct {
	cfg     *config.Config
	query   string
	count   int // 0 means unlimited
	printed int
	done    func()
}

// run schedules the refresh and blocks until ctx is done.
func (w *watcher) run(ctx context.Context, spec string) error {
	c := cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(spec, w.refresh); err != nil {
		return fmt.Errorf("register refresh %q: %w", spec, err)
	}
	c.Start()
	logger.Info("watch started", zap.String("schedule", spec))

	<-ctx.Done()
	<-c.Stop().Done()
	logger.Info("watch stopped")
	return nil
}

// refresh prints a dashboard. Ticks are skipped while a refresh is still running.
func (w *watcher) refresh() {
	if w.count > 0 && w.printed >= w.count {
		return
	}
	s, err := newSession(w.cfg)
	if err != nil {
		logger.Error("refresh failed", zap.Error(err))
		return
	}
	defer s.Close()
	s.Store().FinishLoading()
	s.SetQuery(w.query)
	printMarkdown(renderer.DashboardMarkdown(renderer.NewDashboard(s)))

	w.printed++
	if w.count > 0 && w.printed == w.count {
		w.done()
	}
}
