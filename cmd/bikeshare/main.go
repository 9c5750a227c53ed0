package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	bikeshare "github.com/theoremus-urban-solutions/bikeshare-explorer"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/config"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/filter"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/formatter"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/internal"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/server"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/session"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/stats"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// run is the testable body of main.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bikeshare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config.yml (defaults to ./config.yml or ./config/config.yml)")
	mode := fs.String("mode", "interactive", "interactive|oneshot|serve")
	city := fs.String("city", "", "city name (oneshot)")
	month := fs.String("month", filter.All, "month name or all (oneshot)")
	day := fs.String("day", filter.All, "day of week or all (oneshot)")
	format := fs.String("format", "text", "text|json|proto (oneshot)")
	quiet := fs.Bool("quiet", false, "suppress log output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *quiet {
		internal.InitLogging(io.Discard)
	} else {
		internal.InitLogging(stderr)
	}

	var paths []string
	if *configPath != "" {
		paths = []string{*configPath}
	}
	cfg, err := config.LoadAppConfig(paths...)
	if err != nil {
		return err
	}
	analyzer := bikeshare.NewAnalyzer(cfg, trips.NewCache(trips.NewStore(cfg.Data)))

	switch strings.ToLower(*mode) {
	case "interactive":
		return session.New(analyzer, stdin, stdout).Run(ctx)
	case "oneshot":
		return oneshot(analyzer, *city, *month, *day, *format, stdout)
	case "serve":
		return server.New(cfg.Server, analyzer).Run(ctx)
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}
}

func oneshot(a *bikeshare.Analyzer, city, month, day, format string, out io.Writer) error {
	if city == "" {
		return errors.New("-city is required in oneshot mode")
	}
	c, err := a.City(city)
	if err != nil {
		return err
	}
	f, err := a.Filter(month, day)
	if err != nil {
		return err
	}

	switch format = strings.ToLower(format); format {
	case "text":
		timings := formatter.Timings{}
		res, err := a.Analyze(c, f, func(stage stats.Stage, d time.Duration) { timings[stage] = d })
		if err != nil {
			return err
		}
		formatter.WriteReport(out, res.Report, timings)
		return nil
	case "json", "proto":
		buf, _, err := bikeshare.NewReportCache(a).GetResponse(c, f, format)
		if err != nil {
			return err
		}
		_, err = out.Write(buf)
		return err
	default:
		return fmt.Errorf("%w %q", bikeshare.ErrUnsupportedFormat, format)
	}
}
