// Command recompute runs one rankings recompute against the configured
// storage and prints the run summary as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/makanrank/ranking-engine/internal/app"
	"github.com/makanrank/ranking-engine/internal/command"
	"github.com/makanrank/ranking-engine/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

type options struct {
	Now     time.Time
	Timeout time.Duration
}

func parseOptions(args []string) (options, error) {
	fs := flag.NewFlagSet("recompute", flag.ContinueOnError)
	now := fs.String("now", "", "reference time (RFC3339); defaults to the current time")
	timeout := fs.Duration("timeout", 0, "abort the run after this long; 0 means no limit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{Timeout: *timeout}
	if opts.Timeout < 0 {
		return options{}, fmt.Errorf("-timeout must not be negative")
	}
	if *now != "" {
		at, err := time.Parse(time.RFC3339, *now)
		if err != nil {
			return options{}, fmt.Errorf("parsing -now: %w", err)
		}
		opts.Now = at
	}
	return opts, nil
}

// recomputeRequest overrides the reference time of defaults when one is set.
func recomputeRequest(defaults domain.EngineConfig, opts options) command.RecomputeRankingsRequest {
	if opts.Now.IsZero() {
		return command.RecomputeRankingsRequest{}
	}
	config := defaults
	config.Now = opts.Now
	return command.RecomputeRankingsRequest{Config: &config}
}

func writeSummary(w io.Writer, summary domain.RunSummary) error {
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		return fmt.Errorf("writing run summary: %w", err)
	}
	return nil
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	// Logs go to stderr so stdout carries only the summary.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	services, err := app.SetupServices(ctx, nil)
	if err != nil {
		logger.ErrorContext(ctx, "unable to setup services", "error", err)
		os.Exit(1)
	}

	summary, err := services.Recompute.Execute(ctx, recomputeRequest(services.Recompute.Config.Engine, opts))
	if err != nil {
		logger.ErrorContext(ctx, "rankings recompute failed", "error", err)
		os.Exit(1)
	}

	if err := writeSummary(os.Stdout, summary); err != nil {
		logger.ErrorContext(ctx, "unable to write run summary", "error", err)
		os.Exit(1)
	}
}
