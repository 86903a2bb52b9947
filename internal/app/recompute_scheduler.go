package app

import (
	"context"
	"errors"
	"time"

	"github.com/makanrank/ranking-engine/internal/command"
	"github.com/makanrank/ranking-engine/internal/domain"
)

// RecomputeScheduler is a Component that recomputes rankings every Interval.
// A failed run is logged and retried at the next tick; it never stops the
// process.
type RecomputeScheduler struct {
	Recompute command.Command[command.RecomputeRankingsRequest, domain.RunSummary]
	Interval  time.Duration
	// Timeout bounds each run. Zero means no limit beyond ctx.
	Timeout time.Duration
	// RunOnStart triggers one run before waiting for the first tick.
	RunOnStart bool
}

func (s *RecomputeScheduler) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "starting recompute scheduler", "interval", s.Interval, "timeout", s.Timeout)

	if s.RunOnStart {
		s.runOnce(ctx)
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "recompute scheduler stopping due to context cancellation")
			return nil
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *RecomputeScheduler) runOnce(parent context.Context) {
	ctx := parent
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, s.Timeout)
		defer cancel()
	}

	logger := domain.LoggerFromContext(ctx)
	_, err := s.Recompute.Execute(ctx, command.RecomputeRankingsRequest{})
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrRecomputeInProgress):
		logger.InfoContext(ctx, "skipping scheduled recompute, a run is already in progress")
	case errors.Is(err, context.DeadlineExceeded):
		logger.ErrorContext(ctx, "scheduled recompute timed out", "timeout", s.Timeout)
	case parent.Err() != nil:
		// Shutting down.
	default:
		logger.ErrorContext(ctx, "scheduled recompute failed", "error", err)
	}
}
