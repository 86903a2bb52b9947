package command

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/makanrank/ranking-engine/internal/datasources"
	"github.com/makanrank/ranking-engine/internal/domain"
	"golang.org/x/sync/errgroup"
)

// RecomputeRankingsRequest is the request for the RecomputeRankings command.
type RecomputeRankingsRequest struct {
	// Config overrides the command's configured EngineConfig for this run.
	Config *domain.EngineConfig
}

// RecomputeRankingsConfig holds configuration for recompute runs.
type RecomputeRankingsConfig struct {
	Engine domain.EngineConfig

	// LoadConcurrency bounds the number of items whose rankings and visits
	// are fetched from storage at once.
	LoadConcurrency int
}

// RunMetrics records the outcome of recompute runs.
type RunMetrics interface {
	ObserveRecomputeRun(status string, duration time.Duration, processed, skipped int)
}

const (
	RunStatusSuccess   = "success"
	RunStatusPartial   = "partial"
	RunStatusFailure   = "failure"
	RunStatusCancelled = "cancelled"
)

// RecomputeRankings loads the current input snapshot from storage, computes
// every score and view, and commits the full result set atomically.
type RecomputeRankings struct {
	Items     datasources.ItemLister
	Rankings  datasources.ActiveRankingLister
	Visits    datasources.VisitLister
	Committer datasources.ResultCommitter
	Publisher datasources.ReadModelPublisher
	Compute   Command[ComputeRankingsRequest, ComputeRankingsResult]
	Metrics   RunMetrics
	Config    RecomputeRankingsConfig
	Clock     func() time.Time
	NewRunID  func() string

	running sync.Mutex
}

// NewRecomputeRankings creates a properly initialized RecomputeRankings command.
func NewRecomputeRankings(
	items datasources.ItemLister,
	rankings datasources.ActiveRankingLister,
	visits datasources.VisitLister,
	committer datasources.ResultCommitter,
	publisher datasources.ReadModelPublisher,
	compute Command[ComputeRankingsRequest, ComputeRankingsResult],
	metrics RunMetrics,
	config RecomputeRankingsConfig,
) *RecomputeRankings {
	if publisher == nil {
		publisher = datasources.NullReadModelPublisher{}
	}
	return &RecomputeRankings{
		Items:     items,
		Rankings:  rankings,
		Visits:    visits,
		Committer: committer,
		Publisher: publisher,
		Compute:   compute,
		Metrics:   metrics,
		Config:    config,
		Clock:     time.Now,
		NewRunID:  uuid.NewString,
	}
}

// Execute runs one recompute. Configuration errors are returned before any
// storage access; cancellation or storage failure leaves the previously
// committed results in place. Only one run executes at a time; overlapping
// requests fail with domain.ErrRecomputeInProgress.
func (c *RecomputeRankings) Execute(ctx context.Context, req RecomputeRankingsRequest) (domain.RunSummary, error) {
	config := c.Config.Engine
	if req.Config != nil {
		config = *req.Config
	}
	if err := config.Validate(); err != nil {
		return domain.RunSummary{}, err
	}

	if !c.running.TryLock() {
		return domain.RunSummary{}, domain.ErrRecomputeInProgress
	}
	defer c.running.Unlock()

	startedAt := c.Clock()
	if config.Now.IsZero() {
		config.Now = startedAt
	}

	runID := c.NewRunID()
	logger := domain.LoggerFromContext(ctx).With("run_id", runID)
	ctx = domain.ContextWithLogger(domain.ContextWithRunID(ctx, runID), logger)

	logger.InfoContext(ctx, "starting rankings recompute", "reference_time", config.Now)

	summary, err := c.run(ctx, runID, config)
	duration := c.Clock().Sub(startedAt)
	if err != nil {
		status := RunStatusFailure
		if ctx.Err() != nil {
			status = RunStatusCancelled
		}
		c.observe(status, duration, 0, 0)
		return domain.RunSummary{}, err
	}

	summary.StartedAt = startedAt
	summary.Duration = duration

	status := RunStatusSuccess
	if !summary.Clean() {
		status = RunStatusPartial
	}
	c.observe(status, duration, summary.ItemsProcessed, summary.ItemsSkipped)

	logger.InfoContext(ctx, "rankings recompute complete",
		"items_total", summary.ItemsTotal,
		"items_processed", summary.ItemsProcessed,
		"items_skipped", summary.ItemsSkipped,
		"views_written", summary.ViewsWritten,
		"duration", duration)

	return summary, nil
}

func (c *RecomputeRankings) run(ctx context.Context, runID string, config domain.EngineConfig) (domain.RunSummary, error) {
	logger := domain.LoggerFromContext(ctx)

	inputs, err := c.loadInputs(ctx, config.Now.Add(-config.Scoring.RecencyWindow))
	if err != nil {
		return domain.RunSummary{}, fmt.Errorf("loading input snapshot: %w", err)
	}

	result, err := c.Compute.Execute(ctx, ComputeRankingsRequest{
		RunID:  runID,
		Items:  inputs,
		Config: config,
	})
	if err != nil {
		return domain.RunSummary{}, fmt.Errorf("computing rankings: %w", err)
	}

	// Cancellation after computing still discards the run.
	if err := ctx.Err(); err != nil {
		return domain.RunSummary{}, fmt.Errorf("committing results: %w", err)
	}

	if err := c.Committer.CommitResults(ctx, func(ctx context.Context, w datasources.ResultWriter) error {
		return writeResults(ctx, w, result)
	}); err != nil {
		return domain.RunSummary{}, fmt.Errorf("committing results: %w", err)
	}

	if err := c.Publisher.PublishReadModel(ctx, runID, result.Snapshots, result.Views); err != nil {
		logger.WarnContext(ctx, "failed to publish read model, invalidating it", "error", err)
		// The committed run is served from primary storage until the next publish.
		if err := c.Publisher.InvalidateReadModel(context.WithoutCancel(ctx)); err != nil {
			logger.ErrorContext(ctx, "failed to invalidate read model", "error", err)
		}
	}

	return result.Summary, nil
}

// loadInputs fetches every item with its active rankings and windowed visits.
func (c *RecomputeRankings) loadInputs(ctx context.Context, since time.Time) ([]domain.ItemInput, error) {
	items, err := c.Items.ListRankedItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing ranked items: %w", err)
	}

	inputs := make([]domain.ItemInput, len(items))
	grp, grpCtx := errgroup.WithContext(ctx)
	if c.Config.LoadConcurrency > 0 {
		grp.SetLimit(c.Config.LoadConcurrency)
	}

	for i, item := range items {
		grp.Go(func() error {
			rankings, err := c.Rankings.ListActiveRankings(grpCtx, item.ID)
			if err != nil {
				return fmt.Errorf("listing rankings for item %s: %w", item.ID, err)
			}
			visits, err := c.Visits.ListVisits(grpCtx, item.ID, since)
			if err != nil {
				return fmt.Errorf("listing visits for item %s: %w", item.ID, err)
			}
			inputs[i] = domain.ItemInput{Item: item, Rankings: rankings, Visits: visits}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return inputs, nil
}

func writeResults(ctx context.Context, w datasources.ResultWriter, result ComputeRankingsResult) error {
	for _, snapshot := range result.Snapshots {
		if err := w.WriteSnapshot(ctx, snapshot); err != nil {
			return fmt.Errorf("writing snapshot for item %s: %w", snapshot.ItemID, err)
		}
	}

	names := make([]string, 0, len(result.Views))
	for _, view := range result.Views {
		if err := w.WriteView(ctx, view); err != nil {
			return fmt.Errorf("writing view %s: %w", view.Name, err)
		}
		names = append(names, view.Name)
	}

	if err := w.PruneViews(ctx, names); err != nil {
		return fmt.Errorf("pruning stale views: %w", err)
	}
	return nil
}

func (c *RecomputeRankings) observe(status string, duration time.Duration, processed, skipped int) {
	if c.Metrics != nil {
		c.Metrics.ObserveRecomputeRun(status, duration, processed, skipped)
	}
}
