package command

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/makanrank/ranking-engine/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ComputeRankingsRequest is the input snapshot for one recompute run.
type ComputeRankingsRequest struct {
	RunID  string
	Items  []domain.ItemInput
	Config domain.EngineConfig
}

// ComputeRankingsResult is the complete output of one run. Snapshots are in
// combined-score leaderboard order.
type ComputeRankingsResult struct {
	Snapshots []domain.ItemScoreSnapshot
	Views     []domain.ClassifiedView
	Summary   domain.RunSummary
}

// ComputeRankings scores every item of an input snapshot in parallel, merges
// the results into a leaderboard and derives the classified views.
// It performs no I/O and may be called from a batch job or a scheduler alike.
type ComputeRankings struct {
	// Clock supplies the reference time when the config leaves Now unset.
	Clock func() time.Time
}

// NewComputeRankings creates a properly initialized ComputeRankings command.
func NewComputeRankings() *ComputeRankings {
	return &ComputeRankings{Clock: time.Now}
}

type workerOutput struct {
	snapshots []domain.ItemScoreSnapshot
	skipped   []domain.SkippedItem
}

// Execute validates the configuration, then scores every item. Malformed items
// are skipped and reported in the summary. If ctx is cancelled the partial
// results are discarded and the context error is returned.
func (c *ComputeRankings) Execute(ctx context.Context, req ComputeRankingsRequest) (ComputeRankingsResult, error) {
	logger := domain.LoggerFromContext(ctx)

	config := req.Config
	if err := config.Validate(); err != nil {
		return ComputeRankingsResult{}, err
	}

	startedAt := c.now()
	now := config.Now
	if now.IsZero() {
		now = startedAt
	}

	chunks := partition(req.Items, workerCount(config.Workers, len(req.Items)))
	outputs := make([]workerOutput, len(chunks))

	grp, grpCtx := errgroup.WithContext(ctx)
	for w, chunk := range chunks {
		grp.Go(func() error {
			out := &outputs[w]
			for _, in := range chunk {
				if err := grpCtx.Err(); err != nil {
					return err
				}

				snapshot, err := domain.ScoreItem(in, config.Scoring, now)
				if err != nil {
					var ive *domain.InputValidationError
					if errors.As(err, &ive) {
						out.skipped = append(out.skipped, domain.SkippedItem{ItemID: in.Item.ID, Reason: err.Error()})
						continue
					}
					return fmt.Errorf("scoring item %s: %w", in.Item.ID, err)
				}
				out.snapshots = append(out.snapshots, snapshot)
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return ComputeRankingsResult{}, fmt.Errorf("computing item scores: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return ComputeRankingsResult{}, fmt.Errorf("computing item scores: %w", err)
	}

	snapshots := make([]domain.ItemScoreSnapshot, 0, len(req.Items))
	var skipped []domain.SkippedItem
	for _, out := range outputs {
		snapshots = append(snapshots, out.snapshots...)
		skipped = append(skipped, out.skipped...)
	}

	slices.SortFunc(skipped, func(a, b domain.SkippedItem) int {
		return cmp.Compare(a.ItemID, b.ItemID)
	})
	for _, s := range skipped {
		logger.WarnContext(ctx, "skipping malformed item", "item_id", s.ItemID, "reason", s.Reason)
	}

	domain.SortSnapshots(snapshots, domain.SortByCombined)
	views := domain.Classify(snapshots, config.Classifier, now)

	summary := domain.RunSummary{
		RunID:          req.RunID,
		StartedAt:      startedAt,
		ComputedAt:     now,
		Duration:       c.now().Sub(startedAt),
		ItemsTotal:     len(req.Items),
		ItemsProcessed: len(snapshots),
		ItemsSkipped:   len(skipped),
		Skipped:        skipped,
		ViewsWritten:   len(views),
	}

	logger.DebugContext(ctx, "computed rankings",
		"items_processed", summary.ItemsProcessed,
		"items_skipped", summary.ItemsSkipped,
		"views", summary.ViewsWritten)

	return ComputeRankingsResult{
		Snapshots: snapshots,
		Views:     views,
		Summary:   summary,
	}, nil
}

func (c *ComputeRankings) now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}

// workerCount resolves the configured worker count against the item count.
func workerCount(configured, items int) int {
	workers := configured
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return max(min(workers, items), 1)
}

// partition splits items into n contiguous chunks of near-equal size.
func partition[T any](items []T, n int) [][]T {
	if len(items) == 0 {
		return nil
	}

	chunks := make([][]T, 0, n)
	size := (len(items) + n - 1) / n
	for start := 0; start < len(items); start += size {
		chunks = append(chunks, items[start:min(start+size, len(items))])
	}
	return chunks
}
