package datasources

import (
	"context"
	"errors"
	"fmt"

	"github.com/makanrank/ranking-engine/internal/domain"
)

// ErrReadModelNotPublished is returned by a secondary read model that holds no
// published run. It wraps domain.ErrNotFound.
var ErrReadModelNotPublished = fmt.Errorf("read model not published: %w", domain.ErrNotFound)

// LeaderboardReader serves pages of the current snapshot set in leaderboard order.
type LeaderboardReader interface {
	ListLeaderboard(ctx context.Context, key domain.SortKey, page, pageSize int) ([]domain.ItemScoreSnapshot, error)
}

// ViewReader fetches a stored classified view by name, returning
// domain.ErrNotFound if no such view exists.
type ViewReader interface {
	GetView(ctx context.Context, name string) (domain.ClassifiedView, error)
}

// ReadModel combines the read-side interfaces.
type ReadModel interface {
	LeaderboardReader
	ViewReader
}

// ReadModelPublisher pushes a complete run's output to a secondary read model.
// InvalidateReadModel withdraws the published run so readers stop serving it
// until the next successful publish.
type ReadModelPublisher interface {
	PublishReadModel(
		ctx context.Context,
		runID string,
		snapshots []domain.ItemScoreSnapshot,
		views []domain.ClassifiedView,
	) error
	InvalidateReadModel(ctx context.Context) error
}

// NullReadModelPublisher discards everything published to it.
type NullReadModelPublisher struct{}

var _ ReadModelPublisher = NullReadModelPublisher{}

func (NullReadModelPublisher) PublishReadModel(
	_ context.Context,
	_ string,
	_ []domain.ItemScoreSnapshot,
	_ []domain.ClassifiedView,
) error {
	return nil
}

func (NullReadModelPublisher) InvalidateReadModel(context.Context) error {
	return nil
}

// FallbackReadModel serves reads from Primary, falling back to Fallback only
// when Primary has no published run. A record missing from Primary's published
// run is reported as not found rather than read from Fallback, so a response
// never combines two runs.
type FallbackReadModel struct {
	Primary  ReadModel
	Fallback ReadModel
}

var _ ReadModel = FallbackReadModel{}

func (m FallbackReadModel) ListLeaderboard(
	ctx context.Context, key domain.SortKey, page, pageSize int,
) ([]domain.ItemScoreSnapshot, error) {
	snapshots, err := m.Primary.ListLeaderboard(ctx, key, page, pageSize)
	if errors.Is(err, ErrReadModelNotPublished) {
		return m.Fallback.ListLeaderboard(ctx, key, page, pageSize)
	}
	return snapshots, err
}

func (m FallbackReadModel) GetView(ctx context.Context, name string) (domain.ClassifiedView, error) {
	view, err := m.Primary.GetView(ctx, name)
	if errors.Is(err, ErrReadModelNotPublished) {
		return m.Fallback.GetView(ctx, name)
	}
	return view, err
}
