package datasources

import (
	"context"

	"github.com/makanrank/ranking-engine/internal/domain"
)

// ResultWriter is the engine's output contract. Both writes are upserts.
type ResultWriter interface {
	WriteSnapshot(ctx context.Context, snapshot domain.ItemScoreSnapshot) error
	WriteView(ctx context.Context, view domain.ClassifiedView) error
	// PruneViews removes every stored view whose name is not in keep.
	PruneViews(ctx context.Context, keep []string) error
}

// ResultCommitter runs fn against a ResultWriter as one atomic unit: readers
// see either none or all of its writes. An error from fn discards everything.
type ResultCommitter interface {
	CommitResults(ctx context.Context, fn func(ctx context.Context, w ResultWriter) error) error
}
