package datasources

import (
	"context"
	"time"

	"github.com/makanrank/ranking-engine/internal/domain"
)

// ItemLister lists every rankable item together with its locality.
type ItemLister interface {
	ListRankedItems(ctx context.Context) ([]domain.RankedItem, error)
}

// ActiveRankingLister lists the active rankings for one item.
type ActiveRankingLister interface {
	ListActiveRankings(ctx context.Context, itemID string) ([]domain.UserRanking, error)
}

// VisitLister lists visits to one item at or after since.
type VisitLister interface {
	ListVisits(ctx context.Context, itemID string, since time.Time) ([]domain.VisitEvent, error)
}
