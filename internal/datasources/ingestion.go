package datasources

import (
	"context"

	"github.com/makanrank/ranking-engine/internal/domain"
)

// UserRankingReplacer replaces a user's personal list for a category with the
// given rankings. Items missing from the new list are no longer active.
type UserRankingReplacer interface {
	ReplaceUserRankings(ctx context.Context, userID, category string, rankings []domain.UserRanking) error
}

// VisitRecorder appends a visit.
type VisitRecorder interface {
	RecordVisit(ctx context.Context, visit domain.VisitEvent) error
}
