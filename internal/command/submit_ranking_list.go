package command

import (
	"context"
	"fmt"
	"time"

	"github.com/makanrank/ranking-engine/internal/datasources"
	"github.com/makanrank/ranking-engine/internal/domain"
)

// RankingListEntry places one item within a submitted list.
type RankingListEntry struct {
	ItemID   string `json:"item_id"`
	Position int    `json:"position"`
}

// SubmitRankingListRequest is the request for the SubmitRankingList command.
type SubmitRankingListRequest struct {
	UserID   string
	Category string
	Entries  []RankingListEntry
}

// SubmitRankingList replaces a user's personal top-10 list for a category.
// Resubmitting an item updates its ranking rather than adding a second one.
type SubmitRankingList struct {
	Replacer datasources.UserRankingReplacer
	Clock    func() time.Time
}

// NewSubmitRankingList creates a properly initialized SubmitRankingList command.
func NewSubmitRankingList(replacer datasources.UserRankingReplacer) *SubmitRankingList {
	return &SubmitRankingList{
		Replacer: replacer,
		Clock:    time.Now,
	}
}

// Execute validates the list and stores it. Validation failures are returned
// as *domain.InputValidationError.
func (c *SubmitRankingList) Execute(ctx context.Context, req SubmitRankingListRequest) (Empty, error) {
	if err := validateRankingList(req); err != nil {
		return Empty{}, err
	}

	updatedAt := c.Clock().UTC()
	rankings := make([]domain.UserRanking, 0, len(req.Entries))
	for _, e := range req.Entries {
		rankings = append(rankings, domain.UserRanking{
			UserID:    req.UserID,
			ItemID:    e.ItemID,
			Category:  req.Category,
			Position:  e.Position,
			UpdatedAt: updatedAt,
		})
	}

	if err := c.Replacer.ReplaceUserRankings(ctx, req.UserID, req.Category, rankings); err != nil {
		return Empty{}, fmt.Errorf("replacing user rankings: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "replaced user ranking list",
		"user_id", req.UserID, "category", req.Category, "entries", len(rankings))

	return Empty{}, nil
}

func validateRankingList(req SubmitRankingListRequest) error {
	if req.UserID == "" {
		return &domain.InputValidationError{Field: "user_id", Reason: "missing"}
	}
	if req.Category == "" {
		return &domain.InputValidationError{UserID: req.UserID, Field: "category", Reason: "missing"}
	}
	if len(req.Entries) > domain.MaxListLength {
		return &domain.InputValidationError{
			UserID: req.UserID,
			Field:  "entries",
			Reason: fmt.Sprintf("list holds at most %d items", domain.MaxListLength),
		}
	}

	positions := make(map[int]struct{}, len(req.Entries))
	items := make(map[string]struct{}, len(req.Entries))
	for _, e := range req.Entries {
		if e.ItemID == "" {
			return &domain.InputValidationError{UserID: req.UserID, Field: "item_id", Reason: "missing"}
		}
		if !domain.ValidPosition(e.Position) {
			return &domain.InputValidationError{
				ItemID: e.ItemID, UserID: req.UserID, Field: "position", Reason: "position outside 1..10",
			}
		}
		if _, dup := positions[e.Position]; dup {
			return &domain.InputValidationError{
				ItemID: e.ItemID, UserID: req.UserID, Field: "position", Reason: fmt.Sprintf("position %d used twice", e.Position),
			}
		}
		if _, dup := items[e.ItemID]; dup {
			return &domain.InputValidationError{
				ItemID: e.ItemID, UserID: req.UserID, Field: "item_id", Reason: "item listed twice",
			}
		}
		positions[e.Position] = struct{}{}
		items[e.ItemID] = struct{}{}
	}
	return nil
}
