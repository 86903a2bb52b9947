package command

import (
	"context"
	"fmt"
	"time"

	"github.com/makanrank/ranking-engine/internal/datasources"
	"github.com/makanrank/ranking-engine/internal/domain"
)

// RecordVisitRequest is the request for the RecordVisit command.
type RecordVisitRequest struct {
	UserID string
	ItemID string
	// VisitedAt defaults to the current time when zero.
	VisitedAt time.Time
}

// RecordVisit appends a visit event.
type RecordVisit struct {
	Recorder datasources.VisitRecorder
	Clock    func() time.Time
}

// NewRecordVisit creates a properly initialized RecordVisit command.
func NewRecordVisit(recorder datasources.VisitRecorder) *RecordVisit {
	return &RecordVisit{
		Recorder: recorder,
		Clock:    time.Now,
	}
}

// Execute validates and stores the visit. Visits dated before the unix epoch
// or after the current time are rejected.
func (c *RecordVisit) Execute(ctx context.Context, req RecordVisitRequest) (Empty, error) {
	now := c.Clock().UTC()

	visit := domain.VisitEvent{
		UserID:    req.UserID,
		ItemID:    req.ItemID,
		VisitedAt: req.VisitedAt.UTC(),
	}
	if req.VisitedAt.IsZero() {
		visit.VisitedAt = now
	}

	switch {
	case visit.UserID == "":
		return Empty{}, &domain.InputValidationError{ItemID: visit.ItemID, Field: "user_id", Reason: "missing"}
	case visit.ItemID == "":
		return Empty{}, &domain.InputValidationError{UserID: visit.UserID, Field: "item_id", Reason: "missing"}
	case visit.VisitedAt.Unix() < 0:
		return Empty{}, &domain.InputValidationError{
			ItemID: visit.ItemID, UserID: visit.UserID, Field: "visited_at", Reason: "timestamp before unix epoch",
		}
	case visit.VisitedAt.After(now):
		return Empty{}, &domain.InputValidationError{
			ItemID: visit.ItemID, UserID: visit.UserID, Field: "visited_at", Reason: "timestamp in the future",
		}
	}

	if err := c.Recorder.RecordVisit(ctx, visit); err != nil {
		return Empty{}, fmt.Errorf("recording visit: %w", err)
	}

	return Empty{}, nil
}
