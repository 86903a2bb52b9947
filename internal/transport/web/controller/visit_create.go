package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/makanrank/ranking-engine/internal/command"
	"github.com/makanrank/ranking-engine/internal/domain"
)

type VisitCreate struct {
	RecordCmd command.Command[command.RecordVisitRequest, command.Empty]
}

type VisitCreateRequest struct {
	UserID string `json:"user_id"`
	// VisitedAt is optional and defaults to the time the request is handled.
	VisitedAt *time.Time `json:"visited_at,omitempty"`
}

func (c VisitCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["item_id"]
	logger := domain.LoggerFromContext(r.Context()).With("item_id", itemID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	var body VisitCreateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to decode visit", "error", err)
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	req := command.RecordVisitRequest{UserID: body.UserID, ItemID: itemID}
	if body.VisitedAt != nil {
		req.VisitedAt = *body.VisitedAt
	}

	_, err := c.RecordCmd.Execute(ctx, req)
	writeIngestionResult(w, r, err)
}
