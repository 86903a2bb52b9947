package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/makanrank/ranking-engine/internal/command"
	"github.com/makanrank/ranking-engine/internal/domain"
)

// RankingListPut replaces a user's list for a category with the JSON array of
// {item_id, position} entries in the request body.
type RankingListPut struct {
	SubmitCmd command.Command[command.SubmitRankingListRequest, command.Empty]
}

func (c RankingListPut) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	logger := domain.LoggerFromContext(r.Context()).With("user_id", vars["user_id"], "category", vars["category"])
	ctx := domain.ContextWithLogger(r.Context(), logger)

	var entries []command.RankingListEntry
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&entries); err != nil {
		logger.ErrorContext(ctx, "unable to decode ranking list", "error", err)
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	_, err := c.SubmitCmd.Execute(ctx, command.SubmitRankingListRequest{
		UserID:   vars["user_id"],
		Category: vars["category"],
		Entries:  entries,
	})
	writeIngestionResult(w, r, err)
}

func writeIngestionResult(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	var validationErr *domain.InputValidationError
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.As(err, &validationErr):
		writeError(w, r, http.StatusBadRequest, err)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err)
	default:
		domain.LoggerFromContext(ctx).ErrorContext(ctx, "unable to store submission", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
