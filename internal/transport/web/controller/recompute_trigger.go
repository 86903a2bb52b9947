package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/makanrank/ranking-engine/internal/command"
	"github.com/makanrank/ranking-engine/internal/domain"
)

// RecomputeTrigger runs a recompute synchronously and responds with its summary.
// Query parameters override the configured tunables for this run only.
type RecomputeTrigger struct {
	Recompute command.Command[command.RecomputeRankingsRequest, domain.RunSummary]
	Defaults  domain.EngineConfig
}

func (c RecomputeTrigger) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	override, err := parseEngineOverrides(r.URL.Query(), c.Defaults)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse recompute overrides", "error", err)
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	summary, err := c.Recompute.Execute(ctx, command.RecomputeRankingsRequest{Config: override})

	var configErr *domain.ConfigurationError
	switch {
	case err == nil:
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, r, http.StatusOK, summary)
	case errors.As(err, &configErr):
		writeError(w, r, http.StatusBadRequest, err)
	case errors.Is(err, domain.ErrRecomputeInProgress):
		writeError(w, r, http.StatusConflict, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.WarnContext(ctx, "recompute cancelled", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
	default:
		logger.ErrorContext(ctx, "recompute failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
