package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/makanrank/ranking-engine/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
	maxPageSize     = 200

	maxBodyBytes = 1 << 20
)

func parsePagination(q url.Values) (page, pageSize int, err error) {
	page = defaultPage
	pageSize = defaultPageSize

	if q.Has("page") {
		p, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if p < 1 {
			return 0, 0, fmt.Errorf("invalid page value [%d]", p)
		}
		page = int(p)
	}

	if q.Has("page_size") {
		ps, err := strconv.ParseInt(q.Get("page_size"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse page size from query: %w", err)
		}
		if ps > maxPageSize {
			return 0, 0, fmt.Errorf("page size [%d] exceeds limit [%d]", ps, maxPageSize)
		}
		if ps < 1 {
			return 0, 0, fmt.Errorf("invalid page size value [%d]", ps)
		}
		pageSize = int(ps)
	}

	return page, pageSize, nil
}

// parseEngineOverrides applies any per-run override query parameters to
// defaults. It returns nil if the query names none.
func parseEngineOverrides(q url.Values, defaults domain.EngineConfig) (*domain.EngineConfig, error) {
	config := defaults
	overridden := false

	set := func(name string, parse func(string) error) error {
		if !q.Has(name) {
			return nil
		}
		overridden = true
		if err := parse(q.Get(name)); err != nil {
			return &domain.ConfigurationError{Field: name, Reason: fmt.Sprintf("cannot parse %q", q.Get(name))}
		}
		return nil
	}

	for _, p := range []struct {
		name  string
		parse func(string) error
	}{
		{"now", func(s string) (err error) { config.Now, err = time.Parse(time.RFC3339, s); return err }},
		{"recency_window", func(s string) (err error) { config.Scoring.RecencyWindow, err = time.ParseDuration(s); return err }},
		{"saturation", floatInto(&config.Scoring.Saturation)},
		{"hidden_gem_frequency_threshold", floatInto(&config.Classifier.HiddenGemFrequencyThreshold)},
		{"hidden_gem_ranking_ceiling", floatInto(&config.Classifier.HiddenGemRankingCeiling)},
		{"local_favorites_top_n", intInto(&config.Classifier.LocalFavoritesTopN)},
		{"hidden_gems_top_n", intInto(&config.Classifier.HiddenGemsTopN)},
		{"workers", intInto(&config.Workers)},
	} {
		if err := set(p.name, p.parse); err != nil {
			return nil, err
		}
	}

	if !overridden {
		return nil, nil
	}
	return &config, nil
}

func floatInto(dst *float64) func(string) error {
	return func(s string) (err error) {
		*dst, err = strconv.ParseFloat(s, 64)
		return err
	}
}

func intInto(dst *int) func(string) error {
	return func(s string) (err error) {
		*dst, err = strconv.Atoi(s)
		return err
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

func cacheControl(w http.ResponseWriter, maxAge time.Duration) {
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(maxAge.Seconds())))
}
