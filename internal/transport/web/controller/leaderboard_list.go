package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/makanrank/ranking-engine/internal/datasources"
	"github.com/makanrank/ranking-engine/internal/domain"
)

type LeaderboardList struct {
	Reader      datasources.LeaderboardReader
	CacheMaxAge time.Duration
}

type LeaderboardListResponse struct {
	Data     []domain.ItemScoreSnapshot `json:"data"`
	Metadata LeaderboardListMetadata    `json:"metadata"`
}

type LeaderboardListMetadata struct {
	Sort     domain.SortKey `json:"sort"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

func (c LeaderboardList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	q := r.URL.Query()

	key, err := domain.ParseSortKey(q.Get("sort"))
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse sort key in query string", "error", err)
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	page, pageSize, err := parsePagination(q)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	snapshots, err := c.Reader.ListLeaderboard(ctx, key, page, pageSize)
	if errors.Is(err, domain.ErrNotFound) {
		snapshots = []domain.ItemScoreSnapshot{}
	} else if err != nil {
		logger.ErrorContext(ctx, "unable to fetch leaderboard", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cacheControl(w, c.CacheMaxAge)
	writeJSON(w, r, http.StatusOK, LeaderboardListResponse{
		Data: snapshots,
		Metadata: LeaderboardListMetadata{
			Sort:     key,
			Page:     page,
			PageSize: pageSize,
		},
	})
}
