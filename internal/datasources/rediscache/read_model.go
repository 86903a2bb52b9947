// Package rediscache holds the cached read model. Each recompute run is written
// under its own generation of keys and becomes visible when the current
// pointer is switched to it.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/makanrank/ranking-engine/internal/datasources"
	"github.com/makanrank/ranking-engine/internal/domain"
	"github.com/redis/go-redis/v9"
)

const DefaultKeyPrefix = "rankings"

var (
	_ datasources.ReadModel          = (*ReadModel)(nil)
	_ datasources.ReadModelPublisher = (*ReadModel)(nil)
)

type ReadModel struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// New creates a ReadModel. Generations expire after ttl; it should comfortably
// exceed the recompute interval. A zero ttl keeps generations forever.
func New(client redis.UniversalClient, prefix string, ttl time.Duration) *ReadModel {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &ReadModel{client: client, prefix: prefix, ttl: ttl}
}

func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("checking Redis connection: %w", err)
	}
	return client, nil
}

func (m *ReadModel) currentKey() string {
	return m.prefix + ":current"
}

func (m *ReadModel) leaderboardKey(runID string, key domain.SortKey) string {
	return fmt.Sprintf("%s:%s:leaderboard:%s", m.prefix, runID, key)
}

func (m *ReadModel) viewKey(runID, name string) string {
	return fmt.Sprintf("%s:%s:view:%s", m.prefix, runID, name)
}

// PublishReadModel writes a run's leaderboards and views under a fresh
// generation and switches the current pointer to it in the same transaction.
func (m *ReadModel) PublishReadModel(
	ctx context.Context,
	runID string,
	snapshots []domain.ItemScoreSnapshot,
	views []domain.ClassifiedView,
) error {
	boards := make(map[domain.SortKey][]any, len(domain.ValidSortKeys))
	for _, key := range domain.ValidSortKeys {
		sorted := domain.Leaderboard(snapshots, key)
		encoded := make([]any, 0, len(sorted))
		for _, s := range sorted {
			b, err := json.Marshal(s)
			if err != nil {
				return fmt.Errorf("encoding snapshot for item %s: %w", s.ItemID, err)
			}
			encoded = append(encoded, b)
		}
		boards[key] = encoded
	}

	encodedViews := make(map[string][]byte, len(views))
	for _, view := range views {
		b, err := json.Marshal(view)
		if err != nil {
			return fmt.Errorf("encoding view %s: %w", view.Name, err)
		}
		encodedViews[view.Name] = b
	}

	_, err := m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, encoded := range boards {
			listKey := m.leaderboardKey(runID, key)
			pipe.Del(ctx, listKey)
			if len(encoded) > 0 {
				pipe.RPush(ctx, listKey, encoded...)
				if m.ttl > 0 {
					pipe.Expire(ctx, listKey, m.ttl)
				}
			}
		}
		for name, b := range encodedViews {
			pipe.Set(ctx, m.viewKey(runID, name), b, m.ttl)
		}
		pipe.Set(ctx, m.currentKey(), runID, m.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("publishing generation %s: %w", runID, err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "published read model",
		"generation", runID, "snapshots", len(snapshots), "views", len(views))
	return nil
}

// InvalidateReadModel removes the current pointer. Generation keys are left
// to expire.
func (m *ReadModel) InvalidateReadModel(ctx context.Context) error {
	if err := m.client.Del(ctx, m.currentKey()).Err(); err != nil {
		return fmt.Errorf("removing current generation: %w", err)
	}
	return nil
}

func (m *ReadModel) currentGeneration(ctx context.Context) (string, error) {
	runID, err := m.client.Get(ctx, m.currentKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "", datasources.ErrReadModelNotPublished
	}
	if err != nil {
		return "", fmt.Errorf("reading current generation: %w", err)
	}
	return runID, nil
}

// ListLeaderboard returns datasources.ErrReadModelNotPublished when no
// generation is published or the current generation's lists are gone.
func (m *ReadModel) ListLeaderboard(
	ctx context.Context, key domain.SortKey, page, pageSize int,
) ([]domain.ItemScoreSnapshot, error) {
	runID, err := m.currentGeneration(ctx)
	if err != nil {
		return nil, err
	}

	if pageSize < 1 {
		return []domain.ItemScoreSnapshot{}, nil
	}
	start, stop := pageRange(page, pageSize)
	listKey := m.leaderboardKey(runID, key)

	var length *redis.IntCmd
	var values *redis.StringSliceCmd
	if _, err := m.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		length = pipe.LLen(ctx, listKey)
		values = pipe.LRange(ctx, listKey, start, stop)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("reading leaderboard: %w", err)
	}

	if length.Val() == 0 {
		return nil, datasources.ErrReadModelNotPublished
	}

	snapshots := make([]domain.ItemScoreSnapshot, 0, len(values.Val()))
	for _, raw := range values.Val() {
		var s domain.ItemScoreSnapshot
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return nil, fmt.Errorf("decoding snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}

// GetView returns datasources.ErrReadModelNotPublished when no generation is
// published and domain.ErrNotFound when the current generation lacks the view.
func (m *ReadModel) GetView(ctx context.Context, name string) (domain.ClassifiedView, error) {
	runID, err := m.currentGeneration(ctx)
	if err != nil {
		return domain.ClassifiedView{}, err
	}

	raw, err := m.client.Get(ctx, m.viewKey(runID, name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ClassifiedView{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.ClassifiedView{}, fmt.Errorf("reading view: %w", err)
	}

	var view domain.ClassifiedView
	if err := json.Unmarshal(raw, &view); err != nil {
		return domain.ClassifiedView{}, fmt.Errorf("decoding view: %w", err)
	}
	return view, nil
}

// pageRange converts a 1-based page into an inclusive LRANGE range.
func pageRange(page, pageSize int) (start, stop int64) {
	if page < 1 {
		page = 1
	}
	start = int64(page-1) * int64(pageSize)
	return start, start + int64(pageSize) - 1
}
