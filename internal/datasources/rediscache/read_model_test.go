package rediscache

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/makanrank/ranking-engine/internal/datasources"
	"github.com/makanrank/ranking-engine/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestPageRange(t *testing.T) {
	cases := []struct {
		name           string
		page, pageSize int
		expectedStart  int64
		expectedStop   int64
	}{
		{name: "first_page", page: 1, pageSize: 50, expectedStart: 0, expectedStop: 49},
		{name: "second_page", page: 2, pageSize: 10, expectedStart: 10, expectedStop: 19},
		{name: "zero_page_is_first", page: 0, pageSize: 10, expectedStart: 0, expectedStop: 9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, stop := pageRange(tc.page, tc.pageSize)
			assert.Equal(t, tc.expectedStart, start)
			assert.Equal(t, tc.expectedStop, stop)
		})
	}
}

func TestReadModel_Keys(t *testing.T) {
	m := New(nil, "", time.Hour)

	assert.Equal(t, "rankings:current", m.currentKey())
	assert.Equal(t, "rankings:run-1:leaderboard:frequency", m.leaderboardKey("run-1", domain.SortByFrequency))
	assert.Equal(t, "rankings:run-1:view:local-favorites/Bangsar",
		m.viewKey("run-1", domain.LocalFavoritesViewName("Bangsar")))
}

func testClient(t *testing.T) *redis.Client {
	if testing.Short() {
		t.Skip("skipping Redis integration tests in short mode")
	}
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := Connect(ctx, addr, os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		t.Skip("Redis not available, skipping integration test")
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestReadModel_PublishAndRead(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()
	prefix := "test-rankings-" + strconv.FormatInt(time.Now().UnixNano(), 10)
	m := New(client, prefix, time.Minute)

	_, err := m.GetView(ctx, domain.HiddenGemsViewName)
	require.ErrorIs(t, err, datasources.ErrReadModelNotPublished)

	snapshots := []domain.ItemScoreSnapshot{
		{ItemID: "a", RankingScore: 9, FrequencyScore: 1, CombinedScore: 5, VoterCount: 2, ComputedAt: testNow},
		{ItemID: "b", RankingScore: 2, FrequencyScore: 10, CombinedScore: 6, VoterCount: 1, ComputedAt: testNow},
		{ItemID: "c", RankingScore: 4, FrequencyScore: 4, CombinedScore: 4, ComputedAt: testNow},
	}
	views := domain.Classify(snapshots, domain.DefaultClassifierConfig(), testNow)

	require.NoError(t, m.PublishReadModel(ctx, "gen-1", snapshots, views))

	board, err := m.ListLeaderboard(ctx, domain.SortByCombined, 1, 2)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "b", board[0].ItemID)
	assert.Equal(t, "a", board[1].ItemID)
	assert.True(t, testNow.Equal(board[0].ComputedAt))

	board, err = m.ListLeaderboard(ctx, domain.SortByRanking, 2, 2)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, "b", board[0].ItemID)

	gems, err := m.GetView(ctx, domain.HiddenGemsViewName)
	require.NoError(t, err)
	require.Len(t, gems.Entries, 1)
	assert.Equal(t, "b", gems.Entries[0].ItemID)

	_, err = m.GetView(ctx, domain.LocalFavoritesViewName("nowhere"))
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, datasources.ErrReadModelNotPublished)

	// The next generation replaces the previous one wholesale.
	require.NoError(t, m.PublishReadModel(ctx, "gen-2", nil, nil))

	_, err = m.ListLeaderboard(ctx, domain.SortByCombined, 1, 10)
	assert.ErrorIs(t, err, datasources.ErrReadModelNotPublished)
	_, err = m.GetView(ctx, domain.HiddenGemsViewName)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReadModel_InvalidateReadModel(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()
	prefix := "test-rankings-" + strconv.FormatInt(time.Now().UnixNano(), 10)
	m := New(client, prefix, time.Minute)

	snapshots := []domain.ItemScoreSnapshot{{ItemID: "a", CombinedScore: 5, ComputedAt: testNow}}
	views := domain.Classify(snapshots, domain.DefaultClassifierConfig(), testNow)
	require.NoError(t, m.PublishReadModel(ctx, "gen-1", snapshots, views))

	require.NoError(t, m.InvalidateReadModel(ctx))

	_, err := m.ListLeaderboard(ctx, domain.SortByCombined, 1, 10)
	assert.ErrorIs(t, err, datasources.ErrReadModelNotPublished)
	_, err = m.GetView(ctx, domain.HiddenGemsViewName)
	assert.ErrorIs(t, err, datasources.ErrReadModelNotPublished)

	// Invalidating an already cold cache is not an error.
	require.NoError(t, m.InvalidateReadModel(ctx))
}
