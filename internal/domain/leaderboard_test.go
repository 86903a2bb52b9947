package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotIDs(snapshots []ItemScoreSnapshot) []string {
	ids := make([]string, 0, len(snapshots))
	for _, s := range snapshots {
		ids = append(ids, s.ItemID)
	}
	return ids
}

func TestLeaderboard(t *testing.T) {
	snapshots := []ItemScoreSnapshot{
		{ItemID: "c", RankingScore: 9, FrequencyScore: 1, CombinedScore: 5, VoterCount: 3},
		{ItemID: "a", RankingScore: 2, FrequencyScore: 8, CombinedScore: 5, VoterCount: 3},
		{ItemID: "b", RankingScore: 4, FrequencyScore: 6, CombinedScore: 5, VoterCount: 7},
		{ItemID: "d", RankingScore: 0, FrequencyScore: 0, CombinedScore: 0},
	}

	cases := []struct {
		name     string
		key      SortKey
		expected []string
	}{
		{name: "combined_ties_by_voters_then_id", key: SortByCombined, expected: []string{"b", "a", "c", "d"}},
		{name: "ranking", key: SortByRanking, expected: []string{"c", "b", "a", "d"}},
		{name: "frequency", key: SortByFrequency, expected: []string{"a", "b", "c", "d"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, snapshotIDs(Leaderboard(snapshots, tc.key)))
		})
	}

	assert.Equal(t, []string{"c", "a", "b", "d"}, snapshotIDs(snapshots), "input must not be reordered")
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortByCombined, key)

	key, err = ParseSortKey("frequency")
	require.NoError(t, err)
	assert.Equal(t, SortByFrequency, key)

	_, err = ParseSortKey("alphabetical")
	assert.Error(t, err)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, 1, 2))
	assert.Equal(t, []int{5}, Paginate(items, 3, 2))
	assert.Equal(t, []int{}, Paginate(items, 4, 2))
	assert.Equal(t, []int{}, Paginate(items, 0, 2))
}
