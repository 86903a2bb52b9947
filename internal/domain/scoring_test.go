package domain

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankingsAt(itemID string, positions ...int) []UserRanking {
	rankings := make([]UserRanking, 0, len(positions))
	for i, p := range positions {
		rankings = append(rankings, UserRanking{
			UserID:   fmt.Sprintf("user%d", i),
			ItemID:   itemID,
			Position: p,
		})
	}
	return rankings
}

func TestRankingPoints(t *testing.T) {
	cases := []struct {
		position int
		expected int
	}{
		{position: 1, expected: 10},
		{position: 2, expected: 9},
		{position: 10, expected: 1},
		{position: 0, expected: 0},
		{position: 11, expected: 0},
		{position: 99, expected: 0},
		{position: -3, expected: 0},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("position_%d", tc.position), func(t *testing.T) {
			assert.Equal(t, tc.expected, RankingPoints(tc.position))
		})
	}
}

func TestComputeRankingScore(t *testing.T) {
	cases := []struct {
		name          string
		rankings      []UserRanking
		expectedScore float64
		expectedVotes int
	}{
		{
			name:          "no_rankings_scores_zero",
			rankings:      nil,
			expectedScore: 0,
			expectedVotes: 0,
		},
		{
			name:          "single_first_place_is_perfect",
			rankings:      rankingsAt("x", 1),
			expectedScore: 10,
			expectedVotes: 1,
		},
		{
			// points = [10, 10, 9], weight = ln(4)
			// raw = 29 * ln(4), max = 10 * 3 * ln(4), score = 29/30 * 10
			name:          "hand_computed_three_voters",
			rankings:      rankingsAt("x", 1, 1, 2),
			expectedScore: 9.667,
			expectedVotes: 3,
		},
		{
			name:          "single_last_place",
			rankings:      rankingsAt("x", 10),
			expectedScore: 1,
			expectedVotes: 1,
		},
		{
			name:          "mixed_positions",
			rankings:      rankingsAt("x", 1, 5, 10),
			expectedScore: 5.667, // (10 + 6 + 1) / 30 * 10
			expectedVotes: 3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ComputeRankingScore(tc.rankings)
			require.NoError(t, err)
			assert.InDelta(t, tc.expectedScore, result.Score, 0.001)
			assert.Equal(t, tc.expectedVotes, result.VoterCount)
		})
	}
}

func TestComputeRankingScore_InvalidPosition(t *testing.T) {
	cases := []struct {
		name     string
		position int
	}{
		{name: "above_range", position: 99},
		{name: "zero", position: 0},
		{name: "negative", position: -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rankings := append(rankingsAt("x", 1, 2), UserRanking{UserID: "bad", ItemID: "x", Position: tc.position})

			_, err := ComputeRankingScore(rankings)
			require.Error(t, err)

			var ive *InputValidationError
			require.ErrorAs(t, err, &ive)
			assert.Equal(t, "position", ive.Field)
			assert.Equal(t, "bad", ive.UserID)
		})
	}
}

func TestComputeRankingScore_MissingUser(t *testing.T) {
	_, err := ComputeRankingScore([]UserRanking{{ItemID: "x", Position: 1}})

	var ive *InputValidationError
	require.ErrorAs(t, err, &ive)
	assert.Equal(t, "user_id", ive.Field)
}

func TestComputeRankingScore_DuplicateUserLatestWins(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rankings := []UserRanking{
		{UserID: "u1", ItemID: "x", Position: 10, UpdatedAt: t0.Add(time.Hour)},
		{UserID: "u1", ItemID: "x", Position: 1, UpdatedAt: t0},
	}

	result, err := ComputeRankingScore(rankings)
	require.NoError(t, err)
	assert.Equal(t, 1, result.VoterCount)
	assert.InDelta(t, 1.0, result.Score, 0.001)
}

func TestComputeRankingScore_SupersededInvalidRankingIgnored(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		rankings  []UserRanking
		expectErr bool
	}{
		{
			name: "stale_invalid_replaced_by_valid",
			rankings: []UserRanking{
				{UserID: "u1", ItemID: "x", Position: 99, UpdatedAt: t0.Add(-time.Hour)},
				{UserID: "u1", ItemID: "x", Position: 1, UpdatedAt: t0},
			},
		},
		{
			name: "valid_replaced_by_newer_invalid",
			rankings: []UserRanking{
				{UserID: "u1", ItemID: "x", Position: 1, UpdatedAt: t0.Add(-time.Hour)},
				{UserID: "u1", ItemID: "x", Position: 99, UpdatedAt: t0},
			},
			expectErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ComputeRankingScore(tc.rankings)
			if tc.expectErr {
				var ive *InputValidationError
				require.ErrorAs(t, err, &ive)
				assert.Equal(t, "position", ive.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, result.VoterCount)
			assert.InDelta(t, MaxScore, result.Score, 0.001)
		})
	}
}

func TestComputeRankingScore_Monotonic(t *testing.T) {
	others := []int{3, 7, 2, 9}

	for _, from := range []int{5, 4, 3, 2} {
		before, err := ComputeRankingScore(append(rankingsAt("x", others...), UserRanking{UserID: "mover", Position: from}))
		require.NoError(t, err)

		after, err := ComputeRankingScore(append(rankingsAt("x", others...), UserRanking{UserID: "mover", Position: 1}))
		require.NoError(t, err)

		assert.GreaterOrEqual(t, after.Score, before.Score, "moving from %d to 1 decreased score", from)
	}
}

func TestComputeRankingScore_UnanimousFirstPlaceRanksLargerPopulationFirst(t *testing.T) {
	positions := func(n int) []int {
		p := make([]int, n)
		for i := range p {
			p[i] = 1
		}
		return p
	}

	popular, err := ComputeRankingScore(rankingsAt("popular", positions(50)...))
	require.NoError(t, err)
	niche, err := ComputeRankingScore(rankingsAt("niche", positions(2)...))
	require.NoError(t, err)

	// Normalisation cancels ln(1 + n); popularity is resolved by voter count in ordering.
	assert.InDelta(t, popular.Score, niche.Score, 1e-9)
	assert.Equal(t, 50, popular.VoterCount)

	board := Leaderboard([]ItemScoreSnapshot{
		{ItemID: "a-niche", RankingScore: niche.Score, VoterCount: niche.VoterCount},
		{ItemID: "z-popular", RankingScore: popular.Score, VoterCount: popular.VoterCount},
	}, SortByRanking)
	assert.Equal(t, "z-popular", board[0].ItemID)
}

func visitsBy(itemID string, at time.Time, perUser map[string]int) []VisitEvent {
	var visits []VisitEvent
	for user, n := range perUser {
		for range n {
			visits = append(visits, VisitEvent{UserID: user, ItemID: itemID, VisitedAt: at})
		}
	}
	return visits
}

func TestComputeFrequencyScore(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	window := 30 * 24 * time.Hour
	recent := now.Add(-24 * time.Hour)

	cases := []struct {
		name           string
		visits         []VisitEvent
		expectedScore  float64
		expectedTotal  int
		expectedUnique int
	}{
		{
			name:          "no_visits_scores_zero",
			visits:        nil,
			expectedScore: 0,
		},
		{
			// (15 / 3) * (3 / 20) * 10 = 7.5
			name:           "fifteen_visits_three_users",
			visits:         visitsBy("y", recent, map[string]int{"a": 5, "b": 5, "c": 5}),
			expectedScore:  7.5,
			expectedTotal:  15,
			expectedUnique: 3,
		},
		{
			name:           "saturates_at_ten",
			visits:         visitsBy("y", recent, map[string]int{"a": 30}),
			expectedScore:  10,
			expectedTotal:  30,
			expectedUnique: 1,
		},
		{
			name:          "visits_outside_window_ignored",
			visits:        visitsBy("y", now.Add(-31*24*time.Hour), map[string]int{"a": 10}),
			expectedScore: 0,
		},
		{
			name:          "future_visits_ignored",
			visits:        visitsBy("y", now.Add(time.Hour), map[string]int{"a": 10}),
			expectedScore: 0,
		},
		{
			name:           "window_start_is_inclusive",
			visits:         visitsBy("y", now.Add(-window), map[string]int{"a": 2}),
			expectedScore:  1,
			expectedTotal:  2,
			expectedUnique: 1,
		},
		{
			name:           "reference_time_is_inclusive",
			visits:         visitsBy("y", now, map[string]int{"a": 1}),
			expectedScore:  0.5,
			expectedTotal:  1,
			expectedUnique: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ComputeFrequencyScore(tc.visits, window, 20, now)
			require.NoError(t, err)
			assert.InDelta(t, tc.expectedScore, result.Score, 0.001)
			assert.Equal(t, tc.expectedTotal, result.TotalVisits)
			assert.Equal(t, tc.expectedUnique, result.UniqueVisitors)
		})
	}
}

func TestComputeFrequencyScore_NegativeTimestamp(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	visits := []VisitEvent{{UserID: "a", ItemID: "y", VisitedAt: time.Unix(-5, 0)}}

	_, err := ComputeFrequencyScore(visits, time.Hour, 20, now)

	var ive *InputValidationError
	require.ErrorAs(t, err, &ive)
	assert.Equal(t, "visited_at", ive.Field)
}

func TestScoreItem(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	config := DefaultScoringConfig()

	t.Run("visits_only_item", func(t *testing.T) {
		in := ItemInput{
			Item:   RankedItem{ID: "y", Name: "Nasi Lemak Stall", Locality: "Bukit Bintang"},
			Visits: visitsBy("y", now.Add(-time.Hour), map[string]int{"a": 5, "b": 5, "c": 5}),
		}

		snap, err := ScoreItem(in, config, now)
		require.NoError(t, err)
		assert.Equal(t, "y", snap.ItemID)
		assert.Equal(t, "Bukit Bintang", snap.Locality)
		assert.InDelta(t, 0, snap.RankingScore, 1e-9)
		assert.InDelta(t, 7.5, snap.FrequencyScore, 0.001)
		assert.InDelta(t, 3.75, snap.CombinedScore, 0.001)
		assert.Equal(t, 15, snap.VisitCount)
		assert.Equal(t, 3, snap.UniqueVisitors)
		assert.Equal(t, now, snap.ComputedAt)
	})

	t.Run("no_data_item", func(t *testing.T) {
		snap, err := ScoreItem(ItemInput{Item: RankedItem{ID: "empty"}}, config, now)
		require.NoError(t, err)
		assert.Equal(t, ItemScoreSnapshot{ItemID: "empty", ComputedAt: now}, snap)
	})

	t.Run("invalid_ranking_tags_item", func(t *testing.T) {
		in := ItemInput{
			Item:     RankedItem{ID: "x"},
			Rankings: []UserRanking{{UserID: "u", Position: 99}},
		}

		_, err := ScoreItem(in, config, now)
		var ive *InputValidationError
		require.ErrorAs(t, err, &ive)
		assert.Equal(t, "x", ive.ItemID)
	})

	t.Run("foreign_visit_rejected", func(t *testing.T) {
		in := ItemInput{
			Item:   RankedItem{ID: "x"},
			Visits: []VisitEvent{{UserID: "u", ItemID: "other", VisitedAt: now}},
		}

		_, err := ScoreItem(in, config, now)
		var ive *InputValidationError
		require.ErrorAs(t, err, &ive)
		assert.Equal(t, "visit.item_id", ive.Field)
	})

	t.Run("missing_item_id", func(t *testing.T) {
		_, err := ScoreItem(ItemInput{}, config, now)
		var ive *InputValidationError
		require.ErrorAs(t, err, &ive)
		assert.Equal(t, "item_id", ive.Field)
	})
}

func TestScoreItem_Bounds(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	config := DefaultScoringConfig()

	for voters := 0; voters <= 40; voters += 7 {
		for visitsPerUser := 0; visitsPerUser <= 12; visitsPerUser += 3 {
			positions := make([]int, voters)
			for i := range positions {
				positions[i] = i%MaxPosition + 1
			}
			perUser := map[string]int{}
			for u := range voters {
				perUser[fmt.Sprintf("v%d", u)] = visitsPerUser
			}

			snap, err := ScoreItem(ItemInput{
				Item:     RankedItem{ID: "x"},
				Rankings: rankingsAt("x", positions...),
				Visits:   visitsBy("x", now.Add(-time.Hour), perUser),
			}, config, now)
			require.NoError(t, err)

			for _, score := range []float64{snap.RankingScore, snap.FrequencyScore, snap.CombinedScore} {
				assert.False(t, math.IsNaN(score))
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, MaxScore)
			}
		}
	}
}
