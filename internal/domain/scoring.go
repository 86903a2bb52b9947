package domain

import (
	"math"
	"time"
)

// MaxScore is the upper bound of every score scale.
const MaxScore = 10.0

// RankingResult is the ranking half of an item's score.
type RankingResult struct {
	Score      float64
	VoterCount int
}

// FrequencyResult is the visit half of an item's score.
type FrequencyResult struct {
	Score          float64
	TotalVisits    int
	UniqueVisitors int
}

// RankingPoints returns the points a single placement contributes:
// position 1 earns 10, position 10 earns 1, anything outside 1..10 earns 0.
func RankingPoints(position int) int {
	if !ValidPosition(position) {
		return 0
	}
	return MaxPosition + 1 - position
}

// ComputeRankingScore computes a popularity-weighted position score on a 0-10 scale.
//
// Each voter contributes RankingPoints(position). The sum is multiplied by
// userWeight = ln(1 + voterCount) and normalised against the theoretical
// maximum of every voter placing the item first, 10 * voterCount * userWeight.
//
// If a user appears more than once, their most recently updated ranking wins
// and superseded rankings are not validated. Returns a zero result for no
// rankings and an *InputValidationError for a missing user or a surviving
// position outside 1..10.
func ComputeRankingScore(rankings []UserRanking) (RankingResult, error) {
	latest := make(map[string]int, len(rankings))
	for i, r := range rankings {
		if r.UserID == "" {
			return RankingResult{}, &InputValidationError{
				ItemID: r.ItemID, Field: "user_id", Reason: "missing",
			}
		}
		if prev, ok := latest[r.UserID]; ok && rankings[prev].UpdatedAt.After(r.UpdatedAt) {
			continue
		}
		latest[r.UserID] = i
	}

	// Only the surviving ranking per user is validated, in input order.
	for i, r := range rankings {
		if latest[r.UserID] != i || ValidPosition(r.Position) {
			continue
		}
		return RankingResult{}, &InputValidationError{
			ItemID: r.ItemID,
			UserID: r.UserID,
			Field:  "position",
			Reason: positionReason(r.Position),
		}
	}

	voterCount := len(latest)
	if voterCount == 0 {
		return RankingResult{}, nil
	}

	var points int
	for _, i := range latest {
		points += RankingPoints(rankings[i].Position)
	}

	userWeight := math.Log1p(float64(voterCount))
	raw := float64(points) * userWeight
	maxRaw := float64(RankingPoints(MinPosition)) * float64(voterCount) * userWeight

	return RankingResult{
		Score:      clampScore(raw / maxRaw * MaxScore),
		VoterCount: voterCount,
	}, nil
}

// ComputeFrequencyScore computes a recency-windowed visit intensity on a 0-10 scale.
//
// Only visits within [now - window, now] count. The raw intensity is
// (totalVisits / uniqueVisitors) * (uniqueVisitors / saturation): repeat
// visits per visitor, scaled by audience breadth. The score is
// min(raw * 10, 10), so exactly 10 means saturation.
//
// Returns a zero result when nothing falls in the window and an
// *InputValidationError for a negative timestamp or a missing user.
func ComputeFrequencyScore(
	visits []VisitEvent,
	window time.Duration,
	saturation float64,
	now time.Time,
) (FrequencyResult, error) {
	since := now.Add(-window)

	var totalVisits int
	visitors := make(map[string]struct{})
	for _, v := range visits {
		if v.UserID == "" {
			return FrequencyResult{}, &InputValidationError{
				ItemID: v.ItemID, Field: "user_id", Reason: "missing",
			}
		}
		if v.VisitedAt.Unix() < 0 {
			return FrequencyResult{}, &InputValidationError{
				ItemID: v.ItemID,
				UserID: v.UserID,
				Field:  "visited_at",
				Reason: "timestamp before unix epoch",
			}
		}
		if v.VisitedAt.Before(since) || v.VisitedAt.After(now) {
			continue
		}
		totalVisits++
		visitors[v.UserID] = struct{}{}
	}

	uniqueVisitors := len(visitors)
	if uniqueVisitors == 0 {
		return FrequencyResult{}, nil
	}

	repeatRate := float64(totalVisits) / float64(uniqueVisitors)
	breadth := float64(uniqueVisitors) / saturation
	raw := repeatRate * breadth

	return FrequencyResult{
		Score:          clampScore(math.Min(raw*MaxScore, MaxScore)),
		TotalVisits:    totalVisits,
		UniqueVisitors: uniqueVisitors,
	}, nil
}

// CombineScores averages the ranking and frequency scores with equal weight.
func CombineScores(rankingScore, frequencyScore float64) float64 {
	return (rankingScore + frequencyScore) / 2
}

// ScoreItem computes the full snapshot for one item. Rankings or visits that
// name a different item are rejected as malformed.
func ScoreItem(in ItemInput, config ScoringConfig, now time.Time) (ItemScoreSnapshot, error) {
	itemID := in.Item.ID
	if itemID == "" {
		return ItemScoreSnapshot{}, &InputValidationError{Field: "item_id", Reason: "missing"}
	}

	for _, r := range in.Rankings {
		if r.ItemID != "" && r.ItemID != itemID {
			return ItemScoreSnapshot{}, &InputValidationError{
				ItemID: itemID, UserID: r.UserID, Field: "ranking.item_id", Reason: "belongs to item " + r.ItemID,
			}
		}
	}
	for _, v := range in.Visits {
		if v.ItemID != "" && v.ItemID != itemID {
			return ItemScoreSnapshot{}, &InputValidationError{
				ItemID: itemID, UserID: v.UserID, Field: "visit.item_id", Reason: "belongs to item " + v.ItemID,
			}
		}
	}

	ranking, err := ComputeRankingScore(in.Rankings)
	if err != nil {
		return ItemScoreSnapshot{}, withItemID(err, itemID)
	}

	frequency, err := ComputeFrequencyScore(in.Visits, config.RecencyWindow, config.Saturation, now)
	if err != nil {
		return ItemScoreSnapshot{}, withItemID(err, itemID)
	}

	return ItemScoreSnapshot{
		ItemID:         itemID,
		Name:           in.Item.Name,
		Locality:       in.Item.Locality,
		RankingScore:   ranking.Score,
		FrequencyScore: frequency.Score,
		CombinedScore:  CombineScores(ranking.Score, frequency.Score),
		VoterCount:     ranking.VoterCount,
		VisitCount:     frequency.TotalVisits,
		UniqueVisitors: frequency.UniqueVisitors,
		ComputedAt:     now,
	}, nil
}

func withItemID(err error, itemID string) error {
	if ive, ok := err.(*InputValidationError); ok && ive.ItemID == "" {
		ive.ItemID = itemID
	}
	return err
}

func positionReason(position int) string {
	if position < 0 {
		return "negative position"
	}
	return "position outside 1..10"
}

// clampScore keeps floating point drift from leaving the 0-10 scale.
func clampScore(v float64) float64 {
	return math.Max(0, math.Min(v, MaxScore))
}
