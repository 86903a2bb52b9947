package domain

import "time"

// ItemInput is everything the Score Calculator needs for a single item:
// its identity, every active ranking and every visit loaded for the run.
type ItemInput struct {
	Item     RankedItem
	Rankings []UserRanking
	Visits   []VisitEvent
}

// ItemScoreSnapshot is the computed score state of one item at a point in time.
// RankingScore, FrequencyScore and CombinedScore are all on a 0-10 scale.
type ItemScoreSnapshot struct {
	ItemID         string    `json:"item_id"`
	Name           string    `json:"name,omitempty"`
	Locality       string    `json:"locality,omitempty"`
	RankingScore   float64   `json:"ranking_score"`
	FrequencyScore float64   `json:"frequency_score"`
	CombinedScore  float64   `json:"combined_score"`
	VoterCount     int       `json:"voter_count"`
	VisitCount     int       `json:"visit_count"`
	UniqueVisitors int       `json:"unique_visitors"`
	ComputedAt     time.Time `json:"computed_at"`
}
