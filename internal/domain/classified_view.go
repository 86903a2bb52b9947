package domain

import (
	"strings"
	"time"
)

// ViewKind names the classification rule that produced a view.
type ViewKind string

const (
	ViewKindLocalFavorites ViewKind = "local_favorites"
	ViewKindHiddenGems     ViewKind = "hidden_gems"
)

const (
	// HiddenGemsViewName is the name under which the hidden gems view is stored.
	HiddenGemsViewName = "hidden-gems"

	localFavoritesViewPrefix = "local-favorites/"
)

// LocalFavoritesViewName returns the stored view name for a locality.
func LocalFavoritesViewName(locality string) string {
	return localFavoritesViewPrefix + locality
}

// LocalityFromViewName extracts the locality from a local favorites view name.
func LocalityFromViewName(name string) (string, bool) {
	return strings.CutPrefix(name, localFavoritesViewPrefix)
}

// ClassifiedView is a named, ordered selection of items derived from score
// snapshots. Entries carry their score fields so readers need not re-join.
type ClassifiedView struct {
	Name       string      `json:"name"`
	Kind       ViewKind    `json:"kind"`
	Locality   string      `json:"locality,omitempty"`
	Entries    []ViewEntry `json:"entries"`
	ComputedAt time.Time   `json:"computed_at"`
}

// ViewEntry is one item's membership in a view. Rank starts at 1.
type ViewEntry struct {
	Rank           int     `json:"rank"`
	ItemID         string  `json:"item_id"`
	Name           string  `json:"name,omitempty"`
	Locality       string  `json:"locality,omitempty"`
	RankingScore   float64 `json:"ranking_score"`
	FrequencyScore float64 `json:"frequency_score"`
	CombinedScore  float64 `json:"combined_score"`
	VoterCount     int     `json:"voter_count"`
	VisitCount     int     `json:"visit_count"`
	UniqueVisitors int     `json:"unique_visitors"`
}

// ViewEntryFromSnapshot copies the score fields of a snapshot into a view entry.
func ViewEntryFromSnapshot(rank int, s ItemScoreSnapshot) ViewEntry {
	return ViewEntry{
		Rank:           rank,
		ItemID:         s.ItemID,
		Name:           s.Name,
		Locality:       s.Locality,
		RankingScore:   s.RankingScore,
		FrequencyScore: s.FrequencyScore,
		CombinedScore:  s.CombinedScore,
		VoterCount:     s.VoterCount,
		VisitCount:     s.VisitCount,
		UniqueVisitors: s.UniqueVisitors,
	}
}
