package domain

import (
	"cmp"
	"fmt"
	"slices"
)

// SortKey selects the score a leaderboard is ordered by.
type SortKey string

const (
	SortByCombined  SortKey = "combined"
	SortByRanking   SortKey = "ranking"
	SortByFrequency SortKey = "frequency"
)

var ValidSortKeys = []SortKey{SortByCombined, SortByRanking, SortByFrequency}

// ParseSortKey parses a sort key, defaulting to SortByCombined for "".
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortByCombined, nil
	}
	key := SortKey(s)
	if !slices.Contains(ValidSortKeys, key) {
		return "", fmt.Errorf("unknown sort key [%s]", s)
	}
	return key, nil
}

// Score returns the snapshot's score relevant to this key.
func (k SortKey) Score(s ItemScoreSnapshot) float64 {
	switch k {
	case SortByRanking:
		return s.RankingScore
	case SortByFrequency:
		return s.FrequencyScore
	default:
		return s.CombinedScore
	}
}

// CompareSnapshots orders snapshots by the key's score descending, then by
// voter count descending, then by item ID ascending.
func CompareSnapshots(key SortKey, a, b ItemScoreSnapshot) int {
	if c := cmp.Compare(key.Score(b), key.Score(a)); c != 0 {
		return c
	}
	if c := cmp.Compare(b.VoterCount, a.VoterCount); c != 0 {
		return c
	}
	return cmp.Compare(a.ItemID, b.ItemID)
}

// SortSnapshots sorts snapshots in place into leaderboard order.
func SortSnapshots(snapshots []ItemScoreSnapshot, key SortKey) {
	slices.SortFunc(snapshots, func(a, b ItemScoreSnapshot) int {
		return CompareSnapshots(key, a, b)
	})
}

// Leaderboard returns a sorted copy of snapshots, leaving the input untouched.
func Leaderboard(snapshots []ItemScoreSnapshot, key SortKey) []ItemScoreSnapshot {
	sorted := slices.Clone(snapshots)
	SortSnapshots(sorted, key)
	return sorted
}

// Paginate returns the given 1-indexed page of items.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}
