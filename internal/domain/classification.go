package domain

import (
	"slices"
	"time"
)

// IsHiddenGem reports whether an item is visited heavily but under-ranked:
// its frequency score exceeds the threshold and its ranking score is below the ceiling.
func IsHiddenGem(s ItemScoreSnapshot, config ClassifierConfig) bool {
	return s.FrequencyScore > config.HiddenGemFrequencyThreshold &&
		s.RankingScore < config.HiddenGemRankingCeiling
}

// HiddenGems selects hidden gems ordered by frequency score, truncated to
// HiddenGemsTopN. Fewer qualifying items yield a shorter view.
func HiddenGems(snapshots []ItemScoreSnapshot, config ClassifierConfig, computedAt time.Time) ClassifiedView {
	var qualifying []ItemScoreSnapshot
	for _, s := range snapshots {
		if IsHiddenGem(s, config) {
			qualifying = append(qualifying, s)
		}
	}

	return ClassifiedView{
		Name:       HiddenGemsViewName,
		Kind:       ViewKindHiddenGems,
		Entries:    topByFrequency(qualifying, config.HiddenGemsTopN),
		ComputedAt: computedAt,
	}
}

// LocalFavorites selects the items in a locality ordered by frequency score,
// truncated to LocalFavoritesTopN.
func LocalFavorites(
	snapshots []ItemScoreSnapshot,
	locality string,
	config ClassifierConfig,
	computedAt time.Time,
) ClassifiedView {
	var qualifying []ItemScoreSnapshot
	for _, s := range snapshots {
		if s.Locality == locality {
			qualifying = append(qualifying, s)
		}
	}

	return ClassifiedView{
		Name:       LocalFavoritesViewName(locality),
		Kind:       ViewKindLocalFavorites,
		Locality:   locality,
		Entries:    topByFrequency(qualifying, config.LocalFavoritesTopN),
		ComputedAt: computedAt,
	}
}

// AllLocalFavorites builds one local favorites view per distinct non-empty
// locality, ordered by locality name.
func AllLocalFavorites(snapshots []ItemScoreSnapshot, config ClassifierConfig, computedAt time.Time) []ClassifiedView {
	var localities []string
	for _, s := range snapshots {
		if s.Locality != "" && !slices.Contains(localities, s.Locality) {
			localities = append(localities, s.Locality)
		}
	}
	slices.Sort(localities)

	views := make([]ClassifiedView, 0, len(localities))
	for _, locality := range localities {
		views = append(views, LocalFavorites(snapshots, locality, config, computedAt))
	}
	return views
}

// Classify derives every view from a run's snapshots: hidden gems first,
// then local favorites by locality.
func Classify(snapshots []ItemScoreSnapshot, config ClassifierConfig, computedAt time.Time) []ClassifiedView {
	views := []ClassifiedView{HiddenGems(snapshots, config, computedAt)}
	return append(views, AllLocalFavorites(snapshots, config, computedAt)...)
}

func topByFrequency(snapshots []ItemScoreSnapshot, topN int) []ViewEntry {
	sorted := Leaderboard(snapshots, SortByFrequency)
	if len(sorted) > topN {
		sorted = sorted[:topN]
	}

	entries := make([]ViewEntry, 0, len(sorted))
	for i, s := range sorted {
		entries = append(entries, ViewEntryFromSnapshot(i+1, s))
	}
	return entries
}
