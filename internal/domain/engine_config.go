package domain

import (
	"math"
	"time"
)

// ScoringConfig holds the tunables of the Score Calculator.
type ScoringConfig struct {
	// RecencyWindow is how far back from the reference time visits count.
	RecencyWindow time.Duration

	// Saturation is the unique-visitor count at which the audience breadth
	// factor of the frequency score reaches 1.0.
	Saturation float64
}

// ClassifierConfig holds the thresholds and sizes of the derived views.
type ClassifierConfig struct {
	// HiddenGemFrequencyThreshold is the frequency score an item must exceed.
	HiddenGemFrequencyThreshold float64

	// HiddenGemRankingCeiling is the ranking score an item must stay below.
	HiddenGemRankingCeiling float64

	// LocalFavoritesTopN caps the length of each local favorites view.
	LocalFavoritesTopN int

	// HiddenGemsTopN caps the length of the hidden gems view.
	HiddenGemsTopN int
}

// EngineConfig is the full configuration of a recompute run.
type EngineConfig struct {
	Scoring    ScoringConfig
	Classifier ClassifierConfig

	// Now is the reference timestamp for the recency window. The zero value
	// means wall-clock time at invocation.
	Now time.Time

	// Workers is the number of parallel scoring workers. Zero means GOMAXPROCS.
	Workers int
}

// DefaultScoringConfig returns the default Score Calculator configuration.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		RecencyWindow: 30 * 24 * time.Hour,
		Saturation:    20,
	}
}

// DefaultClassifierConfig returns the default view configuration.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		HiddenGemFrequencyThreshold: 7.0,
		HiddenGemRankingCeiling:     5.0,
		LocalFavoritesTopN:          10,
		HiddenGemsTopN:              20,
	}
}

// DefaultEngineConfig returns the default run configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Scoring:    DefaultScoringConfig(),
		Classifier: DefaultClassifierConfig(),
	}
}

// Validate returns a *ConfigurationError for the first invalid value.
func (c ScoringConfig) Validate() error {
	if c.RecencyWindow <= 0 {
		return &ConfigurationError{Field: "recency_window", Reason: "must be positive"}
	}
	if !(c.Saturation > 0) || math.IsInf(c.Saturation, 0) {
		return &ConfigurationError{Field: "saturation", Reason: "must be a positive finite number"}
	}
	return nil
}

// Validate returns a *ConfigurationError for the first invalid value.
func (c ClassifierConfig) Validate() error {
	if !onScoreScale(c.HiddenGemFrequencyThreshold) {
		return &ConfigurationError{Field: "hidden_gem_frequency_threshold", Reason: "must be within 0..10"}
	}
	if !onScoreScale(c.HiddenGemRankingCeiling) {
		return &ConfigurationError{Field: "hidden_gem_ranking_ceiling", Reason: "must be within 0..10"}
	}
	if c.LocalFavoritesTopN < 1 {
		return &ConfigurationError{Field: "local_favorites_top_n", Reason: "must be at least 1"}
	}
	if c.HiddenGemsTopN < 1 {
		return &ConfigurationError{Field: "hidden_gems_top_n", Reason: "must be at least 1"}
	}
	return nil
}

// Validate returns a *ConfigurationError for the first invalid value.
func (c EngineConfig) Validate() error {
	if err := c.Scoring.Validate(); err != nil {
		return err
	}
	if err := c.Classifier.Validate(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return &ConfigurationError{Field: "workers", Reason: "must not be negative"}
	}
	return nil
}

func onScoreScale(v float64) bool {
	return v >= 0 && v <= MaxScore
}
