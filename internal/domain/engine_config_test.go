package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEngineConfig(t *testing.T) {
	config := DefaultEngineConfig()

	require.NoError(t, config.Validate())
	assert.Equal(t, 30*24*time.Hour, config.Scoring.RecencyWindow)
	assert.InDelta(t, 20.0, config.Scoring.Saturation, 0)
	assert.InDelta(t, 7.0, config.Classifier.HiddenGemFrequencyThreshold, 0)
	assert.InDelta(t, 5.0, config.Classifier.HiddenGemRankingCeiling, 0)
	assert.Equal(t, 10, config.Classifier.LocalFavoritesTopN)
	assert.Equal(t, 20, config.Classifier.HiddenGemsTopN)
	assert.True(t, config.Now.IsZero())
}

func TestEngineConfig_Validate(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(c *EngineConfig)
		wantField string
	}{
		{name: "negative_window", mutate: func(c *EngineConfig) { c.Scoring.RecencyWindow = -time.Hour }, wantField: "recency_window"},
		{name: "zero_window", mutate: func(c *EngineConfig) { c.Scoring.RecencyWindow = 0 }, wantField: "recency_window"},
		{name: "zero_saturation", mutate: func(c *EngineConfig) { c.Scoring.Saturation = 0 }, wantField: "saturation"},
		{name: "nan_saturation", mutate: func(c *EngineConfig) { c.Scoring.Saturation = math.NaN() }, wantField: "saturation"},
		{name: "threshold_above_scale", mutate: func(c *EngineConfig) { c.Classifier.HiddenGemFrequencyThreshold = 11 }, wantField: "hidden_gem_frequency_threshold"},
		{name: "negative_ceiling", mutate: func(c *EngineConfig) { c.Classifier.HiddenGemRankingCeiling = -1 }, wantField: "hidden_gem_ranking_ceiling"},
		{name: "zero_local_top_n", mutate: func(c *EngineConfig) { c.Classifier.LocalFavoritesTopN = 0 }, wantField: "local_favorites_top_n"},
		{name: "zero_gems_top_n", mutate: func(c *EngineConfig) { c.Classifier.HiddenGemsTopN = 0 }, wantField: "hidden_gems_top_n"},
		{name: "negative_workers", mutate: func(c *EngineConfig) { c.Workers = -2 }, wantField: "workers"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultEngineConfig()
			tc.mutate(&config)

			err := config.Validate()
			var ce *ConfigurationError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tc.wantField, ce.Field)
		})
	}
}
