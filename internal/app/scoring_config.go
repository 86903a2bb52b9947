package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/makanrank/ranking-engine/internal/command"
	"github.com/makanrank/ranking-engine/internal/domain"
)

// DefaultLoadConcurrency bounds concurrent per-item storage reads during a run.
const DefaultLoadConcurrency = 8

// DefaultRecomputeRankingsConfig returns the default config for recompute runs.
func DefaultRecomputeRankingsConfig() command.RecomputeRankingsConfig {
	return command.RecomputeRankingsConfig{
		Engine:          domain.DefaultEngineConfig(),
		LoadConcurrency: DefaultLoadConcurrency,
	}
}

// LoadRecomputeRankingsConfig starts from the defaults, overlays the YAML file
// at path (if path is non-empty) and then any SCORING_* environment variables.
// The result is validated before it is returned.
func LoadRecomputeRankingsConfig(ctx context.Context, path string) (command.RecomputeRankingsConfig, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return command.RecomputeRankingsConfig{}, fmt.Errorf("loading scoring config file %s: %w", path, err)
		}
	}

	cfg := DefaultRecomputeRankingsConfig()
	engine := &cfg.Engine

	errs := []error{
		overlay(k, "scoring.recency_window", "SCORING_RECENCY_WINDOW", time.ParseDuration, &engine.Scoring.RecencyWindow),
		overlay(k, "scoring.saturation", "SCORING_SATURATION", parseFloat, &engine.Scoring.Saturation),
		overlay(k, "classifier.hidden_gem_frequency_threshold", "SCORING_HIDDEN_GEM_FREQUENCY_THRESHOLD",
			parseFloat, &engine.Classifier.HiddenGemFrequencyThreshold),
		overlay(k, "classifier.hidden_gem_ranking_ceiling", "SCORING_HIDDEN_GEM_RANKING_CEILING",
			parseFloat, &engine.Classifier.HiddenGemRankingCeiling),
		overlay(k, "classifier.local_favorites_top_n", "SCORING_LOCAL_FAVORITES_TOP_N",
			strconv.Atoi, &engine.Classifier.LocalFavoritesTopN),
		overlay(k, "classifier.hidden_gems_top_n", "SCORING_HIDDEN_GEMS_TOP_N",
			strconv.Atoi, &engine.Classifier.HiddenGemsTopN),
		overlay(k, "workers", "SCORING_WORKERS", strconv.Atoi, &engine.Workers),
		overlay(k, "load_concurrency", "SCORING_LOAD_CONCURRENCY", strconv.Atoi, &cfg.LoadConcurrency),
	}
	if err := errors.Join(errs...); err != nil {
		return command.RecomputeRankingsConfig{}, err
	}

	if err := engine.Validate(); err != nil {
		return command.RecomputeRankingsConfig{}, err
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "loaded scoring config",
		"config_file", path,
		"recency_window", engine.Scoring.RecencyWindow,
		"saturation", engine.Scoring.Saturation,
		"hidden_gem_frequency_threshold", engine.Classifier.HiddenGemFrequencyThreshold,
		"hidden_gem_ranking_ceiling", engine.Classifier.HiddenGemRankingCeiling,
		"local_favorites_top_n", engine.Classifier.LocalFavoritesTopN,
		"hidden_gems_top_n", engine.Classifier.HiddenGemsTopN,
		"workers", engine.Workers,
		"load_concurrency", cfg.LoadConcurrency,
	)

	return cfg, nil
}

// overlay sets *dst from the environment variable if set, otherwise from the
// config file key if present. dst keeps its value when neither is set.
func overlay[T any](k *koanf.Koanf, key, env string, parse func(string) (T, error), dst *T) error {
	raw, exists := os.LookupEnv(env)
	source := env
	if !exists {
		if !k.Exists(key) {
			return nil
		}
		raw, source = k.String(key), key
	}

	v, err := parse(raw)
	if err != nil {
		return &domain.ConfigurationError{Field: source, Reason: fmt.Sprintf("cannot parse %q", raw)}
	}
	*dst = v
	return nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
