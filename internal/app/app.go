package app

import (
	"context"
	"fmt"
	"time"

	"github.com/makanrank/ranking-engine/internal/command"
	"github.com/makanrank/ranking-engine/internal/datasources"
	"github.com/makanrank/ranking-engine/internal/datasources/mysql"
	"github.com/makanrank/ranking-engine/internal/datasources/rediscache"
	"github.com/makanrank/ranking-engine/internal/metrics"
	"github.com/makanrank/ranking-engine/internal/transport/web/router"
	"github.com/makanrank/ranking-engine/internal/transport/web/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultReadCacheTTL     = 24 * time.Hour
	defaultReadCacheMaxAge  = time.Minute
	defaultRecomputeTimeout = 10 * time.Minute
)

type Component interface {
	Run(ctx context.Context) error
}

// Services is the engine with its storage, shared by the server and the
// one-shot recompute job.
type Services struct {
	Dataset   *mysql.Repository
	ReadModel datasources.ReadModel
	Recompute *command.RecomputeRankings
}

func Setup(ctx context.Context) ([]Component, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("registering go collector: %w", err)
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("registering process collector: %w", err)
	}

	recomputeMetrics := metrics.NewRecompute()
	if err := recomputeMetrics.Register(reg); err != nil {
		return nil, fmt.Errorf("registering recompute metrics: %w", err)
	}
	httpMetrics := metrics.NewHTTP()
	if err := httpMetrics.Register(reg); err != nil {
		return nil, fmt.Errorf("registering HTTP metrics: %w", err)
	}

	services, err := SetupServices(ctx, recomputeMetrics)
	if err != nil {
		return nil, err
	}

	httpRouter, err := router.MakeRouter(
		services.ReadModel,
		services.Recompute,
		services.Recompute.Config.Engine,
		command.NewSubmitRankingList(services.Dataset),
		command.NewRecordVisit(services.Dataset),
		GetEnvAsDurationOr(ctx, "READ_CACHE_MAX_AGE", defaultReadCacheMaxAge),
		httpMetrics,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	components := []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}

	if interval := GetEnvAsDurationOr(ctx, "RECOMPUTE_INTERVAL", 0); interval > 0 {
		components = append(components, &RecomputeScheduler{
			Recompute:  services.Recompute,
			Interval:   interval,
			Timeout:    GetEnvAsDurationOr(ctx, "RECOMPUTE_TIMEOUT", defaultRecomputeTimeout),
			RunOnStart: GetEnvAsBooleanOr(ctx, "RECOMPUTE_ON_START", true),
		})
	}

	return components, nil
}

// SetupServices connects to storage and builds the recompute command.
// runMetrics may be nil.
func SetupServices(ctx context.Context, runMetrics command.RunMetrics) (*Services, error) {
	dataset, err := setupDatasetRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	readModel, publisher, err := setupReadCache(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("setting up read cache: %w", err)
	}

	config, err := LoadRecomputeRankingsConfig(ctx, GetEnvAsStringOr("SCORING_CONFIG_FILE", ""))
	if err != nil {
		return nil, fmt.Errorf("loading scoring config: %w", err)
	}

	recompute := command.NewRecomputeRankings(
		dataset,
		dataset,
		dataset,
		dataset,
		publisher,
		command.NewComputeRankings(),
		runMetrics,
		config,
	)

	return &Services{Dataset: dataset, ReadModel: readModel, Recompute: recompute}, nil
}

func setupDatasetRepository(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	if GetEnvAsBooleanOr(ctx, "MYSQL_APPLY_SCHEMA", false) {
		if err := mysql.ApplySchema(ctx, db); err != nil {
			return nil, err
		}
	}
	return mysql.New(db), nil
}

func setupReadCache(
	ctx context.Context, dataset datasources.ReadModel,
) (datasources.ReadModel, datasources.ReadModelPublisher, error) {
	switch driver := GetEnvAsStringOr("READ_CACHE_DRIVER", "null"); driver {
	case "null":
		return dataset, datasources.NullReadModelPublisher{}, nil
	case "redis":
		client, err := rediscache.Connect(
			ctx,
			MustGetEnvAsString(ctx, "REDIS_ADDR"),
			GetEnvAsStringOr("REDIS_PASSWORD", ""),
			GetEnvAsIntOr(ctx, "REDIS_DB", 0),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to Redis: %w", err)
		}
		cache := rediscache.New(
			client,
			GetEnvAsStringOr("REDIS_KEY_PREFIX", rediscache.DefaultKeyPrefix),
			GetEnvAsDurationOr(ctx, "READ_CACHE_TTL", defaultReadCacheTTL),
		)
		return datasources.FallbackReadModel{Primary: cache, Fallback: dataset}, cache, nil
	default:
		return nil, nil, fmt.Errorf("unknown read cache driver [%s]", driver)
	}
}
