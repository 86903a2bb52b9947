// Package metrics holds the Prometheus collectors for recompute runs and the
// HTTP surface.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	MetricRecomputeRunsTotal    = "ranking_recompute_runs_total"
	MetricRecomputeDuration     = "ranking_recompute_duration_seconds"
	MetricRecomputeItemsSkipped = "ranking_recompute_items_skipped_total"
	MetricRecomputeLastRun      = "ranking_recompute_last_run_timestamp_seconds"
	MetricRecomputeItems        = "ranking_recompute_items"
)

// Recompute contains Prometheus metrics for recompute runs.
// The metrics are not registered; call Register to register them with a registry.
type Recompute struct {
	runsTotal    *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	itemsSkipped prometheus.Counter
	lastRun      *prometheus.GaugeVec
	items        prometheus.Gauge

	now func() time.Time
}

func NewRecompute() *Recompute {
	return &Recompute{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRecomputeRunsTotal,
				Help: "Total number of recompute runs by status",
			},
			[]string{"status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricRecomputeDuration,
				Help:    "Histogram of recompute run duration in seconds by status",
				Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0, 120.0, 300.0},
			},
			[]string{"status"},
		),
		itemsSkipped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: MetricRecomputeItemsSkipped,
				Help: "Total number of malformed items skipped across recompute runs",
			},
		),
		lastRun: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: MetricRecomputeLastRun,
				Help: "Unix time at which the last recompute run with each status finished",
			},
			[]string{"status"},
		),
		items: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: MetricRecomputeItems,
				Help: "Number of items scored by the last committed recompute run",
			},
		),
		now: time.Now,
	}
}

func (m *Recompute) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveRecomputeRun records the outcome of one run. processed and skipped
// only move the item gauges for runs that committed.
func (m *Recompute) ObserveRecomputeRun(status string, duration time.Duration, processed, skipped int) {
	m.runsTotal.WithLabelValues(status).Inc()
	m.duration.WithLabelValues(status).Observe(duration.Seconds())
	m.lastRun.WithLabelValues(status).Set(float64(m.now().Unix()))

	if status == "success" || status == "partial" {
		m.items.Set(float64(processed))
		m.itemsSkipped.Add(float64(skipped))
	}
}

// Collectors returns all Prometheus collectors for testing.
func (m *Recompute) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.runsTotal,
		m.duration,
		m.itemsSkipped,
		m.lastRun,
		m.items,
	}
}
