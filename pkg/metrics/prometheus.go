// Package metrics provides Prometheus metrics for the game night leaderboard.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the project.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Ledger fold metrics
	awardsFolded prometheus.Counter
	playsFolded  prometheus.Counter

	// Snapshot metrics
	rebuildCount    prometheus.Counter
	rebuildDuration prometheus.Histogram
	rebuildLastUnix prometheus.Gauge

	// Ledger size gauges
	ledgerEvents prometheus.Gauge
	ledgerPlays  prometheus.Gauge
	players      prometheus.Gauge

	// Preview server metrics
	httpRequests *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gamenight",
		subsystem:        "leaderboard",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.awardsFolded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "awards_folded_total",
		Help:      "Total number of award records folded into snapshots",
	})

	m.playsFolded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "plays_folded_total",
		Help:      "Total number of play records folded into snapshots",
	})

	m.rebuildCount = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_rebuilds_total",
		Help:      "Total number of full snapshot rebuilds",
	})

	m.rebuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_rebuild_seconds",
		Help:      "Histogram of full snapshot rebuild duration in seconds",
		Buckets:   m.histogramBuckets,
	})

	m.rebuildLastUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_last_rebuild_unix",
		Help:      "Unix time of the last snapshot rebuild",
	})

	m.ledgerEvents = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ledger_events",
		Help:      "Number of events in the award ledger",
	})

	m.ledgerPlays = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ledger_plays",
		Help:      "Number of plays in the play ledger",
	})

	m.players = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players",
		Help:      "Number of distinct ranked players in the snapshot",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total preview server requests by path and status code",
	}, []string{"path", "code"})
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordAwardsFolded adds to the folded-award counter.
func RecordAwardsFolded(n int) {
	if n > 0 {
		globalManager.awardsFolded.Add(float64(n))
	}
}

// RecordPlaysFolded adds to the folded-play counter.
func RecordPlaysFolded(n int) {
	if n > 0 {
		globalManager.playsFolded.Add(float64(n))
	}
}

// RecordRebuild observes one full snapshot rebuild.
func RecordRebuild(d time.Duration) {
	globalManager.rebuildCount.Inc()
	globalManager.rebuildDuration.Observe(d.Seconds())
	globalManager.rebuildLastUnix.SetToCurrentTime()
}

// UpdateLedgerSizes sets the ledger size gauges.
func UpdateLedgerSizes(events, plays int) {
	globalManager.ledgerEvents.Set(float64(events))
	globalManager.ledgerPlays.Set(float64(plays))
}

// UpdatePlayerCount sets the ranked-player gauge.
func UpdatePlayerCount(n int) {
	globalManager.players.Set(float64(n))
}

// RecordHTTPRequest counts one preview server request.
func RecordHTTPRequest(path, code string) {
	globalManager.httpRequests.WithLabelValues(path, code).Inc()
}
