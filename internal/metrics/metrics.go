package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Metrics collects and exposes the predictor's Prometheus metrics on a
// private registry so tests can instantiate it freely.
type Metrics struct {
	registry *prometheus.Registry

	// Pipeline metrics
	GamesProcessed  *prometheus.CounterVec
	ExamplesEmitted *prometheus.CounterVec
	ExamplesSkipped *prometheus.CounterVec

	// Spread cache metrics
	SpreadCacheHits   prometheus.Counter
	SpreadCacheMisses prometheus.Counter

	// Backtest metrics
	BetsGraded *prometheus.CounterVec
	Bankroll   prometheus.Gauge
}

// New creates a metrics collector with all series registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		GamesProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictor_games_processed_total",
				Help: "Games walked by the training pipeline",
			},
			[]string{"season"},
		),
		ExamplesEmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictor_examples_emitted_total",
				Help: "Training examples produced",
			},
			[]string{"season"},
		),
		ExamplesSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictor_examples_skipped_total",
				Help: "Games dropped for incomplete box scores",
			},
			[]string{"season"},
		),

		SpreadCacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "predictor_spread_cache_hits_total",
				Help: "Market spread lookups served from cache",
			},
		),
		SpreadCacheMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "predictor_spread_cache_misses_total",
				Help: "Market spread lookups that fell through to the database",
			},
		),

		BetsGraded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictor_bets_graded_total",
				Help: "Graded bets by outcome",
			},
			[]string{"outcome"},
		),
		Bankroll: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "predictor_bankroll",
				Help: "Simulated bankroll after the most recent settled bet",
			},
		),
	}

	m.registry.MustRegister(
		m.GamesProcessed,
		m.ExamplesEmitted,
		m.ExamplesSkipped,
		m.SpreadCacheHits,
		m.SpreadCacheMisses,
		m.BetsGraded,
		m.Bankroll,
	)

	return m
}

// Registry returns the prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler serving the scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SetBankroll updates the bankroll gauge from a decimal balance.
func (m *Metrics) SetBankroll(balance decimal.Decimal) {
	f, _ := balance.Float64()
	m.Bankroll.Set(f)
}
