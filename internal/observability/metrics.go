package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weatherbot"

// Metrics holds the Prometheus counters and histograms for a batch run.
type Metrics struct {
	GridsLoaded     *prometheus.CounterVec   // labels: kind
	SlicesSkipped   *prometheus.CounterVec   // labels: kind, reason={not_found,http,format,decompression,classify,other}
	Classifications *prometheus.CounterVec   // labels: kind, outcome={positive,negative}
	Score           *prometheus.HistogramVec // labels: kind
	PathCost        prometheus.Histogram
	FetchDuration   *prometheus.HistogramVec // labels: source={web,archive}
	FilesMirrored   *prometheus.CounterVec   // labels: outcome={written,missing}

	registry *prometheus.Registry
}

// NewMetrics creates all metrics and registers them with reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		GridsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grids_loaded_total",
			Help:      "Forecast grids fetched and decoded.",
		}, []string{"kind"}),
		SlicesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slices_skipped_total",
			Help:      "Forecast time slices skipped after an error, by reason.",
		}, []string{"kind", "reason"}),
		Classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Time slices classified, by outcome.",
		}, []string{"kind", "outcome"}),
		Score: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classification_score",
			Help:      "Linear classifier score per time slice.",
			Buckets:   []float64{-4, -2, -1, -0.5, 0, 0.5, 1, 2, 4},
		}, []string{"kind"}),
		PathCost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "xc_path_cost",
			Help:      "Cost of the best XC route.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time to fetch one forecast file.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"source"}),
		FilesMirrored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_mirrored_total",
			Help:      "Forecast files mirrored to disk, by outcome.",
		}, []string{"outcome"}),
		registry: reg,
	}

	reg.MustRegister(
		m.GridsLoaded,
		m.SlicesSkipped,
		m.Classifications,
		m.Score,
		m.PathCost,
		m.FetchDuration,
		m.FilesMirrored,
	)

	return m
}

// NewMetricsForTesting creates Metrics on a fresh registry.
func NewMetricsForTesting() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

// Registry returns the registry the metrics live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes every metric to path in the Prometheus text format,
// for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
