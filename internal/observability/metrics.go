package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// NOTAM service.
type Metrics struct {
	// Retrieval sweep metrics.
	LinesScanned        prometheus.Counter
	AdvisoriesExtracted prometheus.Counter
	ExpandFailures      prometheus.Counter
	RecordsStored       prometheus.Counter
	NotamsPublished     prometheus.Counter
	SweepDuration       prometheus.Histogram
	PipelineRunning     prometheus.Gauge

	// Validation and rendering metrics.
	RecordsAccepted prometheus.Counter
	RecordsRejected prometheus.Counter
	RenderSetsBuilt prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		LinesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "notamview",
			Name:      "lines_scanned_total",
			Help:      "Total notice page lines scanned.",
		}),
		AdvisoriesExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "notamview",
			Name:      "advisories_extracted_total",
			Help:      "Total unique advisories extracted from notice pages.",
		}),
		ExpandFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "notamview",
			Name:      "expand_failures_total",
			Help:      "Advisory groups dropped for mixed prefixes or malformed timespans.",
		}),
		RecordsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "notamview",
			Name:      "records_stored_total",
			Help:      "Raw records appended to day files.",
		}),
		NotamsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "notamview",
			Name:      "notams_published_total",
			Help:      "Validated NOTAMs published to the feed topic.",
		}),
		SweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "notamview",
			Name:      "sweep_duration_seconds",
			Help:      "Duration of a complete fetch-extract-persist sweep.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "notamview",
			Name:      "pipeline_running",
			Help:      "1 when the retrieval pipeline is active, 0 when shut down.",
		}),
		RecordsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "notamview",
			Name:      "records_accepted_total",
			Help:      "Raw records that passed whole-record validation.",
		}),
		RecordsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "notamview",
			Name:      "records_rejected_total",
			Help:      "Raw records dropped by validation.",
		}),
		RenderSetsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "notamview",
			Name:      "render_sets_built_total",
			Help:      "Render sets computed for map output.",
		}),
	}

	prometheus.MustRegister(
		m.LinesScanned,
		m.AdvisoriesExtracted,
		m.ExpandFailures,
		m.RecordsStored,
		m.NotamsPublished,
		m.SweepDuration,
		m.PipelineRunning,
		m.RecordsAccepted,
		m.RecordsRejected,
		m.RenderSetsBuilt,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		LinesScanned:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "notamview", Name: "lines_scanned_total"}),
		AdvisoriesExtracted: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "notamview", Name: "advisories_extracted_total"}),
		ExpandFailures:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "notamview", Name: "expand_failures_total"}),
		RecordsStored:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "notamview", Name: "records_stored_total"}),
		NotamsPublished:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "notamview", Name: "notams_published_total"}),
		SweepDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "notamview", Name: "sweep_duration_seconds"}),
		PipelineRunning:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "notamview", Name: "pipeline_running"}),
		RecordsAccepted:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "notamview", Name: "records_accepted_total"}),
		RecordsRejected:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "notamview", Name: "records_rejected_total"}),
		RenderSetsBuilt:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "notamview", Name: "render_sets_built_total"}),
	}
}
