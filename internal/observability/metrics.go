package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the record service.
type Metrics struct {
	// Upstream NGWMN traffic.
	UpstreamRequests *prometheus.CounterVec // labels: endpoint={well_log,water_quality,statistics,features}, outcome={success,error,empty}

	// Extraction pipeline metrics.
	ExtractDuration  *prometheus.HistogramVec // labels: record_type={well_log,water_quality}
	RecordsExtracted *prometheus.CounterVec   // labels: record_type
	EmptyRecords     *prometheus.CounterVec   // labels: record_type

	// Kafka record sink metrics.
	SinkPublished prometheus.Counter
	SinkErrors    prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "well_data",
			Name:      "upstream_requests_total",
			Help:      "NGWMN upstream requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		ExtractDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "well_data",
			Name:      "extract_duration_seconds",
			Help:      "Duration of a complete fetch-and-extract cycle by record type.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"record_type"}),
		RecordsExtracted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "well_data",
			Name:      "records_extracted_total",
			Help:      "Total records successfully extracted by type.",
		}, []string{"record_type"}),
		EmptyRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "well_data",
			Name:      "empty_records_total",
			Help:      "Requests for which the upstream had no record, by type.",
		}, []string{"record_type"}),
		SinkPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "well_data",
			Name:      "sink_published_total",
			Help:      "Total records published to the Kafka sink.",
		}),
		SinkErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "well_data",
			Name:      "sink_errors_total",
			Help:      "Total failed publishes to the Kafka sink.",
		}),
	}

	prometheus.MustRegister(
		m.UpstreamRequests,
		m.ExtractDuration,
		m.RecordsExtracted,
		m.EmptyRecords,
		m.SinkPublished,
		m.SinkErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "well_data", Name: "upstream_requests_total"}, []string{"endpoint", "outcome"}),
		ExtractDuration:  prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "well_data", Name: "extract_duration_seconds"}, []string{"record_type"}),
		RecordsExtracted: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "well_data", Name: "records_extracted_total"}, []string{"record_type"}),
		EmptyRecords:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "well_data", Name: "empty_records_total"}, []string{"record_type"}),
		SinkPublished:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "well_data", Name: "sink_published_total"}),
		SinkErrors:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "well_data", Name: "sink_errors_total"}),
	}
}
