// Package metrics records run metrics with the Prometheus client library.
//
// noisefetch is a short-lived process, so nothing is served over HTTP.
// Metrics live on a private registry and are written in the node_exporter
// textfile collector format after each run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bft-labs/noisefetch/internal/domain"
	"github.com/bft-labs/noisefetch/internal/ports"
)

const namespace = "noisefetch"

// PrometheusRecorder implements ports.Recorder.
type PrometheusRecorder struct {
	registry *prometheus.Registry
	path     string
	now      func() time.Time

	fetchTotal    *prometheus.CounterVec
	duration      prometheus.Histogram
	pageBytes     prometheus.Gauge
	lastSuccessTS prometheus.Gauge
}

// NewPrometheusRecorder registers the noisefetch metrics on a fresh registry.
// When path is empty Flush is a no-op.
func NewPrometheusRecorder(path string) *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		path:     path,
		now:      time.Now,
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Fetch-and-write runs by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Duration of successful fetch-and-write runs.",
			Buckets:   prometheus.DefBuckets,
		}),
		pageBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "page_bytes",
			Help:      "Size of the last written page.",
		}),
		lastSuccessTS: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run.",
		}),
	}
	r.registry.MustRegister(r.fetchTotal, r.duration, r.pageBytes, r.lastSuccessTS)
	return r
}

// RecordSuccess counts a successful run.
func (r *PrometheusRecorder) RecordSuccess(res domain.Result) {
	r.fetchTotal.WithLabelValues("success").Inc()
	r.duration.Observe(res.Duration.Seconds())
	r.pageBytes.Set(float64(res.Bytes))
	r.lastSuccessTS.Set(float64(r.now().Unix()))
}

// RecordFailure counts a failed run under reason.
func (r *PrometheusRecorder) RecordFailure(reason string) {
	r.fetchTotal.WithLabelValues(reason).Inc()
}

// Flush writes the registry to the configured textfile.
func (r *PrometheusRecorder) Flush() error {
	if r.path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(r.path, r.registry)
}

// Registry exposes the underlying registry, mostly for tests.
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

var _ ports.Recorder = (*PrometheusRecorder)(nil)
