// Package metrics counts record operations on a private Prometheus registry.
// The tool serves no HTTP, so the registry is written out as a textfile for
// the node exporter's textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation results.
const (
	ResultOK            = "ok"
	ResultInvalidInput  = "invalid_input"
	ResultDuplicateKey  = "duplicate_key"
	ResultNotFound      = "not_found"
	ResultPersistFailed = "persist_failed"
)

// Recorder holds the eventdesk collectors.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	records    *prometheus.GaugeVec
	saves      prometheus.Histogram
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eventdesk",
			Name:      "operations_total",
			Help:      "Record operations by kind, operation and result.",
		}, []string{"kind", "op", "result"}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "eventdesk",
			Name:      "records",
			Help:      "Records currently held per kind.",
		}, []string{"kind"}),
		saves: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "eventdesk",
			Name:      "save_duration_seconds",
			Help:      "Time to persist all collections after a mutation.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
	r.registry.MustRegister(r.operations, r.records, r.saves)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Operation counts one add/display/delete.
func (r *Recorder) Operation(kind, op, result string) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(kind, op, result).Inc()
}

// Records sets the record count of a kind.
func (r *Recorder) Records(kind string, n int) {
	if r == nil {
		return
	}
	r.records.WithLabelValues(kind).Set(float64(n))
}

// ObserveSave records how long a full save took.
func (r *Recorder) ObserveSave(d time.Duration) {
	if r == nil {
		return
	}
	r.saves.Observe(d.Seconds())
}

// WriteTextfile writes the current values in the Prometheus text format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
