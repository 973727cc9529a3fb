// Package metrics holds the Prometheus collectors of the order pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orders"

// Metrics groups the counters and gauges updated by the queue producer,
// the processing job and the stale pending scan.
type Metrics struct {
	Enqueued           prometheus.Counter
	Rejected           prometheus.Counter
	Dispatched         prometheus.Counter
	Processed          prometheus.Counter
	Failed             prometheus.Counter
	ProcessingDuration prometheus.Histogram
	StalePending       prometheus.Gauge
}

// New registers the pipeline collectors on reg.
// Pass prometheus.NewRegistry() in tests to keep them isolated.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Enqueued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queue_enqueued_total",
			Help:      "Order identifiers accepted by the bounded queue.",
		}),
		Rejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queue_rejected_total",
			Help:      "Order identifiers dropped because the queue was full.",
		}),
		Dispatched: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "processing_dispatched_total",
			Help:      "Orders handed to a processing task.",
		}),
		Processed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "processing_succeeded_total",
			Help:      "Orders that reached PROCESSED through the pipeline.",
		}),
		Failed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "processing_failed_total",
			Help:      "Processing tasks that ended with an error or panic.",
		}),
		ProcessingDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "processing_duration_seconds",
			Help:      "Wall time of a processing task.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
		StalePending: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stale_pending",
			Help:      "PENDING orders older than the configured threshold at the last scan.",
		}),
	}
}

// QueueStats is the read side of the bounded queue.
type QueueStats interface {
	Len() int
	Cap() int
}

// RegisterQueue exposes the current depth and capacity of q.
func RegisterQueue(reg prometheus.Registerer, q QueueStats) {
	factory := promauto.With(reg)

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "queue_depth",
		Help:      "Order identifiers waiting in the queue.",
	}, func() float64 { return float64(q.Len()) })

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "queue_capacity",
		Help:      "Maximum number of order identifiers the queue holds.",
	}, func() float64 { return float64(q.Cap()) })
}
