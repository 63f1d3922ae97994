package detect

import "github.com/prometheus/client_golang/prometheus"

var (
	loadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "segmentd",
			Subsystem: "detect",
			Name:      "model_loads_total",
			Help:      "Total number of model load attempts by outcome",
		},
		[]string{"outcome"},
	)

	detectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "segmentd",
			Subsystem: "detect",
			Name:      "detections_total",
			Help:      "Total number of detection calls by outcome",
		},
		[]string{"outcome"},
	)

	processingSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "segmentd",
			Subsystem: "detect",
			Name:      "processing_seconds",
			Help:      "Duration of the model invocation per frame in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)

	backendSwitchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "segmentd",
			Subsystem: "detect",
			Name:      "backend_switch_total",
			Help:      "Backend switch attempts by target backend and outcome",
		},
		[]string{"backend", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(loadsTotal, detectionsTotal, processingSeconds, backendSwitchTotal)
}
