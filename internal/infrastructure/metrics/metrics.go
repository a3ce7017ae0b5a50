package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Counter of handled HTTP requests.",
		}, []string{"method", "route", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "catalog",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Bucketed histogram of HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"})

	StoreWriteCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "store",
			Name:      "writes_total",
			Help:      "Counter of full catalog rewrites by result.",
		}, []string{"result"})
)

func init() {
	prometheus.MustRegister(HTTPRequestCounter)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(StoreWriteCounter)
}
