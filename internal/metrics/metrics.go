package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Greeting Metrics
var (
	GreetingResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGreetingResolutions,
			Help: HelpTextGreetingResolutions,
		},
		[]string{LabelSource},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreErrors,
			Help: HelpTextStoreErrors,
		},
		[]string{LabelOp},
	)

	AutoUpdateTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAutoUpdateTicks,
			Help: HelpTextAutoUpdateTicks,
		},
	)

	LocaleSwitches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLocaleSwitches,
			Help: HelpTextLocaleSwitches,
		},
		[]string{LabelResult},
	)
)
