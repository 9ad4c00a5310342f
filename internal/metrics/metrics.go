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

// Business Metrics
var (
	VotesCast = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVotesCast,
			Help: HelpTextVotesCast,
		},
		[]string{LabelField},
	)

	SlidesServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSlidesServed,
			Help: HelpTextSlidesServed,
		},
	)

	JournalsRendered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameJournalsRendered,
			Help: HelpTextJournalsRendered,
		},
	)

	CeremoniesServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCeremoniesServed,
			Help: HelpTextCeremoniesServed,
		},
	)

	PredictionsRequested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsRequested,
			Help: HelpTextPredictionsRequested,
		},
	)
)
