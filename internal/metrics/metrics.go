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

// Resolution Metrics
var (
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResolutionsTotal,
			Help: HelpTextResolutionsTotal,
		},
		[]string{LabelSource},
	)

	AuctionOverrides = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuctionOverrides,
			Help: HelpTextAuctionOverrides,
		},
	)

	DepthShortfalls = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDepthShortfalls,
			Help: HelpTextDepthShortfalls,
		},
	)

	ResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameResolutionDuration,
			Help:    HelpTextResolutionDuration,
			Buckets: ResolutionLatencyBuckets,
		},
	)

	RecipesRanked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipesRanked,
			Help: HelpTextRecipesRanked,
		},
	)
)

// Client Metrics
var (
	ClientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameClientRequestsTotal,
			Help: HelpTextClientRequestsTotal,
		},
		[]string{LabelOutcome},
	)

	ClientCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClientCacheHitsTotal,
			Help: HelpTextClientCacheHitsTotal,
		},
	)
)
