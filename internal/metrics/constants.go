package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Resolution metric names
const (
	MetricNameResolutionsTotal     = "resolutions_total"
	MetricNameAuctionOverrides     = "auction_overrides_total"
	MetricNameDepthShortfalls      = "depth_shortfalls_total"
	MetricNameResolutionDuration   = "resolution_duration_seconds"
	MetricNameRecipesRanked        = "recipes_ranked_total"
	MetricNameClientRequestsTotal  = "client_requests_total"
	MetricNameClientCacheHitsTotal = "client_cache_hits_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Resolution metric help text
const (
	HelpTextResolutionsTotal     = "Total number of top-level cost resolutions by chosen source"
	HelpTextAuctionOverrides     = "Total number of crafted costs discarded for a cheaper market purchase"
	HelpTextDepthShortfalls      = "Total number of order-book walks that ran out of depth"
	HelpTextResolutionDuration   = "Cost resolution latency in seconds"
	HelpTextRecipesRanked        = "Total number of recipes evaluated by the profit ranker"
	HelpTextClientRequestsTotal  = "Total number of trade API requests by outcome"
	HelpTextClientCacheHitsTotal = "Total number of trade API responses served from cache"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelSource  = "source"
	LabelOutcome = "outcome"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ResolutionLatencyBuckets covers the in-memory resolution path, which is
// orders of magnitude faster than the HTTP surface around it.
var ResolutionLatencyBuckets = []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1}
