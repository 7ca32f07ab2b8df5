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

// Greeting metric names
const (
	MetricNameGreetingResolutions = "greeting_resolutions_total"
	MetricNameStoreErrors         = "greeting_store_errors_total"
	MetricNameAutoUpdateTicks     = "greeting_auto_update_ticks_total"
	MetricNameLocaleSwitches      = "greeting_locale_switches_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextGreetingResolutions = "Total number of greetings resolved, by the tier that produced them"
	HelpTextStoreErrors         = "Total number of custom greeting store failures, by operation"
	HelpTextAutoUpdateTicks     = "Total number of greetings delivered by auto update"
	HelpTextLocaleSwitches      = "Total number of locale switch attempts, by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelSource = "source"
	LabelOp     = "op"
	LabelResult = "result"
)

// Label values
const (
	OpLoad   = "load"
	OpSave   = "save"
	OpDecode = "decode"

	ResultOK       = "ok"
	ResultNotFound = "not_found"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
