package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameVotesCast            = "votes_cast_total"
	MetricNameSlidesServed         = "wrapped_slides_served_total"
	MetricNameJournalsRendered     = "adventure_journals_rendered_total"
	MetricNameCeremoniesServed     = "award_ceremonies_served_total"
	MetricNamePredictionsRequested = "predictions_requested_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextVotesCast            = "Total number of votes cast"
	HelpTextSlidesServed         = "Total number of wrapped slide decks served"
	HelpTextJournalsRendered     = "Total number of adventure journals rendered"
	HelpTextCeremoniesServed     = "Total number of award ceremonies served"
	HelpTextPredictionsRequested = "Total number of predictions requested"
)

// Metric label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelField  = "field"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
