package metrics

import (
	"github.com/haguru/docgate/internal/interfaces"
)

var (
	RequestDurationSecondsBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
)

const (
	RequestsTotal              = "http_requests_total"
	RequestsTotalHelp          = "Total number of HTTP requests by route, method and status"
	RequestDurationSeconds     = "http_request_duration_seconds"
	RequestDurationSecondsHelp = "Duration of HTTP requests in seconds"
	OperationErrorsTotal       = "operation_errors_total"
	OperationErrorsTotalHelp   = "Total number of failed document operations by operation and error kind"
	RateLimitedTotal           = "rate_limited_total"
	RateLimitedTotalHelp       = "Total number of requests rejected by the rate limiter"
	StoreUp                    = "store_up"
	StoreUpHelp                = "Whether the last health check reached the document store (1) or not (0)"
)

// Register declares every metric the gateway reports on m.
func Register(m interfaces.Metrics) {
	m.RegisterCounterVec(RequestsTotal, RequestsTotalHelp, []string{"route", "method", "status"})
	m.RegisterHistogramVec(
		RequestDurationSeconds,
		RequestDurationSecondsHelp,
		RequestDurationSecondsBuckets,
		[]string{"route", "method"})
	m.RegisterCounterVec(OperationErrorsTotal, OperationErrorsTotalHelp, []string{"operation", "kind"})
	m.RegisterCounter(RateLimitedTotal, RateLimitedTotalHelp)
	m.RegisterGauge(StoreUp, StoreUpHelp)
}
