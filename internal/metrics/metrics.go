package metrics

import "github.com/prometheus/client_golang/prometheus"

// Generation results used as the "result" label of NewDispositionsGeneratedTotal.
const (
	ResultOK                = "ok"
	ResultNoRoute           = "no_route"
	ResultNoAutoLoadingCity = "no_auto_loading_city"
	ResultError             = "error"
)

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewDispositionsGeneratedTotal counts generation attempts by result.
func NewDispositionsGeneratedTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispositions_generated_total",
		Help: "Total number of disposition generation attempts by result",
	}, []string{"result"})
}

// NewDispositionsExpiredTotal counts unaccepted dispositions removed after their deadline.
func NewDispositionsExpiredTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispositions_expired_total",
		Help: "Total number of unaccepted dispositions deleted after their deadline",
	})
}

// NewOffersPublishedTotal counts offers put on the market.
func NewOffersPublishedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offers_published_total",
		Help: "Total number of offers published on the market",
	})
}

// NewJobEventsTotal counts consumed job events by status and outcome.
func NewJobEventsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "job_events_total",
		Help: "Total number of consumed job events by status and outcome",
	}, []string{"status", "outcome"})
}
