package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	obs "justdeliver-dispatch/internal/http/middleware"
	"justdeliver-dispatch/internal/metrics"
	"justdeliver-dispatch/internal/service/disposition"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter     `name:"rate_limit_exceeded_total"`
	OffersPublishedTotal   prometheus.Counter     `name:"offers_published_total"`
	JobEventsTotal         *prometheus.CounterVec `name:"job_events_total"`
	Dispositions           disposition.Metrics
	HTTP                   *obs.HTTPMetrics
}

// provideMetrics registers the service collectors on the default registerer.
// Collectors registered earlier in the process are reused.
func provideMetrics() (metricsOut, error) {
	var out metricsOut
	var err error

	if out.RateLimitExceededTotal, err = register("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.OffersPublishedTotal, err = register("offers_published_total", metrics.NewOffersPublishedTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.JobEventsTotal, err = register("job_events_total", metrics.NewJobEventsTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.Dispositions.Generated, err = register("dispositions_generated_total", metrics.NewDispositionsGeneratedTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.Dispositions.Expired, err = register("dispositions_expired_total", metrics.NewDispositionsExpiredTotal()); err != nil {
		return metricsOut{}, err
	}

	httpMetrics := obs.NewHTTPMetrics()
	if httpMetrics.Requests, err = register("http_requests_total", httpMetrics.Requests); err != nil {
		return metricsOut{}, err
	}
	if httpMetrics.Duration, err = register("http_request_duration_seconds", httpMetrics.Duration); err != nil {
		return metricsOut{}, err
	}
	out.HTTP = httpMetrics

	return out, nil
}

func register[T prometheus.Collector](name string, c T) (T, error) {
	err := prometheus.DefaultRegisterer.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("register %s: %w", name, err)
}
