package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"justdeliver-dispatch/internal/config"
	"justdeliver-dispatch/internal/http/debugserver"
	"justdeliver-dispatch/internal/http/handlers"
	obs "justdeliver-dispatch/internal/http/middleware"
	"justdeliver-dispatch/internal/http/middleware/auth"
	"justdeliver-dispatch/internal/http/middleware/ratelimit"
	"justdeliver-dispatch/internal/http/router"
	"justdeliver-dispatch/internal/logx"
)

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewTokenBucketLimiter(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

type rateLimitIn struct {
	dig.In
	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter)
}

type routerIn struct {
	dig.In

	Logger       logx.Logger
	Base         *handlers.Handlers
	Dispositions *handlers.DispositionHandler
	Offers       *handlers.OfferHandler
	Catalog      *handlers.CatalogHandler
	Verifier     *auth.Verifier
	RateLimit    *ratelimit.Middleware
	HTTPMetrics  *obs.HTTPMetrics
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Logger:       in.Logger,
		Base:         in.Base,
		Dispositions: in.Dispositions,
		Offers:       in.Offers,
		Catalog:      in.Catalog,
		Verifier:     in.Verifier,
		RateLimit:    in.RateLimit,
		HTTPMetrics:  in.HTTPMetrics,
		Gatherer:     prometheus.DefaultGatherer,
	})
}

type debugServerOut struct {
	dig.Out

	Server *http.Server `name:"debug_server"`
}

func newDebugServer(cfg *config.Config, logger logx.Logger) debugServerOut {
	d := cfg.Debug
	srv := debugserver.New(d.Addr, debugserver.Credentials{User: d.User, Pass: d.Pass}, logger)
	if srv != nil && (d.User == "" || d.Pass == "") {
		logger.Warn("debug listener has no credentials, only loopback clients are allowed")
	}
	return debugServerOut{Server: srv}
}
