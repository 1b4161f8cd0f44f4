package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"justdeliver-dispatch/internal/http/handlers"
	obs "justdeliver-dispatch/internal/http/middleware"
	"justdeliver-dispatch/internal/http/middleware/auth"
	"justdeliver-dispatch/internal/http/middleware/ratelimit"
	"justdeliver-dispatch/internal/logx"
)

const requestTimeout = 5 * time.Second

// Deps groups everything the router mounts.
type Deps struct {
	Logger       logx.Logger
	Base         *handlers.Handlers
	Dispositions *handlers.DispositionHandler
	Offers       *handlers.OfferHandler
	Catalog      *handlers.CatalogHandler
	Verifier     *auth.Verifier
	RateLimit    *ratelimit.Middleware
	HTTPMetrics  *obs.HTTPMetrics
	Gatherer     prometheus.Gatherer
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = logx.Nop()
	}
	limit := d.RateLimit
	if limit == nil {
		limit = ratelimit.New(logger, nil, nil)
	}
	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(obs.Observability(logger, d.HTTPMetrics))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.NotFound(d.Base.NotFound)
	r.MethodNotAllowed(d.Base.MethodNotAllowed)

	r.Group(func(r chi.Router) {
		r.Use(limit.Handler())
		r.Get("/catalog/countries", d.Catalog.Countries)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(d.Verifier, logger))
		r.Use(limit.Handler())

		r.Route("/dispositions", func(r chi.Router) {
			r.Get("/", d.Dispositions.List)
			r.Post("/generate", d.Dispositions.Generate)
			r.Post("/{id}/accept", d.Dispositions.Accept)
			r.Post("/{id}/cancel", d.Dispositions.Cancel)
			r.Delete("/{id}", d.Dispositions.Delete)
		})
		r.Route("/offers", func(r chi.Router) {
			r.Get("/", d.Offers.List)
			r.Post("/publish", d.Offers.Publish)
			r.Post("/{id}/accept", d.Offers.Accept)
		})
	})

	return r
}
