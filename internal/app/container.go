package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"justdeliver-dispatch/internal/catalog"
	"justdeliver-dispatch/internal/config"
	"justdeliver-dispatch/internal/http/handlers"
	"justdeliver-dispatch/internal/http/middleware/auth"
	"justdeliver-dispatch/internal/logx"
	"justdeliver-dispatch/internal/repository"
	"justdeliver-dispatch/internal/service/disposition"
	"justdeliver-dispatch/internal/service/generator"
	"justdeliver-dispatch/internal/service/jobs"
	"justdeliver-dispatch/internal/service/offers"
	"justdeliver-dispatch/internal/transport/kafka"
)

// DBConnectFunc opens the pool the container hands out.
type DBConnectFunc func(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error)

// expiryInterval is the period of the disposition expiry sweeper. Zero disables it.
type expiryInterval time.Duration

type processKind int

const (
	processAPI processKind = iota
	processWorker
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect DBConnectFunc
	logFatalf func(string, ...interface{})
	kind      processKind
}

// NewContainerBuilder returns a builder for the HTTP API process.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectAndMigrate,
		logFatalf: log.Fatalf,
		kind:      processAPI,
	}
}

// NewWorkerContainerBuilder returns a builder for the job-event worker process.
func NewWorkerContainerBuilder() *ContainerBuilder {
	b := NewContainerBuilder()
	b.kind = processWorker
	return b
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn DBConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := container.Provide(provideMetrics); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	switch b.kind {
	case processWorker:
		if err := registerKafka(container); err != nil {
			return nil, fmt.Errorf("kafka: %w", err)
		}
	default:
		if err := registerHTTP(container); err != nil {
			return nil, fmt.Errorf("http: %w", err)
		}
	}
	return container, nil
}

// MustBuildContainer builds the HTTP API container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the job-event worker container.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewWorkerContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		func(cfg *config.Config) logx.Logger {
			logger := NewLogger(cfg.LogLevel)
			if !cfg.EnvFileLoaded {
				logger.Debug(".env not loaded, using environment only")
			}
			return logger
		},
		func(cfg *config.Config) expiryInterval {
			return expiryInterval(cfg.Disposition.ExpiryInterval)
		},
	)
}

func registerDb(container *dig.Container, dbConnect DBConnectFunc) error {
	providerDB := func(ctx context.Context, logger logx.Logger, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

type dispositionServiceIn struct {
	dig.In

	Config  *config.Config
	Repo    *repository.DispositionRepo
	Gen     *generator.Generator
	Timeout time.Duration
	Logger  logx.Logger
	Metrics disposition.Metrics
}

type offersServiceIn struct {
	dig.In

	Config    *config.Config
	Offers    *repository.OfferRepo
	Tx        *repository.DispositionRepo
	Gen       *generator.Generator
	Timeout   time.Duration
	Logger    logx.Logger
	Published prometheus.Counter `name:"offers_published_total"`
}

type jobsProcessorIn struct {
	dig.In

	Dispositions *disposition.Service
	Events       *prometheus.CounterVec `name:"job_events_total"`
	Logger       logx.Logger
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, logger logx.Logger) (*catalog.Catalog, error) {
			c, err := catalog.Load(cfg.CatalogPath)
			if err != nil {
				return nil, err
			}
			logger.Info("city catalog loaded",
				logx.String("path", cfg.CatalogPath),
				logx.Int("cities", c.Len()),
			)
			return c, nil
		},
		repository.NewDispositionRepo,
		repository.NewOfferRepo,
		func() time.Duration { return 3 * time.Second },
		func(c *catalog.Catalog, repo *repository.DispositionRepo) *generator.Generator {
			return generator.New(c, repo, nil)
		},
		func(in dispositionServiceIn) *disposition.Service {
			d := in.Config.Disposition
			return disposition.NewService(in.Repo, in.Gen, disposition.Defaults{
				CargoLabel:  d.CargoLabel,
				WeightClass: d.WeightClass,
				TTL:         d.DefaultTTL,
			}, in.Metrics, in.Timeout, in.Logger)
		},
		func(in offersServiceIn) *offers.Service {
			d := in.Config.Disposition
			return offers.NewService(in.Offers, in.Tx, in.Gen, nil, offers.Settings{
				CargoLabel:  d.CargoLabel,
				WeightClass: d.WeightClass,
				TTL:         d.DefaultTTL,
			}, in.Published, in.Timeout, in.Logger)
		},
		func(in jobsProcessorIn) *jobs.Processor {
			return jobs.NewProcessor(in.Dispositions, in.Events, in.Logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	verifierProvider := func(cfg *config.Config, logger logx.Logger) *auth.Verifier {
		if cfg.Auth.JWTSecret == "" {
			logger.Warn("AUTH_JWT_SECRET is empty, driver routes reject every request")
		}
		return auth.NewVerifier(cfg.Auth.JWTSecret)
	}
	return provideAll(container,
		handlers.New,
		handlers.NewDispositionUsecase,
		handlers.NewDispositionHandler,
		handlers.NewOfferUsecase,
		handlers.NewOfferHandler,
		handlers.NewCountryLister,
		handlers.NewCatalogHandler,
		verifierProvider,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
		newDebugServer,
	)
}

func registerKafka(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, logger logx.Logger, p *jobs.Processor) (*kafka.Consumer, error) {
			k := cfg.Kafka
			return kafka.NewConsumer(logger, k.Brokers, k.GroupID, k.JobsTopic, makeJobsKafka(p))
		},
	)
}
