package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"justdeliver-dispatch/internal/logx"
	"justdeliver-dispatch/internal/service/disposition"
)

// Runner runs the HTTP API process.
type Runner struct {
	runFn  func(*dig.Container) error
	exitFn func(int)
}

// NewRunner returns a new Runner.
func NewRunner() *Runner {
	return &Runner{runFn: run, exitFn: os.Exit}
}

// MustRun starts the HTTP server using the provided DI container and blocks until shutdown.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}

	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		if r.exitFn != nil {
			r.exitFn(1)
		}
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })
	return logger
}

type runIn struct {
	dig.In

	Ctx      context.Context
	Server   *http.Server
	Debug    *http.Server `name:"debug_server" optional:"true"`
	Pool     *pgxpool.Pool
	Logger   logx.Logger
	Interval expiryInterval
	Expirer  *disposition.Service
}

func run(container *dig.Container) error {
	return container.Invoke(func(in runIn) error {
		serveErr := startServer(in.Server, in.Logger)
		startDebugServer(in.Debug, in.Logger)
		startExpiryLoop(in.Ctx, in.Logger, in.Expirer, time.Duration(in.Interval))
		err := waitForShutdown(in.Ctx, in.Logger, serveErr)
		gracefulShutdown(in.Server, in.Logger, 15*time.Second)
		if in.Debug != nil {
			gracefulShutdown(in.Debug, in.Logger, time.Second)
		}
		closeResources(in.Pool, in.Server, in.Logger)
		return err
	})
}

func startServer(server *http.Server, logger logx.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("service-dispatch listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

// startDebugServer serves profiles in the background. Its failure does not stop the API.
func startDebugServer(server *http.Server, logger logx.Logger) {
	if server == nil {
		return
	}
	go func() {
		logger.Info("debug listener started", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("debug listener error", logx.Err(err))
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger, serveErr <-chan error) error {
	select {
	case <-ctx.Done():
		logger.Info("shutting down service-dispatch")
		return ctx.Err()
	case err := <-serveErr:
		logger.Error("listen error", logx.Err(err))
		return err
	}
}

type overdueExpirer interface {
	ExpireOverdue(ctx context.Context) (int64, error)
}

// startExpiryLoop deletes overdue unaccepted dispositions every interval until ctx is done.
func startExpiryLoop(ctx context.Context, logger logx.Logger, svc overdueExpirer, interval time.Duration) {
	if interval <= 0 || svc == nil {
		logger.Info("disposition expiry disabled")
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := svc.ExpireOverdue(ctx); err != nil && ctx.Err() == nil {
					logger.Warn("disposition expiry failed", logx.Err(err))
				}
			}
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, server *http.Server, logger logx.Logger) {
	if err := server.Close(); err != nil {
		logger.Error("server close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
}
