package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"justdeliver-dispatch/internal/logx"
	"justdeliver-dispatch/internal/service/disposition"
	testlog "justdeliver-dispatch/internal/testutil"
)

type fakeExpirer struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeExpirer) ExpireOverdue(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return 1, f.err
}

func (f *fakeExpirer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// requireEventually polls condition until it holds or timeout passes, so slow CI schedulers do not flake.
func requireEventually(t *testing.T, timeout time.Duration, tick time.Duration, condition func() bool, msgAndArgs ...any) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		if condition() {
			return
		}
		if time.Now().After(deadline) {
			if len(msgAndArgs) > 0 {
				t.Fatalf(msgAndArgs[0].(string), msgAndArgs[1:]...)
			}
			t.Fatalf("condition not satisfied within %s", timeout)
		}
		<-ticker.C
	}
}

func TestStartExpiryLoop_CallsExpireOverdue(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &fakeExpirer{}
	startExpiryLoop(ctx, logx.Nop(), svc, 10*time.Millisecond)

	requireEventually(t, 500*time.Millisecond, 5*time.Millisecond,
		func() bool { return svc.Calls() > 1 },
		"expected ExpireOverdue to be called repeatedly",
	)
}

func TestStartExpiryLoop_LogsFailuresAndKeepsRunning(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := testlog.New()
	svc := &fakeExpirer{err: errors.New("db down")}
	startExpiryLoop(ctx, rec.Logger(), svc, 5*time.Millisecond)

	requireEventually(t, 500*time.Millisecond, 5*time.Millisecond,
		func() bool { return svc.Calls() >= 2 && rec.Has("warn", "disposition expiry failed") },
	)
}

func TestStartExpiryLoop_Disabled(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	svc := &fakeExpirer{}
	startExpiryLoop(context.Background(), rec.Logger(), svc, 0)

	time.Sleep(20 * time.Millisecond)
	require.Zero(t, svc.Calls())
	require.True(t, rec.Has("info", "disposition expiry disabled"))
}

func TestGracefulShutdown_DoesNotPanic(t *testing.T) {
	t.Parallel()

	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	require.NotPanics(t, func() {
		gracefulShutdown(srv, logx.Nop(), 100*time.Millisecond)
	})
}

func newLoggerContainer(t *testing.T, rec *testlog.Recorder) *dig.Container {
	t.Helper()
	container := dig.New()
	require.NoError(t, container.Provide(func() logx.Logger { return rec.Logger() }))
	return container
}

func TestMustRun_ShutdownRequested(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	r := &Runner{runFn: func(*dig.Container) error { return context.Canceled }}
	r.MustRun(newLoggerContainer(t, rec))
	require.True(t, rec.Has("info", "shutdown requested, exiting"))
}

func TestRunner_MustRun_StartupTimeout(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	r := &Runner{runFn: func(*dig.Container) error { return context.DeadlineExceeded }}
	r.MustRun(newLoggerContainer(t, rec))
	require.True(t, rec.Has("warn", "startup aborted: startup timeout exceeded"))
}

func TestRunner_MustRun_ExitsOnOtherError(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	code := -1
	r := &Runner{
		runFn:  func(*dig.Container) error { return errors.New("boom") },
		exitFn: func(c int) { code = c },
	}
	r.MustRun(newLoggerContainer(t, rec))
	require.Equal(t, 1, code)
	require.True(t, rec.Has("error", "run error"))
}

func TestNewRunner_DefaultFields(t *testing.T) {
	t.Parallel()

	r := NewRunner()
	require.NotNil(t, r)
	require.NotNil(t, r.runFn)
	require.NotNil(t, r.exitFn)
	require.Equal(t, fmt.Sprintf("%p", run), fmt.Sprintf("%p", r.runFn))
}

func TestRun_InvokesAppRunViaContainer(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container := dig.New()
	require.NoError(t, provideAll(container,
		func() context.Context { return ctx },
		logx.Nop,
		func() *pgxpool.Pool { return nil },
		func() *http.Server {
			return &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
		},
		func() expiryInterval { return 0 },
		func() *disposition.Service { return nil },
	))

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := run(container)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStartDebugServer_NilIsNoop(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	startDebugServer(nil, rec.Logger())
	require.Empty(t, rec.Entries())
}

func TestRun_StartsAndStopsDebugServer(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := testlog.New()
	debug := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}

	container := dig.New()
	require.NoError(t, provideAll(container,
		func() context.Context { return ctx },
		func() logx.Logger { return rec.Logger() },
		func() *pgxpool.Pool { return nil },
		func() *http.Server {
			return &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
		},
		func() expiryInterval { return 0 },
		func() *disposition.Service { return nil },
	))
	require.NoError(t, container.Provide(func() *http.Server { return debug }, dig.Name("debug_server")))

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	require.ErrorIs(t, run(container), context.Canceled)
	require.True(t, rec.Has("info", "debug listener started"))
	require.ErrorIs(t, debug.ListenAndServe(), http.ErrServerClosed)
}
