// Package debugserver serves runtime profiles on a separate listener.
package debugserver

import (
	"crypto/subtle"
	"net"
	"net/http"
	"net/http/pprof"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"justdeliver-dispatch/internal/logx"
)

// Credentials guard profile access from non-loopback clients.
type Credentials struct {
	User string
	Pass string
}

// New returns a server for addr, or nil when addr is empty.
func New(addr string, creds Credentials, logger logx.Logger) *http.Server {
	if strings.TrimSpace(addr) == "" {
		return nil
	}
	return &http.Server{
		Addr:              addr,
		Handler:           Handler(creds, logger),
		ReadHeaderTimeout: 5 * time.Second,
		// profile and trace stream for up to their "seconds" parameter
		WriteTimeout: 2 * time.Minute,
	}
}

// Handler mounts the pprof endpoints under /debug/pprof.
func Handler(creds Credentials, logger logx.Logger) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	r := chi.NewRouter()
	r.Use(guard(creds, logger))
	r.Route("/debug/pprof", func(r chi.Router) {
		r.Get("/", pprof.Index)
		r.Get("/cmdline", pprof.Cmdline)
		r.Get("/profile", pprof.Profile)
		r.Get("/symbol", pprof.Symbol)
		r.Post("/symbol", pprof.Symbol)
		r.Get("/trace", pprof.Trace)
		for _, name := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
			r.Handle("/"+name, pprof.Handler(name))
		}
	})
	return r
}

// guard lets loopback clients through and asks everyone else for basic auth.
func guard(creds Credentials, logger logx.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isLoopback(r.RemoteAddr) || authorized(r, creds) {
				next.ServeHTTP(w, r)
				return
			}
			logger.Warn("debug access denied",
				logx.String("remote_addr", r.RemoteAddr),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("WWW-Authenticate", `Basic realm="debug"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		})
	}
}

func authorized(r *http.Request, creds Credentials) bool {
	if creds.User == "" || creds.Pass == "" {
		return false
	}
	u, p, ok := r.BasicAuth()
	return ok && secureEq(u, creds.User) && secureEq(p, creds.Pass)
}

func secureEq(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func isLoopback(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	ip := net.ParseIP(strings.TrimSpace(host))
	return ip != nil && ip.IsLoopback()
}
