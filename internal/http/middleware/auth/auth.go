package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"justdeliver-dispatch/internal/logx"
)

// ErrUnauthorized is returned for a missing, malformed or rejected bearer token.
var ErrUnauthorized = errors.New("unauthorized")

type ctxKey struct{}

// WithDriverID stores the authenticated driver id in ctx.
func WithDriverID(ctx context.Context, driverID int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, driverID)
}

// DriverID returns the authenticated driver id stored in ctx.
func DriverID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKey{}).(int64)
	return id, ok && id > 0
}

// Verifier checks HS256 bearer tokens whose subject is the numeric driver id.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

// NewVerifier creates a Verifier for secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret), now: time.Now}
}

// Verify parses token and returns the driver id from its "sub" claim.
func (v *Verifier) Verify(token string) (int64, error) {
	if len(v.secret) == 0 {
		return 0, fmt.Errorf("%w: no signing secret configured", ErrUnauthorized)
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithTimeFunc(v.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return 0, ErrUnauthorized
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: subject is not a driver id", ErrUnauthorized)
	}
	return id, nil
}

// Issue signs a token for driverID valid for ttl.
func (v *Verifier) Issue(driverID int64, ttl time.Duration) (string, error) {
	now := v.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(driverID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

func bearer(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Middleware rejects requests without a valid bearer token and stores the driver id in the request context.
func Middleware(v *Verifier, logger logx.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearer(r)
			if !ok {
				unauthorized(w, logger, r, ErrUnauthorized)
				return
			}
			driverID, err := v.Verify(token)
			if err != nil {
				unauthorized(w, logger, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithDriverID(r.Context(), driverID)))
		})
	}
}

func unauthorized(w http.ResponseWriter, logger logx.Logger, r *http.Request, err error) {
	logger.Debug("request rejected",
		logx.String("path", r.URL.Path),
		logx.Err(err),
	)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="dispatch"`)
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = io.WriteString(w, `{"error":"unauthorized"}`)
}
