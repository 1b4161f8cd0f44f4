package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"justdeliver-dispatch/internal/domain"
	"justdeliver-dispatch/internal/http/middleware/auth"
)

type stubDispositionUsecase struct {
	generateFn func(ctx context.Context, req domain.AssignmentRequest) (domain.Assignment, error)
	listFn     func(ctx context.Context, driverID int64) (domain.DriverDispositions, error)
	acceptFn   func(ctx context.Context, driverID, id int64) (domain.Assignment, error)
	cancelFn   func(ctx context.Context, driverID, id int64) (domain.Assignment, error)
	deleteFn   func(ctx context.Context, driverID, id int64) error
}

func (s *stubDispositionUsecase) Generate(ctx context.Context, req domain.AssignmentRequest) (domain.Assignment, error) {
	return s.generateFn(ctx, req)
}

func (s *stubDispositionUsecase) List(ctx context.Context, driverID int64) (domain.DriverDispositions, error) {
	return s.listFn(ctx, driverID)
}

func (s *stubDispositionUsecase) Accept(ctx context.Context, driverID, id int64) (domain.Assignment, error) {
	return s.acceptFn(ctx, driverID, id)
}

func (s *stubDispositionUsecase) Cancel(ctx context.Context, driverID, id int64) (domain.Assignment, error) {
	return s.cancelFn(ctx, driverID, id)
}

func (s *stubDispositionUsecase) Delete(ctx context.Context, driverID, id int64) error {
	return s.deleteFn(ctx, driverID, id)
}

type stubOfferUsecase struct {
	publishFn func(ctx context.Context, req domain.PublishRequest) ([]domain.Offer, error)
	listFn    func(ctx context.Context, limit, offset *int) ([]domain.Offer, error)
	acceptFn  func(ctx context.Context, driverID, offerID int64, deadline time.Time) (domain.Assignment, error)
}

func (s *stubOfferUsecase) Publish(ctx context.Context, req domain.PublishRequest) ([]domain.Offer, error) {
	return s.publishFn(ctx, req)
}

func (s *stubOfferUsecase) List(ctx context.Context, limit, offset *int) ([]domain.Offer, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *stubOfferUsecase) Accept(ctx context.Context, driverID, offerID int64, deadline time.Time) (domain.Assignment, error) {
	return s.acceptFn(ctx, driverID, offerID, deadline)
}

type stubCountries struct {
	got  []domain.ModificationFilter
	list []string
}

func (s *stubCountries) Countries(f domain.ModificationFilter) []string {
	s.got = append(s.got, f)
	return s.list
}

// newRequest builds a request as the router would hand it over: with URL params and, when
// driverID is positive, an authenticated driver.
func newRequest(method, target, body string, driverID int64, params map[string]string) *http.Request {
	var rd io.Reader = http.NoBody
	if body != "" {
		rd = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, rd)
	ctx := r.Context()
	if len(params) > 0 {
		rc := chi.NewRouteContext()
		for k, v := range params {
			rc.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rc)
	}
	if driverID > 0 {
		ctx = auth.WithDriverID(ctx, driverID)
	}
	return r.WithContext(ctx)
}
