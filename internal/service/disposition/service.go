package disposition

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"justdeliver-dispatch/internal/apperr"
	"justdeliver-dispatch/internal/domain"
	"justdeliver-dispatch/internal/logx"
	"justdeliver-dispatch/internal/metrics"
	"justdeliver-dispatch/internal/ports/dispatchtx"
)

// Defaults fills the parts of a request the caller left empty.
type Defaults struct {
	CargoLabel  string
	WeightClass int
	TTL         time.Duration
}

// Metrics are the optional collectors updated by the Service.
type Metrics struct {
	Generated *prometheus.CounterVec
	Expired   prometheus.Counter
}

// Service runs the disposition lifecycle: generate, accept, cancel, delete, complete, expire.
type Service struct {
	repo             dispositionRepository
	gen              routeGenerator
	defaults         Defaults
	metrics          Metrics
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates a disposition Service.
func NewService(r dispositionRepository, g routeGenerator, d Defaults, m Metrics, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	if strings.TrimSpace(d.CargoLabel) == "" {
		d.CargoLabel = "Any"
	}
	if d.WeightClass <= 0 {
		d.WeightClass = 22
	}
	if d.TTL <= 0 {
		d.TTL = 72 * time.Hour
	}
	return &Service{
		repo:             r,
		gen:              g,
		defaults:         d,
		metrics:          m,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the time source. Used by tests.
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) normalize(req domain.AssignmentRequest) (domain.AssignmentRequest, error) {
	if req.DriverID <= 0 || req.WeightClass < 0 {
		return req, apperr.ErrInvalid
	}
	req.LoadingCountry = strings.TrimSpace(req.LoadingCountry)
	if req.LoadingCountry == "" {
		req.LoadingCountry = domain.RandomCountry
	}
	req.UnloadingCountry = strings.TrimSpace(req.UnloadingCountry)
	if req.UnloadingCountry == "" {
		req.UnloadingCountry = domain.RandomCountry
	}
	req.CargoLabel = strings.TrimSpace(req.CargoLabel)
	if req.CargoLabel == "" {
		req.CargoLabel = s.defaults.CargoLabel
	}
	if req.WeightClass == 0 {
		req.WeightClass = s.defaults.WeightClass
	}
	now := s.now()
	if req.Deadline.IsZero() {
		req.Deadline = now.Add(s.defaults.TTL)
	}
	if !req.Deadline.After(now) {
		return req, apperr.ErrInvalid
	}
	return req, nil
}

// Generate samples a route for req and stores it as an unaccepted disposition of the driver.
func (s *Service) Generate(ctx context.Context, req domain.AssignmentRequest) (domain.Assignment, error) {
	req, err := s.normalize(req)
	if err != nil {
		return domain.Assignment{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	route, err := s.gen.Route(ctx, req)
	if err != nil {
		s.observeGenerated(err)
		s.logger.Warn("disposition not generated",
			logx.String("event", "disposition_rejected"),
			logx.Int64("driver_id", req.DriverID),
			logx.Bool("auto_loading_city", req.AutoLoadingCity),
			logx.String("loading_country", req.LoadingCountry),
			logx.String("unloading_country", req.UnloadingCountry),
			logx.Err(err),
		)
		return domain.Assignment{}, err
	}

	a := domain.Assignment{
		Key:              uuid.New(),
		DriverID:         req.DriverID,
		LoadingCity:      route.LoadingCity,
		LoadingCompany:   route.LoadingCompany,
		UnloadingCity:    route.UnloadingCity,
		UnloadingCompany: route.UnloadingCompany,
		CargoLabel:       req.CargoLabel,
		WeightClass:      req.WeightClass,
		Deadline:         req.Deadline,
	}
	id, err := s.repo.Create(ctx, &a)
	if err != nil {
		s.observeGenerated(err)
		return domain.Assignment{}, err
	}
	a.ID = id
	s.observeGenerated(nil)

	s.logger.Info("disposition generated",
		logx.String("event", "disposition_generated"),
		logx.Int64("driver_id", a.DriverID),
		logx.Int64("disposition_id", a.ID),
		logx.String("loading_city", a.LoadingCity),
		logx.String("unloading_city", a.UnloadingCity),
		logx.Time("deadline", a.Deadline),
	)
	return a, nil
}

func (s *Service) observeGenerated(err error) {
	if s.metrics.Generated == nil {
		return
	}
	result := metrics.ResultOK
	switch {
	case err == nil:
	case errors.Is(err, apperr.ErrEmptyCandidateSet):
		result = metrics.ResultNoRoute
	case errors.Is(err, apperr.ErrAutoLoadingCityNotFound):
		result = metrics.ResultNoAutoLoadingCity
	default:
		result = metrics.ResultError
	}
	s.metrics.Generated.WithLabelValues(result).Inc()
}

// List returns the accepted disposition (if any) and the unaccepted ones of a driver.
func (s *Service) List(ctx context.Context, driverID int64) (domain.DriverDispositions, error) {
	if driverID <= 0 {
		return domain.DriverDispositions{}, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	accepted, err := s.repo.FindAccepted(ctx, driverID)
	if err != nil {
		return domain.DriverDispositions{}, err
	}
	unaccepted, err := s.repo.FindUnaccepted(ctx, driverID)
	if err != nil {
		return domain.DriverDispositions{}, err
	}
	return domain.DriverDispositions{Accepted: accepted, Unaccepted: unaccepted}, nil
}

// Accept marks a disposition as accepted. A driver may hold at most one accepted disposition;
// accepting the one already accepted is a no-op.
func (s *Service) Accept(ctx context.Context, driverID, id int64) (domain.Assignment, error) {
	if driverID <= 0 || id <= 0 {
		return domain.Assignment{}, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.Assignment
	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		a, err := tx.GetForUpdate(ctx, driverID, id)
		if err != nil {
			return err
		}
		if a == nil {
			return apperr.ErrNotFound
		}
		if a.Accepted {
			result = *a
			return nil
		}

		current, err := tx.FindAccepted(ctx, driverID)
		if err != nil {
			return err
		}
		if current != nil && current.ID != id {
			return apperr.ErrConflictingAcceptedAssignment
		}

		if err := tx.SetAccepted(ctx, driverID, id, true); err != nil {
			return err
		}
		a.Accepted = true
		result = *a
		return nil
	})
	if err != nil {
		return domain.Assignment{}, err
	}

	s.logger.Info("disposition accepted",
		logx.String("event", "disposition_accepted"),
		logx.Int64("driver_id", driverID),
		logx.Int64("disposition_id", id),
	)
	return result, nil
}

// Cancel moves an accepted disposition back to unaccepted. Cancelling an unaccepted one is a no-op.
func (s *Service) Cancel(ctx context.Context, driverID, id int64) (domain.Assignment, error) {
	if driverID <= 0 || id <= 0 {
		return domain.Assignment{}, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.Assignment
	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		a, err := tx.GetForUpdate(ctx, driverID, id)
		if err != nil {
			return err
		}
		if a == nil {
			return apperr.ErrNotFound
		}
		if a.Accepted {
			if err := tx.SetAccepted(ctx, driverID, id, false); err != nil {
				return err
			}
			a.Accepted = false
		}
		result = *a
		return nil
	})
	if err != nil {
		return domain.Assignment{}, err
	}

	s.logger.Info("disposition cancelled",
		logx.String("event", "disposition_cancelled"),
		logx.Int64("driver_id", driverID),
		logx.Int64("disposition_id", id),
	)
	return result, nil
}

// Delete removes a disposition of the driver in any state.
func (s *Service) Delete(ctx context.Context, driverID, id int64) error {
	if driverID <= 0 || id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.Delete(ctx, driverID, id); err != nil {
		return err
	}
	s.logger.Info("disposition deleted",
		logx.String("event", "disposition_deleted"),
		logx.Int64("driver_id", driverID),
		logx.Int64("disposition_id", id),
	)
	return nil
}

// Complete consumes the accepted disposition of a delivered job.
func (s *Service) Complete(ctx context.Context, driverID, id int64) error {
	if driverID <= 0 || id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		a, err := tx.GetForUpdate(ctx, driverID, id)
		if err != nil {
			return err
		}
		if a == nil {
			return apperr.ErrNotFound
		}
		if !a.Accepted {
			return apperr.ErrConflict
		}
		return tx.Delete(ctx, driverID, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("disposition completed",
		logx.String("event", "disposition_completed"),
		logx.Int64("driver_id", driverID),
		logx.Int64("disposition_id", id),
	)
	return nil
}

// ExpireOverdue deletes unaccepted dispositions whose deadline has passed.
func (s *Service) ExpireOverdue(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.repo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		if s.metrics.Expired != nil {
			s.metrics.Expired.Add(float64(n))
		}
		s.logger.Info("expired dispositions deleted",
			logx.String("event", "dispositions_expired"),
			logx.Int64("count", n),
		)
	}
	return n, nil
}
