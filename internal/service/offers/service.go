package offers

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"justdeliver-dispatch/internal/apperr"
	"justdeliver-dispatch/internal/domain"
	"justdeliver-dispatch/internal/logx"
	"justdeliver-dispatch/internal/ports/dispatchtx"
)

// MaxBatch caps the number of offers published by one request.
const MaxBatch = 50

const incomePerWeight = 1000

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Settings holds the offer defaults.
type Settings struct {
	CargoLabel  string
	WeightClass int
	TTL         time.Duration
}

// Service is the offers market.
type Service struct {
	repo             offerRepository
	tx               TxRunner
	gen              routeGenerator
	rnd              Rand
	settings         Settings
	published        prometheus.Counter
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates an offers Service. A nil rnd uses math/rand/v2, published may be nil.
func NewService(r offerRepository, tx TxRunner, g routeGenerator, rnd Rand, s Settings,
	published prometheus.Counter, timeout time.Duration, logger logx.Logger,
) *Service {
	if rnd == nil {
		rnd = globalRand{}
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	if strings.TrimSpace(s.CargoLabel) == "" {
		s.CargoLabel = "Any"
	}
	if s.WeightClass <= 0 {
		s.WeightClass = 22
	}
	if s.TTL <= 0 {
		s.TTL = 72 * time.Hour
	}
	return &Service{
		repo:             r,
		tx:               tx,
		gen:              g,
		rnd:              rnd,
		settings:         s,
		published:        published,
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

// Publish generates req.Count offers between random cities and puts them on the market.
func (s *Service) Publish(ctx context.Context, req domain.PublishRequest) ([]domain.Offer, error) {
	if req.Count < 1 || req.Count > MaxBatch || req.WeightClass < 0 {
		return nil, apperr.ErrInvalid
	}
	if req.Trailer != "" && !req.Trailer.Valid() {
		return nil, apperr.ErrInvalid
	}
	cargo := strings.TrimSpace(req.CargoLabel)
	if cargo == "" {
		cargo = s.settings.CargoLabel
	}
	weight := req.WeightClass
	if weight == 0 {
		weight = s.settings.WeightClass
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	batch := make([]domain.Offer, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		route, err := s.gen.Route(ctx, domain.AssignmentRequest{
			LoadingCountry:   domain.RandomCountry,
			UnloadingCountry: domain.RandomCountry,
			Filter:           req.Filter,
		})
		if err != nil {
			return nil, err
		}
		trailer := req.Trailer
		if trailer == "" {
			trailer = domain.TrailerTypes[s.rnd.IntN(len(domain.TrailerTypes))]
		}
		batch = append(batch, domain.Offer{
			Key:              uuid.New(),
			LoadingCity:      route.LoadingCity,
			LoadingCompany:   route.LoadingCompany,
			UnloadingCity:    route.UnloadingCity,
			UnloadingCompany: route.UnloadingCompany,
			CargoLabel:       cargo,
			WeightClass:      weight,
			Income:           int64(weight)*incomePerWeight + int64(s.rnd.IntN(incomePerWeight)),
			Trailer:          trailer,
		})
	}

	if err := s.repo.CreateBatch(ctx, batch); err != nil {
		return nil, err
	}
	if s.published != nil {
		s.published.Add(float64(len(batch)))
	}

	s.logger.Info("offers published",
		logx.String("event", "offers_published"),
		logx.Int("count", len(batch)),
		logx.Bool("extended", req.Filter.Extended),
	)
	return batch, nil
}

// List returns the market newest first.
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Offer, error) {
	if (limit != nil && *limit < 0) || (offset != nil && *offset < 0) {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// Accept takes an offer off the market and stores it as the driver's accepted disposition.
// A zero deadline means now plus the configured TTL.
func (s *Service) Accept(ctx context.Context, driverID, offerID int64, deadline time.Time) (domain.Assignment, error) {
	if driverID <= 0 || offerID <= 0 {
		return domain.Assignment{}, apperr.ErrInvalid
	}
	now := s.now()
	if deadline.IsZero() {
		deadline = now.Add(s.settings.TTL)
	}
	if !deadline.After(now) {
		return domain.Assignment{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.Assignment
	err := s.tx.WithTx(ctx, func(tx dispatchtx.Repository) error {
		current, err := tx.FindAccepted(ctx, driverID)
		if err != nil {
			return err
		}
		if current != nil {
			return apperr.ErrConflictingAcceptedAssignment
		}

		o, err := tx.TakeOffer(ctx, offerID)
		if err != nil {
			return err
		}
		if o == nil {
			return apperr.ErrNotFound
		}

		a := domain.Assignment{
			Key:              uuid.New(),
			DriverID:         driverID,
			LoadingCity:      o.LoadingCity,
			LoadingCompany:   o.LoadingCompany,
			UnloadingCity:    o.UnloadingCity,
			UnloadingCompany: o.UnloadingCompany,
			CargoLabel:       o.CargoLabel,
			WeightClass:      o.WeightClass,
			Deadline:         deadline,
			Accepted:         true,
		}
		if err := tx.Insert(ctx, &a); err != nil {
			return err
		}
		result = a
		return nil
	})
	if err != nil {
		return domain.Assignment{}, err
	}

	s.logger.Info("offer accepted",
		logx.String("event", "offer_accepted"),
		logx.Int64("driver_id", driverID),
		logx.Int64("offer_id", offerID),
		logx.Int64("disposition_id", result.ID),
	)
	return result, nil
}
