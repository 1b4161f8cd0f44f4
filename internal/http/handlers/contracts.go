package handlers

import (
	"context"
	"time"

	"justdeliver-dispatch/internal/catalog"
	"justdeliver-dispatch/internal/domain"
	"justdeliver-dispatch/internal/service/disposition"
	"justdeliver-dispatch/internal/service/offers"
)

type dispositionUsecase interface {
	Generate(ctx context.Context, req domain.AssignmentRequest) (domain.Assignment, error)
	List(ctx context.Context, driverID int64) (domain.DriverDispositions, error)
	Accept(ctx context.Context, driverID, id int64) (domain.Assignment, error)
	Cancel(ctx context.Context, driverID, id int64) (domain.Assignment, error)
	Delete(ctx context.Context, driverID, id int64) error
}

// NewDispositionUsecase wires a disposition.Service into a dispositionUsecase.
func NewDispositionUsecase(svc *disposition.Service) dispositionUsecase {
	return svc
}

type offerUsecase interface {
	Publish(ctx context.Context, req domain.PublishRequest) ([]domain.Offer, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Offer, error)
	Accept(ctx context.Context, driverID, offerID int64, deadline time.Time) (domain.Assignment, error)
}

// NewOfferUsecase wires an offers.Service into an offerUsecase.
func NewOfferUsecase(svc *offers.Service) offerUsecase {
	return svc
}

type countryLister interface {
	Countries(f domain.ModificationFilter) []string
}

// NewCountryLister exposes the catalog to the catalog handler.
func NewCountryLister(c *catalog.Catalog) countryLister {
	return c
}
