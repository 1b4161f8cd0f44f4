package dispatchtx

import (
	"context"

	"justdeliver-dispatch/internal/domain"
)

// Repository is the set of storage operations available inside a dispatch transaction.
type Repository interface {
	GetForUpdate(ctx context.Context, driverID, id int64) (*domain.Assignment, error)
	FindAccepted(ctx context.Context, driverID int64) (*domain.Assignment, error)
	SetAccepted(ctx context.Context, driverID, id int64, accepted bool) error
	Delete(ctx context.Context, driverID, id int64) error
	Insert(ctx context.Context, a *domain.Assignment) error
	TakeOffer(ctx context.Context, offerID int64) (*domain.Offer, error)
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
