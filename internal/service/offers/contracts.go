//go:generate mockgen -source=contracts.go -destination=offers_mocks_test.go -package=offers_test

package offers

import (
	"context"

	"justdeliver-dispatch/internal/domain"
	"justdeliver-dispatch/internal/ports/dispatchtx"
)

type offerRepository interface {
	CreateBatch(ctx context.Context, offers []domain.Offer) error
	List(ctx context.Context, limit, offset *int) ([]domain.Offer, error)
}

// TxRunner runs fn inside a dispatch transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
}

type routeGenerator interface {
	Route(ctx context.Context, req domain.AssignmentRequest) (domain.Route, error)
}

// Rand is the source of income spread and trailer choice.
type Rand interface {
	IntN(n int) int
}
