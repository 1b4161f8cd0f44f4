//go:generate mockgen -source=contracts.go -destination=disposition_mocks_test.go -package=disposition_test

package disposition

import (
	"context"
	"time"

	"justdeliver-dispatch/internal/domain"
	"justdeliver-dispatch/internal/ports/dispatchtx"
)

// dispositionRepository defines storage operations required by the disposition use cases.
type dispositionRepository interface {
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
	Create(ctx context.Context, a *domain.Assignment) (int64, error)
	FindAccepted(ctx context.Context, driverID int64) (*domain.Assignment, error)
	FindUnaccepted(ctx context.Context, driverID int64) ([]domain.Assignment, error)
	Delete(ctx context.Context, driverID, id int64) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type routeGenerator interface {
	Route(ctx context.Context, req domain.AssignmentRequest) (domain.Route, error)
}
