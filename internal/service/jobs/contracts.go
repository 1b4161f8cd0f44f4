//go:generate mockgen -source=contracts.go -destination=jobs_mocks_test.go -package=jobs_test

package jobs

import (
	"context"

	"justdeliver-dispatch/internal/domain"
)

// DispositionPort is the subset of disposition use cases driven by job events.
type DispositionPort interface {
	Complete(ctx context.Context, driverID, id int64) error
	Cancel(ctx context.Context, driverID, id int64) (domain.Assignment, error)
}
