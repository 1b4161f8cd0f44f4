package app

import (
	"context"
	"errors"
	"time"

	"justdeliver-dispatch/internal/apperr"
	"justdeliver-dispatch/internal/domain"
	"justdeliver-dispatch/internal/transport/kafka"
)

const jobHandleTimeout = 5 * time.Second

type jobEventHandler interface {
	Handle(ctx context.Context, e domain.JobEvent) error
}

// makeJobsKafka adapts the job processor to the consumer. Errors that a redelivery
// cannot fix are marked permanent so the message is skipped.
func makeJobsKafka(p jobEventHandler) kafka.HandleFunc {
	return func(ctx context.Context, event domain.JobEvent) error {
		ctx, cancel := context.WithTimeout(ctx, jobHandleTimeout)
		defer cancel()

		err := p.Handle(ctx, event)
		if errors.Is(err, apperr.ErrInvalid) || errors.Is(err, apperr.ErrConflict) {
			return kafka.Permanent(err)
		}
		return err
	}
}
