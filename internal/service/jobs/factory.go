package jobs

import (
	"context"
	"strings"

	"justdeliver-dispatch/internal/domain"
)

type actionFunc func(context.Context, domain.JobEvent) error

type actionFactory struct {
	byStatus map[domain.JobStatus]actionFunc
}

func newActionFactory(onDelivered, onAbandoned actionFunc) *actionFactory {
	return &actionFactory{
		byStatus: map[domain.JobStatus]actionFunc{
			domain.JobDelivered: onDelivered,
			domain.JobAbandoned: onAbandoned,
		},
	}
}

func (f *actionFactory) get(status domain.JobStatus) (actionFunc, bool) {
	status = domain.JobStatus(strings.ToLower(strings.TrimSpace(string(status))))
	fn, ok := f.byStatus[status]
	return fn, ok
}
