package jobs

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"justdeliver-dispatch/internal/apperr"
	"justdeliver-dispatch/internal/domain"
	"justdeliver-dispatch/internal/logx"
)

// Event outcomes used as the "outcome" label of the job events counter.
const (
	outcomeApplied = "applied"
	outcomeIgnored = "ignored"
	outcomeStale   = "stale"
	outcomeFailed  = "failed"
)

// Processor applies job events to dispositions.
type Processor struct {
	dispositions DispositionPort
	factory      *actionFactory
	events       *prometheus.CounterVec
	logger       logx.Logger
}

// NewProcessor creates a Processor. events may be nil.
func NewProcessor(d DispositionPort, events *prometheus.CounterVec, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		dispositions: d,
		events:       events,
		logger:       logger,
	}
	p.factory = newActionFactory(p.onDelivered, p.onAbandoned)
	return p
}

// Handle applies a single job event. Events with unknown statuses are ignored,
// events for dispositions that are already gone are dropped.
func (p *Processor) Handle(ctx context.Context, e domain.JobEvent) error {
	if e.DriverID <= 0 || e.DispositionID <= 0 {
		return apperr.ErrInvalid
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.observe(e, outcomeIgnored)
		return nil
	}

	err := fn(ctx, e)
	switch {
	case err == nil:
		p.observe(e, outcomeApplied)
		return nil
	case errors.Is(err, apperr.ErrNotFound):
		p.observe(e, outcomeStale)
		p.logger.Debug("job event for missing disposition",
			logx.String("event_id", e.EventID),
			logx.Int64("disposition_id", e.DispositionID),
		)
		return nil
	default:
		p.observe(e, outcomeFailed)
		return err
	}
}

func (p *Processor) onDelivered(ctx context.Context, e domain.JobEvent) error {
	return p.dispositions.Complete(ctx, e.DriverID, e.DispositionID)
}

func (p *Processor) onAbandoned(ctx context.Context, e domain.JobEvent) error {
	_, err := p.dispositions.Cancel(ctx, e.DriverID, e.DispositionID)
	return err
}

func (p *Processor) observe(e domain.JobEvent, outcome string) {
	if p.events == nil {
		return
	}
	p.events.WithLabelValues(string(e.Status), outcome).Inc()
}
