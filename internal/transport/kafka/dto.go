package kafka

import (
	"strings"
	"time"

	"justdeliver-dispatch/internal/domain"
)

// JobEventDTO is the wire form of a job event.
type JobEventDTO struct {
	EventID       string    `json:"event_id"`
	DriverID      int64     `json:"driver_id"`
	DispositionID int64     `json:"disposition_id"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// ToDomain converts JobEventDTO to domain.JobEvent
func ToDomain(dto JobEventDTO) domain.JobEvent {
	return domain.JobEvent{
		EventID:       strings.TrimSpace(dto.EventID),
		DriverID:      dto.DriverID,
		DispositionID: dto.DispositionID,
		Status:        domain.JobStatus(strings.ToLower(strings.TrimSpace(dto.Status))),
		OccurredAt:    dto.OccurredAt,
	}
}

// valid reports whether the event names a driver and a disposition.
func (dto JobEventDTO) valid() bool {
	return dto.DriverID > 0 && dto.DispositionID > 0 && strings.TrimSpace(dto.Status) != ""
}
