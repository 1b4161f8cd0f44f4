package domain

import "time"

// JobStatus is reported by the game client for a running disposition.
type JobStatus string

// List of job statuses the worker reacts to
const (
	JobDelivered JobStatus = "delivered"
	JobAbandoned JobStatus = "abandoned"
)

// JobEvent is a single progress report for a disposition.
type JobEvent struct {
	EventID       string
	DriverID      int64
	DispositionID int64
	Status        JobStatus
	OccurredAt    time.Time
}
