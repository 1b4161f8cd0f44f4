package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentRequest carries the parameters of a disposition generation.
type AssignmentRequest struct {
	DriverID         int64
	AutoLoadingCity  bool
	LoadingCountry   string
	UnloadingCountry string
	Filter           ModificationFilter
	CargoLabel       string
	WeightClass      int
	Deadline         time.Time
}

// Route is a sampled pair of legs with their freight companies.
type Route struct {
	LoadingCity      string
	LoadingCompany   string
	UnloadingCity    string
	UnloadingCompany string
}

// Assignment is a disposition: a point-to-point freight job proposed to a driver.
type Assignment struct {
	ID               int64
	Key              uuid.UUID
	DriverID         int64
	LoadingCity      string
	LoadingCompany   string
	UnloadingCity    string
	UnloadingCompany string
	CargoLabel       string
	WeightClass      int
	Deadline         time.Time
	Accepted         bool
	CreatedAt        time.Time
}

// DriverDispositions groups the dispositions held by one driver.
type DriverDispositions struct {
	Accepted   *Assignment
	Unaccepted []Assignment
}
