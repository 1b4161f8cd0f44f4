package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnprocessable marks a well-formed request the current data cannot satisfy.
var ErrUnprocessable = errors.New("unprocessable")

// ErrEmptyCandidateSet is returned when no catalog city matches the requested country and filter.
var ErrEmptyCandidateSet = fmt.Errorf("%w: empty candidate set", ErrUnprocessable)

// ErrAutoLoadingCityNotFound is returned when the auto loading city cannot be resolved.
var ErrAutoLoadingCityNotFound = fmt.Errorf("%w: auto loading city not found", ErrUnprocessable)

// ErrConflictingAcceptedAssignment is returned when a driver already holds an accepted assignment.
var ErrConflictingAcceptedAssignment = fmt.Errorf("%w: driver already has an accepted disposition", ErrConflict)
