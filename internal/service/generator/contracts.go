package generator

import (
	"context"

	"justdeliver-dispatch/internal/domain"
)

type cityCatalog interface {
	Eligible(country string, f domain.ModificationFilter) []domain.CityRecord
	Lookup(name string) (domain.CityRecord, bool)
}

// acceptedLookup returns the most recently created accepted disposition of the whole store, or nil.
type acceptedLookup interface {
	MostRecentAccepted(ctx context.Context) (*domain.Assignment, error)
}

// Rand is the source of uniform choices.
type Rand interface {
	IntN(n int) int
}
