package domain

import (
	"time"

	"github.com/google/uuid"
)

// TrailerType represents the trailer an offer requires.
type TrailerType string

// List of possible trailer types
const (
	TrailerCurtain   TrailerType = "curtain"
	TrailerReefer    TrailerType = "reefer"
	TrailerFlatbed   TrailerType = "flatbed"
	TrailerLogger    TrailerType = "logger"
	TrailerTipper    TrailerType = "tipper"
	TrailerContainer TrailerType = "container"
)

// TrailerTypes lists every allowed trailer in a stable order.
var TrailerTypes = [...]TrailerType{
	TrailerCurtain, TrailerReefer, TrailerFlatbed, TrailerLogger, TrailerTipper, TrailerContainer,
}

// Valid checks if the TrailerType is valid
func (t TrailerType) Valid() bool {
	for _, v := range TrailerTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Offer is a marketplace job any driver may take.
type Offer struct {
	ID               int64
	Key              uuid.UUID
	LoadingCity      string
	LoadingCompany   string
	UnloadingCity    string
	UnloadingCompany string
	CargoLabel       string
	WeightClass      int
	Income           int64
	Trailer          TrailerType
	CreatedAt        time.Time
}

// PublishRequest describes a batch of offers to put on the market.
type PublishRequest struct {
	Count       int
	Filter      ModificationFilter
	CargoLabel  string
	WeightClass int
	Trailer     TrailerType
}
