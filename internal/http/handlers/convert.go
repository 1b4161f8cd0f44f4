package handlers

import (
	"time"

	"justdeliver-dispatch/internal/domain"
)

func (r generateDispositionRequest) toModel(driverID int64) domain.AssignmentRequest {
	return domain.AssignmentRequest{
		DriverID:         driverID,
		AutoLoadingCity:  r.AutoLoadingCity,
		LoadingCountry:   r.LoadingCountry,
		UnloadingCountry: r.UnloadingCountry,
		Filter:           domain.ParseModificationFilter(r.Modifications),
		CargoLabel:       r.Cargo,
		WeightClass:      r.WeightClass,
		Deadline:         derefTime(r.Deadline),
	}
}

func (r publishOffersRequest) toModel() domain.PublishRequest {
	return domain.PublishRequest{
		Count:       r.Count,
		Filter:      domain.ParseModificationFilter(r.Modifications),
		CargoLabel:  r.Cargo,
		WeightClass: r.WeightClass,
		Trailer:     domain.TrailerType(r.Trailer),
	}
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func dispositionToResponse(a domain.Assignment) dispositionDTO {
	return dispositionDTO{
		ID:               a.ID,
		Key:              a.Key.String(),
		DriverID:         a.DriverID,
		LoadingCity:      a.LoadingCity,
		LoadingCompany:   a.LoadingCompany,
		UnloadingCity:    a.UnloadingCity,
		UnloadingCompany: a.UnloadingCompany,
		Cargo:            a.CargoLabel,
		WeightClass:      a.WeightClass,
		Deadline:         a.Deadline,
		Accepted:         a.Accepted,
		CreatedAt:        a.CreatedAt,
	}
}

func driverDispositionsToResponse(d domain.DriverDispositions) driverDispositionsDTO {
	out := driverDispositionsDTO{Unaccepted: make([]dispositionDTO, 0, len(d.Unaccepted))}
	if d.Accepted != nil {
		acc := dispositionToResponse(*d.Accepted)
		out.Accepted = &acc
	}
	for _, a := range d.Unaccepted {
		out.Unaccepted = append(out.Unaccepted, dispositionToResponse(a))
	}
	return out
}

func offerToResponse(o domain.Offer) offerDTO {
	return offerDTO{
		ID:               o.ID,
		Key:              o.Key.String(),
		LoadingCity:      o.LoadingCity,
		LoadingCompany:   o.LoadingCompany,
		UnloadingCity:    o.UnloadingCity,
		UnloadingCompany: o.UnloadingCompany,
		Cargo:            o.CargoLabel,
		WeightClass:      o.WeightClass,
		Income:           o.Income,
		Trailer:          string(o.Trailer),
		CreatedAt:        o.CreatedAt,
	}
}

func offersToResponse(list []domain.Offer) []offerDTO {
	out := make([]offerDTO, 0, len(list))
	for _, o := range list {
		out = append(out, offerToResponse(o))
	}
	return out
}
