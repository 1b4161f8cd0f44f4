package handlers

import "time"

type dispositionDTO struct {
	ID               int64     `json:"id"`
	Key              string    `json:"key"`
	DriverID         int64     `json:"driver_id"`
	LoadingCity      string    `json:"loading_city"`
	LoadingCompany   string    `json:"loading_company"`
	UnloadingCity    string    `json:"unloading_city"`
	UnloadingCompany string    `json:"unloading_company"`
	Cargo            string    `json:"cargo"`
	WeightClass      int       `json:"weight_class"`
	Deadline         time.Time `json:"deadline"`
	Accepted         bool      `json:"accepted"`
	CreatedAt        time.Time `json:"created_at"`
}

type driverDispositionsDTO struct {
	Accepted   *dispositionDTO  `json:"accepted"`
	Unaccepted []dispositionDTO `json:"unaccepted"`
}

type generateDispositionRequest struct {
	AutoLoadingCity  bool       `json:"auto_loading_city"`
	LoadingCountry   string     `json:"loading_country" validate:"max=64"`
	UnloadingCountry string     `json:"unloading_country" validate:"max=64"`
	Modifications    []string   `json:"modifications" validate:"max=8,dive,max=32"`
	Cargo            string     `json:"cargo" validate:"max=64"`
	WeightClass      int        `json:"weight_class" validate:"gte=0,lte=1000"`
	Deadline         *time.Time `json:"deadline"`
}

type offerDTO struct {
	ID               int64     `json:"id"`
	Key              string    `json:"key"`
	LoadingCity      string    `json:"loading_city"`
	LoadingCompany   string    `json:"loading_company"`
	UnloadingCity    string    `json:"unloading_city"`
	UnloadingCompany string    `json:"unloading_company"`
	Cargo            string    `json:"cargo"`
	WeightClass      int       `json:"weight_class"`
	Income           int64     `json:"income"`
	Trailer          string    `json:"trailer"`
	CreatedAt        time.Time `json:"created_at"`
}

type publishOffersRequest struct {
	Count         int      `json:"count" validate:"required,min=1,max=50"`
	Modifications []string `json:"modifications" validate:"max=8,dive,max=32"`
	Cargo         string   `json:"cargo" validate:"max=64"`
	WeightClass   int      `json:"weight_class" validate:"gte=0,lte=1000"`
	Trailer       string   `json:"trailer" validate:"omitempty,oneof=curtain reefer flatbed logger tipper container"`
}

type acceptOfferRequest struct {
	Deadline *time.Time `json:"deadline"`
}

type countriesResponse struct {
	Extended  bool     `json:"extended"`
	Countries []string `json:"countries"`
}
