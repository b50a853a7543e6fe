package handler

import "time"

// --- Request / Response types ---

type createApplianceRequest struct {
	Name        string   `json:"name"          validate:"required"`
	RatingKW    float64  `json:"rating_kw"     validate:"gte=0"`
	HoursPerDay float64  `json:"hours_per_day" validate:"gte=0"`
	Quantity    int      `json:"quantity"      validate:"required,gt=0"`
	DaysPerWeek int      `json:"days_per_week" validate:"gte=0,lte=7"`
	UnitRate    *float64 `json:"unit_rate"     validate:"omitempty,gte=0"`
}

// updateApplianceRequest is a partial update: absent fields keep their stored
// values. Constraint checks run in the service on the merged record, after
// the existence and ownership checks, so a bad payload cannot reveal whether
// the record exists.
type updateApplianceRequest struct {
	Name        *string  `json:"name"`
	RatingKW    *float64 `json:"rating_kw"`
	HoursPerDay *float64 `json:"hours_per_day"`
	Quantity    *int     `json:"quantity"`
	DaysPerWeek *int     `json:"days_per_week"`
	UnitRate    *float64 `json:"unit_rate"`
}

// applianceResponse is the full stored record, derived fields included.
// The JSON contract is owned by the transport layer and intentionally
// decoupled from the domain type.
type applianceResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	RatingKW    float64  `json:"rating_kw"`
	HoursPerDay float64  `json:"hours_per_day"`
	Quantity    int      `json:"quantity"`
	DaysPerWeek int      `json:"days_per_week"`
	UnitRate    *float64 `json:"unit_rate,omitempty"`

	ConsumptionPerDay   float64 `json:"consumption_per_day"`
	ConsumptionPerWeek  float64 `json:"consumption_per_week"`
	ConsumptionPerMonth float64 `json:"consumption_per_month"`
	MonthlyCost         float64 `json:"monthly_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type deleteApplianceResponse struct {
	Deleted string `json:"deleted"`
}
