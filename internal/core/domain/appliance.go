package domain

import "time"

// WeeksPerMonth is the average number of weeks in a month used when
// projecting weekly consumption to a monthly figure.
const WeeksPerMonth = 4.33

// Appliance is a user-owned entry describing one appliance's power profile
// and usage pattern. The consumption and cost fields are derived: they are
// recomputed server-side on every write and never accepted from a client.
type Appliance struct {
	ID      string `json:"id" bson:"_id,omitempty"`
	OwnerID string `json:"owner_id" bson:"owner_id"`
	Name    string `json:"name" bson:"name"`

	// Inputs. Rating is in kilowatts, UnitRate in currency per kWh.
	RatingKW    float64  `json:"rating_kw" bson:"rating_kw"`
	HoursPerDay float64  `json:"hours_per_day" bson:"hours_per_day"`
	Quantity    int      `json:"quantity" bson:"quantity"`
	DaysPerWeek int      `json:"days_per_week" bson:"days_per_week"`
	UnitRate    *float64 `json:"unit_rate,omitempty" bson:"unit_rate,omitempty"`

	// Derived. Stored unrounded; rounding is a presentation concern.
	ConsumptionPerDay   float64 `json:"consumption_per_day" bson:"consumption_per_day"`
	ConsumptionPerWeek  float64 `json:"consumption_per_week" bson:"consumption_per_week"`
	ConsumptionPerMonth float64 `json:"consumption_per_month" bson:"consumption_per_month"`
	MonthlyCost         float64 `json:"monthly_cost" bson:"monthly_cost"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ComputeDerived recalculates all derived fields from the current inputs.
// defaultUnitRate applies when the record carries no unit rate of its own.
func (a *Appliance) ComputeDerived(defaultUnitRate float64) {
	rate := defaultUnitRate
	if a.UnitRate != nil {
		rate = *a.UnitRate
	}

	a.ConsumptionPerDay = a.RatingKW * a.HoursPerDay * float64(a.Quantity)
	a.ConsumptionPerWeek = a.ConsumptionPerDay * float64(a.DaysPerWeek)
	a.ConsumptionPerMonth = a.ConsumptionPerWeek * WeeksPerMonth
	a.MonthlyCost = a.ConsumptionPerMonth * rate
}
