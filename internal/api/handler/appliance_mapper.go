package handler

import (
	"github.com/wattline/energy-tracker/internal/core/domain"
	"github.com/wattline/energy-tracker/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createApplianceRequest, ownerID string) ports.CreateApplianceInput {
	return ports.CreateApplianceInput{
		OwnerID:     ownerID,
		Name:        req.Name,
		RatingKW:    req.RatingKW,
		HoursPerDay: req.HoursPerDay,
		Quantity:    req.Quantity,
		DaysPerWeek: req.DaysPerWeek,
		UnitRate:    req.UnitRate,
	}
}

func toUpdateInput(req updateApplianceRequest) ports.UpdateApplianceInput {
	return ports.UpdateApplianceInput{
		Name:        req.Name,
		RatingKW:    req.RatingKW,
		HoursPerDay: req.HoursPerDay,
		Quantity:    req.Quantity,
		DaysPerWeek: req.DaysPerWeek,
		UnitRate:    req.UnitRate,
	}
}

// --- Domain record → HTTP response ---

func toApplianceResponse(a *domain.Appliance) applianceResponse {
	return applianceResponse{
		ID:          a.ID,
		Name:        a.Name,
		RatingKW:    a.RatingKW,
		HoursPerDay: a.HoursPerDay,
		Quantity:    a.Quantity,
		DaysPerWeek: a.DaysPerWeek,
		UnitRate:    a.UnitRate,

		ConsumptionPerDay:   a.ConsumptionPerDay,
		ConsumptionPerWeek:  a.ConsumptionPerWeek,
		ConsumptionPerMonth: a.ConsumptionPerMonth,
		MonthlyCost:         a.MonthlyCost,

		CreatedAt: a.CreatedAt.UTC(),
		UpdatedAt: a.UpdatedAt.UTC(),
	}
}

func toApplianceListResponse(items []*domain.Appliance) []applianceResponse {
	out := make([]applianceResponse, len(items))
	for i, a := range items {
		out[i] = toApplianceResponse(a)
	}
	return out
}
