package ports

import (
	"context"

	"github.com/wattline/energy-tracker/internal/core/domain"
)

// CreateApplianceInput carries the client-supplied fields for a new record.
// Derived fields are intentionally absent: the service computes them.
type CreateApplianceInput struct {
	OwnerID     string
	Name        string
	RatingKW    float64
	HoursPerDay float64
	Quantity    int
	DaysPerWeek int
	UnitRate    *float64
}

// UpdateApplianceInput carries a partial update. Nil fields are left as
// stored; derived fields are recomputed from the merged record either way.
type UpdateApplianceInput struct {
	Name        *string
	RatingKW    *float64
	HoursPerDay *float64
	Quantity    *int
	DaysPerWeek *int
	UnitRate    *float64
}

// ApplianceService defines use-case operations for the appliance ledger.
// Every operation acts on behalf of an authenticated user; ownership is
// enforced per record.
type ApplianceService interface {
	Create(ctx context.Context, in CreateApplianceInput) (*domain.Appliance, error)
	List(ctx context.Context, ownerID string) ([]*domain.Appliance, error)
	Update(ctx context.Context, id, actorID string, in UpdateApplianceInput) (*domain.Appliance, error)
	Delete(ctx context.Context, id, actorID string) error
}
