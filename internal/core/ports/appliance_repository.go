package ports

import (
	"context"

	"github.com/wattline/energy-tracker/internal/core/domain"
)

// ApplianceRepository defines persistence operations for appliance records.
type ApplianceRepository interface {
	Create(ctx context.Context, a *domain.Appliance) error
	FindByID(ctx context.Context, id string) (*domain.Appliance, error)
	// ListByOwner returns all records owned by ownerID, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Appliance, error)
	Update(ctx context.Context, a *domain.Appliance) error
	Delete(ctx context.Context, id string) error
}
