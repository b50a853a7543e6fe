package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wattline/energy-tracker/internal/api/metrics"
	"github.com/wattline/energy-tracker/internal/core/domain"
	"github.com/wattline/energy-tracker/internal/core/ports"
)

// ApplianceService implements the per-user appliance ledger. Consumption and
// cost figures are recomputed from the input fields on every write; client
// supplied values for them are never trusted.
type ApplianceService struct {
	repo            ports.ApplianceRepository
	defaultUnitRate float64
	log             zerolog.Logger
}

func NewApplianceService(repo ports.ApplianceRepository, defaultUnitRate float64, log zerolog.Logger) *ApplianceService {
	return &ApplianceService{repo: repo, defaultUnitRate: defaultUnitRate, log: log}
}

// Create validates the input, computes the derived fields and persists a new
// record owned by the acting user.
func (s *ApplianceService) Create(ctx context.Context, in ports.CreateApplianceInput) (*domain.Appliance, error) {
	now := time.Now().UTC()
	a := &domain.Appliance{
		ID:          uuid.NewString(),
		OwnerID:     in.OwnerID,
		Name:        strings.TrimSpace(in.Name),
		RatingKW:    in.RatingKW,
		HoursPerDay: in.HoursPerDay,
		Quantity:    in.Quantity,
		DaysPerWeek: in.DaysPerWeek,
		UnitRate:    in.UnitRate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validateAppliance(a); err != nil {
		return nil, err
	}

	a.ComputeDerived(s.defaultUnitRate)

	if err := s.repo.Create(ctx, a); err != nil {
		s.log.Error().Err(err).Str("owner_id", in.OwnerID).Msg("failed to create appliance")
		return nil, fmt.Errorf("create appliance: %w", err)
	}

	metrics.AppliancesCreatedTotal.Inc()
	s.log.Info().Str("appliance_id", a.ID).Str("owner_id", a.OwnerID).Msg("appliance created")
	return a, nil
}

// List returns the acting user's records, most recently created first.
func (s *ApplianceService) List(ctx context.Context, ownerID string) ([]*domain.Appliance, error) {
	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list appliances: %w", err)
	}
	return items, nil
}

// Update merges the supplied fields over the stored record, recomputes all
// derived fields and persists the result. The check order is fixed: fetch,
// existence, ownership, then validation of the merged record.
func (s *ApplianceService) Update(ctx context.Context, id, actorID string, in ports.UpdateApplianceInput) (*domain.Appliance, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.OwnerID != actorID {
		return nil, domain.ErrForbidden
	}

	if in.Name != nil {
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.RatingKW != nil {
		a.RatingKW = *in.RatingKW
	}
	if in.HoursPerDay != nil {
		a.HoursPerDay = *in.HoursPerDay
	}
	if in.Quantity != nil {
		a.Quantity = *in.Quantity
	}
	if in.DaysPerWeek != nil {
		a.DaysPerWeek = *in.DaysPerWeek
	}
	if in.UnitRate != nil {
		a.UnitRate = in.UnitRate
	}

	if err := validateAppliance(a); err != nil {
		return nil, err
	}

	a.ComputeDerived(s.defaultUnitRate)
	a.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, a); err != nil {
		s.log.Error().Err(err).Str("appliance_id", id).Msg("failed to update appliance")
		return nil, fmt.Errorf("update appliance: %w", err)
	}

	metrics.ApplianceWritesTotal.WithLabelValues("update").Inc()
	return a, nil
}

// Delete removes the record after the same existence and ownership checks as
// Update. There is no soft delete.
func (s *ApplianceService) Delete(ctx context.Context, id, actorID string) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if a.OwnerID != actorID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("appliance_id", id).Msg("failed to delete appliance")
		return fmt.Errorf("delete appliance: %w", err)
	}

	metrics.ApplianceWritesTotal.WithLabelValues("delete").Inc()
	s.log.Info().Str("appliance_id", id).Str("owner_id", actorID).Msg("appliance deleted")
	return nil
}

func validateAppliance(a *domain.Appliance) error {
	switch {
	case a.Name == "":
		return fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
	case a.RatingKW < 0:
		return fmt.Errorf("%w: rating_kw must not be negative", domain.ErrInvalidInput)
	case a.HoursPerDay < 0:
		return fmt.Errorf("%w: hours_per_day must not be negative", domain.ErrInvalidInput)
	case a.Quantity <= 0:
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	case a.DaysPerWeek < 0 || a.DaysPerWeek > 7:
		return fmt.Errorf("%w: days_per_week must be between 0 and 7", domain.ErrInvalidInput)
	case a.UnitRate != nil && *a.UnitRate < 0:
		return fmt.Errorf("%w: unit_rate must not be negative", domain.ErrInvalidInput)
	}
	return nil
}
