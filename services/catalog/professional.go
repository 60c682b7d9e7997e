package catalog

import (
	"context"
	"fmt"
	"time"

	professionalRepo "agendly/database/repository/professional"
	"agendly/models"

	"github.com/google/uuid"
)

// SlotInvalidator is the slice of the availability service the catalog
// needs: dropping cached slots after a staff or service change.
type SlotInvalidator interface {
	InvalidateProfessionalSlots(ctx context.Context, companyID, professionalID string)
}

// DefaultProfessionalService is the production implementation.
type DefaultProfessionalService struct {
	Repo  professionalRepo.ProfessionalRepository
	Slots SlotInvalidator
}

func (s *DefaultProfessionalService) CreateProfessional(ctx context.Context, companyID string, req ProfessionalRequest) (*models.Professional, error) {
	now := time.Now()
	pro := &models.Professional{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      req.Name,
		Email:     req.Email,
		Bio:       req.Bio,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, pro); err != nil {
		return nil, fmt.Errorf("failed to create professional: %w", err)
	}
	return pro, nil
}

func (s *DefaultProfessionalService) GetProfessional(ctx context.Context, companyID, id string) (*models.Professional, error) {
	return s.Repo.GetByID(ctx, companyID, id)
}

func (s *DefaultProfessionalService) ListProfessionals(ctx context.Context, companyID string, activeOnly bool) ([]models.Professional, error) {
	return s.Repo.ListByCompany(ctx, companyID, activeOnly)
}

func (s *DefaultProfessionalService) UpdateProfessional(ctx context.Context, companyID, id string, updates map[string]interface{}) (*models.Professional, error) {
	allowed := map[string]bool{"name": true, "email": true, "bio": true, "active": true}
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return s.Repo.GetByID(ctx, companyID, id)
	}
	filtered["updatedAt"] = time.Now()

	pro, err := s.Repo.Update(ctx, companyID, id, filtered)
	if err != nil {
		return nil, err
	}
	if _, ok := filtered["active"]; ok && s.Slots != nil {
		s.Slots.InvalidateProfessionalSlots(ctx, companyID, id)
	}
	return pro, nil
}

// DeactivateProfessional hides the professional from the public page and
// from future slot computations. Existing bookings are untouched.
func (s *DefaultProfessionalService) DeactivateProfessional(ctx context.Context, companyID, id string) (*models.Professional, error) {
	return s.UpdateProfessional(ctx, companyID, id, map[string]interface{}{"active": false})
}
