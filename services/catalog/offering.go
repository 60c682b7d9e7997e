package catalog

import (
	"context"
	"fmt"
	"time"

	offeringRepo "agendly/database/repository/offering"
	"agendly/models"
	"agendly/services/availability"

	"github.com/google/uuid"
)

// DefaultOfferingService is the production implementation.
type DefaultOfferingService struct {
	Repo offeringRepo.OfferingRepository
}

func (s *DefaultOfferingService) CreateOffering(ctx context.Context, companyID string, req OfferingRequest) (*models.Offering, error) {
	if req.DurationMinutes <= 0 {
		return nil, availability.ErrInvalidDuration
	}
	now := time.Now()
	off := &models.Offering{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Repo.Create(ctx, off); err != nil {
		return nil, fmt.Errorf("failed to create offering: %w", err)
	}
	return off, nil
}

func (s *DefaultOfferingService) GetOffering(ctx context.Context, companyID, id string) (*models.Offering, error) {
	return s.Repo.GetByID(ctx, companyID, id)
}

func (s *DefaultOfferingService) ListOfferings(ctx context.Context, companyID string, activeOnly bool) ([]models.Offering, error) {
	return s.Repo.ListByCompany(ctx, companyID, activeOnly)
}

func (s *DefaultOfferingService) UpdateOffering(ctx context.Context, companyID, id string, updates map[string]interface{}) (*models.Offering, error) {
	allowed := map[string]bool{
		"name": true, "description": true, "durationMinutes": true,
		"priceCents": true, "active": true,
	}
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if d, ok := filtered["durationMinutes"]; ok {
		minutes, isInt := toMinutes(d)
		if !isInt || minutes <= 0 {
			return nil, availability.ErrInvalidDuration
		}
		filtered["durationMinutes"] = minutes
	}
	if len(filtered) == 0 {
		return s.Repo.GetByID(ctx, companyID, id)
	}
	filtered["updatedAt"] = time.Now()
	return s.Repo.Update(ctx, companyID, id, filtered)
}

// DeactivateOffering stops new bookings against the offering. Existing
// bookings are untouched.
func (s *DefaultOfferingService) DeactivateOffering(ctx context.Context, companyID, id string) (*models.Offering, error) {
	return s.UpdateOffering(ctx, companyID, id, map[string]interface{}{"active": false})
}

// toMinutes accepts the numeric types a decoded JSON update map can carry.
func toMinutes(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
