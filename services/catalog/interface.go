package catalog

import (
	"context"

	"agendly/models"
)

// ProfessionalService manages a company's bookable staff.
type ProfessionalService interface {
	CreateProfessional(ctx context.Context, companyID string, req ProfessionalRequest) (*models.Professional, error)
	GetProfessional(ctx context.Context, companyID, id string) (*models.Professional, error)
	ListProfessionals(ctx context.Context, companyID string, activeOnly bool) ([]models.Professional, error)
	UpdateProfessional(ctx context.Context, companyID, id string, updates map[string]interface{}) (*models.Professional, error)
	DeactivateProfessional(ctx context.Context, companyID, id string) (*models.Professional, error)
}

// OfferingService manages a company's bookable services.
type OfferingService interface {
	CreateOffering(ctx context.Context, companyID string, req OfferingRequest) (*models.Offering, error)
	GetOffering(ctx context.Context, companyID, id string) (*models.Offering, error)
	ListOfferings(ctx context.Context, companyID string, activeOnly bool) ([]models.Offering, error)
	UpdateOffering(ctx context.Context, companyID, id string, updates map[string]interface{}) (*models.Offering, error)
	DeactivateOffering(ctx context.Context, companyID, id string) (*models.Offering, error)
}

// ProfessionalRequest is the staff-facing create payload.
type ProfessionalRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

// OfferingRequest is the staff-facing create payload.
type OfferingRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,min=1"`
	PriceCents      int64  `json:"priceCents"`
}
