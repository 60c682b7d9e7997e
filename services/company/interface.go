package company

import (
	"context"

	"agendly/models"
)

// CompanyService covers tenant registration, staff authentication and
// profile management.
type CompanyService interface {
	Register(ctx context.Context, req models.RegisterCompanyRequest) (*models.CompanyAuthResponse, error)
	Authenticate(ctx context.Context, req models.AuthenticateCompanyRequest) (*models.CompanyAuthResponse, error)
	RevokeToken(ctx context.Context, companyID string) error
	GetProfile(ctx context.Context, companyID string) (*models.Company, error)
	UpdateProfile(ctx context.Context, companyID string, updates map[string]interface{}) (*models.Company, error)
	GetBySlug(ctx context.Context, slug string) (*models.Company, error)
}
