package companyRepo

import (
	"context"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id string) (*models.Company, error)
	GetByEmail(ctx context.Context, email string) (*models.Company, error)
	GetBySlug(ctx context.Context, slug string) (*models.Company, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Company, error)
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Company, error)
	Delete(ctx context.Context, id string) error
}

type mongoCompanyRepo struct {
	coll *mongo.Collection
}

// NewMongoCompanyRepo constructs a new MongoDB CompanyRepository.
func NewMongoCompanyRepo() CompanyRepository {
	return &mongoCompanyRepo{
		coll: database.DB().Collection("companies"),
	}
}
