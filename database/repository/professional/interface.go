package professionalRepo

import (
	"context"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ProfessionalRepository interface {
	Create(ctx context.Context, professional *models.Professional) error
	GetByID(ctx context.Context, companyID, id string) (*models.Professional, error)
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]models.Professional, error)
	Update(ctx context.Context, companyID, id string, updates map[string]interface{}) (*models.Professional, error)
	Delete(ctx context.Context, companyID, id string) error
}

type mongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo constructs a new MongoDB ProfessionalRepository.
func NewMongoProfessionalRepo() ProfessionalRepository {
	return &mongoProfessionalRepo{
		coll: database.DB().Collection("professionals"),
	}
}
