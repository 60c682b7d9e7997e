package offeringRepo

import (
	"context"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type OfferingRepository interface {
	Create(ctx context.Context, offering *models.Offering) error
	GetByID(ctx context.Context, companyID, id string) (*models.Offering, error)
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]models.Offering, error)
	Update(ctx context.Context, companyID, id string, updates map[string]interface{}) (*models.Offering, error)
	Delete(ctx context.Context, companyID, id string) error
}

type mongoOfferingRepo struct {
	coll *mongo.Collection
}

// NewMongoOfferingRepo constructs a new MongoDB OfferingRepository.
func NewMongoOfferingRepo() OfferingRepository {
	return &mongoOfferingRepo{
		coll: database.DB().Collection("offerings"),
	}
}
