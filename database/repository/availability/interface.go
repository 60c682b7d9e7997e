package availabilityRepo

import (
	"context"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AvailabilityRepository interface {
	Create(ctx context.Context, record *models.AvailabilityRecord) error
	GetByID(ctx context.Context, companyID, id string) (*models.AvailabilityRecord, error)
	ListByProfessional(ctx context.Context, companyID, professionalID string) ([]models.AvailabilityRecord, error)
	ListByCompany(ctx context.Context, companyID string) ([]models.AvailabilityRecord, error)
	Delete(ctx context.Context, companyID, id string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &mongoAvailabilityRepo{
		coll: database.DB().Collection("availability_records"),
	}
}
