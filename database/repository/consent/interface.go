package consentRepo

import (
	"context"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ConsentRepository interface {
	Create(ctx context.Context, record *models.ConsentRecord) error
	ListBySubject(ctx context.Context, companyID, subject string) ([]models.ConsentRecord, error)
	Revoke(ctx context.Context, companyID, id string) (*models.ConsentRecord, error)
}

type mongoConsentRepo struct {
	coll *mongo.Collection
}

// NewMongoConsentRepo constructs a new MongoDB ConsentRepository.
func NewMongoConsentRepo() ConsentRepository {
	return &mongoConsentRepo{
		coll: database.DB().Collection("consent_records"),
	}
}
