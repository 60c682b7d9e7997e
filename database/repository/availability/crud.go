package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agendly/models"
)

func (r *mongoAvailabilityRepo) Create(ctx context.Context, record *models.AvailabilityRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert availability record: %w", err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) GetByID(ctx context.Context, companyID, id string) (*models.AvailabilityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var record models.AvailabilityRecord
	filter := bson.M{"id": id, "companyId": companyID}
	if err := r.coll.FindOne(ctx, filter).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *mongoAvailabilityRepo) list(ctx context.Context, filter bson.M) ([]models.AvailabilityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.AvailabilityRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *mongoAvailabilityRepo) ListByProfessional(ctx context.Context, companyID, professionalID string) ([]models.AvailabilityRecord, error) {
	return r.list(ctx, bson.M{"companyId": companyID, "professionalId": professionalID})
}

func (r *mongoAvailabilityRepo) ListByCompany(ctx context.Context, companyID string) ([]models.AvailabilityRecord, error) {
	return r.list(ctx, bson.M{"companyId": companyID})
}

func (r *mongoAvailabilityRepo) Delete(ctx context.Context, companyID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "companyId": companyID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
