package offeringRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agendly/models"
)

func (r *mongoOfferingRepo) Create(ctx context.Context, offering *models.Offering) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, offering); err != nil {
		return fmt.Errorf("failed to insert offering: %w", err)
	}
	return nil
}

func (r *mongoOfferingRepo) GetByID(ctx context.Context, companyID, id string) (*models.Offering, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var offering models.Offering
	filter := bson.M{"id": id, "companyId": companyID}
	if err := r.coll.FindOne(ctx, filter).Decode(&offering); err != nil {
		return nil, err
	}
	return &offering, nil
}

func (r *mongoOfferingRepo) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]models.Offering, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"companyId": companyID}
	if activeOnly {
		filter["active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var offerings []models.Offering
	if err := cursor.All(ctx, &offerings); err != nil {
		return nil, err
	}
	return offerings, nil
}

func (r *mongoOfferingRepo) Update(ctx context.Context, companyID, id string, updates map[string]interface{}) (*models.Offering, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updates["updatedAt"] = time.Now()
	after := options.After
	opts := &options.FindOneAndUpdateOptions{ReturnDocument: &after}

	var offering models.Offering
	filter := bson.M{"id": id, "companyId": companyID}
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": updates}, opts).Decode(&offering)
	if err != nil {
		return nil, fmt.Errorf("failed to update offering %s: %w", id, err)
	}
	return &offering, nil
}

func (r *mongoOfferingRepo) Delete(ctx context.Context, companyID, id string) error {
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
