package professionalRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agendly/models"
)

func (r *mongoProfessionalRepo) Create(ctx context.Context, professional *models.Professional) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, professional); err != nil {
		return fmt.Errorf("failed to insert professional: %w", err)
	}
	return nil
}

func (r *mongoProfessionalRepo) GetByID(ctx context.Context, companyID, id string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var professional models.Professional
	filter := bson.M{"id": id, "companyId": companyID}
	if err := r.coll.FindOne(ctx, filter).Decode(&professional); err != nil {
		return nil, err
	}
	return &professional, nil
}

func (r *mongoProfessionalRepo) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]models.Professional, error) {
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

	var professionals []models.Professional
	if err := cursor.All(ctx, &professionals); err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *mongoProfessionalRepo) Update(ctx context.Context, companyID, id string, updates map[string]interface{}) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updates["updatedAt"] = time.Now()
	after := options.After
	opts := &options.FindOneAndUpdateOptions{ReturnDocument: &after}

	var professional models.Professional
	filter := bson.M{"id": id, "companyId": companyID}
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": updates}, opts).Decode(&professional)
	if err != nil {
		return nil, fmt.Errorf("failed to update professional %s: %w", id, err)
	}
	return &professional, nil
}

func (r *mongoProfessionalRepo) Delete(ctx context.Context, companyID, id string) error {
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
