package consentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agendly/models"
)

func (r *mongoConsentRepo) Create(ctx context.Context, record *models.ConsentRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert consent record: %w", err)
	}
	return nil
}

func (r *mongoConsentRepo) ListBySubject(ctx context.Context, companyID, subject string) ([]models.ConsentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"companyId": companyID, "subject": subject}
	opts := options.Find().SetSort(bson.D{{Key: "grantedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.ConsentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *mongoConsentRepo) Revoke(ctx context.Context, companyID, id string) (*models.ConsentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	after := options.After
	opts := &options.FindOneAndUpdateOptions{ReturnDocument: &after}
	update := bson.M{"$set": bson.M{"granted": false, "revokedAt": now}}

	var record models.ConsentRecord
	filter := bson.M{"id": id, "companyId": companyID}
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to revoke consent %s: %w", id, err)
	}
	return &record, nil
}
