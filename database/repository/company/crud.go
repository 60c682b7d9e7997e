package companyRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agendly/models"
)

func (r *mongoCompanyRepo) Create(ctx context.Context, company *models.Company) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, company); err != nil {
		return fmt.Errorf("failed to insert company: %w", err)
	}
	return nil
}

func (r *mongoCompanyRepo) findOne(ctx context.Context, filter bson.M) (*models.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var company models.Company
	if err := r.coll.FindOne(ctx, filter).Decode(&company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *mongoCompanyRepo) GetByID(ctx context.Context, id string) (*models.Company, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoCompanyRepo) GetByEmail(ctx context.Context, email string) (*models.Company, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoCompanyRepo) GetBySlug(ctx context.Context, slug string) (*models.Company, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *mongoCompanyRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Company, error) {
	if tokenHash == "" {
		return nil, mongo.ErrNoDocuments
	}
	return r.findOne(ctx, bson.M{"tokenHash": tokenHash})
}

func (r *mongoCompanyRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update token hash: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCompanyRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updates["updatedAt"] = time.Now()
	after := options.After
	opts := &options.FindOneAndUpdateOptions{ReturnDocument: &after}

	var company models.Company
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": updates}, opts).Decode(&company)
	if err != nil {
		return nil, fmt.Errorf("failed to update company %s: %w", id, err)
	}
	return &company, nil
}

func (r *mongoCompanyRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
