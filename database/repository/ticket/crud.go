package ticketRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agendly/models"
)

func (r *mongoTicketRepo) Create(ctx context.Context, ticket *models.SupportTicket) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, ticket); err != nil {
		return fmt.Errorf("failed to insert support ticket: %w", err)
	}
	return nil
}

func (r *mongoTicketRepo) GetByID(ctx context.Context, companyID, id string) (*models.SupportTicket, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ticket models.SupportTicket
	filter := bson.M{"id": id, "companyId": companyID}
	if err := r.coll.FindOne(ctx, filter).Decode(&ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *mongoTicketRepo) ListByCompany(ctx context.Context, companyID string) ([]models.SupportTicket, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"companyId": companyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tickets []models.SupportTicket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *mongoTicketRepo) UpdateStatus(ctx context.Context, companyID, id, status string) (*models.SupportTicket, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	after := options.After
	opts := &options.FindOneAndUpdateOptions{ReturnDocument: &after}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}

	var ticket models.SupportTicket
	filter := bson.M{"id": id, "companyId": companyID}
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket %s status: %w", id, err)
	}
	return &ticket, nil
}
