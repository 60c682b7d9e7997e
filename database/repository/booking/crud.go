package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agendly/models"
)

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, companyID, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"id": id, "companyId": companyID}
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startDateTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) ListByProfessionalAndDate(ctx context.Context, companyID, professionalID, date string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{
		"companyId":      companyID,
		"professionalId": professionalID,
		"date":           date,
	})
}

func (r *mongoBookingRepo) ListByCompanyAndDate(ctx context.Context, companyID, date string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"companyId": companyID, "date": date})
}

func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, companyID, id, status string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	after := options.After
	opts := &options.FindOneAndUpdateOptions{ReturnDocument: &after}
	update := bson.M{"$set": bson.M{"status": status}}

	var booking models.Booking
	filter := bson.M{"id": id, "companyId": companyID}
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	return &booking, nil
}
