package bookingRepo

import (
	"context"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, companyID, id string) (*models.Booking, error)
	ListByProfessionalAndDate(ctx context.Context, companyID, professionalID, date string) ([]models.Booking, error)
	ListByCompanyAndDate(ctx context.Context, companyID, date string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, companyID, id, status string) (*models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
