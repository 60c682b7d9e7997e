package booking

import (
	"context"

	"agendly/models"
)

// SlotComputer is the narrow slice of the availability service the booking
// flow needs: a fresh (uncached) day computation for conflict detection and
// cache invalidation after writes.
type SlotComputer interface {
	ComputeDaySlots(ctx context.Context, companyID, professionalID, offeringID, date string) ([]models.TimeSlot, error)
	InvalidateDaySlots(ctx context.Context, companyID, professionalID, date string)
}

// PublicBookingRequest is the payload a customer submits from the public
// booking page.
type PublicBookingRequest struct {
	ProfessionalID string `json:"professionalId" binding:"required"`
	OfferingID     string `json:"offeringId" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"` // "HH:MM"
	CustomerName   string `json:"customerName" binding:"required"`
	CustomerEmail  string `json:"customerEmail" binding:"required,email"`
	CustomerPhone  string `json:"customerPhone"`
	Consent        bool   `json:"consent"`
}

type BookingService interface {
	CreatePublicBooking(ctx context.Context, companySlug string, req PublicBookingRequest) (*models.Booking, error)
	ListBookings(ctx context.Context, companyID, professionalID, date string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, companyID, bookingID string) (*models.Booking, error)
}
