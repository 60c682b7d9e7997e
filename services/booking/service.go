package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "agendly/database/repository/booking"
	companyRepo "agendly/database/repository/company"
	consentRepo "agendly/database/repository/consent"
	offeringRepo "agendly/database/repository/offering"
	professionalRepo "agendly/database/repository/professional"
	"agendly/models"
	"agendly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	CompanyRepo      companyRepo.CompanyRepository
	ProfessionalRepo professionalRepo.ProfessionalRepository
	OfferingRepo     offeringRepo.OfferingRepository
	Repo             bookingRepo.BookingRepository
	ConsentRepo      consentRepo.ConsentRepository
	Slots            SlotComputer
}

func (s *DefaultBookingService) CreatePublicBooking(ctx context.Context, companySlug string, req PublicBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if !req.Consent {
		return nil, ErrConsentRequired
	}

	company, err := s.CompanyRepo.GetBySlug(ctx, companySlug)
	if err != nil {
		return nil, fmt.Errorf("company %q not found: %w", companySlug, err)
	}

	professional, err := s.ProfessionalRepo.GetByID(ctx, company.ID, req.ProfessionalID)
	if err != nil {
		return nil, fmt.Errorf("professional %s not found: %w", req.ProfessionalID, err)
	}
	if !professional.Active {
		return nil, &SlotUnavailableError{Time: req.Time, Reason: "professional is not taking bookings"}
	}

	offering, err := s.OfferingRepo.GetByID(ctx, company.ID, req.OfferingID)
	if err != nil {
		return nil, fmt.Errorf("offering %s not found: %w", req.OfferingID, err)
	}
	if !offering.Active {
		return nil, &SlotUnavailableError{Time: req.Time, Reason: "service is not currently offered"}
	}

	start, err := time.Parse(dateTimeLayout, req.Date+" "+req.Time)
	if err != nil {
		return nil, fmt.Errorf("invalid date/time %q %q: %w", req.Date, req.Time, err)
	}

	// Recompute from fresh reads so a booking confirmed after this page was
	// rendered still causes a rejection here.
	slots, err := s.Slots.ComputeDaySlots(ctx, company.ID, req.ProfessionalID, req.OfferingID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to compute slots: %w", err)
	}
	if err := slotBookable(slots, req.Time); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		CompanyID:       company.ID,
		ProfessionalID:  req.ProfessionalID,
		OfferingID:      req.OfferingID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Date:            req.Date,
		StartDateTime:   start,
		DurationMinutes: offering.DurationMinutes,
		Status:          models.BookingStatusConfirmed,
		CreatedAt:       time.Now(),
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	consent := &models.ConsentRecord{
		ID:        uuid.New().String(),
		CompanyID: company.ID,
		Subject:   req.CustomerEmail,
		Purpose:   "booking_contact",
		Granted:   true,
		GrantedAt: time.Now(),
	}
	if err := s.ConsentRepo.Create(ctx, consent); err != nil {
		// The booking stands; the consent trail is repairable from logs.
		logger.Error("failed to store consent record",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}

	s.Slots.InvalidateDaySlots(ctx, company.ID, req.ProfessionalID, req.Date)

	logger.Info("booking confirmed",
		zap.String("companyID", company.ID),
		zap.String("professionalID", req.ProfessionalID),
		zap.String("date", req.Date),
		zap.String("time", req.Time))
	return booking, nil
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, companyID, professionalID, date string) ([]models.Booking, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	if professionalID == "" {
		return s.Repo.ListByCompanyAndDate(ctx, companyID, date)
	}
	return s.Repo.ListByProfessionalAndDate(ctx, companyID, professionalID, date)
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, companyID, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.UpdateStatus(ctx, companyID, bookingID, models.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	s.Slots.InvalidateDaySlots(ctx, companyID, booking.ProfessionalID, booking.Date)
	return booking, nil
}

// slotBookable checks the requested start against the engine's output.
// A time the engine never generated is as unbookable as an occupied one.
func slotBookable(slots []models.TimeSlot, at string) error {
	for _, slot := range slots {
		if slot.Time != at {
			continue
		}
		if slot.Available {
			return nil
		}
		return &SlotUnavailableError{Time: at, Reason: slot.Reason}
	}
	return &SlotUnavailableError{Time: at, Reason: "outside the professional's availability"}
}
