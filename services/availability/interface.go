package availability

import (
	"context"

	"agendly/models"
)

// AvailabilityService is the application-facing surface of the availability
// subsystem: management of the declarations plus the day-slot and envelope
// computations backed by the pure engine.
type AvailabilityService interface {
	CreateRecord(ctx context.Context, companyID string, rec models.AvailabilityRecord) (*models.AvailabilityRecord, error)
	ListRecords(ctx context.Context, companyID, professionalID string) ([]models.AvailabilityRecord, error)
	DeleteRecord(ctx context.Context, companyID, recordID string) error

	// GetDaySlots serves from the short-lived cache when possible.
	GetDaySlots(ctx context.Context, companyID, professionalID, offeringID, date string) ([]models.TimeSlot, error)
	// ComputeDaySlots always recomputes from fresh reads; booking
	// confirmation uses it to decide conflicts.
	ComputeDaySlots(ctx context.Context, companyID, professionalID, offeringID, date string) ([]models.TimeSlot, error)
	InvalidateDaySlots(ctx context.Context, companyID, professionalID, date string)
	// InvalidateProfessionalSlots drops every cached day for a
	// professional; catalog changes affect arbitrary future dates.
	InvalidateProfessionalSlots(ctx context.Context, companyID, professionalID string)

	GetDayEnvelope(ctx context.Context, companyID, date string) (models.Envelope, error)
}
