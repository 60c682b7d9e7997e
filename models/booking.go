package models

import "time"

// Booking represents a confirmed reservation that consumes a time slot.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	CompanyID      string    `bson:"companyId" json:"companyId"`
	ProfessionalID string    `bson:"professionalId" json:"professionalId"`
	OfferingID     string    `bson:"offeringId" json:"offeringId"`
	CustomerName   string    `bson:"customerName" json:"customerName"`
	CustomerEmail  string    `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone  string    `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	Date           string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	StartDateTime  time.Time `bson:"startDateTime" json:"startDateTime"`
	// DurationMinutes is denormalized from the offering at creation time so
	// the occupied interval survives later edits to the offering.
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Status          string    `bson:"status" json:"status"` // "confirmed", "cancelled"
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)
