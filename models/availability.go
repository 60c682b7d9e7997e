package models

import "time"

// AvailabilityKind tags the three declaration kinds a professional's schedule
// is built from. The set is closed; the engine dispatches exhaustively on it
// and skips anything it does not recognize.
type AvailabilityKind string

const (
	KindRecurringGrid AvailabilityKind = "recurring_grid"
	KindReleased      AvailabilityKind = "released"
	KindBlocked       AvailabilityKind = "blocked"
)

// AvailabilityRecord declares when a professional is nominally available or
// explicitly blocked. Grid records carry weekdays plus wall-clock times;
// released/blocked records carry full timestamps and may span several days.
// The engine treats records as immutable input and never mutates them.
type AvailabilityRecord struct {
	ID             string           `bson:"id" json:"id"`
	CompanyID      string           `bson:"companyId" json:"companyId"`
	ProfessionalID string           `bson:"professionalId" json:"professionalId"`
	Kind           AvailabilityKind `bson:"kind" json:"kind"`

	// RecurringGrid fields. Weekdays use Sunday=0, matching time.Weekday.
	DaysOfWeek []time.Weekday `bson:"daysOfWeek,omitempty" json:"daysOfWeek,omitempty"`
	StartTime  string         `bson:"startTime,omitempty" json:"startTime,omitempty"` // "HH:MM"
	EndTime    string         `bson:"endTime,omitempty" json:"endTime,omitempty"`     // "HH:MM"

	// Released / Blocked fields. Timestamps are venue-local wall-clock times.
	StartDateTime time.Time `bson:"startDateTime,omitempty" json:"startDateTime,omitempty"`
	EndDateTime   time.Time `bson:"endDateTime,omitempty" json:"endDateTime,omitempty"`

	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
