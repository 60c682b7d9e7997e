package models

import "time"

// Offering is a bookable service definition. Its duration drives the slot
// computation for every booking made against it.
type Offering struct {
	ID              string    `bson:"id" json:"id"`
	CompanyID       string    `bson:"companyId" json:"companyId"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	PriceCents      int64     `bson:"priceCents" json:"priceCents"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
