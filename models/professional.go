package models

import "time"

// Professional is a bookable staff member of a company.
type Professional struct {
	ID        string    `bson:"id" json:"id"`
	CompanyID string    `bson:"companyId" json:"companyId"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Bio       string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
