package models

import "time"

// ConsentRecord is the audit trail for a data subject's privacy consent,
// captured when a customer books through the public page.
type ConsentRecord struct {
	ID        string     `bson:"id" json:"id"`
	CompanyID string     `bson:"companyId" json:"companyId"`
	Subject   string     `bson:"subject" json:"subject"` // customer email or phone
	Purpose   string     `bson:"purpose" json:"purpose"` // e.g. "booking_contact"
	Granted   bool       `bson:"granted" json:"granted"`
	GrantedAt time.Time  `bson:"grantedAt" json:"grantedAt"`
	RevokedAt *time.Time `bson:"revokedAt,omitempty" json:"revokedAt,omitempty"`
}
