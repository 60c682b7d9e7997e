package models

// TimeSlot is one candidate booking start-time for a queried date.
type TimeSlot struct {
	Time      string `json:"time"` // wall-clock "HH:MM"
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"` // "blocked" or "occupied" when unavailable
}

const (
	SlotReasonBlocked  = "blocked"
	SlotReasonOccupied = "occupied"
)

// Envelope bounds a calendar day's display grid across professionals.
type Envelope struct {
	EarliestStart string `json:"earliestStart"` // "HH:MM"
	LatestEnd     string `json:"latestEnd"`     // "HH:MM"
}
