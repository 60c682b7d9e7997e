package booking

import (
	"errors"
	"fmt"
)

// ErrConsentRequired is returned when a public booking arrives without the
// customer's privacy consent; the booking is not stored.
var ErrConsentRequired = errors.New("privacy consent is required to create a booking")

// SlotUnavailableError reports a booking attempt against a slot the engine
// does not currently offer as available.
type SlotUnavailableError struct {
	Time   string
	Reason string
}

func (e *SlotUnavailableError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("slot %s is not bookable", e.Time)
	}
	return fmt.Sprintf("slot %s is not bookable: %s", e.Time, e.Reason)
}
