package availability

import (
	"errors"

	"agendly/models"
)

// ErrInvalidDuration is the one hard failure of the engine: nothing
// downstream is meaningful without a positive service duration.
var ErrInvalidDuration = errors.New("duration must be a positive number of minutes")

// blockSpan is an interval a candidate slot must not overlap, tagged with the
// reason reported when it does.
type blockSpan struct {
	Interval
	reason string
}

// GenerateSlotStarts produces every candidate booking start (minutes from
// midnight) that fits entirely within the interval: t, t+d, t+2d, ... while
// t+d <= iv.End. A slot whose end lands exactly on the interval end is kept.
func GenerateSlotStarts(iv Interval, durationMinutes int) ([]int, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	var starts []int
	for t := iv.Start; t+durationMinutes <= iv.End; t += durationMinutes {
		starts = append(starts, t)
	}
	return starts, nil
}

// ComputeSlots is the per-professional, per-date slot computation. It is a
// pure function of its inputs: identical calls produce identical,
// identically ordered output.
//
// professionalID filters mixed-professional input; pass "" when the caller
// has already scoped records and bookings. Grid and released records form
// the availability set, blocked records and confirmed bookings form the
// block set. Candidate slots are generated from the unified availability
// spans and classified against the block set with a half-open overlap test.
// A date with no availability yields an empty list no matter how many blocks
// or bookings exist.
func ComputeSlots(
	professionalID string,
	records []models.AvailabilityRecord,
	bookings []models.Booking,
	date string,
	durationMinutes int,
) ([]models.TimeSlot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	var avail []Interval
	var blocks []blockSpan
	for _, rec := range records {
		if professionalID != "" && rec.ProfessionalID != professionalID {
			continue
		}
		iv, ok := NormalizeRecordForDate(rec, date)
		if !ok {
			continue
		}
		switch rec.Kind {
		case models.KindRecurringGrid, models.KindReleased:
			avail = append(avail, iv)
		case models.KindBlocked:
			blocks = append(blocks, blockSpan{Interval: iv, reason: models.SlotReasonBlocked})
		}
	}

	slots := make([]models.TimeSlot, 0)
	if len(avail) == 0 {
		// No underlying availability: never fall back to blocks-only.
		return slots, nil
	}

	for _, b := range bookings {
		if professionalID != "" && b.ProfessionalID != professionalID {
			continue
		}
		if b.Status == models.BookingStatusCancelled {
			continue
		}
		// Re-derive the occupied interval rather than trusting the caller's
		// date scoping.
		if dateKey(b.StartDateTime) != date {
			continue
		}
		d := b.DurationMinutes
		if d <= 0 {
			d = durationMinutes
		}
		start := minutesOfDay(b.StartDateTime)
		blocks = append(blocks, blockSpan{
			Interval: Interval{Start: start, End: start + d},
			reason:   models.SlotReasonOccupied,
		})
	}

	seen := make(map[int]bool)
	for _, span := range UnifyIntervals(avail) {
		starts, err := GenerateSlotStarts(span, durationMinutes)
		if err != nil {
			return nil, err
		}
		for _, t := range starts {
			if seen[t] {
				// Duplicate start across spans; first classification wins.
				continue
			}
			seen[t] = true
			slot := models.TimeSlot{Time: formatMinutes(t), Available: true}
			for _, blk := range blocks {
				if t < blk.End && t+durationMinutes > blk.Start {
					slot.Available = false
					slot.Reason = blk.reason
					break
				}
			}
			slots = append(slots, slot)
		}
	}
	return slots, nil
}
