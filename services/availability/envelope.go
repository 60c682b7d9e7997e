package availability

import (
	"agendly/models"
)

// Fallback display window when no professional has availability on a date.
const (
	fallbackDayStart = 9 * 60  // 09:00
	fallbackDayEnd   = 18 * 60 // 18:00
)

// ComputeRangeEnvelope returns the earliest-start/latest-end envelope of
// nominal availability (grids and released records) across every
// professional's records for the target date. Blocks and bookings are
// ignored: the envelope sizes a calendar display grid, it does not decide
// bookability.
func ComputeRangeEnvelope(recordsByProfessional [][]models.AvailabilityRecord, date string) models.Envelope {
	earliest, latest := -1, -1
	for _, records := range recordsByProfessional {
		for _, rec := range records {
			if rec.Kind == models.KindBlocked {
				continue
			}
			iv, ok := NormalizeRecordForDate(rec, date)
			if !ok {
				continue
			}
			if earliest < 0 || iv.Start < earliest {
				earliest = iv.Start
			}
			if iv.End > latest {
				latest = iv.End
			}
		}
	}
	if earliest < 0 {
		earliest, latest = fallbackDayStart, fallbackDayEnd
	}
	return models.Envelope{
		EarliestStart: formatMinutes(earliest),
		LatestEnd:     formatMinutes(latest),
	}
}
