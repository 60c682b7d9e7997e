package availability

import (
	"agendly/models"
)

// NormalizeRecordForDate resolves one availability record into an interval
// anchored within the target date, or reports false when the record does not
// touch that date.
//
// Recurring grids apply only when the date's weekday is among the record's
// DaysOfWeek. Released/blocked records apply when the date falls inside
// [date(start), date(end)]; on boundary days the interval is clipped to the
// record's own timestamps, on intermediate days it covers the whole day.
// End-of-day uses the exclusive next-midnight boundary (minute 1440).
//
// Malformed records (bad wall-clock strings, zero timestamps, end not after
// start) normalize to nothing rather than failing the whole computation.
func NormalizeRecordForDate(rec models.AvailabilityRecord, date string) (Interval, bool) {
	switch rec.Kind {
	case models.KindRecurringGrid:
		return normalizeGrid(rec, date)
	case models.KindReleased, models.KindBlocked:
		return normalizeOneOff(rec, date)
	}
	// Unknown kinds contribute nothing.
	return Interval{}, false
}

func normalizeGrid(rec models.AvailabilityRecord, date string) (Interval, bool) {
	weekday, ok := weekdayOf(date)
	if !ok {
		return Interval{}, false
	}
	active := false
	for _, d := range rec.DaysOfWeek {
		if d == weekday {
			active = true
			break
		}
	}
	if !active {
		return Interval{}, false
	}
	start, okStart := parseHHMM(rec.StartTime)
	end, okEnd := parseHHMM(rec.EndTime)
	if !okStart || !okEnd || end <= start {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

func normalizeOneOff(rec models.AvailabilityRecord, date string) (Interval, bool) {
	if rec.StartDateTime.IsZero() || rec.EndDateTime.IsZero() {
		return Interval{}, false
	}
	if !rec.EndDateTime.After(rec.StartDateTime) {
		return Interval{}, false
	}
	startDate := dateKey(rec.StartDateTime)
	endDate := dateKey(rec.EndDateTime)
	// ISO date keys compare lexicographically.
	if date < startDate || date > endDate {
		return Interval{}, false
	}
	iv := Interval{Start: 0, End: minutesPerDay}
	if startDate == date {
		iv.Start = minutesOfDay(rec.StartDateTime)
	}
	if endDate == date {
		iv.End = minutesOfDay(rec.EndDateTime)
	}
	if iv.End <= iv.Start {
		// A record ending exactly at midnight contributes nothing to its
		// end date under the exclusive boundary.
		return Interval{}, false
	}
	return iv, true
}
