package availability

import (
	"fmt"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	minutesPerDay = 24 * 60
)

// parseHHMM converts a wall-clock "HH:MM" string to minutes from midnight.
// "24:00" is accepted as the exclusive end-of-day boundary.
func parseHHMM(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, false
	}
	return h*60 + m, true
}

// formatMinutes renders minutes from midnight as "HH:MM" (1440 -> "24:00").
func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// dateKey extracts the "YYYY-MM-DD" calendar date of a timestamp. Timestamps
// are assumed already resolved to the venue's wall clock, so no time-zone
// conversion happens here.
func dateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// minutesOfDay returns a timestamp's wall-clock offset from midnight.
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// weekdayOf resolves a date key's weekday (Sunday=0).
func weekdayOf(date string) (time.Weekday, bool) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, false
	}
	return t.Weekday(), true
}
