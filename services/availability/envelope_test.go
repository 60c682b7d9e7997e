package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"agendly/models"
)

func TestComputeRangeEnvelope_Fallback(t *testing.T) {
	env := ComputeRangeEnvelope(nil, tuesday)
	assert.Equal(t, models.Envelope{EarliestStart: "09:00", LatestEnd: "18:00"}, env)

	// Records exist but none matches the date's weekday.
	sundayOnly := [][]models.AvailabilityRecord{
		{gridRecord([]time.Weekday{time.Sunday}, "10:00", "14:00")},
	}
	env = ComputeRangeEnvelope(sundayOnly, tuesday)
	assert.Equal(t, models.Envelope{EarliestStart: "09:00", LatestEnd: "18:00"}, env)
}

func TestComputeRangeEnvelope_SpansProfessionals(t *testing.T) {
	byProfessional := [][]models.AvailabilityRecord{
		{gridRecord(weekdaysMonToFri(), "08:00", "12:00")},
		{gridRecord(weekdaysMonToFri(), "13:00", "20:00")},
	}
	env := ComputeRangeEnvelope(byProfessional, tuesday)
	assert.Equal(t, models.Envelope{EarliestStart: "08:00", LatestEnd: "20:00"}, env)
}

func TestComputeRangeEnvelope_IgnoresBlocks(t *testing.T) {
	byProfessional := [][]models.AvailabilityRecord{
		{
			gridRecord(weekdaysMonToFri(), "09:00", "17:00"),
			// Early-morning block must not widen the envelope.
			oneOffRecord(models.KindBlocked,
				time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC),
				time.Date(2025, 3, 11, 22, 0, 0, 0, time.UTC),
			),
		},
	}
	env := ComputeRangeEnvelope(byProfessional, tuesday)
	assert.Equal(t, models.Envelope{EarliestStart: "09:00", LatestEnd: "17:00"}, env)
}

func TestComputeRangeEnvelope_ReleasedWidens(t *testing.T) {
	byProfessional := [][]models.AvailabilityRecord{
		{
			gridRecord(weekdaysMonToFri(), "09:00", "17:00"),
			oneOffRecord(models.KindReleased,
				time.Date(2025, 3, 11, 7, 0, 0, 0, time.UTC),
				time.Date(2025, 3, 11, 19, 30, 0, 0, time.UTC),
			),
		},
	}
	env := ComputeRangeEnvelope(byProfessional, tuesday)
	assert.Equal(t, models.Envelope{EarliestStart: "07:00", LatestEnd: "19:30"}, env)
}
