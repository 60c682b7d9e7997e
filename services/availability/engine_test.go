package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendly/models"
)

// tuesday is the reference working date used across engine tests.
const tuesday = "2025-03-11"

func confirmedBooking(professionalID string, start time.Time, durationMinutes int) models.Booking {
	return models.Booking{
		ID:              "bk-1",
		ProfessionalID:  professionalID,
		Date:            start.Format(dateLayout),
		StartDateTime:   start,
		DurationMinutes: durationMinutes,
		Status:          models.BookingStatusConfirmed,
	}
}

func slotTimes(slots []models.TimeSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Time
	}
	return out
}

func TestComputeSlots_InvalidDuration(t *testing.T) {
	_, err := ComputeSlots("pro-1", nil, nil, tuesday, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ComputeSlots("pro-1", nil, nil, tuesday, -30)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestComputeSlots_MorningGrid(t *testing.T) {
	records := []models.AvailabilityRecord{gridRecord(weekdaysMonToFri(), "09:00", "12:00")}

	slots, err := ComputeSlots("pro-1", records, nil, tuesday, 30)
	require.NoError(t, err)

	// 11:30+30 = 12:00 still fits; nothing starts at 12:00.
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slotTimes(slots))
	for _, s := range slots {
		assert.True(t, s.Available, s.Time)
		assert.Empty(t, s.Reason, s.Time)
	}
}

func TestComputeSlots_BlockedWindow(t *testing.T) {
	records := []models.AvailabilityRecord{
		gridRecord(weekdaysMonToFri(), "09:00", "12:00"),
		oneOffRecord(models.KindBlocked,
			time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 11, 10, 30, 0, 0, time.UTC),
		),
	}

	slots, err := ComputeSlots("pro-1", records, nil, tuesday, 30)
	require.NoError(t, err)
	require.Len(t, slots, 6)

	for _, s := range slots {
		if s.Time == "10:00" {
			assert.False(t, s.Available)
			assert.Equal(t, models.SlotReasonBlocked, s.Reason)
		} else {
			assert.True(t, s.Available, s.Time)
		}
	}
}

func TestComputeSlots_BookingOccupiesExactSlot(t *testing.T) {
	records := []models.AvailabilityRecord{gridRecord(weekdaysMonToFri(), "09:00", "12:00")}
	bookings := []models.Booking{
		confirmedBooking("pro-1", time.Date(2025, 3, 11, 9, 30, 0, 0, time.UTC), 30),
	}

	slots, err := ComputeSlots("pro-1", records, bookings, tuesday, 30)
	require.NoError(t, err)
	require.Len(t, slots, 6)

	for _, s := range slots {
		if s.Time == "09:30" {
			assert.False(t, s.Available)
			assert.Equal(t, models.SlotReasonOccupied, s.Reason)
		} else {
			assert.True(t, s.Available, s.Time)
		}
	}
}

func TestComputeSlots_BookingPartialOverlap(t *testing.T) {
	// A 60-minute booking at 09:45 collides with the 09:30, 10:00 and 10:30
	// candidates but not with 09:00 (half-open intervals).
	records := []models.AvailabilityRecord{gridRecord(weekdaysMonToFri(), "09:00", "12:00")}
	bookings := []models.Booking{
		confirmedBooking("pro-1", time.Date(2025, 3, 11, 9, 45, 0, 0, time.UTC), 60),
	}

	slots, err := ComputeSlots("pro-1", records, bookings, tuesday, 30)
	require.NoError(t, err)

	occupied := map[string]bool{"09:30": true, "10:00": true, "10:30": true}
	for _, s := range slots {
		if occupied[s.Time] {
			assert.False(t, s.Available, s.Time)
			assert.Equal(t, models.SlotReasonOccupied, s.Reason, s.Time)
		} else {
			assert.True(t, s.Available, s.Time)
		}
	}
}

func TestComputeSlots_CancelledBookingIgnored(t *testing.T) {
	records := []models.AvailabilityRecord{gridRecord(weekdaysMonToFri(), "09:00", "12:00")}
	bk := confirmedBooking("pro-1", time.Date(2025, 3, 11, 9, 30, 0, 0, time.UTC), 30)
	bk.Status = models.BookingStatusCancelled

	slots, err := ComputeSlots("pro-1", records, []models.Booking{bk}, tuesday, 30)
	require.NoError(t, err)
	for _, s := range slots {
		assert.True(t, s.Available, s.Time)
	}
}

func TestComputeSlots_NoAvailabilityMeansEmpty(t *testing.T) {
	// Blocks and bookings alone never produce slots.
	records := []models.AvailabilityRecord{
		oneOffRecord(models.KindBlocked,
			time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 11, 23, 0, 0, 0, time.UTC),
		),
	}
	bookings := []models.Booking{
		confirmedBooking("pro-1", time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC), 30),
	}

	slots, err := ComputeSlots("pro-1", records, bookings, tuesday, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestComputeSlots_FiltersByProfessional(t *testing.T) {
	records := []models.AvailabilityRecord{
		gridRecord(weekdaysMonToFri(), "09:00", "12:00"), // pro-1
		{
			ID: "rec-other", ProfessionalID: "pro-2", Kind: models.KindRecurringGrid,
			DaysOfWeek: weekdaysMonToFri(), StartTime: "14:00", EndTime: "18:00",
		},
	}
	otherBooking := confirmedBooking("pro-2", time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC), 30)

	slots, err := ComputeSlots("pro-1", records, []models.Booking{otherBooking}, tuesday, 30)
	require.NoError(t, err)

	// pro-2's afternoon grid and pro-2's booking are both ignored.
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slotTimes(slots))
	for _, s := range slots {
		assert.True(t, s.Available, s.Time)
	}
}

func TestComputeSlots_PrefilteredCaller(t *testing.T) {
	// Empty professional ID means the caller already scoped the input.
	records := []models.AvailabilityRecord{gridRecord(weekdaysMonToFri(), "09:00", "10:00")}
	slots, err := ComputeSlots("", records, nil, tuesday, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, slotTimes(slots))
}

func TestComputeSlots_ReleasedWindowMiddleDay(t *testing.T) {
	// Multi-day release: the middle day is fully open, so a 60-minute
	// service fills the whole day including the 23:00 slot.
	records := []models.AvailabilityRecord{
		oneOffRecord(models.KindReleased,
			time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC),
		),
	}

	slots, err := ComputeSlots("pro-1", records, nil, tuesday, 60)
	require.NoError(t, err)
	require.Len(t, slots, 24)
	assert.Equal(t, "00:00", slots[0].Time)
	assert.Equal(t, "23:00", slots[23].Time)
}

func TestComputeSlots_OverlappingDeclarationsUnified(t *testing.T) {
	// Overlapping grid and released declarations merge into one span, so no
	// duplicate start-times appear and slots cross the seam.
	records := []models.AvailabilityRecord{
		gridRecord(weekdaysMonToFri(), "09:00", "11:00"),
		oneOffRecord(models.KindReleased,
			time.Date(2025, 3, 11, 10, 30, 0, 0, time.UTC),
			time.Date(2025, 3, 11, 13, 0, 0, 0, time.UTC),
		),
	}

	slots, err := ComputeSlots("pro-1", records, nil, tuesday, 30)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30"},
		slotTimes(slots))
}

func TestComputeSlots_MalformedRecordDoesNotBlankDay(t *testing.T) {
	records := []models.AvailabilityRecord{
		gridRecord(weekdaysMonToFri(), "09:00", "12:00"),
		gridRecord(weekdaysMonToFri(), "15:00", "14:00"), // inverted, skipped
	}
	slots, err := ComputeSlots("pro-1", records, nil, tuesday, 30)
	require.NoError(t, err)
	assert.Len(t, slots, 6)
}

func TestComputeSlots_Deterministic(t *testing.T) {
	records := []models.AvailabilityRecord{
		gridRecord(weekdaysMonToFri(), "09:00", "12:00"),
		oneOffRecord(models.KindBlocked,
			time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC),
		),
	}
	bookings := []models.Booking{
		confirmedBooking("pro-1", time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC), 30),
	}

	first, err := ComputeSlots("pro-1", records, bookings, tuesday, 30)
	require.NoError(t, err)
	second, err := ComputeSlots("pro-1", records, bookings, tuesday, 30)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateSlotStarts(t *testing.T) {
	starts, err := GenerateSlotStarts(Interval{Start: 9 * 60, End: 10 * 60}, 25)
	require.NoError(t, err)
	// 09:00 and 09:25 fit; 09:50+25 = 10:15 overflows.
	assert.Equal(t, []int{540, 565}, starts)

	starts, err = GenerateSlotStarts(Interval{Start: 540, End: 560}, 30)
	require.NoError(t, err)
	assert.Empty(t, starts)

	_, err = GenerateSlotStarts(Interval{Start: 540, End: 600}, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestGenerateSlotStarts_Containment(t *testing.T) {
	iv := Interval{Start: 495, End: 750} // 08:15 - 12:30
	starts, err := GenerateSlotStarts(iv, 40)
	require.NoError(t, err)
	require.NotEmpty(t, starts)
	for _, s := range starts {
		assert.GreaterOrEqual(t, s, iv.Start)
		assert.LessOrEqual(t, s+40, iv.End)
	}
}
