package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"agendly/models"
)

type fakeCompanyRepo struct {
	bySlug map[string]*models.Company
}

func (f *fakeCompanyRepo) Create(context.Context, *models.Company) error { return nil }
func (f *fakeCompanyRepo) GetByID(context.Context, string) (*models.Company, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeCompanyRepo) GetByEmail(context.Context, string) (*models.Company, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeCompanyRepo) GetBySlug(_ context.Context, slug string) (*models.Company, error) {
	if c, ok := f.bySlug[slug]; ok {
		return c, nil
	}
	return nil, mongo.ErrNoDocuments
}
func (f *fakeCompanyRepo) GetByTokenHash(context.Context, string) (*models.Company, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeCompanyRepo) UpdateTokenHash(context.Context, string, string) error { return nil }
func (f *fakeCompanyRepo) Update(context.Context, string, map[string]interface{}) (*models.Company, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeCompanyRepo) Delete(context.Context, string) error { return nil }

type fakeProfessionalRepo struct {
	byID map[string]*models.Professional
}

func (f *fakeProfessionalRepo) Create(context.Context, *models.Professional) error { return nil }
func (f *fakeProfessionalRepo) GetByID(_ context.Context, _, id string) (*models.Professional, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, mongo.ErrNoDocuments
}
func (f *fakeProfessionalRepo) ListByCompany(context.Context, string, bool) ([]models.Professional, error) {
	return nil, nil
}
func (f *fakeProfessionalRepo) Update(context.Context, string, string, map[string]interface{}) (*models.Professional, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeProfessionalRepo) Delete(context.Context, string, string) error { return nil }

type fakeOfferingRepo struct {
	byID map[string]*models.Offering
}

func (f *fakeOfferingRepo) Create(context.Context, *models.Offering) error { return nil }
func (f *fakeOfferingRepo) GetByID(_ context.Context, _, id string) (*models.Offering, error) {
	if o, ok := f.byID[id]; ok {
		return o, nil
	}
	return nil, mongo.ErrNoDocuments
}
func (f *fakeOfferingRepo) ListByCompany(context.Context, string, bool) ([]models.Offering, error) {
	return nil, nil
}
func (f *fakeOfferingRepo) Update(context.Context, string, string, map[string]interface{}) (*models.Offering, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeOfferingRepo) Delete(context.Context, string, string) error { return nil }

type fakeBookingRepo struct {
	created []*models.Booking
	byID    map[string]*models.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	f.created = append(f.created, b)
	return nil
}
func (f *fakeBookingRepo) GetByID(_ context.Context, _, id string) (*models.Booking, error) {
	if b, ok := f.byID[id]; ok {
		return b, nil
	}
	return nil, mongo.ErrNoDocuments
}
func (f *fakeBookingRepo) ListByProfessionalAndDate(context.Context, string, string, string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListByCompanyAndDate(context.Context, string, string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _, id, status string) (*models.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	b.Status = status
	return b, nil
}

type fakeConsentRepo struct {
	created []*models.ConsentRecord
}

func (f *fakeConsentRepo) Create(_ context.Context, rec *models.ConsentRecord) error {
	f.created = append(f.created, rec)
	return nil
}
func (f *fakeConsentRepo) ListBySubject(context.Context, string, string) ([]models.ConsentRecord, error) {
	return nil, nil
}
func (f *fakeConsentRepo) Revoke(context.Context, string, string) (*models.ConsentRecord, error) {
	return nil, mongo.ErrNoDocuments
}

type fakeSlotComputer struct {
	slots       []models.TimeSlot
	invalidated []string
}

func (f *fakeSlotComputer) ComputeDaySlots(context.Context, string, string, string, string) ([]models.TimeSlot, error) {
	return f.slots, nil
}
func (f *fakeSlotComputer) InvalidateDaySlots(_ context.Context, _, professionalID, date string) {
	f.invalidated = append(f.invalidated, professionalID+"/"+date)
}

func newTestService(slots []models.TimeSlot) (*DefaultBookingService, *fakeBookingRepo, *fakeConsentRepo, *fakeSlotComputer) {
	bookings := &fakeBookingRepo{byID: map[string]*models.Booking{}}
	consents := &fakeConsentRepo{}
	computer := &fakeSlotComputer{slots: slots}

	svc := &DefaultBookingService{
		CompanyRepo: &fakeCompanyRepo{bySlug: map[string]*models.Company{
			"glow-studio": {ID: "co-1", Name: "Glow Studio", Slug: "glow-studio"},
		}},
		ProfessionalRepo: &fakeProfessionalRepo{byID: map[string]*models.Professional{
			"pro-1": {ID: "pro-1", CompanyID: "co-1", Name: "Ana", Active: true},
			"pro-2": {ID: "pro-2", CompanyID: "co-1", Name: "Bea", Active: false},
		}},
		OfferingRepo: &fakeOfferingRepo{byID: map[string]*models.Offering{
			"off-1": {ID: "off-1", CompanyID: "co-1", Name: "Haircut", DurationMinutes: 30, Active: true},
			"off-2": {ID: "off-2", CompanyID: "co-1", Name: "Retired", DurationMinutes: 30, Active: false},
		}},
		Repo:        bookings,
		ConsentRepo: consents,
		Slots:       computer,
	}
	return svc, bookings, consents, computer
}

func validRequest() PublicBookingRequest {
	return PublicBookingRequest{
		ProfessionalID: "pro-1",
		OfferingID:     "off-1",
		Date:           "2025-03-11",
		Time:           "09:30",
		CustomerName:   "Carla",
		CustomerEmail:  "carla@example.com",
		Consent:        true,
	}
}

func daySlots() []models.TimeSlot {
	return []models.TimeSlot{
		{Time: "09:00", Available: false, Reason: models.SlotReasonOccupied},
		{Time: "09:30", Available: true},
		{Time: "10:00", Available: false, Reason: models.SlotReasonBlocked},
	}
}

func TestCreatePublicBooking_Success(t *testing.T) {
	svc, bookings, consents, computer := newTestService(daySlots())

	booking, err := svc.CreatePublicBooking(context.Background(), "glow-studio", validRequest())
	require.NoError(t, err)

	assert.Equal(t, "co-1", booking.CompanyID)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 30, booking.DurationMinutes)
	assert.Equal(t, "2025-03-11", booking.Date)
	assert.Equal(t, 9, booking.StartDateTime.Hour())
	assert.Equal(t, 30, booking.StartDateTime.Minute())

	require.Len(t, bookings.created, 1)
	require.Len(t, consents.created, 1)
	assert.Equal(t, "carla@example.com", consents.created[0].Subject)
	assert.True(t, consents.created[0].Granted)
	assert.Equal(t, []string{"pro-1/2025-03-11"}, computer.invalidated)
}

func TestCreatePublicBooking_ConsentRequired(t *testing.T) {
	svc, bookings, _, _ := newTestService(daySlots())

	req := validRequest()
	req.Consent = false
	_, err := svc.CreatePublicBooking(context.Background(), "glow-studio", req)
	assert.ErrorIs(t, err, ErrConsentRequired)
	assert.Empty(t, bookings.created)
}

func TestCreatePublicBooking_OccupiedSlot(t *testing.T) {
	svc, bookings, _, _ := newTestService(daySlots())

	req := validRequest()
	req.Time = "09:00"
	_, err := svc.CreatePublicBooking(context.Background(), "glow-studio", req)

	var unavailable *SlotUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, models.SlotReasonOccupied, unavailable.Reason)
	assert.Empty(t, bookings.created)
}

func TestCreatePublicBooking_TimeNotOffered(t *testing.T) {
	svc, bookings, _, _ := newTestService(daySlots())

	req := validRequest()
	req.Time = "22:00"
	_, err := svc.CreatePublicBooking(context.Background(), "glow-studio", req)

	var unavailable *SlotUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Empty(t, bookings.created)
}

func TestCreatePublicBooking_InactiveProfessional(t *testing.T) {
	svc, _, _, _ := newTestService(daySlots())

	req := validRequest()
	req.ProfessionalID = "pro-2"
	_, err := svc.CreatePublicBooking(context.Background(), "glow-studio", req)

	var unavailable *SlotUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestCreatePublicBooking_InactiveOffering(t *testing.T) {
	svc, _, _, _ := newTestService(daySlots())

	req := validRequest()
	req.OfferingID = "off-2"
	_, err := svc.CreatePublicBooking(context.Background(), "glow-studio", req)

	var unavailable *SlotUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestCreatePublicBooking_UnknownCompany(t *testing.T) {
	svc, _, _, _ := newTestService(daySlots())

	_, err := svc.CreatePublicBooking(context.Background(), "nope", validRequest())
	assert.Error(t, err)
}

func TestCancelBooking_InvalidatesCache(t *testing.T) {
	svc, bookings, _, computer := newTestService(daySlots())
	bookings.byID["bk-9"] = &models.Booking{
		ID: "bk-9", CompanyID: "co-1", ProfessionalID: "pro-1",
		Date: "2025-03-11", Status: models.BookingStatusConfirmed,
	}

	cancelled, err := svc.CancelBooking(context.Background(), "co-1", "bk-9")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, []string{"pro-1/2025-03-11"}, computer.invalidated)
}
