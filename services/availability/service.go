package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agendly/config"
	availabilityRepo "agendly/database/repository/availability"
	bookingRepo "agendly/database/repository/booking"
	offeringRepo "agendly/database/repository/offering"
	professionalRepo "agendly/database/repository/professional"
	"agendly/models"
	"agendly/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo             availabilityRepo.AvailabilityRepository
	BookingRepo      bookingRepo.BookingRepository
	OfferingRepo     offeringRepo.OfferingRepository
	ProfessionalRepo professionalRepo.ProfessionalRepository
	Cache            *redis.Client
}

func (s *DefaultAvailabilityService) CreateRecord(ctx context.Context, companyID string, rec models.AvailabilityRecord) (*models.AvailabilityRecord, error) {
	if rec.ProfessionalID == "" {
		return nil, newValidationError("professionalId", "must not be empty")
	}
	if _, err := s.ProfessionalRepo.GetByID(ctx, companyID, rec.ProfessionalID); err != nil {
		return nil, fmt.Errorf("professional %s not found: %w", rec.ProfessionalID, err)
	}
	if err := validateRecord(rec); err != nil {
		return nil, err
	}

	rec.ID = uuid.New().String()
	rec.CompanyID = companyID
	rec.CreatedAt = time.Now()
	if err := s.Repo.Create(ctx, &rec); err != nil {
		return nil, err
	}
	s.InvalidateProfessionalSlots(ctx, companyID, rec.ProfessionalID)
	return &rec, nil
}

func (s *DefaultAvailabilityService) ListRecords(ctx context.Context, companyID, professionalID string) ([]models.AvailabilityRecord, error) {
	if professionalID == "" {
		return s.Repo.ListByCompany(ctx, companyID)
	}
	return s.Repo.ListByProfessional(ctx, companyID, professionalID)
}

func (s *DefaultAvailabilityService) DeleteRecord(ctx context.Context, companyID, recordID string) error {
	rec, err := s.Repo.GetByID(ctx, companyID, recordID)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, companyID, recordID); err != nil {
		return err
	}
	s.InvalidateProfessionalSlots(ctx, companyID, rec.ProfessionalID)
	return nil
}

func (s *DefaultAvailabilityService) GetDaySlots(ctx context.Context, companyID, professionalID, offeringID, date string) ([]models.TimeSlot, error) {
	logger := utils.GetLogger()
	key := slotCacheKey(companyID, professionalID, offeringID, date)

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			var slots []models.TimeSlot
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				return slots, nil
			}
			logger.Warn("discarding corrupt slot cache entry", zap.String("key", key))
		} else if err != redis.Nil {
			logger.Warn("slot cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	slots, err := s.ComputeDaySlots(ctx, companyID, professionalID, offeringID, date)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(slots); err == nil {
			ttl := time.Duration(config.AppConfig.SlotCacheTTL) * time.Second
			if err := s.Cache.Set(ctx, key, payload, ttl).Err(); err != nil {
				logger.Warn("slot cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return slots, nil
}

func (s *DefaultAvailabilityService) ComputeDaySlots(ctx context.Context, companyID, professionalID, offeringID, date string) ([]models.TimeSlot, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, newValidationError("date", "must be formatted YYYY-MM-DD")
	}

	offering, err := s.OfferingRepo.GetByID(ctx, companyID, offeringID)
	if err != nil {
		return nil, fmt.Errorf("offering %s not found: %w", offeringID, err)
	}

	records, err := s.Repo.ListByProfessional(ctx, companyID, professionalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability records: %w", err)
	}
	bookings, err := s.BookingRepo.ListByProfessionalAndDate(ctx, companyID, professionalID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	return ComputeSlots(professionalID, records, bookings, date, offering.DurationMinutes)
}

func (s *DefaultAvailabilityService) InvalidateDaySlots(ctx context.Context, companyID, professionalID, date string) {
	if s.Cache == nil {
		return
	}
	pattern := fmt.Sprintf("slots:%s:%s:*:%s", companyID, professionalID, date)
	keys, err := s.Cache.Keys(ctx, pattern).Result()
	if err != nil {
		utils.GetLogger().Warn("slot cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
		return
	}
	if len(keys) > 0 {
		s.Cache.Del(ctx, keys...)
	}
}

func (s *DefaultAvailabilityService) GetDayEnvelope(ctx context.Context, companyID, date string) (models.Envelope, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return models.Envelope{}, newValidationError("date", "must be formatted YYYY-MM-DD")
	}

	professionals, err := s.ProfessionalRepo.ListByCompany(ctx, companyID, true)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("failed to list professionals: %w", err)
	}

	recordsByProfessional := make([][]models.AvailabilityRecord, 0, len(professionals))
	for _, pro := range professionals {
		records, err := s.Repo.ListByProfessional(ctx, companyID, pro.ID)
		if err != nil {
			return models.Envelope{}, fmt.Errorf("failed to load records for professional %s: %w", pro.ID, err)
		}
		recordsByProfessional = append(recordsByProfessional, records)
	}

	return ComputeRangeEnvelope(recordsByProfessional, date), nil
}

// InvalidateProfessionalSlots drops every cached day for a professional after a
// declaration change; the declaration may affect arbitrary future dates.
func (s *DefaultAvailabilityService) InvalidateProfessionalSlots(ctx context.Context, companyID, professionalID string) {
	if s.Cache == nil {
		return
	}
	pattern := fmt.Sprintf("slots:%s:%s:*", companyID, professionalID)
	keys, err := s.Cache.Keys(ctx, pattern).Result()
	if err != nil {
		utils.GetLogger().Warn("slot cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
		return
	}
	if len(keys) > 0 {
		s.Cache.Del(ctx, keys...)
	}
}

func slotCacheKey(companyID, professionalID, offeringID, date string) string {
	return fmt.Sprintf("slots:%s:%s:%s:%s", companyID, professionalID, offeringID, date)
}

// validateRecord rejects declarations the engine would silently skip, so
// staff find out at save time instead of wondering why a day looks empty.
func validateRecord(rec models.AvailabilityRecord) error {
	switch rec.Kind {
	case models.KindRecurringGrid:
		if len(rec.DaysOfWeek) == 0 {
			return newValidationError("daysOfWeek", "must list at least one weekday")
		}
		for _, d := range rec.DaysOfWeek {
			if d < 0 || d > 6 {
				return newValidationError("daysOfWeek", "weekdays are 0 (Sunday) through 6 (Saturday)")
			}
		}
		start, okStart := parseHHMM(rec.StartTime)
		if !okStart {
			return newValidationError("startTime", "must be formatted HH:MM")
		}
		end, okEnd := parseHHMM(rec.EndTime)
		if !okEnd {
			return newValidationError("endTime", "must be formatted HH:MM")
		}
		if end <= start {
			return newValidationError("endTime", "must be after startTime")
		}
	case models.KindReleased, models.KindBlocked:
		if rec.StartDateTime.IsZero() || rec.EndDateTime.IsZero() {
			return newValidationError("startDateTime", "start and end timestamps are required")
		}
		if !rec.EndDateTime.After(rec.StartDateTime) {
			return newValidationError("endDateTime", "must be after startDateTime")
		}
	default:
		return newValidationError("kind", "must be recurring_grid, released or blocked")
	}
	return nil
}
