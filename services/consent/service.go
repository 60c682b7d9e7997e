package consent

import (
	"context"
	"fmt"
	"time"

	consentRepo "agendly/database/repository/consent"
	"agendly/models"
	"agendly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConsentService exposes the privacy-consent audit trail to staff: listing
// what a data subject granted and recording revocations.
type ConsentService interface {
	RecordConsent(ctx context.Context, companyID, subject, purpose string) (*models.ConsentRecord, error)
	ListBySubject(ctx context.Context, companyID, subject string) ([]models.ConsentRecord, error)
	RevokeConsent(ctx context.Context, companyID, recordID string) (*models.ConsentRecord, error)
}

// DefaultConsentService is the production implementation.
type DefaultConsentService struct {
	Repo consentRepo.ConsentRepository
}

func (s *DefaultConsentService) RecordConsent(ctx context.Context, companyID, subject, purpose string) (*models.ConsentRecord, error) {
	rec := &models.ConsentRecord{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Subject:   subject,
		Purpose:   purpose,
		Granted:   true,
		GrantedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store consent record: %w", err)
	}
	return rec, nil
}

func (s *DefaultConsentService) ListBySubject(ctx context.Context, companyID, subject string) ([]models.ConsentRecord, error) {
	return s.Repo.ListBySubject(ctx, companyID, subject)
}

func (s *DefaultConsentService) RevokeConsent(ctx context.Context, companyID, recordID string) (*models.ConsentRecord, error) {
	rec, err := s.Repo.Revoke(ctx, companyID, recordID)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("consent revoked",
		zap.String("companyID", companyID),
		zap.String("recordID", recordID))
	return rec, nil
}
