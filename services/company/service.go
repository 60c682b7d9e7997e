package company

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	companyRepo "agendly/database/repository/company"
	"agendly/models"
	"agendly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL bounds how long an issued staff token stays valid. Revocation
// through RevokeToken takes effect immediately regardless.
const tokenTTL = 72 * time.Hour

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// DefaultCompanyService is the production implementation.
type DefaultCompanyService struct {
	Repo companyRepo.CompanyRepository
}

func (s *DefaultCompanyService) Register(ctx context.Context, req models.RegisterCompanyRequest) (*models.CompanyAuthResponse, error) {
	logger := utils.GetLogger()

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if !slugPattern.MatchString(slug) {
		return nil, ErrInvalidSlug
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if _, err := s.Repo.GetBySlug(ctx, slug); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	company := &models.Company{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Slug:         slug,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	token, err := s.issueToken(ctx, company)
	if err != nil {
		return nil, err
	}

	logger.Info("company registered", zap.String("companyID", company.ID), zap.String("slug", slug))
	return &models.CompanyAuthResponse{Company: *company, Token: token}, nil
}

func (s *DefaultCompanyService) Authenticate(ctx context.Context, req models.AuthenticateCompanyRequest) (*models.CompanyAuthResponse, error) {
	company, err := s.Repo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, company)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("company authenticated", zap.String("companyID", company.ID))
	return &models.CompanyAuthResponse{Company: *company, Token: token}, nil
}

func (s *DefaultCompanyService) RevokeToken(ctx context.Context, companyID string) error {
	if err := s.Repo.UpdateTokenHash(ctx, companyID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	dropAuthCache(ctx, companyID)
	return nil
}

func (s *DefaultCompanyService) GetProfile(ctx context.Context, companyID string) (*models.Company, error) {
	return s.Repo.GetByID(ctx, companyID)
}

func (s *DefaultCompanyService) UpdateProfile(ctx context.Context, companyID string, updates map[string]interface{}) (*models.Company, error) {
	allowed := map[string]bool{"name": true, "phone": true}
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return s.Repo.GetByID(ctx, companyID)
	}
	filtered["updatedAt"] = time.Now()
	return s.Repo.Update(ctx, companyID, filtered)
}

func (s *DefaultCompanyService) GetBySlug(ctx context.Context, slug string) (*models.Company, error) {
	return s.Repo.GetBySlug(ctx, slug)
}

// issueToken signs a JWT and persists its hash; a token whose hash no longer
// matches the stored one is treated as revoked by the auth middleware.
func (s *DefaultCompanyService) issueToken(ctx context.Context, company *models.Company) (string, error) {
	token, err := utils.GenerateToken(company.ID, company.Email, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	if err := s.Repo.UpdateTokenHash(ctx, company.ID, utils.HashToken(token)); err != nil {
		return "", fmt.Errorf("failed to store token hash: %w", err)
	}
	dropAuthCache(ctx, company.ID)
	return token, nil
}

// dropAuthCache removes the middleware's cached auth entry so a fresh or
// revoked token is honored on the next request, not after the TTL.
func dropAuthCache(ctx context.Context, companyID string) {
	if utils.AuthCacheClient == nil {
		return
	}
	utils.AuthCacheClient.Del(ctx, authCacheKey(companyID))
}

func authCacheKey(companyID string) string {
	return "auth:company:" + companyID
}
