package support

import (
	"context"
	"errors"
	"fmt"
	"time"

	ticketRepo "agendly/database/repository/ticket"
	"agendly/models"

	"github.com/google/uuid"
)

// ErrUnknownStatus is returned for a status outside the ticket lifecycle.
var ErrUnknownStatus = errors.New("unknown ticket status")

// TicketRequest is the staff-facing create payload.
type TicketRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SupportService manages a company's support tickets.
type SupportService interface {
	CreateTicket(ctx context.Context, companyID string, req TicketRequest) (*models.SupportTicket, error)
	GetTicket(ctx context.Context, companyID, id string) (*models.SupportTicket, error)
	ListTickets(ctx context.Context, companyID string) ([]models.SupportTicket, error)
	UpdateTicketStatus(ctx context.Context, companyID, id, status string) (*models.SupportTicket, error)
}

// DefaultSupportService is the production implementation.
type DefaultSupportService struct {
	Repo ticketRepo.TicketRepository
}

func (s *DefaultSupportService) CreateTicket(ctx context.Context, companyID string, req TicketRequest) (*models.SupportTicket, error) {
	now := time.Now()
	ticket := &models.SupportTicket{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.TicketStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return ticket, nil
}

func (s *DefaultSupportService) GetTicket(ctx context.Context, companyID, id string) (*models.SupportTicket, error) {
	return s.Repo.GetByID(ctx, companyID, id)
}

func (s *DefaultSupportService) ListTickets(ctx context.Context, companyID string) ([]models.SupportTicket, error) {
	return s.Repo.ListByCompany(ctx, companyID)
}

func (s *DefaultSupportService) UpdateTicketStatus(ctx context.Context, companyID, id, status string) (*models.SupportTicket, error) {
	switch status {
	case models.TicketStatusOpen, models.TicketStatusInProgress, models.TicketStatusClosed:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	return s.Repo.UpdateStatus(ctx, companyID, id, status)
}
