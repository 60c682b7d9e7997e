package ticketRepo

import (
	"context"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *models.SupportTicket) error
	GetByID(ctx context.Context, companyID, id string) (*models.SupportTicket, error)
	ListByCompany(ctx context.Context, companyID string) ([]models.SupportTicket, error)
	UpdateStatus(ctx context.Context, companyID, id, status string) (*models.SupportTicket, error)
}

type mongoTicketRepo struct {
	coll *mongo.Collection
}

// NewMongoTicketRepo constructs a new MongoDB TicketRepository.
func NewMongoTicketRepo() TicketRepository {
	return &mongoTicketRepo{
		coll: database.DB().Collection("support_tickets"),
	}
}
