package invoice

import (
	"context"

	"opsdeck/catalog"
	"opsdeck/database/repository"
	"opsdeck/models"

	"go.uber.org/zap"
)

// Service is the invoice side of the operations core: reconciliation of
// confirmed bookings, the payment state machine and manual creation.
type Service interface {
	ApplyBooking(ctx context.Context, booking models.Booking) (*models.Invoice, error)
	ApplyOutcome(ctx context.Context, invoiceID string, outcome Outcome) (*models.Invoice, error)
	CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*models.Invoice, error)
	List(ctx context.Context) ([]models.Invoice, error)
	Get(ctx context.Context, id string) (*models.Invoice, error)
}

type DefaultInvoiceService struct {
	Repo    repository.InvoiceRepository
	Catalog *catalog.Catalog
	Logger  *zap.Logger
}

func (s *DefaultInvoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	return s.Repo.All(ctx)
}

func (s *DefaultInvoiceService) Get(ctx context.Context, id string) (*models.Invoice, error) {
	return s.Repo.GetByID(ctx, id)
}
