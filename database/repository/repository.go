package repository

import (
	"context"
	"errors"

	"opsdeck/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrNoActiveInvoice is returned when a tenant has no open invoice to
	// reconcile a booking into.
	ErrNoActiveInvoice = errors.New("no active invoice for tenant")
)

// BookingRepository is the append-only booking store. Order of All is
// insertion order.
type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) error
	All(ctx context.Context) ([]models.Booking, error)
}

// InvoiceRepository is the invoice store. AppendToFirstOpen performs the
// whole reconciliation write (locate the first non-Paid invoice for the
// tenant in insertion order, append the line item and bump the total) as one
// atomic store operation, so the total/line-items invariant holds at every
// observable point.
type InvoiceRepository interface {
	Insert(ctx context.Context, invoice models.Invoice) error
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	All(ctx context.Context) ([]models.Invoice, error)
	AppendToFirstOpen(ctx context.Context, tenantID string, item models.InvoiceLineItem) (*models.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status models.InvoiceStatus) (*models.Invoice, error)
}
