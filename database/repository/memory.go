package repository

import (
	"context"
	"sync"

	"opsdeck/models"
)

// MemoryBookingRepo is the default booking store: an append-only slice
// guarded by a mutex, the single-writer coordinator the stores need under a
// concurrent HTTP host.
type MemoryBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

// NewMemoryBookingRepo builds a booking store primed with the seed set.
func NewMemoryBookingRepo(seed []models.Booking) *MemoryBookingRepo {
	r := &MemoryBookingRepo{}
	r.bookings = append(r.bookings, seed...)
	return r
}

func (r *MemoryBookingRepo) Insert(_ context.Context, booking models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, booking)
	return nil
}

func (r *MemoryBookingRepo) All(_ context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

// MemoryInvoiceRepo is the default invoice store. Invoices are kept in
// insertion order; all mutations run under the store mutex so reconciliation
// reads and writes never interleave with other writers.
type MemoryInvoiceRepo struct {
	mu       sync.Mutex
	invoices []models.Invoice
}

// NewMemoryInvoiceRepo builds an invoice store primed with the seed set.
func NewMemoryInvoiceRepo(seed []models.Invoice) *MemoryInvoiceRepo {
	r := &MemoryInvoiceRepo{}
	for _, inv := range seed {
		r.invoices = append(r.invoices, cloneInvoice(inv))
	}
	return r
}

func (r *MemoryInvoiceRepo) Insert(_ context.Context, invoice models.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices = append(r.invoices, cloneInvoice(invoice))
	return nil
}

func (r *MemoryInvoiceRepo) GetByID(_ context.Context, id string) (*models.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.invoices {
		if r.invoices[i].ID == id {
			inv := cloneInvoice(r.invoices[i])
			return &inv, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryInvoiceRepo) All(_ context.Context) ([]models.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Invoice, 0, len(r.invoices))
	for i := range r.invoices {
		out = append(out, cloneInvoice(r.invoices[i]))
	}
	return out, nil
}

func (r *MemoryInvoiceRepo) AppendToFirstOpen(_ context.Context, tenantID string, item models.InvoiceLineItem) (*models.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.invoices {
		inv := &r.invoices[i]
		if inv.TenantID != tenantID || inv.Status == models.StatusPaid {
			continue
		}
		inv.LineItems = append(inv.LineItems, item)
		inv.TotalAmount = inv.TotalAmount.Add(item.Amount)
		updated := cloneInvoice(*inv)
		return &updated, nil
	}
	return nil, ErrNoActiveInvoice
}

func (r *MemoryInvoiceRepo) UpdateStatus(_ context.Context, id string, status models.InvoiceStatus) (*models.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.invoices {
		if r.invoices[i].ID == id {
			r.invoices[i].Status = status
			inv := cloneInvoice(r.invoices[i])
			return &inv, nil
		}
	}
	return nil, ErrNotFound
}

// cloneInvoice deep-copies the line item slice so callers never alias the
// store's backing arrays.
func cloneInvoice(inv models.Invoice) models.Invoice {
	items := make([]models.InvoiceLineItem, len(inv.LineItems))
	copy(items, inv.LineItems)
	inv.LineItems = items
	return inv
}
