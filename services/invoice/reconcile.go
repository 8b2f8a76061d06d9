package invoice

import (
	"context"
	"errors"
	"fmt"

	"opsdeck/database/repository"
	"opsdeck/models"
	"opsdeck/utils"

	"go.uber.org/zap"
)

// ApplyBooking folds a confirmed booking into the tenant's active invoice:
// the first invoice in insertion order whose status is not Paid gets a
// "<resource> (1 hour)" line item for the booking cost, and its total rises
// by exactly that amount in the same store operation.
//
// repository.ErrNoActiveInvoice is a distinct, loggable outcome, not a
// failure of the booking itself; callers keep the booking and surface a
// warning.
func (s *DefaultInvoiceService) ApplyBooking(ctx context.Context, booking models.Booking) (*models.Invoice, error) {
	description := "Booked Resource (1 hour)"
	if resource := s.Catalog.ResourceByID(booking.ResourceID); resource != nil {
		description = resource.Name + " (1 hour)"
	}

	item := models.InvoiceLineItem{
		ID:          utils.NewID("li"),
		Description: description,
		Amount:      booking.Cost,
	}

	updated, err := s.Repo.AppendToFirstOpen(ctx, booking.TenantID, item)
	if errors.Is(err, repository.ErrNoActiveInvoice) {
		s.Logger.Warn("booking has no invoice to reconcile into",
			zap.String("tenantID", booking.TenantID),
			zap.String("bookingID", booking.ID))
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("apply booking to invoice: %w", err)
	}

	s.Logger.Info("booking reconciled into invoice",
		zap.String("invoiceID", updated.ID),
		zap.String("bookingID", booking.ID),
		zap.String("amount", item.Amount.StringFixed(2)))
	return updated, nil
}
