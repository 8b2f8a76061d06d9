package invoice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"opsdeck/models"
	"opsdeck/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrInvalidInput rejects a whole invoice submission. Nothing is stored when
// any part of the input fails validation.
var ErrInvalidInput = errors.New("invalid invoice input")

// CreateInvoiceInput is the manual invoice-creation form.
type CreateInvoiceInput struct {
	TenantID  string          `json:"tenantId"`
	IssueDate string          `json:"issueDate"`
	DueDate   string          `json:"dueDate"`
	LineItems []LineItemInput `json:"lineItems"`
}

type LineItemInput struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreateInvoice validates the full submission and stores a new Pending
// invoice. Ids come from the monotonic allocator; the total is the sum of
// the stored line items.
func (s *DefaultInvoiceService) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*models.Invoice, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	inv := models.Invoice{
		ID:        utils.NewID("inv"),
		TenantID:  input.TenantID,
		IssueDate: input.IssueDate,
		DueDate:   input.DueDate,
		Status:    models.StatusPending,
	}
	total := decimal.Zero
	for _, li := range input.LineItems {
		inv.LineItems = append(inv.LineItems, models.InvoiceLineItem{
			ID:          utils.NewID("li"),
			Description: strings.TrimSpace(li.Description),
			Amount:      li.Amount,
		})
		total = total.Add(li.Amount)
	}
	inv.TotalAmount = total

	if err := s.Repo.Insert(ctx, inv); err != nil {
		return nil, fmt.Errorf("store invoice: %w", err)
	}

	s.Logger.Info("invoice created",
		zap.String("invoiceID", inv.ID),
		zap.String("tenantID", inv.TenantID),
		zap.String("total", inv.TotalAmount.StringFixed(2)))
	return &inv, nil
}

func validateInput(input CreateInvoiceInput) error {
	if strings.TrimSpace(input.TenantID) == "" {
		return fmt.Errorf("%w: tenant id is required", ErrInvalidInput)
	}
	if len(input.LineItems) == 0 {
		return fmt.Errorf("%w: at least one line item is required", ErrInvalidInput)
	}
	for i, li := range input.LineItems {
		if strings.TrimSpace(li.Description) == "" {
			return fmt.Errorf("%w: line item %d has no description", ErrInvalidInput, i+1)
		}
		if li.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: line item %d amount must be greater than zero", ErrInvalidInput, i+1)
		}
	}
	return nil
}
