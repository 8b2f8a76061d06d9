package invoice

import (
	"context"
	"errors"
	"fmt"

	"opsdeck/models"

	"go.uber.org/zap"
)

// Outcome is a simulated payment-gateway result applied to one invoice.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeSoftFail Outcome = "soft_fail"
	OutcomeHardFail Outcome = "hard_fail"
)

var (
	// ErrInvoiceClosed is returned when an outcome is applied to a Paid or
	// Failed invoice. Terminal states are absorbing.
	ErrInvoiceClosed = errors.New("invoice is in a terminal state")
	// ErrUnknownOutcome is returned for an unrecognized outcome signal.
	ErrUnknownOutcome = errors.New("unknown payment outcome")
)

// Transition computes the next billing state for an outcome. Pure.
//
// success always pays, hard_fail always fails. A first soft_fail starts a
// retry cycle; a soft_fail while already Retrying escalates to Overdue.
func Transition(current models.InvoiceStatus, outcome Outcome) (models.InvoiceStatus, error) {
	if current.Closed() {
		return current, ErrInvoiceClosed
	}
	switch outcome {
	case OutcomeSuccess:
		return models.StatusPaid, nil
	case OutcomeHardFail:
		return models.StatusFailed, nil
	case OutcomeSoftFail:
		if current == models.StatusRetrying {
			return models.StatusOverdue, nil
		}
		return models.StatusRetrying, nil
	default:
		return current, fmt.Errorf("%w: %q", ErrUnknownOutcome, outcome)
	}
}

// ApplyOutcome runs the payment state machine against a stored invoice.
func (s *DefaultInvoiceService) ApplyOutcome(ctx context.Context, invoiceID string, outcome Outcome) (*models.Invoice, error) {
	inv, err := s.Repo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	next, err := Transition(inv.Status, outcome)
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateStatus(ctx, invoiceID, next)
	if err != nil {
		return nil, fmt.Errorf("update invoice status: %w", err)
	}

	s.Logger.Info("payment outcome applied",
		zap.String("invoiceID", invoiceID),
		zap.String("outcome", string(outcome)),
		zap.String("from", string(inv.Status)),
		zap.String("to", string(next)))
	return updated, nil
}
