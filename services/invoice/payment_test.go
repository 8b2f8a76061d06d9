package invoice_test

import (
	"context"
	"testing"

	"opsdeck/catalog"
	"opsdeck/database/repository"
	"opsdeck/models"
	"opsdeck/services/invoice"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newInvoiceService() (*invoice.DefaultInvoiceService, *repository.MemoryInvoiceRepo) {
	cat := catalog.Default()
	repo := repository.NewMemoryInvoiceRepo(cat.SeedInvoices)
	return &invoice.DefaultInvoiceService{Repo: repo, Catalog: cat, Logger: zap.NewNop()}, repo
}

func TestTransition_SuccessPaysFromAnyOpenState(t *testing.T) {
	for _, from := range []models.InvoiceStatus{models.StatusPending, models.StatusRetrying, models.StatusOverdue} {
		next, err := invoice.Transition(from, invoice.OutcomeSuccess)
		require.NoError(t, err, "from %s", from)
		require.Equal(t, models.StatusPaid, next)
	}
}

func TestTransition_HardFailFailsFromAnyOpenState(t *testing.T) {
	for _, from := range []models.InvoiceStatus{models.StatusPending, models.StatusRetrying, models.StatusOverdue} {
		next, err := invoice.Transition(from, invoice.OutcomeHardFail)
		require.NoError(t, err, "from %s", from)
		require.Equal(t, models.StatusFailed, next)
	}
}

func TestTransition_SoftFailEscalates(t *testing.T) {
	next, err := invoice.Transition(models.StatusPending, invoice.OutcomeSoftFail)
	require.NoError(t, err)
	require.Equal(t, models.StatusRetrying, next)

	next, err = invoice.Transition(models.StatusRetrying, invoice.OutcomeSoftFail)
	require.NoError(t, err)
	require.Equal(t, models.StatusOverdue, next)

	// Overdue is not terminal; another soft failure starts a new retry cycle.
	next, err = invoice.Transition(models.StatusOverdue, invoice.OutcomeSoftFail)
	require.NoError(t, err)
	require.Equal(t, models.StatusRetrying, next)
}

func TestTransition_TerminalStatesAbsorb(t *testing.T) {
	for _, from := range []models.InvoiceStatus{models.StatusPaid, models.StatusFailed} {
		for _, outcome := range []invoice.Outcome{invoice.OutcomeSuccess, invoice.OutcomeSoftFail, invoice.OutcomeHardFail} {
			_, err := invoice.Transition(from, outcome)
			require.ErrorIs(t, err, invoice.ErrInvoiceClosed, "from %s on %s", from, outcome)
		}
	}
}

func TestTransition_UnknownOutcome(t *testing.T) {
	_, err := invoice.Transition(models.StatusPending, invoice.Outcome("refund"))
	require.ErrorIs(t, err, invoice.ErrUnknownOutcome)
}

func TestApplyOutcome_PersistsTransition(t *testing.T) {
	ctx := context.Background()
	svc, repo := newInvoiceService()

	updated, err := svc.ApplyOutcome(ctx, "inv005", invoice.OutcomeSoftFail)
	require.NoError(t, err)
	require.Equal(t, models.StatusRetrying, updated.Status)

	updated, err = svc.ApplyOutcome(ctx, "inv005", invoice.OutcomeSoftFail)
	require.NoError(t, err)
	require.Equal(t, models.StatusOverdue, updated.Status)

	stored, err := repo.GetByID(ctx, "inv005")
	require.NoError(t, err)
	require.Equal(t, models.StatusOverdue, stored.Status)
}

func TestApplyOutcome_PaidInvoiceRejected(t *testing.T) {
	ctx := context.Background()
	svc, repo := newInvoiceService()

	_, err := svc.ApplyOutcome(ctx, "inv001", invoice.OutcomeSuccess)
	require.ErrorIs(t, err, invoice.ErrInvoiceClosed)

	stored, err := repo.GetByID(ctx, "inv001")
	require.NoError(t, err)
	require.Equal(t, models.StatusPaid, stored.Status)
}

func TestApplyOutcome_UnknownInvoice(t *testing.T) {
	svc, _ := newInvoiceService()
	_, err := svc.ApplyOutcome(context.Background(), "inv999", invoice.OutcomeSuccess)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
