package invoice_test

import (
	"context"
	"strings"
	"testing"

	"opsdeck/catalog"
	"opsdeck/database/repository"
	"opsdeck/models"
	"opsdeck/services/invoice"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func emptyInvoiceService() (*invoice.DefaultInvoiceService, *repository.MemoryInvoiceRepo) {
	repo := repository.NewMemoryInvoiceRepo(nil)
	return &invoice.DefaultInvoiceService{Repo: repo, Catalog: catalog.Default(), Logger: zap.NewNop()}, repo
}

func TestCreateInvoice_StoresPendingWithSummedTotal(t *testing.T) {
	ctx := context.Background()
	svc, repo := emptyInvoiceService()

	inv, err := svc.CreateInvoice(ctx, invoice.CreateInvoiceInput{
		TenantID:  "t2",
		IssueDate: "2026-08-01",
		DueDate:   "2026-08-15",
		LineItems: []invoice.LineItemInput{
			{Description: "Electricity", Amount: decimal.RequireFromString("350.00")},
			{Description: "Water", Amount: decimal.RequireFromString("99.50")},
		},
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(inv.ID, "inv_"))
	require.Equal(t, models.StatusPending, inv.Status)
	require.Len(t, inv.LineItems, 2)
	require.True(t, inv.TotalAmount.Equal(decimal.RequireFromString("449.50")))
	require.True(t, inv.TotalAmount.Equal(inv.LineItemSum()))

	stored, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	require.True(t, stored.TotalAmount.Equal(inv.TotalAmount))
}

func TestCreateInvoice_RejectsMissingTenant(t *testing.T) {
	svc, _ := emptyInvoiceService()
	_, err := svc.CreateInvoice(context.Background(), invoice.CreateInvoiceInput{
		TenantID:  "  ",
		LineItems: []invoice.LineItemInput{{Description: "Rent", Amount: decimal.NewFromInt(100)}},
	})
	require.ErrorIs(t, err, invoice.ErrInvalidInput)
}

func TestCreateInvoice_RejectsNoLineItems(t *testing.T) {
	svc, _ := emptyInvoiceService()
	_, err := svc.CreateInvoice(context.Background(), invoice.CreateInvoiceInput{TenantID: "t1"})
	require.ErrorIs(t, err, invoice.ErrInvalidInput)
}

func TestCreateInvoice_RejectsWholeSubmissionOnOneBadItem(t *testing.T) {
	ctx := context.Background()
	svc, repo := emptyInvoiceService()

	_, err := svc.CreateInvoice(ctx, invoice.CreateInvoiceInput{
		TenantID: "t1",
		LineItems: []invoice.LineItemInput{
			{Description: "Electricity", Amount: decimal.NewFromInt(100)},
			{Description: "", Amount: decimal.NewFromInt(50)},
		},
	})
	require.ErrorIs(t, err, invoice.ErrInvalidInput)

	_, err = svc.CreateInvoice(ctx, invoice.CreateInvoiceInput{
		TenantID: "t1",
		LineItems: []invoice.LineItemInput{
			{Description: "Electricity", Amount: decimal.NewFromInt(100)},
			{Description: "Water", Amount: decimal.Zero},
		},
	})
	require.ErrorIs(t, err, invoice.ErrInvalidInput)

	// Nothing was stored.
	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
