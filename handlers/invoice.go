package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"opsdeck/catalog"
	"opsdeck/database/repository"
	"opsdeck/services/export"
	"opsdeck/services/invoice"
	"opsdeck/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler exposes the invoice store: listing, manual creation,
// payment simulation and PDF download.
type InvoiceHandler struct {
	svc     invoice.Service
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewInvoiceHandler(svc invoice.Service, cat *catalog.Catalog, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{svc: svc, catalog: cat, logger: logger}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.svc.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list invoices", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var input invoice.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	inv, err := h.svc.CreateInvoice(c.Request.Context(), input)
	if errors.Is(err, invoice.ErrInvalidInput) {
		utils.JSONError(c, http.StatusBadRequest, "invoice rejected", err.Error())
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create invoice", err.Error())
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// ApplyPayment applies a simulated gateway outcome to one invoice.
func (h *InvoiceHandler) ApplyPayment(c *gin.Context) {
	invoiceID := c.Param("id")
	var input struct {
		Outcome string `json:"outcome" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	inv, err := h.svc.ApplyOutcome(c.Request.Context(), invoiceID, invoice.Outcome(input.Outcome))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "invoice not found", invoiceID)
	case errors.Is(err, invoice.ErrInvoiceClosed):
		utils.JSONError(c, http.StatusConflict, "invoice is in a terminal state", invoiceID)
	case errors.Is(err, invoice.ErrUnknownOutcome):
		utils.JSONError(c, http.StatusBadRequest, "unknown payment outcome", input.Outcome)
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "failed to apply payment outcome", err.Error())
	default:
		c.JSON(http.StatusOK, inv)
	}
}

// DownloadPDF streams the invoice as a PDF document.
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	invoiceID := c.Param("id")
	inv, err := h.svc.Get(c.Request.Context(), invoiceID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "invoice not found", invoiceID)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load invoice", err.Error())
		return
	}

	pdf, err := export.InvoicePDF(*inv, h.catalog.TenantByID(inv.TenantID))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to render invoice PDF", err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", inv.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
