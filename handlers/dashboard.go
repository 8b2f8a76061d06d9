package handlers

import (
	"net/http"

	"opsdeck/catalog"
	"opsdeck/database/repository"
	"opsdeck/services/dashboard"
	"opsdeck/services/export"
	ai "opsdeck/services/intelligence"
	"opsdeck/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the stats snapshot and the generated status report.
type DashboardHandler struct {
	invoices repository.InvoiceRepository
	bookings repository.BookingRepository
	catalog  *catalog.Catalog
	aiSvc    ai.Service
	logger   *zap.Logger
}

func NewDashboardHandler(invoices repository.InvoiceRepository, bookings repository.BookingRepository, cat *catalog.Catalog, aiSvc ai.Service, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{invoices: invoices, bookings: bookings, catalog: cat, aiSvc: aiSvc, logger: logger}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.buildStats(c)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build dashboard stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Report generates the status-report PDF. Core state is read before the
// collaborators run, so a collaborator failure never touches it.
func (h *DashboardHandler) Report(c *gin.Context) {
	stats, err := h.buildStats(c)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build dashboard stats", err.Error())
		return
	}
	invoices, err := h.invoices.All(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list invoices", err.Error())
		return
	}

	content, err := h.aiSvc.GenerateReportContent(c.Request.Context(), dashboard.StatsContext(*stats))
	if err != nil {
		// GenerateReportContent falls back internally; an error here means
		// even the fallback path broke.
		h.logger.Warn("report content generation failed", zap.Error(err))
		content = ai.FallbackReportContent()
	}

	pdf, err := export.DashboardReportPDF(*stats, invoices, *content)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to render report", err.Error())
		return
	}

	c.Header("Content-Disposition", "attachment; filename=status-report.pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *DashboardHandler) buildStats(c *gin.Context) (*dashboard.Stats, error) {
	invoices, err := h.invoices.All(c.Request.Context())
	if err != nil {
		return nil, err
	}
	bookings, err := h.bookings.All(c.Request.Context())
	if err != nil {
		return nil, err
	}
	stats := dashboard.Build(invoices, bookings, h.catalog)
	return &stats, nil
}
