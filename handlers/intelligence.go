package handlers

import (
	"io"
	"net/http"

	"opsdeck/catalog"
	ai "opsdeck/services/intelligence"
	"opsdeck/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxBillImageBytes = 8 << 20

// AIHandler fronts the generative collaborator. Failures come back as
// user-visible errors the caller can retry; nothing here touches core state.
type AIHandler struct {
	svc     ai.Service
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewAIHandler(svc ai.Service, cat *catalog.Catalog, logger *zap.Logger) *AIHandler {
	return &AIHandler{svc: svc, catalog: cat, logger: logger}
}

// BillScan extracts structured details from an uploaded utility-bill image.
func (h *AIHandler) BillScan(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "image file is required", err.Error())
		return
	}
	if fileHeader.Size > maxBillImageBytes {
		utils.JSONError(c, http.StatusBadRequest, "image too large", "limit is 8MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read image", err.Error())
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read image", err.Error())
		return
	}
	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/png"
	}

	details, err := h.svc.ExtractBillDetails(c.Request.Context(), image, mimeType)
	if err != nil {
		h.logger.Warn("bill scan failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to analyze the bill. Please try again with a clearer image.", "")
		return
	}
	c.JSON(http.StatusOK, details)
}

// Anomaly asks the collaborator whether a meter's current usage is an outlier
// against its history.
func (h *AIHandler) Anomaly(c *gin.Context) {
	var input struct {
		MeterID      string   `json:"meterId" binding:"required"`
		CurrentUsage *float64 `json:"currentUsage" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	meter := h.catalog.MeterByID(input.MeterID)
	if meter == nil {
		utils.JSONError(c, http.StatusNotFound, "unknown meter", input.MeterID)
		return
	}

	report, err := h.svc.DetectUsageAnomaly(c.Request.Context(), meter.HistoricalUsage, *input.CurrentUsage)
	if err != nil {
		h.logger.Warn("anomaly detection failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to perform anomaly detection.", "")
		return
	}
	c.JSON(http.StatusOK, report)
}
