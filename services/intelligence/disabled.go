package ai

import (
	"context"
	"errors"

	"opsdeck/models"
)

var ErrDisabled = errors.New("ai service disabled: no API key configured")

// DisabledService stands in when no Gemini API key is configured. Scans and
// anomaly checks fail with ErrDisabled; report generation falls back to the
// canned content so exports keep working.
type DisabledService struct{}

func (DisabledService) ExtractBillDetails(ctx context.Context, image []byte, mimeType string) (*models.BillDetails, error) {
	return nil, ErrDisabled
}

func (DisabledService) DetectUsageAnomaly(ctx context.Context, historical []float64, current float64) (*models.AnomalyReport, error) {
	return nil, ErrDisabled
}

func (DisabledService) GenerateReportContent(ctx context.Context, statsContext string) (*models.ReportContent, error) {
	return FallbackReportContent(), nil
}
