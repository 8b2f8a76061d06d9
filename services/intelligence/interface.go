package ai

import (
	"context"

	"opsdeck/models"
)

// Service is the generative collaborator behind bill scanning, anomaly
// commentary and report content. All of its failures are recoverable: the
// caller surfaces an error message and the operations core is untouched.
type Service interface {
	ExtractBillDetails(ctx context.Context, image []byte, mimeType string) (*models.BillDetails, error)
	DetectUsageAnomaly(ctx context.Context, historical []float64, current float64) (*models.AnomalyReport, error)
	GenerateReportContent(ctx context.Context, statsContext string) (*models.ReportContent, error)
}

// FallbackReportContent is used when report generation fails; the export
// still has to produce a document.
func FallbackReportContent() *models.ReportContent {
	return &models.ReportContent{
		Title: "Monthly Status Report",
		SummaryPoints: []string{
			"Overview of financial performance.",
			"Operational highlights.",
			"Action items for the next period.",
		},
	}
}
