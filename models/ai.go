package models

// BillDetails is the structured result of scanning a utility-bill image.
type BillDetails struct {
	TotalAmount   float64 `json:"totalAmount"`
	BillingPeriod string  `json:"billingPeriod"`
	TotalUsage    string  `json:"totalUsage"`
}

// AnomalyReport is the commentary returned for a usage-anomaly check.
type AnomalyReport struct {
	IsAnomaly bool   `json:"isAnomaly"`
	Reasoning string `json:"reasoning"`
}

// ReportContent is the generated title and executive summary for a
// dashboard status report.
type ReportContent struct {
	Title         string   `json:"title"`
	SummaryPoints []string `json:"summaryPoints"`
}
