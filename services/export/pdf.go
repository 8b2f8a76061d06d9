package export

import (
	"bytes"
	"fmt"
	"time"

	"opsdeck/models"
	"opsdeck/services/dashboard"

	"github.com/jung-kurt/gofpdf"
)

// InvoicePDF renders one invoice as a downloadable PDF: header, invoice and
// tenant blocks, a line-item table and the bold total.
func InvoicePDF(invoice models.Invoice, tenant *models.Tenant) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 10, "Invoice")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, "BusinessInvoice Platform")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	left := pdf.GetX()
	pdf.Cell(95, 5, fmt.Sprintf("Invoice ID: %s", invoice.ID))
	pdf.Cell(0, 5, "Bill To:")
	pdf.Ln(5)
	pdf.Cell(95, 5, fmt.Sprintf("Issue Date: %s", invoice.IssueDate))
	pdf.Cell(0, 5, tenantName(tenant))
	pdf.Ln(5)
	pdf.Cell(95, 5, fmt.Sprintf("Due Date: %s", invoice.DueDate))
	pdf.Cell(0, 5, tenantUnit(tenant))
	pdf.Ln(12)
	pdf.SetX(left)

	// Line item table.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(140, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range invoice.LineItems {
		pdf.CellFormat(140, 7, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, "$"+item.Amount.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(180, 8, "Total: $"+invoice.TotalAmount.StringFixed(2), "", 1, "R", false, 0, "")

	return output(pdf)
}

// DashboardReportPDF renders the status report: title page with the
// generated headline, executive summary bullets, a financial snapshot and
// the most recent invoices.
func DashboardReportPDF(stats dashboard.Stats, invoices []models.Invoice, content models.ReportContent) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")

	// Title page.
	pdf.AddPage()
	pdf.SetFillColor(30, 64, 175)
	pdf.Rect(0, 0, 210, 30, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(10, 10)
	pdf.Cell(0, 10, "BusinessInvoice Platform")
	pdf.SetTextColor(54, 54, 54)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetXY(10, 90)
	pdf.MultiCell(190, 12, content.Title, "", "C", false)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(136, 136, 136)
	pdf.CellFormat(190, 10, "Generated: "+time.Now().Format("2006-01-02"), "", 1, "C", false, 0, "")

	// Executive summary.
	pdf.AddPage()
	sectionTitle(pdf, "Executive Summary")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(75, 85, 99)
	for _, point := range content.SummaryPoints {
		pdf.CellFormat(6, 8, "-", "", 0, "L", false, 0, "")
		pdf.MultiCell(180, 8, point, "", "L", false)
		pdf.Ln(2)
	}

	// Financial snapshot.
	pdf.AddPage()
	sectionTitle(pdf, "Financial Snapshot")
	metricBox(pdf, 10, 50, "Total Billed", "$"+stats.TotalBilled.StringFixed(2))
	metricBox(pdf, 110, 50, "Outstanding", "$"+stats.TotalOutstanding.StringFixed(2))
	metricBox(pdf, 10, 95, "Active Tenants", fmt.Sprintf("%d", stats.ActiveTenants))
	metricBox(pdf, 110, 95, "Bookings", fmt.Sprintf("%d", stats.BookingCount))

	// Recent invoices.
	pdf.AddPage()
	sectionTitle(pdf, "Recent Invoices")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetTextColor(54, 54, 54)
	pdf.CellFormat(60, 7, "Invoice", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 7, "Due Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 7, "Amount", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, "Status", "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	max := len(invoices)
	if max > 6 {
		max = 6
	}
	for _, inv := range invoices[:max] {
		pdf.CellFormat(60, 7, inv.ID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, inv.DueDate, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, "$"+inv.TotalAmount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, string(inv.Status), "1", 1, "L", false, 0, "")
	}

	return output(pdf)
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 64, 175)
	pdf.SetXY(10, 15)
	pdf.Cell(0, 10, title)
	pdf.SetDrawColor(229, 231, 235)
	pdf.Line(10, 28, 200, 28)
	pdf.SetXY(10, 35)
	pdf.SetTextColor(54, 54, 54)
}

func metricBox(pdf *gofpdf.Fpdf, x, y float64, label, value string) {
	pdf.SetFillColor(243, 244, 246)
	pdf.SetDrawColor(209, 213, 219)
	pdf.Rect(x, y, 90, 35, "FD")
	pdf.SetXY(x+5, y+5)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(107, 114, 128)
	pdf.Cell(0, 6, label)
	pdf.SetXY(x+5, y+16)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(17, 24, 39)
	pdf.Cell(0, 10, value)
	pdf.SetTextColor(54, 54, 54)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func tenantName(t *models.Tenant) string {
	if t == nil {
		return "N/A"
	}
	return t.Name
}

func tenantUnit(t *models.Tenant) string {
	if t == nil {
		return "N/A"
	}
	return t.Unit
}
