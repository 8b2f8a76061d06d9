package models

import "github.com/shopspring/decimal"

// InvoiceStatus enumerates the billing states an invoice can be in.
type InvoiceStatus string

const (
	StatusPending  InvoiceStatus = "Pending"
	StatusPaid     InvoiceStatus = "Paid"
	StatusRetrying InvoiceStatus = "Retrying"
	StatusOverdue  InvoiceStatus = "Overdue"
	StatusFailed   InvoiceStatus = "Failed"
)

// Closed reports whether the status is terminal. Paid and Failed invoices
// accept no further payment outcomes.
func (s InvoiceStatus) Closed() bool {
	return s == StatusPaid || s == StatusFailed
}

// InvoiceLineItem is one billable entry within an invoice. Owned exclusively
// by its parent invoice.
type InvoiceLineItem struct {
	ID          string          `bson:"id" json:"id"`
	Description string          `bson:"description" json:"description"`
	Amount      decimal.Decimal `bson:"amount" json:"amount"`
}

// Invoice represents a tenant invoice. TotalAmount always equals the sum of
// the line item amounts; every mutation that touches line items updates the
// total in the same store operation.
type Invoice struct {
	ID          string            `bson:"id" json:"id"`
	TenantID    string            `bson:"tenant_id" json:"tenantId"`
	IssueDate   string            `bson:"issue_date" json:"issueDate"` // "YYYY-MM-DD"
	DueDate     string            `bson:"due_date" json:"dueDate"`
	TotalAmount decimal.Decimal   `bson:"total_amount" json:"totalAmount"`
	Status      InvoiceStatus     `bson:"status" json:"status"`
	LineItems   []InvoiceLineItem `bson:"line_items" json:"lineItems"`
}

// LineItemSum recomputes the total from the line items.
func (inv Invoice) LineItemSum() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range inv.LineItems {
		sum = sum.Add(li.Amount)
	}
	return sum
}
